package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-task-tracker/internal/logger"
	"github.com/MKhiriev/go-task-tracker/internal/store"
	"github.com/MKhiriev/go-task-tracker/internal/utils"
	"github.com/MKhiriev/go-task-tracker/internal/validators"
	"github.com/MKhiriev/go-task-tracker/models"
)

type taskService struct {
	taskRepository store.TaskRepository
	idGenerator    utils.IDGenerator
	validator      validators.Validator

	logger *logger.Logger
}

func NewTaskService(taskRepository store.TaskRepository, idGenerator utils.IDGenerator, logger *logger.Logger) TaskService {
	return &taskService{
		taskRepository: taskRepository,
		idGenerator:    idGenerator,
		validator:      validators.NewRequestValidator(),
		logger:         logger,
	}
}

// CreateTask stores a new task owned by userID. Title is required; an empty
// status becomes [models.DefaultTaskStatus].
func (s *taskService) CreateTask(ctx context.Context, userID string, req models.CreateTaskRequest) (models.Task, error) {
	log := logger.FromContext(ctx)

	if userID == "" {
		return models.Task{}, ErrNoUserID
	}

	if err := s.validator.Validate(ctx, req); err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("invalid task data provided")
		return models.Task{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	status := req.Status
	if status == "" {
		status = models.DefaultTaskStatus
	}

	task := models.Task{
		TaskID:      s.idGenerator.Generate(),
		Title:       req.Title,
		Description: req.Description,
		Status:      status,
		DueDate:     req.DueDate,
		UserID:      userID,
	}

	if err := s.taskRepository.CreateTask(ctx, task); err != nil {
		log.Err(err).Str("user_id", userID).Msg("task creation failed")
		return models.Task{}, fmt.Errorf("task creation failed: %w", err)
	}

	return task, nil
}

func (s *taskService) ListTasks(ctx context.Context, userID string) ([]models.Task, error) {
	if userID == "" {
		return nil, ErrNoUserID
	}

	tasks, err := s.taskRepository.ListTasks(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", userID).Msg("listing tasks failed")
		return nil, fmt.Errorf("listing tasks failed: %w", err)
	}

	return tasks, nil
}

func (s *taskService) GetTask(ctx context.Context, userID, taskID string) (models.Task, error) {
	if userID == "" {
		return models.Task{}, ErrNoUserID
	}

	task, err := s.taskRepository.GetTask(ctx, taskID, userID)
	if err != nil {
		return models.Task{}, s.mapRepositoryError(ctx, err, "getting task failed")
	}

	return task, nil
}

// UpdateTask applies the non-empty fields of upd to the task. The task is
// read and written in two separate statements; if it is deleted in between,
// the write changes nothing and the update still succeeds.
func (s *taskService) UpdateTask(ctx context.Context, userID, taskID string, upd models.TaskUpdate) error {
	existing, err := s.GetTask(ctx, userID, taskID)
	if err != nil {
		return err
	}

	if err = s.taskRepository.UpdateTask(ctx, existing.Merge(upd)); err != nil {
		return s.mapRepositoryError(ctx, err, "updating task failed")
	}

	return nil
}

func (s *taskService) DeleteTask(ctx context.Context, userID, taskID string) error {
	if userID == "" {
		return ErrNoUserID
	}

	if err := s.taskRepository.DeleteTask(ctx, taskID, userID); err != nil {
		return s.mapRepositoryError(ctx, err, "deleting task failed")
	}

	return nil
}

func (s *taskService) mapRepositoryError(ctx context.Context, err error, msg string) error {
	if errors.Is(err, store.ErrTaskNotFound) {
		return ErrTaskNotFound
	}

	logger.FromContext(ctx).Err(err).Msg(msg)
	return fmt.Errorf("%s: %w", msg, err)
}
