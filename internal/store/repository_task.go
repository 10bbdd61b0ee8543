package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-task-tracker/internal/logger"
	"github.com/MKhiriev/go-task-tracker/models"
)

// taskRepository is the database/sql implementation of [TaskRepository].
// Queries are assembled with squirrel so the same code serves SQLite and
// PostgreSQL. Every statement filters by user_id as well as task_id.
type taskRepository struct {
	*DB
	logger *logger.Logger
}

// NewTaskRepository constructs a [TaskRepository] backed by the provided
// database connection and logger.
func NewTaskRepository(db *DB, logger *logger.Logger) TaskRepository {
	logger.Debug().Msg("creating task repository")
	return &taskRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateTask inserts task as-is. Defaults are applied by the caller.
func (r *taskRepository) CreateTask(ctx context.Context, task models.Task) error {
	log := logger.FromContext(ctx)

	query, args, err := r.builder().
		Insert(tasksTable).
		Columns(taskColumns...).
		Values(task.TaskID, task.Title, task.Description, task.Status, task.DueDate, task.UserID).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.withRetry(ctx, func() error {
		_, execErr := r.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "taskRepository.CreateTask").
			Str("user_id", task.UserID).
			Msg("failed to insert task")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// ListTasks returns every task owned by userID in storage order.
// Returns an empty slice when the user has no tasks.
func (r *taskRepository) ListTasks(ctx context.Context, userID string) ([]models.Task, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder().
		Select(taskColumns...).
		From(tasksTable).
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "taskRepository.ListTasks").
			Str("user_id", userID).
			Msg("failed to execute query for listing tasks")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	tasks := make([]models.Task, 0)

	for rows.Next() {
		var task models.Task
		if scanErr := scanTask(rows, &task); scanErr != nil {
			log.Err(scanErr).
				Str("func", "taskRepository.ListTasks").
				Str("user_id", userID).
				Msg("failed to scan task row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		tasks = append(tasks, task)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "taskRepository.ListTasks").
			Str("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return tasks, nil
}

func (r *taskRepository) GetTask(ctx context.Context, taskID, userID string) (models.Task, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder().
		Select(taskColumns...).
		From(tasksTable).
		Where(squirrel.Eq{"task_id": taskID, "user_id": userID}).
		ToSql()
	if err != nil {
		return models.Task{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var task models.Task
	err = scanTask(r.QueryRowContext(ctx, query, args...), &task)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Task{}, ErrTaskNotFound
	case err != nil:
		log.Err(err).
			Str("func", "taskRepository.GetTask").
			Str("task_id", taskID).
			Msg("failed to get task")
		return models.Task{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return task, nil
}

// UpdateTask writes title, description, status and due_date of the task
// identified by (task.TaskID, task.UserID). Zero affected rows is not an
// error: the task may have been deleted after the caller read it.
func (r *taskRepository) UpdateTask(ctx context.Context, task models.Task) error {
	log := logger.FromContext(ctx)

	query, args, err := r.builder().
		Update(tasksTable).
		SetMap(map[string]any{
			"title":       task.Title,
			"description": task.Description,
			"status":      task.Status,
			"due_date":    task.DueDate,
		}).
		Where(squirrel.Eq{"task_id": task.TaskID, "user_id": task.UserID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var affected int64
	err = r.withRetry(ctx, func() error {
		res, execErr := r.ExecContext(ctx, query, args...)
		if execErr != nil {
			return execErr
		}
		affected, execErr = res.RowsAffected()
		return execErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "taskRepository.UpdateTask").
			Str("task_id", task.TaskID).
			Msg("failed to update task")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected == 0 {
		log.Warn().
			Str("func", "taskRepository.UpdateTask").
			Str("task_id", task.TaskID).
			Msg("task vanished before update")
	}

	return nil
}

func (r *taskRepository) DeleteTask(ctx context.Context, taskID, userID string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.builder().
		Delete(tasksTable).
		Where(squirrel.Eq{"task_id": taskID, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var affected int64
	err = r.withRetry(ctx, func() error {
		res, execErr := r.ExecContext(ctx, query, args...)
		if execErr != nil {
			return execErr
		}
		affected, execErr = res.RowsAffected()
		return execErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "taskRepository.DeleteTask").
			Str("task_id", taskID).
			Msg("failed to delete task")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected == 0 {
		return ErrTaskNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner, task *models.Task) error {
	return row.Scan(&task.TaskID, &task.Title, &task.Description, &task.Status, &task.DueDate, &task.UserID)
}
