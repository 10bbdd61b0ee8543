package service

import (
	"github.com/MKhiriev/go-task-tracker/internal/config"
	"github.com/MKhiriev/go-task-tracker/internal/logger"
	"github.com/MKhiriev/go-task-tracker/internal/store"
	"github.com/MKhiriev/go-task-tracker/internal/utils"
	"github.com/MKhiriev/go-task-tracker/models"
)

type Services struct {
	AuthService    AuthService
	TaskService    TaskService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	idGenerator := utils.NewUUIDGenerator()

	appInfoService, err := NewAppInfoService(buildInfo, storages, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, idGenerator, cfg.App, logger),
		TaskService:    NewTaskService(storages.TaskRepository, idGenerator, logger),
		AppInfoService: appInfoService,
	}, nil
}
