package service

import (
	"context"

	"github.com/MKhiriev/go-task-tracker/internal/logger"
	"github.com/MKhiriev/go-task-tracker/models"
)

type appInfoService struct {
	buildInfo models.AppBuildInfo
	pinger    Pinger

	logger *logger.Logger
}

func NewAppInfoService(buildInfo models.AppBuildInfo, pinger Pinger, logger *logger.Logger) (AppInfoService, error) {
	if buildInfo.BuildVersion() == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		buildInfo: buildInfo,
		pinger:    pinger,
		logger:    logger,
	}, nil
}

func (s *appInfoService) GetAppBuildInfo(ctx context.Context) models.AppBuildInfo {
	return s.buildInfo
}

func (s *appInfoService) Health(ctx context.Context) error {
	if s.pinger == nil {
		return nil
	}

	if err := s.pinger.Ping(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Msg("health check failed")
		return err
	}

	return nil
}
