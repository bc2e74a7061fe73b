package service

import (
	"github.com/MKhiriev/go-health-server/internal/config"
	"github.com/MKhiriev/go-health-server/internal/logger"
	"github.com/MKhiriev/go-health-server/internal/store"
	"github.com/MKhiriev/go-health-server/models"
)

type Services struct {
	HealthService  HealthService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	return &Services{
		HealthService:  NewHealthService(storages.Pingers(), cfg.Storage.DB.PingTimeout, logger),
		AppInfoService: NewAppInfoService(buildInfo, logger),
	}
}
