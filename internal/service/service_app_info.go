package service

import (
	"context"
	"net"
	"strconv"
	"time"

	"github.com/MKhiriev/mcp-manager/internal/config"
	"github.com/MKhiriev/mcp-manager/internal/logger"
	"github.com/MKhiriev/mcp-manager/models"
)

const (
	healthyStatus     = "MCP Manager Server - Healthy"
	operationalStatus = "operational"
)

type appInfoService struct {
	appName    string
	appVersion string
	port       int
	now        func() time.Time

	logger *logger.Logger
}

func NewAppInfoService(app config.App, server config.Server, logger *logger.Logger) (AppInfoService, error) {
	if app.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appName:    app.Name,
		appVersion: app.Version,
		port:       portOf(server.HTTPAddress),
		now:        time.Now,
		logger:     logger,
	}, nil
}

func portOf(address string) int {
	_, port, err := net.SplitHostPort(address)
	if err != nil {
		return 0
	}
	n, err := strconv.Atoi(port)
	if err != nil {
		return 0
	}
	return n
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

func (s *appInfoService) Health(ctx context.Context) models.HealthStatus {
	return models.HealthStatus{
		Status:    healthyStatus,
		Port:      s.port,
		Service:   s.appName,
		Timestamp: s.now().UTC().Format("2006-01-02T15:04:05.000Z"),
		Version:   s.appVersion,
	}
}

func (s *appInfoService) Status(ctx context.Context) models.ServiceStatus {
	return models.ServiceStatus{
		Service: s.appName,
		Status:  operationalStatus,
		Port:    s.port,
		Version: s.appVersion,
	}
}
