package service

import (
	"log/slog"

	"github.com/borchsolutions/tablero/internal/config"
)

// Services holds all service instances used by the application
type Services struct {
	Dashboard *DashboardService
	Report    *ReportService
	Config    *ConfigService
}

// NewServices creates a Services instance from a resolved configuration.
// A nil logger means the slog default at the time of each call.
func NewServices(configPath string, cfg config.Config, logger *slog.Logger) *Services {
	return &Services{
		Dashboard: NewDashboardService(cfg, logger),
		Report:    NewReportService(cfg, logger),
		Config:    NewConfigService(configPath, cfg),
	}
}
