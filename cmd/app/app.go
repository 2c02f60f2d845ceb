package app

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/vietanh2810/activities-api/internal/api"
	"github.com/vietanh2810/activities-api/internal/config"
	"github.com/vietanh2810/activities-api/internal/db"
	"github.com/vietanh2810/activities-api/internal/logger"
	"github.com/vietanh2810/activities-api/internal/metrics"
	"github.com/vietanh2810/activities-api/internal/repository/dao"
)

func Start() error {
	conf, err := config.Load("./cmd/app/config.yml")
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	dbURL := os.Getenv("DATABASE_URL")
	if err = conf.Validate(dbURL); err != nil {
		return fmt.Errorf("invalid config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}
	defer func() { _ = zap.L().Sync() }()

	var postgresDB *gorm.DB
	if dbURL != "" {
		postgresDB, err = db.OpenPostgresWithURL(dbURL, conf.Postgres, conf.IsProduction())
	} else {
		postgresDB, err = db.OpenPostgres(conf.Postgres, conf.IsProduction())
	}
	if err != nil {
		return fmt.Errorf("failed to initialize database -> %w", err)
	}

	if err = dao.InitTables(postgresDB); err != nil {
		return fmt.Errorf("failed to migrate tables -> %w", err)
	}

	manager := metrics.NewManager(
		metrics.WithNamespace(conf.Metrics.Namespace),
		metrics.WithMetricsEnabled(conf.Metrics.Enabled),
	)

	s := api.NewServer(conf, postgresDB, manager)

	addr := ":" + s.Config.API.Port
	zap.L().Info(fmt.Sprintf("starting server at %v", addr))
	if err = s.Router.Run(addr); err != nil {
		return fmt.Errorf("failed to start the server -> %w", err)
	}

	return nil
}
