package main

import (
	"fmt"
	"log/slog"

	log "github.com/charmbracelet/log"

	"github.com/finpal/finpal/infra"
	infrarepo "github.com/finpal/finpal/infra/repository"
	"github.com/finpal/finpal/pkg/config"
	authsvc "github.com/finpal/finpal/pkg/service/auth"
	"github.com/finpal/finpal/pkg/service/billing"
	repairsvc "github.com/finpal/finpal/pkg/service/repair"
	txsvc "github.com/finpal/finpal/pkg/service/transaction"
	"github.com/finpal/finpal/webapi"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	logger := slog.Default()

	cfg, err := config.Load(logger)
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := infra.AutoMigrate(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	uow := infrarepo.NewUoW(db)
	billingSvc := billing.NewService(uow, logger)
	repairSvc := repairsvc.NewService(uow, billingSvc, billingSvc, logger)
	transactionSvc := txsvc.NewService(uow, billingSvc, logger)
	authSvc := authsvc.NewService(logger)

	app := webapi.NewApp(repairSvc, transactionSvc, authSvc, cfg)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("starting server", "env", cfg.Env, "address", addr)

	return app.Listen(addr)
}
