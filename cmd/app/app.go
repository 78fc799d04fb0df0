package app

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/vietanh2810/pos-api/internal/api"
	"github.com/vietanh2810/pos-api/internal/config"
	"github.com/vietanh2810/pos-api/internal/console"
	"github.com/vietanh2810/pos-api/internal/db"
	"github.com/vietanh2810/pos-api/internal/logger"
	"github.com/vietanh2810/pos-api/internal/repository"
	"github.com/vietanh2810/pos-api/internal/repository/dao"
	"github.com/vietanh2810/pos-api/internal/service"
)

func Start() error {
	conf, err := config.Load("./cmd/app/config.yml")
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}

	dbURL := os.Getenv("DATABASE_URL")
	var postgresDB *gorm.DB
	if dbURL != "" {
		postgresDB, err = db.OpenPostgresWithURL(dbURL)
	} else {
		postgresDB, err = db.OpenPostgres(conf.Postgres)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize database -> %w", err)
	}

	if err = dao.InitTables(postgresDB); err != nil {
		return fmt.Errorf("failed to initialize tables -> %w", err)
	}

	s := api.NewServer(conf, postgresDB)

	addr := ":" + s.Config.API.Port

	if !conf.Console.Enabled {
		zap.L().Info(fmt.Sprintf("starting server at %v", addr))
		if err = s.Router.Run(addr); err != nil {
			return fmt.Errorf("failed to start the server -> %w", err)
		}

		return nil
	}

	// Same split as a desktop POS: the API serves in the background while the
	// operator console owns the foreground.
	go func() {
		zap.L().Info(fmt.Sprintf("starting server at %v", addr))
		if err := s.Router.Run(addr); err != nil {
			zap.L().Fatal("failed to start the server", zap.Error(err))
		}
	}()

	productRepo := repository.NewProductRepository(dao.NewProductDAO(postgresDB))
	saleRepo := repository.NewSaleRepository(dao.NewSaleDAO(postgresDB))
	svc := service.NewInventoryService(productRepo, saleRepo)

	c := console.New(svc, os.Stdin, os.Stdout)
	if err = c.Run(); err != nil {
		return fmt.Errorf("console.Run -> %w", err)
	}

	return nil
}
