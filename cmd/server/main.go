package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"servicecenter/internal/auth"
	"servicecenter/internal/commons"
	"servicecenter/internal/config"
	"servicecenter/internal/domain"
	"servicecenter/internal/infrastructure/logger"
	"servicecenter/internal/infrastructure/mysql"
	"servicecenter/internal/master"
	"servicecenter/internal/order"
	"servicecenter/internal/order/repository"
	"servicecenter/internal/order/usecase"
	"servicecenter/internal/seed"
	"servicecenter/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	roster, err := loadRoster(cfg.Auth.RosterFile)
	if err != nil {
		zapLogger.Fatal("loading roster", zap.Error(err))
	}
	zapLogger.Info("roster loaded",
		zap.Int("credentials", len(roster.Credentials)),
		zap.Int("masters", len(roster.Masters)),
	)

	orders, closeStore, err := openOrderStore(cfg, zapLogger)
	if err != nil {
		zapLogger.Fatal("opening order store", zap.Error(err))
	}
	defer closeStore()

	authModule := auth.NewModule(roster.Credentials, cfg.Auth, zapLogger)
	masterModule := master.NewModule(roster.Masters, orders, zapLogger)
	orderCtrl := order.NewModule(orders, masterModule.UseCase, zapLogger)

	router := server.NewRouter(server.Controllers{
		Auth:   authModule.Controller,
		Order:  orderCtrl,
		Master: masterModule.Controller,
	}, authModule.Tokens, zapLogger)

	srv := server.New(cfg.Server, router, zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	if err := srv.Shutdown(context.Background()); err != nil {
		zapLogger.Fatal("server shutdown failed", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}

func loadRoster(path string) (*domain.Roster, error) {
	if path == "" {
		r := seed.Roster()
		return &r, nil
	}
	return commons.LoadRoster(path)
}

func openOrderStore(cfg *config.Config, logger *zap.Logger) (usecase.OrderRepository, func(), error) {
	if cfg.Storage.Driver == config.StorageMemory {
		var initial []domain.Order
		if cfg.Storage.SeedOrders {
			initial = seed.Orders()
		}
		logger.Info("using in-memory order store", zap.Int("orders", len(initial)))
		return repository.NewMemoryOrderRepository(initial...), func() {}, nil
	}

	db, err := mysql.NewConnection(cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("connecting to database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := mysql.EnsureSchema(ctx, db); err != nil {
		db.Close()
		return nil, nil, err
	}

	repo := repository.NewMySQLOrderRepository(db)
	if cfg.Storage.SeedOrders {
		if err := seedIfEmpty(ctx, repo); err != nil {
			db.Close()
			return nil, nil, err
		}
	}
	logger.Info("database connected", zap.String("host", cfg.Database.Host), zap.String("database", cfg.Database.Name))

	return repo, func() { db.Close() }, nil
}

func seedIfEmpty(ctx context.Context, repo usecase.OrderRepository) error {
	existing, err := repo.List(ctx)
	if err != nil {
		return fmt.Errorf("checking for existing orders: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}
	for _, o := range seed.Orders() {
		if err := repo.Create(ctx, o); err != nil {
			return fmt.Errorf("seeding order %s: %w", o.ID, err)
		}
	}
	return nil
}
