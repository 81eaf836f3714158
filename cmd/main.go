package main

import (
	"context"
	"os"
	"time"

	auctionapp "github.com/bidworks/marketengine/internal/auction/application"
	auctionhttp "github.com/bidworks/marketengine/internal/auction/infra/http"
	auctionpg "github.com/bidworks/marketengine/internal/auction/infra/repository/postgres"
	carthttp "github.com/bidworks/marketengine/internal/cart/infra/http"
	"github.com/bidworks/marketengine/internal/shared/db"
	"github.com/bidworks/marketengine/internal/shared/db/migrations"
	"github.com/bidworks/marketengine/internal/shared/httpserver"
	"github.com/bidworks/marketengine/internal/shared/logger"
	userapp "github.com/bidworks/marketengine/internal/user/application"
	userhttp "github.com/bidworks/marketengine/internal/user/infra/http"
	userpg "github.com/bidworks/marketengine/internal/user/infra/repository/postgres"
	"github.com/gofiber/fiber/v2/middleware/session"
	"go.uber.org/zap"
)

const defaultSweepInterval = time.Minute

func main() {
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting marketengine server...")

	log.Info("Running database migrations...")
	if err := migrations.RunMigrations(); err != nil {
		log.Fatal("Database migration failed", zap.Error(err))
	}

	ctx := context.Background()
	pool, err := db.GetPostgresPool(ctx)
	if err != nil {
		log.Fatal("Database connection failed", zap.Error(err))
	}
	defer pool.Close()

	itemRepo := auctionpg.NewItemRepository(pool)
	bidRepo := auctionpg.NewBidRepository(pool)
	userRepo := userpg.NewUserRepository(pool)
	businessRepo := userpg.NewBusinessRepository(pool)

	auctionSvc := auctionapp.NewAuctionService(
		auctionapp.NewPlaceBidUseCase(itemRepo, bidRepo, pool),
		auctionapp.NewGetItemViewUseCase(itemRepo),
		auctionapp.NewListBidsUseCase(itemRepo, bidRepo),
		auctionapp.NewSweepExpiredUseCase(itemRepo),
		auctionapp.NewCreateItemUseCase(itemRepo, pool),
		auctionapp.NewAssignItemUseCase(itemRepo, pool),
	)
	userSvc := userapp.NewUserService(
		userapp.NewRegisterUserUseCase(userRepo),
		userapp.NewRolesService(businessRepo, itemRepo),
		userRepo,
	)

	server := httpserver.NewServer()
	auctionhttp.NewHandler(auctionSvc).RegisterRoutes(server.App())
	carthttp.NewHandler(session.New()).RegisterRoutes(server.App())
	userhttp.NewHandler(userSvc).RegisterRoutes(server.App())

	// The sweep runs as a scheduled job, not per request; viewing an item
	// still corrects its own status lazily in between runs.
	go runSweep(ctx, auctionSvc, sweepInterval())

	addr := os.Getenv("SERVER_ADDRESS")
	if addr == "" {
		addr = ":9000"
	}
	if err := server.Start(addr); err != nil {
		log.Fatal("HTTP server failed", zap.Error(err))
	}
}

func sweepInterval() time.Duration {
	raw := os.Getenv("SWEEP_INTERVAL")
	if raw == "" {
		return defaultSweepInterval
	}
	interval, err := time.ParseDuration(raw)
	if err != nil || interval <= 0 {
		logger.GetLogger().Warn("Invalid SWEEP_INTERVAL, using default",
			zap.String("value", raw),
			zap.Duration("default", defaultSweepInterval),
		)
		return defaultSweepInterval
	}
	return interval
}

func runSweep(ctx context.Context, svc auctionapp.AuctionService, interval time.Duration) {
	log := logger.GetLogger()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := svc.SweepExpired(ctx, time.Now()); err != nil {
				log.Error("Status sweep failed", zap.Error(err))
			}
		}
	}
}
