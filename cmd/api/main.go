package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"

	"photogifthub/internal/config"
	"photogifthub/internal/db"
	"photogifthub/internal/httpserver"
	"photogifthub/internal/kv"
	"photogifthub/internal/metrics"
	"photogifthub/internal/outbox"
	"photogifthub/internal/publisher"
	orderrepo "photogifthub/internal/repository/order"
	productrepo "photogifthub/internal/repository/product"
	reviewrepo "photogifthub/internal/repository/review"
	adminsvc "photogifthub/internal/service/admin"
	cartsvc "photogifthub/internal/service/cart"
	checkoutsvc "photogifthub/internal/service/checkout"
	productsvc "photogifthub/internal/service/product"
	profilesvc "photogifthub/internal/service/profile"
	reviewsvc "photogifthub/internal/service/review"
	walletsvc "photogifthub/internal/service/wallet"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	defer redisClient.Close()
	store := kv.NewRedis(redisClient)

	productRepo := productrepo.NewPostgres(dbpool)
	orderRepo := orderrepo.NewPostgres(dbpool)
	reviewRepo := reviewrepo.NewPostgres(dbpool)

	productService := productsvc.New(productRepo, logger)
	cartService := cartsvc.New(store)
	walletService := walletsvc.New(store)
	profileService := profilesvc.New(store)
	reviewService := reviewsvc.New(reviewRepo)
	checkoutService := checkoutsvc.New(cartService, walletService, orderRepo, logger)
	adminService := adminsvc.New(cfg.AdminEmail, cfg.AdminPassword)

	m := metrics.New()

	pollerCtx, stopPoller := context.WithCancel(ctx)
	defer stopPoller()
	poller := publisher.NewPoller(outbox.NewPostgres(dbpool), m, logger, cfg.KafkaBrokers...)
	go poller.Run(pollerCtx)

	srv := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		Products: productService,
		Carts:    cartService,
		Wallets:  walletService,
		Profiles: profileService,
		Reviews:  reviewService,
		Checkout: checkoutService,
		Admin:    adminService,
		Orders:   orderRepo,
		Metrics:  m,
	}, cfg.CORSOrigins)

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	stopPoller()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
