package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"order-reports/internal/adapter/logger"
	"order-reports/internal/adapter/postgres"
	"order-reports/internal/adapter/rabbitmq"
	"order-reports/internal/app/digest"
	"order-reports/internal/app/report"
	"order-reports/internal/config"
	"order-reports/internal/interfaces"

	amqpAdapter "order-reports/internal/adapter/amqp"
	httpAdapter "order-reports/internal/adapter/http"
)

func main() {
	mode := flag.String("mode", "", "Service mode: report-service, digest-publisher, digest-subscriber")
	configPath := flag.String("config", "config.yaml", "Path to config file")
	port := flag.Int("port", 0, "HTTP port (overrides config)")
	flag.Parse()

	if *mode == "" {
		log.Fatal("--mode flag is required")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if *port != 0 {
		cfg.HTTP.Port = *port
	}

	ctx := context.Background()

	lgr := logger.New(*mode)

	switch *mode {
	case "report-service":
		db := mustConnectDB(ctx, cfg, lgr)
		defer db.Close()

		runReportService(db, lgr, cfg.HTTP.Port)

	case "digest-publisher":
		db := mustConnectDB(ctx, cfg, lgr)
		defer db.Close()

		mqConn := mustConnectMQ(cfg, lgr)
		defer mqConn.Close()

		runDigestPublisher(ctx, db, mqConn, lgr, cfg.Digest)

	case "digest-subscriber":
		mqConn := mustConnectMQ(cfg, lgr)
		defer mqConn.Close()

		runDigestSubscriber(ctx, mqConn, lgr)

	default:
		log.Fatalf("Invalid mode: %s", *mode)
	}
}

func mustConnectDB(ctx context.Context, cfg *config.Config, lgr logger.Logger) postgres.DB {
	db, err := postgres.Connect(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}

	lgr.Info("db_connected", "Connected to PostgreSQL database", "", map[string]any{
		"host": cfg.Database.Host,
		"db":   cfg.Database.Database,
	})

	return db
}

func mustConnectMQ(cfg *config.Config, lgr logger.Logger) rabbitmq.Connection {
	mqConn, err := rabbitmq.Connect(cfg.RabbitMQ)
	if err != nil {
		log.Fatalf("Failed to connect to RabbitMQ: %v", err)
	}

	lgr.Info("rabbitmq_connected", "Connected to RabbitMQ", "", map[string]any{
		"host": cfg.RabbitMQ.Host,
	})

	return mqConn
}

func runReportService(db postgres.DB, lgr logger.Logger, port int) {
	reportRepo := postgres.NewReportRepository(db)
	reportService := report.NewService(reportRepo, lgr)
	reportHandler := httpAdapter.NewReportHandler(reportService, lgr)

	mux := http.NewServeMux()
	mux.HandleFunc("/sentInStoreOrders", reportHandler.SentInStoreOrders)
	mux.HandleFunc("/storeStatistic", reportHandler.StoreStatistic)
	mux.HandleFunc("/ordersWithProductInCategories", reportHandler.OrdersWithProductInCategories)
	mux.HandleFunc("/ordersWithProductCategory", reportHandler.OrdersWithProductCategory)
	mux.HandleFunc("/orderDayStatistic", reportHandler.OrderDayStatistic)
	mux.HandleFunc("/categoryDescendants", reportHandler.CategoryDescendants)

	handler := httpAdapter.LoggingMiddleware(lgr)(mux)
	handler = httpAdapter.RecoveryMiddleware(lgr)(handler)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	lgr.Info("service_started", fmt.Sprintf("Report Service started on port %d", port), "", map[string]any{
		"port": port,
	})

	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		lgr.Info("shutdown_initiated", "Shutting down Report Service", "", nil)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			lgr.Error("shutdown_error", "Error during shutdown", "", nil, err)
		}
	}()

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		lgr.Error("server_error", "Server error", "", nil, err)
	}
}

func runDigestPublisher(ctx context.Context, db postgres.DB, mqConn rabbitmq.Connection, lgr logger.Logger, cfg config.DigestConfig) {
	reportRepo := postgres.NewReportRepository(db)
	reportService := report.NewService(reportRepo, lgr)
	publisher := rabbitmq.NewPublisher(mqConn)

	digestService := digest.NewService(
		reportService,
		publisher,
		lgr,
		time.Duration(cfg.IntervalSeconds)*time.Second,
		cfg.WindowDays,
	)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		lgr.Info("shutdown_initiated", "Shutting down Digest Publisher", "", nil)
		cancel()
	}()

	lgr.Info("service_started", "Digest Publisher started", "", map[string]any{
		"interval_seconds": cfg.IntervalSeconds,
		"window_days":      cfg.WindowDays,
	})

	if err := digestService.Run(runCtx); err != nil && err != context.Canceled {
		lgr.Error("publisher_error", "Digest publisher stopped", "", nil, err)
	}
}

func runDigestSubscriber(ctx context.Context, mqConn rabbitmq.Connection, lgr logger.Logger) {
	consumer := rabbitmq.NewConsumer(mqConn)
	digestHandler := amqpAdapter.NewDigestHandler(lgr)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	lgr.Info("service_started", "Digest Subscriber started", "", nil)

	go func() {
		var handler interfaces.DigestHandler = digestHandler.HandleDigest
		if err := consumer.ConsumeDigests(runCtx, handler); err != nil && err != context.Canceled {
			lgr.Error("consumer_error", "Error consuming digests", "", nil, err)
		}
	}()

	sigint := make(chan os.Signal, 1)
	signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
	<-sigint

	lgr.Info("shutdown_initiated", "Shutting down Digest Subscriber", "", nil)
	cancel()
}
