package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/fekuna/omnipos-pricing-service/config"
	catalogHandler "github.com/fekuna/omnipos-pricing-service/internal/catalog/handler"
	catalogRepoPkg "github.com/fekuna/omnipos-pricing-service/internal/catalog/repository"
	catalogUCPkg "github.com/fekuna/omnipos-pricing-service/internal/catalog/usecase"
	catH "github.com/fekuna/omnipos-pricing-service/internal/category/handler"
	catRepoPkg "github.com/fekuna/omnipos-pricing-service/internal/category/repository"
	catUCPkg "github.com/fekuna/omnipos-pricing-service/internal/category/usecase"
	"github.com/fekuna/omnipos-pricing-service/internal/offer"
	offerListenerPkg "github.com/fekuna/omnipos-pricing-service/internal/offer/listener"
	offerRepoPkg "github.com/fekuna/omnipos-pricing-service/internal/offer/repository"
	"github.com/fekuna/omnipos-pricing-service/internal/pkg/broker"
	"github.com/fekuna/omnipos-pricing-service/internal/pkg/cache"
	"github.com/fekuna/omnipos-pricing-service/internal/pkg/clock"
	"github.com/fekuna/omnipos-pricing-service/internal/pkg/logger"
	"github.com/fekuna/omnipos-pricing-service/internal/pkg/middleware"
	"github.com/fekuna/omnipos-pricing-service/internal/pkg/postgres"
	"github.com/fekuna/omnipos-pricing-service/internal/tenant"
	tenantRepoPkg "github.com/fekuna/omnipos-pricing-service/internal/tenant/repository"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load()
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	appLogger := logger.NewZapLogger(&logger.ZapLoggerConfig{
		IsDevelopment:     cfg.IsDevelopment(),
		Encoding:          cfg.Logger.Encoding,
		Level:             cfg.Logger.Level,
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	})
	defer appLogger.Sync()

	// 3. Connect to Database
	db, err := postgres.NewPostgres(&postgres.Config{
		Host:            cfg.Postgres.Host,
		Port:            cfg.Postgres.Port,
		User:            cfg.Postgres.User,
		Password:        cfg.Postgres.Password,
		DBName:          cfg.Postgres.DBName,
		SSLMode:         cfg.Postgres.SSLMode,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Postgres.ConnMaxLifetime) * time.Second,
		ConnMaxIdleTime: time.Duration(cfg.Postgres.ConnMaxIdleTime) * time.Second,
	})
	if err != nil {
		appLogger.Fatal("Could not connect to database", zap.Error(err))
	}
	defer db.Close()
	appLogger.Info("Connected to PostgreSQL database", zap.String("db_name", cfg.Postgres.DBName))

	// 4. Initialize Redis
	redisClient, err := cache.NewRedisClient(&cache.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		appLogger.Fatal("Could not connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()
	appLogger.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr))

	// 5. Initialize Repositories
	tenantResolver := tenantRepoPkg.NewCachedResolver(
		tenantRepoPkg.NewPGRepository(db), redisClient.Client, cfg.Redis.TenantTTL, appLogger,
	)
	offerCache := offerRepoPkg.NewCachedRepository(
		offerRepoPkg.NewPGRepository(db), redisClient.Client, cfg.Redis.OfferTTL, appLogger,
	)
	offerRepo := offer.NewLoader(offerCache, appLogger)
	catalogRepo := catalogRepoPkg.NewPGRepository(db)
	catRepo := catRepoPkg.NewPGRepository(db)

	// 6. Initialize Kafka Consumer
	kafkaConsumer := broker.NewConsumer(&broker.Config{
		Brokers: cfg.Kafka.Brokers,
		Topic:   cfg.Kafka.Topic,
		GroupID: cfg.Kafka.GroupID,
	})
	defer kafkaConsumer.Close()
	appLogger.Info("Connected to Kafka Consumer", zap.Strings("brokers", cfg.Kafka.Brokers), zap.String("topic", cfg.Kafka.Topic))

	// 7. Initialize UseCases
	catalogUC := catalogUCPkg.NewCatalogUseCase(catalogRepo, offerRepo, clock.NewRealClock(), appLogger)
	catUC := catUCPkg.NewCategoryUseCase(catRepo, appLogger)

	// 8. Start Listener
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	offerListener := offerListenerPkg.NewOfferListener(kafkaConsumer, offerCache, appLogger)
	go offerListener.Start(ctx)

	// 9. HTTP Server
	router := chi.NewRouter()
	router.Use(chimw.RequestID)
	router.Use(chimw.RealIP)
	router.Use(middleware.RequestLogger(appLogger))
	router.Use(chimw.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", tenant.HeaderBrandID, tenant.HeaderLocationID},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		pingCtx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(pingCtx); err != nil {
			http.Error(w, "database unavailable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Group(func(r chi.Router) {
		r.Use(tenant.Middleware(tenantResolver, tenant.MiddlewareConfig{
			BaseDomain:   cfg.Tenant.BaseDomain,
			TrustHeaders: cfg.Tenant.TrustHeaders,
		}, appLogger))
		catalogHandler.NewHTTPHandler(catalogUC, appLogger).Register(r)
		catH.NewCategoryHandler(catUC, appLogger).Register(r)
	})

	httpServer := &http.Server{
		Addr:              listenAddr(cfg.Server.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		appLogger.Info("Starting HTTP server", zap.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("failed to serve http", zap.Error(err))
		}
	}()

	// 10. gRPC Server
	lis, err := net.Listen("tcp", listenAddr(cfg.Server.GRPCPort))
	if err != nil {
		appLogger.Fatal("failed to listen", zap.Error(err))
	}

	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			middleware.UnaryRecoveryInterceptor(appLogger),
			middleware.UnaryLoggingInterceptor(appLogger),
			tenant.UnaryServerInterceptor("/grpc.health.v1.", "/grpc.reflection."),
		),
	)

	catalogHandler.RegisterPricingServiceServer(grpcServer, catalogHandler.NewPricingHandler(catalogUC, appLogger))

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus(catalogHandler.PricingServiceName, healthpb.HealthCheckResponse_SERVING)

	reflection.Register(grpcServer)

	go func() {
		appLogger.Info("Starting gRPC server", zap.String("addr", lis.Addr().String()))
		if err := grpcServer.Serve(lis); err != nil {
			appLogger.Fatal("failed to serve grpc", zap.Error(err))
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	healthServer.Shutdown()
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("http shutdown", zap.Error(err))
	}
	grpcServer.GracefulStop()
	appLogger.Info("Server stopped")
}

func listenAddr(port string) string {
	if !strings.Contains(port, ":") {
		return ":" + port
	}
	return port
}
