package main

import (
	"context"
	"log"
	"net/http"
	"os"
	ossignal "os/signal"
	"syscall"
	"time"

	"nifty-advisor/internal/cache"
	"nifty-advisor/internal/config"
	"nifty-advisor/internal/handler"
	"nifty-advisor/internal/provider"
	"nifty-advisor/internal/score"
	"nifty-advisor/internal/service"
	"nifty-advisor/internal/stream"
	"nifty-advisor/internal/symbol"
	"nifty-advisor/pkg/tracing"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/trace"

	_ "nifty-advisor/docs"
)

var (
	loadEnvFunc    = godotenv.Load
	loadConfigFunc = config.Load
	initTracerFunc = tracing.InitTracer
	newCacheFunc   = newSeriesCache
	newProviderFunc = func(cfg *config.Config) provider.MarketDataProvider {
		return newMarketDataProvider(cfg)
	}
	newMarketServiceFunc    = service.NewMarketService
	newRecommendServiceFunc = func(tracer trace.Tracer, market service.SeriesFetcher, cfg *config.Config) *service.RecommendService {
		return service.NewRecommendService(tracer, market, score.NewEngine(), symbol.Universe(), cfg.RankWorkers, cfg.DefaultBudget)
	}
	newStreamManagerFunc = func(tracer trace.Tracer, market stream.PriceFetcher, cfg *config.Config) *stream.Manager {
		return stream.NewManager(tracer, market, time.Duration(cfg.StreamPollSecs)*time.Second, cfg.StreamMaxSubs)
	}
	newHandlerFunc         = handler.New
	newRouterFunc          = gin.Default
	setupSignalNotify      = ossignal.Notify
	waitForSignalFunc      = func(quit <-chan os.Signal) { <-quit }
	startHTTPServerFunc    = func(srv *http.Server) error { return srv.ListenAndServe() }
	shutdownHTTPServerFunc = func(srv *http.Server, ctx context.Context) error { return srv.Shutdown(ctx) }
)

// @title           Nifty Advisor API
// @version         1.0
// @description     Indian equity screening and recommendation service.

// @host      localhost:8080
// @BasePath  /
func main() {
	loadEnvFunc()

	cfg := loadConfigFunc()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init tracing
	tp, tracer, err := initTracerFunc(ctx)
	if err != nil {
		log.Fatalf("failed to initialize tracer: %v", err)
	}
	defer func() {
		if err := tp.Shutdown(ctx); err != nil {
			log.Printf("error shutting down tracer provider: %v", err)
		}
	}()

	// Wire the data path: provider -> cache -> services
	dataProvider := newProviderFunc(cfg)
	seriesCache := newCacheFunc(ctx, cfg)
	marketService := newMarketServiceFunc(
		tracer,
		dataProvider,
		seriesCache,
		cfg.HistoryRange,
		time.Duration(cfg.FetchTimeoutSecs)*time.Second,
	)
	recommendService := newRecommendServiceFunc(tracer, marketService, cfg)
	streamManager := newStreamManagerFunc(tracer, marketService, cfg)

	h := newHandlerFunc(tracer, marketService, recommendService, streamManager)

	r := newRouterFunc()
	r.Use(otelgin.Middleware("nifty-advisor"))
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
	}))

	h.RegisterRoutes(r)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		if err := startHTTPServerFunc(srv); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	setupSignalNotify(quit, syscall.SIGINT, syscall.SIGTERM)
	waitForSignalFunc(quit)
	log.Println("Shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := shutdownHTTPServerFunc(srv, shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}

func newMarketDataProvider(cfg *config.Config) provider.MarketDataProvider {
	timeout := time.Duration(cfg.FetchTimeoutSecs) * time.Second
	switch cfg.Provider {
	case "quoteapi":
		return provider.NewQuoteAPI(cfg.QuoteAPIKey, cfg.QuoteAPIURL, timeout)
	case "proxy":
		return provider.NewProxy(cfg.ProxyBaseURL, timeout)
	default:
		return provider.NewYahoo(timeout)
	}
}

// newSeriesCache prefers Redis when configured and reachable, otherwise
// falls back to the bounded in-memory cache.
func newSeriesCache(ctx context.Context, cfg *config.Config) cache.SeriesCache {
	ttl := time.Duration(cfg.CacheTTLSecs) * time.Second
	if cfg.RedisURL != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisURL})
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("Warning: Redis unreachable (%v), using in-memory series cache", err)
		} else {
			log.Println("Connected to Redis")
			return cache.NewRedis(client, ttl)
		}
	}
	return cache.NewMemory(ttl, cfg.CacheMaxEntries)
}
