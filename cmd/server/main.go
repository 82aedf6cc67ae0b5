package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Armeldehe/ivoirestore-client/internal/handlers"
	"github.com/Armeldehe/ivoirestore-client/internal/marketplace"
	"github.com/Armeldehe/ivoirestore-client/internal/metrics"
	"github.com/Armeldehe/ivoirestore-client/internal/session"
)

func setupRouter(cfg handlers.HandlerConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	// health
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))

	handlers.RegisterCartRoutes(r, cfg)
	handlers.RegisterCheckoutRoutes(r, cfg)
	handlers.RegisterCatalogRoutes(r, cfg)

	return r
}

func sessionTTL() time.Duration {
	if v := os.Getenv("SESSION_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return 30 * time.Minute
}

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	sessions := session.NewManager(sessionTTL(), logger)
	sessions.StartSweeper(ctx, 5*time.Minute)

	cfg := handlers.HandlerConfig{
		Sessions:    sessions,
		Marketplace: marketplace.NewClient(marketplace.BaseURLFromEnv(), logger),
		Logger:      logger,
		Metrics:     metrics.New(),
	}

	r := setupRouter(cfg)

	// if environment variable RUN_LOCAL is set to "true", run local HTTP server for development.
	if os.Getenv("RUN_LOCAL") == "true" {
		addr := ":8080"
		logger.Info("running local server", zap.String("addr", addr))
		if err := r.Run(addr); err != nil {
			logger.Fatal("failed to run local server", zap.Error(err))
		}
		return
	}

	// lambda adapter
	adapter := ginadapter.New(r)

	lambda.Start(func(ctx context.Context, req events.APIGatewayProxyRequest) (interface{}, error) {
		return adapter.ProxyWithContext(ctx, req)
	})
}
