//go:build lambda
// +build lambda

package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/davecgh/go-spew/spew"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/convertly/convertly-api/internal/config"
	"github.com/convertly/convertly-api/internal/logger"
	"github.com/convertly/convertly-api/internal/server"
)

// @title           Convertly API
// @version         1.0
// @description     Currency, temperature, length and weight conversion service.
// @BasePath        /

var ginLambda *ginadapter.GinLambda

func init() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger.InitLogger(cfg.Stage)
	gin.SetMode(gin.ReleaseMode)

	ctx := context.Background()
	srv, err := server.New(ctx, cfg)
	if err != nil {
		logger.Fatal("Unable to build server", zap.Error(err))
	}

	// Invocations are short lived, so rates are refreshed once per cold start
	// instead of on a background ticker.
	if _, err := srv.ExchangeRates().Refresh(ctx); err != nil {
		logger.Warn("Starting with fallback exchange rates", zap.Error(err))
	}

	ginLambda = ginadapter.New(srv.Router())
}

func Handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	logger.Debug("Received Lambda request",
		zap.String("path", req.Path),
		zap.String("request", spew.Sdump(req)),
	)

	return ginLambda.ProxyWithContext(ctx, req)
}

func main() {
	defer func() { _ = logger.Sync() }()
	lambda.Start(Handler)
}
