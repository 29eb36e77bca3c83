package main

import (
	"context"
	"log"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"ghargpt/internal/adapter/api"
	"ghargpt/internal/adapter/api/handler"
	"ghargpt/internal/adapter/api/router"
	"ghargpt/internal/adapter/repository"
	"ghargpt/internal/infrastructure/mongodb"
	"ghargpt/internal/usecase"
	"ghargpt/pkg/config"
	"ghargpt/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	mongoClient, err := mongodb.NewClient(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongoClient.Close(ctx)
	logger.Info("Connected to MongoDB database %s", cfg.MongoDatabase)

	propertyRepo := repository.NewMongoPropertyRepository(mongoClient.Database(), cfg.PropertiesCollection)

	propertyUseCase := usecase.NewPropertyUseCase(propertyRepo)

	handler.Setup(propertyUseCase)
	handler.SetupHealthHandler(mongoClient)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	router.Setup(e)

	logger.Info("Starting server on port %s...", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
