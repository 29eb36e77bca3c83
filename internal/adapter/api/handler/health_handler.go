package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"ghargpt/internal/infrastructure/mongodb"
)

type HealthHandler struct {
	mongoClient *mongodb.Client
}

var healthHandler *HealthHandler

func NewHealthHandler(mongoClient *mongodb.Client) *HealthHandler {
	return &HealthHandler{
		mongoClient: mongoClient,
	}
}

func SetupHealthHandler(mongoClient *mongodb.Client) {
	healthHandler = NewHealthHandler(mongoClient)
}

func GetHealthHandler() *HealthHandler {
	return healthHandler
}

func (h *HealthHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *HealthHandler) CheckHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "Server is running",
		"time":   time.Now().Format(time.RFC3339),
	})
}

func (h *HealthHandler) CheckDatabaseHealth(c echo.Context) error {
	if err := h.mongoClient.Ping(c.Request().Context()); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"mongodb": "down",
			"error":   err.Error(),
		})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"mongodb": "ok",
	})
}
