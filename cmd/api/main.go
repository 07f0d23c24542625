package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"plant-econ/internal/api/handlers"
	"plant-econ/internal/api/middleware"
)

func main() {
	// .env is optional; real deployments export the variables directly.
	_ = godotenv.Load()

	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	evaluateHandler := handlers.NewEvaluateHandler()
	simulateHandler := handlers.NewSimulateHandler()
	forecastHandler := handlers.NewForecastHandler()

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.POST("/evaluate", evaluateHandler.Evaluate)
		api.POST("/simulate", simulateHandler.Simulate)
		api.POST("/forecast", forecastHandler.Forecast)
		api.POST("/backcast", forecastHandler.Backcast)
	}

	addr := fmt.Sprintf(":%s", port)
	log.Printf("Starting API server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
