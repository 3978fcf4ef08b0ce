package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/ashishk-dev/renteasy-backend/config"
	"github.com/ashishk-dev/renteasy-backend/controllers"
	"github.com/ashishk-dev/renteasy-backend/routes"
	"github.com/ashishk-dev/renteasy-backend/utils"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
)

func loadEnv() {
	if err := godotenv.Load(); err != nil {
		utils.Logger.Infof("No .env file loaded: %v", err)
	}
}

func setupRouter(redisClient *redis.Client, media controllers.MediaUploader) *mux.Router {
	router := mux.NewRouter()
	routes.Routes(router, redisClient, media)
	return router
}

func main() {
	utils.InitLogger("renteasy")
	loadEnv()

	client, err := config.ConnectDB()
	if err != nil {
		utils.Logger.Fatalf("Failed to connect to the database: %v", err)
	}
	defer config.CloseDBConnection(client)

	config.InitCollections(client)

	media, err := config.InitCloudinary()
	if err != nil {
		utils.Logger.Fatalf("Failed to configure media uploads: %v", err)
	}

	redisClient := config.InitRedis()

	router := setupRouter(redisClient, media)

	corsOptions := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})
	handler := corsOptions.Handler(router)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:           ":" + port,
		Handler:        handler,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		utils.Logger.Infof("Server running on port %s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			utils.Logger.Fatalf("Error starting server: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	<-sigCh

	utils.Logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		utils.Logger.Fatalf("Error during server shutdown: %v", err)
	}
	utils.Logger.Info("Server gracefully stopped")
}
