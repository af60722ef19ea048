package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"

	"github.com/maxjung/warbler/internal/database"
	"github.com/maxjung/warbler/internal/handlers"
	"github.com/maxjung/warbler/internal/services"
	"github.com/maxjung/warbler/pkg/auth"
)

type Server struct {
	Router *gin.Engine
	DB     *database.Database
	Redis  *redis.Client
}

func NewServer() *Server {
	if err := godotenv.Load(".env.local"); err != nil {
		if err := godotenv.Load(); err != nil {
			log.Println(".env not found, using environment variables")
		}
	}

	dbConn := &database.Database{}
	if err := dbConn.Connect(); err != nil {
		log.Fatalf("Postgres connect failed: %v", err)
	}

	redisOpts, err := redis.ParseURL(os.Getenv("REDIS_URL"))
	if err != nil {
		log.Fatalf("invalid REDIS_URL: %v", err)
	}
	rdb := redis.NewClient(redisOpts)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("Redis connect failed: %v", err)
	}

	jwtMgr := auth.NewJWTManager(
		os.Getenv("JWT_SECRET"),
		24*time.Hour,
	)

	authService := services.NewAuthService(dbConn)
	authH := handlers.NewAuthHandler(authService, jwtMgr, rdb)
	userH := handlers.NewUserHandler(dbConn)
	messageH := handlers.NewMessageHandler(dbConn)

	router := gin.Default()
	APIEndpoints(router, jwtMgr, rdb, authH, userH, messageH)

	return &Server{
		Router: router,
		DB:     dbConn,
		Redis:  rdb,
	}
}

func (s *Server) Run() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server starting on port %s", port)
	if err := s.Router.Run(":" + port); err != nil {
		log.Fatalf("Server run error: %v", err)
	}
}
