package main

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/maxjung/warbler/internal/handlers"
	"github.com/maxjung/warbler/internal/middleware"
	"github.com/maxjung/warbler/pkg/auth"
)

func APIEndpoints(
	r *gin.Engine,
	jwtMgr *auth.JWTManager,
	rdb *redis.Client,
	authH *handlers.AuthHandler,
	userH *handlers.UserHandler,
	messageH *handlers.MessageHandler,
) {
	// Auth endpoints
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/signup", authH.Signup)
		authGroup.POST("/login", authH.Login)
	}

	// Public reads
	r.GET("/users/:id", userH.GetUser)
	r.GET("/users/search", userH.SearchUsers)
	r.GET("/messages/:id", messageH.GetMessage)

	// Everything identity-scoped sits behind the session gate.
	api := r.Group("/")
	api.Use(middleware.AuthMiddleware(jwtMgr, rdb))
	{
		api.POST("/auth/logout", authH.Logout)

		api.GET("/feed", messageH.Feed)
		api.POST("/messages", messageH.CreateMessage)
		api.DELETE("/messages/:id", messageH.DeleteMessage)
		api.POST("/messages/:id/like", messageH.LikeMessage)

		api.GET("/users/:id/followers", userH.Followers)
		api.GET("/users/:id/following", userH.Following)
		api.GET("/users/:id/likes", userH.Likes)
		api.POST("/users/:id/follow", userH.Follow)
		api.POST("/users/:id/unfollow", userH.Unfollow)
		api.PATCH("/users/me", userH.UpdateMe)
		api.DELETE("/users/me", userH.DeleteMe)
	}
}
