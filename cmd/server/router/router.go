package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"solar-forecast/cmd/server/handlers"
	"solar-forecast/cmd/server/middleware"
	"solar-forecast/cmd/server/services"
	_ "solar-forecast/docs"
)

func New(chatSvc *services.ChatService) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestTrace())

	// Health check
	r.GET("/", handlers.HealthHandler())

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// The trailing slash matters: the chat client posts to exactly /chat/.
	r.POST("/chat/", handlers.ChatHandler(chatSvc))

	return r
}
