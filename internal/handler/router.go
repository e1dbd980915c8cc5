package handler

import (
	_ "fare-compare-api/docs"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// NewRouter registers every route of the API.
func NewRouter(fares *FareHandler, corsOrigin string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(), CORS(corsOrigin))

	r.GET("/health", Health)
	r.POST("/fare", fares.Compare)
	r.POST("/api/fare", fares.Compare)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
