package products

import (
	"codeberg.org/glowreview/server/glowreview/products"
	"github.com/gin-gonic/gin"
)

// registers the public catalog and review routes
func RegisterRoutes(router *gin.RouterGroup, repo *products.Repository) {
	router.GET("/products", ListHandler(repo))
	router.GET("/products/:id", GetHandler(repo))
	router.GET("/users/:name/reviews", UserReviewsHandler(repo))
}
