package products

import (
	"errors"
	"net/http"

	"codeberg.org/glowreview/server/api/rest/pagination"
	"codeberg.org/glowreview/server/glowreview/products"
	apierrors "codeberg.org/glowreview/server/internal/errors"
	"github.com/gin-gonic/gin"
)

// ListHandler godoc
// @Summary List the catalog
// @Tags products
// @Produce json
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} ProductsResponse
// @Router /api/v1/products [get]
func ListHandler(repo *products.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		params := pagination.FromQuery(c, 50, 100)

		catalog, err := repo.ListProducts(c.Request.Context(), params.Limit, params.Offset)
		if err != nil {
			apierrors.InternalError(c, "failed to list products", err)
			return
		}

		total, err := repo.CountProducts(c.Request.Context())
		if err != nil {
			apierrors.InternalError(c, "failed to count products", err)
			return
		}

		c.JSON(http.StatusOK, ProductsResponse{
			Products:   catalog,
			Pagination: pagination.NewMeta(params, total),
		})
	}
}

// GetHandler godoc
// @Summary Get a product
// @Tags products
// @Produce json
// @Success 200 {object} ProductResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/v1/products/{id} [get]
func GetHandler(repo *products.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, err := repo.GetProductByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, products.ErrNotFound) {
				apierrors.NotFound(c, "product")
				return
			}

			apierrors.InternalError(c, "failed to find product", err)
			return
		}

		c.JSON(http.StatusOK, ProductResponse{Product: product})
	}
}

// UserReviewsHandler godoc
// @Summary List reviews written under a display name
// @Tags products
// @Produce json
// @Success 200 {object} ReviewsResponse
// @Router /api/v1/users/{name}/reviews [get]
func UserReviewsHandler(repo *products.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		reviews, err := repo.GetReviewsByUserName(c.Request.Context(), c.Param("name"))
		if err != nil {
			apierrors.InternalError(c, "failed to list reviews", err)
			return
		}

		c.JSON(http.StatusOK, ReviewsResponse{Reviews: reviews})
	}
}
