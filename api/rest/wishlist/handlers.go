package wishlist

import (
	"errors"
	"net/http"

	"codeberg.org/glowreview/server/internal/auth"
	apierrors "codeberg.org/glowreview/server/internal/errors"
	"codeberg.org/glowreview/server/internal/wishlist"
	"github.com/gin-gonic/gin"
)

// ListHandler godoc
// @Summary List the wishlist
// @Tags wishlist
// @Produce json
// @Success 200 {object} WishlistResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /api/v1/wishlist [get]
func ListHandler(svc *wishlist.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := auth.CurrentPrincipal(c)
		if !ok {
			apierrors.Unauthorized(c, "")
			return
		}

		productIDs, err := svc.List(c.Request.Context(), principal.UserID)
		if err != nil {
			if errors.Is(err, wishlist.ErrUserNotFound) {
				apierrors.NotFound(c, "user")
				return
			}

			apierrors.InternalError(c, "failed to list wishlist", err)
			return
		}

		c.JSON(http.StatusOK, WishlistResponse{ProductIDs: productIDs})
	}
}

// AddHandler godoc
// @Summary Save a product to the wishlist
// @Description Idempotent: saving a product twice leaves one entry
// @Tags wishlist
// @Produce json
// @Success 200 {object} MessageResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/v1/wishlist/{productId} [post]
func AddHandler(svc *wishlist.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := auth.CurrentPrincipal(c)
		if !ok {
			apierrors.Unauthorized(c, "")
			return
		}

		err := svc.Add(c.Request.Context(), principal.UserID, c.Param("productId"))
		if err != nil {
			switch {
			case errors.Is(err, wishlist.ErrProductNotFound):
				apierrors.NotFound(c, "product")
			case errors.Is(err, wishlist.ErrUserNotFound):
				apierrors.NotFound(c, "user")
			default:
				apierrors.InternalError(c, "failed to update wishlist", err)
			}
			return
		}

		c.JSON(http.StatusOK, MessageResponse{Message: "product saved"})
	}
}

// RemoveHandler godoc
// @Summary Remove a product from the wishlist
// @Description Idempotent: removing an absent product succeeds
// @Tags wishlist
// @Produce json
// @Success 200 {object} MessageResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/v1/wishlist/{productId} [delete]
func RemoveHandler(svc *wishlist.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := auth.CurrentPrincipal(c)
		if !ok {
			apierrors.Unauthorized(c, "")
			return
		}

		err := svc.Remove(c.Request.Context(), principal.UserID, c.Param("productId"))
		if err != nil {
			if errors.Is(err, wishlist.ErrUserNotFound) {
				apierrors.NotFound(c, "user")
				return
			}

			apierrors.InternalError(c, "failed to update wishlist", err)
			return
		}

		c.JSON(http.StatusOK, MessageResponse{Message: "product removed"})
	}
}
