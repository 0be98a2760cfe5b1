package products

import (
	"codeberg.org/glowreview/server/api/rest/pagination"
	"codeberg.org/glowreview/server/glowreview/products"
)

// ProductResponse wraps a single product
type ProductResponse struct {
	Product *products.Product `json:"product"`
}

// ProductsResponse wraps a page of the catalog
type ProductsResponse struct {
	Products   []products.Product `json:"products"`
	Pagination pagination.Meta    `json:"pagination"`
}

// ReviewsResponse wraps a user's reviews
type ReviewsResponse struct {
	Reviews []products.Review `json:"reviews"`
}
