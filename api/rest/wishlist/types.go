package wishlist

// WishlistResponse wraps the saved product ids
type WishlistResponse struct {
	ProductIDs []string `json:"product_ids"`
}

// MessageResponse for simple success messages
type MessageResponse struct {
	Message string `json:"message"`
}
