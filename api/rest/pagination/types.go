package pagination

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// Params holds the page window requested by the client.
type Params struct {
	Limit  int
	Offset int
}

// Meta holds the page metadata returned alongside a listing.
type Meta struct {
	Total   int  `json:"total"`
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
	HasMore bool `json:"has_more"`
}

// NewMeta builds page metadata from the applied params and total count.
func NewMeta(params Params, total int) Meta {
	return Meta{
		Total:   total,
		Limit:   params.Limit,
		Offset:  params.Offset,
		HasMore: params.Offset+params.Limit < total,
	}
}

// FromQuery reads limit and offset query parameters, clamping them to
// sane values. Unparseable values fall back to the defaults.
func FromQuery(c *gin.Context, defaultLimit, maxLimit int) Params {
	limit := defaultLimit
	if raw, ok := c.GetQuery("limit"); ok {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	offset := 0
	if raw, ok := c.GetQuery("offset"); ok {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			offset = parsed
		}
	}

	return Params{Limit: limit, Offset: offset}
}
