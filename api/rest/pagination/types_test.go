package pagination

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func queryContext(rawQuery string) *gin.Context {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/?"+rawQuery, nil)
	return c
}

func TestFromQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  Params
	}{
		{"defaults", "", Params{Limit: 50, Offset: 0}},
		{"explicit", "limit=10&offset=20", Params{Limit: 10, Offset: 20}},
		{"clamped to max", "limit=500", Params{Limit: 100, Offset: 0}},
		{"negative ignored", "limit=-1&offset=-5", Params{Limit: 50, Offset: 0}},
		{"garbage ignored", "limit=lots&offset=some", Params{Limit: 50, Offset: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FromQuery(queryContext(tt.query), 50, 100))
		})
	}
}

func TestNewMeta(t *testing.T) {
	meta := NewMeta(Params{Limit: 10, Offset: 0}, 25)
	assert.True(t, meta.HasMore)
	assert.Equal(t, 25, meta.Total)

	lastPage := NewMeta(Params{Limit: 10, Offset: 20}, 25)
	assert.False(t, lastPage.HasMore)
}
