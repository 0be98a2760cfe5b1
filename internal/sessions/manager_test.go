package sessions

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testContext(t *testing.T, cookies []*http.Cookie) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)

	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	for _, cookie := range cookies {
		c.Request.AddCookie(cookie)
	}

	return c, recorder
}

func TestIssueThenCurrent(t *testing.T) {
	manager := NewManager("test-secret", false)

	issueCtx, recorder := testContext(t, nil)
	principal := Principal{UserID: "u1", Email: "alice@example.com", FullName: "Alice Moreau"}
	require.NoError(t, manager.Issue(issueCtx, principal))

	cookies := recorder.Result().Cookies()
	require.NotEmpty(t, cookies)

	readCtx, _ := testContext(t, cookies)
	current, ok := manager.Current(readCtx)

	require.True(t, ok)
	assert.Equal(t, principal, *current)
}

func TestCurrent_NoSession(t *testing.T) {
	manager := NewManager("test-secret", false)

	c, _ := testContext(t, nil)
	current, ok := manager.Current(c)

	assert.False(t, ok)
	assert.Nil(t, current)
}

func TestCurrent_TamperedCookie(t *testing.T) {
	manager := NewManager("test-secret", false)

	c, _ := testContext(t, []*http.Cookie{{Name: "glowreview_session", Value: "garbage"}})
	current, ok := manager.Current(c)

	assert.False(t, ok)
	assert.Nil(t, current)
}

func TestCurrent_DifferentSecretRejected(t *testing.T) {
	issuer := NewManager("secret-one", false)
	reader := NewManager("secret-two", false)

	issueCtx, recorder := testContext(t, nil)
	require.NoError(t, issuer.Issue(issueCtx, Principal{UserID: "u1"}))

	readCtx, _ := testContext(t, recorder.Result().Cookies())
	_, ok := reader.Current(readCtx)

	assert.False(t, ok)
}

func TestClear(t *testing.T) {
	manager := NewManager("test-secret", false)

	issueCtx, issueRecorder := testContext(t, nil)
	require.NoError(t, manager.Issue(issueCtx, Principal{UserID: "u1"}))

	clearCtx, clearRecorder := testContext(t, issueRecorder.Result().Cookies())
	require.NoError(t, manager.Clear(clearCtx))

	cleared := clearRecorder.Result().Cookies()
	require.NotEmpty(t, cleared)
	assert.Negative(t, cleared[0].MaxAge)

	// the replacement cookie no longer carries a principal
	readCtx, _ := testContext(t, cleared)
	_, ok := manager.Current(readCtx)
	assert.False(t, ok)
}

func TestClear_NoSessionIsNoOp(t *testing.T) {
	manager := NewManager("test-secret", false)

	c, _ := testContext(t, nil)
	assert.NoError(t, manager.Clear(c))

	tampered, _ := testContext(t, []*http.Cookie{{Name: "glowreview_session", Value: "garbage"}})
	assert.NoError(t, manager.Clear(tampered))
}
