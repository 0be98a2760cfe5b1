package auth

import (
	"errors"
	"net/http"

	"codeberg.org/glowreview/server/glowreview/users"
	"codeberg.org/glowreview/server/internal/accounts"
	"codeberg.org/glowreview/server/internal/auth"
	apierrors "codeberg.org/glowreview/server/internal/errors"
	"codeberg.org/glowreview/server/internal/federated"
	"codeberg.org/glowreview/server/internal/logger"
	"codeberg.org/glowreview/server/internal/sessions"
	"github.com/gin-gonic/gin"
	"github.com/markbates/goth/gothic"
)

const returnTargetCookie = "glowreview_return_to"

// RegisterHandler godoc
// @Summary Register a new account
// @Description Create a local-credential account and sign it in immediately
// @Tags auth
// @Accept json
// @Produce json
// @Success 201 {object} UserResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /api/v1/auth/register [post]
func RegisterHandler(svc *accounts.Service, sessionMgr *sessions.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.ValidationError(c, err)
			return
		}

		user, err := svc.Register(c.Request.Context(), req.Email, req.Password, req.FullName)
		if err != nil {
			var weak *accounts.WeakPasswordError

			switch {
			case errors.As(err, &weak):
				apierrors.ValidationMessages(c, "password does not meet requirements", weak.Issues)
			case errors.Is(err, users.ErrDuplicateEmail):
				apierrors.Conflict(c, "email already registered")
			default:
				apierrors.InternalError(c, "failed to register account", err)
			}
			return
		}

		// auto sign-in after registration
		if err := issueSession(c, sessionMgr, user); err != nil {
			apierrors.InternalError(c, "failed to establish session", err)
			return
		}

		c.JSON(http.StatusCreated, UserResponse{User: user})
	}
}

// LoginHandler godoc
// @Summary Local sign-in
// @Description Authenticate with email and password. Failures are reported with one generic message
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} UserResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /api/v1/auth/login [post]
func LoginHandler(svc *accounts.Service, sessionMgr *sessions.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.ValidationError(c, err)
			return
		}

		user, err := svc.Authenticate(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, accounts.ErrLockedOut):
				apierrors.AccountLocked(c)
			case errors.Is(err, accounts.ErrInvalidCredentials),
				errors.Is(err, accounts.ErrNotAllowed):
				// one message for every credential failure
				apierrors.LoginFailed(c)
			default:
				apierrors.InternalError(c, "failed to sign in", err)
			}
			return
		}

		if err := issueSession(c, sessionMgr, user); err != nil {
			apierrors.InternalError(c, "failed to establish session", err)
			return
		}

		c.JSON(http.StatusOK, UserResponse{User: user})
	}
}

// LogoutHandler godoc
// @Summary Sign out
// @Description Clear the authenticated session; signing out twice is not an error
// @Tags auth
// @Produce json
// @Success 200 {object} MessageResponse
// @Router /api/v1/auth/logout [post]
func LogoutHandler(sessionMgr *sessions.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := sessionMgr.Clear(c); err != nil {
			logger.ErrorErr(err, "failed to clear session on logout")
		}

		if err := gothic.Logout(c.Writer, c.Request); err != nil {
			logger.ErrorErr(err, "failed to clear gothic session")
		}

		c.JSON(http.StatusOK, MessageResponse{Message: "logged out successfully"})
	}
}

// BeginFederatedHandler godoc
// @Summary Start federated sign-in
// @Description Redirect to the external identity provider (google, github)
// @Tags auth
// @Param provider path string true "OAuth provider" Enums(google, github)
// @Param return_to query string false "Path to return to after sign-in"
// @Success 302 {string} string "Redirect to provider"
// @Failure 400 {object} errors.ErrorResponse
// @Router /api/v1/auth/{provider} [get]
func BeginFederatedHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		provider := c.Param("provider")

		if !auth.IsValidProvider(provider) {
			apierrors.BadRequest(c, "invalid provider", nil)
			return
		}

		// remember where to send the user after the callback
		if target := c.Query("return_to"); isSafeReturnTarget(target) {
			c.SetCookie(returnTargetCookie, target, 300, "/", "", false, true)
		}

		// set provider in query for gothic
		q := c.Request.URL.Query()
		q.Add("provider", provider)
		c.Request.URL.RawQuery = q.Encode()

		gothic.BeginAuthHandler(c.Writer, c.Request)
	}
}

// FederatedCallbackHandler godoc
// @Summary Federated sign-in callback
// @Description Provider callback: links or creates the local account and establishes a session
// @Tags auth
// @Param provider path string true "OAuth provider" Enums(google, github)
// @Success 302 {string} string "Redirect to the recorded return target"
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /api/v1/auth/{provider}/callback [get]
func FederatedCallbackHandler(broker *federated.Broker, sessionMgr *sessions.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		provider := c.Param("provider")

		if !auth.IsValidProvider(provider) {
			apierrors.BadRequest(c, "invalid provider", nil)
			return
		}

		q := c.Request.URL.Query()
		q.Add("provider", provider)
		c.Request.URL.RawQuery = q.Encode()

		gothUser, err := gothic.CompleteUserAuth(c.Writer, c.Request)
		if err != nil {
			// upstream or handshake failure; nothing was created or altered
			apierrors.ProviderError(c, err)
			return
		}

		user, outcome, err := broker.Complete(c.Request.Context(), federated.Claims{
			Provider:    provider,
			ProviderKey: gothUser.UserID,
			Email:       gothUser.Email,
			Name:        gothUser.Name,
		})

		if err != nil {
			switch {
			case errors.Is(err, federated.ErrMissingClaims):
				apierrors.BadRequest(c, "could not complete external sign-in", nil)
				logger.ErrorErr(err, "federated callback missing claims", "provider", provider)
			case errors.Is(err, users.ErrLinkConflict):
				apierrors.Conflict(c, "could not complete external sign-in")
				logger.ErrorErr(err, "federated login link conflict", "provider", provider)
			default:
				apierrors.InternalError(c, "could not complete external sign-in", err)
			}
			return
		}

		if err := issueSession(c, sessionMgr, user); err != nil {
			apierrors.InternalError(c, "failed to establish session", err)
			return
		}

		logger.Info("federated sign-in completed",
			"user_id", user.ID,
			"provider", provider,
			"outcome", string(outcome),
		)

		c.Redirect(http.StatusFound, popReturnTarget(c))
	}
}

// MeHandler godoc
// @Summary Get current user
// @Description Return the authenticated user's profile
// @Tags auth
// @Produce json
// @Success 200 {object} UserResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/v1/auth/me [get]
func MeHandler(userRepo *users.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := auth.CurrentPrincipal(c)
		if !ok {
			apierrors.Unauthorized(c, "")
			return
		}

		user, err := userRepo.FindByID(c.Request.Context(), principal.UserID)
		if err != nil {
			apierrors.NotFound(c, "user")
			return
		}

		c.JSON(http.StatusOK, UserResponse{User: user})
	}
}

// UpdateProfileHandler godoc
// @Summary Update profile
// @Description Update the authenticated user's display name
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} UserResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /api/v1/auth/me [put]
func UpdateProfileHandler(userRepo *users.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := auth.CurrentPrincipal(c)
		if !ok {
			apierrors.Unauthorized(c, "")
			return
		}

		var req UpdateProfileRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.ValidationError(c, err)
			return
		}

		user, err := userRepo.UpdateProfile(c.Request.Context(), principal.UserID, req.FullName)
		if err != nil {
			apierrors.InternalError(c, "failed to update profile", err)
			return
		}

		c.JSON(http.StatusOK, UserResponse{User: user})
	}
}

func issueSession(c *gin.Context, sessionMgr *sessions.Manager, user *users.User) error {
	return sessionMgr.Issue(c, sessions.Principal{
		UserID:   user.ID,
		Email:    user.Email,
		FullName: user.FullName,
	})
}

// only relative paths are accepted as post-login targets
func isSafeReturnTarget(target string) bool {
	return len(target) > 1 && target[0] == '/' && target[1] != '/'
}

func popReturnTarget(c *gin.Context) string {
	target, err := c.Cookie(returnTargetCookie)
	if err != nil || !isSafeReturnTarget(target) {
		return "/"
	}

	c.SetCookie(returnTargetCookie, "", -1, "/", "", false, true)

	return target
}
