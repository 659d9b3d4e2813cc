package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/kinoplex/multiplex-booking/internal/config"
	"github.com/kinoplex/multiplex-booking/internal/repository"
	"github.com/kinoplex/multiplex-booking/internal/utils"
)

// AuthHandler implements registration, login and token lifecycle for
// the API. Accounts live in the in-memory user store; refresh token
// hashes live in the token store. Access tokens are short-lived
// HS256 JWTs carrying the user ID and role.
type AuthHandler struct {
	Users  *repository.UserRepo
	Tokens *repository.TokenRepo
	Cfg    config.Config
}

// NewAuthHandler constructs an AuthHandler. All dependencies must be
// non-nil.
func NewAuthHandler(users *repository.UserRepo, tokens *repository.TokenRepo, cfg config.Config) *AuthHandler {
	if users == nil || tokens == nil {
		panic("nil repository passed to NewAuthHandler")
	}
	return &AuthHandler{Users: users, Tokens: tokens, Cfg: cfg}
}

// Register handles POST /v1/auth/register. It creates an account
// with role CUSTOMER or OWNER (default CUSTOMER) and returns the
// new user's ID. Duplicate emails are rejected with 409.
func (h *AuthHandler) Register(c echo.Context) error {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		FullName string `json:"full_name"`
		Role     string `json:"role"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	email := strings.TrimSpace(body.Email)
	if email == "" || !strings.Contains(email, "@") {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "valid email is required"})
	}
	if len(body.Password) < 8 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "password must be at least 8 characters"})
	}
	fullName := strings.TrimSpace(body.FullName)
	if fullName == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "full_name is required"})
	}
	role := strings.ToUpper(strings.TrimSpace(body.Role))
	switch role {
	case "":
		role = "CUSTOMER"
	case "CUSTOMER", "OWNER":
	default:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "role must be CUSTOMER or OWNER"})
	}

	hash, err := utils.HashPassword(body.Password, h.Cfg.BcryptCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to hash password"})
	}
	user, err := h.Users.Create(email, hash, fullName, role)
	if err != nil {
		if err == repository.ErrEmailTaken {
			return c.JSON(http.StatusConflict, echo.Map{"error": "email already registered"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create user"})
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"id":    user.ID,
		"email": user.Email,
		"role":  user.Role,
	})
}

// Login handles POST /v1/auth/login. On valid credentials it issues
// an access token and a refresh token; the refresh token is stored
// hashed.
func (h *AuthHandler) Login(c echo.Context) error {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	user, err := h.Users.GetByEmail(body.Email)
	if err != nil || !utils.VerifyPassword(user.PasswordHash, body.Password) {
		// One message for both cases so probes can't tell which failed.
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, user.ID, user.Role, h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to issue access token"})
	}
	refresh, err := utils.NewRefreshToken(h.Cfg.RefreshTTLDays)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to issue refresh token"})
	}
	if err := h.Tokens.StoreRefresh(c.Request().Context(), user.ID, utils.HashRefreshRaw(refresh.Raw), refresh.Exp); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to store refresh token"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"access_token":  access.Token,
		"expires_at":    access.Exp.Format(time.RFC3339),
		"refresh_token": refresh.Raw,
	})
}

// Refresh handles POST /v1/auth/refresh. It rotates the refresh
// token: the presented token is revoked and a new pair is issued.
func (h *AuthHandler) Refresh(c echo.Context) error {
	var body struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.Bind(&body); err != nil || body.RefreshToken == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "refresh_token is required"})
	}
	ctx := c.Request().Context()
	hash := utils.HashRefreshRaw(body.RefreshToken)
	userID, err := h.Tokens.ValidateRefresh(ctx, hash)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid refresh token"})
	}
	user, err := h.Users.GetByID(userID)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid refresh token"})
	}
	if err := h.Tokens.RevokeByHash(ctx, hash); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to rotate refresh token"})
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, user.ID, user.Role, h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to issue access token"})
	}
	refresh, err := utils.NewRefreshToken(h.Cfg.RefreshTTLDays)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to issue refresh token"})
	}
	if err := h.Tokens.StoreRefresh(ctx, user.ID, utils.HashRefreshRaw(refresh.Raw), refresh.Exp); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to store refresh token"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"access_token":  access.Token,
		"expires_at":    access.Exp.Format(time.RFC3339),
		"refresh_token": refresh.Raw,
	})
}

// Logout handles POST /v1/auth/logout. It invalidates the presented
// refresh token; access tokens simply age out.
func (h *AuthHandler) Logout(c echo.Context) error {
	var body struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.Bind(&body); err != nil || body.RefreshToken == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "refresh_token is required"})
	}
	if err := h.Tokens.RevokeByHash(c.Request().Context(), utils.HashRefreshRaw(body.RefreshToken)); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to revoke refresh token"})
	}
	return c.NoContent(http.StatusNoContent)
}

// Me handles GET /v1/me and returns the authenticated user's
// profile.
func (h *AuthHandler) Me(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	user, err := h.Users.GetByID(userID)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"id":        user.ID,
		"email":     user.Email,
		"full_name": user.FullName,
		"role":      user.Role,
	})
}
