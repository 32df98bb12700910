package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"renova-server/internal/domain/user"
	"renova-server/internal/infrastructure/auth"
	"renova-server/internal/interfaces/httpserver/middlewares"
)

// AuthHandler exposes registration, login and account endpoints.
type AuthHandler struct {
	users  *user.Service
	tokens *auth.TokenManager
	log    zerolog.Logger
}

func NewAuthHandler(users *user.Service, tokens *auth.TokenManager, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		users:  users,
		tokens: tokens,
		log:    log.With().Str("component", "auth-handler").Logger(),
	}
}

type registerRequest struct {
	Username string `json:"username" form:"username" binding:"required"`
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required"`
	Role     int    `json:"role" form:"role"`
}

type loginRequest struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type userResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     int    `json:"role"`
}

func toUserResponse(u *user.User) userResponse {
	return userResponse{ID: u.ID, Username: u.Username, Email: u.Email, Role: u.Role}
}

// Register creates an account and returns a fresh access token.
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	created, err := h.users.Register(c.Request.Context(), user.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		h.log.Error().Err(err).Msg("registration failed")
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Could not create user"})
		return
	}

	token, err := h.tokens.Issue(created.ID, created.Email)
	if err != nil {
		h.log.Error().Err(err).Msg("token issue failed after registration")
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Could not issue token"})
		return
	}

	c.JSON(http.StatusCreated, tokenResponse{AccessToken: token, TokenType: "Bearer"})
}

// Login checks the credentials (username field carries the email) and
// returns an access token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	account, err := h.users.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"detail": "No user found with this email"})
		case errors.Is(err, user.ErrWrongPassword):
			c.JSON(http.StatusNotFound, gin.H{"detail": "Incorrect password"})
		default:
			h.log.Error().Err(err).Msg("login failed")
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "Login failed"})
		}
		return
	}

	token, err := h.tokens.Issue(account.ID, account.Email)
	if err != nil {
		h.log.Error().Err(err).Msg("token issue failed")
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Could not issue token"})
		return
	}

	c.JSON(http.StatusOK, tokenResponse{AccessToken: token, TokenType: "Bearer"})
}

// Me returns the authenticated account.
func (h *AuthHandler) Me(c *gin.Context) {
	claims, ok := middlewares.ClaimsFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Could not validate credentials"})
		return
	}

	account, err := h.users.GetByID(c.Request.Context(), claims.UserID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "User not found"})
		return
	}
	c.JSON(http.StatusOK, toUserResponse(account))
}

// ListUsers returns all accounts. Admin only.
func (h *AuthHandler) ListUsers(c *gin.Context) {
	claims, ok := middlewares.ClaimsFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Could not validate credentials"})
		return
	}
	if _, err := h.users.RequireAdmin(c.Request.Context(), claims.UserID); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Unauthorized Access"})
		return
	}

	accounts, err := h.users.List(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("list users failed")
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Could not list users"})
		return
	}

	out := make([]userResponse, 0, len(accounts))
	for _, account := range accounts {
		out = append(out, toUserResponse(account))
	}
	c.JSON(http.StatusOK, out)
}

// requireAdmin resolves the authenticated account and checks the admin
// role, writing the 401 itself on failure.
func requireAdmin(c *gin.Context, users *user.Service) (*user.User, bool) {
	claims, ok := middlewares.ClaimsFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Could not validate credentials"})
		return nil, false
	}
	account, err := users.RequireAdmin(c.Request.Context(), claims.UserID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Unauthorized Access"})
		return nil, false
	}
	return account, true
}
