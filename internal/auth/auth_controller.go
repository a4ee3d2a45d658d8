package auth

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/skillswap/skillswap/config"
	"github.com/skillswap/skillswap/internal/middleware"
	"github.com/skillswap/skillswap/internal/user"
	"github.com/skillswap/skillswap/pkg/responses"
	"github.com/skillswap/skillswap/pkg/token"
	"github.com/skillswap/skillswap/pkg/validator"
	"github.com/skillswap/skillswap/utils"
)

const refreshTokenLength = 64

// AuthController handles registration, login and token lifecycle.
type AuthController struct {
	repo   AuthRepository
	config *config.Config
}

// NewAuthController creates a new AuthController.
func NewAuthController(repo AuthRepository, cfg *config.Config) *AuthController {
	return &AuthController{
		repo:   repo,
		config: cfg,
	}
}

// Register godoc
// @Summary Register a new user
// @Tags Auth
// @Accept json
// @Produce json
// @Param user body RegisterRequest true "Registration payload"
// @Success 201 {object} responses.SuccessResponse{data=AuthResponse}
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Failure 409 {object} responses.ErrorResponse "Email already registered"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /auth/register [post]
func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errs := validator.ParseError(err)
		responses.SendError(c, http.StatusBadRequest, "Validation failed", errs)
		return
	}

	existing, err := ac.repo.GetUserByEmail(req.Email)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to check existing user", err.Error())
		return
	}
	if existing != nil {
		responses.SendError(c, http.StatusConflict, "Email is already registered", nil)
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to hash password", err.Error())
		return
	}

	newUser := user.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashed,
	}
	if err := ac.repo.CreateUser(&newUser); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to create user", err.Error())
		return
	}

	authResp, err := ac.issueTokens(&newUser)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to issue tokens", err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "User registered successfully", authResp)
}

// Login godoc
// @Summary Log in with email and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Login payload"
// @Success 200 {object} responses.SuccessResponse{data=AuthResponse}
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Failure 401 {object} responses.ErrorResponse "Invalid credentials"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /auth/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errs := validator.ParseError(err)
		responses.SendError(c, http.StatusBadRequest, "Validation failed", errs)
		return
	}

	u, err := ac.repo.GetUserByEmail(req.Email)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to look up user", err.Error())
		return
	}
	// Same message for unknown email and wrong password.
	if u == nil || !utils.CheckPassword(u.Password, req.Password) {
		responses.SendError(c, http.StatusUnauthorized, "Invalid email or password", nil)
		return
	}

	authResp, err := ac.issueTokens(u)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to issue tokens", err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Logged in successfully", authResp)
}

// RefreshToken godoc
// @Summary Exchange a refresh token for a new token pair
// @Description The presented refresh token is revoked and replaced (rotation).
// @Tags Auth
// @Accept json
// @Produce json
// @Param token body RefreshTokenRequest true "Refresh payload"
// @Success 200 {object} responses.SuccessResponse{data=AuthResponse}
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Failure 401 {object} responses.ErrorResponse "Invalid, expired or revoked refresh token"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /auth/refresh [post]
func (ac *AuthController) RefreshToken(c *gin.Context) {
	var req RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errs := validator.ParseError(err)
		responses.SendError(c, http.StatusBadRequest, "Validation failed", errs)
		return
	}

	rt, err := ac.repo.GetRefreshToken(req.RefreshToken)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to look up refresh token", err.Error())
		return
	}
	if rt == nil || rt.Revoked || rt.ExpiresAt.Before(time.Now()) {
		responses.SendError(c, http.StatusUnauthorized, "Invalid or expired refresh token", nil)
		return
	}

	u, err := ac.repo.GetUserByID(rt.UserID)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to look up user", err.Error())
		return
	}
	if u == nil {
		responses.SendError(c, http.StatusUnauthorized, "User no longer exists", nil)
		return
	}

	if err := ac.repo.InvalidateRefreshToken(req.RefreshToken); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to rotate refresh token", err.Error())
		return
	}

	authResp, err := ac.issueTokens(u)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to issue tokens", err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Token refreshed successfully", authResp)
}

// Logout godoc
// @Summary Revoke a refresh token
// @Tags Auth
// @Accept json
// @Produce json
// @Param token body LogoutRequest true "Logout payload"
// @Success 200 {object} responses.SuccessResponse
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /auth/logout [post]
// @Security BearerAuth
func (ac *AuthController) Logout(c *gin.Context) {
	var req LogoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errs := validator.ParseError(err)
		responses.SendError(c, http.StatusBadRequest, "Validation failed", errs)
		return
	}

	if err := ac.repo.InvalidateRefreshToken(req.RefreshToken); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to revoke refresh token", err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Logged out successfully", nil)
}

// GetMe godoc
// @Summary The logged-in user's account
// @Tags Auth
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=UserResponse}
// @Failure 401 {object} responses.ErrorResponse "Unauthorized"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /auth/me [get]
// @Security BearerAuth
func (ac *AuthController) GetMe(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "Unauthorized", err.Error())
		return
	}

	u, err := ac.repo.GetUserByID(userID)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to look up user", err.Error())
		return
	}
	if u == nil {
		responses.SendError(c, http.StatusNotFound, "User not found", nil)
		return
	}

	responses.SendSuccess(c, http.StatusOK, "User retrieved successfully", FilterUserRecord(u))
}

func (ac *AuthController) issueTokens(u *user.User) (*AuthResponse, error) {
	accessToken, err := token.GenerateJWT(u.ID, ac.config.JWT.AccessTokenSecret, ac.config.JWT.AccessTokenExpiryMinutes)
	if err != nil {
		return nil, err
	}

	refreshToken := utils.GenerateRandomToken(refreshTokenLength)
	expiresAt := time.Now().Add(time.Duration(ac.config.JWT.RefreshTokenExpiryDays) * 24 * time.Hour)
	if err := ac.repo.SaveRefreshToken(u.ID, refreshToken, expiresAt); err != nil {
		return nil, err
	}

	return &AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         FilterUserRecord(u),
	}, nil
}
