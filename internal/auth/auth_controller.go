package auth

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/DhavalSuthar-24/livescore/config"
	"github.com/DhavalSuthar-24/livescore/internal/common"
	"github.com/DhavalSuthar-24/livescore/internal/user"
	"github.com/DhavalSuthar-24/livescore/pkg/responses"
	"github.com/DhavalSuthar-24/livescore/pkg/token"
	"github.com/DhavalSuthar-24/livescore/utils"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type AuthController struct {
	users  user.UserRepository
	tokens TokenRepository
	config *config.Config
}

func NewAuthController(users user.UserRepository, tokens TokenRepository, cfg *config.Config) *AuthController {
	return &AuthController{
		users:  users,
		tokens: tokens,
		config: cfg,
	}
}

func (ac *AuthController) generateAndSaveTokens(u *user.User) (string, string, error) {
	accessToken, err := token.GenerateJWT(u.ID, u.Role, ac.config.JWT.AccessTokenSecret, ac.config.JWT.AccessTokenExpiryMinutes)
	if err != nil {
		return "", "", fmt.Errorf("access token generation failed: %w", err)
	}

	refreshTokenString, err := token.GenerateRefreshToken(u.ID, ac.config.JWT.RefreshTokenSecret, ac.config.JWT.RefreshTokenExpiryDays)
	if err != nil {
		return "", "", fmt.Errorf("refresh token generation failed: %w", err)
	}

	refreshToken := &user.RefreshToken{
		UserID:    u.ID,
		Token:     refreshTokenString,
		ExpiresAt: time.Now().AddDate(0, 0, ac.config.JWT.RefreshTokenExpiryDays),
	}

	if err := ac.tokens.SaveRefreshToken(refreshToken); err != nil {
		return "", "", fmt.Errorf("failed to save refresh token: %w", err)
	}
	return accessToken, refreshTokenString, nil
}

// @Summary      Register a new user
// @Description  Create a new user account. New accounts get the "user" role.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        user  body  RegisterRequest  true  "User registration details"
// @Success      201   {object} responses.SuccessResponse{data=AuthResponse}
// @Failure      400   {object} responses.ErrorResponse "Validation error"
// @Failure      409   {object} responses.ErrorResponse "Email already registered"
// @Failure      500   {object} responses.ErrorResponse
// @Router       /auth/register [post]
func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, err)
		return
	}

	existing, err := ac.users.GetUserByEmail(req.Email)
	if err != nil {
		responses.InternalServerError(c, "Failed to check email", err)
		return
	}
	if existing != nil {
		responses.Conflict(c, "User with this email already exists")
		return
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		responses.InternalServerError(c, "Error hashing password", err)
		return
	}

	newUser := &user.User{
		Name:       strings.TrimSpace(req.Name),
		Email:      strings.ToLower(strings.TrimSpace(req.Email)),
		Password:   hashedPassword,
		Role:       common.RoleUser,
		LastActive: time.Now(),
	}

	if err := ac.users.CreateUser(newUser); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			responses.Conflict(c, "User with this email already exists")
			return
		}
		responses.InternalServerError(c, "User creation failed", err)
		return
	}
	log.Info().Uint("user_id", newUser.ID).Msg("user registered")

	accessToken, refreshToken, err := ac.generateAndSaveTokens(newUser)
	if err != nil {
		responses.InternalServerError(c, "Token generation failed", err)
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "User registered successfully", AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         FilterUserRecord(newUser),
	})
}

// @Summary      Login user
// @Description  Authenticate with email and password.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        credentials  body  LoginRequest  true  "Login credentials"
// @Success      200   {object} responses.SuccessResponse{data=AuthResponse}
// @Failure      400   {object} responses.ErrorResponse
// @Failure      401   {object} responses.ErrorResponse "Invalid credentials"
// @Failure      500   {object} responses.ErrorResponse
// @Router       /auth/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, err)
		return
	}

	foundUser, err := ac.users.GetUserByEmail(req.Email)
	if err != nil {
		responses.InternalServerError(c, "Failed to load user", err)
		return
	}
	// Same answer for unknown email and wrong password.
	if foundUser == nil || !utils.CheckPassword(foundUser.Password, req.Password) {
		responses.Unauthorized(c, "Invalid email or password")
		return
	}

	if err := ac.users.TouchLastActive(foundUser.ID); err != nil {
		log.Warn().Err(err).Uint("user_id", foundUser.ID).Msg("failed to update last active")
	}

	accessToken, refreshToken, err := ac.generateAndSaveTokens(foundUser)
	if err != nil {
		responses.InternalServerError(c, "Token generation failed", err)
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Login successful", AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         FilterUserRecord(foundUser),
	})
}

// @Summary      Refresh access token
// @Description  Exchange a live refresh token for a new access token.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request  body  RefreshTokenRequest  true  "Refresh token"
// @Success      200 {object} responses.SuccessResponse
// @Failure      401 {object} responses.ErrorResponse "Invalid or expired refresh token"
// @Router       /auth/refresh-token [post]
func (ac *AuthController) RefreshToken(c *gin.Context) {
	var req RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, err)
		return
	}

	claims, err := token.ValidateJWT(req.RefreshToken, ac.config.JWT.RefreshTokenSecret)
	if err != nil {
		responses.Unauthorized(c, "Invalid or expired refresh token")
		return
	}

	rt, err := ac.tokens.GetRefreshToken(req.RefreshToken)
	if err != nil {
		responses.InternalServerError(c, "Failed to load refresh token", err)
		return
	}
	if rt == nil || rt.UserID != claims.UserID {
		responses.Unauthorized(c, "Invalid or expired refresh token")
		return
	}

	u, err := ac.users.GetUserByID(rt.UserID)
	if err != nil {
		responses.InternalServerError(c, "Failed to load user", err)
		return
	}
	if u == nil {
		responses.Unauthorized(c, "User not found or inactive")
		return
	}

	newAccessToken, err := token.GenerateJWT(u.ID, u.Role, ac.config.JWT.AccessTokenSecret, ac.config.JWT.AccessTokenExpiryMinutes)
	if err != nil {
		responses.InternalServerError(c, "New access token generation failed", err)
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Token refreshed", gin.H{"access_token": newAccessToken})
}

// @Summary      Get User Profile
// @Description  Retrieves the authenticated user with their favorites.
// @Tags         Profile
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} responses.SuccessResponse{data=UserResponse}
// @Failure      401 {object} responses.ErrorResponse
// @Failure      404 {object} responses.ErrorResponse
// @Router       /auth/me [get]
func (ac *AuthController) GetProfile(c *gin.Context) {
	userID, err := common.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "Unauthorized: "+err.Error())
		return
	}

	currentUser, err := ac.users.GetUserWithFavorites(userID)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve profile", err)
		return
	}
	if currentUser == nil {
		responses.NotFound(c, "User")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Profile retrieved successfully", FilterUserRecord(currentUser))
}

// @Summary      Update User Profile
// @Description  Updates name, avatar or password of the authenticated user. A new password revokes every refresh token.
// @Tags         Profile
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        profileData body UpdateProfileRequest true "Profile data to update"
// @Success      200 {object} responses.SuccessResponse{data=UserResponse}
// @Failure      400 {object} responses.ErrorResponse
// @Failure      401 {object} responses.ErrorResponse
// @Router       /auth/me [put]
func (ac *AuthController) UpdateProfile(c *gin.Context) {
	userID, err := common.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "Unauthorized: "+err.Error())
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, err)
		return
	}

	u, err := ac.users.GetUserByID(userID)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve user", err)
		return
	}
	if u == nil {
		responses.NotFound(c, "User")
		return
	}

	if req.Name != nil {
		u.Name = strings.TrimSpace(*req.Name)
	}
	if req.Avatar != nil {
		u.Avatar = *req.Avatar
	}
	if req.Password != nil {
		hashed, err := utils.HashPassword(*req.Password)
		if err != nil {
			responses.InternalServerError(c, "Error hashing password", err)
			return
		}
		u.Password = hashed
	}
	u.LastActive = time.Now()

	if err := ac.users.UpdateUser(u); err != nil {
		responses.InternalServerError(c, "Could not update profile", err)
		return
	}
	if req.Password != nil {
		if err := ac.tokens.InvalidateAllRefreshTokensForUser(u.ID); err != nil {
			log.Warn().Err(err).Uint("user_id", u.ID).Msg("failed to revoke sessions after password change")
		}
	}
	responses.SendSuccess(c, http.StatusOK, "Profile updated successfully", FilterUserRecord(u))
}

// @Summary      Change Password
// @Description  Changes the password after checking the old one and revokes every refresh token.
// @Tags         Profile
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        passwords body ChangePasswordRequest true "Old and new password details"
// @Success      200 {object} responses.SuccessResponse
// @Failure      400 {object} responses.ErrorResponse
// @Failure      401 {object} responses.ErrorResponse "Incorrect old password"
// @Router       /auth/change-password [post]
func (ac *AuthController) ChangePassword(c *gin.Context) {
	userID, err := common.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "Unauthorized: "+err.Error())
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, err)
		return
	}

	u, err := ac.users.GetUserByID(userID)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve user", err)
		return
	}
	if u == nil {
		responses.NotFound(c, "User")
		return
	}

	if !utils.CheckPassword(u.Password, req.OldPassword) {
		responses.Unauthorized(c, "Incorrect old password.")
		return
	}
	if req.OldPassword == req.NewPassword {
		responses.BadRequest(c, "New password cannot be the same as the old password.")
		return
	}

	newHashedPassword, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		responses.InternalServerError(c, "Failed to hash new password.", err)
		return
	}
	u.Password = newHashedPassword
	u.LastActive = time.Now()

	if err := ac.users.UpdateUser(u); err != nil {
		responses.InternalServerError(c, "Failed to change password", err)
		return
	}
	if err := ac.tokens.InvalidateAllRefreshTokensForUser(u.ID); err != nil {
		log.Warn().Err(err).Uint("user_id", u.ID).Msg("failed to revoke sessions after password change")
	}

	responses.SendSuccess(c, http.StatusOK, "Password changed successfully.", nil)
}

// @Summary      Logout User
// @Description  Revokes the given refresh token, or every session of the user.
// @Tags         Auth
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body LogoutRequest false "Logout options"
// @Success      200 {object} responses.SuccessResponse
// @Failure      401 {object} responses.ErrorResponse
// @Router       /auth/logout [post]
func (ac *AuthController) Logout(c *gin.Context) {
	userID, err := common.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "Unauthorized: "+err.Error())
		return
	}

	var req LogoutRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		responses.SendValidationError(c, err)
		return
	}

	refreshToken := req.RefreshToken
	if refreshToken == "" {
		refreshToken, _ = c.Cookie("refresh_token")
	}

	if refreshToken != "" {
		if err := ac.tokens.InvalidateRefreshToken(userID, refreshToken); err != nil {
			responses.InternalServerError(c, "Failed to invalidate refresh token", err)
			return
		}
	}

	if req.InvalidateAllSessions {
		if err := ac.tokens.InvalidateAllRefreshTokensForUser(userID); err != nil {
			responses.InternalServerError(c, "Failed to invalidate all sessions", err)
			return
		}
	}

	secure := ac.config.IsProduction()
	c.SetCookie("refresh_token", "", -1, "/", "", secure, true)
	c.SetCookie("access_token", "", -1, "/", "", secure, true)

	responses.SendSuccess(c, http.StatusOK, "Logged out successfully", gin.H{
		"all_sessions_invalidated": req.InvalidateAllSessions,
	})
}
