package server

import (
	"fmt"
	"strconv"
	"time"

	"inkwell/internal/middleware"
	"inkwell/internal/models"
	"inkwell/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	tokenIssuer   = "inkwell-api"
	tokenAudience = "inkwell-client"

	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"

	accessTokenTTL  = time.Hour
	refreshTokenTTL = 7 * 24 * time.Hour
)

func blacklistKey(jti string) string {
	return "blacklist:" + jti
}

// Register handles POST /api/v1/auth/register
func (s *Server) Register(c *fiber.Ctx) error {
	var req struct {
		Email     string `json:"email"`
		Password  string `json:"password"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Role      string `json:"role"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if req.Email == "" || req.Password == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Email and password are required"))
	}

	user, err := s.userService.Register(c.Context(), service.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      req.Role,
	})
	if err != nil {
		return fail(c, err)
	}

	return respond(c, fiber.StatusCreated, "User registered successfully", models.NewUserView(user))
}

// Login handles POST /api/v1/auth/login. Accounts with too many recent
// failed attempts are rejected before credentials are even checked.
func (s *Server) Login(c *fiber.Ctx) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.Email == "" || req.Password == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Email and password are required"))
	}

	if s.loginThrottle.Blocked(c.Context(), req.Email) {
		middleware.LoginThrottleRejections.Inc()
		return models.RespondWithError(c, fiber.StatusTooManyRequests,
			models.NewRateLimitedError("Too many failed login attempts, please try again later"))
	}

	user, err := s.userService.Authenticate(c.Context(), req.Email, req.Password)
	if err != nil {
		s.loginThrottle.RecordFailure(c.Context(), req.Email)
		return fail(c, err)
	}

	access, err := s.generateToken(user.ID, tokenTypeAccess, accessTokenTTL)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}
	refresh, err := s.generateToken(user.ID, tokenTypeRefresh, refreshTokenTTL)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	return respond(c, fiber.StatusOK, "Login successful", fiber.Map{
		"access":  access,
		"refresh": refresh,
		"user":    models.NewUserView(user),
	})
}

// Refresh handles POST /api/v1/auth/refresh. It exchanges a valid,
// non-revoked refresh token for a fresh access token.
func (s *Server) Refresh(c *fiber.Ctx) error {
	claims, err := s.parseRefreshToken(c)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError(err.Error()))
	}

	sub, _ := claims["sub"].(string)
	userID, err := strconv.ParseUint(sub, 10, 32)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Invalid user ID in token"))
	}

	user, err := s.userRepo.GetByID(c.Context(), uint(userID))
	if err != nil {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Account no longer exists"))
	}

	access, err := s.generateToken(user.ID, tokenTypeAccess, accessTokenTTL)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	return respond(c, fiber.StatusOK, "Token refreshed", fiber.Map{
		"access": access,
	})
}

// Logout handles POST /api/v1/auth/logout. The refresh token is blacklisted
// for the remainder of its lifetime so it cannot mint new access tokens.
func (s *Server) Logout(c *fiber.Ctx) error {
	claims, err := s.parseRefreshToken(c)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid or already blacklisted refresh token"))
	}

	jti, _ := claims["jti"].(string)
	if jti != "" && s.cache.Available() {
		ttl := refreshTokenTTL
		if exp, ok := claims["exp"].(float64); ok {
			remaining := time.Until(time.Unix(int64(exp), 0))
			if remaining > 0 {
				ttl = remaining
			}
		}
		if err := s.cache.Redis().Set(c.Context(), blacklistKey(jti), "1", ttl).Err(); err != nil {
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(err))
		}
	}

	return respond(c, fiber.StatusOK, "Successfully logged out", nil)
}

// parseRefreshToken reads the refresh token from the request body, validates
// it and checks the revocation list.
func (s *Server) parseRefreshToken(c *fiber.Ctx) (jwt.MapClaims, error) {
	var req struct {
		Refresh string `json:"refresh"`
	}
	if err := c.BodyParser(&req); err != nil || req.Refresh == "" {
		return nil, fmt.Errorf("Refresh token is required")
	}

	claims, err := s.parseToken(req.Refresh)
	if err != nil {
		return nil, err
	}
	if typ, _ := claims["typ"].(string); typ != tokenTypeRefresh {
		return nil, fmt.Errorf("Refresh token required")
	}

	if jti, _ := claims["jti"].(string); jti != "" && s.cache.Available() {
		blacklisted, err := s.cache.Redis().Exists(c.Context(), blacklistKey(jti)).Result()
		if err == nil && blacklisted > 0 {
			return nil, fmt.Errorf("Token has been revoked")
		}
	}

	return claims, nil
}

// generateToken creates a signed JWT of the given type for the user.
func (s *Server) generateToken(userID uint, tokenType string, ttl time.Duration) (string, error) {
	if s.config.JWTSecret == "" {
		return "", fmt.Errorf("JWT secret not configured")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub": strconv.FormatUint(uint64(userID), 10),
		"typ": tokenType,
		"iss": tokenIssuer,
		"aud": tokenAudience,
		"exp": now.Add(ttl).Unix(),
		"iat": now.Unix(),
		"nbf": now.Unix(),
		"jti": s.generateJTI(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// generateJTI creates a unique JWT ID to prevent replay attacks
func (s *Server) generateJTI() string {
	return fmt.Sprintf("%d-%s", time.Now().Unix(), uuid.New().String()[:8])
}
