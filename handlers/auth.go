package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Madhav-Gupta-28/bazar-backend-go/database"
	"github.com/Madhav-Gupta-28/bazar-backend-go/models"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

type AdminLookup interface {
	FindByEmail(ctx context.Context, email string) (*models.Admin, error)
}

type TokenIssuer interface {
	SignInToken(user *models.User) (string, error)
}

type AuthHandler struct {
	Admins AdminLookup
	Tokens TokenIssuer
}

// AdminLogin checks an admin's email and password and returns a session token.
func (h *AuthHandler) AdminLogin(c echo.Context) error {
	var credentials struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := c.Bind(&credentials); err != nil || credentials.Email == "" || credentials.Password == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	admin, err := h.Admins.FindByEmail(ctx, credentials.Email)
	if errors.Is(err, database.ErrNotFound) {
		return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Invalid Email or password!"})
	}
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("admin lookup failed")
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to sign in"})
	}

	// Compare password
	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(credentials.Password)); err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Invalid Email or password!"})
	}

	token, err := h.Tokens.SignInToken(&admin.User)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to sign session token")
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to generate token"})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"token": token,
		"_id":   admin.ID,
		"name":  admin.Name,
		"email": admin.Email,
		"role":  admin.Role,
		"image": admin.Image,
	})
}
