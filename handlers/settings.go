package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Madhav-Gupta-28/bazar-backend-go/database"
	"github.com/Madhav-Gupta-28/bazar-backend-go/models"
	"github.com/Madhav-Gupta-28/bazar-backend-go/utils"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

type SettingReader interface {
	Get(ctx context.Context) (*models.Setting, error)
}

type PayloadEncryptor interface {
	Encrypt(data interface{}) (utils.EncryptedPayload, error)
}

type SettingsHandler struct {
	Settings  SettingReader
	Encryptor PayloadEncryptor
}

// GetStoreSetting returns the store settings wrapped by the encryptor. With
// no ENCRYPT_PASSWORD configured the payload is plain JSON and iv is null.
func (h *SettingsHandler) GetStoreSetting(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	setting, err := h.Settings.Get(ctx)
	if errors.Is(err, database.ErrNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"message": "Store setting not found"})
	}
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to read store setting")
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to fetch store setting"})
	}

	payload, err := h.Encryptor.Encrypt(setting.Values)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to encrypt store setting")
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to fetch store setting"})
	}
	return c.JSON(http.StatusOK, payload)
}
