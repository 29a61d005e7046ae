package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Madhav-Gupta-28/bazar-backend-go/database"
	"github.com/Madhav-Gupta-28/bazar-backend-go/metrics"
	"github.com/Madhav-Gupta-28/bazar-backend-go/models"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const adminContextKey = "admin"

type AdminFinder interface {
	FindAdmin(ctx context.Context, id primitive.ObjectID) (*models.Admin, error)
}

// IsAdmin must run after IsAuth. It lets the request through only when the
// authenticated identity itself is a stored administrator.
func IsAdmin(admins AdminFinder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			notAdmin := func() error {
				metrics.AuthRejections.WithLabelValues(metrics.ReasonNotAdmin).Inc()
				return c.JSON(http.StatusUnauthorized, map[string]string{"message": "User is not Admin"})
			}

			claims := CurrentUser(c)
			if claims == nil {
				return notAdmin()
			}
			id, err := primitive.ObjectIDFromHex(claims.ID)
			if err != nil {
				return notAdmin()
			}

			ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
			defer cancel()

			admin, err := admins.FindAdmin(ctx, id)
			if errors.Is(err, database.ErrNotFound) {
				return notAdmin()
			}
			if err != nil {
				zerolog.Ctx(ctx).Error().Err(err).Str("admin_id", claims.ID).Msg("admin lookup failed")
				return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to verify admin"})
			}
			if !admin.IsAdmin() {
				return notAdmin()
			}

			c.Set(adminContextKey, admin)
			return next(c)
		}
	}
}

// CurrentAdmin returns the admin record IsAdmin attached, or nil.
func CurrentAdmin(c echo.Context) *models.Admin {
	admin, _ := c.Get(adminContextKey).(*models.Admin)
	return admin
}
