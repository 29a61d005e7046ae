// Package settings writes third-party provider credentials into the store
// settings document.
package settings

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/Madhav-Gupta-28/bazar-backend-go/models"
)

// ErrMissingCredentials is returned when a required credential is empty.
var ErrMissingCredentials = errors.New("missing credentials")

// Store upserts keys under "setting" on the storeSetting document.
type Store interface {
	Upsert(ctx context.Context, fields map[string]interface{}) (*models.Setting, error)
}

type StripeCredentials struct {
	PublishableKey string
	SecretKey      string
}

// StripeFromEnv reads STRIPE_PUBLISHABLE_KEY and STRIPE_SECRET_KEY.
func StripeFromEnv() StripeCredentials {
	return StripeCredentials{
		PublishableKey: os.Getenv("STRIPE_PUBLISHABLE_KEY"),
		SecretKey:      os.Getenv("STRIPE_SECRET_KEY"),
	}
}

func (c StripeCredentials) Validate() error {
	if c.PublishableKey == "" || c.SecretKey == "" {
		return fmt.Errorf("%w: STRIPE_PUBLISHABLE_KEY and STRIPE_SECRET_KEY must be set", ErrMissingCredentials)
	}
	if !strings.HasPrefix(c.PublishableKey, "pk_") {
		return fmt.Errorf("publishable key must start with pk_")
	}
	if !strings.HasPrefix(c.SecretKey, "sk_") && !strings.HasPrefix(c.SecretKey, "rk_") {
		return fmt.Errorf("secret key must start with sk_ or rk_")
	}
	return nil
}

// ApplyStripeKeys stores both Stripe keys and enables Stripe checkout.
func ApplyStripeKeys(ctx context.Context, store Store, creds StripeCredentials) (*models.Setting, error) {
	if err := creds.Validate(); err != nil {
		return nil, err
	}
	return store.Upsert(ctx, map[string]interface{}{
		models.SettingStripeKey:    creds.PublishableKey,
		models.SettingStripeSecret: creds.SecretKey,
		models.SettingStripeStatus: true,
	})
}

type GoogleCredentials struct {
	ClientID     string
	ClientSecret string
	LoginEnabled bool
}

// GoogleFromEnv reads GOOGLE_CLIENT_ID, GOOGLE_CLIENT_SECRET and
// GOOGLE_LOGIN_STATUS. args ("<client-id> <client-secret> [true]") fill in
// whatever the environment leaves empty.
func GoogleFromEnv(args []string) GoogleCredentials {
	arg := func(i int) string {
		if i < len(args) {
			return args[i]
		}
		return ""
	}

	creds := GoogleCredentials{
		ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		LoginEnabled: os.Getenv("GOOGLE_LOGIN_STATUS") == "true" || arg(2) == "true",
	}
	if creds.ClientID == "" {
		creds.ClientID = arg(0)
	}
	if creds.ClientSecret == "" {
		creds.ClientSecret = arg(1)
	}
	return creds
}

func (c GoogleCredentials) Validate() error {
	if c.ClientID == "" || c.ClientSecret == "" {
		return fmt.Errorf("%w: GOOGLE_CLIENT_ID and GOOGLE_CLIENT_SECRET must be set", ErrMissingCredentials)
	}
	return nil
}

// ApplyGoogleOAuth stores the Google OAuth client and the login toggle.
func ApplyGoogleOAuth(ctx context.Context, store Store, creds GoogleCredentials) (*models.Setting, error) {
	if err := creds.Validate(); err != nil {
		return nil, err
	}
	return store.Upsert(ctx, map[string]interface{}{
		models.SettingGoogleID:          creds.ClientID,
		models.SettingGoogleSecret:      creds.ClientSecret,
		models.SettingGoogleLoginStatus: creds.LoginEnabled,
	})
}

// Truncate shortens an identifier for display.
func Truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// GoogleRedirectURI is the callback URL to register with Google.
func GoogleRedirectURI(storeDomain string) string {
	return strings.TrimRight(storeDomain, "/") + "/api/auth/callback/google"
}
