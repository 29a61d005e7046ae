package main

import (
	"context"
	"fmt"
	"time"

	"github.com/Madhav-Gupta-28/bazar-backend-go/config"
	"github.com/Madhav-Gupta-28/bazar-backend-go/models"
	"github.com/Madhav-Gupta-28/bazar-backend-go/settings"
	"github.com/spf13/cobra"
)

func newGoogleCmd(open storeOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "google [client-id client-secret [enable]]",
		Short: "Store Google OAuth credentials and the Google login toggle",
		Long: `Reads GOOGLE_CLIENT_ID, GOOGLE_CLIENT_SECRET and GOOGLE_LOGIN_STATUS.
Positional arguments are used for any value the environment leaves empty.`,
		Args: cobra.MaximumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			creds := settings.GoogleFromEnv(args)
			if err := creds.Validate(); err != nil {
				return err
			}

			cfg := config.Load()
			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			fmt.Fprintln(out, "🔌 Connecting to MongoDB...")
			store, closeStore, err := open(ctx, cfg)
			if err != nil {
				return err
			}
			defer func() {
				closeStore()
				fmt.Fprintln(out, "✅ Database connection closed")
			}()
			fmt.Fprintln(out, "✅ Connected to MongoDB")

			fmt.Fprintln(out, "📝 Updating Google OAuth credentials...")
			fmt.Fprintf(out, "   Client ID: %s\n", settings.Truncate(creds.ClientID, 20))
			fmt.Fprintf(out, "   Enable Login: %t\n", creds.LoginEnabled)

			setting, err := settings.ApplyGoogleOAuth(ctx, store, creds)
			if err != nil {
				return fmt.Errorf("error updating Google credentials: %w", err)
			}

			fmt.Fprintln(out, "✅ Google OAuth credentials updated successfully!")
			fmt.Fprintf(out, "   Google ID: %s\n", mark(setting.GetString(models.SettingGoogleID) != "", "Set", "Not set"))
			fmt.Fprintf(out, "   Google Secret: %s\n", mark(setting.GetString(models.SettingGoogleSecret) != "", "Set", "Not set"))
			fmt.Fprintf(out, "   Google Login Status: %s\n", mark(setting.GetBool(models.SettingGoogleLoginStatus), "Enabled", "Disabled"))
			fmt.Fprintln(out, "⚠️  Configure this redirect URI in Google Cloud Console:")
			fmt.Fprintf(out, "   %s\n", settings.GoogleRedirectURI(cfg.StoreDomain))
			return nil
		},
	}
}

func mark(ok bool, yes, no string) string {
	if ok {
		return "✅ " + yes
	}
	return "❌ " + no
}
