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

func newStripeCmd(open storeOpener, verifyStripe func(secret string) error) *cobra.Command {
	var verify bool

	cmd := &cobra.Command{
		Use:   "stripe",
		Short: "Store STRIPE_PUBLISHABLE_KEY and STRIPE_SECRET_KEY and enable Stripe",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			creds := settings.StripeFromEnv()
			if err := creds.Validate(); err != nil {
				return err
			}

			if verify {
				fmt.Fprintln(out, "🔑 Verifying secret key with Stripe...")
				if err := verifyStripe(creds.SecretKey); err != nil {
					return err
				}
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			store, closeStore, err := open(ctx, config.Load())
			if err != nil {
				return err
			}
			defer closeStore()

			setting, err := settings.ApplyStripeKeys(ctx, store, creds)
			if err != nil {
				return fmt.Errorf("error updating Stripe keys: %w", err)
			}

			hidden := "not set"
			if setting.GetString(models.SettingStripeSecret) != "" {
				hidden = "***hidden***"
			}
			fmt.Fprintln(out, "✅ Stripe keys updated successfully!")
			fmt.Fprintln(out, "Publishable Key:", setting.GetString(models.SettingStripeKey))
			fmt.Fprintln(out, "Secret Key:", hidden)
			return nil
		},
	}

	cmd.Flags().BoolVar(&verify, "verify", false, "check the secret key against the Stripe API before saving")
	return cmd
}
