// Command storesettings writes payment and OAuth provider credentials into
// the storeSetting document.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/Madhav-Gupta-28/bazar-backend-go/config"
	"github.com/Madhav-Gupta-28/bazar-backend-go/database"
	"github.com/Madhav-Gupta-28/bazar-backend-go/settings"
	"github.com/spf13/cobra"
)

// storeOpener connects to the settings store and returns a func that
// releases the connection.
type storeOpener func(ctx context.Context, cfg *config.Config) (settings.Store, func(), error)

func openMongoStore(ctx context.Context, cfg *config.Config) (settings.Store, func(), error) {
	if cfg.MongoURI == "" {
		return nil, nil, config.ErrMissingMongoURI
	}
	client, err := database.Connect(ctx, cfg.MongoURI)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	closeFn := func() { _ = client.Disconnect(context.Background()) }
	return database.NewSettingRepository(client.Database(cfg.DatabaseName)), closeFn, nil
}

func newRootCmd(open storeOpener, verifyStripe func(secret string) error) *cobra.Command {
	root := &cobra.Command{
		Use:           "storesettings",
		Short:         "Update provider credentials in the store settings",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newStripeCmd(open, verifyStripe), newGoogleCmd(open))
	return root
}

func main() {
	config.LoadEnv()

	if err := newRootCmd(openMongoStore, settings.VerifyStripeSecret).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "❌ Error:", err)
		os.Exit(1)
	}
}
