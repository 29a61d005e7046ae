package settings

import (
	"fmt"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
)

// VerifyStripeSecret makes one authenticated call to the Stripe API to check
// that secret is accepted before it is written to the store.
func VerifyStripeSecret(secret string) error {
	sc := client.New(secret, nil)
	if _, err := sc.Balance.Get(&stripe.BalanceParams{}); err != nil {
		return fmt.Errorf("stripe rejected the secret key: %w", err)
	}
	return nil
}
