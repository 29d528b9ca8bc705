//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=stripe_test
package stripe

import (
	stripesdk "github.com/stripe/stripe-go/v82"
)

type paymentIntents interface {
	New(params *stripesdk.PaymentIntentParams) (*stripesdk.PaymentIntent, error)
}
