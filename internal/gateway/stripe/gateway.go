package stripe

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	stripesdk "github.com/stripe/stripe-go/v82"
	"parcelmarket/internal/entities"
)

const serviceName = "stripe"

type PaymentGateway struct {
	intents paymentIntents
}

func New(intents paymentIntents) *PaymentGateway {
	return &PaymentGateway{
		intents: intents,
	}
}

// CreatePaymentIntent opens a card-only intent in a fixed currency and
// hands back the client secret for confirmation on the caller's side.
// Failed calls are not retried.
func (g *PaymentGateway) CreatePaymentIntent(ctx context.Context, amountInCents int64) (*entities.PaymentIntent, error) {
	params := &stripesdk.PaymentIntentParams{
		Amount:             stripesdk.Int64(amountInCents),
		Currency:           stripesdk.String(string(stripesdk.CurrencyUSD)),
		PaymentMethodTypes: stripesdk.StringSlice([]string{"card"}),
	}
	params.Params.Context = ctx

	var intent *stripesdk.PaymentIntent

	err := g.executeWithMetrics("CreatePaymentIntent", func() error {
		var err error
		intent, err = g.intents.New(params)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("gateway stripe, create payment intent: %w", err)
	}

	return &entities.PaymentIntent{ClientSecret: intent.ClientSecret}, nil
}

func (g *PaymentGateway) executeWithMetrics(method string, fn func() error) error {
	start := time.Now()

	err := fn()

	status := getStatusLabel(err)
	GatewayRequestDuration.WithLabelValues(serviceName, method, status).Observe(time.Since(start).Seconds())

	return err
}

func getStatusLabel(err error) string {
	if err == nil {
		return "200"
	}

	var stripeErr *stripesdk.Error
	if errors.As(err, &stripeErr) && stripeErr.HTTPStatusCode != 0 {
		return strconv.Itoa(stripeErr.HTTPStatusCode)
	}
	return "unknown"
}
