package subscription

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

// TranzilaMock stands in for the Tranzila terminal in development and
// testing. Every charge succeeds and returns provider-shaped IDs.
type TranzilaMock struct{}

func NewTranzilaMock() *TranzilaMock { return &TranzilaMock{} }

func token() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

func (t *TranzilaMock) SetupRecurring(ctx context.Context, barberID string, amount float64, card CardDetails) (*ChargeResult, error) {
	return &ChargeResult{
		TransactionID:   "trx_test_" + token(),
		StandingOrderID: "so_test_" + token(),
		PaymentToken:    "tok_test_" + token(),
	}, nil
}

func (t *TranzilaMock) CancelRecurring(ctx context.Context, standingOrderID string) error {
	return nil
}
