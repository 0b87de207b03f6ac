package payment

import (
	"errors"
	"fmt"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

// MidtransCheckout creates hosted Snap payment pages. Amounts are charged in
// whole currency units; fractional amounts are rounded down.
type MidtransCheckout struct {
	client snap.Client
}

func NewMidtransCheckout(serverKey string) *MidtransCheckout {
	c := &MidtransCheckout{}
	c.client.New(serverKey, midtrans.Sandbox)
	return c
}

func (m *MidtransCheckout) CheckoutLink(orderRef string, amount float64) (string, error) {
	resp, err := m.client.CreateTransaction(&snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderRef,
			GrossAmt: int64(amount),
		},
	})
	if resp == nil {
		if err != nil {
			return "", err
		}
		return "", errors.New("midtrans: empty snap response")
	}
	return resp.RedirectURL, nil
}

// LocalCheckout stands in when no gateway key is configured. The link is a
// placeholder the web UI renders as-is.
type LocalCheckout struct{}

func (LocalCheckout) CheckoutLink(orderRef string, amount float64) (string, error) {
	return fmt.Sprintf("https://pay.local/checkout/%s?amount=%.2f", orderRef, amount), nil
}
