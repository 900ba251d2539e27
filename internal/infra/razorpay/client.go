package razorpay

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	razorpaysdk "github.com/razorpay/razorpay-go"
)

// Order is the slice of the gateway's order descriptor the rest of the
// app cares about. Amount is in paise.
type Order struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

type Gateway struct {
	client *razorpaysdk.Client
}

func NewGateway(keyID, keySecret string) *Gateway {
	client := razorpaysdk.NewClient(keyID, keySecret)
	// seconds; the request blocks the caller, so keep it short
	client.SetTimeout(10)
	return &Gateway{client: client}
}

// CreateOrder mints a payment order at the gateway. Nothing is persisted
// here; the caller writes the local subscription row only after this
// returns an order id.
func (g *Gateway) CreateOrder(amountPaise int64, currency string) (*Order, error) {
	receipt := "rcpt_" + uuid.NewString()

	data := map[string]interface{}{
		"amount":   amountPaise,
		"currency": currency,
		"receipt":  receipt,
	}

	resp, err := g.client.Order.Create(data, nil)
	if err != nil {
		return nil, fmt.Errorf("razorpay order create: %w", err)
	}

	id, _ := resp["id"].(string)
	if id == "" {
		return nil, errors.New("razorpay order create: response missing order id")
	}

	return &Order{
		ID:       id,
		Amount:   amountPaise,
		Currency: currency,
		Receipt:  receipt,
	}, nil
}
