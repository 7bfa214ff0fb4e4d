package payment

import (
	"context"
	"fmt"

	"github.com/TenSketch/Aaradhaya-UI-React/internal/domain"

	razorpay "github.com/razorpay/razorpay-go"
)

// RazorpayClient wraps the Razorpay SDK for order creation. The SDK is safe
// for concurrent use; one client is shared by all requests.
type RazorpayClient struct {
	client *razorpay.Client
}

func NewRazorpayClient(keyID, keySecret string) *RazorpayClient {
	return &RazorpayClient{client: razorpay.NewClient(keyID, keySecret)}
}

// CreateOrder asks Razorpay to create an order for amountMinor (minor
// currency units, i.e. paise for INR) with the donor metadata attached as
// notes. The SDK call does not take a context, so it runs in a goroutine and
// the result is discarded if ctx expires first.
func (c *RazorpayClient) CreateOrder(ctx context.Context, amountMinor int64, currency, receipt string, notes map[string]string) (*domain.Order, error) {
	noteData := make(map[string]interface{}, len(notes))
	for k, v := range notes {
		noteData[k] = v
	}

	data := map[string]interface{}{
		"amount":   amountMinor,
		"currency": currency,
		"receipt":  receipt,
		"notes":    noteData,
	}

	type result struct {
		body map[string]interface{}
		err  error
	}
	ch := make(chan result, 1)
	go func() {
		body, err := c.client.Order.Create(data, nil)
		ch <- result{body: body, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("create order: %w", ctx.Err())
	case res := <-ch:
		if res.err != nil {
			return nil, fmt.Errorf("create order: %w", res.err)
		}
		return orderFromResponse(res.body, amountMinor, currency, receipt, notes)
	}
}

func orderFromResponse(body map[string]interface{}, amountMinor int64, currency, receipt string, notes map[string]string) (*domain.Order, error) {
	id, ok := body["id"].(string)
	if !ok || id == "" {
		return nil, fmt.Errorf("create order: provider response missing order id")
	}

	order := &domain.Order{
		ID:          id,
		AmountMinor: amountMinor,
		Currency:    currency,
		Receipt:     receipt,
		Notes:       notes,
	}

	// The provider echoes back the authoritative values; prefer them when
	// present. JSON numbers decode as float64.
	if amt, ok := body["amount"].(float64); ok {
		order.AmountMinor = int64(amt)
	}
	if cur, ok := body["currency"].(string); ok {
		order.Currency = cur
	}
	if rcpt, ok := body["receipt"].(string); ok {
		order.Receipt = rcpt
	}

	return order, nil
}
