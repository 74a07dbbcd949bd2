package api

import (
	"context"
	"net/http"
)

// PaymentRequest is the /pay request body. Amount is in minor currency
// units.
type PaymentRequest struct {
	Amount      int64  `json:"amount"`
	FromAccount string `json:"from_account"`
	ToAccount   string `json:"to_account"`
}

// PaymentResponse is the server's payment record. RazorpayOrderID is the
// order identifier the dashboard attaches to the local transaction.
type PaymentResponse struct {
	ID              int64   `json:"id"`
	RazorpayOrderID string  `json:"razorpay_order_id,omitempty"`
	Status          string  `json:"status"`
	Amount          float64 `json:"amount"`
	Currency        string  `json:"currency,omitempty"`
	CreatedAt       string  `json:"created_at,omitempty"`
}

// InitiatePayment submits a payment for the authenticated user.
func (c *HTTPClient) InitiatePayment(ctx context.Context, req *PaymentRequest) (*PaymentResponse, error) {
	raw, err := c.request(ctx, "/pay", requestOptions{
		method: http.MethodPost,
		body:   req,
		auth:   true,
	})
	if err != nil {
		return nil, err
	}
	return unmarshal[PaymentResponse](raw)
}
