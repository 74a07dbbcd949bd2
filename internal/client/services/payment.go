package services

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/RaginiSharma01/GoPay-Lite/internal/client/api"
	"github.com/RaginiSharma01/GoPay-Lite/internal/client/models"
	"github.com/RaginiSharma01/GoPay-Lite/internal/client/session"
	"github.com/RaginiSharma01/GoPay-Lite/internal/common"
	"github.com/RaginiSharma01/GoPay-Lite/internal/logging"
)

// The current design is a single fixed-amount payment between fixed
// counterparties; amount and accounts are not caller-supplied.
const (
	PaymentAmount      int64 = 500
	paymentFromAccount       = "wallet"
	paymentToAccount         = "merchant"
)

// PaymentService drives the payment flow: precondition checks, the /pay
// call, and the optimistic local account update.
type PaymentService struct {
	client   api.Client
	sessions session.Store
	log      logging.Logger

	processing atomic.Bool
	nowFn      func() time.Time
}

func NewPaymentService(client api.Client, sessions session.Store, log logging.Logger) *PaymentService {
	return &PaymentService{client: client, sessions: sessions, log: log, nowFn: time.Now}
}

// Processing reports whether a payment is currently in flight. The flag
// is advisory: callers use it to disable re-entrant invocation, the
// service does not enforce single-flight itself.
func (s *PaymentService) Processing() bool {
	return s.processing.Load()
}

// Pay submits the fixed payment for the given account state and returns
// the optimistically updated account: balance decremented and a
// transaction appended, valid until the next full profile refresh.
//
// Preconditions are checked before any network call: the known balance
// must cover the amount (common.ErrInsufficientFunds) and a credential
// must be stored (common.ErrUnauthorized). On any failure the input
// account is returned unchanged.
func (s *PaymentService) Pay(ctx context.Context, acc models.Account) (models.Account, error) {
	if acc.Balance < PaymentAmount {
		return acc, common.ErrInsufficientFunds
	}

	token, err := s.sessions.Token(ctx)
	if err != nil {
		return acc, err
	}
	if token == "" {
		return acc, common.ErrUnauthorized
	}

	s.processing.Store(true)
	defer s.processing.Store(false)

	resp, err := s.client.InitiatePayment(ctx, &api.PaymentRequest{
		Amount:      PaymentAmount,
		FromAccount: paymentFromAccount,
		ToAccount:   paymentToAccount,
	})
	if err != nil {
		return acc, err
	}

	s.log.Info(ctx, "payment accepted", "order_id", resp.RazorpayOrderID, "amount", PaymentAmount)
	return models.ApplyPayment(acc, resp.RazorpayOrderID, PaymentAmount, s.nowFn()), nil
}
