package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/RaginiSharma01/GoPay-Lite/internal/client/api"
	"github.com/RaginiSharma01/GoPay-Lite/internal/client/models"
	"github.com/RaginiSharma01/GoPay-Lite/internal/client/session"
	"github.com/RaginiSharma01/GoPay-Lite/internal/common"
)

func authedStore(t *testing.T) session.Store {
	t.Helper()
	store := session.NewMemoryStore()
	require.NoError(t, store.Save(context.Background(), session.Session{Token: "tok"}))
	return store
}

func TestPay_InsufficientFunds(t *testing.T) {
	f := &fakeClient{}
	svc := NewPaymentService(f, authedStore(t), testLogger())

	acc := models.Account{Balance: 400}
	got, err := svc.Pay(context.Background(), acc)

	require.ErrorIs(t, err, common.ErrInsufficientFunds)
	require.Zero(t, f.PaymentCalls, "no network call on precondition failure")
	require.Equal(t, acc, got)
}

func TestPay_Unauthenticated(t *testing.T) {
	f := &fakeClient{}
	svc := NewPaymentService(f, session.NewMemoryStore(), testLogger())

	_, err := svc.Pay(context.Background(), models.Account{Balance: 1000})
	require.ErrorIs(t, err, common.ErrUnauthorized)
	require.Zero(t, f.PaymentCalls)
}

func TestPay_OptimisticUpdateSequence(t *testing.T) {
	fixed := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	f := &fakeClient{PaymentRet: &api.PaymentResponse{RazorpayOrderID: "ord_1", Status: "created"}}
	svc := NewPaymentService(f, authedStore(t), testLogger())
	svc.nowFn = func() time.Time { return fixed }

	acc := models.Account{Balance: 1000, Transactions: []models.Transaction{}}

	first, err := svc.Pay(context.Background(), acc)
	require.NoError(t, err)
	require.Equal(t, int64(500), first.Balance)
	require.Len(t, first.Transactions, 1)
	require.Equal(t, "ord_1", first.Transactions[0].ID)
	require.Equal(t, int64(-500), first.Transactions[0].Amount)

	f.PaymentRet = &api.PaymentResponse{RazorpayOrderID: "ord_2", Status: "created"}
	second, err := svc.Pay(context.Background(), first)
	require.NoError(t, err)
	require.Equal(t, int64(0), second.Balance)
	require.Len(t, second.Transactions, 2)
	require.Equal(t, "ord_1", second.Transactions[0].ID)
	require.Equal(t, "ord_2", second.Transactions[1].ID)

	require.Equal(t, 2, f.PaymentCalls)
}

func TestPay_SendsFixedBody(t *testing.T) {
	f := &fakeClient{PaymentRet: &api.PaymentResponse{RazorpayOrderID: "ord_1"}}
	svc := NewPaymentService(f, authedStore(t), testLogger())

	_, err := svc.Pay(context.Background(), models.Account{Balance: 1000})
	require.NoError(t, err)

	require.Equal(t, &api.PaymentRequest{
		Amount:      500,
		FromAccount: "wallet",
		ToAccount:   "merchant",
	}, f.LastPaymentReq)
}

func TestPay_FailureLeavesAccountUnchanged(t *testing.T) {
	f := &fakeClient{PaymentErr: &api.APIError{Status: 402, Message: "card declined"}}
	svc := NewPaymentService(f, authedStore(t), testLogger())

	acc := models.Account{Balance: 1000, Transactions: []models.Transaction{{ID: "tx_0"}}}
	got, err := svc.Pay(context.Background(), acc)

	require.EqualError(t, err, "card declined")
	require.Equal(t, acc, got)
}

func TestPay_ProcessingFlagResets(t *testing.T) {
	f := &fakeClient{PaymentRet: &api.PaymentResponse{RazorpayOrderID: "ord_1"}}
	svc := NewPaymentService(f, authedStore(t), testLogger())

	require.False(t, svc.Processing())
	_, err := svc.Pay(context.Background(), models.Account{Balance: 1000})
	require.NoError(t, err)
	require.False(t, svc.Processing())
}
