// Package models contains the client-side account state: the profile
// view rendered by the dashboard and the pure transformations applied
// to it. Balances and amounts are integers in minor currency units.
package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultBalance is shown when the server omits a balance for the
	// account.
	DefaultBalance int64 = 1200

	// StatusActive is the default account status.
	StatusActive = "active"

	// PaymentDescription labels locally appended payment transactions.
	PaymentDescription = "Payment to merchant"
)

// Transaction is a single ledger line. Transactions are append-only on
// the client; insertion order is kept, with the most recent appended
// last.
type Transaction struct {
	ID          string `json:"id"`
	Amount      int64  `json:"amount"`
	Date        string `json:"date"`
	Description string `json:"description"`
}

// Account is the dashboard view of the authenticated user. It is
// refreshed from the server on load and mutated locally after a
// successful payment, until the next full refresh.
type Account struct {
	Name         string
	Balance      int64
	Transactions []Transaction
	Status       string
}

// FromProfile normalizes a raw profile into an Account, applying fixed
// fallbacks for fields the server may omit: balance defaults to
// DefaultBalance, transactions to an empty sequence, status to
// StatusActive, and the display name to the account email.
func FromProfile(p *Profile) Account {
	acc := Account{
		Name:         p.Name,
		Balance:      DefaultBalance,
		Transactions: []Transaction{},
		Status:       StatusActive,
	}
	if p.Name == "" {
		acc.Name = p.Email
	}
	if p.Balance != nil {
		acc.Balance = *p.Balance
	}
	if p.Transactions != nil {
		acc.Transactions = append(acc.Transactions, p.Transactions...)
	}
	if p.Status != "" {
		acc.Status = p.Status
	}
	return acc
}

// ApplyPayment returns a copy of acc with the optimistic local update
// for a successful debit: the balance is decremented by amount and a
// transaction is appended carrying the server order id, the negated
// amount, and the client-observed time in RFC 3339 form. When the
// server returned no order id, a locally generated one keeps the ledger
// line addressable. The input account is not modified.
func ApplyPayment(acc Account, orderID string, amount int64, now time.Time) Account {
	if orderID == "" {
		orderID = uuid.NewString()
	}

	updated := acc
	updated.Balance = acc.Balance - amount
	updated.Transactions = make([]Transaction, 0, len(acc.Transactions)+1)
	updated.Transactions = append(updated.Transactions, acc.Transactions...)
	updated.Transactions = append(updated.Transactions, Transaction{
		ID:          orderID,
		Amount:      -amount,
		Date:        now.UTC().Format(time.RFC3339),
		Description: PaymentDescription,
	})
	return updated
}
