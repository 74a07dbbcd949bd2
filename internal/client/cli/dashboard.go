package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/RaginiSharma01/GoPay-Lite/internal/client/services"
	"github.com/RaginiSharma01/GoPay-Lite/internal/common"
)

// recentTransactionCount limits the ledger lines shown on the dashboard.
const recentTransactionCount = 5

// openDashboard runs the protected-page guard and renders the account.
// On any guard failure the user lands back at the login prompt: the
// guard has already cleared an unusable credential.
func (a *App) openDashboard(ctx context.Context) error {
	acc, err := a.auth.Bootstrap(ctx)
	if err != nil {
		a.account = nil
		if errors.Is(err, common.ErrUnauthorized) {
			fmt.Fprintln(a.out, "Please log in.")
			return nil
		}
		fmt.Fprintln(a.out, "Session check failed, please log in again.")
		return err
	}

	a.account = acc
	a.renderDashboard()
	return nil
}

func (a *App) renderDashboard() {
	acc := a.account

	fmt.Fprintf(a.out, "Welcome, %s\n", acc.Name)
	fmt.Fprintf(a.out, "Wallet balance: %d\n", acc.Balance)
	fmt.Fprintf(a.out, "Status: %s\n", acc.Status)
	fmt.Fprintf(a.out, "Transactions: %d\n", len(acc.Transactions))

	if len(acc.Transactions) == 0 {
		fmt.Fprintln(a.out, "No transactions yet")
		return
	}

	fmt.Fprintln(a.out, "Recent transactions:")
	// Most recent first.
	shown := 0
	for i := len(acc.Transactions) - 1; i >= 0 && shown < recentTransactionCount; i-- {
		tx := acc.Transactions[i]
		fmt.Fprintf(a.out, "  %s  %+d  %s\n", tx.Date, tx.Amount, tx.Description)
		shown++
	}
}

// Pay submits the fixed payment and applies the optimistic update to the
// dashboard state.
func (a *App) Pay(ctx context.Context) error {
	if !a.isLoggedIn() {
		return common.ErrUnauthorized
	}
	if a.payments.Processing() {
		fmt.Fprintln(a.out, "A payment is already being processed")
		return nil
	}
	if a.account.Balance < services.PaymentAmount {
		fmt.Fprintf(a.out, "Minimum %d required for payment\n", services.PaymentAmount)
		return common.ErrInsufficientFunds
	}

	updated, err := a.payments.Pay(ctx, *a.account)
	if err != nil {
		return err
	}

	a.account = &updated
	last := updated.Transactions[len(updated.Transactions)-1]
	fmt.Fprintf(a.out, "Payment successful! Order ID: %s\n", last.ID)
	fmt.Fprintf(a.out, "Wallet balance: %d\n", updated.Balance)
	return nil
}
