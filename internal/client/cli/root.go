package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Refresh(ctx context.Context) error
	ForgotPassword(ctx context.Context) error
	VerifyEmail(ctx context.Context, token string) error
	Dashboard(ctx context.Context) error
	Pay(ctx context.Context) error
}

// Dashboard re-runs the session guard and renders the account view.
func (a *App) Dashboard(ctx context.Context) error {
	return a.openDashboard(ctx)
}

// report prints a handler error to the user. The REPL never aborts on a
// command failure.
func report(out io.Writer, err error) {
	if err != nil {
		fmt.Fprintln(out, "Error:", err)
	}
}

// runREPL starts a simple read–eval–print loop for the GoPay-Lite CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
func runREPL(ctx context.Context, a execIface, scanner *bufio.Scanner, out io.Writer) {
	for {
		if a.isLoggedIn() {
			fmt.Fprint(out, "gopay> ")
		} else {
			fmt.Fprint(out, "gopay (guest)> ")
		}
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(out, "Available commands: dashboard, pay, refresh, logout, exit")
			} else {
				fmt.Fprintln(out, "Available commands: register, login, forgot, verify <token>, exit")
			}

		case "register":
			report(out, a.Register(ctx))

		case "login":
			report(out, a.Login(ctx))

		case "dashboard":
			report(out, a.Dashboard(ctx))

		case "pay":
			report(out, a.Pay(ctx))

		case "refresh":
			report(out, a.Refresh(ctx))

		case "forgot":
			report(out, a.ForgotPassword(ctx))

		case "verify":
			if len(args) == 0 {
				fmt.Fprintln(out, "Usage: verify <token>")
				continue
			}
			report(out, a.VerifyEmail(ctx, args[0]))

		case "logout":
			report(out, a.Logout(ctx))

		case "exit", "quit":
			fmt.Fprintln(out, "Bye!")
			return

		default:
			fmt.Fprintln(out, "Unknown command:", cmd)
		}
	}
}

// Root starts the interactive CLI. It first tries to restore a previous
// session so a returning user lands straight on the dashboard.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to GoPay-Lite CLI (type 'help' for commands)")

	_ = a.openDashboard(ctx)

	scanner := bufio.NewScanner(a.reader)
	runREPL(ctx, a, scanner, a.out)
}
