package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeExec struct {
	loggedIn bool

	calls     []string
	verifyArg string
	payErr    error
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error {
	f.calls = append(f.calls, "register")
	return nil
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) Refresh(ctx context.Context) error {
	f.calls = append(f.calls, "refresh")
	return nil
}
func (f *fakeExec) ForgotPassword(ctx context.Context) error {
	f.calls = append(f.calls, "forgot")
	return nil
}
func (f *fakeExec) VerifyEmail(ctx context.Context, token string) error {
	f.calls = append(f.calls, "verify")
	f.verifyArg = token
	return nil
}
func (f *fakeExec) Dashboard(ctx context.Context) error {
	f.calls = append(f.calls, "dashboard")
	return nil
}
func (f *fakeExec) Pay(ctx context.Context) error {
	f.calls = append(f.calls, "pay")
	return f.payErr
}

func runScript(exec *fakeExec, lines ...string) string {
	input := strings.NewReader(strings.Join(lines, "\n"))
	var out bytes.Buffer
	runREPL(context.Background(), exec, bufio.NewScanner(input), &out)
	return out.String()
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	exec := &fakeExec{}
	out := runScript(exec,
		"help",
		"login",
		"help",
		"dashboard",
		"pay",
		"refresh",
		"",
		"foobar",
		"logout",
		"exit",
	)

	require.Equal(t, []string{"login", "dashboard", "pay", "refresh", "logout"}, exec.calls)
	require.Contains(t, out, "register, login")
	require.Contains(t, out, "dashboard, pay")
	require.Contains(t, out, "Unknown command: foobar")
	require.Contains(t, out, "Bye!")
}

func TestRunREPL_VerifyNeedsToken(t *testing.T) {
	exec := &fakeExec{}
	out := runScript(exec, "verify", "verify abc123", "quit")

	require.Equal(t, []string{"verify"}, exec.calls)
	require.Equal(t, "abc123", exec.verifyArg)
	require.Contains(t, out, "Usage: verify <token>")
}

func TestRunREPL_ReportsHandlerErrors(t *testing.T) {
	exec := &fakeExec{loggedIn: true, payErr: errors.New("card declined")}
	out := runScript(exec, "pay", "exit")

	require.Contains(t, out, "Error: card declined")
}

func TestRunREPL_EOFExits(t *testing.T) {
	exec := &fakeExec{}
	out := runScript(exec, "help")

	require.NotContains(t, out, "Bye!")
}
