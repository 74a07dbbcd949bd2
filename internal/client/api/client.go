// Package api implements the GoPay-Lite transport client and the typed
// session and account operations built on it. Every call funnels through
// a single request helper that owns the deadline, header composition,
// credential attachment, and error normalization; the operations add no
// further wrapping.
package api

import (
	"context"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"github.com/RaginiSharma01/GoPay-Lite/internal/client/models"
	"github.com/RaginiSharma01/GoPay-Lite/internal/client/session"
	"github.com/RaginiSharma01/GoPay-Lite/internal/logging"
)

// DefaultRequestTimeout bounds every API call. Deadline expiry cancels
// the in-flight request and surfaces common.ErrRequestTimeout.
const DefaultRequestTimeout = 8 * time.Second

// Client is the operation surface the services are written against.
type Client interface {
	Register(ctx context.Context, name, email, password string) (*AuthResponse, error)
	Login(ctx context.Context, email, password string) (*AuthResponse, error)
	Me(ctx context.Context) (*models.Profile, error)
	Logout(ctx context.Context) (*MessageResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenResponse, error)
	ForgotPassword(ctx context.Context, email string) (*MessageResponse, error)
	VerifyEmail(ctx context.Context, token string) (*MessageResponse, error)
	InitiatePayment(ctx context.Context, req *PaymentRequest) (*PaymentResponse, error)
}

// HTTPClient talks JSON over HTTP to the GoPay backend. The bearer
// credential is read from the injected session store on every authorized
// call; cookies set by the backend are carried across calls.
type HTTPClient struct {
	baseURL  string
	timeout  time.Duration
	http     *http.Client
	sessions session.Store
	log      logging.Logger
}

var _ Client = (*HTTPClient)(nil)

func NewHTTPClient(baseURL string, timeout time.Duration, sessions session.Store, log logging.Logger) (*HTTPClient, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}
	return &HTTPClient{
		baseURL:  strings.TrimRight(baseURL, "/"),
		timeout:  timeout,
		http:     &http.Client{Jar: jar},
		sessions: sessions,
		log:      log,
	}, nil
}
