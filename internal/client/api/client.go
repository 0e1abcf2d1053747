// Package api is the REST client for the wallet backend. Every call is a
// single request-response; there is no retry machinery — "retry" is the user
// re-running a command.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client is the backend surface the screens depend on. The concrete
// implementation is HTTPClient; tests substitute fakes.
type Client interface {
	SendOTP(ctx context.Context, phoneNumber string) error
	VerifyOTP(ctx context.Context, phoneNumber, code string) (string, error)
	Register(ctx context.Context, phoneNumber, pin, userID string) error
	Login(ctx context.Context, phoneNumber, pin string) (LoginResult, error)
	Dashboard(ctx context.Context, phoneNumber string) (Dashboard, error)
	UserInfo(ctx context.Context, phoneNumber string) (Profile, error)
	UpdateUserInfo(ctx context.Context, phoneNumber string, p Profile) error
	Transactions(ctx context.Context) ([]Transaction, error)
	TransactionsByAddress(ctx context.Context, address string) ([]Transaction, error)
}

// sendOTPTimeout caps OTP issuance; SMS gateways can hang far longer than
// any user will wait.
const sendOTPTimeout = 30 * time.Second

// TokenSource supplies the current bearer token; "" means anonymous. The
// session manager satisfies this.
type TokenSource func() string

// HTTPClient talks JSON over HTTP to the backend at BaseURL and attaches
// `Authorization: Bearer <token>` when the token source yields one.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	timeout time.Duration
	token   TokenSource
}

// NewHTTPClient builds a client for the given base URL. A nil token source
// sends every request anonymously. timeout bounds each request individually;
// it never overrides a deadline a caller already set (SendOTP carries its
// own), and zero means unbounded.
func NewHTTPClient(baseURL string, timeout time.Duration, token TokenSource) *HTTPClient {
	if token == nil {
		token = func() string { return "" }
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		timeout: timeout,
		token:   token,
	}
}

func (c *HTTPClient) SendOTP(ctx context.Context, phoneNumber string) error {
	ctx, cancel := context.WithTimeout(ctx, sendOTPTimeout)
	defer cancel()

	body := map[string]string{"phoneNumber": phoneNumber}
	return c.do(ctx, http.MethodPost, "/api/auth/send-otp", body, nil)
}

func (c *HTTPClient) VerifyOTP(ctx context.Context, phoneNumber, code string) (string, error) {
	body := map[string]string{"phoneNumber": phoneNumber, "code": code}
	var resp struct {
		SID string `json:"sid"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/auth/verify-otp", body, &resp); err != nil {
		return "", err
	}
	return resp.SID, nil
}

func (c *HTTPClient) Register(ctx context.Context, phoneNumber, pin, userID string) error {
	body := map[string]string{"phoneNumber": phoneNumber, "pin": pin}
	if userID != "" {
		body["userId"] = userID
	}
	return c.do(ctx, http.MethodPost, "/api/auth/register", body, nil)
}

func (c *HTTPClient) Login(ctx context.Context, phoneNumber, pin string) (LoginResult, error) {
	body := map[string]string{"phoneNumber": phoneNumber, "pin": pin}
	var resp LoginResult
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", body, &resp); err != nil {
		return LoginResult{}, err
	}
	return resp, nil
}

func (c *HTTPClient) Dashboard(ctx context.Context, phoneNumber string) (Dashboard, error) {
	var resp Dashboard
	err := c.do(ctx, http.MethodGet, "/api/user/dashboard/"+url.PathEscape(phoneNumber), nil, &resp)
	return resp, err
}

func (c *HTTPClient) UserInfo(ctx context.Context, phoneNumber string) (Profile, error) {
	var resp Profile
	err := c.do(ctx, http.MethodGet, "/api/user-info/"+url.PathEscape(phoneNumber), nil, &resp)
	return resp, err
}

func (c *HTTPClient) UpdateUserInfo(ctx context.Context, phoneNumber string, p Profile) error {
	return c.do(ctx, http.MethodPost, "/api/user-info/"+url.PathEscape(phoneNumber), p, nil)
}

func (c *HTTPClient) Transactions(ctx context.Context) ([]Transaction, error) {
	var resp []Transaction
	err := c.do(ctx, http.MethodGet, "/api/transactions", nil, &resp)
	return resp, err
}

func (c *HTTPClient) TransactionsByAddress(ctx context.Context, address string) ([]Transaction, error) {
	var resp []Transaction
	err := c.do(ctx, http.MethodGet, "/api/transactions/"+url.PathEscape(address), nil, &resp)
	return resp, err
}

// do sends one JSON request and decodes the response into out (when out is
// non-nil). Non-2xx responses become *APIError carrying the backend's
// error/message field verbatim; transport failures wrap ErrUnavailable.
func (c *HTTPClient) do(ctx context.Context, method, path string, body, out any) error {
	if _, ok := ctx.Deadline(); !ok && c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, Message: extractMessage(resp.Body)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// extractMessage pulls the backend's error text out of a failure body,
// preferring the `error` field over `message`.
func extractMessage(r io.Reader) string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		return ""
	}
	if payload.Error != "" {
		return payload.Error
	}
	return payload.Message
}
