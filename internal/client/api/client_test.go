package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPhone = "+2348012345678"

func TestLogin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/auth/login", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.Empty(t, r.Header.Get("Authorization"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, testPhone, body["phoneNumber"])
		require.Equal(t, "2580", body["pin"])

		_ = json.NewEncoder(w).Encode(LoginResult{
			Token: "tok-1",
			User:  User{PhoneNumber: testPhone},
		})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, 5*time.Second, nil)
	res, err := c.Login(context.Background(), testPhone, "2580")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", res.Token)
	assert.Equal(t, testPhone, res.User.PhoneNumber)
}

func TestBearerTokenAttached(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.Equal(t, "/api/user/dashboard/"+testPhone, r.URL.EscapedPath())
		_ = json.NewEncoder(w).Encode(Dashboard{PhoneNumber: testPhone, Balance: "100.00"})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, 5*time.Second, func() string { return "tok-xyz" })
	d, err := c.Dashboard(context.Background(), testPhone)
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-xyz", gotAuth)
	assert.Equal(t, "100.00", d.Balance)
}

func TestBackendErrorMessageVerbatim(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Invalid PIN"})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, 5*time.Second, nil)
	_, err := c.Login(context.Background(), testPhone, "0000")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "Invalid PIN", apiErr.Error())
}

func TestMessageFieldFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "phone already registered"})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, 5*time.Second, nil)
	err := c.Register(context.Background(), testPhone, "2580", "")
	require.EqualError(t, err, "phone already registered")
}

func TestUnauthorizedMatchesSentinel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid token"})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, 5*time.Second, nil)
	_, err := c.Transactions(context.Background())
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestSendOTPOutlivesConfiguredTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(150 * time.Millisecond)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "sent"})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, 50*time.Millisecond, nil)

	// send-otp runs under its own 30s cap, so the 50ms setting must not
	// cut it off
	require.NoError(t, c.SendOTP(context.Background(), testPhone))

	// every other call is bound by the configured timeout
	_, err := c.Login(context.Background(), testPhone, "2580")
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestCallerDeadlineIsNotExtended(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(150 * time.Millisecond)
		_ = json.NewEncoder(w).Encode([]Transaction{})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, time.Minute, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := c.Transactions(ctx)
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestTransportFailureWrapsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	c := NewHTTPClient(srv.URL, time.Second, nil)
	err := c.SendOTP(context.Background(), testPhone)
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestErrorBodyWithoutJSONFallsBackToStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, 5*time.Second, nil)
	_, err := c.Transactions(context.Background())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "HTTP 502", apiErr.Error())
}

func TestTransactionsByAddress(t *testing.T) {
	created := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/transactions/0xabc", r.URL.Path)
		_ = json.NewEncoder(w).Encode([]Transaction{
			{ID: "t1", Amount: -5500, Currency: "cNGN", Type: "expense", Status: "Completed", CreatedAt: created},
		})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, 5*time.Second, nil)
	txs, err := c.TransactionsByAddress(context.Background(), "0xabc")
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, -5500.0, txs[0].Amount)
	assert.True(t, txs[0].CreatedAt.Equal(created))
}
