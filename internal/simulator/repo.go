package simulator

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	errAccountExists   = errors.New("account already exists")
	errAccountNotFound = errors.New("account not found")
)

// account is one registered wallet user with their history.
type account struct {
	ID            string
	PhoneNumber   string
	PINHash       []byte
	WalletAddress string
	Blockchain    string
	Balance       float64
	Currency      string
	Profile       profile
	Transactions  []transaction
}

type profile struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Country   string `json:"country"`
}

type transaction struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Currency    string    `json:"currency"`
	Type        string    `json:"type"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// otpState tracks an issued one-time code through verification.
type otpState struct {
	Code     string
	SID      string
	Verified bool
}

// repository keeps all simulator state behind one lock.
type repository struct {
	mu       sync.RWMutex
	accounts map[string]*account // keyed by phone number
	otps     map[string]*otpState
}

func newRepository() *repository {
	return &repository{
		accounts: make(map[string]*account),
		otps:     make(map[string]*otpState),
	}
}

func (r *repository) putOTP(phone, code string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.otps[phone] = &otpState{Code: code}
}

func (r *repository) otpCode(phone string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if st, ok := r.otps[phone]; ok {
		return st.Code
	}
	return ""
}

// verifyOTP marks the code verified and issues a signup session id.
func (r *repository) verifyOTP(phone, code string) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	st, ok := r.otps[phone]
	if !ok || st.Code != code {
		return "", false
	}
	st.Verified = true
	st.SID = uuid.NewString()
	return st.SID, true
}

func (r *repository) otpVerified(phone string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	st, ok := r.otps[phone]
	return ok && st.Verified
}

func (r *repository) createAccount(acc *account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.accounts[acc.PhoneNumber]; exists {
		return errAccountExists
	}
	r.accounts[acc.PhoneNumber] = acc
	delete(r.otps, acc.PhoneNumber)
	return nil
}

func (r *repository) findByPhone(phone string) (*account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	acc, ok := r.accounts[phone]
	if !ok {
		return nil, errAccountNotFound
	}
	return acc, nil
}

func (r *repository) updateProfile(phone string, p profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	acc, ok := r.accounts[phone]
	if !ok {
		return errAccountNotFound
	}
	acc.Profile = p
	return nil
}

// newWalletAddress derives a display-friendly hex address.
func newWalletAddress() string {
	return "0x" + strings.ReplaceAll(uuid.NewString(), "-", "")
}

// seedTransactions fabricates a plausible opening history.
func seedTransactions(currency string, now time.Time) []transaction {
	mk := func(daysAgo int, desc string, amount float64, kind string) transaction {
		return transaction{
			ID:          uuid.NewString(),
			Description: desc,
			Amount:      amount,
			Currency:    currency,
			Type:        kind,
			Status:      "completed",
			CreatedAt:   now.AddDate(0, 0, -daysAgo),
		}
	}
	return []transaction{
		mk(1, "Wallet top up", 10000, "credit"),
		mk(3, "Airtime purchase", 1500, "debit"),
		mk(7, "Transfer received", 20000, "credit"),
		mk(12, "Electricity bill", 4300, "debit"),
		mk(20, "Welcome bonus", 500, "credit"),
	}
}
