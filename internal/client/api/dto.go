package api

import "time"

// User is the account object returned by the auth endpoints.
type User struct {
	PhoneNumber string `json:"phoneNumber"`
}

// LoginResult carries the credentials issued on a successful login or
// registration.
type LoginResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Dashboard is the profile-plus-balance view for the home screen. Balance
// is a decimal string, as served by the backend.
type Dashboard struct {
	PhoneNumber   string `json:"phoneNumber"`
	WalletAddress string `json:"walletAddress"`
	Blockchain    string `json:"blockchain"`
	Balance       string `json:"balance"`
	Currency      string `json:"currency"`
}

// Profile holds the editable user-info fields.
type Profile struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Country   string `json:"country"`
}

// Transaction is one history record.
type Transaction struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Currency    string    `json:"currency"`
	Type        string    `json:"type"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}
