// Package cli implements the interactive terminal client for AfriWallet.
// It wires the on-device store, the session manager and the backend API
// client together and drives a read-eval-print loop over the wallet screens.
package cli
