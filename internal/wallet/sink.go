// Package wallet installs generated passes into the user's wallet. The
// core does not care how: a sink may hand the pass to a platform wallet
// or offer it as a downloadable file.
package wallet

import (
	"context"

	"eventx/internal/tickets"
)

// WalletError describes a pass that could not be installed. Non-fatal:
// the ticket stays valid and retrievable by QR regardless.
type WalletError struct {
	Reason string
	Err    error
}

func (e *WalletError) Error() string {
	if e.Err != nil {
		return "wallet: " + e.Reason + ": " + e.Err.Error()
	}
	return "wallet: " + e.Reason
}

func (e *WalletError) Unwrap() error {
	return e.Err
}

// Sink accepts wallet pass documents.
type Sink interface {
	AddPass(ctx context.Context, pass tickets.WalletPass) error
}
