package tickets

import (
	"context"
	"time"
)

// Service interface defines the contract for ticket retrieval and
// artifact generation
type Service interface {
	ListTickets(ctx context.Context) ([]Ticket, error)
	GetTicket(ctx context.Context, id string) (*Ticket, error)

	// GetPass regenerates the wallet pass projection of a stored ticket.
	GetPass(ctx context.Context, id string) (*WalletPass, error)

	// RenderQR renders the stored QR payload as a PNG of the given size.
	RenderQR(ctx context.Context, id string, size int) ([]byte, error)

	// Validate checks a scanned QR payload against shape, age and checksum.
	Validate(raw string) ValidationResult
}

type service struct {
	repo    Repository
	encoder *PassEncoder
}

// NewService creates a new ticket service instance
func NewService(repo Repository, encoder *PassEncoder) Service {
	return &service{repo: repo, encoder: encoder}
}

func (s *service) ListTickets(ctx context.Context) ([]Ticket, error) {
	return s.repo.List(ctx)
}

func (s *service) GetTicket(ctx context.Context, id string) (*Ticket, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) GetPass(ctx context.Context, id string) (*WalletPass, error) {
	ticket, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	pass := s.encoder.Encode(ticket)
	return &pass, nil
}

func (s *service) RenderQR(ctx context.Context, id string, size int) ([]byte, error) {
	ticket, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return RenderQRPNG(ticket, size)
}

func (s *service) Validate(raw string) ValidationResult {
	return ValidateQRPayload(raw, time.Now())
}
