package payments

import (
	"context"
	"fmt"
	"log"

	"github.com/tomashops/bingobest/internal/types"
	"github.com/tomashops/bingobest/pkg/entities"
	"github.com/tomashops/bingobest/pkg/services/economy"
)

// Service drives a deposit through a payment provider and credits the
// ledger once the provider confirms capture. The fee never reaches the
// ledger on a failed or abandoned order.
type Service struct {
	provider Provider
	ledger   economy.Ledger
}

// NewService creates a new payments service
func NewService(provider Provider, ledger economy.Ledger) *Service {
	return &Service{
		provider: provider,
		ledger:   ledger,
	}
}

// Deposit runs the full create-capture-credit flow for a player deposit.
// Returns the updated account on success.
func (s *Service) Deposit(ctx context.Context, playerID string, amount entities.Cents) (*entities.PlayerAccount, error) {
	order, err := s.provider.CreateOrder(ctx, playerID, amount)
	if err != nil {
		return nil, types.WrapError(types.ErrPaymentFailed,
			fmt.Sprintf("error creating %s order", s.provider.Name()), err)
	}

	if _, err := s.provider.CaptureOrder(ctx, order.ID); err != nil {
		return nil, types.WrapError(types.ErrPaymentFailed,
			fmt.Sprintf("error capturing %s order %s", s.provider.Name(), order.ID), err)
	}

	description := fmt.Sprintf("%s deposit (order %s)", s.provider.Name(), order.ID)
	account, err := s.ledger.Deposit(ctx, playerID, amount, description)
	if err != nil {
		// The provider captured but the ledger refused; operators have to
		// reconcile these by hand, so make the audit line loud.
		log.Printf("[PAYMENTS] CAPTURED ORDER %s NOT CREDITED for %s: %v", order.ID, playerID, err)
		return nil, fmt.Errorf("error crediting deposit for order %s: %w", order.ID, err)
	}

	return account, nil
}
