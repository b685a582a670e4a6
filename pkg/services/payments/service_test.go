package payments

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tomashops/bingobest/internal/types"
	"github.com/tomashops/bingobest/pkg/entities"
	mock_economy_service "github.com/tomashops/bingobest/pkg/services/economy/mock"
	"go.uber.org/mock/gomock"
)

// instantProvider skips the simulated gateway latency in tests
func instantProvider(name string) Provider {
	return newMockProvider(name, 0)
}

func TestDepositCreditsLedgerAfterCapture(t *testing.T) {
	ctrl := gomock.NewController(t)
	ledger := mock_economy_service.NewMockLedger(ctrl)

	ledger.EXPECT().
		Deposit(gomock.Any(), "player1", entities.Cents(2500), gomock.Any()).
		Return(&entities.PlayerAccount{
			ID:                  "player1",
			Balance:             2500,
			WithdrawableBalance: 2500,
		}, nil)

	service := NewService(instantProvider("PayPal"), ledger)

	account, err := service.Deposit(context.Background(), "player1", 2500)
	require.NoError(t, err)
	assert.Equal(t, entities.Cents(2500), account.Balance)
}

func TestDepositRejectedByLedger(t *testing.T) {
	ctrl := gomock.NewController(t)
	ledger := mock_economy_service.NewMockLedger(ctrl)

	ledgerErr := errors.New("account not found")
	ledger.EXPECT().
		Deposit(gomock.Any(), "ghost", entities.Cents(2500), gomock.Any()).
		Return(nil, ledgerErr)

	service := NewService(instantProvider("PayPal"), ledger)

	_, err := service.Deposit(context.Background(), "ghost", 2500)
	assert.ErrorIs(t, err, ledgerErr)
}

func TestDepositInvalidAmountNeverReachesLedger(t *testing.T) {
	ctrl := gomock.NewController(t)
	ledger := mock_economy_service.NewMockLedger(ctrl)
	// No Deposit expectation: the order fails before capture

	service := NewService(instantProvider("Crypto"), ledger)

	_, err := service.Deposit(context.Background(), "player1", -100)
	assert.True(t, types.IsEconomyError(err, types.ErrPaymentFailed))
}

func TestProviderOrderLifecycle(t *testing.T) {
	provider := instantProvider("PayPal")
	ctx := context.Background()

	order, err := provider.CreateOrder(ctx, "player1", 1000)
	require.NoError(t, err)
	assert.Equal(t, OrderCreated, order.Status)
	assert.NotEmpty(t, order.ID)

	captured, err := provider.CaptureOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, OrderCaptured, captured.Status)

	// A captured order cannot be captured again
	_, err = provider.CaptureOrder(ctx, order.ID)
	assert.ErrorIs(t, err, ErrOrderNotOpen)
}

func TestProviderCaptureUnknownOrder(t *testing.T) {
	provider := instantProvider("Crypto")

	_, err := provider.CaptureOrder(context.Background(), "no-such-order")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestProviderHonorsContextCancellation(t *testing.T) {
	provider := newMockProvider("Crypto", 5*time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := provider.CreateOrder(ctx, "player1", 1000)
	assert.ErrorIs(t, err, context.Canceled)
}
