package payments

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tomashops/bingobest/pkg/entities"
)

var (
	ErrOrderNotFound = errors.New("payment order not found")
	ErrOrderNotOpen  = errors.New("payment order is not open")
)

// OrderStatus represents the state of a payment order
type OrderStatus string

const (
	OrderCreated  OrderStatus = "CREATED"
	OrderCaptured OrderStatus = "CAPTURED"
)

// Order represents a payment order held by a provider
type Order struct {
	ID        string
	PlayerID  string
	Amount    entities.Cents
	Status    OrderStatus
	CreatedAt time.Time
}

// Provider abstracts a payment gateway. Both implementations here are mocks:
// they simulate gateway latency and approve everything, and no real SDK is
// ever called.
type Provider interface {
	// Name returns the provider's display name
	Name() string

	// CreateOrder opens a payment order for the amount
	CreateOrder(ctx context.Context, playerID string, amount entities.Cents) (*Order, error)

	// CaptureOrder finalizes a previously created order
	CaptureOrder(ctx context.Context, orderID string) (*Order, error)
}

// mockProvider is the shared guts of the stub gateways
type mockProvider struct {
	name    string
	latency time.Duration
	orders  map[string]*Order
	mu      sync.Mutex
}

func newMockProvider(name string, latency time.Duration) *mockProvider {
	return &mockProvider{
		name:    name,
		latency: latency,
		orders:  make(map[string]*Order),
	}
}

// Name returns the provider's display name
func (p *mockProvider) Name() string {
	return p.name
}

// CreateOrder opens a payment order for the amount
func (p *mockProvider) CreateOrder(ctx context.Context, playerID string, amount entities.Cents) (*Order, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("invalid order amount %s", amount)
	}

	if err := p.simulateLatency(ctx); err != nil {
		return nil, err
	}

	order := &Order{
		ID:        uuid.New().String(),
		PlayerID:  playerID,
		Amount:    amount,
		Status:    OrderCreated,
		CreatedAt: time.Now(),
	}

	p.mu.Lock()
	p.orders[order.ID] = order
	p.mu.Unlock()

	log.Printf("[PAYMENTS] %s order %s created for %s (%s)", p.name, order.ID, playerID, amount)

	orderCopy := *order
	return &orderCopy, nil
}

// CaptureOrder finalizes a previously created order
func (p *mockProvider) CaptureOrder(ctx context.Context, orderID string) (*Order, error) {
	if err := p.simulateLatency(ctx); err != nil {
		return nil, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	order, exists := p.orders[orderID]
	if !exists {
		return nil, ErrOrderNotFound
	}
	if order.Status != OrderCreated {
		return nil, ErrOrderNotOpen
	}

	order.Status = OrderCaptured
	log.Printf("[PAYMENTS] %s order %s captured", p.name, orderID)

	orderCopy := *order
	return &orderCopy, nil
}

// simulateLatency stands in for a gateway round trip
func (p *mockProvider) simulateLatency(ctx context.Context) error {
	if p.latency <= 0 {
		return nil
	}
	select {
	case <-time.After(p.latency):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// NewPayPalProvider creates the mocked PayPal gateway
func NewPayPalProvider() Provider {
	return newMockProvider("PayPal", 150*time.Millisecond)
}

// NewCryptoProvider creates the mocked crypto gateway
func NewCryptoProvider() Provider {
	return newMockProvider("Crypto", 400*time.Millisecond)
}
