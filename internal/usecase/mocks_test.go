package usecase

import (
	"context"
	"errors"
	"sync"

	"github.com/TenSketch/Aaradhaya-UI-React/internal/domain"
)

var (
	ErrMockStore = errors.New("mock store error")
	ErrMockOrder = errors.New("mock order error")
	ErrMockMail  = errors.New("mock mail error")
)

// MockDonationStore implements DonationStore for testing.
type MockDonationStore struct {
	mu         sync.Mutex
	InsertFunc func(ctx context.Context, d *domain.Donation) error
	Inserted   []*domain.Donation
}

func (m *MockDonationStore) InsertDonation(ctx context.Context, d *domain.Donation) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.InsertFunc != nil {
		if err := m.InsertFunc(ctx, d); err != nil {
			return err
		}
	}
	m.Inserted = append(m.Inserted, d)
	return nil
}

func (m *MockDonationStore) InsertCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Inserted)
}

// MockOrderCreator implements OrderCreator for testing.
type MockOrderCreator struct {
	CreateFunc func(ctx context.Context, amountMinor int64, currency, receipt string, notes map[string]string) (*domain.Order, error)
	Calls      int
	LastAmount int64
	LastNotes  map[string]string
}

func (m *MockOrderCreator) CreateOrder(ctx context.Context, amountMinor int64, currency, receipt string, notes map[string]string) (*domain.Order, error) {
	m.Calls++
	m.LastAmount = amountMinor
	m.LastNotes = notes

	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, amountMinor, currency, receipt, notes)
	}
	return &domain.Order{
		ID:          "order_mock",
		AmountMinor: amountMinor,
		Currency:    currency,
		Receipt:     receipt,
		Notes:       notes,
	}, nil
}

// MockReceiptSender implements ReceiptSender for testing.
type MockReceiptSender struct {
	SendFunc func(d *domain.Donation) error
	Sent     []*domain.Donation
}

func (m *MockReceiptSender) SendReceipt(d *domain.Donation) error {
	if m.SendFunc != nil {
		if err := m.SendFunc(d); err != nil {
			return err
		}
	}
	m.Sent = append(m.Sent, d)
	return nil
}

// MockUserStore implements UserStore for testing.
type MockUserStore struct {
	CreateFunc func(ctx context.Context, u *domain.User) error
	GetFunc    func(ctx context.Context, email string) (*domain.User, error)
	Users      map[string]*domain.User
}

func NewMockUserStore() *MockUserStore {
	return &MockUserStore{Users: map[string]*domain.User{}}
}

func (m *MockUserStore) CreateUser(ctx context.Context, u *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, u)
	}
	if _, ok := m.Users[u.Email]; ok {
		return domain.ErrEmailTaken
	}
	m.Users[u.Email] = u
	return nil
}

func (m *MockUserStore) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, email)
	}
	u, ok := m.Users[email]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return u, nil
}
