package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/TenSketch/Aaradhaya-UI-React/internal/domain"
	"github.com/TenSketch/Aaradhaya-UI-React/internal/payment"
)

const testSecret = "testsecret"

func newTestDonationUsecase(store *MockDonationStore, orders *MockOrderCreator, mail *MockReceiptSender) *DonationUsecase {
	return NewDonationUsecase(store, orders, mail, testSecret, "INR", 5*time.Second)
}

func validInput() VerifyPaymentInput {
	return VerifyPaymentInput{
		OrderID:   "order_abc123",
		PaymentID: "pay_xyz789",
		Signature: payment.PaymentSignature("order_abc123", "pay_xyz789", testSecret),
		Donor: domain.DonorDetails{
			Name:        "Asha",
			Email:       "asha@example.com",
			AmountMinor: 50000,
		},
		Status: domain.StatusSuccess,
	}
}

func TestVerifyPaymentRecordsDonation(t *testing.T) {
	store := &MockDonationStore{}
	mail := &MockReceiptSender{}
	uc := newTestDonationUsecase(store, &MockOrderCreator{}, mail)

	if err := uc.VerifyPayment(context.Background(), validInput()); err != nil {
		t.Fatalf("VerifyPayment: %v", err)
	}

	if store.InsertCount() != 1 {
		t.Fatalf("inserted %d records, want 1", store.InsertCount())
	}

	d := store.Inserted[0]
	if d.Status != domain.StatusSuccess {
		t.Errorf("stored status %q, want the caller-supplied %q", d.Status, domain.StatusSuccess)
	}
	if d.OrderID != "order_abc123" || d.PaymentID != "pay_xyz789" {
		t.Errorf("stored ids %q/%q", d.OrderID, d.PaymentID)
	}
	if d.ID == "" {
		t.Error("stored record has no id")
	}
	if len(mail.Sent) != 1 {
		t.Errorf("sent %d receipts, want 1", len(mail.Sent))
	}
}

func TestVerifyPaymentStoresCallerStatusLiterally(t *testing.T) {
	store := &MockDonationStore{}
	uc := newTestDonationUsecase(store, &MockOrderCreator{}, &MockReceiptSender{})

	in := validInput()
	in.Status = domain.StatusFailed

	if err := uc.VerifyPayment(context.Background(), in); err != nil {
		t.Fatalf("VerifyPayment: %v", err)
	}
	if store.Inserted[0].Status != domain.StatusFailed {
		t.Errorf("stored status %q, want %q", store.Inserted[0].Status, domain.StatusFailed)
	}
}

func TestVerifyPaymentRejectsBadSignature(t *testing.T) {
	store := &MockDonationStore{}
	mail := &MockReceiptSender{}
	uc := newTestDonationUsecase(store, &MockOrderCreator{}, mail)

	in := validInput()
	in.Signature = payment.PaymentSignature("order_abc123", "pay_xyz789", "wrongsecret")

	err := uc.VerifyPayment(context.Background(), in)
	if err != domain.ErrInvalidSignature {
		t.Fatalf("VerifyPayment = %v, want ErrInvalidSignature", err)
	}

	if store.InsertCount() != 0 {
		t.Errorf("inserted %d records after rejected signature, want 0", store.InsertCount())
	}
	if len(mail.Sent) != 0 {
		t.Errorf("sent %d receipts after rejected signature, want 0", len(mail.Sent))
	}
}

func TestVerifyPaymentMailFailureDoesNotFailFlow(t *testing.T) {
	store := &MockDonationStore{}
	mail := &MockReceiptSender{
		SendFunc: func(d *domain.Donation) error { return ErrMockMail },
	}
	uc := newTestDonationUsecase(store, &MockOrderCreator{}, mail)

	if err := uc.VerifyPayment(context.Background(), validInput()); err != nil {
		t.Fatalf("VerifyPayment = %v, want nil despite mail failure", err)
	}
	if store.InsertCount() != 1 {
		t.Errorf("inserted %d records, want 1", store.InsertCount())
	}
}

func TestVerifyPaymentStoreFailureSkipsReceipt(t *testing.T) {
	store := &MockDonationStore{
		InsertFunc: func(ctx context.Context, d *domain.Donation) error { return ErrMockStore },
	}
	mail := &MockReceiptSender{}
	uc := newTestDonationUsecase(store, &MockOrderCreator{}, mail)

	err := uc.VerifyPayment(context.Background(), validInput())
	if err == nil {
		t.Fatal("VerifyPayment = nil, want store error")
	}
	if !errors.Is(err, ErrMockStore) {
		t.Errorf("VerifyPayment = %v, want wrapped ErrMockStore", err)
	}
	if len(mail.Sent) != 0 {
		t.Errorf("sent %d receipts after store failure, want 0", len(mail.Sent))
	}
}

func TestVerifyPaymentDuplicateIsIdempotent(t *testing.T) {
	store := &MockDonationStore{
		InsertFunc: func(ctx context.Context, d *domain.Donation) error { return domain.ErrDuplicateDonation },
	}
	mail := &MockReceiptSender{}
	uc := newTestDonationUsecase(store, &MockOrderCreator{}, mail)

	if err := uc.VerifyPayment(context.Background(), validInput()); err != nil {
		t.Fatalf("VerifyPayment = %v, want nil for duplicate callback", err)
	}
	if len(mail.Sent) != 0 {
		t.Errorf("sent %d receipts for a duplicate callback, want 0", len(mail.Sent))
	}
}

func TestCreateOrderPassesAmountAndNotes(t *testing.T) {
	orders := &MockOrderCreator{}
	uc := newTestDonationUsecase(&MockDonationStore{}, orders, &MockReceiptSender{})

	order, err := uc.CreateOrder(context.Background(), domain.DonorDetails{
		Name:        "Asha",
		Email:       "asha@example.com",
		AmountMinor: 50000,
	})
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}

	if orders.LastAmount != 50000 {
		t.Errorf("provider amount %d, want 50000", orders.LastAmount)
	}
	if orders.LastNotes["donor_name"] != "Asha" {
		t.Errorf("donor name note %q", orders.LastNotes["donor_name"])
	}
	if order.Receipt == "" {
		t.Error("order has no receipt reference")
	}
}

func TestCreateOrderRejectsNonPositiveAmount(t *testing.T) {
	orders := &MockOrderCreator{}
	uc := newTestDonationUsecase(&MockDonationStore{}, orders, &MockReceiptSender{})

	if _, err := uc.CreateOrder(context.Background(), domain.DonorDetails{AmountMinor: 0}); err == nil {
		t.Fatal("CreateOrder accepted zero amount")
	}
	if orders.Calls != 0 {
		t.Errorf("provider called %d times for invalid amount, want 0", orders.Calls)
	}
}

func TestCreateOrderSurfacesProviderFailure(t *testing.T) {
	orders := &MockOrderCreator{
		CreateFunc: func(ctx context.Context, amountMinor int64, currency, receipt string, notes map[string]string) (*domain.Order, error) {
			return nil, ErrMockOrder
		},
	}
	uc := newTestDonationUsecase(&MockDonationStore{}, orders, &MockReceiptSender{})

	order, err := uc.CreateOrder(context.Background(), domain.DonorDetails{AmountMinor: 100})
	if err == nil {
		t.Fatal("CreateOrder = nil error, want provider failure")
	}
	if order != nil {
		t.Errorf("CreateOrder fabricated an order on failure: %+v", order)
	}
}
