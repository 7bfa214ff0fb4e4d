package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/TenSketch/Aaradhaya-UI-React/internal/domain"
	"github.com/TenSketch/Aaradhaya-UI-React/internal/payment"

	"github.com/google/uuid"
)

// DonationStore is the slice of the repository the donation flow needs.
type DonationStore interface {
	InsertDonation(ctx context.Context, d *domain.Donation) error
}

// OrderCreator creates an order with the payment provider.
type OrderCreator interface {
	CreateOrder(ctx context.Context, amountMinor int64, currency, receipt string, notes map[string]string) (*domain.Order, error)
}

// ReceiptSender delivers a donation receipt to the donor.
type ReceiptSender interface {
	SendReceipt(d *domain.Donation) error
}

type DonationUsecase struct {
	store       DonationStore
	orders      OrderCreator
	mail        ReceiptSender
	secret      string
	currency    string
	callTimeout time.Duration
}

func NewDonationUsecase(store DonationStore, orders OrderCreator, mail ReceiptSender, razorpaySecret, currency string, callTimeout time.Duration) *DonationUsecase {
	return &DonationUsecase{
		store:       store,
		orders:      orders,
		mail:        mail,
		secret:      razorpaySecret,
		currency:    currency,
		callTimeout: callTimeout,
	}
}

// CreateOrder asks the provider for an order covering the donor's amount.
// The provider is the source of truth for the resulting order; nothing is
// persisted locally.
func (u *DonationUsecase) CreateOrder(ctx context.Context, d domain.DonorDetails) (*domain.Order, error) {
	if d.AmountMinor <= 0 {
		return nil, fmt.Errorf("amount must be > 0")
	}

	receipt := fmt.Sprintf("receipt_%d", time.Now().UnixMilli())
	notes := map[string]string{
		"donor_name":    d.Name,
		"donor_email":   d.Email,
		"donor_mobile":  d.Mobile,
		"donor_aadhar":  d.Aadhar,
		"pan":           d.PAN,
		"donor_message": d.Message,
	}

	ctx, cancel := context.WithTimeout(ctx, u.callTimeout)
	defer cancel()

	order, err := u.orders.CreateOrder(ctx, d.AmountMinor, u.currency, receipt, notes)
	if err != nil {
		log.Printf("[ORDER] Failed to create order: %v", err)
		return nil, err
	}

	log.Printf("[ORDER] Razorpay order created: %s (receipt %s)", order.ID, order.Receipt)
	return order, nil
}

// VerifyPaymentInput is the provider callback payload after DTO validation.
type VerifyPaymentInput struct {
	OrderID   string
	PaymentID string
	Signature string
	Donor     domain.DonorDetails
	Status    domain.DonationStatus
}

// VerifyPayment runs the callback flow: signature check, then the durable
// donation insert, then the best-effort receipt. A repeated callback for the
// same (order, payment) pair succeeds without a second record or receipt.
func (u *DonationUsecase) VerifyPayment(ctx context.Context, in VerifyPaymentInput) error {
	if !payment.VerifySignature(in.OrderID, in.PaymentID, in.Signature, u.secret) {
		log.Printf("[VERIFY] Invalid signature for order=%s payment=%s", in.OrderID, in.PaymentID)
		return domain.ErrInvalidSignature
	}

	d := &domain.Donation{
		ID:          uuid.New().String(),
		DonorName:   in.Donor.Name,
		DonorEmail:  in.Donor.Email,
		DonorMobile: in.Donor.Mobile,
		DonorAadhar: in.Donor.Aadhar,
		DonorPAN:    in.Donor.PAN,
		DonorMsg:    in.Donor.Message,
		DonorAddr:   in.Donor.Address,
		AmountMinor: in.Donor.AmountMinor,
		OrderID:     in.OrderID,
		PaymentID:   in.PaymentID,
		Status:      in.Status,
		CreatedAt:   time.Now(),
	}

	insertCtx, cancel := context.WithTimeout(ctx, u.callTimeout)
	defer cancel()

	if err := u.store.InsertDonation(insertCtx, d); err != nil {
		if err == domain.ErrDuplicateDonation {
			log.Printf("[VERIFY] Duplicate callback for order=%s payment=%s, already recorded", in.OrderID, in.PaymentID)
			return nil
		}
		log.Printf("[VERIFY] Failed to store donation for order=%s: %v", in.OrderID, err)
		return fmt.Errorf("store donation: %w", err)
	}

	log.Printf("[VERIFY] Payment verified and stored: order=%s payment=%s status=%s", in.OrderID, in.PaymentID, in.Status)

	// The record is durable; the receipt is attempted exactly once and its
	// outcome is discarded.
	if err := u.mail.SendReceipt(d); err != nil {
		log.Printf("[EMAIL] Failed to send confirmation to %q: %v", d.DonorEmail, err)
	} else {
		log.Printf("[EMAIL] Donation confirmation sent to %q", d.DonorEmail)
	}

	return nil
}
