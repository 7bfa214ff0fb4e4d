package domain

import (
	"errors"
	"fmt"
	"time"
)

type DonationStatus string

const (
	StatusSuccess DonationStatus = "success"
	StatusFailed  DonationStatus = "failed"
	StatusPending DonationStatus = "pending"
)

// Order is the provider-side reservation of an amount to be paid. The
// provider is authoritative; nothing is persisted locally.
type Order struct {
	ID          string
	AmountMinor int64
	Currency    string
	Receipt     string
	Notes       map[string]string
}

// DonorDetails carries the donor fields the frontend submits. Name, email
// and amount are required; the rest may be empty.
type DonorDetails struct {
	Name        string
	Email       string
	Mobile      string
	Aadhar      string
	PAN         string
	Message     string
	Address     string
	AmountMinor int64
}

// Donation is the append-only record of a completed donation attempt.
// It is never mutated after insert.
type Donation struct {
	ID          string
	DonorName   string
	DonorEmail  string
	DonorMobile string
	DonorAadhar string
	DonorPAN    string
	DonorMsg    string
	DonorAddr   string
	AmountMinor int64
	OrderID     string
	PaymentID   string
	Status      DonationStatus
	CreatedAt   time.Time
}

// AmountDisplay renders the minor-unit amount in major units, e.g. 50000 -> "500.00".
func (d *Donation) AmountDisplay() string {
	return FormatAmountMinor(d.AmountMinor)
}

func FormatAmountMinor(minor int64) string {
	sign := ""
	if minor < 0 {
		sign = "-"
		minor = -minor
	}
	return fmt.Sprintf("%s%d.%02d", sign, minor/100, minor%100)
}

type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidSignature   = errors.New("invalid signature")
	ErrDuplicateDonation  = errors.New("donation already recorded")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
)
