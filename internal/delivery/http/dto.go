package httpd

import (
	"encoding/json"
	"time"
)

type CreateOrderReq struct {
	Amount       json.Number `json:"amount" validate:"required"`
	DonorName    string      `json:"donor_name" validate:"required,max=120"`
	DonorEmail   string      `json:"donor_email" validate:"required,email,max=254"`
	DonorMobile  string      `json:"donor_mobile" validate:"omitempty,max=20"`
	DonorAadhar  string      `json:"donor_aadhar" validate:"omitempty,max=20"`
	PAN          string      `json:"pan" validate:"omitempty,max=20"`
	DonorMessage string      `json:"donor_message" validate:"omitempty,max=1000"`
	DonorAddress string      `json:"donor_address" validate:"omitempty,max=500"`
}

type OrderPayload struct {
	ID       string            `json:"id"`
	Amount   int64             `json:"amount"`
	Currency string            `json:"currency"`
	Receipt  string            `json:"receipt"`
	Notes    map[string]string `json:"notes,omitempty"`
}

type CreateOrderResp struct {
	Order OrderPayload `json:"order"`
}

// DonorDetailsPayload is the typed replacement for the free-form donor map
// the frontend sends on verification. Unknown fields are dropped and field
// sizes are bounded.
type DonorDetailsPayload struct {
	DonorName    string      `json:"donor_name" validate:"required,max=120"`
	DonorEmail   string      `json:"donor_email" validate:"required,email,max=254"`
	DonorMobile  string      `json:"donor_mobile" validate:"omitempty,max=20"`
	DonorAadhar  string      `json:"donor_aadhar" validate:"omitempty,max=20"`
	PAN          string      `json:"pan" validate:"omitempty,max=20"`
	DonorMessage string      `json:"donor_message" validate:"omitempty,max=1000"`
	DonorAddress string      `json:"donor_address" validate:"omitempty,max=500"`
	Amount       json.Number `json:"amount" validate:"required"`
}

type VerifyPaymentReq struct {
	OrderID      string              `json:"razorpay_order_id" validate:"required,max=64"`
	PaymentID    string              `json:"razorpay_payment_id" validate:"required,max=64"`
	Signature    string              `json:"razorpay_signature" validate:"required,max=128"`
	DonorDetails DonorDetailsPayload `json:"donorDetails" validate:"required"`
	Status       string              `json:"status" validate:"required,oneof=success failed pending"`
}

type SignupReq struct {
	Name     string `json:"name" validate:"required,max=120"`
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

type SigninReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// The admin form posts the email under "username".
type AdminLoginReq struct {
	Username string `json:"username" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type DonationItem struct {
	ID           string    `json:"id"`
	DonorName    string    `json:"donor_name"`
	DonorEmail   string    `json:"donor_email"`
	DonorMobile  string    `json:"donor_mobile,omitempty"`
	Amount       string    `json:"amount"`
	OrderID      string    `json:"razorpay_order_id"`
	PaymentID    string    `json:"razorpay_payment_id"`
	Status       string    `json:"status"`
	DonorMessage string    `json:"donor_message,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
