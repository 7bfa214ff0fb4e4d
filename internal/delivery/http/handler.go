package httpd

import (
	"context"
	"encoding/json"
	"math/big"
	"net/http"
	"strconv"

	"github.com/TenSketch/Aaradhaya-UI-React/internal/domain"
	"github.com/TenSketch/Aaradhaya-UI-React/internal/repository"
	"github.com/TenSketch/Aaradhaya-UI-React/internal/usecase"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-playground/validator/v10"
)

// DonationReader serves the admin dashboard's read endpoints.
type DonationReader interface {
	ListDonations(ctx context.Context, f repository.DonationFilter, limit, offset int) ([]domain.Donation, error)
	GetDonationByOrderID(ctx context.Context, orderID string) (*domain.Donation, error)
}

type Handler struct {
	donations *usecase.DonationUsecase
	auth      *usecase.AuthUsecase
	reader    DonationReader
	validate  *validator.Validate
}

func NewHandler(donations *usecase.DonationUsecase, auth *usecase.AuthUsecase, reader DonationReader) *Handler {
	return &Handler{
		donations: donations,
		auth:      auth,
		reader:    reader,
		validate:  validator.New(),
	}
}

func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{
			"http://localhost:5173",
			"http://localhost:3000",
			"https://aaradhaya-ui-react.vercel.app",
		},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Post("/api/razorpay/order", h.CreateOrder)
	r.Post("/api/razorpay/verify", h.VerifyPayment)

	r.Post("/api/auth/signup", h.Signup)
	r.Post("/api/auth/signin", h.Signin)
	r.Post("/api/admin/login", h.AdminLogin)

	r.Group(func(r chi.Router) {
		r.Use(AdminOnly(h.auth))
		r.Get("/api/donations", h.ListDonations)
		r.Get("/api/donations/{orderID}", h.GetDonation)
	})

	r.Get("/api/healthz", h.Healthz)

	return r
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

var ErrBadAmount = &apiErr{Status: http.StatusBadRequest, Msg: "invalid amount format"}

type apiErr struct {
	Status int
	Msg    string
}

func (e *apiErr) Error() string { return e.Msg }

// parseAmountToMinor converts a major-unit amount ("500" or "500.50") into
// minor units (paise).
func parseAmountToMinor(value string) (int64, error) {
	r := new(big.Rat)
	_, ok := r.SetString(value)
	if !ok {
		return 0, ErrBadAmount
	}

	r.Mul(r, big.NewRat(100, 1))
	i := new(big.Int)
	i.Div(r.Num(), r.Denom())

	return i.Int64(), nil
}

// POST /api/razorpay/order
func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	if err := h.validate.Struct(req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	amountMinor, err := parseAmountToMinor(req.Amount.String())
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	if amountMinor <= 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "amount must be > 0"})
		return
	}

	order, err := h.donations.CreateOrder(r.Context(), domain.DonorDetails{
		Name:        req.DonorName,
		Email:       req.DonorEmail,
		Mobile:      req.DonorMobile,
		Aadhar:      req.DonorAadhar,
		PAN:         req.PAN,
		Message:     req.DonorMessage,
		Address:     req.DonorAddress,
		AmountMinor: amountMinor,
	})
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "Failed to create order",
			"details": err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, CreateOrderResp{Order: OrderPayload{
		ID:       order.ID,
		Amount:   order.AmountMinor,
		Currency: order.Currency,
		Receipt:  order.Receipt,
		Notes:    order.Notes,
	}})
}

// POST /api/razorpay/verify
func (h *Handler) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	var req VerifyPaymentReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "message": "invalid json"})
		return
	}

	if err := h.validate.Struct(req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "message": err.Error()})
		return
	}

	amountMinor, err := parseAmountToMinor(req.DonorDetails.Amount.String())
	if err != nil || amountMinor <= 0 {
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "message": "invalid amount format"})
		return
	}

	err = h.donations.VerifyPayment(r.Context(), usecase.VerifyPaymentInput{
		OrderID:   req.OrderID,
		PaymentID: req.PaymentID,
		Signature: req.Signature,
		Donor: domain.DonorDetails{
			Name:        req.DonorDetails.DonorName,
			Email:       req.DonorDetails.DonorEmail,
			Mobile:      req.DonorDetails.DonorMobile,
			Aadhar:      req.DonorDetails.DonorAadhar,
			PAN:         req.DonorDetails.PAN,
			Message:     req.DonorDetails.DonorMessage,
			Address:     req.DonorDetails.DonorAddress,
			AmountMinor: amountMinor,
		},
		Status: domain.DonationStatus(req.Status),
	})
	if err != nil {
		if err == domain.ErrInvalidSignature {
			writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "message": "Invalid signature"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"success": false,
			"message": "Failed to verify/store payment",
			"details": err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// POST /api/auth/signup
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "message": "invalid json"})
		return
	}

	if err := h.validate.Struct(req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "message": "Name, email, and password are required."})
		return
	}

	u, err := h.auth.Signup(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if err == domain.ErrEmailTaken {
			writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "message": "User already exists with this email."})
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]any{"success": false, "message": "Server error."})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Account created successfully!",
		"userId":  u.ID,
	})
}

// POST /api/auth/signin
func (h *Handler) Signin(w http.ResponseWriter, r *http.Request) {
	var req SigninReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "message": "invalid json"})
		return
	}

	if err := h.validate.Struct(req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "message": "Email and password are required."})
		return
	}

	token, u, err := h.auth.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		if err == domain.ErrInvalidCredentials {
			writeJSON(w, http.StatusUnauthorized, map[string]any{"success": false, "message": "Invalid credentials."})
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]any{"success": false, "message": "Server error."})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Signed in successfully!",
		"token":   token,
		"user": map[string]string{
			"id":    u.ID,
			"name":  u.Name,
			"email": u.Email,
		},
	})
}

// POST /api/admin/login
func (h *Handler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var req AdminLoginReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "message": "invalid json"})
		return
	}

	if err := h.validate.Struct(req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "message": "Email and password required."})
		return
	}

	token, err := h.auth.AdminLogin(r.Context(), req.Username, req.Password)
	if err != nil {
		if err == domain.ErrInvalidCredentials {
			writeJSON(w, http.StatusUnauthorized, map[string]any{"success": false, "message": "Invalid credentials"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]any{"success": false, "message": "Server error."})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "token": token})
}

// GET /api/donations?email=&orderId=&status=&limit=&offset=
func (h *Handler) ListDonations(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := repository.DonationFilter{
		DonorEmail: q.Get("email"),
		OrderID:    q.Get("orderId"),
	}
	if st := q.Get("status"); st != "" {
		filter.Status = domain.DonationStatus(st)
	}

	limit := 50
	offset := 0
	if v := q.Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 200 {
			limit = n
		}
	}
	if v := q.Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}

	items, err := h.reader.ListDonations(r.Context(), filter, limit, offset)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	out := make([]DonationItem, 0, len(items))
	for _, d := range items {
		out = append(out, toDonationItem(d))
	}
	writeJSON(w, http.StatusOK, out)
}

// GET /api/donations/{orderID}
func (h *Handler) GetDonation(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderID")
	d, err := h.reader.GetDonationByOrderID(r.Context(), orderID)
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "donation not found"})
		return
	}

	writeJSON(w, http.StatusOK, toDonationItem(*d))
}

func toDonationItem(d domain.Donation) DonationItem {
	return DonationItem{
		ID:           d.ID,
		DonorName:    d.DonorName,
		DonorEmail:   d.DonorEmail,
		DonorMobile:  d.DonorMobile,
		Amount:       d.AmountDisplay(),
		OrderID:      d.OrderID,
		PaymentID:    d.PaymentID,
		Status:       string(d.Status),
		DonorMessage: d.DonorMsg,
		CreatedAt:    d.CreatedAt,
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
