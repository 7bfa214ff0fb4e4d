package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/TenSketch/Aaradhaya-UI-React/internal/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type UserStore interface {
	CreateUser(ctx context.Context, u *domain.User) error
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

type AuthUsecase struct {
	users     UserStore
	jwtSecret []byte
	tokenTTL  time.Duration
}

func NewAuthUsecase(users UserStore, jwtSecret string, tokenTTL time.Duration) *AuthUsecase {
	return &AuthUsecase{
		users:     users,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
	}
}

func (a *AuthUsecase) Signup(ctx context.Context, name, email, password string) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &domain.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		CreatedAt:    time.Now(),
	}

	if err := a.users.CreateUser(ctx, u); err != nil {
		return nil, err
	}

	return u, nil
}

// SignIn checks the password and issues a signed token. Lookup and compare
// failures both map to ErrInvalidCredentials so the response does not reveal
// which part failed.
func (a *AuthUsecase) SignIn(ctx context.Context, email, password string) (string, *domain.User, error) {
	u, err := a.users.GetUserByEmail(ctx, email)
	if err != nil {
		if err == domain.ErrNotFound {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := a.issueToken(u)
	if err != nil {
		return "", nil, err
	}

	return token, u, nil
}

// AdminLogin is SignIn gated on the admin role.
func (a *AuthUsecase) AdminLogin(ctx context.Context, email, password string) (string, error) {
	token, u, err := a.SignIn(ctx, email, password)
	if err != nil {
		return "", err
	}
	if u.Role != domain.RoleAdmin {
		return "", domain.ErrInvalidCredentials
	}
	return token, nil
}

func (a *AuthUsecase) issueToken(u *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   u.ID,
		"email": u.Email,
		"role":  u.Role,
		"exp":   time.Now().Add(a.tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(a.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// TokenClaims is the subset of claims the HTTP layer cares about.
type TokenClaims struct {
	UserID string
	Email  string
	Role   string
}

func (a *AuthUsecase) VerifyToken(tokenStr string) (*TokenClaims, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return a.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, domain.ErrInvalidCredentials
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domain.ErrInvalidCredentials
	}

	out := &TokenClaims{}
	out.UserID, _ = claims["sub"].(string)
	out.Email, _ = claims["email"].(string)
	out.Role, _ = claims["role"].(string)
	return out, nil
}
