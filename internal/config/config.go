package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	AppPort   string
	SQLiteDSN string

	RazorpayKeyID     string
	RazorpayKeySecret string
	Currency          string

	SMTPHost       string
	SMTPPort       int
	SMTPUser       string
	SMTPPass       string
	DefaultReplyTo string

	JWTSecret string
	TokenTTL  time.Duration

	// Applied per external call: provider order creation, store writes,
	// and the receipt send attempt.
	CallTimeout time.Duration
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getSeconds(key string, def int64) time.Duration {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return time.Duration(n) * time.Second
		}
	}
	return time.Duration(def) * time.Second
}

func Load() Config {
	return Config{
		AppPort:   getenv("APP_PORT", "5000"),
		SQLiteDSN: getenv("SQLITE_DSN", "./donations.db"),

		RazorpayKeyID:     getenv("RAZORPAY_KEY_ID", ""),
		RazorpayKeySecret: getenv("RAZORPAY_KEY_SECRET", ""),
		Currency:          getenv("DONATION_CURRENCY", "INR"),

		SMTPHost:       getenv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:       getInt("SMTP_PORT", 587),
		SMTPUser:       getenv("SMTP_USER", ""),
		SMTPPass:       getenv("SMTP_PASS", ""),
		DefaultReplyTo: getenv("DEFAULT_REPLY_TO", "trustaaradhya@gmail.com"),

		JWTSecret: getenv("JWT_SECRET", "supersecret-dev"),
		TokenTTL:  getSeconds("TOKEN_TTL_SECONDS", 24*3600),

		CallTimeout: getSeconds("CALL_TIMEOUT_SECONDS", 10),
	}
}
