package main

import (
	"log"
	"net/http"

	"github.com/TenSketch/Aaradhaya-UI-React/internal/config"
	httpd "github.com/TenSketch/Aaradhaya-UI-React/internal/delivery/http"
	"github.com/TenSketch/Aaradhaya-UI-React/internal/mailer"
	"github.com/TenSketch/Aaradhaya-UI-React/internal/payment"
	"github.com/TenSketch/Aaradhaya-UI-React/internal/repository"
	"github.com/TenSketch/Aaradhaya-UI-React/internal/usecase"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	repo, err := repository.NewSQLiteRepo(cfg.SQLiteDSN)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer repo.Close()

	orders := payment.NewRazorpayClient(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)
	mail := mailer.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.DefaultReplyTo)

	donations := usecase.NewDonationUsecase(repo, orders, mail, cfg.RazorpayKeySecret, cfg.Currency, cfg.CallTimeout)
	auth := usecase.NewAuthUsecase(repo, cfg.JWTSecret, cfg.TokenTTL)

	h := httpd.NewHandler(donations, auth, repo)

	addr := ":" + cfg.AppPort
	log.Printf("Server running on port %s", cfg.AppPort)
	log.Fatal(http.ListenAndServe(addr, h.Routes()))
}
