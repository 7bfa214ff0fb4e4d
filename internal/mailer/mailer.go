// Package mailer renders and delivers donation receipts over SMTP.
//
// Delivery is best-effort: the verification flow calls SendReceipt only
// after the donation is durably recorded, logs any delivery error, and
// never lets it affect the response to the caller.
package mailer

import (
	"bytes"
	"html/template"
	"time"

	"github.com/TenSketch/Aaradhaya-UI-React/internal/domain"

	gomail "gopkg.in/gomail.v2"
)

const receiptSubject = "Thank you for your donation!"

var receiptTmpl = template.Must(template.New("receipt").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 520px; margin: 0 auto;">
  <h1>Aaradhaya Trust</h1>
  <h2>Thank you for your donation!</h2>
  <p>Dear <b>{{.DonorName}}</b>,<br>We are deeply grateful for your generous support. Here are your donation details:</p>
  <table>
    <tr><td>Amount:</td><td><b>&#8377;{{.Amount}}</b></td></tr>
    <tr><td>Razorpay Payment ID:</td><td>{{.PaymentID}}</td></tr>
    <tr><td>Order ID:</td><td>{{.OrderID}}</td></tr>
    <tr><td>Status:</td><td>{{.Status}}</td></tr>
    <tr><td>Email:</td><td>{{.Email}}</td></tr>
    <tr><td>Mobile:</td><td>{{.Mobile}}</td></tr>
    <tr><td>Message:</td><td>{{.Message}}</td></tr>
  </table>
  <p>We appreciate your support! Your contribution will help us make a positive impact in the lives of many.</p>
  <p>Questions? Call <a href="tel:+919791014236">97910 14236</a> or write to <a href="mailto:trustaaradhya@gmail.com">trustaaradhya@gmail.com</a>.</p>
  <p>&copy; {{.Year}} Aaradhaya Trust. All rights reserved.</p>
</div>
`))

type receiptData struct {
	DonorName string
	Amount    string
	PaymentID string
	OrderID   string
	Status    string
	Email     string
	Mobile    string
	Message   string
	Year      int
}

// SMTPMailer sends receipts through a shared gomail dialer. Safe for
// concurrent use; gomail opens a fresh connection per send.
type SMTPMailer struct {
	dialer    *gomail.Dialer
	from      string
	defaultTo string
}

func NewSMTPMailer(host string, port int, user, pass, defaultTo string) *SMTPMailer {
	return &SMTPMailer{
		dialer:    gomail.NewDialer(host, port, user, pass),
		from:      user,
		defaultTo: defaultTo,
	}
}

func (m *SMTPMailer) recipient(d *domain.Donation) string {
	if d.DonorEmail != "" {
		return d.DonorEmail
	}
	return m.defaultTo
}

func renderReceipt(d *domain.Donation) (string, error) {
	name := d.DonorName
	if name == "" {
		name = "Donor"
	}
	message := d.DonorMsg
	if message == "" {
		message = "-"
	}

	var body bytes.Buffer
	err := receiptTmpl.Execute(&body, receiptData{
		DonorName: name,
		Amount:    d.AmountDisplay(),
		PaymentID: d.PaymentID,
		OrderID:   d.OrderID,
		Status:    string(d.Status),
		Email:     d.DonorEmail,
		Mobile:    d.DonorMobile,
		Message:   message,
		Year:      time.Now().Year(),
	})
	if err != nil {
		return "", err
	}
	return body.String(), nil
}

// SendReceipt renders the receipt for d and delivers it to the donor's
// address, or to the configured default recipient when the donor gave none.
func (m *SMTPMailer) SendReceipt(d *domain.Donation) error {
	body, err := renderReceipt(d)
	if err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", m.recipient(d))
	msg.SetHeader("Subject", receiptSubject)
	msg.SetBody("text/html", body)

	return m.dialer.DialAndSend(msg)
}
