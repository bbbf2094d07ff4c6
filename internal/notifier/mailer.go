// Package notifier - отправка писем гостям: OTP-коды и подтверждения бронирования
package notifier

import (
	"crypto/tls"
	"fmt"

	"github.com/wneessen/go-mail"

	"github.com/m04kA/GH-BookingService/internal/config"
	"github.com/m04kA/GH-BookingService/internal/domain"
)

// Mailer SMTP-клиент для писем гостям
type Mailer struct {
	host      string
	port      int
	username  string
	password  string
	fromName  string
	fromEmail string
}

// NewMailer создает новый экземпляр почтового клиента
func NewMailer(cfg config.SMTPConfig) *Mailer {
	return &Mailer{
		host:      cfg.Host,
		port:      cfg.Port,
		username:  cfg.Username,
		password:  cfg.Password,
		fromName:  cfg.FromName,
		fromEmail: cfg.FromEmail,
	}
}

func (m *Mailer) send(to, subject, htmlBody string) error {
	msg := mail.NewMsg()

	if err := msg.From(fmt.Sprintf("%s <%s>", m.fromName, m.fromEmail)); err != nil {
		return fmt.Errorf("notifier: failed to set sender: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("notifier: failed to set recipient: %w", err)
	}

	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)

	client, err := mail.NewClient(m.host,
		mail.WithPort(m.port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.username),
		mail.WithPassword(m.password),
		mail.WithTLSPolicy(mail.TLSMandatory),
		mail.WithTLSConfig(&tls.Config{ServerName: m.host}),
	)
	if err != nil {
		return fmt.Errorf("notifier: failed to create SMTP client (host=%s port=%d): %w", m.host, m.port, err)
	}

	if err := client.DialAndSend(msg); err != nil {
		return fmt.Errorf("notifier: failed to send mail (host=%s port=%d): %w", m.host, m.port, err)
	}

	return nil
}

// SendOTP отправляет одноразовый код подтверждения адреса
func (m *Mailer) SendOTP(to, code string) error {
	subject := fmt.Sprintf("%s - Email Verification Code", m.fromName)
	return m.send(to, subject, otpHTML(m.fromName, code))
}

// SendBookingConfirmation отправляет подтверждение оплаченного бронирования
func (m *Mailer) SendBookingConfirmation(b *domain.Booking) error {
	subject := fmt.Sprintf("Booking Confirmed - Order %s", b.OrderID)
	return m.send(b.CustomerEmail, subject, confirmationHTML(m.fromName, b))
}

func otpHTML(hotelName, code string) string {
	return fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; max-width: 480px; margin: 0 auto;">
  <h2>%s</h2>
  <p>Your one-time verification code is:</p>
  <p style="font-size: 28px; font-weight: bold; letter-spacing: 6px;">%s</p>
  <p>The code is valid for 10 minutes. If you did not request it, ignore this email.</p>
</div>`, hotelName, code)
}

func confirmationHTML(hotelName string, b *domain.Booking) string {
	flat := "to be assigned"
	if b.FlatNumber != nil {
		flat = *b.FlatNumber
	}

	return fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; max-width: 560px; margin: 0 auto;">
  <h2>%s - Booking Confirmed</h2>
  <p>Dear %s, your booking has been confirmed. We look forward to hosting you!</p>
  <table cellpadding="6" style="border-collapse: collapse;">
    <tr><td><b>Order ID</b></td><td>%s</td></tr>
    <tr><td><b>Room</b></td><td>%s</td></tr>
    <tr><td><b>Flat</b></td><td>%s</td></tr>
    <tr><td><b>Check-in</b></td><td>%s</td></tr>
    <tr><td><b>Check-out</b></td><td>%s</td></tr>
    <tr><td><b>Guests</b></td><td>%d</td></tr>
    <tr><td><b>Total paid</b></td><td>%.2f %s</td></tr>
  </table>
</div>`,
		hotelName,
		b.CustomerName,
		b.OrderID,
		b.RoomTitle,
		flat,
		b.CheckIn.Format(domain.DateFormat),
		b.CheckOut.Format(domain.DateFormat),
		b.Guests,
		b.TotalAmount,
		domain.Currency,
	)
}
