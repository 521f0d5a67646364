package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
	"github.com/jhoicas/ordenes-api/internal/application/replenishment"
)

var _ replenishment.Mailer = (*SMTPMailer)(nil)

// SMTPMailer adaptador de notificaciones sobre SMTP (gomail). Mejor esfuerzo:
// el caller decide qué hacer con un fallo de transporte.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPMailer construye el adaptador con las credenciales SMTP de la app.
func NewSMTPMailer(host string, port int, username, password, from string) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

// Send envía un correo de texto plano.
func (m *SMTPMailer) Send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("enviar correo: %w", err)
	}
	return nil
}
