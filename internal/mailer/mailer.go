package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/AgredaLem023/backend-parlamento/internal/booking"
	"github.com/AgredaLem023/backend-parlamento/internal/config"
	"github.com/AgredaLem023/backend-parlamento/internal/contact"
	"github.com/AgredaLem023/backend-parlamento/internal/content"
)

// Sender abstracts gomail's DialAndSend for tests.
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// Mailer renders the two fixed plaintext notices and hands them to the SMTP
// relay. No escaping happens here; the DTOs were validated at the boundary.
type Mailer struct {
	sender Sender
	from   string
	to     string
}

func New(cfg config.MailConfig) *Mailer {
	d := gomail.NewDialer(cfg.Server, cfg.Port, cfg.Username, cfg.Password)
	d.SSL = cfg.SSL
	return &Mailer{sender: d, from: cfg.From, to: cfg.To}
}

func (m *Mailer) SendContact(form contact.Form) error {
	body := fmt.Sprintf(
		"Nombre: %s\nEmail: %s\nTeléfono: %s\nAsunto: %s\nMensaje: %s\n",
		form.Name, form.Email, form.Phone, form.Subject, form.Message,
	)
	return m.send("Nuevo mensaje de contacto: "+form.Subject, body)
}

func (m *Mailer) SendBooking(req booking.Request) error {
	body := fmt.Sprintf(
		"Nueva solicitud de reserva de evento:\n\n"+
			"Nombre del evento: %s\n"+
			"Descripción: %s\n"+
			"Fecha del evento: %s\n"+
			"Hora de inicio: %s\n"+
			"Hora de finalización: %s\n"+
			"Número de asistentes: %d\n"+
			"Organizador: %s\n"+
			"Correo de contacto: %s\n"+
			"Número de teléfono: %s\n",
		req.EventName, req.Description, formatDate(req.Date),
		req.StartTime, req.EndTime, req.Attendees,
		req.Organizer, req.ContactEmail, req.PhoneNumber,
	)
	return m.send("Nueva reserva de evento desde la web", body)
}

func (m *Mailer) send(subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", m.to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := m.sender.DialAndSend(msg); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}

// formatDate prefers MM/DD/YYYY for readability, keeping the raw string
// when it does not parse.
func formatDate(s string) string {
	t, err := content.ParseDate(s)
	if err != nil {
		return s
	}
	return t.Format("01/02/2006")
}
