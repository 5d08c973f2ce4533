package booking

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/AgredaLem023/backend-parlamento/internal/config"
	"github.com/AgredaLem023/backend-parlamento/internal/content"
)

// Notifier sends the booking-request email; the mailer satisfies it.
type Notifier interface {
	SendBooking(req Request) error
}

// Appender writes the audit row; *sheets.Client satisfies it.
type Appender interface {
	Append(ctx context.Context, sheetID, worksheet string, row []interface{}) error
}

// Runner dispatches best-effort background work.
type Runner interface {
	Go(name string, fn func(ctx context.Context))
}

type Service struct {
	notifier Notifier
	audit    Appender
	tasks    Runner
	cfg      config.SheetsConfig
}

// NewService accepts a nil audit appender (sheets unavailable); the audit
// task then logs the failure and nothing else.
func NewService(notifier Notifier, audit Appender, tasks Runner, cfg config.SheetsConfig) *Service {
	return &Service{notifier: notifier, audit: audit, tasks: tasks, cfg: cfg}
}

// Book issues a synthetic booking id. Nothing is persisted here; real
// storage lives in the external services.
func (s *Service) Book(req Request) string {
	return "booking_" + time.Now().Format("20060102150405")
}

// Dispatch queues the booking email and the sheet audit write. The caller
// has already answered the client; failures here are logged and swallowed.
func (s *Service) Dispatch(req Request) {
	s.tasks.Go("booking-email", func(ctx context.Context) {
		if err := s.notifier.SendBooking(req); err != nil {
			log.Printf("Error sending booking email: %v", err)
		}
	})
	s.tasks.Go("booking-audit", func(ctx context.Context) {
		if err := s.LogToSheet(ctx, req); err != nil {
			log.Printf("Error logging booking to Google Sheets: %v", err)
		}
	})
}

// LogToSheet appends the booking request to the audit worksheet. Skipped
// with a log note when no booking sheet is configured.
func (s *Service) LogToSheet(ctx context.Context, req Request) error {
	if s.cfg.BookingSheetID == "" {
		log.Println("BOOKING_SHEET_ID not configured, skipping booking audit log")
		return nil
	}
	if s.audit == nil {
		return errors.New("sheets client unavailable")
	}

	now := time.Now()
	uniqueID := fmt.Sprintf("EVT_%s_%s", now.Format("20060102150405"), uuid.NewString()[:8])

	row := []interface{}{
		uniqueID,
		now.Format("01/02/2006 15:04:05"),
		req.EventName,
		req.Description,
		formatBookingDate(req.Date),
		req.StartTime,
		req.EndTime,
		strconv.Itoa(req.Attendees),
		req.Organizer,
		req.ContactEmail,
		req.PhoneNumber,
		"Pendiente",
	}

	if err := s.audit.Append(ctx, s.cfg.BookingSheetID, s.cfg.BookingWorksheet, row); err != nil {
		return err
	}
	log.Printf("Successfully logged booking to Google Sheets with ID: %s", uniqueID)
	return nil
}

// formatBookingDate renders the event date as MM/DD/YYYY for the sheet,
// keeping the raw string when it does not parse.
func formatBookingDate(s string) string {
	t, err := content.ParseDate(s)
	if err != nil {
		return s
	}
	return t.Format("01/02/2006")
}
