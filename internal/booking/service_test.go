package booking

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/AgredaLem023/backend-parlamento/internal/config"
)

var errSend = errors.New("relay unreachable")

func testBookingRequest() Request {
	return Request{
		EventName:    "Noche de jazz",
		Description:  "Concierto en el patio",
		Date:         "2026-04-02",
		StartTime:    "19:00",
		EndTime:      "22:00",
		Attendees:    40,
		Organizer:    "Diego Vargas",
		ContactEmail: "diego@example.com",
		PhoneNumber:  "+591 711 11111",
	}
}

func TestLogToSheet_RowShape(t *testing.T) {
	audit := &mockAppender{}
	cfg := config.SheetsConfig{BookingSheetID: "booking-sheet", BookingWorksheet: "solicitudes"}
	service := NewService(&mockNotifier{}, audit, syncRunner{}, cfg)

	if err := service.LogToSheet(context.Background(), testBookingRequest()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(audit.rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(audit.rows))
	}

	row := audit.rows[0]
	if len(row) != 12 {
		t.Fatalf("expected 12 columns, got %d", len(row))
	}
	if id, _ := row[0].(string); !strings.HasPrefix(id, "EVT_") {
		t.Errorf("expected EVT_ id prefix, got %v", row[0])
	}
	if row[4] != "04/02/2026" {
		t.Errorf("expected event date formatted MM/DD/YYYY, got %v", row[4])
	}
	if row[7] != "40" {
		t.Errorf("expected attendees as string, got %v", row[7])
	}
	if row[11] != "Pendiente" {
		t.Errorf("expected estado Pendiente, got %v", row[11])
	}
}

func TestLogToSheet_KeepsUnparsableDateVerbatim(t *testing.T) {
	audit := &mockAppender{}
	cfg := config.SheetsConfig{BookingSheetID: "booking-sheet", BookingWorksheet: "solicitudes"}
	service := NewService(&mockNotifier{}, audit, syncRunner{}, cfg)

	req := testBookingRequest()
	req.Date = "algún día"
	if err := service.LogToSheet(context.Background(), req); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if audit.rows[0][4] != "algún día" {
		t.Fatalf("expected raw date preserved, got %v", audit.rows[0][4])
	}
}

func TestLogToSheet_SkipsWithoutBookingSheet(t *testing.T) {
	audit := &mockAppender{}
	service := NewService(&mockNotifier{}, audit, syncRunner{}, config.SheetsConfig{})

	if err := service.LogToSheet(context.Background(), testBookingRequest()); err != nil {
		t.Fatalf("expected skip without error, got %v", err)
	}
	if len(audit.rows) != 0 {
		t.Fatal("expected no append without BOOKING_SHEET_ID")
	}
}

func TestLogToSheet_NilAppender(t *testing.T) {
	cfg := config.SheetsConfig{BookingSheetID: "booking-sheet"}
	service := NewService(&mockNotifier{}, nil, syncRunner{}, cfg)

	if err := service.LogToSheet(context.Background(), testBookingRequest()); err == nil {
		t.Fatal("expected error when the sheets client is unavailable")
	}
}

func TestDispatch_SwallowsFailures(t *testing.T) {
	notifier := &mockNotifier{err: errSend}
	audit := &mockAppender{err: errors.New("append failed")}
	cfg := config.SheetsConfig{BookingSheetID: "booking-sheet", BookingWorksheet: "solicitudes"}
	service := NewService(notifier, audit, syncRunner{}, cfg)

	// Must not panic or surface anything; both failures are only logged.
	service.Dispatch(testBookingRequest())

	if len(notifier.calls) != 1 {
		t.Fatalf("expected the email attempt despite failure, got %d calls", len(notifier.calls))
	}
}

func TestBook_SyntheticIDFormat(t *testing.T) {
	service := NewService(&mockNotifier{}, nil, syncRunner{}, config.SheetsConfig{})

	id := service.Book(testBookingRequest())
	if !strings.HasPrefix(id, "booking_") || len(id) != len("booking_")+14 {
		t.Fatalf("expected booking_<timestamp> id, got %q", id)
	}
}
