package content

import (
	"context"
	"errors"
	"log"

	"github.com/AgredaLem023/backend-parlamento/internal/config"
	"github.com/AgredaLem023/backend-parlamento/internal/sheets"
)

// RowSource reads worksheet rows; *sheets.Client satisfies it.
type RowSource interface {
	Rows(ctx context.Context, sheetID, worksheet string) ([]sheets.Row, error)
}

var errSourceUnavailable = errors.New("sheets source not configured")

// Service serves menu and event content from the live spreadsheet, degrading
// to the hardcoded fallback payloads on any failure. Callers never see an
// error, only possibly-static data.
type Service struct {
	source RowSource
	cfg    config.SheetsConfig
}

// NewService accepts a nil source (credentials unavailable at startup), in
// which case every read serves fallback data.
func NewService(source RowSource, cfg config.SheetsConfig) *Service {
	return &Service{source: source, cfg: cfg}
}

func (s *Service) Menu(ctx context.Context) Menu {
	rows, err := s.rows(ctx, s.cfg.MenuWorksheet)
	if err != nil {
		log.Printf("Error fetching menu from Google Sheets: %v, falling back to hardcoded menu", err)
		return FallbackMenu()
	}
	log.Printf("Successfully fetched %d menu items from Google Sheets", len(rows))
	return TransformMenu(rows)
}

func (s *Service) Events(ctx context.Context) []Event {
	rows, err := s.rows(ctx, s.cfg.EventsWorksheet)
	if err != nil {
		log.Printf("Error fetching events from Google Sheets: %v, falling back to hardcoded events", err)
		return FallbackEvents()
	}
	log.Printf("Successfully fetched %d events from Google Sheets", len(rows))
	return TransformEvents(rows)
}

// Event scans the current events payload for a matching id.
func (s *Service) Event(ctx context.Context, id string) (Event, bool) {
	for _, e := range s.Events(ctx) {
		if e.ID == id {
			return e, true
		}
	}
	return Event{}, false
}

func (s *Service) rows(ctx context.Context, worksheet string) ([]sheets.Row, error) {
	if s.source == nil {
		return nil, errSourceUnavailable
	}
	return s.source.Rows(ctx, s.cfg.SheetID, worksheet)
}
