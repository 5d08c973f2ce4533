package content

import (
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/AgredaLem023/backend-parlamento/internal/sheets"
)

// TransformMenu reshapes flat worksheet rows into the nested three-category
// menu. Rows without a category key or item name are skipped; rows with an
// unknown category are dropped with a warning.
func TransformMenu(rows []sheets.Row) Menu {
	menu := NewMenu()

	for _, row := range rows {
		key := strings.ToLower(strings.TrimSpace(row["category_key"]))
		name := strings.TrimSpace(row["item_name"])
		if key == "" || name == "" {
			continue
		}

		item := MenuItem{
			ID:          row["item_id"],
			Name:        name,
			Description: row["item_description"],
			Price:       row["item_price"],
			Image:       rewriteImage(row["item_image"]),
			Tags:        SplitTags(row["item_tags"]),
			Historical:  row["item_historical"],
		}

		cat := menu.category(key)
		if cat == nil {
			log.Printf("Warning: Unknown category %q for item %q", key, name)
			continue
		}
		cat.Items = append(cat.Items, item)
	}

	return menu
}

// TransformEvents normalizes worksheet rows into events. Rows are never
// dropped: a date that fails to parse stays verbatim and a non-numeric
// capacity becomes 0.
func TransformEvents(rows []sheets.Row) []Event {
	events := make([]Event, 0, len(rows))
	for _, row := range rows {
		events = append(events, Event{
			ID:          row["id"],
			Title:       row["title"],
			Date:        NormalizeDate(row["date"]),
			Time:        row["time"],
			Location:    row["location"],
			Description: row["description"],
			Image:       rewriteImage(row["image"]),
			Category:    row["category"],
			Capacity:    ParseCapacity(row["capacity"]),
		})
	}
	return events
}

// SplitTags turns a comma-separated tag cell into a slice, trimming each
// token and dropping empties. The result is never nil.
func SplitTags(s string) []string {
	tags := []string{}
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006",
	"2006/01/02",
	"January 2, 2006",
	"Jan 2, 2006",
}

// ParseDate is a best-effort parse over the date shapes the spreadsheet has
// been seen to contain.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	var err error
	for _, layout := range dateLayouts {
		var t time.Time
		if t, err = time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

// NormalizeDate renders a date cell as an ISO-8601 timestamp. On parse
// failure the raw string is preserved verbatim.
func NormalizeDate(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	t, err := ParseDate(s)
	if err != nil {
		return s
	}
	return t.Format("2006-01-02T15:04:05")
}

// ParseCapacity coerces a capacity cell to an integer, 0 on failure.
func ParseCapacity(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

// ConvertDriveLink rewrites a Google Drive share link to the direct-view
// URL. Inputs that match neither known share shape pass through unchanged,
// which also makes the rewrite idempotent.
func ConvertDriveLink(driveURL string) string {
	var fileID string
	switch {
	case strings.Contains(driveURL, "/file/d/"):
		after := strings.SplitN(driveURL, "/file/d/", 2)[1]
		fileID = strings.SplitN(after, "/", 2)[0]
	case strings.Contains(driveURL, "id="):
		after := strings.SplitN(driveURL, "id=", 2)[1]
		fileID = strings.SplitN(after, "&", 2)[0]
	default:
		return driveURL
	}

	if fileID == "" {
		return driveURL
	}
	return "https://drive.google.com/uc?export=view&id=" + fileID
}

func rewriteImage(imageURL string) string {
	if strings.Contains(imageURL, "drive.google.com") {
		return ConvertDriveLink(imageURL)
	}
	return imageURL
}
