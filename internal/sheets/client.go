package sheets

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"
)

const (
	ScopeReadOnly  = "https://www.googleapis.com/auth/spreadsheets.readonly"
	ScopeReadWrite = "https://www.googleapis.com/auth/spreadsheets"
)

// Row is one worksheet row keyed by the header cells of the first row.
type Row map[string]string

// Client wraps the Sheets API for worksheet reads and audit-row appends.
type Client struct {
	svc *gsheets.Service
}

func NewClient(ctx context.Context, sa *ServiceAccount, scope string) (*Client, error) {
	blob, err := sa.JSON()
	if err != nil {
		return nil, fmt.Errorf("encode service account: %w", err)
	}

	jwtCfg, err := google.JWTConfigFromJSON(blob, scope)
	if err != nil {
		return nil, fmt.Errorf("build JWT config: %w", err)
	}

	svc, err := gsheets.NewService(ctx, option.WithHTTPClient(jwtCfg.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}

	return &Client{svc: svc}, nil
}

// Rows reads a whole worksheet and returns its data rows as header-keyed
// records. Cells beyond the header width are ignored; short rows are padded
// with empty strings.
func (c *Client) Rows(ctx context.Context, sheetID, worksheet string) ([]Row, error) {
	resp, err := c.svc.Spreadsheets.Values.Get(sheetID, worksheet).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read worksheet %q: %w", worksheet, err)
	}

	if len(resp.Values) < 2 {
		return nil, nil
	}

	headers := make([]string, len(resp.Values[0]))
	for i, h := range resp.Values[0] {
		headers[i] = strings.TrimSpace(fmt.Sprint(h))
	}

	rows := make([]Row, 0, len(resp.Values)-1)
	for _, cells := range resp.Values[1:] {
		row := make(Row, len(headers))
		for i, h := range headers {
			if h == "" {
				continue
			}
			if i < len(cells) {
				row[h] = strings.TrimSpace(fmt.Sprint(cells[i]))
			} else {
				row[h] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Append adds a single row at the end of the worksheet.
func (c *Client) Append(ctx context.Context, sheetID, worksheet string, row []interface{}) error {
	vr := &gsheets.ValueRange{Values: [][]interface{}{row}}

	_, err := c.svc.Spreadsheets.Values.Append(sheetID, worksheet, vr).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("append to worksheet %q: %w", worksheet, err)
	}
	return nil
}
