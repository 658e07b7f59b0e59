package grid

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// SheetsCredentials holds the service-account key pair allowed to read the
// tracker. Only the key pair varies per deployment; the account identity
// is fixed in the assembled credential.
type SheetsCredentials struct {
	PrivateKeyID string
	PrivateKey   string
}

// serviceAccountJSON assembles the credential blob the Google client
// expects. It exists only in memory for the duration of OpenSheet.
func (c SheetsCredentials) serviceAccountJSON() ([]byte, error) {
	return json.Marshal(map[string]string{
		"type":           "service_account",
		"project_id":     "bw-roll-call-assistant",
		"private_key_id": c.PrivateKeyID,
		"private_key":    strings.ReplaceAll(c.PrivateKey, `\n`, "\n"),
		"client_email":   "roll-call-assistant@bw-roll-call-assistant.iam.gserviceaccount.com",
		"client_id":      "109878451176419024232",
		"auth_uri":       "https://accounts.google.com/o/oauth2/auth",
		"token_uri":      "https://oauth2.googleapis.com/token",
		"auth_provider_x509_cert_url": "https://www.googleapis.com/oauth2/v1/certs",
		"client_x509_cert_url": "https://www.googleapis.com/robot/v1/metadata/x509/" +
			"roll-call-assistant%40bw-roll-call-assistant.iam.gserviceaccount.com",
	})
}

var spreadsheetIDPattern = regexp.MustCompile(`/spreadsheets/d/([a-zA-Z0-9-_]+)`)

// SheetsGrid serves grid reads from the first sheet of a remote Google
// spreadsheet. Every Row, Col, and Cell call blocks on at least one
// values.get request; there is no caching and no retry.
type SheetsGrid struct {
	ctx           context.Context
	svc           *sheets.Service
	spreadsheetID string
	sheetTitle    string
}

// OpenSheet authenticates with the service-account key pair and binds to
// the first sheet of the spreadsheet at url.
func OpenSheet(ctx context.Context, url string, creds SheetsCredentials) (*SheetsGrid, error) {
	m := spreadsheetIDPattern.FindStringSubmatch(url)
	if m == nil {
		return nil, fmt.Errorf("no spreadsheet id in %q", url)
	}
	id := m[1]

	blob, err := creds.serviceAccountJSON()
	if err != nil {
		return nil, err
	}
	conf, err := google.JWTConfigFromJSON(blob, sheets.SpreadsheetsReadonlyScope)
	if err != nil {
		return nil, fmt.Errorf("bad service account key: %w", err)
	}
	svc, err := sheets.NewService(ctx, option.WithTokenSource(conf.TokenSource(ctx)))
	if err != nil {
		return nil, err
	}

	meta, err := svc.Spreadsheets.Get(id).Fields("sheets.properties.title").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("fetch spreadsheet metadata: %w", err)
	}
	if len(meta.Sheets) == 0 {
		return nil, fmt.Errorf("spreadsheet %s has no sheets", id)
	}

	return &SheetsGrid{
		ctx:           ctx,
		svc:           svc,
		spreadsheetID: id,
		sheetTitle:    meta.Sheets[0].Properties.Title,
	}, nil
}

func (g *SheetsGrid) Row(i int, includeTrailingEmpty bool) ([]Cell, error) {
	rng := fmt.Sprintf("'%s'!%d:%d", g.sheetTitle, i, i)
	vals, raws, err := g.fetchLine(rng)
	if err != nil {
		return nil, err
	}
	return zipLine(i, vals, raws, 0, includeTrailingEmpty, false), nil
}

// Col fetches the formatted rendering, under which date cells already come
// back as the display strings the parsers expect; render is accepted for
// contract completeness.
func (g *SheetsGrid) Col(i int, includeTrailingEmpty bool, render DateRender) ([]Cell, error) {
	letter, err := columnLetter(i)
	if err != nil {
		return nil, err
	}
	rng := fmt.Sprintf("'%s'!%s:%s", g.sheetTitle, letter, letter)
	vals, raws, err := g.fetchLine(rng)
	if err != nil {
		return nil, err
	}
	return zipLine(i, vals, raws, 0, includeTrailingEmpty, true), nil
}

func (g *SheetsGrid) Cell(r, c int) (Cell, error) {
	letter, err := columnLetter(c)
	if err != nil {
		return Cell{}, err
	}
	rng := fmt.Sprintf("'%s'!%s%d", g.sheetTitle, letter, r)
	vals, raws, err := g.fetchLine(rng)
	if err != nil {
		return Cell{}, err
	}
	cell := Cell{Row: r, Col: c}
	if len(vals) > 0 {
		cell.Value = vals[0]
	}
	if len(raws) > 0 {
		cell.Raw = raws[0]
	}
	return cell, nil
}

// fetchLine reads rng twice, once formatted and once unformatted, and
// flattens the single row or column of each response.
func (g *SheetsGrid) fetchLine(rng string) (vals, raws []string, err error) {
	vals, err = g.getValues(rng, "FORMATTED_VALUE", "FORMATTED_STRING")
	if err != nil {
		return nil, nil, err
	}
	raws, err = g.getValues(rng, "UNFORMATTED_VALUE", "SERIAL_NUMBER")
	if err != nil {
		return nil, nil, err
	}
	return vals, raws, nil
}

func (g *SheetsGrid) getValues(rng, valueRender, dateRender string) ([]string, error) {
	resp, err := g.svc.Spreadsheets.Values.Get(g.spreadsheetID, rng).
		ValueRenderOption(valueRender).
		DateTimeRenderOption(dateRender).
		MajorDimension(majorDimension(rng)).
		Context(g.ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", rng, err)
	}
	var out []string
	for _, line := range resp.Values {
		for _, v := range line {
			out = append(out, cellString(v))
		}
	}
	return out, nil
}

// majorDimension picks ROWS for row ranges ("'s'!2:2") and COLUMNS for
// column ranges ("'s'!B:B") so the response flattens to one line either
// way.
func majorDimension(rng string) string {
	tail := rng[strings.LastIndex(rng, "!")+1:]
	if tail != "" && tail[0] >= '0' && tail[0] <= '9' {
		return "ROWS"
	}
	return "COLUMNS"
}

func cellString(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		if t {
			return "TRUE"
		}
		return "FALSE"
	default:
		return fmt.Sprint(t)
	}
}

// columnLetter converts a 1-based column index to A1 letters.
func columnLetter(i int) (string, error) {
	if i < 1 {
		return "", fmt.Errorf("column index %d out of range", i)
	}
	var b []byte
	for i > 0 {
		i--
		b = append([]byte{byte('A' + i%26)}, b...)
		i /= 26
	}
	return string(b), nil
}
