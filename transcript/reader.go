// Package transcript reads chat records that an export parser already normalized.
// Two layouts are accepted: a JSON array of records, or one JSON record per line.
package transcript

import (
	"bytes"
	"chat-metrics/domain"
	"chat-metrics/errors"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gabriel-vasile/mimetype"
)

// Line is the wire shape of one normalized record.
type Line struct {
	Date    string `json:"date"`
	User    string `json:"user"`
	Message string `json:"message"`
}

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// Reader decodes normalized records. Dates without offset are read in loc.
type Reader struct {
	loc *time.Location
}

func NewReader(loc *time.Location) Reader {
	if loc == nil {
		loc = time.Local
	}
	return Reader{loc: loc}
}

func (r Reader) ReadFile(path string) ([]domain.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return r.Read(f)
}

// Read sniffs the payload and decodes it. An empty payload is an empty transcript.
// A record with an empty date keeps a zero timestamp so the store rejects it.
func (r Reader) Read(in io.Reader) ([]domain.Record, error) {
	data, err := io.ReadAll(in)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return []domain.Record{}, nil
	}

	mtype := mimetype.Detect(data)
	if !mtype.Is("application/json") && !mtype.Is("application/x-ndjson") && !mtype.Is("text/plain") {
		return nil, fmt.Errorf("%w: %s", errors.ErrUnsupportedFormat, mtype.String())
	}

	var lines []Line
	if bytes.HasPrefix(bytes.TrimSpace(data), []byte("[")) {
		if err = json.Unmarshal(data, &lines); err != nil {
			return nil, fmt.Errorf("%w: %v", errors.ErrUnsupportedFormat, err)
		}
	} else if lines, err = decodeStream(data); err != nil {
		return nil, err
	}

	records := make([]domain.Record, 0, len(lines))
	for i, l := range lines {
		at, err := r.parseDate(l.Date)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		records = append(records, domain.Record{Sender: l.User, Content: l.Message, At: at})
	}
	return records, nil
}

func decodeStream(data []byte) ([]Line, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	var lines []Line
	for {
		var l Line
		err := decoder.Decode(&l)
		if err == io.EOF {
			return lines, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errors.ErrUnsupportedFormat, err)
		}
		lines = append(lines, l)
	}
}

func (r Reader) parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	for _, layout := range dateLayouts {
		if at, err := time.ParseInLocation(layout, value, r.loc); err == nil {
			return at, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", value)
}
