package signals

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

var (
	// ErrEmptyTable indicates the source had a header but no data rows.
	ErrEmptyTable = errors.New("table has no data rows")
	// ErrUnreadable indicates the source could not be parsed at all.
	ErrUnreadable = errors.New("unreadable table")
)

// Load parses a crawl export CSV into a Table. The first record is the
// header; every later record is one crawled URL. Parse failures are fatal
// for this table only, so a batch caller can isolate them per file.
func Load(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // exports sometimes have ragged trailing columns

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("%w: empty input", ErrUnreadable)
		}
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	if len(records) == 0 {
		return nil, ErrEmptyTable
	}

	return NewTable(header, records), nil
}
