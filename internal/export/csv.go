// Package export writes flattened statement rows as delimited CSV.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/camt-tools/camtcsv/internal/model"
)

// Header is the CSV header for the output file.
const Header = "account;date;description;debit;credit;ntry_type"

const (
	numFields   = 6
	colAccount  = 0
	colDate     = 1
	colDesc     = 2
	colDebit    = 3
	colCredit   = 4
	colNtryType = 5
)

// Options controls output formatting.
type Options struct {
	Delimiter rune
	Header    bool
}

// DefaultOptions returns semicolon-delimited output with a header row.
func DefaultOptions() Options {
	return Options{Delimiter: ';', Header: true}
}

// Write writes all rows to w. Amount strings are written exactly as they
// were extracted.
func Write(w io.Writer, rows []model.FlatEntry, opts Options) error {
	cw := csv.NewWriter(w)
	cw.Comma = opts.Delimiter
	defer cw.Flush()

	if opts.Header {
		if err := cw.Write(strings.Split(Header, ";")); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for i, row := range rows {
		if err := cw.Write(MarshalEntry(row)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}
	return cw.Error()
}

// MarshalEntry converts a FlatEntry to a CSV row ([]string).
func MarshalEntry(e model.FlatEntry) []string {
	row := make([]string, numFields)
	row[colAccount] = e.Account
	row[colDate] = e.Date
	row[colDesc] = e.Description
	row[colDebit] = e.Debit
	row[colCredit] = e.Credit
	row[colNtryType] = e.NtryType
	return row
}
