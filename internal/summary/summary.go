// Package summary totals a run's extracted rows for console reporting.
package summary

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/camt-tools/camtcsv/internal/model"
)

// Summary aggregates one conversion run.
type Summary struct {
	Rows        int
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
}

// Compute sums the debit and credit sides over all rows. Each row
// contributes its single non-"0" side; a row amount that does not parse as
// a decimal is an error, since it means the bank document carried a
// non-numeric amount.
func Compute(rows []model.FlatEntry) (Summary, error) {
	s := Summary{
		Rows:        len(rows),
		TotalDebit:  decimal.Zero,
		TotalCredit: decimal.Zero,
	}
	for i, row := range rows {
		if row.Debit != "0" {
			d, err := decimal.NewFromString(row.Debit)
			if err != nil {
				return Summary{}, fmt.Errorf("row %d: parsing debit %q: %w", i+1, row.Debit, err)
			}
			s.TotalDebit = s.TotalDebit.Add(d)
		}
		if row.Credit != "0" {
			c, err := decimal.NewFromString(row.Credit)
			if err != nil {
				return Summary{}, fmt.Errorf("row %d: parsing credit %q: %w", i+1, row.Credit, err)
			}
			s.TotalCredit = s.TotalCredit.Add(c)
		}
	}
	return s, nil
}
