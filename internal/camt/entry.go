package camt

import (
	"github.com/beevik/etree"

	"github.com/camt-tools/camtcsv/internal/model"
)

const (
	indicatorCredit = "CRDT"
	indicatorDebit  = "DBIT"
)

// extractEntry converts one Ntry element into one or more rows. Entries
// without transaction details produce the entry itself; entries with details
// produce one row per TxDtls, each enriched from that detail, and the bare
// entry row is discarded.
func extractEntry(account string, ntry *etree.Element) ([]model.FlatEntry, error) {
	amt := ntry.SelectElement("Amt")
	if amt == nil {
		return nil, StructureError{Element: "Ntry/Amt"}
	}
	date := childPath(ntry, "BookgDt", "Dt")
	if date == nil {
		return nil, StructureError{Element: "Ntry/BookgDt/Dt"}
	}
	info := ntry.SelectElement("AddtlNtryInf")
	if info == nil {
		return nil, StructureError{Element: "Ntry/AddtlNtryInf"}
	}
	indicator := ntry.SelectElement("CdtDbtInd")
	if indicator == nil {
		return nil, StructureError{Element: "Ntry/CdtDbtInd"}
	}

	template := model.FlatEntry{
		Account:     account,
		Date:        date.Text(),
		Description: info.Text(),
		Debit:       "0",
		Credit:      "0",
		NtryType:    indicator.Text(),
	}
	// Only an exact CRDT token selects the credit side; anything else,
	// malformed tokens included, books as a debit.
	if indicator.Text() == indicatorCredit {
		template.Credit = amt.Text()
	} else {
		template.Debit = amt.Text()
	}

	var rows []model.FlatEntry
	for _, dtls := range ntry.ChildElements() {
		if dtls.Tag != "NtryDtls" {
			continue
		}
		for _, tx := range dtls.ChildElements() {
			if tx.Tag != "TxDtls" {
				continue
			}
			row, err := enrichFromDetail(template, tx)
			if err != nil {
				return nil, err
			}
			rows = append(rows, row)
		}
	}

	if len(rows) == 0 {
		rows = append(rows, template)
	}
	return rows, nil
}
