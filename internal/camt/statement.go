// Package camt extracts flat transaction rows from ISO 20022 CAMT.053
// bank-to-customer statement documents.
package camt

import (
	"strconv"

	"github.com/beevik/etree"

	"github.com/camt-tools/camtcsv/internal/model"
)

// placeholderIBAN is used for entries seen before any Acct element.
const placeholderIBAN = "IBAN"

// ExtractStatement walks the single Stmt under BkToCstmrStmt and returns one
// FlatEntry per transaction, in document order, along with the statement
// metadata gathered along the way.
//
// The statement's children are scanned exactly once. An Ntry is resolved
// against whatever IBAN has been observed so far, so an entry appearing
// before the Acct element gets the placeholder. This mirrors the documents
// banks actually send, where Acct precedes all entries, without assuming it.
func ExtractStatement(root *etree.Element) ([]model.FlatEntry, model.StatementInfo, error) {
	info := model.StatementInfo{IBAN: placeholderIBAN}

	bkToCstmr := root.SelectElement("BkToCstmrStmt")
	if bkToCstmr == nil {
		return nil, info, StructureError{Element: "BkToCstmrStmt"}
	}
	stmt := bkToCstmr.SelectElement("Stmt")
	if stmt == nil {
		return nil, info, StructureError{Element: "Stmt"}
	}

	var rows []model.FlatEntry
	for _, child := range stmt.ChildElements() {
		switch child.Tag {
		case "ElctrncSeqNb":
			n, err := strconv.ParseInt(child.Text(), 10, 64)
			if err != nil {
				return nil, info, FormatError{Element: "ElctrncSeqNb", Value: child.Text()}
			}
			info.EntriesCount = n

		case "Acct":
			iban := childPath(child, "Id", "IBAN")
			if iban == nil {
				return nil, info, StructureError{Element: "Acct/Id/IBAN"}
			}
			info.IBAN = iban.Text()

		case "Ntry":
			entries, err := extractEntry(info.IBAN, child)
			if err != nil {
				return nil, info, err
			}
			rows = append(rows, entries...)
		}
	}
	return rows, info, nil
}

// childPath descends a chain of child tags, returning nil as soon as one
// is missing.
func childPath(el *etree.Element, tags ...string) *etree.Element {
	for _, tag := range tags {
		if el = el.SelectElement(tag); el == nil {
			return nil
		}
	}
	return el
}
