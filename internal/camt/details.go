package camt

import (
	"github.com/beevik/etree"

	"github.com/camt-tools/camtcsv/internal/model"
)

// Sentinels for counterparty identity that could not be resolved.
const (
	unknownPartner = "unknown_partner"
	unknownIBAN    = "unknown_iban"
	// noIBAN replaces the account reference when the party element is
	// present but carries no account at all.
	noIBAN = "no IBAN"
)

// enrichFromDetail produces one row from a TxDtls element, starting from the
// entry-level template. The detail's amount and credit/debit indicator
// replace the template's amount placement; a related-parties block replaces
// the description with "<partner> - <iban>"; unstructured remittance text is
// appended to whatever description stands at that point. NtryType is left as
// the parent entry recorded it.
func enrichFromDetail(template model.FlatEntry, txDtls *etree.Element) (model.FlatEntry, error) {
	row := template
	var amount, operation string
	var haveAmount, haveOperation bool

	for _, child := range txDtls.ChildElements() {
		switch child.Tag {
		case "Amt":
			amount = child.Text()
			haveAmount = true

		case "CdtDbtInd":
			operation = child.Text()
			haveOperation = true

		case "RltdPties":
			desc, err := partnerDescription(child)
			if err != nil {
				return model.FlatEntry{}, err
			}
			row.Description = desc

		case "RmtInf":
			ustrd := child.SelectElement("Ustrd")
			if ustrd == nil {
				return model.FlatEntry{}, StructureError{Element: "RmtInf/Ustrd"}
			}
			row.Description += ustrd.Text()
		}
	}

	if !haveAmount {
		return model.FlatEntry{}, MissingFieldError{Field: "amount"}
	}
	if !haveOperation {
		return model.FlatEntry{}, MissingFieldError{Field: "operation type"}
	}

	if operation == indicatorDebit {
		row.Debit = amount
		row.Credit = "0"
	} else {
		row.Credit = amount
		row.Debit = "0"
	}
	return row, nil
}

// partnerDescription resolves the counterparty from a RltdPties element.
// The creditor is considered first; a debtor, if present, overwrites it, so
// when both appear the debtor's identity wins.
func partnerDescription(rltdPties *etree.Element) (string, error) {
	name := unknownPartner
	iban := unknownIBAN

	if cdtr := rltdPties.SelectElement("Cdtr"); cdtr != nil {
		nm := cdtr.SelectElement("Nm")
		if nm == nil {
			return "", StructureError{Element: "Cdtr/Nm"}
		}
		name = nm.Text()
		if acctIBAN := childPath(rltdPties, "CdtrAcct", "Id", "IBAN"); acctIBAN != nil {
			iban = acctIBAN.Text()
		} else {
			iban = noIBAN
		}
	}

	if dbtr := rltdPties.SelectElement("Dbtr"); dbtr != nil {
		nm := dbtr.SelectElement("Nm")
		if nm == nil {
			return "", StructureError{Element: "Dbtr/Nm"}
		}
		name = nm.Text()
		if acctIBAN := childPath(rltdPties, "DbtrAcct", "Id", "IBAN"); acctIBAN != nil {
			iban = acctIBAN.Text()
		} else {
			iban = noIBAN
		}
	}

	return name + " - " + iban, nil
}
