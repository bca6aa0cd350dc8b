package model

// FlatEntry represents one flattened bank statement transaction row.
// Debit and Credit carry the amount text exactly as it appears in the
// source document; exactly one of them is non-"0" per row.
type FlatEntry struct {
	Account     string // IBAN of the statement the row came from
	Date        string // booking date, verbatim source text
	Description string
	Debit       string
	Credit      string
	NtryType    string // entry-level CdtDbtInd token (CRDT or DBIT)
}

// StatementInfo holds statement-level metadata gathered while scanning.
// It seeds the Account field of every row but is never emitted itself.
type StatementInfo struct {
	IBAN         string
	EntriesCount int64 // declared electronic sequence number
}
