package camt

import (
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseDoc(t *testing.T, xml string) *etree.Element {
	t.Helper()
	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromString(xml))
	root := doc.Root()
	require.NotNil(t, root)
	return root
}

func TestExtractStatement_SingleCreditEntry(t *testing.T) {
	root := parseDoc(t, `
<Document xmlns="urn:iso:std:iso:20022:tech:xsd:camt.053.001.02">
  <BkToCstmrStmt>
    <Stmt>
      <ElctrncSeqNb>17</ElctrncSeqNb>
      <Acct><Id><IBAN>FR7630006000011234567890189</IBAN></Id></Acct>
      <Ntry>
        <Amt Ccy="EUR">100.00</Amt>
        <CdtDbtInd>CRDT</CdtDbtInd>
        <BookgDt><Dt>2024-02-28</Dt></BookgDt>
        <AddtlNtryInf>VIREMENT RECU</AddtlNtryInf>
      </Ntry>
    </Stmt>
  </BkToCstmrStmt>
</Document>`)

	rows, info, err := ExtractStatement(root)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, "FR7630006000011234567890189", info.IBAN)
	assert.Equal(t, int64(17), info.EntriesCount)

	row := rows[0]
	assert.Equal(t, "FR7630006000011234567890189", row.Account)
	assert.Equal(t, "2024-02-28", row.Date)
	assert.Equal(t, "VIREMENT RECU", row.Description)
	assert.Equal(t, "0", row.Debit)
	assert.Equal(t, "100.00", row.Credit)
	assert.Equal(t, "CRDT", row.NtryType)
}

func TestExtractStatement_IBANIsPositional(t *testing.T) {
	// The first entry appears before Acct and must use the placeholder.
	root := parseDoc(t, `
<Document>
  <BkToCstmrStmt>
    <Stmt>
      <Ntry>
        <Amt>1.00</Amt>
        <CdtDbtInd>DBIT</CdtDbtInd>
        <BookgDt><Dt>2024-01-01</Dt></BookgDt>
        <AddtlNtryInf>early</AddtlNtryInf>
      </Ntry>
      <Acct><Id><IBAN>CH9300762011623852957</IBAN></Id></Acct>
      <Ntry>
        <Amt>2.00</Amt>
        <CdtDbtInd>DBIT</CdtDbtInd>
        <BookgDt><Dt>2024-01-02</Dt></BookgDt>
        <AddtlNtryInf>late</AddtlNtryInf>
      </Ntry>
    </Stmt>
  </BkToCstmrStmt>
</Document>`)

	rows, _, err := ExtractStatement(root)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "IBAN", rows[0].Account)
	assert.Equal(t, "CH9300762011623852957", rows[1].Account)
}

func TestExtractStatement_MissingBkToCstmrStmt(t *testing.T) {
	root := parseDoc(t, `<Document><Other/></Document>`)

	_, _, err := ExtractStatement(root)
	require.Error(t, err)

	var structErr StructureError
	require.ErrorAs(t, err, &structErr)
	assert.Equal(t, "BkToCstmrStmt", structErr.Element)
}

func TestExtractStatement_MissingStmt(t *testing.T) {
	root := parseDoc(t, `<Document><BkToCstmrStmt><GrpHdr/></BkToCstmrStmt></Document>`)

	_, _, err := ExtractStatement(root)
	var structErr StructureError
	require.ErrorAs(t, err, &structErr)
	assert.Equal(t, "Stmt", structErr.Element)
}

func TestExtractStatement_BadSequenceNumber(t *testing.T) {
	root := parseDoc(t, `
<Document>
  <BkToCstmrStmt>
    <Stmt>
      <ElctrncSeqNb>seventeen</ElctrncSeqNb>
    </Stmt>
  </BkToCstmrStmt>
</Document>`)

	_, _, err := ExtractStatement(root)
	require.Error(t, err)

	var formatErr FormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, "ElctrncSeqNb", formatErr.Element)
	assert.Equal(t, "seventeen", formatErr.Value)
}

func TestExtractStatement_AcctWithoutIBAN(t *testing.T) {
	root := parseDoc(t, `
<Document>
  <BkToCstmrStmt>
    <Stmt>
      <Acct><Id><Othr><Id>123</Id></Othr></Id></Acct>
    </Stmt>
  </BkToCstmrStmt>
</Document>`)

	_, _, err := ExtractStatement(root)
	var structErr StructureError
	require.ErrorAs(t, err, &structErr)
	assert.Equal(t, "Acct/Id/IBAN", structErr.Element)
}

func TestExtractStatement_EmptyStatement(t *testing.T) {
	root := parseDoc(t, `<Document><BkToCstmrStmt><Stmt/></BkToCstmrStmt></Document>`)

	rows, info, err := ExtractStatement(root)
	require.NoError(t, err)
	assert.Nil(t, rows)
	assert.Equal(t, "IBAN", info.IBAN)
	assert.Equal(t, int64(0), info.EntriesCount)
}

func TestExtractStatement_NamespacedDocument(t *testing.T) {
	// Prefixed tags must match the same as unprefixed ones.
	root := parseDoc(t, `
<c:Document xmlns:c="urn:iso:std:iso:20022:tech:xsd:camt.053.001.02">
  <c:BkToCstmrStmt>
    <c:Stmt>
      <c:Acct><c:Id><c:IBAN>DE89370400440532013000</c:IBAN></c:Id></c:Acct>
      <c:Ntry>
        <c:Amt>9.99</c:Amt>
        <c:CdtDbtInd>DBIT</c:CdtDbtInd>
        <c:BookgDt><c:Dt>2024-01-05</c:Dt></c:BookgDt>
        <c:AddtlNtryInf>card payment</c:AddtlNtryInf>
      </c:Ntry>
    </c:Stmt>
  </c:BkToCstmrStmt>
</c:Document>`)

	rows, _, err := ExtractStatement(root)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "DE89370400440532013000", rows[0].Account)
	assert.Equal(t, "9.99", rows[0].Debit)
}
