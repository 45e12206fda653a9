package view

import (
	"fmt"
	"strconv"
	"strings"

	"block_explorer/pkg/explorer"
)

// Columns are the transaction table headers, in display order.
var Columns = []string{
	"Transaction Hash",
	"Block",
	"From",
	"To",
	"Confirmations",
	"Value",
	"Transaction Fee",
	"Data",
}

// Row is one rendered line of the transaction table.
type Row struct {
	// Hash is the full hash, used as the selection key.
	Hash          string
	ShortHash     string
	Block         string
	ShortFrom     string
	ShortTo       string
	Confirmations string
	Value         string
	Fee           string
	ShortData     string
}

// DetailField is a labelled value in the detail panel.
type DetailField struct {
	Name  string
	Value string
}

// Detail is the rendered detail panel of the selected transaction.
type Detail struct {
	Fields []DetailField
	Data   string
}

// Page is everything the explorer page shows.
type Page struct {
	BlockLabel string
	Columns    []string
	Rows       []Row
	// Detail is nil when nothing is selected.
	Detail *Detail
}

// Render builds the page for a snapshot.
func Render(s explorer.Snapshot) Page {
	page := Page{
		BlockLabel: BlockLabel(s.BlockNumber),
		Columns:    Columns,
		Rows:       RenderRows(s.Transactions),
	}
	if s.SelectedHash != "" {
		detail := RenderDetail(LookupTransaction(s.Transactions, s.SelectedHash))
		page.Detail = &detail
	}
	return page
}

// BlockLabel renders the block number caption; an unset number shows as "undefined".
func BlockLabel(blockNumber *int64) string {
	return fmt.Sprintf(" Block Number: %s ", formatOptionalInt(blockNumber, "undefined"))
}

// RenderRows renders the transaction table body, one row per transaction, in order.
func RenderRows(txs []explorer.Transaction) []Row {
	rows := make([]Row, 0, len(txs))
	for _, tx := range txs {
		rows = append(rows, Row{
			Hash:          tx.Hash,
			ShortHash:     Truncate(tx.Hash, TruncateLength),
			Block:         formatOptionalInt(tx.BlockNumber, ""),
			ShortFrom:     Truncate(tx.From, TruncateLength),
			ShortTo:       Truncate(tx.To, TruncateLength),
			Confirmations: formatOptionalInt(tx.Confirmations, ""),
			Value:         FormatEther(tx.Value, TableValueDigits),
			Fee:           CalcFee(tx, TableFeeDigits),
			ShortData:     Truncate(tx.Data, TruncateLength),
		})
	}
	return rows
}

// RenderDetail renders the detail panel. The empty record renders blank fields.
func RenderDetail(tx explorer.Transaction) Detail {
	return Detail{
		Fields: []DetailField{
			{Name: "Transaction Hash", Value: tx.Hash},
			{Name: "Block", Value: formatOptionalInt(tx.BlockNumber, "")},
			{Name: "From", Value: tx.From},
			{Name: "To", Value: tx.To},
			{Name: "Confirmations", Value: formatOptionalInt(tx.Confirmations, "")},
			{Name: "Value", Value: FormatEtherExact(tx.Value)},
			{Name: "Transaction Fee", Value: CalcFee(tx, DetailFeeDigits)},
		},
		Data: tx.Data,
	}
}

// LookupTransaction returns the first transaction with the given hash, or the
// empty record.
func LookupTransaction(txs []explorer.Transaction, hash string) explorer.Transaction {
	hash = strings.TrimSpace(hash)
	if hash == "" {
		return explorer.Transaction{}
	}
	for _, tx := range txs {
		if strings.EqualFold(tx.Hash, hash) {
			return tx
		}
	}
	return explorer.Transaction{}
}

func formatOptionalInt(v *int64, absent string) string {
	if v == nil {
		return absent
	}
	return strconv.FormatInt(*v, 10)
}
