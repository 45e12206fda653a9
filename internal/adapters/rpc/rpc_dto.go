package rpc

// Transaction represents the DTO for a transaction from the Ethereum node.
// Quantities stay hex strings here; an empty string means the node omitted the field.
type Transaction struct {
	Hash             string  `json:"hash"`
	BlockHash        *string `json:"blockHash"`
	BlockNumber      *string `json:"blockNumber"`
	From             string  `json:"from"`
	To               *string `json:"to"`
	Gas              string  `json:"gas"`
	GasPrice         string  `json:"gasPrice"`
	Value            string  `json:"value"`
	Input            string  `json:"input"`
	Nonce            string  `json:"nonce"`
	TransactionIndex *string `json:"transactionIndex"`
	Type             string  `json:"type"`
}

// Block represents the DTO for a block from the Ethereum node, fetched with full transactions.
type Block struct {
	Number       string        `json:"number"`
	Transactions []Transaction `json:"transactions"`
}
