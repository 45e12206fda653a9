package domain

// Transaction is a transaction as displayed by the explorer. Fields the node
// did not provide keep their zero value: empty hash and addresses, absent
// quantities, nil confirmations.
type Transaction struct {
	Hash          TransactionHash
	BlockNumber   BlockNumber
	From          Address
	To            Address
	Confirmations *int64
	Value         Quantity
	GasLimit      Quantity
	GasPrice      Quantity
	Data          string
}

// IsZero reports whether tx is the empty record. A transaction whose hash
// could not be decoded is not empty as long as any other field is set.
func (tx Transaction) IsZero() bool {
	return tx == Transaction{}
}
