package domain

import (
	"fmt"
	"regexp"
)

// ============================================================
// Ledger
// ============================================================

// Category classifies a ledger row.
type Category string

const (
	CategoryProgram    Category = "Program"
	CategoryAdmin      Category = "Admin"
	CategoryOperations Category = "Operations"
)

// Valid reports whether c belongs to the closed category set.
func (c Category) Valid() bool {
	switch c {
	case CategoryProgram, CategoryAdmin, CategoryOperations:
		return true
	}
	return false
}

// LedgerDateLayout is the display format of TransactionRecord.Date.
const LedgerDateLayout = "2006-01-02"

// receiptIDPattern accepts both seed ids (RCP-2025-001) and generated ones
// (RCP-2026-4821).
var receiptIDPattern = regexp.MustCompile(`^RCP-\d{4}-\d{3,4}$`)

// TransactionRecord is one row of an organization's public ledger.
// Records are never mutated after construction.
type TransactionRecord struct {
	ID          string   `json:"id"`
	Date        string   `json:"date"`
	Description string   `json:"item"`
	Amount      int64    `json:"amount"`
	Category    Category `json:"type"`
	ReceiptID   string   `json:"receiptId"`
	NGOID       string   `json:"ngoId"`
}

// NewTransactionRecord validates and builds a ledger row.
func NewTransactionRecord(id, date, description string, amount int64, category Category, receiptID, ngoID string) (TransactionRecord, error) {
	if id == "" {
		return TransactionRecord{}, &ErrValidation{Field: "id", Message: "must not be empty"}
	}
	if amount <= 0 {
		return TransactionRecord{}, &ErrValidation{Field: "amount", Message: "must be positive"}
	}
	if !category.Valid() {
		return TransactionRecord{}, &ErrValidation{Field: "category", Message: fmt.Sprintf("unknown category %q", category)}
	}
	if !receiptIDPattern.MatchString(receiptID) {
		return TransactionRecord{}, &ErrValidation{Field: "receiptId", Message: fmt.Sprintf("malformed receipt id %q", receiptID)}
	}
	return TransactionRecord{
		ID:          id,
		Date:        date,
		Description: description,
		Amount:      amount,
		Category:    category,
		ReceiptID:   receiptID,
		NGOID:       ngoID,
	}, nil
}

// LedgerSnapshot is the visible part of a ledger.
type LedgerSnapshot struct {
	NGOID   string              `json:"ngoId"`
	Records []TransactionRecord `json:"records"`
	Count   int                 `json:"count"`
}
