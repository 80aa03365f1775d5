package domain

import "time"

// WalletStatus represents the operational state of a wallet.
type WalletStatus string

const (
	WalletActive WalletStatus = "active"
	WalletFrozen WalletStatus = "frozen"
	WalletClosed WalletStatus = "closed"
)

// Wallet is a customer wallet as rendered in the console.
type Wallet struct {
	ID            string       `json:"id"`
	OwnerID       string       `json:"owner_id"`
	OwnerName     string       `json:"owner_name"`
	Currency      string       `json:"currency"`
	Balance       float64      `json:"balance"`
	LedgerBalance float64      `json:"ledger_balance"`
	Status        WalletStatus `json:"status"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

// WalletTransaction is one ledger entry on a wallet.
type WalletTransaction struct {
	ID        string    `json:"id"`
	WalletID  string    `json:"wallet_id"`
	Type      string    `json:"type"` // credit or debit
	Amount    float64   `json:"amount"`
	Currency  string    `json:"currency"`
	Reference string    `json:"reference"`
	Narration string    `json:"narration,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// WalletList is the items-plus-pagination payload of a wallet listing.
type WalletList struct {
	Wallets    []Wallet   `json:"wallets"`
	Pagination Pagination `json:"pagination"`
}

// TransactionList is the items-plus-pagination payload of a transaction listing.
type TransactionList struct {
	Transactions []WalletTransaction `json:"transactions"`
	Pagination   Pagination          `json:"pagination"`
}
