package domain

import "time"

// LoanStatus represents the lifecycle state of a loan as reported by the
// backend. Which transitions are legal is entirely the backend's decision;
// the console only forwards transition requests and relays the result.
type LoanStatus string

const (
	LoanPending     LoanStatus = "pending"
	LoanUnderReview LoanStatus = "under_review"
	LoanApproved    LoanStatus = "approved"
	LoanActive      LoanStatus = "active"
	LoanRejected    LoanStatus = "rejected"
	LoanDefaulted   LoanStatus = "defaulted"
	LoanClosed      LoanStatus = "closed"
)

// Loan is a loan record as rendered in the console.
type Loan struct {
	ID              string     `json:"id"`
	Reference       string     `json:"reference"`
	BorrowerID      string     `json:"borrower_id"`
	BorrowerName    string     `json:"borrower_name"`
	ProductID       string     `json:"product_id"`
	ProductName     string     `json:"product_name"`
	PrincipalAmount float64    `json:"principal_amount"`
	InterestRate    float64    `json:"interest_rate"`
	TermMonths      int        `json:"term_months"`
	Outstanding     float64    `json:"outstanding_balance"`
	Currency        string     `json:"currency"`
	Status          LoanStatus `json:"status"`
	DisbursedAt     *time.Time `json:"disbursed_at,omitempty"`
	DueAt           *time.Time `json:"due_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// LoanProduct is a configurable loan offering (rates and bounds are validated
// by the backend, not here).
type LoanProduct struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	InterestRate float64   `json:"interest_rate"`
	MinAmount    float64   `json:"min_amount"`
	MaxAmount    float64   `json:"max_amount"`
	TermMonths   int       `json:"term_months"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// LoanList is the items-plus-pagination payload of a loan listing.
type LoanList struct {
	Loans      []Loan     `json:"loans"`
	Pagination Pagination `json:"pagination"`
}
