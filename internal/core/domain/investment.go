package domain

import "time"

// InvestmentStatus represents the lifecycle state of an investment.
type InvestmentStatus string

const (
	InvestmentPending    InvestmentStatus = "pending"
	InvestmentActive     InvestmentStatus = "active"
	InvestmentMatured    InvestmentStatus = "matured"
	InvestmentLiquidated InvestmentStatus = "liquidated"
	InvestmentCancelled  InvestmentStatus = "cancelled"
)

// Investment is an investor position in a plan.
type Investment struct {
	ID           string           `json:"id"`
	Reference    string           `json:"reference"`
	InvestorID   string           `json:"investor_id"`
	InvestorName string           `json:"investor_name"`
	PlanID       string           `json:"plan_id"`
	PlanName     string           `json:"plan_name"`
	Amount       float64          `json:"amount"`
	Rate         float64          `json:"rate"`
	Currency     string           `json:"currency"`
	Status       InvestmentStatus `json:"status"`
	MaturesAt    *time.Time       `json:"matures_at,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// InvestmentPlan is a configurable investment offering.
type InvestmentPlan struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Rate       float64   `json:"rate"`
	MinAmount  float64   `json:"min_amount"`
	MaxAmount  float64   `json:"max_amount"`
	TermMonths int       `json:"term_months"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// InvestmentList is the items-plus-pagination payload of an investment listing.
type InvestmentList struct {
	Investments []Investment `json:"investments"`
	Pagination  Pagination   `json:"pagination"`
}
