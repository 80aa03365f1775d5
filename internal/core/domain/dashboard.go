package domain

import "time"

// DashboardStats is the aggregate snapshot rendered on the console landing
// page. The backend computes everything; zero values simply render as zeros
// when the stats endpoint is not yet available.
type DashboardStats struct {
	TotalLoans        int     `json:"total_loans"`
	ActiveLoans       int     `json:"active_loans"`
	PendingApprovals  int     `json:"pending_approvals"`
	TotalInvestments  int     `json:"total_investments"`
	ActiveInvestments int     `json:"active_investments"`
	TotalWallets      int     `json:"total_wallets"`
	WalletVolume      float64 `json:"wallet_volume"`
	TotalAdmins       int     `json:"total_admins"`
}

// ActivityEntry is one row of the recent-activity feed.
type ActivityEntry struct {
	ID       string    `json:"id"`
	Actor    string    `json:"actor"`
	Action   string    `json:"action"`
	Entity   string    `json:"entity"`
	EntityID string    `json:"entity_id"`
	At       time.Time `json:"at"`
}
