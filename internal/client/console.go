package client

import "github.com/crestfin/admin-console/internal/core/ports"

// Console bundles every domain client over one shared credential store. It
// is an explicit session-scoped context object: construct one per session
// rather than sharing a process-wide singleton.
type Console struct {
	Auth          *AuthClient
	Loans         *LoansClient
	Investments   *InvestmentsClient
	Wallets       *WalletsClient
	Notifications *NotificationsClient
	Admins        *AdminsClient
	Dashboard     *DashboardClient
}

// NewConsole builds the full client set against one backend. Options apply
// to every domain client, so an unauthorized hook installed here fires for
// any resource family that receives a 401.
func NewConsole(baseURL string, creds ports.CredentialStore, opts ...Option) *Console {
	return &Console{
		Auth:          NewAuth(baseURL, creds, opts...),
		Loans:         NewLoans(baseURL, creds, opts...),
		Investments:   NewInvestments(baseURL, creds, opts...),
		Wallets:       NewWallets(baseURL, creds, opts...),
		Notifications: NewNotifications(baseURL, creds, opts...),
		Admins:        NewAdmins(baseURL, creds, opts...),
		Dashboard:     NewDashboard(baseURL, creds, opts...),
	}
}
