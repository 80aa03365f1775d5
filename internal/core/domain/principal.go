package domain

import "time"

// Role names form a closed set; the backend never issues anything outside it.
const (
	RoleSuperAdmin  = "super_admin"
	RoleAdmin       = "admin"
	RoleSales       = "sales"
	RoleRisk        = "risk"
	RoleFinance     = "finance"
	RoleCompliance  = "compliance"
	RoleCollections = "collections"
	RolePortfolio   = "portfolio_management"
)

// Principal is the authenticated operator for the current session. The role
// is immutable for the lifetime of the session.
type Principal struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Capability names used across the console.
const (
	CapLoansView         = "loans.view"
	CapLoansApprove      = "loans.approve"
	CapLoansManage       = "loans.manage"
	CapInvestmentsView   = "investments.view"
	CapInvestmentsManage = "investments.manage"
	CapWalletsView       = "wallets.view"
	CapWalletsAdjust     = "wallets.adjust"
	CapAdminsManage      = "admins.manage"
	CapNotificationsSend = "notifications.send"
	CapReportsView       = "reports.view"
)

// rolePermissions is the static capability table, one entry per role value.
// Permissions derive from the role alone, never from the individual user.
// RoleSuperAdmin is absent on purpose: it is granted everything (see
// Permissions).
var rolePermissions = map[string]map[string]bool{
	RoleAdmin: {
		CapLoansView: true, CapLoansApprove: true, CapLoansManage: true,
		CapInvestmentsView: true, CapInvestmentsManage: true,
		CapWalletsView: true, CapWalletsAdjust: true,
		CapAdminsManage: true, CapNotificationsSend: true, CapReportsView: true,
	},
	RoleSales: {
		CapLoansView: true, CapInvestmentsView: true, CapReportsView: true,
	},
	RoleRisk: {
		CapLoansView: true, CapLoansApprove: true,
		CapInvestmentsView: true, CapWalletsView: true, CapReportsView: true,
	},
	RoleFinance: {
		CapLoansView: true, CapInvestmentsView: true, CapInvestmentsManage: true,
		CapWalletsView: true, CapWalletsAdjust: true, CapReportsView: true,
	},
	RoleCompliance: {
		CapLoansView: true, CapInvestmentsView: true,
		CapWalletsView: true, CapReportsView: true,
	},
	RoleCollections: {
		CapLoansView: true, CapLoansManage: true, CapNotificationsSend: true,
	},
	RolePortfolio: {
		CapInvestmentsView: true, CapInvestmentsManage: true, CapReportsView: true,
	},
}

// allCapabilities lists every capability, used to grant the super role.
var allCapabilities = []string{
	CapLoansView, CapLoansApprove, CapLoansManage,
	CapInvestmentsView, CapInvestmentsManage,
	CapWalletsView, CapWalletsAdjust,
	CapAdminsManage, CapNotificationsSend, CapReportsView,
}

// Permissions returns the capability set for a role. Unknown roles get an
// empty (all-false) set.
func Permissions(role string) map[string]bool {
	if role == RoleSuperAdmin {
		perms := make(map[string]bool, len(allCapabilities))
		for _, cap := range allCapabilities {
			perms[cap] = true
		}
		return perms
	}
	perms, ok := rolePermissions[role]
	if !ok {
		return map[string]bool{}
	}
	return perms
}

// Admin is an administrator account as managed through the console, a
// superset of Principal with lifecycle fields.
type Admin struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Role        string     `json:"role"`
	Status      string     `json:"status"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Admin account statuses.
const (
	AdminActive    = "active"
	AdminSuspended = "suspended"
)
