package domain

import "testing"

func TestPermissions_SuperRoleGetsEverything(t *testing.T) {
	perms := Permissions(RoleSuperAdmin)
	for _, cap := range allCapabilities {
		if !perms[cap] {
			t.Fatalf("super role missing %s", cap)
		}
	}
}

func TestPermissions_UnknownRoleGetsNothing(t *testing.T) {
	perms := Permissions("intern")
	if len(perms) != 0 {
		t.Fatalf("unknown role granted %d capabilities", len(perms))
	}
	if perms[CapLoansView] {
		t.Fatalf("unknown role must not view loans")
	}
}

func TestPermissions_PerRole(t *testing.T) {
	cases := []struct {
		role string
		cap  string
		want bool
	}{
		{RoleSales, CapLoansView, true},
		{RoleSales, CapLoansApprove, false},
		{RoleRisk, CapLoansApprove, true},
		{RoleRisk, CapAdminsManage, false},
		{RoleFinance, CapWalletsAdjust, true},
		{RoleCompliance, CapWalletsAdjust, false},
		{RoleCollections, CapNotificationsSend, true},
		{RolePortfolio, CapInvestmentsManage, true},
		{RolePortfolio, CapLoansView, false},
	}
	for _, tc := range cases {
		if got := Permissions(tc.role)[tc.cap]; got != tc.want {
			t.Errorf("Permissions(%s)[%s] = %v, want %v", tc.role, tc.cap, got, tc.want)
		}
	}
}
