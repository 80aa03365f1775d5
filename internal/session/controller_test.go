package session

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/crestfin/admin-console/internal/core/domain"
	"github.com/crestfin/admin-console/internal/core/ports"
	"github.com/crestfin/admin-console/internal/infrastructure/credstore"
)

type stubAuthAPI struct {
	loginFn   func(ctx context.Context, email, password string) domain.Result[ports.LoginData]
	logoutFn  func(ctx context.Context) domain.Result[struct{}]
	profileFn func(ctx context.Context) domain.Result[domain.Principal]

	profileCalls int
}

func (s *stubAuthAPI) Login(ctx context.Context, email, password string) domain.Result[ports.LoginData] {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthAPI) Logout(ctx context.Context) domain.Result[struct{}] {
	if s.logoutFn == nil {
		return domain.Ok(struct{}{}, "")
	}
	return s.logoutFn(ctx)
}

func (s *stubAuthAPI) Profile(ctx context.Context) domain.Result[domain.Principal] {
	s.profileCalls++
	return s.profileFn(ctx)
}

func principalFixture(role string) domain.Principal {
	return domain.Principal{ID: "adm_7", Name: "Kema Obi", Email: "kema@crestfin.test", Role: role}
}

func TestLogin_Success(t *testing.T) {
	creds := credstore.NewMemory()
	stub := &stubAuthAPI{
		loginFn: func(_ context.Context, email, password string) domain.Result[ports.LoginData] {
			if email != "kema@crestfin.test" || password != "pass-12345" {
				t.Fatalf("unexpected credentials: %s %s", email, password)
			}
			return domain.Ok(ports.LoginData{Token: "tok-1", Admin: principalFixture(domain.RoleFinance)}, "")
		},
	}

	ctrl := New(stub, creds)
	res := ctrl.Login(context.Background(), "kema@crestfin.test", "pass-12345")
	if !res.Success {
		t.Fatalf("login failed: %+v", res.Err)
	}

	if token, ok := creds.Get(); !ok || token != "tok-1" {
		t.Fatalf("credential not stored: %q %v", token, ok)
	}
	if ctrl.State() != Authenticated {
		t.Fatalf("state = %s", ctrl.State())
	}
	if p, ok := ctrl.Principal(); !ok || p.Role != domain.RoleFinance {
		t.Fatalf("principal = %+v ok=%v", p, ok)
	}
}

func TestLogin_FailureSurfacesClassifiedErrorVerbatim(t *testing.T) {
	creds := credstore.NewMemory()
	backendErr := &domain.APIError{Class: domain.ClassUnauthorized, Message: "Your session has expired. Please sign in again.", Status: 401}
	stub := &stubAuthAPI{
		loginFn: func(context.Context, string, string) domain.Result[ports.LoginData] {
			return domain.Result[ports.LoginData]{Err: backendErr}
		},
	}

	ctrl := New(stub, creds)
	res := ctrl.Login(context.Background(), "kema@crestfin.test", "wrong")
	if res.Success {
		t.Fatalf("expected failure")
	}
	if res.Err != backendErr {
		t.Fatalf("error re-wrapped: %+v", res.Err)
	}
	if ctrl.State() != Unauthenticated {
		t.Fatalf("state = %s", ctrl.State())
	}
	if _, ok := creds.Get(); ok {
		t.Fatalf("no credential may be stored on failed login")
	}
}

func TestLogout_AlwaysEndsUnauthenticated(t *testing.T) {
	creds := credstore.NewMemory()
	creds.Set("tok-1")
	stub := &stubAuthAPI{
		logoutFn: func(context.Context) domain.Result[struct{}] {
			return domain.Fail[struct{}](domain.ClassNetworkError, "Network error: Unable to connect to server", 0)
		},
		profileFn: func(context.Context) domain.Result[domain.Principal] {
			return domain.Ok(principalFixture(domain.RoleAdmin), "")
		},
		loginFn: func(context.Context, string, string) domain.Result[ports.LoginData] {
			t.Fatalf("login must not be called")
			return domain.Result[ports.LoginData]{}
		},
	}

	ctrl := New(stub, creds)
	if !ctrl.Restore(context.Background()) {
		t.Fatalf("restore should succeed")
	}

	ctrl.Logout(context.Background())
	if ctrl.State() != Unauthenticated {
		t.Fatalf("state = %s", ctrl.State())
	}
	if _, ok := creds.Get(); ok {
		t.Fatalf("credential must be cleared even when remote logout fails")
	}
	if _, ok := ctrl.Principal(); ok {
		t.Fatalf("principal must be cleared")
	}
}

func TestHandleUnauthorized_ForcedLogoutOnce(t *testing.T) {
	creds := credstore.NewMemory()
	creds.Set("tok-1")

	redirects := 0
	stub := &stubAuthAPI{}
	ctrl := New(stub, creds, WithRedirect(func() { redirects++ }))

	// Several requests may each see their own 401; the effect is functionally
	// one forced logout.
	ctrl.HandleUnauthorized("tok-1")
	ctrl.HandleUnauthorized("tok-1")
	ctrl.HandleUnauthorized("tok-1")

	if _, ok := creds.Get(); ok {
		t.Fatalf("credential must be cleared")
	}
	if ctrl.State() != Unauthenticated {
		t.Fatalf("state = %s", ctrl.State())
	}
	if redirects != 1 {
		t.Fatalf("redirects = %d, want 1", redirects)
	}
}

func TestHandleUnauthorized_StaleTokenIsIgnored(t *testing.T) {
	creds := credstore.NewMemory()
	stub := &stubAuthAPI{
		loginFn: func(context.Context, string, string) domain.Result[ports.LoginData] {
			return domain.Ok(ports.LoginData{Token: "tok-new", Admin: principalFixture(domain.RoleAdmin)}, "")
		},
	}

	redirects := 0
	ctrl := New(stub, creds, WithRedirect(func() { redirects++ }))
	if res := ctrl.Login(context.Background(), "kema@crestfin.test", "pass-12345"); !res.Success {
		t.Fatalf("login failed: %+v", res.Err)
	}

	// A 401 from a request sent with a superseded token must not clobber the
	// just-established session.
	ctrl.HandleUnauthorized("tok-old")

	if ctrl.State() != Authenticated {
		t.Fatalf("stale 401 terminated a live session")
	}
	if token, ok := creds.Get(); !ok || token != "tok-new" {
		t.Fatalf("credential lost: %q %v", token, ok)
	}
	if redirects != 0 {
		t.Fatalf("redirect fired for a stale 401")
	}
}

func TestRestore_NoCredential(t *testing.T) {
	stub := &stubAuthAPI{
		profileFn: func(context.Context) domain.Result[domain.Principal] {
			t.Fatalf("profile must not be fetched without a credential")
			return domain.Result[domain.Principal]{}
		},
	}
	ctrl := New(stub, credstore.NewMemory())

	if ctrl.Restore(context.Background()) {
		t.Fatalf("restore should fail with no credential")
	}
	if ctrl.State() != Unauthenticated {
		t.Fatalf("state = %s", ctrl.State())
	}
}

func TestRestore_ProfileFailureClearsCredential(t *testing.T) {
	creds := credstore.NewMemory()
	creds.Set("tok-stale")
	stub := &stubAuthAPI{
		profileFn: func(context.Context) domain.Result[domain.Principal] {
			return domain.Fail[domain.Principal](domain.ClassUnauthorized, "Your session has expired. Please sign in again.", 401)
		},
	}

	ctrl := New(stub, creds)
	if ctrl.Restore(context.Background()) {
		t.Fatalf("restore should fail")
	}
	if _, ok := creds.Get(); ok {
		t.Fatalf("credential must be cleared after failed restore")
	}
	if ctrl.State() != Unauthenticated {
		t.Fatalf("state = %s", ctrl.State())
	}
}

func TestRestore_ExpiredJWTSkipsRoundTrip(t *testing.T) {
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "adm_7",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	signed, err := expired.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	creds := credstore.NewMemory()
	creds.Set(signed)
	stub := &stubAuthAPI{
		profileFn: func(context.Context) domain.Result[domain.Principal] {
			return domain.Ok(principalFixture(domain.RoleAdmin), "")
		},
	}

	ctrl := New(stub, creds)
	if ctrl.Restore(context.Background()) {
		t.Fatalf("restore should fail on an expired token")
	}
	if stub.profileCalls != 0 {
		t.Fatalf("profile fetched %d times, want 0", stub.profileCalls)
	}
	if _, ok := creds.Get(); ok {
		t.Fatalf("expired credential must be discarded")
	}
}

func TestRestore_OpaqueTokenGoesToBackend(t *testing.T) {
	creds := credstore.NewMemory()
	creds.Set("not-a-jwt")
	stub := &stubAuthAPI{
		profileFn: func(context.Context) domain.Result[domain.Principal] {
			return domain.Ok(principalFixture(domain.RoleRisk), "")
		},
	}

	ctrl := New(stub, creds)
	if !ctrl.Restore(context.Background()) {
		t.Fatalf("restore should succeed for a live opaque token")
	}
	if p, ok := ctrl.Principal(); !ok || p.Role != domain.RoleRisk {
		t.Fatalf("principal = %+v ok=%v", p, ok)
	}
}

func authenticatedController(t *testing.T, role string) *Controller {
	t.Helper()
	creds := credstore.NewMemory()
	stub := &stubAuthAPI{
		loginFn: func(context.Context, string, string) domain.Result[ports.LoginData] {
			return domain.Ok(ports.LoginData{Token: "tok", Admin: principalFixture(role)}, "")
		},
	}
	ctrl := New(stub, creds)
	if res := ctrl.Login(context.Background(), "kema@crestfin.test", "pass-12345"); !res.Success {
		t.Fatalf("login failed: %+v", res.Err)
	}
	return ctrl
}

func TestHasRole_SuperRoleAlwaysPasses(t *testing.T) {
	ctrl := authenticatedController(t, domain.RoleSuperAdmin)

	if !ctrl.HasRole() {
		t.Fatalf("super role must pass an empty allowed set")
	}
	if !ctrl.HasRole(domain.RoleSales) {
		t.Fatalf("super role must pass a set not naming it")
	}
}

func TestHasRole_ExactMembership(t *testing.T) {
	ctrl := authenticatedController(t, domain.RoleRisk)

	if !ctrl.HasRole(domain.RoleRisk, domain.RoleFinance) {
		t.Fatalf("member role rejected")
	}
	if ctrl.HasRole(domain.RoleFinance) {
		t.Fatalf("non-member role accepted")
	}
	if ctrl.HasRole() {
		t.Fatalf("empty set must reject non-super roles")
	}
}

func TestHasPermission(t *testing.T) {
	ctrl := authenticatedController(t, domain.RoleSales)

	if !ctrl.HasPermission(domain.CapLoansView) {
		t.Fatalf("sales should view loans")
	}
	if ctrl.HasPermission(domain.CapLoansApprove) {
		t.Fatalf("sales must not approve loans")
	}

	unknown := authenticatedController(t, "intern")
	if unknown.HasPermission(domain.CapReportsView) {
		t.Fatalf("unknown role must default to all-false")
	}
}

func TestUnauthenticated_NoRolesNoPermissions(t *testing.T) {
	ctrl := New(&stubAuthAPI{}, credstore.NewMemory())

	if ctrl.HasRole(domain.RoleAdmin) || ctrl.HasPermission(domain.CapLoansView) {
		t.Fatalf("unauthenticated controller must deny everything")
	}
}
