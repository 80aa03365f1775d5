// Package fakebackend is an in-process stand-in for the remote admin API,
// used only from tests. It is injected explicitly wherever a backend is
// needed; nothing in the production wiring constructs it.
//
// It reproduces the backend's observable quirks on purpose: the standard
// `{success, data}` envelope on most endpoints, legacy raw-payload bodies on
// others, and 404s on endpoints that are not implemented yet.
package fakebackend

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/crestfin/admin-console/internal/core/domain"
)

const tokenTTL = 24 * time.Hour

// account is a demo login.
type account struct {
	email        string
	passwordHash []byte
	principal    domain.Principal
}

// loanTransitions is this fake's notion of legal loan moves. The real
// backend owns this rule; clients never check it.
var loanTransitions = map[domain.LoanStatus][]domain.LoanStatus{
	domain.LoanPending:     {domain.LoanUnderReview, domain.LoanRejected},
	domain.LoanUnderReview: {domain.LoanApproved, domain.LoanRejected},
	domain.LoanApproved:    {domain.LoanActive},
	domain.LoanActive:      {domain.LoanDefaulted, domain.LoanClosed},
}

func canTransition(from, to domain.LoanStatus) bool {
	for _, allowed := range loanTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// Server holds the fake's in-memory state. accounts is immutable after New;
// everything under the mutex may change per request.
type Server struct {
	secret   string
	accounts []account

	mu          sync.Mutex
	loans       map[string]*domain.Loan
	investments []domain.Investment
	wallets     []domain.Wallet
	admins      map[string]*domain.Admin

	// LoginCalls counts login attempts, letting tests assert that demo
	// credentials never short-circuit the backend round trip.
	LoginCalls int
}

// New seeds a Server with demo accounts and a small ledger of records.
func New(secret string) *Server {
	s := &Server{
		secret: secret,
		loans:  make(map[string]*domain.Loan),
		admins: make(map[string]*domain.Admin),
	}
	s.addAccount("root@crestfin.test", "rootpass-1", domain.Principal{
		ID: "adm_1", Name: "Root Operator", Email: "root@crestfin.test", Role: domain.RoleSuperAdmin,
	})
	s.addAccount("risk@crestfin.test", "riskpass-1", domain.Principal{
		ID: "adm_2", Name: "Risk Desk", Email: "risk@crestfin.test", Role: domain.RoleRisk,
	})

	now := time.Now().UTC()
	s.loans["L1"] = &domain.Loan{
		ID: "L1", Reference: "LN-0001", BorrowerID: "u_10", BorrowerName: "Ada Umeh",
		PrincipalAmount: 250000, InterestRate: 21.5, TermMonths: 12, Currency: "NGN",
		Status: domain.LoanUnderReview, CreatedAt: now, UpdatedAt: now,
	}
	s.loans["L2"] = &domain.Loan{
		ID: "L2", Reference: "LN-0002", BorrowerID: "u_11", BorrowerName: "Tunde Bakare",
		PrincipalAmount: 90000, InterestRate: 24.0, TermMonths: 6, Currency: "NGN",
		Status: domain.LoanClosed, CreatedAt: now, UpdatedAt: now,
	}
	s.investments = []domain.Investment{
		{ID: "I1", Reference: "IV-0001", InvestorID: "u_20", InvestorName: "Ngozi Eze",
			PlanID: "P1", PlanName: "Fixed 12M", Amount: 500000, Rate: 14.5, Currency: "NGN",
			Status: domain.InvestmentActive, CreatedAt: now, UpdatedAt: now},
		{ID: "I2", Reference: "IV-0002", InvestorID: "u_21", InvestorName: "Femi Ojo",
			PlanID: "P1", PlanName: "Fixed 12M", Amount: 120000, Rate: 14.5, Currency: "NGN",
			Status: domain.InvestmentPending, CreatedAt: now, UpdatedAt: now},
	}
	s.wallets = []domain.Wallet{
		{ID: "W1", OwnerID: "u_10", OwnerName: "Ada Umeh", Currency: "NGN",
			Balance: 10500.50, LedgerBalance: 10500.50, Status: domain.WalletActive,
			CreatedAt: now, UpdatedAt: now},
	}
	return s
}

func (s *Server) addAccount(email, password string, p domain.Principal) {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	s.accounts = append(s.accounts, account{email: email, passwordHash: hash, principal: p})

	now := time.Now().UTC()
	s.admins[p.ID] = &domain.Admin{
		ID: p.ID, Name: p.Name, Email: p.Email, Role: p.Role,
		Status: domain.AdminActive, CreatedAt: now, UpdatedAt: now,
	}
}

func (s *Server) callerRole(c echo.Context) string {
	email, _ := c.Get("email").(string)
	for _, acct := range s.accounts {
		if acct.email == email {
			return acct.principal.Role
		}
	}
	return ""
}

// Handler returns the fake's HTTP handler, ready for httptest.NewServer.
func (s *Server) Handler() http.Handler {
	e := echo.New()
	e.HideBanner = true

	e.POST("/auth/login", s.login)

	authed := e.Group("", s.auth)
	authed.POST("/auth/logout", s.logout)
	authed.GET("/auth/profile", s.profile)
	authed.GET("/loans", s.listLoans)
	authed.GET("/loans/:id", s.getLoan)
	authed.PATCH("/loans/:id/status", s.updateLoanStatus)
	authed.POST("/loans/bulk", s.bulkLoans)
	authed.GET("/investments", s.listInvestments)
	authed.GET("/wallets", s.listWallets)
	authed.GET("/admins/:id", s.getAdmin)
	authed.POST("/admins", s.createAdmin)

	// Notifications and dashboard aggregates are not implemented in this
	// deployment; clients are expected to degrade gracefully.

	return e
}

// --- Envelopes ---

type successEnvelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data"`
	Message string `json:"message,omitempty"`
}

type failureEnvelope struct {
	Success bool          `json:"success"`
	Error   *failureError `json:"error,omitempty"`
	Message string        `json:"message,omitempty"`
}

type failureError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func ok(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, successEnvelope{Success: true, Data: data})
}

func fail(c echo.Context, status int, code, message string) error {
	return c.JSON(status, failureEnvelope{Success: false, Error: &failureError{Code: code, Message: message}})
}

// failErr renders a sentinel domain error in the failure envelope, mirroring
// how the real platform maps its domain rules onto HTTP statuses.
func failErr(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotAuthenticated):
		return fail(c, http.StatusUnauthorized, "UNAUTHORIZED", err.Error())
	case errors.Is(err, domain.ErrInvalidCredentials):
		return fail(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "invalid email or password")
	case errors.Is(err, domain.ErrForbidden):
		return fail(c, http.StatusForbidden, "FORBIDDEN", "access forbidden")
	case errors.Is(err, domain.ErrAdminNotFound):
		return fail(c, http.StatusNotFound, "NOT_FOUND", "admin not found")
	case errors.Is(err, domain.ErrAdminExists):
		return fail(c, http.StatusConflict, "CONFLICT", "admin already exists")
	case errors.Is(err, domain.ErrInvalidTransition):
		return fail(c, http.StatusUnprocessableEntity, "INVALID_TRANSITION", err.Error())
	default:
		return fail(c, http.StatusInternalServerError, "INTERNAL", "internal error")
	}
}

// --- Auth ---

// auth validates the bearer token, adapted straight from the real backend's
// middleware: HS256 only, claims injected into context.
func (s *Server) auth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get("Authorization")
		if header == "" {
			return failErr(c, fmt.Errorf("%w: missing authorization header", domain.ErrNotAuthenticated))
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			return failErr(c, fmt.Errorf("%w: invalid authorization header", domain.ErrNotAuthenticated))
		}

		claims := jwt.MapClaims{}
		tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
			if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
				return nil, jwt.ErrTokenSignatureInvalid
			}
			return []byte(s.secret), nil
		})
		if err != nil || !tkn.Valid {
			return failErr(c, fmt.Errorf("%w: invalid token", domain.ErrNotAuthenticated))
		}

		c.Set("email", claims["email"])
		return next(c)
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) login(c echo.Context) error {
	s.mu.Lock()
	s.LoginCalls++
	s.mu.Unlock()

	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "BAD_REQUEST", "invalid payload")
	}

	for _, acct := range s.accounts {
		if acct.email != req.Email {
			continue
		}
		if bcrypt.CompareHashAndPassword(acct.passwordHash, []byte(req.Password)) != nil {
			break
		}
		token, err := s.issueToken(acct.principal)
		if err != nil {
			return fail(c, http.StatusInternalServerError, "INTERNAL", "token issuance failed")
		}
		return ok(c, map[string]any{"token": token, "admin": acct.principal})
	}
	return failErr(c, domain.ErrInvalidCredentials)
}

func (s *Server) issueToken(p domain.Principal) (string, error) {
	claims := jwt.MapClaims{
		"sub":   p.ID,
		"email": p.Email,
		"role":  p.Role,
		"exp":   time.Now().Add(tokenTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.secret))
}

func (s *Server) logout(c echo.Context) error {
	return ok(c, nil)
}

func (s *Server) profile(c echo.Context) error {
	email, _ := c.Get("email").(string)
	for _, acct := range s.accounts {
		if acct.email == email {
			return ok(c, acct.principal)
		}
	}
	return fail(c, http.StatusUnauthorized, "UNAUTHORIZED", "unknown principal")
}

// --- Loans ---

func (s *Server) listLoans(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	loans := make([]domain.Loan, 0, len(s.loans))
	for _, l := range s.loans {
		loans = append(loans, *l)
	}
	return ok(c, domain.LoanList{
		Loans:      loans,
		Pagination: domain.Pagination{Total: len(loans), Page: 1, Limit: 10, Pages: 1},
	})
}

func (s *Server) getLoan(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	loan, exists := s.loans[c.Param("id")]
	if !exists {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "loan not found")
	}
	return ok(c, *loan)
}

type statusChange struct {
	Status string `json:"status"`
	Note   string `json:"note"`
}

func (s *Server) updateLoanStatus(c echo.Context) error {
	var req statusChange
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "BAD_REQUEST", "invalid payload")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	loan, exists := s.loans[c.Param("id")]
	if !exists {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "loan not found")
	}
	next := domain.LoanStatus(req.Status)
	if !canTransition(loan.Status, next) {
		return failErr(c, fmt.Errorf("%w: cannot move loan from %s to %s",
			domain.ErrInvalidTransition, loan.Status, req.Status))
	}
	loan.Status = next
	loan.UpdatedAt = time.Now().UTC()
	return ok(c, *loan)
}

type bulkRequest struct {
	IDs    []string `json:"ids"`
	Action string   `json:"action"`
}

// bulkActions maps a bulk action to its target status.
var bulkActions = map[string]domain.LoanStatus{
	"approve": domain.LoanApproved,
	"reject":  domain.LoanRejected,
}

func (s *Server) bulkLoans(c echo.Context) error {
	var req bulkRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "BAD_REQUEST", "invalid payload")
	}
	target, known := bulkActions[req.Action]
	if !known {
		return fail(c, http.StatusBadRequest, "BAD_REQUEST", "unknown action: "+req.Action)
	}

	// Bulk moves are reserved for the admin tier; individual reviewers go
	// loan by loan.
	if role := s.callerRole(c); role != domain.RoleSuperAdmin && role != domain.RoleAdmin {
		return failErr(c, domain.ErrForbidden)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	result := domain.BulkResult{}
	for _, id := range req.IDs {
		loan, exists := s.loans[id]
		switch {
		case !exists:
			result.Results = append(result.Results, domain.BulkItemResult{ID: id, Reason: "loan not found"})
			result.Failed++
		case !canTransition(loan.Status, target):
			result.Results = append(result.Results, domain.BulkItemResult{
				ID: id, Reason: "cannot move loan from " + string(loan.Status) + " to " + string(target),
			})
			result.Failed++
		default:
			loan.Status = target
			loan.UpdatedAt = time.Now().UTC()
			result.Results = append(result.Results, domain.BulkItemResult{ID: id, Success: true})
			result.Succeeded++
		}
	}
	return ok(c, result)
}

// --- Investments / wallets / admins ---

func (s *Server) listInvestments(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ok(c, domain.InvestmentList{
		Investments: s.investments,
		Pagination:  domain.Pagination{Total: len(s.investments), Page: 1, Limit: 10, Pages: 1},
	})
}

// listWallets is a legacy endpoint: it returns the payload directly as the
// body, with no envelope at all.
func (s *Server) listWallets(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return c.JSON(http.StatusOK, domain.WalletList{
		Wallets:    s.wallets,
		Pagination: domain.Pagination{Total: len(s.wallets), Page: 1, Limit: 10, Pages: 1},
	})
}

func (s *Server) getAdmin(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	admin, exists := s.admins[c.Param("id")]
	if !exists {
		// Must stay a hard failure on the client side.
		return failErr(c, domain.ErrAdminNotFound)
	}
	return ok(c, *admin)
}

type createAdminRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (s *Server) createAdmin(c echo.Context) error {
	var req createAdminRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "BAD_REQUEST", "invalid payload")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, admin := range s.admins {
		if admin.Email == req.Email {
			return failErr(c, domain.ErrAdminExists)
		}
	}

	now := time.Now().UTC()
	admin := &domain.Admin{
		ID: fmt.Sprintf("adm_%d", len(s.admins)+1), Name: req.Name, Email: req.Email,
		Role: req.Role, Status: domain.AdminActive, CreatedAt: now, UpdatedAt: now,
	}
	s.admins[admin.ID] = admin
	return c.JSON(http.StatusCreated, successEnvelope{Success: true, Data: *admin})
}
