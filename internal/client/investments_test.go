package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/crestfin/admin-console/internal/core/domain"
)

func TestInvestments_List_PaginationPassthrough(t *testing.T) {
	var query string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.RawQuery
		_, _ = w.Write([]byte(`{
			"success": true,
			"data": {
				"investments": [{"id":"I9","reference":"IV-0009","amount":1000,"status":"active"}],
				"pagination": {"total":42,"page":2,"limit":10,"pages":5}
			}
		}`))
	})
	inv := &InvestmentsClient{rest: c}

	res := inv.List(context.Background(), Params{"page": 2})
	if !res.Success {
		t.Fatalf("list failed: %+v", res.Err)
	}
	if query != "page=2" {
		t.Fatalf("query = %q", query)
	}
	if res.Data.Pagination.Pages != 5 || res.Data.Pagination.Total != 42 {
		t.Fatalf("pagination mangled: %+v", res.Data.Pagination)
	}
	if len(res.Data.Investments) != 1 || res.Data.Investments[0].Status != domain.InvestmentActive {
		t.Fatalf("items mangled: %+v", res.Data.Investments)
	}
}

func TestInvestments_ListAgainstFakeBackend(t *testing.T) {
	console := loginToFake(t)

	res := console.Investments.List(context.Background(), nil)
	if !res.Success {
		t.Fatalf("list failed: %+v", res.Err)
	}
	if len(res.Data.Investments) != 2 {
		t.Fatalf("expected 2 investments, got %d", len(res.Data.Investments))
	}
}

func TestInvestments_CreatePlan_ValidationShortCircuits(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("invalid input must not reach the backend")
	})
	inv := &InvestmentsClient{rest: c}

	res := inv.CreatePlan(context.Background(), InvestmentPlanInput{})
	if res.Success {
		t.Fatalf("expected validation failure")
	}
}
