package client

import (
	"context"
	"testing"

	"github.com/crestfin/admin-console/internal/core/domain"
)

func TestNotifications_List_UnimplementedEndpointDegrades(t *testing.T) {
	// The fake backend does not serve /notifications at all; the feed must
	// degrade to an empty success, never a failure.
	console := loginToFake(t)

	res := console.Notifications.List(context.Background(), nil)
	if !res.Success {
		t.Fatalf("expected soft success, got %+v", res.Err)
	}
	if res.Data == nil || len(res.Data) != 0 {
		t.Fatalf("expected an empty feed, got %#v", res.Data)
	}
}

func TestNotifications_MarkRead_404StaysHard(t *testing.T) {
	console := loginToFake(t)

	res := console.Notifications.MarkRead(context.Background(), "n1")
	if res.Success {
		t.Fatalf("mark-read is not an optional endpoint; 404 must fail")
	}
	if res.Err.Class != domain.ClassNotFound {
		t.Fatalf("class = %s", res.Err.Class)
	}
}

func TestDashboard_OptionalAggregates(t *testing.T) {
	console := loginToFake(t)

	stats := console.Dashboard.Stats(context.Background())
	if !stats.Success {
		t.Fatalf("stats must degrade to zero values: %+v", stats.Err)
	}
	if stats.Data != (domain.DashboardStats{}) {
		t.Fatalf("expected zero-valued stats, got %+v", stats.Data)
	}

	activity := console.Dashboard.RecentActivity(context.Background())
	if !activity.Success || activity.Data == nil || len(activity.Data) != 0 {
		t.Fatalf("expected empty activity feed, got %+v", activity)
	}
}
