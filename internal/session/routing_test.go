package session_test

import (
	"testing"

	"github.com/growvy/onboard/internal/session"
	"github.com/growvy/onboard/pkg/types"
)

func TestRouteFor_DecisionTable(t *testing.T) {
	cases := []struct {
		name string
		st   types.UserStatus
		want session.Route
	}{
		{
			name: "admin goes to dashboard regardless of profile and payment",
			st:   types.UserStatus{Role: "admin"},
			want: session.RouteAdminDashboard,
		},
		{
			name: "paid user with profile goes to profile page",
			st:   types.UserStatus{Role: "user", ProfileStatus: "YES", Payment: "Paid"},
			want: session.RouteProfile,
		},
		{
			name: "verifying payment also lands on profile page",
			st:   types.UserStatus{Role: "user", ProfileStatus: "YES", Payment: "Verifying"},
			want: session.RouteProfile,
		},
		{
			name: "pending payment goes to pricing",
			st:   types.UserStatus{Role: "user", ProfileStatus: "YES", Payment: "Pending"},
			want: session.RoutePricing,
		},
		{
			name: "no profile goes to resume upload",
			st:   types.UserStatus{Role: "user", ProfileStatus: "NO"},
			want: session.RouteResumeUpload,
		},
		{
			name: "empty profile status goes to resume upload",
			st:   types.UserStatus{Role: "user"},
			want: session.RouteResumeUpload,
		},
		{
			name: "admin with pending payment still goes to dashboard",
			st:   types.UserStatus{Role: "admin", ProfileStatus: "YES", Payment: "Pending"},
			want: session.RouteAdminDashboard,
		},
		{
			name: "unknown payment state on a complete profile defaults to pricing",
			st:   types.UserStatus{Role: "user", ProfileStatus: "YES", Payment: ""},
			want: session.RoutePricing,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := session.RouteFor(c.st); got != c.want {
				t.Errorf("RouteFor(%+v) = %q, want %q", c.st, got, c.want)
			}
		})
	}
}
