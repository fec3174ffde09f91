package session

import "github.com/growvy/onboard/pkg/types"

// Route is the screen a just-authenticated user lands on.
type Route string

const (
	RouteAdminDashboard Route = "admin"
	RouteProfile        Route = "profile"
	RoutePricing        Route = "pricing"
	RouteResumeUpload   Route = "resume"
)

// RouteFor maps the GET /me status fields to a post-login destination:
//
//	admin      any          any                   -> admin dashboard
//	non-admin  "YES"        "Paid" / "Verifying"  -> profile page
//	non-admin  "YES"        otherwise ("Pending") -> pricing page
//	non-admin  not "YES"    any                   -> resume-upload step
func RouteFor(st types.UserStatus) Route {
	if st.Role == "admin" {
		return RouteAdminDashboard
	}
	if st.ProfileStatus == "YES" {
		switch st.Payment {
		case "Paid", "Verifying":
			return RouteProfile
		default:
			return RoutePricing
		}
	}
	return RouteResumeUpload
}
