package handlers

import (
	"errors"
	"invoice-dashboard/internal/models"
	"invoice-dashboard/internal/testutil"
	"log/slog"
	"net/http"
	"testing"

	"go.uber.org/mock/gomock"
)

func TestDashboardHandler(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/dashboard")
	defer tc.Finish()

	tc.ExpectState(models.SessionState{Authenticated: true, Username: "admin"})
	tc.MockSession.EXPECT().PopFlash(tc.AppContext).Return(models.Flash{Level: models.FlashSuccess, Message: "Login successful!"}, true)
	tc.MockStats.EXPECT().DashboardStats(gomock.Any()).Return(models.DashboardStats{
		TotalInvoices:     42,
		TotalVendors:      7,
		RecentUploads:     3,
		AverageConfidence: 0.912,
	})

	tc.CallHandler(DashboardHandler)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertBodyContains(t, "Login successful!")
	tc.AssertBodyContains(t, "42")
	tc.AssertBodyContains(t, "91.2%")
	tc.AssertBodyContains(t, "admin")
}

func TestDashboardHandler_ZeroStats(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/dashboard")
	defer tc.Finish()

	tc.ExpectLoggedIn("admin")
	tc.MockStats.EXPECT().DashboardStats(gomock.Any()).Return(models.DashboardStats{})

	tc.CallHandler(DashboardHandler)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertBodyContains(t, "0.0%")
}

func TestDashboardHandler_RenderFailure(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/dashboard")
	defer tc.Finish()

	tc.WithRenderer(testutil.FailingRenderer{Err: errTemplate})
	tc.ExpectLoggedIn("admin")
	tc.MockStats.EXPECT().DashboardStats(gomock.Any()).Return(models.DashboardStats{})

	tc.CallHandler(DashboardHandler)

	tc.AssertStatus(t, http.StatusInternalServerError)
	tc.AssertLogContains(t, slog.LevelError, "failed to render page")
}

var errTemplate = errors.New("template exploded")
