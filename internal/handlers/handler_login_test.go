package handlers

import (
	"errors"
	"invoice-dashboard/internal/models"
	"invoice-dashboard/internal/testutil"
	"log/slog"
	"net/http"
	"net/url"
	"testing"

	"go.uber.org/mock/gomock"
)

func TestGETLoginHandler_RendersForm(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/login")
	defer tc.Finish()

	tc.ExpectState(models.SessionState{})
	tc.ExpectNoFlash()

	tc.CallHandler(GETLoginHandler)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertContentType(t, "text/html; charset=utf-8")
	tc.AssertBodyContains(t, `action="/login"`)
	tc.AssertBodyContains(t, "Demo credentials")
}

func TestGETLoginHandler_RedirectsAuthenticatedUsers(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/login")
	defer tc.Finish()

	tc.ExpectState(models.SessionState{Authenticated: true, Username: "admin"})

	tc.CallHandler(GETLoginHandler)

	tc.AssertRedirect(t, http.StatusSeeOther, "/dashboard")
}

func TestGETLoginHandler_HidesHintForCustomAccount(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/login")
	defer tc.Finish()

	tc.AppContext.Config.Auth.Password = "not-the-demo"
	tc.ExpectState(models.SessionState{})
	tc.ExpectNoFlash()

	tc.CallHandler(GETLoginHandler)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertBodyNotContains(t, "Demo credentials")
}

func TestPOSTLoginHandler_MissingFields(t *testing.T) {
	tests := []struct {
		name string
		form url.Values
	}{
		{"both empty", url.Values{}},
		{"missing password", url.Values{"username": {"admin"}}},
		{"missing username", url.Values{"password": {"admin"}}},
		{"whitespace username", url.Values{"username": {"   "}, "password": {"admin"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := testutil.NewFormTestContext(t, http.MethodPost, "/login", tt.form)
			defer tc.Finish()

			tc.ExpectState(models.SessionState{})
			tc.ExpectNoFlash()
			tc.MockSession.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

			tc.CallHandler(POSTLoginHandler)

			tc.AssertStatus(t, http.StatusBadRequest)
			tc.AssertBodyContains(t, "Please enter username and password")
		})
	}
}

func TestPOSTLoginHandler_InvalidCredentials(t *testing.T) {
	form := url.Values{"username": {"admin"}, "password": {"hunter2-wrong"}}
	tc := testutil.NewFormTestContext(t, http.MethodPost, "/login", form)
	defer tc.Finish()

	tc.ExpectState(models.SessionState{})
	tc.ExpectNoFlash()
	tc.MockSession.EXPECT().Login(tc.AppContext, "admin", "hunter2-wrong").Return(false, nil)
	tc.MockSession.EXPECT().PutFlash(gomock.Any(), gomock.Any()).Times(0)

	tc.CallHandler(POSTLoginHandler)

	tc.AssertStatus(t, http.StatusUnauthorized)
	tc.AssertBodyContains(t, "Invalid credentials. Use admin/admin")
	tc.AssertBodyContains(t, `value="admin"`)
	tc.AssertBodyNotContains(t, "hunter2-wrong")
}

func TestPOSTLoginHandler_Success(t *testing.T) {
	form := url.Values{"username": {"admin"}, "password": {"admin"}}
	tc := testutil.NewFormTestContext(t, http.MethodPost, "/login", form)
	defer tc.Finish()

	gomock.InOrder(
		tc.MockSession.EXPECT().Login(tc.AppContext, "admin", "admin").Return(true, nil),
		tc.MockSession.EXPECT().PutFlash(tc.AppContext, models.Flash{Level: models.FlashSuccess, Message: "Login successful!"}),
	)

	tc.CallHandler(POSTLoginHandler)

	tc.AssertRedirect(t, http.StatusSeeOther, "/dashboard")
}

func TestPOSTLoginHandler_SessionStoreFailure(t *testing.T) {
	form := url.Values{"username": {"admin"}, "password": {"admin"}}
	tc := testutil.NewFormTestContext(t, http.MethodPost, "/login", form)
	defer tc.Finish()

	tc.ExpectState(models.SessionState{})
	tc.ExpectNoFlash()
	tc.MockSession.EXPECT().Login(tc.AppContext, "admin", "admin").Return(false, errors.New("failed to store session: redis down"))
	tc.MockSession.EXPECT().PutFlash(gomock.Any(), gomock.Any()).Times(0)

	tc.CallHandler(POSTLoginHandler)

	tc.AssertStatus(t, http.StatusInternalServerError)
	tc.AssertBodyContains(t, "Login is temporarily unavailable")
	tc.AssertBodyNotContains(t, "Invalid credentials")
}

func TestPOSTLogoutHandler(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, http.MethodPost, "/logout")
	defer tc.Finish()

	tc.ExpectState(models.SessionState{Authenticated: true, Username: "admin"})
	tc.MockSession.EXPECT().Logout(tc.AppContext)

	tc.CallHandler(POSTLogoutHandler)

	tc.AssertRedirect(t, http.StatusSeeOther, "/login")
	tc.AssertLogContains(t, slog.LevelInfo, "user logged out")
}

func TestPOSTLogoutHandler_AnonymousIsIdempotent(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, http.MethodPost, "/logout")
	defer tc.Finish()

	tc.ExpectState(models.SessionState{})
	tc.MockSession.EXPECT().Logout(tc.AppContext)

	tc.CallHandler(POSTLogoutHandler)

	tc.AssertRedirect(t, http.StatusSeeOther, "/login")
}

func TestRootHandler(t *testing.T) {
	t.Run("authenticated", func(t *testing.T) {
		tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/")
		defer tc.Finish()

		tc.ExpectState(models.SessionState{Authenticated: true, Username: "admin"})
		tc.CallHandler(RootHandler)
		tc.AssertRedirect(t, http.StatusSeeOther, "/dashboard")
	})

	t.Run("anonymous", func(t *testing.T) {
		tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/")
		defer tc.Finish()

		tc.ExpectState(models.SessionState{})
		tc.CallHandler(RootHandler)
		tc.AssertRedirect(t, http.StatusSeeOther, "/login")
	})
}
