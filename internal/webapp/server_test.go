package webapp

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"creatortrust/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// apiStub fakes the backend. Tokens "creator-tok" and "brand-tok" resolve to
// the matching identities; everything else is rejected.
type apiStub struct {
	srv            *httptest.Server
	detailFetches  int64
	applyCalls     int64
	createStatus   int
	createErrorMsg string
}

func newAPIStub(t *testing.T) *apiStub {
	t.Helper()
	stub := &apiStub{createStatus: http.StatusCreated}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/me", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.Header.Get("Authorization") {
		case "Bearer creator-tok":
			w.Write([]byte(`{"success":true,"data":{"user":{"id":1,"email":"c@x.io","user_type":"creator"},"profile":{"id":20,"user_id":1,"name":"Dana","niche":"Tech"}}}`))
		case "Bearer brand-tok":
			w.Write([]byte(`{"success":true,"data":{"user":{"id":2,"email":"b@x.io","user_type":"brand"},"profile":{"id":10,"user_id":2,"company_name":"Acme"}}}`))
		default:
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"success":false,"error":{"code":"UNAUTHORIZED","message":"Invalid or expired token"}}`))
		}
	})
	mux.HandleFunc("/api/creators/dashboard", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"data":{"profile":{"id":20,"name":"Dana"},"campaigns":[],"total_earnings":150,"pending_earnings":50,"total_campaigns":3,"rating":4.5}}`))
	})
	mux.HandleFunc("/api/brands/dashboard", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"data":{"profile":{"id":10,"company_name":"Acme"},"campaigns":[],"total_spent":900,"pending_amount":100,"total_campaigns":2,"active_campaigns":1}}`))
	})
	mux.HandleFunc("/api/campaigns/100", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&stub.detailFetches, 1)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"data":{"campaign":{"id":100,"brand_id":10,"title":"Launch","status":"open","budget":500,"platforms":["instagram"],"deadline":"2026-09-30T00:00:00Z"},"brand":{"id":10,"company_name":"Acme"},"applicants":0}}`))
	})
	mux.HandleFunc("/api/campaigns/100/apply", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&stub.applyCalls, 1)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"data":{"application":{"id":55,"campaign_id":100,"creator_id":20}}}`))
	})
	mux.HandleFunc("/api/campaigns", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.Method == http.MethodPost {
			if stub.createStatus >= 400 {
				w.WriteHeader(stub.createStatus)
				w.Write([]byte(`{"success":false,"error":{"code":"PROFILE_REQUIRED","message":"` + stub.createErrorMsg + `"}}`))
				return
			}
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"success":true,"data":{"campaign":{"id":101,"brand_id":10,"title":"New","status":"open","deadline":"2026-09-30T00:00:00Z"}}}`))
			return
		}
		w.Write([]byte(`{"success":true,"data":{"campaigns":[]}}`))
	})

	stub.srv = httptest.NewServer(mux)
	t.Cleanup(stub.srv.Close)
	return stub
}

func newWebServer(t *testing.T, stub *apiStub) *Server {
	t.Helper()
	return NewServer(stub.srv.URL, time.Hour)
}

func doRequest(s *Server, method, path, token string, form url.Values) *httptest.ResponseRecorder {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.AddCookie(&http.Cookie{Name: tokenCookie, Value: token})
	}

	w := httptest.NewRecorder()
	s.Engine().ServeHTTP(w, req)
	return w
}

func TestGuard_RedirectsWithoutToken(t *testing.T) {
	s := newWebServer(t, newAPIStub(t))

	w := doRequest(s, http.MethodGet, "/dashboard", "", nil)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestGuard_RejectedTokenClearsCookie(t *testing.T) {
	s := newWebServer(t, newAPIStub(t))

	w := doRequest(s, http.MethodGet, "/dashboard", "stale-tok", nil)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	cleared := false
	for _, ck := range w.Result().Cookies() {
		if ck.Name == tokenCookie && ck.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared, "token cookie should be dropped")
}

func TestDashboard_RoleVariants(t *testing.T) {
	s := newWebServer(t, newAPIStub(t))

	creator := doRequest(s, http.MethodGet, "/dashboard", "creator-tok", nil)
	require.Equal(t, http.StatusOK, creator.Code)
	assert.Contains(t, creator.Body.String(), "Creator dashboard")
	assert.Contains(t, creator.Body.String(), "Dana")

	brand := doRequest(s, http.MethodGet, "/dashboard", "brand-tok", nil)
	require.Equal(t, http.StatusOK, brand.Code)
	assert.Contains(t, brand.Body.String(), "Brand dashboard")
	assert.Contains(t, brand.Body.String(), "Acme")
}

func TestApply_MutationThenRedirectRefetches(t *testing.T) {
	stub := newAPIStub(t)
	s := newWebServer(t, stub)

	w := doRequest(s, http.MethodPost, "/campaigns/100/apply", "creator-tok",
		url.Values{"message": {"pick me"}})

	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/campaigns/100", w.Header().Get("Location"))
	assert.EqualValues(t, 1, atomic.LoadInt64(&stub.applyCalls))

	// Follow the redirect: state on screen comes from a fresh fetch.
	before := atomic.LoadInt64(&stub.detailFetches)
	page := doRequest(s, http.MethodGet, "/campaigns/100", "creator-tok", nil)
	require.Equal(t, http.StatusOK, page.Code)
	assert.Greater(t, atomic.LoadInt64(&stub.detailFetches), before)
}

func TestCreateCampaign_PlatformValidationShortCircuits(t *testing.T) {
	stub := newAPIStub(t)
	s := newWebServer(t, stub)

	w := doRequest(s, http.MethodPost, "/campaigns", "brand-tok", url.Values{
		"title":                {"Launch"},
		"description":          {"desc"},
		"budget":               {"500"},
		"duration_days":        {"14"},
		"niche":                {"Tech"},
		"content_requirements": {"1 reel"},
		// no platforms selected
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Select at least one platform")
	// Submitted values survive the re-render.
	assert.Contains(t, w.Body.String(), "Launch")
}

func TestCreateCampaign_ServerErrorKeepsFormValues(t *testing.T) {
	stub := newAPIStub(t)
	stub.createStatus = http.StatusBadRequest
	stub.createErrorMsg = "Brand profile not found. Please create a profile first."
	s := newWebServer(t, stub)

	w := doRequest(s, http.MethodPost, "/campaigns", "brand-tok", url.Values{
		"title":                {"Spring Push"},
		"description":          {"desc"},
		"budget":               {"500"},
		"platforms":            {"instagram"},
		"duration_days":        {"14"},
		"niche":                {"Tech"},
		"content_requirements": {"1 reel"},
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), stub.createErrorMsg)
	assert.Contains(t, w.Body.String(), "Spring Push")
}

func TestViewMode_ExhaustiveOverRoleAndStatus(t *testing.T) {
	cases := []struct {
		name       string
		role       string
		owner      bool
		assigned   bool
		status     string
		wantedMode CampaignViewMode
	}{
		{"creator open", "creator", false, false, "open", ViewApply},
		{"creator assigned to them", "creator", false, true, "assigned", ViewWorkspace},
		{"creator completed", "creator", false, true, "completed", ViewReadOnly},
		{"brand owner open", "brand", true, false, "open", ViewManageOpen},
		{"brand owner in progress", "brand", true, false, "in_progress", ViewAwaitContent},
		{"brand owner submitted", "brand", true, false, "submitted", ViewReviewContent},
		{"brand owner completed", "brand", true, false, "completed", ViewCompletedOwner},
		{"brand non-owner", "brand", false, false, "open", ViewReadOnly},
		{"unknown role", "", false, false, "open", ViewReadOnly},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := campaignViewMode(domain.Role(tc.role), tc.owner, tc.assigned, domain.CampaignStatus(tc.status))
			assert.Equal(t, tc.wantedMode, got)
		})
	}
}
