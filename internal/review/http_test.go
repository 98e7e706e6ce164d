package review_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UjjwalTomar0808/artistly/internal/platform/constants"
	"github.com/UjjwalTomar0808/artistly/internal/platform/middleware"
	"github.com/UjjwalTomar0808/artistly/internal/review"
)

func newRouter() http.Handler {
	handler := review.NewHandler(newService())

	router := chi.NewRouter()
	router.Use(middleware.Session(time.Hour, false))
	router.Route("/dashboard", handler.RegisterRoutes)
	return router
}

func serve(t *testing.T, router http.Handler, session, method, target, body string) (int, json.RawMessage) {
	t.Helper()

	request := httptest.NewRequest(method, target, strings.NewReader(body))
	request.Header.Set(constants.HeaderXSessionID, session)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope), recorder.Body.String())
	return recorder.Code, envelope.Data
}

func TestHandler_ListSubmissions(t *testing.T) {
	router := newRouter()

	code, data := serve(t, router, testSession, http.MethodGet, "/dashboard/submissions?q=LISA", "")
	require.Equal(t, http.StatusOK, code)

	var result review.Result
	require.NoError(t, json.Unmarshal(data, &result))
	assert.Equal(t, []int{3}, ids(result.Items))
	assert.Equal(t, 5, result.Stats.Total)

	code, _ = serve(t, router, testSession, http.MethodGet, "/dashboard/submissions?status=archived", "")
	assert.Equal(t, http.StatusBadRequest, code)
}

/*
TestHandler_DecisionFlow approves via the shortcut, then rejects via PATCH and
expects a conflict.
*/
func TestHandler_DecisionFlow(t *testing.T) {
	router := newRouter()

	code, data := serve(t, router, testSession, http.MethodPost, "/dashboard/submissions/1/approve", "")
	require.Equal(t, http.StatusOK, code)

	var submission review.Submission
	require.NoError(t, json.Unmarshal(data, &submission))
	assert.Equal(t, review.StatusApproved, submission.Status)

	code, _ = serve(t, router, testSession, http.MethodPatch, "/dashboard/submissions/1", `{"status":"rejected"}`)
	assert.Equal(t, http.StatusConflict, code)

	code, data = serve(t, router, testSession, http.MethodPatch, "/dashboard/submissions/3", `{"status":"rejected"}`)
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, json.Unmarshal(data, &submission))
	assert.Equal(t, review.StatusRejected, submission.Status)

	code, data = serve(t, router, testSession, http.MethodGet, "/dashboard/stats", "")
	require.Equal(t, http.StatusOK, code)
	var stats review.Stats
	require.NoError(t, json.Unmarshal(data, &stats))
	assert.Equal(t, review.Stats{Total: 5, Pending: 0, Approved: 3, Rejected: 2}, stats)

	// Another session still sees the seed.
	code, data = serve(t, router, "0192d1c4-6f3a-7b2e-9c41-000000000000", http.MethodGet, "/dashboard/submissions/1", "")
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, json.Unmarshal(data, &submission))
	assert.Equal(t, review.StatusPending, submission.Status)
}

func TestHandler_Errors(t *testing.T) {
	router := newRouter()

	tests := []struct {
		name   string
		method string
		target string
		body   string
		want   int
	}{
		{"unknown submission", http.MethodPost, "/dashboard/submissions/999/reject", "", http.StatusNotFound},
		{"bad id", http.MethodGet, "/dashboard/submissions/abc", "", http.StatusBadRequest},
		{"bad json", http.MethodPatch, "/dashboard/submissions/1", `{`, http.StatusBadRequest},
		{"pending target", http.MethodPatch, "/dashboard/submissions/1", `{"status":"pending"}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _ := serve(t, router, testSession, tt.method, tt.target, tt.body)
			assert.Equal(t, tt.want, code)
		})
	}
}
