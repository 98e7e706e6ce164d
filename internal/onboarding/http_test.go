package onboarding_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UjjwalTomar0808/artistly/internal/onboarding"
)

func newRouter() http.Handler {
	router := chi.NewRouter()
	router.Route("/onboarding", onboarding.NewHandler(newService(0)).RegisterRoutes)
	return router
}

func post(t *testing.T, router http.Handler, target string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, target, strings.NewReader(string(body))))
	return recorder
}

func TestHandler_Steps(t *testing.T) {
	recorder := httptest.NewRecorder()
	newRouter().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/onboarding/steps", nil))
	require.Equal(t, http.StatusOK, recorder.Code)

	var envelope struct {
		Data []onboarding.Step `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data, 4)
	assert.Equal(t, "Pricing & Availability", envelope.Data[2].Title)
}

func TestHandler_ValidateStep(t *testing.T) {
	router := newRouter()

	recorder := post(t, router, "/onboarding/steps/1/validate", validApplication())
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"data":{"step":1,"valid":true,"next":2}}`, recorder.Body.String())

	recorder = post(t, router, "/onboarding/steps/1/validate", onboarding.Application{Name: "P"})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	recorder = post(t, router, "/onboarding/steps/0/validate", validApplication())
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	recorder = post(t, router, "/onboarding/steps/7/validate", validApplication())
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestHandler_SubmitApplication(t *testing.T) {
	router := newRouter()

	recorder := post(t, router, "/onboarding/applications", validApplication())
	require.Equal(t, http.StatusAccepted, recorder.Code)

	var envelope struct {
		Data onboarding.Acknowledgment `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	assert.NotEmpty(t, envelope.Data.Reference)

	application := validApplication()
	application.Categories = nil
	recorder = post(t, router, "/onboarding/applications", application)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"field":"categories"`)
}
