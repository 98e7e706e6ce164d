package review_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UjjwalTomar0808/artistly/internal/catalog"
	"github.com/UjjwalTomar0808/artistly/internal/platform/apperr"
	"github.com/UjjwalTomar0808/artistly/internal/review"
)

func newService() *review.Service {
	return review.NewService(
		review.SeedSubmissions(),
		review.NewMemoryStore(testTTL),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
}

func TestService_List(t *testing.T) {
	service := newService()

	result, err := service.List(context.Background(), testSession, review.Query{Status: review.StatusPending})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, ids(result.Items))
	assert.Equal(t, 2, result.Count)
	assert.Equal(t, review.Stats{Total: 5, Pending: 2, Approved: 2, Rejected: 1}, result.Stats)
}

/*
TestService_SetStatus walks a pending submission through a decision and checks
every failure path.
*/
func TestService_SetStatus(t *testing.T) {
	ctx := context.Background()
	service := newService()

	submission, err := service.SetStatus(ctx, testSession, 3, review.StatusApproved)
	require.NoError(t, err)
	assert.Equal(t, review.StatusApproved, submission.Status)
	assert.Equal(t, "Lisa Chang", submission.Name)

	stats, err := service.Stats(ctx, testSession)
	require.NoError(t, err)
	assert.Equal(t, review.Stats{Total: 5, Pending: 1, Approved: 3, Rejected: 1}, stats)

	tests := []struct {
		name       string
		id         int
		status     review.Status
		wantStatus int
	}{
		{"already decided in session", 3, review.StatusRejected, http.StatusConflict},
		{"decided in seed", 2, review.StatusRejected, http.StatusConflict},
		{"unknown id", 999, review.StatusApproved, http.StatusNotFound},
		{"pending is not a decision", 1, review.StatusPending, http.StatusBadRequest},
		{"garbage status", 1, review.Status("maybe"), http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.SetStatus(ctx, testSession, tt.id, tt.status)
			appErr := apperr.As(err)
			require.NotNil(t, appErr)
			assert.Equal(t, tt.wantStatus, appErr.HTTPStatus)
		})
	}

	after, err := service.Stats(ctx, testSession)
	require.NoError(t, err)
	assert.Equal(t, stats, after, "failed transitions leave the workspace unchanged")
}

func TestService_SessionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	service := newService()

	_, err := service.SetStatus(ctx, testSession, 1, review.StatusRejected)
	require.NoError(t, err)

	mine, err := service.Get(ctx, testSession, 1)
	require.NoError(t, err)
	assert.Equal(t, review.StatusRejected, mine.Status)

	theirs, err := service.Get(ctx, "other-session", 1)
	require.NoError(t, err)
	assert.Equal(t, review.StatusPending, theirs.Status)

	_, err = service.Get(ctx, testSession, 42)
	assert.Equal(t, http.StatusNotFound, apperr.As(err).HTTPStatus)
}

func TestParseQuery(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		want    review.Query
		wantErr bool
	}{
		{"empty", "", review.Query{}, false},
		{"all sentinels", "status=all&category=all", review.Query{}, false},
		{"trimmed term", "q=+lisa+", review.Query{Term: "lisa"}, false},
		{"status case", "status=Pending", review.Query{Status: review.StatusPending}, false},
		{"category slug", "category=djs", review.Query{Category: catalog.CategoryDJs}, false},
		{"category name", "category=Speakers", review.Query{Category: catalog.CategorySpeakers}, false},
		{"unknown status", "status=archived", review.Query{}, true},
		{"unknown category", "category=jugglers", review.Query{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			require.NoError(t, err)

			got, err := review.ParseQuery(values)
			if tt.wantErr {
				assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
