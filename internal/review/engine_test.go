package review_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UjjwalTomar0808/artistly/internal/catalog"
	"github.com/UjjwalTomar0808/artistly/internal/review"
)

func ids(submissions []review.Submission) []int {
	out := make([]int, 0, len(submissions))
	for _, submission := range submissions {
		out = append(out, submission.ID)
	}
	return out
}

/*
TestFilter covers term folding across name and email combined with the exact filters.
*/
func TestFilter(t *testing.T) {
	tests := []struct {
		name  string
		query review.Query
		want  []int
	}{
		{"zero query", review.Query{}, []int{1, 2, 3, 4, 5}},
		{"lowercase name", review.Query{Term: "lisa"}, []int{3}},
		{"uppercase term", review.Query{Term: "CARLOS"}, []int{2}},
		{"email only", review.Query{Term: "dj.alex@"}, []int{4}},
		{"shared email domain", review.Query{Term: "@email.com"}, []int{1, 2, 3, 4}},
		{"pending", review.Query{Status: review.StatusPending}, []int{1, 3}},
		{
			"pending musicians",
			review.Query{Status: review.StatusPending, Category: catalog.CategoryMusicians},
			[]int{1},
		},
		{"approved musicians", review.Query{Status: review.StatusApproved, Category: catalog.CategoryMusicians}, []int{5}},
		{"term and status disagree", review.Query{Term: "lisa", Status: review.StatusRejected}, []int{}},
		{"no match", review.Query{Term: "zebra"}, []int{}},
	}

	submissions := review.SeedSubmissions()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(review.Filter(submissions, tt.query)))
		})
	}
}

func TestFilter_Idempotent(t *testing.T) {
	submissions := review.SeedSubmissions()
	query := review.Query{Term: "email", Status: review.StatusPending}

	once := review.Filter(submissions, query)
	assert.Equal(t, once, review.Filter(once, query))
	assert.Equal(t, review.SeedSubmissions(), submissions)
}

func TestQuery_Clear(t *testing.T) {
	query := review.Query{Term: "a", Status: review.StatusApproved, Category: catalog.CategoryDJs}
	assert.True(t, query.HasActive())
	assert.Equal(t, review.Query{}, query.Clear())
	assert.False(t, query.Clear().HasActive())
}

/*
TestSetStatus_ChangesOnlyTarget verifies that one record changes and the input stays intact.
*/
func TestSetStatus_ChangesOnlyTarget(t *testing.T) {
	submissions := review.SeedSubmissions()

	updated, err := review.SetStatus(submissions, 3, review.StatusApproved)
	require.NoError(t, err)
	require.Len(t, updated, len(submissions))

	for index := range submissions {
		if submissions[index].ID == 3 {
			assert.Equal(t, review.StatusApproved, updated[index].Status)
			expected := submissions[index]
			expected.Status = review.StatusApproved
			assert.Equal(t, expected, updated[index])
			continue
		}
		assert.Equal(t, submissions[index], updated[index])
	}

	assert.Equal(t, review.SeedSubmissions(), submissions, "input must not be modified")
}

func TestSetStatus_UnknownID(t *testing.T) {
	submissions := review.SeedSubmissions()

	updated, err := review.SetStatus(submissions, 999, review.StatusApproved)
	assert.ErrorIs(t, err, review.ErrSubmissionNotFound)
	assert.Equal(t, review.SeedSubmissions(), updated)
}

func TestSetStatus_InvalidStatus(t *testing.T) {
	_, err := review.SetStatus(review.SeedSubmissions(), 1, review.StatusPending)
	assert.ErrorIs(t, err, review.ErrInvalidStatus)
}

func TestComputeStats(t *testing.T) {
	submissions := review.SeedSubmissions()
	assert.Equal(t, review.Stats{Total: 5, Pending: 2, Approved: 2, Rejected: 1}, review.ComputeStats(submissions))

	updated, err := review.SetStatus(submissions, 1, review.StatusRejected)
	require.NoError(t, err)
	assert.Equal(t, review.Stats{Total: 5, Pending: 1, Approved: 2, Rejected: 2}, review.ComputeStats(updated))

	assert.Equal(t, review.Stats{}, review.ComputeStats(nil))
}
