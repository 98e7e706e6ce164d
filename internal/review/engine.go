package review

import (
	"errors"
	"slices"
	"strings"

	"golang.org/x/text/cases"

	"github.com/UjjwalTomar0808/artistly/internal/catalog"
	"github.com/UjjwalTomar0808/artistly/pkg/slice"
)

var (
	ErrSubmissionNotFound = errors.New("review: submission not found")
	ErrInvalidStatus      = errors.New("review: status must be approved or rejected")
)

// Query narrows the review table. The zero value matches every submission.
type Query struct {
	Term     string           `json:"q,omitempty"`
	Status   Status           `json:"status,omitempty"`
	Category catalog.Category `json:"category,omitempty"`
}

// Clear returns a query with every field unset.
func (q Query) Clear() Query {
	return Query{}
}

// HasActive reports whether any field is set.
func (q Query) HasActive() bool {
	return q != Query{}
}

// Matches reports whether the submission satisfies the query. The term is
// compared case-insensitively against the name or the email.
func (q Query) Matches(submission Submission) bool {
	if q.Term != "" {
		term := fold(q.Term)
		if !strings.Contains(fold(submission.Name), term) && !strings.Contains(fold(submission.Email), term) {
			return false
		}
	}
	if q.Status != "" && submission.Status != q.Status {
		return false
	}
	if q.Category != "" && submission.Category != q.Category {
		return false
	}
	return true
}

// Filter returns the submissions matching q in source order.
func Filter(submissions []Submission, q Query) []Submission {
	return slice.Filter(submissions, q.Matches)
}

// SetStatus returns a copy of submissions in which only the record with id
// carries the new status. The input is never modified.
//
// An unknown id yields the input unchanged together with [ErrSubmissionNotFound].
func SetStatus(submissions []Submission, id int, status Status) ([]Submission, error) {
	if !status.Decided() {
		return submissions, ErrInvalidStatus
	}

	index := slice.Find(submissions, func(submission Submission) bool { return submission.ID == id })
	if index < 0 {
		return submissions, ErrSubmissionNotFound
	}

	updated := slices.Clone(submissions)
	updated[index].Status = status
	return updated, nil
}

// ComputeStats counts the collection by status.
func ComputeStats(submissions []Submission) Stats {
	stats := Stats{Total: len(submissions)}
	for _, submission := range submissions {
		switch submission.Status {
		case StatusPending:
			stats.Pending++
		case StatusApproved:
			stats.Approved++
		case StatusRejected:
			stats.Rejected++
		}
	}
	return stats
}

// fold applies Unicode case folding. A Caser holds state, so one is built per call.
func fold(value string) string {
	return cases.Fold().String(value)
}
