package review

import "github.com/UjjwalTomar0808/artistly/internal/catalog"

// Status is the review state of a submission. Decisions are one-way:
// pending moves to approved or rejected and stays there.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Statuses lists every status in display order.
var Statuses = []Status{StatusPending, StatusApproved, StatusRejected}

// Decided reports whether a manager has already ruled on the submission.
func (status Status) Decided() bool {
	return status == StatusApproved || status == StatusRejected
}

// Submission is an application from a prospective artist awaiting review.
// Status is the only field that ever changes.
type Submission struct {
	ID          int              `json:"id"`
	Name        string           `json:"name"`
	Category    catalog.Category `json:"category"`
	Location    string           `json:"location"`
	FeeRange    string           `json:"fee_range"`
	Status      Status           `json:"status"`
	SubmittedAt string           `json:"submitted_at"` // YYYY-MM-DD
	Email       string           `json:"email"`
	Phone       string           `json:"phone"`
}

// Stats summarizes a submission collection by status.
type Stats struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}

const (
	FieldTerm     = "q"
	FieldStatus   = "status"
	FieldCategory = "category"
)
