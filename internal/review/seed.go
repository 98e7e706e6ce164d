package review

import "github.com/UjjwalTomar0808/artistly/internal/catalog"

// SeedSubmissions returns the applications every review workspace starts from.
func SeedSubmissions() []Submission {
	return []Submission{
		{
			ID:          1,
			Name:        "Emma Wilson",
			Category:    catalog.CategoryMusicians,
			Location:    "Seattle, WA",
			FeeRange:    "$400-800",
			Status:      StatusPending,
			SubmittedAt: "2024-01-15",
			Email:       "emma.wilson@email.com",
			Phone:       "+1 (555) 123-4567",
		},
		{
			ID:          2,
			Name:        "Carlos Martinez",
			Category:    catalog.CategoryDancers,
			Location:    "Phoenix, AZ",
			FeeRange:    "$600-1000",
			Status:      StatusApproved,
			SubmittedAt: "2024-01-14",
			Email:       "carlos.martinez@email.com",
			Phone:       "+1 (555) 234-5678",
		},
		{
			ID:          3,
			Name:        "Lisa Chang",
			Category:    catalog.CategorySpeakers,
			Location:    "Portland, OR",
			FeeRange:    "$1000-2000",
			Status:      StatusPending,
			SubmittedAt: "2024-01-13",
			Email:       "lisa.chang@email.com",
			Phone:       "+1 (555) 345-6789",
		},
		{
			ID:          4,
			Name:        "DJ Alex",
			Category:    catalog.CategoryDJs,
			Location:    "Denver, CO",
			FeeRange:    "$300-600",
			Status:      StatusRejected,
			SubmittedAt: "2024-01-12",
			Email:       "dj.alex@email.com",
			Phone:       "+1 (555) 456-7890",
		},
		{
			ID:          5,
			Name:        "Symphony Strings",
			Category:    catalog.CategoryMusicians,
			Location:    "Nashville, TN",
			FeeRange:    "$1500-2500",
			Status:      StatusApproved,
			SubmittedAt: "2024-01-11",
			Email:       "info@symphonystrings.com",
			Phone:       "+1 (555) 567-8901",
		},
	}
}
