package domain

import "time"

// Default case seeded into an empty workspace.
const (
	DefaultCaseTitle       = "Sample Case"
	DefaultCaseDescription = "Your first legal case workspace"
)

// Case is a legal matter. It owns evidence, dialogue turns and insights.
type Case struct {
	ID          string
	Title       string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
