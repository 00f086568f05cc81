package domain

import (
	"fmt"
	"time"
)

// Category classifies a saved insight entry.
type Category string

// Insight categories.
const (
	// CategoryInsight is conceptual or legal reasoning.
	CategoryInsight Category = "insight"

	// CategoryArgument is a structured position.
	CategoryArgument Category = "argument"

	// CategoryTodo is a task. It is never consulted when assembling context.
	CategoryTodo Category = "todo"
)

// IsValid returns true if the category is recognised.
func (c Category) IsValid() bool {
	switch c {
	case CategoryInsight, CategoryArgument, CategoryTodo:
		return true
	default:
		return false
	}
}

// ParseCategory converts a string into a Category.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", fmt.Errorf("%w: unknown category %q", ErrInvalidInput, s)
	}
	return c, nil
}

// Insight is a saved insight, argument or todo owned by a case.
// Content is never mutated; only Completed may change (todos).
type Insight struct {
	ID        string
	CaseID    string
	Content   string
	Category  Category
	Tags      []string
	Completed bool
	CreatedAt time.Time
}
