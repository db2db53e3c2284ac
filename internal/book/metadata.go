package book

import (
	"fmt"
	"strings"
	"time"
)

// Metadata holds the descriptive fields of a book
type Metadata struct {
	Title       string
	Author      string
	Publisher   string
	PubDate     *time.Time // nil when unknown
	Language    string
	Identifier  string // e.g., ISBN
	Description string
}

// Validate checks field presence and returns every problem in check order.
// Title and author are required; a blank identifier is reported as well.
// All checks run, the messages accumulate.
func (m *Metadata) Validate() (bool, []string) {
	var problems []string

	if strings.TrimSpace(m.Title) == "" {
		problems = append(problems, "Title is required.")
	}
	if strings.TrimSpace(m.Author) == "" {
		problems = append(problems, "Author is required.")
	}
	if strings.TrimSpace(m.Identifier) == "" {
		problems = append(problems, "Identifier (e.g., ISBN) is recommended.")
	}

	return len(problems) == 0, problems
}

// Describe returns a multi-line rendering of all fields in fixed order
func (m *Metadata) Describe() string {
	date := "N/A"
	if m.PubDate != nil {
		date = m.PubDate.Format("2006-01-02")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Title: %s\n", m.Title)
	fmt.Fprintf(&b, "Author: %s\n", m.Author)
	fmt.Fprintf(&b, "Publisher: %s\n", m.Publisher)
	fmt.Fprintf(&b, "Published: %s\n", date)
	fmt.Fprintf(&b, "Language: %s\n", m.Language)
	fmt.Fprintf(&b, "Identifier: %s\n", m.Identifier)
	fmt.Fprintf(&b, "Description: %s", m.Description)
	return b.String()
}
