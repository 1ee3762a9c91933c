// Package advisor turns analyzer output into remediation advice by looking
// for well-known vulnerability category names in it.
package advisor

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Category pairs a label searched for in analyzer output with the advice
// printed when it is found.
type Category struct {
	Label          string `json:"label"`
	Recommendation string `json:"recommendation"`
}

// categories is checked in this order and the output follows it.
var categories = []Category{
	{"SQL Injection", "Use parameterized queries to prevent SQL Injection."},
	{"XSS", "Sanitize user inputs to prevent Cross-Site Scripting (XSS)."},
	{"Command Injection", "Validate and sanitize user inputs to prevent Command Injection."},
	{"Path Traversal", "Validate file paths and restrict file access to prevent Path Traversal."},
	{"CSRF", "Implement CSRF protection to prevent Cross-Site Request Forgery (CSRF)."},
	{"Buffer Overflow", "Use safe functions and perform bounds checking to prevent Buffer Overflow."},
	{"Insecure Transport", "Use TLS/SSL to encrypt data in transit and avoid using insecure protocols."},
	{"Weak Cryptography", "Use strong, industry-standard cryptographic algorithms and libraries."},
	{"Unvalidated Redirects and Forwards", "Validate URLs and use safe methods to handle redirects and forwards."},
	{"Security Misconfiguration", "Ensure secure configuration for servers, database, and application framework."},
	{"Sensitive Data Exposure", "Encrypt sensitive data at rest and in transit, and use secure storage mechanisms."},
	{"Improper Access Control", "Implement proper authentication and authorization checks to prevent unauthorized access."},
}

var general = []string{
	"Keep dependencies up to date to avoid known vulnerabilities.",
	"Implement proper error handling to avoid leaking sensitive information.",
	"Regularly perform security testing and code reviews.",
}

const (
	RecommendationPrefix = "Recommendation: "
	GeneralHeader        = "General Recommendation:-"
)

// Categories returns the category table in match order.
func Categories() []Category {
	return append([]Category(nil), categories...)
}

func GeneralRecommendations() []string {
	return append([]string(nil), general...)
}

// Match returns the categories whose label occurs in text, in table order.
// Matching is case-sensitive.
func Match(text string) []Category {
	var found []Category
	for _, c := range categories {
		if strings.Contains(text, c.Label) {
			found = append(found, c)
		}
	}
	return found
}

// Annotate returns one recommendation per matched category.
func Annotate(text string) []string {
	matched := Match(text)
	recs := make([]string, 0, len(matched))
	for _, c := range matched {
		recs = append(recs, c.Recommendation)
	}
	return recs
}

// Printer writes the advice block for a piece of analyzer output.
type Printer struct {
	Out     io.Writer
	NoColor bool
}

func NewPrinter(out io.Writer, noColor bool) *Printer {
	return &Printer{Out: out, NoColor: noColor}
}

// Print writes the category recommendations followed by the general block.
func (p *Printer) Print(text string) error {
	prefix := color.New(color.FgYellow, color.Bold)
	header := color.New(color.FgCyan, color.Bold)
	if p.NoColor {
		prefix.DisableColor()
		header.DisableColor()
	} else {
		prefix.EnableColor()
		header.EnableColor()
	}

	for _, rec := range Annotate(text) {
		if _, err := fmt.Fprintf(p.Out, "%s%s\n", prefix.Sprint(RecommendationPrefix), rec); err != nil {
			return fmt.Errorf("failed to write recommendation: %w", err)
		}
	}

	if _, err := fmt.Fprintln(p.Out, header.Sprint(GeneralHeader)); err != nil {
		return fmt.Errorf("failed to write recommendations: %w", err)
	}
	for _, g := range general {
		if _, err := fmt.Fprintf(p.Out, "- %s\n", g); err != nil {
			return fmt.Errorf("failed to write recommendations: %w", err)
		}
	}
	return nil
}
