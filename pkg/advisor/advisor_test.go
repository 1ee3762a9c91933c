package advisor

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const generalBlock = "General Recommendation:-\n" +
	"- Keep dependencies up to date to avoid known vulnerabilities.\n" +
	"- Implement proper error handling to avoid leaking sensitive information.\n" +
	"- Regularly perform security testing and code reviews.\n"

func render(t *testing.T, text string) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf, true).Print(text))
	return buf.String()
}

func TestPrint_NoKeywords(t *testing.T) {
	assert.Equal(t, generalBlock, render(t, "Checking main.c ...\nNo issues found.\n"))
	assert.Equal(t, generalBlock, render(t, ""))
}

func TestPrint_XSSOnce(t *testing.T) {
	for _, text := range []string{
		"XSS",
		"warning: possible XSS in handler\n",
		"line 1\nline 2\nreflected XSS",
	} {
		out := render(t, text)
		want := "Recommendation: Sanitize user inputs to prevent Cross-Site Scripting (XSS).\n" + generalBlock
		assert.Equal(t, want, out, "input %q", text)
	}
}

func TestPrint_RepeatedLabelEmittedOnce(t *testing.T) {
	out := render(t, strings.Repeat("CSRF token missing\n", 5))
	assert.Equal(t, 1, strings.Count(out, "Recommendation: Implement CSRF protection"))
}

func TestPrint_TableOrderNotInputOrder(t *testing.T) {
	out := render(t, "first: CSRF\nthen: SQL Injection\n")
	sql := strings.Index(out, "SQL Injection.")
	csrf := strings.Index(out, "Cross-Site Request Forgery")
	require.NotEqual(t, -1, sql)
	require.NotEqual(t, -1, csrf)
	assert.Less(t, sql, csrf)
	assert.True(t, strings.HasSuffix(out, generalBlock))
}

func TestMatch_CaseSensitive(t *testing.T) {
	assert.Empty(t, Match("sql injection, xss, csrf"))
	assert.Len(t, Match("SQL Injection"), 1)
}

func TestMatch_AllCategories(t *testing.T) {
	var labels []string
	for _, c := range Categories() {
		labels = append(labels, c.Label)
	}
	// Reverse so input order differs from table order.
	for i, j := 0, len(labels)-1; i < j; i, j = i+1, j-1 {
		labels[i], labels[j] = labels[j], labels[i]
	}

	matched := Match(strings.Join(labels, "\n"))
	assert.Equal(t, Categories(), matched)
	assert.Len(t, matched, 12)
}

func TestAnnotate(t *testing.T) {
	recs := Annotate("B608: Possible SQL Injection vector; Weak Cryptography (md5)")
	assert.Equal(t, []string{
		"Use parameterized queries to prevent SQL Injection.",
		"Use strong, industry-standard cryptographic algorithms and libraries.",
	}, recs)
	assert.Empty(t, Annotate("clean"))
}

func TestCategoriesIsCopy(t *testing.T) {
	c := Categories()
	c[0].Label = "changed"
	assert.Equal(t, "SQL Injection", Categories()[0].Label)
	assert.Len(t, GeneralRecommendations(), 3)
}

func TestPrint_Color(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf, false).Print("XSS"))
	out := buf.String()
	assert.Contains(t, out, "\x1b[")
	assert.Contains(t, out, "Sanitize user inputs")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestPrint_WriteError(t *testing.T) {
	err := NewPrinter(failingWriter{}, true).Print("XSS")
	assert.Error(t, err)
}
