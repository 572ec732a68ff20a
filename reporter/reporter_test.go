package reporter_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/solemn/detector"
	"github.com/viant/solemn/lexicon"
	"github.com/viant/solemn/reporter"
	"github.com/viant/solemn/unit"
	"gopkg.in/yaml.v3"
)

var violations = []*detector.Violation{
	{Kind: unit.KindLiteral, File: "script.js", Line: 3, Column: 18, Text: "badword", Issues: lexicon.Issues{"profanity": 1}},
	{Kind: unit.KindIdentifier, File: "script.js", Line: 2, Column: 9, Text: "badword", Issues: lexicon.Issues{"profanity": 1, "insult": 2}},
}

func TestFormat(t *testing.T) {
	tests := []struct {
		description string
		violation   *detector.Violation
		expect      string
	}{
		{
			description: "single category",
			violation:   violations[0],
			expect:      "VIOLATION (issues: [profanity=1], type: literal, file: script.js, line: 3, col: 18) = badword",
		},
		{
			description: "categories sorted",
			violation:   violations[1],
			expect:      "VIOLATION (issues: [insult=2 profanity=1], type: identifier, file: script.js, line: 2, col: 9) = badword",
		},
		{
			description: "text trimmed, no file",
			violation:   &detector.Violation{Kind: unit.KindComment, Line: 1, Text: "  badword here \n", Issues: lexicon.Issues{"profanity": 1}},
			expect:      "VIOLATION (issues: [profanity=1], type: comment, file: , line: 1, col: 0) = badword here",
		},
	}
	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			assert.Equal(t, tt.expect, reporter.Format(tt.violation))
		})
	}
}

func TestReporter_Report(t *testing.T) {
	buf := &bytes.Buffer{}
	r := reporter.New(buf)
	require.NoError(t, r.Report("script.js", violations))
	assert.Equal(t, reporter.Format(violations[0])+"\n"+reporter.Format(violations[1])+"\n", buf.String())

	buf.Reset()
	require.NoError(t, r.Report("clean.js", nil))
	assert.Equal(t, "SUCCESS: No issues found in clean.js\n", buf.String())
}

func TestReporter_Color(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, reporter.New(buf, reporter.WithColor(true)).Report("script.js", violations[:1]))
	assert.Contains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "(issues: [profanity=1], type: literal, file: script.js, line: 3, col: 18) = badword")
}

func TestReporter_Structured(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, reporter.New(buf, reporter.WithFormat(reporter.FormatJSON)).Report("script.js", violations))
	var document reporter.Document
	require.NoError(t, json.Unmarshal(buf.Bytes(), &document))
	assert.Equal(t, "script.js", document.File)
	assert.Equal(t, violations, document.Violations)

	buf.Reset()
	require.NoError(t, reporter.New(buf, reporter.WithFormat(reporter.FormatYAML)).Report("clean.js", nil))
	document = reporter.Document{}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &document))
	assert.Equal(t, "clean.js", document.File)
	assert.Empty(t, document.Violations)
}

func TestReporter_ReportResults(t *testing.T) {
	results := []*detector.FileResult{
		{Path: "broken.js", Err: errors.New("javascript: syntax error at line 1, column 4: missing identifier")},
		{Path: "clean.js"},
		{Path: "script.js", Violations: violations[:1]},
	}
	buf := &bytes.Buffer{}
	require.NoError(t, reporter.New(buf).ReportResults(results))
	assert.Equal(t, "ERROR: broken.js: javascript: syntax error at line 1, column 4: missing identifier\n"+
		"SUCCESS: No issues found in clean.js\n"+
		reporter.Format(violations[0])+"\n", buf.String())

	buf.Reset()
	require.NoError(t, reporter.New(buf, reporter.WithFormat(reporter.FormatJSON)).ReportResults(results))
	var documents []*reporter.Document
	require.NoError(t, json.Unmarshal(buf.Bytes(), &documents))
	require.Len(t, documents, 3)
	assert.NotEmpty(t, documents[0].Error)
	assert.Empty(t, documents[1].Violations)
	assert.Len(t, documents[2].Violations, 1)
}

func TestParseFormat(t *testing.T) {
	for name, expect := range map[string]reporter.Format{"": reporter.FormatText, "TEXT": reporter.FormatText, "json": reporter.FormatJSON, "yaml": reporter.FormatYAML} {
		format, err := reporter.ParseFormat(name)
		assert.NoError(t, err)
		assert.Equal(t, expect, format)
	}
	_, err := reporter.ParseFormat("xml")
	assert.Error(t, err)
}
