package reporter

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/goccy/go-json"
	"github.com/viant/solemn/detector"
	"gopkg.in/yaml.v3"
)

// Format represents a report output format
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

const (
	violationLabel = "VIOLATION"
	successLabel   = "SUCCESS"
	errorLabel     = "ERROR"
)

// ParseFormat validates a format name, empty means text
func ParseFormat(name string) (Format, error) {
	switch format := Format(strings.ToLower(strings.TrimSpace(name))); format {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON, FormatYAML:
		return format, nil
	}
	return "", fmt.Errorf("unsupported format: %s", name)
}

// Document is the structured report of one file
type Document struct {
	File       string                `json:"file" yaml:"file"`
	Violations []*detector.Violation `json:"violations" yaml:"violations"`
	Error      string                `json:"error,omitempty" yaml:"error,omitempty"`
}

// Reporter writes violations to an output sink
type Reporter struct {
	writer   io.Writer
	format   Format
	colorize bool
}

type Option func(*Reporter)

// WithFormat sets the output format
func WithFormat(format Format) Option {
	return func(r *Reporter) {
		r.format = format
	}
}

// WithColor forces colored labels in text output
func WithColor(enabled bool) Option {
	return func(r *Reporter) {
		r.colorize = enabled
	}
}

// New creates a reporter, text format without colors by default
func New(writer io.Writer, options ...Option) *Reporter {
	ret := &Reporter{writer: writer, format: FormatText}
	for _, option := range options {
		option(ret)
	}
	return ret
}

// Format renders one violation as a line of text
func Format(v *detector.Violation) string {
	return formatViolation(violationLabel, v)
}

// SuccessMessage renders the line emitted for a file without violations
func SuccessMessage(fileName string) string {
	return successLabel + ": No issues found in " + fileName
}

func formatViolation(label string, v *detector.Violation) string {
	return fmt.Sprintf("%s (issues: [%s], type: %s, file: %s, line: %d, col: %d) = %s",
		label, v.Issues.String(), v.Kind, v.File, v.Line, v.Column, strings.TrimSpace(v.Text))
}

// Report writes one line per violation in the given order, or a success line when there are none
func (r *Reporter) Report(fileName string, violations []*detector.Violation) error {
	switch r.format {
	case FormatJSON, FormatYAML:
		return r.encode(newDocument(fileName, violations, nil))
	}
	return r.writeText(fileName, violations)
}

// ReportResults writes the results of a multi file scan
func (r *Reporter) ReportResults(results []*detector.FileResult) error {
	switch r.format {
	case FormatJSON, FormatYAML:
		documents := make([]*Document, 0, len(results))
		for _, result := range results {
			documents = append(documents, newDocument(result.Path, result.Violations, result.Err))
		}
		return r.encode(documents)
	}
	for _, result := range results {
		if result.Err != nil {
			if _, err := fmt.Fprintf(r.writer, "%s: %s: %v\n", r.label(errorLabel, color.FgRed), result.Path, result.Err); err != nil {
				return err
			}
			continue
		}
		if err := r.writeText(result.Path, result.Violations); err != nil {
			return err
		}
	}
	return nil
}

func (r *Reporter) writeText(fileName string, violations []*detector.Violation) error {
	if len(violations) == 0 {
		_, err := fmt.Fprintln(r.writer, r.label(successLabel, color.FgGreen)+strings.TrimPrefix(SuccessMessage(fileName), successLabel))
		return err
	}
	label := r.label(violationLabel, color.FgRed)
	for _, violation := range violations {
		if _, err := fmt.Fprintln(r.writer, formatViolation(label, violation)); err != nil {
			return err
		}
	}
	return nil
}

func (r *Reporter) label(text string, attribute color.Attribute) string {
	if !r.colorize {
		return text
	}
	c := color.New(attribute, color.Bold)
	c.EnableColor()
	return c.Sprint(text)
}

func (r *Reporter) encode(value interface{}) error {
	if r.format == FormatYAML {
		encoder := yaml.NewEncoder(r.writer)
		encoder.SetIndent(2)
		if err := encoder.Encode(value); err != nil {
			return err
		}
		return encoder.Close()
	}
	encoder := json.NewEncoder(r.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}

func newDocument(fileName string, violations []*detector.Violation, err error) *Document {
	if violations == nil {
		violations = []*detector.Violation{}
	}
	ret := &Document{File: fileName, Violations: violations}
	if err != nil {
		ret.Error = err.Error()
	}
	return ret
}
