package journal

import "fmt"

// Severity classifies a diagnostic.
type Severity uint8

const (
	// SeverityWarning marks recoverable issues, such as a log head whose
	// date fell back to the rolling default.
	SeverityWarning Severity = iota
	// SeverityError marks lines that could not be used as matched, such as
	// a log head with a malformed time token.
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Diagnostic is a line-tagged parse issue. Parsing is best-effort and
// never fails outright; diagnostics carry what was recovered from, for
// human review.
type Diagnostic struct {
	Line     int
	Severity Severity
	Message  string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%d: %s: %s", d.Line, d.Severity, d.Message)
}

// diagSink accumulates diagnostics across the parser stages of one parse.
type diagSink struct {
	diags []Diagnostic
}

func (s *diagSink) warnf(line int, format string, args ...any) {
	s.diags = append(s.diags, Diagnostic{Line: line, Severity: SeverityWarning, Message: fmt.Sprintf(format, args...)})
}

func (s *diagSink) errorf(line int, format string, args ...any) {
	s.diags = append(s.diags, Diagnostic{Line: line, Severity: SeverityError, Message: fmt.Sprintf(format, args...)})
}
