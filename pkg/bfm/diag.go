package bfm

import (
	"fmt"
	"io"
	"strings"
)

// Severity distinguishes diagnostics that stop a compilation from ones that
// only inform about it.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "error"
}

// Diagnostic is a single finished report. The message is formatted at the
// call site; the record only carries it together with the source offset it
// refers to. Suppressible diagnostics on the same source line are folded
// into one report unless verbose listing is requested.
type Diagnostic struct {
	Origin       int // byte offset into the source, or -1 for no location
	Severity     Severity
	Suppressible bool
	Message      string
}

// DiagList accumulates every diagnostic of a compilation run.
type DiagList struct {
	Diags []Diagnostic
}

func (l *DiagList) push(origin int, sev Severity, suppressible bool, format string, args ...interface{}) {
	l.Diags = append(l.Diags, Diagnostic{
		Origin:       origin,
		Severity:     sev,
		Suppressible: suppressible,
		Message:      fmt.Sprintf(format, args...),
	})
}

// Errorf records a fatal diagnostic.
func (l *DiagList) Errorf(origin int, format string, args ...interface{}) {
	l.push(origin, SeverityError, false, format, args...)
}

// Suppressiblef records a fatal diagnostic that may be folded per line.
// Lexical and syntactic reports use this form.
func (l *DiagList) Suppressiblef(origin int, format string, args ...interface{}) {
	l.push(origin, SeverityError, true, format, args...)
}

// Warnf records a non-fatal diagnostic.
func (l *DiagList) Warnf(origin int, format string, args ...interface{}) {
	l.push(origin, SeverityWarning, true, format, args...)
}

// HasErrors reports whether any fatal diagnostic has been recorded.
func (l *DiagList) HasErrors() bool {
	for _, d := range l.Diags {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Err summarizes the list as an error, or nil if nothing fatal was recorded.
func (l *DiagList) Err() error {
	if !l.HasErrors() {
		return nil
	}
	return l
}

// Error implements the error interface with the first fatal message.
func (l *DiagList) Error() string {
	count := 0
	first := ""
	for _, d := range l.Diags {
		if d.Severity == SeverityError {
			if count == 0 {
				first = d.Message
			}
			count++
		}
	}
	if count > 1 {
		return fmt.Sprintf("%s (and %d more errors)", first, count-1)
	}
	return first
}

// lineNumber returns the 0-based line of a byte offset.
func lineNumber(source string, offset int) int {
	if offset > len(source) {
		offset = len(source)
	}
	return strings.Count(source[:offset], "\n")
}

// columnNumber returns the 0-based column of a byte offset.
func columnNumber(source string, offset int) int {
	if offset > len(source) {
		offset = len(source)
	}
	col := 0
	for i := 0; i < offset; i++ {
		if source[i] == '\n' {
			col = 0
		} else {
			col++
		}
	}
	return col
}

// lineAt returns the text of the line containing offset, trimmed of leading
// whitespace, together with the number of leading whitespace characters
// removed. The caret printer needs both.
func lineAt(source string, offset int) (string, int) {
	if offset > len(source) {
		offset = len(source)
	}
	start := offset
	for start > 0 && source[start-1] != '\n' {
		start--
	}
	end := offset
	for end < len(source) && source[end] != '\n' {
		end++
	}
	line := source[start:end]
	trimmed := strings.TrimLeft(line, " \t")
	return trimmed, len(line) - len(trimmed)
}

// printable expands tabs to four spaces and drops newlines, so the caret
// below the echoed line stays aligned.
func printable(str string) string {
	var b strings.Builder
	for i := 0; i < len(str); i++ {
		switch str[i] {
		case '\t':
			b.WriteString("    ")
		case '\n':
		default:
			b.WriteByte(str[i])
		}
	}
	return b.String()
}

// Render writes every diagnostic to w as
//
//	path:line:col: severity: message
//	        the source line
//	        ^
//
// Unless verbose is set, suppressible diagnostics after the first on a
// source line are folded, and a closing note reports how many were.
func (l *DiagList) Render(w io.Writer, path, source string, verbose bool) {
	suppressed := 0
	lastLine := -1
	for _, d := range l.Diags {
		line := -1
		if d.Origin >= 0 {
			line = lineNumber(source, d.Origin)
		}
		if !verbose && d.Suppressible && line >= 0 && line == lastLine {
			suppressed++
			continue
		}
		lastLine = line

		if d.Origin >= 0 {
			fmt.Fprintf(w, "%s:%d:%d: ", path, line+1, columnNumber(source, d.Origin)+1)
		}
		fmt.Fprintf(w, "%s: %s\n", d.Severity, d.Message)
		if d.Origin >= 0 {
			text, lead := lineAt(source, d.Origin)
			fmt.Fprintf(w, "\t%s\n\t", printable(text))
			for i := 0; i < columnNumber(source, d.Origin)-lead; i++ {
				fmt.Fprint(w, " ")
			}
			fmt.Fprint(w, "^\n")
		}
	}
	if !verbose && len(l.Diags) > 0 {
		fmt.Fprintf(w, "\tnote: only one report is printed per line, %d warning(s) were suppressed.\n", suppressed)
	}
}
