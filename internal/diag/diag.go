// Package diag formats semantic.Diagnostic values for human-readable
// output: source context, a caret under the offending column, and
// optional ANSI color when the destination is a real terminal.
package diag

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/cwbudde/go-tlc/internal/lexer"
	"github.com/cwbudde/go-tlc/internal/semantic"
)

const (
	colorBold  = "\033[1m"
	colorRed   = "\033[1;31m"
	colorDim   = "\033[2m"
	colorReset = "\033[0m"
)

// Report pairs one Diagnostic with the source file it came from, so it can
// be rendered with a source-line/caret excerpt.
type Report struct {
	Diag   *semantic.Diagnostic
	Source string
	File   string
}

// NewReport builds a Report for d against source/file.
func NewReport(d *semantic.Diagnostic, source, file string) *Report {
	return &Report{Diag: d, Source: source, File: file}
}

// Format renders one diagnostic: a header line naming the file, kind, and
// position, followed by the offending source line and a caret, followed
// by the message. If color is true, ANSI codes highlight the caret and
// the message.
func (r *Report) Format(color bool) string {
	var sb strings.Builder

	if r.File != "" {
		fmt.Fprintf(&sb, "%s:%d:%d: %s\n", r.File, r.Diag.Pos.Line, r.Diag.Pos.Column, r.Diag.Kind)
	} else {
		fmt.Fprintf(&sb, "line %d:%d: %s\n", r.Diag.Pos.Line, r.Diag.Pos.Column, r.Diag.Kind)
	}

	if line := sourceLine(r.Source, r.Diag.Pos.Line); line != "" {
		lineNumStr := fmt.Sprintf("%4d | ", r.Diag.Pos.Line)
		sb.WriteString(lineNumStr)
		sb.WriteString(line)
		sb.WriteString("\n")

		sb.WriteString(strings.Repeat(" ", len(lineNumStr)+maxInt(r.Diag.Pos.Column-1, 0)))
		if color {
			sb.WriteString(colorRed)
		}
		sb.WriteString("^")
		if color {
			sb.WriteString(colorReset)
		}
		sb.WriteString("\n")
	}

	if color {
		sb.WriteString(colorBold)
	}
	sb.WriteString(r.Diag.Message)
	if color {
		sb.WriteString(colorReset)
	}
	return sb.String()
}

func sourceLine(source string, lineNum int) string {
	if source == "" || lineNum < 1 {
		return ""
	}
	lines := strings.Split(source, "\n")
	if lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}

// sourceContext extracts the lines from (lineNum-contextLines) to
// (lineNum+contextLines), clamped to the source's bounds, plus the 1-based
// line number the returned slice starts at.
func sourceContext(source string, lineNum, contextLines int) (lines []string, startLine int) {
	if source == "" || lineNum < 1 {
		return nil, 0
	}
	all := strings.Split(source, "\n")
	if lineNum > len(all) {
		return nil, 0
	}
	start := lineNum - contextLines
	if start < 1 {
		start = 1
	}
	end := lineNum + contextLines
	if end > len(all) {
		end = len(all)
	}
	return all[start-1 : end], start
}

// FormatWithContext renders r like Format, but surrounds the offending line
// with contextLines of source on either side, dimming the non-offending
// lines when color is true (mirrors the teacher's CompilerError.FormatWithContext).
// contextLines <= 0 falls back to Format's single-line rendering.
func (r *Report) FormatWithContext(contextLines int, color bool) string {
	if contextLines <= 0 {
		return r.Format(color)
	}

	var sb strings.Builder
	if r.File != "" {
		fmt.Fprintf(&sb, "%s:%d:%d: %s\n", r.File, r.Diag.Pos.Line, r.Diag.Pos.Column, r.Diag.Kind)
	} else {
		fmt.Fprintf(&sb, "line %d:%d: %s\n", r.Diag.Pos.Line, r.Diag.Pos.Column, r.Diag.Kind)
	}

	ctxLines, startLine := sourceContext(r.Source, r.Diag.Pos.Line, contextLines)
	if len(ctxLines) == 0 {
		return r.Format(color)
	}

	for i, line := range ctxLines {
		currentLine := startLine + i
		lineNumStr := fmt.Sprintf("%4d | ", currentLine)

		if currentLine == r.Diag.Pos.Line {
			if color {
				sb.WriteString(colorBold)
			}
			sb.WriteString(lineNumStr)
			sb.WriteString(line)
			if color {
				sb.WriteString(colorReset)
			}
			sb.WriteString("\n")

			sb.WriteString(strings.Repeat(" ", len(lineNumStr)+maxInt(r.Diag.Pos.Column-1, 0)))
			if color {
				sb.WriteString(colorRed)
			}
			sb.WriteString("^")
			if color {
				sb.WriteString(colorReset)
			}
			sb.WriteString("\n")
			continue
		}

		if color {
			sb.WriteString(colorDim)
		}
		sb.WriteString(lineNumStr)
		sb.WriteString(line)
		if color {
			sb.WriteString(colorReset)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	if color {
		sb.WriteString(colorBold)
	}
	sb.WriteString(r.Diag.Message)
	if color {
		sb.WriteString(colorReset)
	}
	return sb.String()
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// FormatAll renders every diagnostic in diags against source/file,
// in the order they were recorded, separated and numbered when there is
// more than one (mirrors the teacher's FormatErrors for multiple errors).
func FormatAll(diags []*semantic.Diagnostic, source, file string, color bool) string {
	if len(diags) == 0 {
		return ""
	}
	if len(diags) == 1 {
		return NewReport(diags[0], source, file).Format(color)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "compilation failed with %d error(s):\n\n", len(diags))
	for i, d := range diags {
		fmt.Fprintf(&sb, "[%d of %d]\n", i+1, len(diags))
		sb.WriteString(NewReport(d, source, file).Format(color))
		if i < len(diags)-1 {
			sb.WriteString("\n\n")
		}
	}
	return sb.String()
}

// FormatAllWithContext is FormatAll, but rendering each report with
// contextLines of surrounding source via FormatWithContext.
func FormatAllWithContext(diags []*semantic.Diagnostic, source, file string, contextLines int, color bool) string {
	if len(diags) == 0 {
		return ""
	}
	if len(diags) == 1 {
		return NewReport(diags[0], source, file).FormatWithContext(contextLines, color)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "compilation failed with %d error(s):\n\n", len(diags))
	for i, d := range diags {
		fmt.Fprintf(&sb, "[%d of %d]\n", i+1, len(diags))
		sb.WriteString(NewReport(d, source, file).FormatWithContext(contextLines, color))
		if i < len(diags)-1 {
			sb.WriteString("\n\n")
		}
	}
	return sb.String()
}

// jsonDiagnostic is the wire shape of one diagnostic in --json output.
type jsonDiagnostic struct {
	File    string `json:"file,omitempty"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// jsonBatch is the wire shape of a full --json diagnostic batch: every
// report produced by one compileFile run, correlated by the run id the CLI
// generates per invocation so log aggregation can group diagnostics from
// the same invocation.
type jsonBatch struct {
	RunID       string           `json:"run_id"`
	Diagnostics []jsonDiagnostic `json:"diagnostics"`
}

// MarshalJSON renders reports as a jsonBatch correlated by runID.
func MarshalJSON(reports []*Report, runID string) ([]byte, error) {
	batch := jsonBatch{RunID: runID, Diagnostics: make([]jsonDiagnostic, len(reports))}
	for i, r := range reports {
		batch.Diagnostics[i] = jsonDiagnostic{
			File:    r.File,
			Line:    r.Diag.Pos.Line,
			Column:  r.Diag.Pos.Column,
			Kind:    string(r.Diag.Kind),
			Message: r.Diag.Message,
		}
	}
	return json.MarshalIndent(batch, "", "  ")
}

// ColorEnabled reports whether fd refers to a real terminal, gating ANSI
// color output the way the driver decides whether to colorize (spec's
// ambient CLI concern, not part of the semantic core itself).
func ColorEnabled(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// LexerErrorsToDiagnostics lifts lexer-stage errors into the same rendering
// path as semantic diagnostics, so the CLI has one formatting code path for
// both lexical and semantic failures.
func LexerErrorsToDiagnostics(errs []lexer.LexerError) []*semantic.Diagnostic {
	out := make([]*semantic.Diagnostic, 0, len(errs))
	for _, e := range errs {
		out = append(out, &semantic.Diagnostic{
			Kind:    "LexError",
			Message: e.Message,
			Pos:     e.Pos,
		})
	}
	return out
}
