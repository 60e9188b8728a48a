package diag

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/cwbudde/go-tlc/internal/lexer"
	"github.com/cwbudde/go-tlc/internal/semantic"
)

func diagAt(kind semantic.ErrorKind, line, col int) *semantic.Diagnostic {
	return &semantic.Diagnostic{Kind: kind, Message: "something went wrong", Pos: lexer.Position{Line: line, Column: col}}
}

func TestFormatIncludesFileAndCaret(t *testing.T) {
	source := "local x = 1\nlocal y = x + \n"
	r := NewReport(diagAt(semantic.TypeMismatch, 2, 11), source, "script.tlc")
	out := r.Format(false)
	if !strings.Contains(out, "script.tlc:2:11: TypeMismatch") {
		t.Fatalf("expected header with file/line/col/kind, got:\n%s", out)
	}
	if !strings.Contains(out, "local y = x + ") {
		t.Fatalf("expected the offending source line, got:\n%s", out)
	}
	if !strings.Contains(out, "^") {
		t.Fatalf("expected a caret, got:\n%s", out)
	}
}

func TestFormatWithContextZeroFallsBackToSingleLine(t *testing.T) {
	source := "a\nb\nc\n"
	r := NewReport(diagAt(semantic.UnknownType, 2, 1), source, "")
	if got, want := r.FormatWithContext(0, false), r.Format(false); got != want {
		t.Fatalf("expected FormatWithContext(0, ...) to equal Format(...), got:\n%s\nwant:\n%s", got, want)
	}
}

func TestFormatWithContextIncludesSurroundingLines(t *testing.T) {
	source := "one\ntwo\nthree\nfour\nfive\n"
	r := NewReport(diagAt(semantic.UnknownType, 3, 1), source, "f.tlc")
	out := r.FormatWithContext(1, false)
	for _, want := range []string{"two", "three", "four"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected context to include line %q, got:\n%s", want, out)
		}
	}
	if strings.Contains(out, "one") || strings.Contains(out, "five") {
		t.Errorf("expected context to stop at contextLines=1, got:\n%s", out)
	}
}

func TestMarshalJSONRoundTrips(t *testing.T) {
	reports := []*Report{
		NewReport(diagAt(semantic.ArityMismatch, 4, 9), "", "a.tlc"),
		NewReport(diagAt(semantic.UnknownParent, 10, 2), "", "a.tlc"),
	}
	out, err := MarshalJSON(reports, "run-123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded struct {
		RunID       string `json:"run_id"`
		Diagnostics []struct {
			File    string `json:"file"`
			Line    int    `json:"line"`
			Column  int    `json:"column"`
			Kind    string `json:"kind"`
			Message string `json:"message"`
		} `json:"diagnostics"`
	}
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}
	if decoded.RunID != "run-123" {
		t.Errorf("expected run_id 'run-123', got %q", decoded.RunID)
	}
	if len(decoded.Diagnostics) != 2 {
		t.Fatalf("expected 2 diagnostics, got %d", len(decoded.Diagnostics))
	}
	if decoded.Diagnostics[0].Kind != string(semantic.ArityMismatch) || decoded.Diagnostics[0].Line != 4 {
		t.Errorf("unexpected first diagnostic: %+v", decoded.Diagnostics[0])
	}
}

func TestMarshalJSONEmptyReportsStillProducesBatch(t *testing.T) {
	out, err := MarshalJSON(nil, "run-empty")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(out), `"run_id"`) || !strings.Contains(string(out), "run-empty") {
		t.Fatalf("expected run_id to be present even with no diagnostics, got:\n%s", out)
	}
	if !strings.Contains(string(out), `"diagnostics": []`) && !strings.Contains(string(out), `"diagnostics":[]`) {
		t.Fatalf("expected an empty diagnostics array, got:\n%s", out)
	}
}
