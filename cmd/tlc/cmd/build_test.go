package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCompileFileEmitsLua(t *testing.T) {
	dir := t.TempDir()
	src := `
function add(a: int, b: int): int
  return a + b
end
`
	path := filepath.Join(dir, "main.tlc")
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	result, err := compileFile(path, true)
	if err != nil {
		t.Fatalf("compileFile returned an error: %v", err)
	}
	if len(result.reports) != 0 {
		t.Fatalf("expected no diagnostics, got %d", len(result.reports))
	}
	if result.emitted == "" {
		t.Fatalf("expected emitted Lua source, got empty string")
	}
}

func TestCompileFileReportsUnknownType(t *testing.T) {
	dir := t.TempDir()
	src := `var NoSuchType x = 1`
	path := filepath.Join(dir, "bad.tlc")
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	result, err := compileFile(path, false)
	if err != nil {
		t.Fatalf("compileFile returned an error: %v", err)
	}
	if len(result.reports) == 0 {
		t.Fatalf("expected a diagnostic for an unknown type")
	}
}
