package compiler

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BojanStipic/micko-peg/internals"
	"github.com/BojanStipic/micko-peg/semantics"
	"github.com/go-test/deep"
	"github.com/nalgeon/be"
)

const testdataDir = "testdata"

// expectedKind maps a golden file prefix to the error kind it must produce,
// "" meaning the program must pass.
var expectedKind = map[string]internals.ErrorKind{
	"test-ok":     "",
	"test-synerr": internals.SyntaxError,
	"test-semerr": internals.SemanticError,
}

func TestGoldenPrograms(t *testing.T) {
	files, err := os.ReadDir(testdataDir)
	if err != nil {
		t.Fatal(err)
	}

	seen := map[string]int{}
	for _, file := range files {
		if file.IsDir() || filepath.Ext(file.Name()) != ".mc" {
			continue
		}

		prefix := ""
		for p := range expectedKind {
			if strings.HasPrefix(file.Name(), p+"-") {
				prefix = p
			}
		}
		want, ok := expectedKind[prefix]
		if prefix == "" || !ok {
			t.Errorf("%s: unknown golden file prefix", file.Name())
			continue
		}
		seen[prefix]++

		t.Run(file.Name(), func(t *testing.T) {
			content, err := os.ReadFile(filepath.Join(testdataDir, file.Name()))
			if err != nil {
				t.Fatal(err)
			}

			err = Check(file.Name(), string(content))
			if want == "" {
				be.Err(t, err, nil)
				return
			}

			var compileErr *internals.Error
			if !errors.As(err, &compileErr) {
				t.Fatalf("expected %s, got %v", want, err)
			}
			be.Equal(t, compileErr.Kind, want)
			be.Equal(t, compileErr.FilePath, file.Name())
		})
	}

	for prefix := range expectedKind {
		if seen[prefix] == 0 {
			t.Errorf("no %s golden programs found", prefix)
		}
	}
}

func TestCheckScenarios(t *testing.T) {
	tests := []struct {
		input string
		err   error
		msg   string
	}{
		{input: `int main(){ return; }`},
		{input: `int f(){ return; }`, err: semantics.ErrNoEntryPoint, msg: "undefined reference to `main`"},
		{input: `int main(){ int x; int x; return; }`, err: semantics.ErrRedefinition, msg: "redefinition of `x`"},
		{input: `int main(){ x = 1; return; }`, err: semantics.ErrUndeclared, msg: "`x` undeclared"},
		{input: `int main(){ int x; unsigned y; x = y; return; }`, err: semantics.ErrIncompatibleTypes, msg: "incompatible types"},
		{input: `int main(){ int x; x = 1 + 2; return; }`},
	}

	for _, tt := range tests {
		err := Check("scenario.mc", tt.input)
		if tt.err == nil {
			if err != nil {
				t.Errorf("input %q: unexpected error %v", tt.input, err)
			}
			continue
		}
		if !errors.Is(err, tt.err) || !strings.Contains(err.Error(), tt.msg) {
			t.Errorf("input %q: expected %q, got %v", tt.input, tt.msg, err)
		}
	}
}

func TestSyntaxErrorSkipsAnalysis(t *testing.T) {
	// no main and a syntax error: the syntax error is the one reported
	program, symbols, err := Analyze("bad.mc", `int f() { return }`)

	be.True(t, program == nil)
	be.True(t, symbols == nil)
	be.Err(t, err, "bad.mc:1:18: Syntax error: expected expression, got `}`")
}

func TestAnalyzeReturnsGlobalSymbols(t *testing.T) {
	program, symbols, err := Analyze("ok.mc", `unsigned f(unsigned a){ unsigned b; b = a; return b; } int main(){ return; }`)
	be.Err(t, err, nil)
	be.True(t, program != nil)

	expected := []semantics.Symbol{
		{Name: "f", Kind: semantics.KindFunction, Type: semantics.TypeUnsigned},
		{Name: "main", Kind: semantics.KindFunction, Type: semantics.TypeInt},
	}
	if diff := deep.Equal(symbols, expected); diff != nil {
		t.Error(diff)
	}
}
