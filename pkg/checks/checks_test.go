//go:build unit

package checks

import (
	"testing"

	"github.com/lerenn/cppcheck-go/pkg/check"
	"github.com/lerenn/cppcheck-go/pkg/diagnostic"
	"github.com/lerenn/cppcheck-go/pkg/tokenizer"
	"github.com/stretchr/testify/assert"
)

func run(c check.Check, src string) []diagnostic.Diagnostic {
	var got []diagnostic.Diagnostic
	c.Check("test.c", tokenizer.Tokenize("test.c", []byte(src)), diagnostic.ReporterFunc(func(d diagnostic.Diagnostic) {
		got = append(got, d)
	}))
	return got
}

func TestAll(t *testing.T) {
	assert.Equal(t, []string{DangerousFunctionsName, RedundantConditionName, ZeroDivisionName}, check.Names(All()))
}

func TestDangerousFunctions(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		expected []string
	}{
		{
			name:     "gets",
			src:      "void f(char *s) {\n    gets(s);\n}\n",
			expected: []string{"Found 'gets'. You should use 'fgets' instead"},
		},
		{
			name:     "scanf with unbounded string",
			src:      "void f(char *s) { scanf(\"%s\", s); }",
			expected: []string{"Found 'scanf'. You should use 'fgets' instead"},
		},
		{
			name: "scanf with width",
			src:  "void f(char *s) { scanf(\"%9s\", s); }",
		},
		{
			name: "member function named gets",
			src:  "void f(Reader r) { r.gets(buf); p->gets(buf); io::gets(buf); }",
		},
		{
			name: "fgets",
			src:  "void f(char *s) { fgets(s, 10, stdin); }",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := run(NewDangerousFunctions(), tt.src)

			var messages []string
			for _, d := range got {
				assert.Equal(t, diagnostic.SeverityWarning, d.Severity)
				assert.Equal(t, DangerousFunctionsName, d.Check)
				messages = append(messages, d.Message)
			}
			assert.Equal(t, tt.expected, messages)
		})
	}
}

func TestDangerousFunctions_Line(t *testing.T) {
	got := run(NewDangerousFunctions(), "void f(char *s) {\n    gets(s);\n}\n")

	assert.Len(t, got, 1)
	assert.Equal(t, "test.c", got[0].File)
	assert.Equal(t, 2, got[0].Line)
}

func TestRedundantCondition(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want int
	}{
		{name: "delete", src: "void f(int *p) { if (p) delete p; }", want: 1},
		{name: "braced delete", src: "void f(int *p) { if (p) { delete p; } }", want: 1},
		{name: "array delete", src: "void f(int *p) { if (p) delete [] p; }", want: 1},
		{name: "free", src: "void f(int *p) { if (p) free(p); }", want: 1},
		{name: "other pointer", src: "void f(int *p, int *q) { if (p) delete q; }", want: 0},
		{name: "more statements", src: "void f(int *p) { if (p) { delete p; p = 0; } }", want: 0},
		{name: "else branch", src: "void f(int *p) { if (p) delete p; else log(); }", want: 0},
		{name: "comparison", src: "void f(int *p) { if (p != 0) free(p); }", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := run(NewRedundantCondition(), tt.src)

			assert.Len(t, got, tt.want)
			for _, d := range got {
				assert.Equal(t, diagnostic.SeverityStyle, d.Severity)
				assert.Equal(t, "Redundant condition. It is safe to deallocate a NULL pointer", d.Message)
			}
		})
	}
}

func TestZeroDivision(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want int
	}{
		{name: "division", src: "int f(int a) { return a / 0; }", want: 1},
		{name: "modulo", src: "int f(int a) { return a % 0; }", want: 1},
		{name: "compound", src: "void f(int a) { a /= 0; }", want: 1},
		{name: "hex zero", src: "int f(int a) { return a / 0x0; }", want: 1},
		{name: "non zero", src: "int f(int a) { return a / 10; }", want: 0},
		{name: "float", src: "double f(double a) { return a / 0.5; }", want: 0},
		{name: "variable", src: "int f(int a, int b) { return a / b; }", want: 0},
		{name: "macro body", src: "#define RATIO(a) ((a) / 0)\nint f(int a) { return a; }", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := run(NewZeroDivision(), tt.src)

			assert.Len(t, got, tt.want)
			for _, d := range got {
				assert.Equal(t, diagnostic.SeverityError, d.Severity)
				assert.Equal(t, "Division by zero", d.Message)
			}
		})
	}
}

func TestChecks_Describe(t *testing.T) {
	for _, c := range All() {
		assert.NotEmpty(t, c.Description(), c.Name())
	}
}
