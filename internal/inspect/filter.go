package inspect

import (
	"strings"

	"github.com/google/cel-go/cel"

	"github.com/pavver/flexbuf/internal/linebuf"
)

// Filter wraps a compiled CEL program selecting records to render. When
// disabled, Matches always returns true.
type Filter struct {
	prog    cel.Program
	enabled bool
}

// NewFilter compiles expr into a Filter. An empty expression yields a
// disabled filter matching every record.
func NewFilter(expr string) (*Filter, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return &Filter{enabled: false}, nil
	}
	env, err := cel.NewEnv(
		cel.Variable("id", cel.IntType),
		cel.Variable("size", cel.IntType),
		cel.Variable("text", cel.StringType),
		cel.Variable("fragmented", cel.BoolType),
		cel.Variable("start", cel.IntType),
		cel.Variable("end", cel.IntType),
	)
	if err != nil {
		return nil, err
	}
	ast, iss := env.Parse(expr)
	if iss != nil && iss.Err() != nil {
		return nil, iss.Err()
	}
	checked, iss2 := env.Check(ast)
	if iss2 != nil && iss2.Err() != nil {
		return nil, iss2.Err()
	}
	prog, err := env.Program(checked)
	if err != nil {
		return nil, err
	}
	return &Filter{prog: prog, enabled: true}, nil
}

// Matches evaluates the expression against a record. Evaluation errors count
// as non-matches.
func (f *Filter) Matches(r linebuf.RecordInfo) bool {
	if f == nil || !f.enabled {
		return true
	}
	out, _, err := f.prog.Eval(map[string]any{
		"id":         int64(r.ID),
		"size":       int64(r.Length),
		"text":       string(r.Data),
		"fragmented": r.Fragmented,
		"start":      int64(r.Start),
		"end":        int64(r.End),
	})
	if err != nil {
		return false
	}
	b, ok := out.Value().(bool)
	return ok && b
}
