package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/bellman/builder"
)

func TestIDFns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		fn          builder.IDFn
		input       int
		want        string
		shouldPanic bool
	}{
		{"DefaultIDFn_zero", builder.DefaultIDFn, 0, "0", false},
		{"DefaultIDFn_multi", builder.DefaultIDFn, 123, "123", false},
		{"SymbolIDFn_min", builder.SymbolIDFn, 0, "a", false},
		{"SymbolIDFn_max", builder.SymbolIDFn, 25, "z", false},
		{"SymbolIDFn_over", builder.SymbolIDFn, 26, "", true},
		{"ExcelColumnIDFn_Z", builder.ExcelColumnIDFn, 25, "Z", false},
		{"ExcelColumnIDFn_AA", builder.ExcelColumnIDFn, 26, "AA", false},
		{"ExcelColumnIDFn_AB", builder.ExcelColumnIDFn, 27, "AB", false},
		{"ExcelColumnIDFn_negative", builder.ExcelColumnIDFn, -1, "", true},
		{"PrefixIDFn", builder.PrefixIDFn("n"), 7, "n7", false},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if tc.shouldPanic {
				assert.Panics(t, func() { tc.fn(tc.input) })
				return
			}
			assert.Equal(t, tc.want, tc.fn(tc.input))
		})
	}
}
