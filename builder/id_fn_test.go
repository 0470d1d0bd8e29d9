// SPDX-License-Identifier: MIT
package builder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/credrank/address"
	"github.com/katalvlaran/credrank/builder"
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

		{"SymbolIDFn_min", builder.SymbolIDFn, 0, "A", false},
		{"SymbolIDFn_max", builder.SymbolIDFn, 25, "Z", false},
		{"SymbolIDFn_neg", builder.SymbolIDFn, -1, "", true},
		{"SymbolIDFn_tooHigh", builder.SymbolIDFn, 26, "", true},

		{"AlphanumericIDFn_low", builder.AlphanumericIDFn, 10, "a", false},
		{"AlphanumericIDFn_wrap", builder.AlphanumericIDFn, 36, "10", false},
		{"AlphanumericIDFn_neg", builder.AlphanumericIDFn, -5, "", true},

		{"ExcelColumnIDFn_zero", builder.ExcelColumnIDFn, 0, "A", false},
		{"ExcelColumnIDFn_startDouble", builder.ExcelColumnIDFn, 26, "AA", false},
		{"ExcelColumnIDFn_ZZ", builder.ExcelColumnIDFn, 701, "ZZ", false},
		{"ExcelColumnIDFn_AAA", builder.ExcelColumnIDFn, 702, "AAA", false},
		{"ExcelColumnIDFn_neg", builder.ExcelColumnIDFn, -1, "", true},

		{"HexIDFn_ff", builder.HexIDFn, 255, "ff", false},
		{"HexIDFn_neg", builder.HexIDFn, -2, "", true},

		{"SymbolNumberIDFn", builder.SymbolNumberIDFn("user"), 3, "user3", false},
		{"SymbolNumberIDFn_neg", builder.SymbolNumberIDFn("user"), -1, "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if tc.shouldPanic {
				require.Panics(t, func() { tc.fn(tc.input) })
				return
			}
			require.Equal(t, tc.want, tc.fn(tc.input))
		})
	}
}

func TestIDSchemeOptions(t *testing.T) {
	for name, tc := range map[string]struct {
		opt  builder.BuilderOption
		last string
	}{
		"symbol number": {builder.WithSymbolNumberIDs("v"), "v2"},
		"excel":         {builder.WithExcelColumnIDs(), "C"},
		"hex":           {builder.WithHexIDs(), "2"},
		"alphanumeric":  {builder.WithAlphanumericIDs(), "2"},
	} {
		t.Run(name, func(t *testing.T) {
			g, err := builder.BuildGraph([]builder.BuilderOption{tc.opt}, builder.Path(3))
			require.NoError(t, err)
			require.True(t, g.HasNode(address.Node.MustFromParts("node", tc.last)))
		})
	}
}
