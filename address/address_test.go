// SPDX-License-Identifier: MIT
package address_test

import (
	"sort"
	"testing"

	"github.com/katalvlaran/credrank/address"
	"github.com/stretchr/testify/require"
)

func TestFromPartsRoundTrip(t *testing.T) {
	cases := [][]string{
		{},
		{""},
		{"", ""},
		{"foo"},
		{"foo", "bar"},
		{"with space", "ünïcødé", "N", "E"},
	}
	for _, parts := range cases {
		n, err := address.Node.FromParts(parts...)
		require.NoError(t, err)
		got, err := address.Node.ToParts(n)
		require.NoError(t, err)
		require.Equal(t, parts, got, "node parts %q", parts)

		e, err := address.Edge.FromParts(parts...)
		require.NoError(t, err)
		require.Equal(t, parts, e.Parts(), "edge parts %q", parts)
	}
}

func TestEmptyAndSingleEmptyPartDiffer(t *testing.T) {
	empty := address.Node.Empty()
	single := address.Node.MustFromParts("")
	require.NotEqual(t, empty, single)
	require.Empty(t, empty.Parts())
	require.Equal(t, []string{""}, single.Parts())
	require.True(t, single.HasPrefix(empty))
	require.False(t, empty.HasPrefix(single))
}

func TestReservedSeparatorRejected(t *testing.T) {
	_, err := address.Node.FromParts("ok", "bad\x00part")
	require.ErrorIs(t, err, address.ErrReservedSeparator)

	base := address.Edge.MustFromParts("a")
	_, err = address.Edge.Append(base, "x\x00")
	require.ErrorIs(t, err, address.ErrReservedSeparator)

	require.Panics(t, func() { address.Node.MustFromParts("\x00") })
}

func TestValidateRejectsWrongKind(t *testing.T) {
	edge := address.Edge.MustFromParts("foo")
	err := address.Node.Validate(address.NodeAddress(edge))
	require.ErrorIs(t, err, address.ErrWrongKind)
	require.Contains(t, err.Error(), "expected NodeAddress, got EdgeAddress")

	node := address.Node.MustFromParts("foo")
	err = address.Edge.Validate(address.EdgeAddress(node))
	require.ErrorIs(t, err, address.ErrWrongKind)
	require.Contains(t, err.Error(), "expected EdgeAddress, got NodeAddress")
}

func TestValidateRejectsGarbage(t *testing.T) {
	for _, raw := range []string{"", "foo", "N", "N\x00foo", "X\x00"} {
		err := address.Node.Validate(address.NodeAddress(raw))
		require.ErrorIs(t, err, address.ErrInvalidAddress, "raw=%q", raw)
	}
	_, err := address.Node.ToParts("")
	require.ErrorIs(t, err, address.ErrInvalidAddress)
}

func TestHasPrefix(t *testing.T) {
	abc := address.Node.MustFromParts("a", "b", "c")
	require.True(t, abc.HasPrefix(address.Node.Empty()))
	require.True(t, abc.HasPrefix(address.Node.MustFromParts("a")))
	require.True(t, abc.HasPrefix(address.Node.MustFromParts("a", "b")))
	require.True(t, abc.HasPrefix(abc))
	// "a","b" is not a prefix of "a","bc" even though the strings share a prefix.
	require.False(t, address.Node.MustFromParts("a", "bc").HasPrefix(address.Node.MustFromParts("a", "b")))
	require.False(t, abc.HasPrefix(address.Node.MustFromParts("a", "b", "c", "d")))
}

func TestAppend(t *testing.T) {
	base := address.Node.MustFromParts("a")
	got, err := address.Node.Append(base, "b", "c")
	require.NoError(t, err)
	require.Equal(t, address.Node.MustFromParts("a", "b", "c"), got)

	same, err := address.Node.Append(base)
	require.NoError(t, err)
	require.Equal(t, base, same)

	_, err = address.Node.Append(address.NodeAddress(address.Edge.Empty()), "x")
	require.ErrorIs(t, err, address.ErrWrongKind)
}

func TestOrderIsLexicographicByParts(t *testing.T) {
	ordered := [][]string{
		{},
		{""},
		{"", "z"},
		{"a"},
		{"a", ""},
		{"a", "b"},
		{"a", "b", "c"},
		{"a", "bb"},
		{"ab"},
		{"b"},
	}
	addrs := make([]address.NodeAddress, 0, len(ordered))
	for i := len(ordered) - 1; i >= 0; i-- {
		addrs = append(addrs, address.Node.MustFromParts(ordered[i]...))
	}
	sort.Slice(addrs, func(i, j int) bool { return addrs[i] < addrs[j] })
	for i, a := range addrs {
		require.Equal(t, ordered[i], a.Parts(), "position %d", i)
	}
	require.Equal(t, -1, addrs[0].Compare(addrs[1]))
	require.Equal(t, 0, addrs[1].Compare(addrs[1]))
}

func TestToString(t *testing.T) {
	require.Equal(t, `NodeAddress["foo","bar"]`, address.Node.MustFromParts("foo", "bar").String())
	require.Equal(t, `EdgeAddress[]`, address.Edge.Empty().String())
	require.Equal(t, `NodeAddress(invalid "oops")`, address.NodeAddress("oops").String())
}
