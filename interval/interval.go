// SPDX-License-Identifier: MIT

// Package interval partitions a graph's timed nodes and edges into
// consecutive UTC weeks.
//
// Weeks start on Sunday 00:00 UTC. Intervals are half-open [start, end):
// a timestamp equal to an interval's end belongs to the next interval.
// Nodes without a timestamp and dangling edges belong to no interval.
package interval

import (
	"sort"
	"time"

	"github.com/katalvlaran/credrank/core"
)

// WeekMs is the length of one interval in milliseconds.
const WeekMs int64 = 7 * 24 * 60 * 60 * 1000

// Interval is the half-open time range [StartTimeMs, EndTimeMs).
type Interval struct {
	StartTimeMs int64 `json:"startTimeMs"`
	EndTimeMs   int64 `json:"endTimeMs"`
}

// Contains reports whether ms lies in [StartTimeMs, EndTimeMs).
func (iv Interval) Contains(ms int64) bool {
	return ms >= iv.StartTimeMs && ms < iv.EndTimeMs
}

// GraphInterval holds the nodes and non-dangling edges created during Interval.
type GraphInterval struct {
	Interval Interval
	Nodes    []core.Node
	Edges    []core.Edge
}

// WeekStart returns the start of the UTC week (Sunday 00:00) containing ms.
func WeekStart(ms int64) int64 {
	t := time.UnixMilli(ms).UTC()
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)

	return day.AddDate(0, 0, -int(day.Weekday())).UnixMilli()
}

// WeekIntervals returns consecutive week intervals covering the inclusive
// range [startMs, endMs], from the week containing startMs through the week
// containing endMs. It returns nil when startMs > endMs.
// Complexity: O(weeks).
func WeekIntervals(startMs, endMs int64) []Interval {
	if startMs > endMs {
		return nil
	}
	first := WeekStart(startMs)
	stop := WeekStart(endMs) + WeekMs
	out := make([]Interval, 0, (stop-first)/WeekMs)
	for s := first; s < stop; s += WeekMs {
		out = append(out, Interval{StartTimeMs: s, EndTimeMs: s + WeekMs})
	}

	return out
}

// GraphIntervals returns the week intervals spanning every timed node and
// every non-dangling edge of g, or nil when there are none.
// Complexity: O(V + E log E).
func GraphIntervals(g *core.Graph) ([]Interval, error) {
	var (
		lo, hi int64
		seen   bool
	)
	observe := func(ms int64) {
		if !seen || ms < lo {
			lo = ms
		}
		if !seen || ms > hi {
			hi = ms
		}
		seen = true
	}
	for n, err := range g.Nodes(core.NodesOptions{}) {
		if err != nil {
			return nil, err
		}
		if n.TimestampMs != nil {
			observe(*n.TimestampMs)
		}
	}
	for e, err := range g.Edges(core.EdgesOptions{}) {
		if err != nil {
			return nil, err
		}
		observe(e.TimestampMs)
	}
	if !seen {
		return nil, nil
	}

	return WeekIntervals(lo, hi), nil
}

// PartitionGraph splits the timed nodes and non-dangling edges of g by week.
// Every such node and edge appears in exactly one slice, in address order.
// Complexity: O((V + E) log W) for W weeks.
func PartitionGraph(g *core.Graph) ([]GraphInterval, error) {
	intervals, err := GraphIntervals(g)
	if err != nil {
		return nil, err
	}
	out := make([]GraphInterval, len(intervals))
	for i, iv := range intervals {
		out[i].Interval = iv
	}
	for n, err := range g.Nodes(core.NodesOptions{}) {
		if err != nil {
			return nil, err
		}
		if n.TimestampMs == nil {
			continue
		}
		i := locate(intervals, *n.TimestampMs)
		out[i].Nodes = append(out[i].Nodes, n)
	}
	for e, err := range g.Edges(core.EdgesOptions{}) {
		if err != nil {
			return nil, err
		}
		i := locate(intervals, e.TimestampMs)
		out[i].Edges = append(out[i].Edges, e)
	}

	return out, nil
}

// locate returns the index of the interval containing ms. The intervals are
// consecutive and ms is known to be covered.
func locate(intervals []Interval, ms int64) int {
	return sort.Search(len(intervals), func(i int) bool { return intervals[i].EndTimeMs > ms })
}
