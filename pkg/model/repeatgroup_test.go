package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type barFlags struct {
	start   bool
	count   int
	endings byte
}

func scoreWithBars(flags ...barFlags) *Score {
	s := NewScore()
	for _, f := range flags {
		mb := NewMasterBar()
		mb.IsRepeatStart = f.start
		mb.RepeatCount = f.count
		mb.AlternateEndings = f.endings
		s.AddMasterBar(mb)
	}
	return s
}

func groupSizes(groups []*RepeatGroup) []int {
	sizes := make([]int, 0, len(groups))
	for _, g := range groups {
		sizes = append(sizes, len(g.MasterBars))
	}
	return sizes
}

func TestRebuildRepeatGroups_NoRepeats(t *testing.T) {
	s := scoreWithBars(barFlags{}, barFlags{}, barFlags{})

	groups := s.RebuildRepeatGroups()

	require.Len(t, groups, 1)
	assert.Equal(t, []int{3}, groupSizes(groups))
	assert.False(t, groups[0].IsClosed)
}

func TestRebuildRepeatGroups_RepeatStartOpensGroup(t *testing.T) {
	// the second bar starts a repeat while the first group is still open
	s := scoreWithBars(
		barFlags{},
		barFlags{start: true},
		barFlags{count: 2},
		barFlags{},
	)

	groups := s.RebuildRepeatGroups()

	assert.Equal(t, []int{1, 2, 1}, groupSizes(groups))
	assert.False(t, groups[0].IsClosed)
	assert.True(t, groups[1].IsClosed)
	assert.Same(t, s.MasterBars[1], groups[1].Openings[0])
	assert.Same(t, s.MasterBars[2], groups[1].Closings[0])
	assert.Same(t, groups[1], s.MasterBars[2].RepeatGroup)
}

func TestRebuildRepeatGroups_AlternateEndings(t *testing.T) {
	s := scoreWithBars(
		barFlags{start: true},
		barFlags{count: 2},
		// endings 1 and 2 share one bar after the closed group
		barFlags{endings: 0x3},
		barFlags{endings: 0x3, count: 2},
		barFlags{endings: 0x4},
		// the open third ending keeps absorbing bars until the next repeat start
		barFlags{},
		barFlags{start: true},
	)

	groups := s.RebuildRepeatGroups()

	require.Equal(t, []int{6, 1}, groupSizes(groups))
	g := groups[0]
	assert.Equal(t, []*MasterBar{s.MasterBars[0], s.MasterBars[2], s.MasterBars[4]}, g.Openings)
	assert.Equal(t, []*MasterBar{s.MasterBars[1], s.MasterBars[3]}, g.Closings)
	assert.False(t, g.IsClosed)
	assert.True(t, s.MasterBars[2].HasAlternateEnding(1))
	assert.True(t, s.MasterBars[2].HasAlternateEnding(2))
	assert.False(t, s.MasterBars[2].HasAlternateEnding(3))
}

func TestRebuildRepeatGroups_ClosedGroupThenPlainBar(t *testing.T) {
	s := scoreWithBars(
		barFlags{start: true},
		barFlags{count: 3},
		barFlags{},
		barFlags{},
	)

	groups := s.RebuildRepeatGroups()

	assert.Equal(t, []int{2, 2}, groupSizes(groups))
	assert.True(t, groups[0].IsClosed)
	assert.False(t, groups[1].IsClosed)
}

func TestRebuildRepeatGroups_Idempotent(t *testing.T) {
	s := scoreWithBars(
		barFlags{start: true},
		barFlags{count: 2},
		barFlags{endings: 0x1, count: 2},
		barFlags{endings: 0x2},
		barFlags{start: true, count: 1},
	)

	first := groupSizes(s.RebuildRepeatGroups())
	second := groupSizes(s.RebuildRepeatGroups())

	assert.Equal(t, first, second)
	assert.Equal(t, second, groupSizes(s.RepeatGroups))
}

// every combination of flags over a few bars must produce a gapless partition
func TestRebuildRepeatGroups_Partition(t *testing.T) {
	options := []barFlags{
		{},
		{start: true},
		{count: 2},
		{endings: 0x1},
		{endings: 0x2, count: 1},
		{start: true, count: 2},
	}
	const bars = 4

	total := 1
	for i := 0; i < bars; i++ {
		total *= len(options)
	}

	for n := 0; n < total; n++ {
		flags := make([]barFlags, bars)
		k := n
		for i := range flags {
			flags[i] = options[k%len(options)]
			k /= len(options)
		}
		s := scoreWithBars(flags...)

		groups := s.RebuildRepeatGroups()

		var seen []*MasterBar
		for _, g := range groups {
			require.NotEmpty(t, g.MasterBars)
			for _, mb := range g.MasterBars {
				assert.Same(t, g, mb.RepeatGroup)
			}
			seen = append(seen, g.MasterBars...)
		}
		require.Equal(t, s.MasterBars, seen, "flags %v", flags)
	}
}
