package main

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/Garik-/gpscore/pkg/model"
)

type scoreSummary struct {
	Title        string          `yaml:"title,omitempty"`
	Artist       string          `yaml:"artist,omitempty"`
	Album        string          `yaml:"album,omitempty"`
	Tempo        int             `yaml:"tempo"`
	TempoLabel   string          `yaml:"tempo_label,omitempty"`
	HideDynamics bool            `yaml:"hide_dynamics,omitempty"`
	MasterBars   int             `yaml:"master_bars"`
	RepeatGroups []repeatSummary `yaml:"repeat_groups,omitempty"`
	Tracks       []trackSummary  `yaml:"tracks"`
}

type repeatSummary struct {
	Bars     []int `yaml:"bars,flow"`
	Openings []int `yaml:"openings,flow"`
	Closings []int `yaml:"closings,flow,omitempty"`
}

type trackSummary struct {
	Name   string         `yaml:"name"`
	Staves []staffSummary `yaml:"staves"`
}

type staffSummary struct {
	Tuning   []int          `yaml:"tuning,flow,omitempty"`
	Capo     int            `yaml:"capo,omitempty"`
	Beats    int            `yaml:"beats"`
	Notes    int            `yaml:"notes"`
	Bends    map[string]int `yaml:"bends,omitempty"`
	Whammies map[string]int `yaml:"whammies,omitempty"`
}

func barIndexes(bars []*model.MasterBar) []int {
	out := make([]int, 0, len(bars))
	for _, b := range bars {
		out = append(out, b.Index)
	}
	return out
}

func summarizeStaff(staff *model.Staff) staffSummary {
	s := staffSummary{Tuning: staff.Tuning, Capo: staff.Capo}
	for _, bar := range staff.Bars {
		for _, voice := range bar.Voices {
			for _, beat := range voice.Beats {
				s.Beats++
				s.Notes += len(beat.Notes)
				if beat.HasWhammyBar() {
					if s.Whammies == nil {
						s.Whammies = make(map[string]int)
					}
					s.Whammies[beat.WhammyBarType.String()]++
				}
				for _, note := range beat.Notes {
					if !note.HasBend {
						continue
					}
					if s.Bends == nil {
						s.Bends = make(map[string]int)
					}
					s.Bends[note.BendType.String()]++
				}
			}
		}
	}
	return s
}

func summarize(score *model.Score) *scoreSummary {
	out := &scoreSummary{
		Title:        score.Title,
		Artist:       score.Artist,
		Album:        score.Album,
		Tempo:        score.Tempo,
		TempoLabel:   score.TempoLabel,
		HideDynamics: score.Stylesheet.HideDynamics,
		MasterBars:   len(score.MasterBars),
	}
	for _, g := range score.RepeatGroups {
		out.RepeatGroups = append(out.RepeatGroups, repeatSummary{
			Bars:     barIndexes(g.MasterBars),
			Openings: barIndexes(g.Openings),
			Closings: barIndexes(g.Closings),
		})
	}
	for _, track := range score.Tracks {
		t := trackSummary{Name: track.Name}
		for _, staff := range track.Staves {
			t.Staves = append(t.Staves, summarizeStaff(staff))
		}
		out.Tracks = append(out.Tracks, t)
	}
	return out
}

func writeSummary(w io.Writer, score *model.Score) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(summarize(score)); err != nil {
		return fmt.Errorf("encode summary: %w", err)
	}
	return enc.Close()
}
