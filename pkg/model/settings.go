package model

// Settings carries the caller supplied options applied by Score.Finish.
type Settings struct {
	// TranspositionPitches shifts the audible pitch of every note, per track index.
	TranspositionPitches []int `yaml:"transposition_pitches"`
	// DisplayTranspositionPitches shifts the written pitch, per track index.
	DisplayTranspositionPitches []int `yaml:"display_transposition_pitches"`

	ShowTablature        bool `yaml:"show_tablature"`
	ShowStandardNotation bool `yaml:"show_standard_notation"`
}

func DefaultSettings() *Settings {
	return &Settings{
		ShowTablature:        true,
		ShowStandardNotation: true,
	}
}

func pitchAt(pitches []int, index int) int {
	if index < 0 || index >= len(pitches) {
		return 0
	}
	return pitches[index]
}
