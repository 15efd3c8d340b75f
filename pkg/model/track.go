package model

// Track is one instrument of the score.
type Track struct {
	Index int
	Score *Score

	Name      string
	ShortName string

	Staves []*Staff
}

func NewTrack() *Track {
	return &Track{}
}

func (t *Track) AddStaff(staff *Staff) {
	staff.Track = t
	staff.Index = len(t.Staves)
	t.Staves = append(t.Staves, staff)
}

func (t *Track) Finish(settings *Settings) {
	for _, s := range t.Staves {
		s.Finish(settings)
	}
}

// Staff is one notation system of a track.
type Staff struct {
	Index int
	Track *Track

	// Tuning lists the open string pitches, lowest string first.
	Tuning []int
	Capo   int

	TranspositionPitch        int
	DisplayTranspositionPitch int

	ShowTablature        bool
	ShowStandardNotation bool

	Bars []*Bar
}

func NewStaff() *Staff {
	return &Staff{ShowTablature: true, ShowStandardNotation: true}
}

func (s *Staff) IsStringed() bool {
	return len(s.Tuning) > 0
}

func (s *Staff) AddBar(bar *Bar) {
	bar.Staff = s
	bar.Index = len(s.Bars)
	s.Bars = append(s.Bars, bar)
}

func (s *Staff) Finish(settings *Settings) {
	s.TranspositionPitch = pitchAt(settings.TranspositionPitches, s.Track.Index)
	s.DisplayTranspositionPitch = pitchAt(settings.DisplayTranspositionPitches, s.Track.Index)
	s.ShowTablature = settings.ShowTablature && s.IsStringed()
	s.ShowStandardNotation = settings.ShowStandardNotation || !s.ShowTablature
	for _, b := range s.Bars {
		b.Finish(settings)
	}
}
