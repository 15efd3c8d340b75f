package model

// RenderStylesheet holds score-wide display settings decoded from the file.
type RenderStylesheet struct {
	HideDynamics bool
}

// Score is the root of the model. It owns every master bar and track;
// all back references below it point into this tree.
type Score struct {
	Album        string
	Artist       string
	Copyright    string
	Instructions string
	Music        string
	Notices      string
	SubTitle     string
	Title        string
	Words        string
	Tab          string

	Tempo      int
	TempoLabel string

	MasterBars []*MasterBar
	Tracks     []*Track

	// RepeatGroups is set by RebuildRepeatGroups.
	RepeatGroups []*RepeatGroup

	Stylesheet RenderStylesheet
}

func NewScore() *Score {
	return &Score{Tempo: DefaultTempo}
}

// CopyTo copies the song information of s into dst. Bars and tracks are not copied.
func (s *Score) CopyTo(dst *Score) {
	dst.Album = s.Album
	dst.Artist = s.Artist
	dst.Copyright = s.Copyright
	dst.Instructions = s.Instructions
	dst.Music = s.Music
	dst.Notices = s.Notices
	dst.SubTitle = s.SubTitle
	dst.Title = s.Title
	dst.Words = s.Words
	dst.Tab = s.Tab
	dst.Tempo = s.Tempo
	dst.TempoLabel = s.TempoLabel
}

// AddMasterBar appends bar and assigns its owner and index.
func (s *Score) AddMasterBar(bar *MasterBar) {
	bar.Score = s
	bar.Index = len(s.MasterBars)
	s.MasterBars = append(s.MasterBars, bar)
}

// AddTrack appends track and assigns its owner and index.
func (s *Score) AddTrack(track *Track) {
	track.Score = s
	track.Index = len(s.Tracks)
	s.Tracks = append(s.Tracks, track)
}

// Finish applies settings dependent values to every track.
func (s *Score) Finish(settings *Settings) {
	if settings == nil {
		settings = DefaultSettings()
	}
	for _, t := range s.Tracks {
		t.Finish(settings)
	}
}
