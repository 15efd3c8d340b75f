package model

// Bar is the content of one staff within one master bar.
type Bar struct {
	Index int
	Staff *Staff

	Clef       Clef
	ClefOttava Ottavia
	SimileMark SimileMark

	Voices []*Voice
}

func NewBar() *Bar {
	return &Bar{}
}

// MasterBar returns the master bar at the same index, or nil when the bar is detached.
func (b *Bar) MasterBar() *MasterBar {
	if b.Staff == nil || b.Staff.Track == nil || b.Staff.Track.Score == nil {
		return nil
	}
	bars := b.Staff.Track.Score.MasterBars
	if b.Index >= len(bars) {
		return nil
	}
	return bars[b.Index]
}

// PreviousBar returns the bar before b on the same staff.
func (b *Bar) PreviousBar() *Bar {
	if b.Staff == nil || b.Index == 0 || b.Index > len(b.Staff.Bars) {
		return nil
	}
	return b.Staff.Bars[b.Index-1]
}

func (b *Bar) AddVoice(v *Voice) {
	v.Bar = b
	v.Index = len(b.Voices)
	b.Voices = append(b.Voices, v)
}

func (b *Bar) IsEmpty() bool {
	for _, v := range b.Voices {
		if !v.IsEmpty() {
			return false
		}
	}
	return true
}

func (b *Bar) Finish(settings *Settings) {
	for _, v := range b.Voices {
		v.Finish(settings)
	}
}

// Voice is one rhythmic layer of a bar.
type Voice struct {
	Index int
	Bar   *Bar

	Beats []*Beat
}

func NewVoice() *Voice {
	return &Voice{}
}

func (v *Voice) AddBeat(beat *Beat) {
	beat.Voice = v
	beat.Index = len(v.Beats)
	v.Beats = append(v.Beats, beat)
}

func (v *Voice) IsEmpty() bool {
	return len(v.Beats) == 0
}

func (v *Voice) Finish(settings *Settings) {
	for _, b := range v.Beats {
		b.Finish(settings)
	}
}
