package model

// BendPointMaxOffset is the offset of the last point of a bend or whammy gesture.
const BendPointMaxOffset = 60

// BendPoint is one sample of a bend or whammy gesture. Offset is a position on a
// 0..60 scale over the beat, Value is measured in quarter tones.
type BendPoint struct {
	Offset int
	Value  int
}

// Beat is a rhythmic unit of a voice.
type Beat struct {
	Index int
	Voice *Voice

	Notes []*Note

	Duration          Duration
	Dots              int
	TupletNumerator   int
	TupletDenominator int

	GraceType GraceType
	Ottava    Ottavia
	Dynamics  DynamicValue
	Vibrato   VibratoType
	BrushType BrushType

	// TremoloSpeed is the picking rate of a tremolo picked beat, zero otherwise.
	TremoloSpeed Duration

	// Fermata is resolved from the master bar by LinkTimeline.
	Fermata *Fermata

	WhammyBarType     WhammyType
	WhammyBarPoints   []BendPoint
	IsContinuedWhammy bool

	// PlaybackStart is the absolute tick the beat starts at, set by LinkTimeline.
	PlaybackStart int
}

func NewBeat() *Beat {
	return &Beat{
		Duration:          DurationQuarter,
		TupletNumerator:   1,
		TupletDenominator: 1,
		Dynamics:          DynamicF,
	}
}

func (b *Beat) AddNote(n *Note) {
	n.Beat = b
	n.Index = len(b.Notes)
	b.Notes = append(b.Notes, n)
}

func (b *Beat) AddWhammyBarPoint(p BendPoint) {
	b.WhammyBarPoints = append(b.WhammyBarPoints, p)
}

func (b *Beat) IsRest() bool {
	return len(b.Notes) == 0
}

func (b *Beat) IsTremolo() bool {
	return b.TremoloSpeed != 0
}

func (b *Beat) HasWhammyBar() bool {
	return b.WhammyBarType != WhammyNone
}

// HasTuplet reports whether the beat is part of a tuplet other than 1:1.
func (b *Beat) HasTuplet() bool {
	return !(b.TupletNumerator == 1 && b.TupletDenominator == 1) &&
		!(b.TupletNumerator <= 0 || b.TupletDenominator <= 0)
}

// PlaybackDuration returns the tick length the beat occupies on the timeline.
// Grace beats borrow their time from a neighbour and occupy no ticks of their own.
func (b *Beat) PlaybackDuration() int {
	if b.GraceType != GraceNone {
		return 0
	}
	return b.CalculateDuration()
}

// CalculateDuration returns the written length of the beat in ticks.
func (b *Beat) CalculateDuration() int {
	ticks := applyDots(b.Duration.Ticks(), b.Dots)
	return applyTuplet(ticks, b.TupletNumerator, b.TupletDenominator)
}

// PreviousBeat returns the beat before b in the same voice slot, continuing
// into the previous bar of the staff when b opens its bar.
func (b *Beat) PreviousBeat() *Beat {
	if b.Voice == nil {
		return nil
	}
	if b.Index > 0 {
		return b.Voice.Beats[b.Index-1]
	}
	bar := b.Voice.Bar
	if bar == nil {
		return nil
	}
	for prev := bar.PreviousBar(); prev != nil; prev = prev.PreviousBar() {
		if b.Voice.Index >= len(prev.Voices) {
			return nil
		}
		beats := prev.Voices[b.Voice.Index].Beats
		if len(beats) > 0 {
			return beats[len(beats)-1]
		}
	}
	return nil
}

// NoteOnString returns the note of b played on the given string.
func (b *Beat) NoteOnString(str int) *Note {
	for _, n := range b.Notes {
		if n.String == str {
			return n
		}
	}
	return nil
}

func (b *Beat) Finish(settings *Settings) {
	for _, n := range b.Notes {
		n.Finish(settings)
	}
}
