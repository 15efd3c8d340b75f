package model

// Note is a single played note of a beat.
type Note struct {
	Index int
	Beat  *Beat

	Fret int
	// String is 1-based, 1 being the lowest string of the staff tuning.
	String int

	IsTieOrigin      bool
	IsTieDestination bool
	// TieOrigin is the note this one is tied from, resolved after decoding.
	TieOrigin *Note

	BendType        BendType
	BendPoints      []BendPoint
	IsContinuedBend bool
	HasBend         bool

	SlideType   SlideType
	SlideInType SlideInType
	Vibrato     VibratoType

	IsDead             bool
	IsGhost            bool
	IsPalmMute         bool
	IsLetRing          bool
	IsHammerPullOrigin bool
	IsStaccato         bool
	Accentuated        AccentuationType

	HarmonicType  HarmonicType
	HarmonicValue float64

	// TrillValue is the MIDI pitch alternated with the note, -1 without a trill.
	TrillValue int
	TrillSpeed Duration

	LeftHandFinger  Fingers
	RightHandFinger Fingers

	// RealValue and DisplayValue are MIDI pitches computed by Finish.
	RealValue    int
	DisplayValue int
}

func NewNote() *Note {
	return &Note{Fret: -1, TrillValue: -1, TrillSpeed: DurationSixteenth}
}

func (n *Note) IsTrill() bool {
	return n.TrillValue >= 0
}

// TrillFret returns the fret of the trill pitch on the string of the note.
func (n *Note) TrillFret() int {
	return n.TrillValue - n.StringTuning()
}

func (n *Note) IsHarmonic() bool {
	return n.HarmonicType != HarmonicNone
}

func (n *Note) AddBendPoint(p BendPoint) {
	n.BendPoints = append(n.BendPoints, p)
}

func (n *Note) IsStringed() bool {
	return n.Fret >= 0 && n.String > 0
}

func (n *Note) staff() *Staff {
	if n.Beat == nil || n.Beat.Voice == nil || n.Beat.Voice.Bar == nil {
		return nil
	}
	return n.Beat.Voice.Bar.Staff
}

// StringTuning returns the open pitch of the note's string, 0 when unknown.
func (n *Note) StringTuning() int {
	s := n.staff()
	if s == nil || n.String < 1 || n.String > len(s.Tuning) {
		return 0
	}
	return s.Tuning[n.String-1]
}

func (n *Note) Finish(settings *Settings) {
	s := n.staff()
	if s == nil || !n.IsStringed() {
		return
	}
	n.RealValue = n.StringTuning() + s.Capo + n.Fret + s.TranspositionPitch
	n.DisplayValue = n.RealValue - s.DisplayTranspositionPitch - n.Beat.Ottava.Semitones()
	if n.Beat.Voice != nil && n.Beat.Voice.Bar != nil {
		n.DisplayValue -= n.Beat.Voice.Bar.ClefOttava.Semitones()
	}
}
