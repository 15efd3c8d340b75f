package model

// Fermata is a pause marker placed at a tick offset within a master bar.
type Fermata struct {
	Type   FermataType
	Length float32
}

// Section is a rehearsal marker.
type Section struct {
	Marker string
	Text   string
}

// MasterBar holds the measure level data shared by all tracks.
type MasterBar struct {
	Index int
	Score *Score

	// Start is the absolute tick of the bar, set by LinkTimeline.
	Start int

	TimeSignatureNumerator   int
	TimeSignatureDenominator int

	KeySignature     int
	KeySignatureType KeySignatureType

	IsRepeatStart bool
	RepeatCount   int
	// AlternateEndings has bit n set when the bar is played on pass n+1.
	AlternateEndings byte

	Section *Section

	// Fermata maps tick offsets relative to Start.
	Fermata map[int]*Fermata

	PreviousMasterBar *MasterBar
	NextMasterBar     *MasterBar
	RepeatGroup       *RepeatGroup
}

func NewMasterBar() *MasterBar {
	return &MasterBar{
		TimeSignatureNumerator:   4,
		TimeSignatureDenominator: 4,
		Fermata:                  make(map[int]*Fermata),
	}
}

func (m *MasterBar) IsRepeatEnd() bool {
	return m.RepeatCount > 0
}

func (m *MasterBar) IsSectionStart() bool {
	return m.Section != nil
}

// AddFermata registers f at offset ticks from the bar start.
func (m *MasterBar) AddFermata(offset int, f *Fermata) {
	if m.Fermata == nil {
		m.Fermata = make(map[int]*Fermata)
	}
	m.Fermata[offset] = f
}

// CalculateDuration returns the length of the bar in ticks according to its time signature.
func (m *MasterBar) CalculateDuration() int {
	return ValueToTicks(m.TimeSignatureDenominator) * m.TimeSignatureNumerator
}

// HasAlternateEnding reports whether the bar is played on the given 1-based pass.
func (m *MasterBar) HasAlternateEnding(pass int) bool {
	if pass < 1 || pass > 8 {
		return false
	}
	return m.AlternateEndings&(1<<uint(pass-1)) != 0
}
