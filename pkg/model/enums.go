package model

// BendType classifies the bend gesture of a note.
type BendType int

const (
	BendNone BendType = iota
	BendCustom
	BendBend
	BendRelease
	BendBendRelease
	BendHold
	BendPrebend
	BendPrebendBend
	BendPrebendRelease
)

var bendTypeNames = [...]string{"None", "Custom", "Bend", "Release", "BendRelease", "Hold", "Prebend", "PrebendBend", "PrebendRelease"}

func (t BendType) String() string {
	if t < 0 || int(t) >= len(bendTypeNames) {
		return "Unknown"
	}
	return bendTypeNames[t]
}

// WhammyType classifies the whammy bar gesture of a beat.
type WhammyType int

const (
	WhammyNone WhammyType = iota
	WhammyCustom
	WhammyDive
	WhammyDip
	WhammyHold
	WhammyPredive
	WhammyPrediveDive
)

var whammyTypeNames = [...]string{"None", "Custom", "Dive", "Dip", "Hold", "Predive", "PrediveDive"}

func (t WhammyType) String() string {
	if t < 0 || int(t) >= len(whammyTypeNames) {
		return "Unknown"
	}
	return whammyTypeNames[t]
}

type GraceType int

const (
	GraceNone GraceType = iota
	GraceOnBeat
	GraceBeforeBeat
)

func (t GraceType) String() string {
	switch t {
	case GraceOnBeat:
		return "OnBeat"
	case GraceBeforeBeat:
		return "BeforeBeat"
	}
	return "None"
}

// Ottavia is an octave transposition marker.
type Ottavia int

const (
	OttaviaRegular Ottavia = iota
	Ottavia15ma
	Ottavia8va
	Ottavia8vb
	Ottavia15mb
)

func (o Ottavia) String() string {
	switch o {
	case Ottavia15ma:
		return "15ma"
	case Ottavia8va:
		return "8va"
	case Ottavia8vb:
		return "8vb"
	case Ottavia15mb:
		return "15mb"
	}
	return "Regular"
}

// Semitones returns the pitch shift the marker asks the reader to apply.
func (o Ottavia) Semitones() int {
	switch o {
	case Ottavia15ma:
		return 24
	case Ottavia8va:
		return 12
	case Ottavia8vb:
		return -12
	case Ottavia15mb:
		return -24
	}
	return 0
}

type SimileMark int

const (
	SimileNone SimileMark = iota
	SimileSimple
	SimileFirstOfDouble
	SimileSecondOfDouble
)

func (s SimileMark) String() string {
	switch s {
	case SimileSimple:
		return "Simple"
	case SimileFirstOfDouble:
		return "FirstOfDouble"
	case SimileSecondOfDouble:
		return "SecondOfDouble"
	}
	return "None"
}

type FermataType int

const (
	FermataShort FermataType = iota
	FermataMedium
	FermataLong
)

func (t FermataType) String() string {
	switch t {
	case FermataShort:
		return "Short"
	case FermataLong:
		return "Long"
	}
	return "Medium"
}

type VibratoType int

const (
	VibratoNone VibratoType = iota
	VibratoSlight
	VibratoWide
)

func (v VibratoType) String() string {
	switch v {
	case VibratoSlight:
		return "Slight"
	case VibratoWide:
		return "Wide"
	}
	return "None"
}

// SlideType describes how a note slides out towards the next note.
type SlideType int

const (
	SlideNone SlideType = iota
	SlideShift
	SlideLegato
	SlideOutUp
	SlideOutDown
	SlidePickSlideDown
	SlidePickSlideUp
)

var slideTypeNames = [...]string{"None", "Shift", "Legato", "OutUp", "OutDown", "PickSlideDown", "PickSlideUp"}

func (s SlideType) String() string {
	if s < 0 || int(s) >= len(slideTypeNames) {
		return "Unknown"
	}
	return slideTypeNames[s]
}

// SlideInType describes how a note is approached.
type SlideInType int

const (
	SlideInNone SlideInType = iota
	SlideInFromBelow
	SlideInFromAbove
)

func (s SlideInType) String() string {
	switch s {
	case SlideInFromBelow:
		return "IntoFromBelow"
	case SlideInFromAbove:
		return "IntoFromAbove"
	}
	return "None"
}

type Clef int

const (
	ClefG2 Clef = iota
	ClefF4
	ClefC3
	ClefC4
	ClefNeutral
)

func (c Clef) String() string {
	switch c {
	case ClefF4:
		return "F4"
	case ClefC3:
		return "C3"
	case ClefC4:
		return "C4"
	case ClefNeutral:
		return "Neutral"
	}
	return "G2"
}

type KeySignatureType int

const (
	KeyMajor KeySignatureType = iota
	KeyMinor
)

func (k KeySignatureType) String() string {
	if k == KeyMinor {
		return "Minor"
	}
	return "Major"
}

type AccentuationType int

const (
	AccentNone AccentuationType = iota
	AccentNormal
	AccentHeavy
)

func (a AccentuationType) String() string {
	switch a {
	case AccentNormal:
		return "Normal"
	case AccentHeavy:
		return "Heavy"
	}
	return "None"
}

type DynamicValue int

const (
	DynamicPPP DynamicValue = iota
	DynamicPP
	DynamicP
	DynamicMP
	DynamicMF
	DynamicF
	DynamicFF
	DynamicFFF
)

var dynamicNames = [...]string{"PPP", "PP", "P", "MP", "MF", "F", "FF", "FFF"}

func (d DynamicValue) String() string {
	if d < 0 || int(d) >= len(dynamicNames) {
		return "Unknown"
	}
	return dynamicNames[d]
}

// Duration is the written note value of a beat.
type Duration int

const (
	DurationQuadrupleWhole         Duration = -4
	DurationDoubleWhole            Duration = -2
	DurationWhole                  Duration = 1
	DurationHalf                   Duration = 2
	DurationQuarter                Duration = 4
	DurationEighth                 Duration = 8
	DurationSixteenth              Duration = 16
	DurationThirtySecond           Duration = 32
	DurationSixtyFourth            Duration = 64
	DurationOneHundredTwentyEighth Duration = 128
	DurationTwoHundredFiftySixth   Duration = 256
)

// Ticks returns the undotted, untupled length of d.
func (d Duration) Ticks() int {
	switch {
	case d < 0:
		return QuarterTime * 4 * int(-d)
	case d == 0:
		return QuarterTime
	}
	return QuarterTime * 4 / int(d)
}

type HarmonicType int

const (
	HarmonicNone HarmonicType = iota
	HarmonicNatural
	HarmonicArtificial
	HarmonicPinch
	HarmonicTap
	HarmonicSemi
	HarmonicFeedback
)

var harmonicTypeNames = [...]string{"None", "Natural", "Artificial", "Pinch", "Tap", "Semi", "Feedback"}

func (h HarmonicType) String() string {
	if h < 0 || int(h) >= len(harmonicTypeNames) {
		return "Unknown"
	}
	return harmonicTypeNames[h]
}

// BrushType is the stroke direction of a strummed or arpeggiated beat.
type BrushType int

const (
	BrushNone BrushType = iota
	BrushUp
	BrushDown
	ArpeggioUp
	ArpeggioDown
)

var brushTypeNames = [...]string{"None", "BrushUp", "BrushDown", "ArpeggioUp", "ArpeggioDown"}

func (b BrushType) String() string {
	if b < 0 || int(b) >= len(brushTypeNames) {
		return "Unknown"
	}
	return brushTypeNames[b]
}

type Fingers int

const (
	FingerUnknown Fingers = iota
	FingerThumb
	FingerIndex
	FingerMiddle
	FingerAnnular
	FingerLittle
)

var fingerNames = [...]string{"Unknown", "Thumb", "Index", "Middle", "Annular", "Little"}

func (f Fingers) String() string {
	if f < 0 || int(f) >= len(fingerNames) {
		return "Unknown"
	}
	return fingerNames[f]
}
