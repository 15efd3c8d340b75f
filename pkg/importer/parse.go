package importer

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Garik-/gpscore/pkg/gpif"
	"github.com/Garik-/gpscore/pkg/model"
)

var (
	clefs = map[string]model.Clef{
		"G2":      model.ClefG2,
		"F4":      model.ClefF4,
		"C3":      model.ClefC3,
		"C4":      model.ClefC4,
		"Neutral": model.ClefNeutral,
	}
	ottavias = map[string]model.Ottavia{
		"8va":  model.Ottavia8va,
		"8vb":  model.Ottavia8vb,
		"15ma": model.Ottavia15ma,
		"15mb": model.Ottavia15mb,
	}
	simileMarks = map[string]model.SimileMark{
		"Simple":         model.SimileSimple,
		"FirstOfDouble":  model.SimileFirstOfDouble,
		"SecondOfDouble": model.SimileSecondOfDouble,
	}
	graceTypes = map[string]model.GraceType{
		"OnBeat":     model.GraceOnBeat,
		"BeforeBeat": model.GraceBeforeBeat,
	}
	fermataTypes = map[string]model.FermataType{
		"Short":  model.FermataShort,
		"Medium": model.FermataMedium,
		"Long":   model.FermataLong,
	}
	vibratos = map[string]model.VibratoType{
		"Slight": model.VibratoSlight,
		"Wide":   model.VibratoWide,
	}
	dynamics = map[string]model.DynamicValue{
		"PPP": model.DynamicPPP,
		"PP":  model.DynamicPP,
		"P":   model.DynamicP,
		"MP":  model.DynamicMP,
		"MF":  model.DynamicMF,
		"F":   model.DynamicF,
		"FF":  model.DynamicFF,
		"FFF": model.DynamicFFF,
	}
	keyModes = map[string]model.KeySignatureType{
		"Major": model.KeyMajor,
		"Minor": model.KeyMinor,
	}
	harmonicTypes = map[string]model.HarmonicType{
		"NoHarmonic": model.HarmonicNone,
		"Natural":    model.HarmonicNatural,
		"Artificial": model.HarmonicArtificial,
		"Pinch":      model.HarmonicPinch,
		"Tap":        model.HarmonicTap,
		"Semi":       model.HarmonicSemi,
		"Feedback":   model.HarmonicFeedback,
	}
	fingers = map[string]model.Fingers{
		"P": model.FingerThumb,
		"I": model.FingerIndex,
		"M": model.FingerMiddle,
		"A": model.FingerAnnular,
		"C": model.FingerLittle,
	}
	arpeggios = map[string]model.BrushType{
		"Up":   model.ArpeggioUp,
		"Down": model.ArpeggioDown,
	}
	brushes = map[string]model.BrushType{
		"Up":   model.BrushUp,
		"Down": model.BrushDown,
	}
	// tremolo picking rate as a fraction of the beat
	tremoloSpeeds = map[string]model.Duration{
		"1/2": model.DurationEighth,
		"1/4": model.DurationSixteenth,
		"1/8": model.DurationThirtySecond,
	}
	noteValues = map[string]model.Duration{
		"Long":        model.DurationQuadrupleWhole,
		"DoubleWhole": model.DurationDoubleWhole,
		"Whole":       model.DurationWhole,
		"Half":        model.DurationHalf,
		"Quarter":     model.DurationQuarter,
		"Eighth":      model.DurationEighth,
		"16th":        model.DurationSixteenth,
		"32nd":        model.DurationThirtySecond,
		"64th":        model.DurationSixtyFourth,
		"128th":       model.DurationOneHundredTwentyEighth,
		"256th":       model.DurationTwoHundredFiftySixth,
	}
)

const (
	// bend values are stored in percent of a tone
	bendValueFactor = 1.0 / 25
	// bend offsets are stored in percent of the beat
	bendOffsetFactor = float64(model.BendPointMaxOffset) / 100
)

// enumValue maps text through table. Empty text yields def silently, unknown
// text yields def and a warning.
func enumValue[T any](log *zap.Logger, path, field, text string, table map[string]T, def T) T {
	text = strings.TrimSpace(text)
	if text == "" {
		return def
	}
	if v, ok := table[text]; ok {
		return v
	}
	log.Warn("unknown value, using default",
		zap.String("path", path),
		zap.String("field", field),
		zap.String("value", text))
	return def
}

func parseInt(entity, path, field, text string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, malformed(entity, path, errors.Wrapf(err, "%s", field))
	}
	return v, nil
}

func parseFloat(entity, path, field, text string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, malformed(entity, path, errors.Wrapf(err, "%s", field))
	}
	return v, nil
}

func parseInts(entity, path, field, text string) ([]int, error) {
	fields := strings.Fields(text)
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := parseInt(entity, path, field, f)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// parseFraction reads "n/d" into its parts.
func parseFraction(entity, path, field, text string) (int, int, error) {
	parts := strings.Split(strings.TrimSpace(text), "/")
	if len(parts) != 2 {
		return 0, 0, malformed(entity, path, errors.Errorf("%s: expected n/d, got %q", field, text))
	}
	n, err := parseInt(entity, path, field, parts[0])
	if err != nil {
		return 0, 0, err
	}
	d, err := parseInt(entity, path, field, parts[1])
	if err != nil {
		return 0, 0, err
	}
	if d <= 0 {
		return 0, 0, malformed(entity, path, errors.Errorf("%s: zero or negative denominator in %q", field, text))
	}
	return n, d, nil
}

func bendValue(v float64) int {
	return int(math.Round(v * bendValueFactor))
}

func bendOffset(v float64) int {
	return int(math.Round(v * bendOffsetFactor))
}

// readPoints collects the origin, middle and destination points of the gesture
// stored in properties named prefix+part, for example BendOriginValue. Missing
// origin and destination default to the start and end of the beat at value zero.
// Middle points past the destination are dropped.
func readPoints(entity, path string, props []gpif.Property, prefix string) ([]model.BendPoint, error) {
	get := func(part string) (float64, bool, error) {
		prop, ok := gpif.FindProperty(props, prefix+part)
		if !ok || strings.TrimSpace(prop.Float) == "" {
			return 0, false, nil
		}
		v, err := parseFloat(entity, path, prefix+part, prop.Float)
		return v, err == nil, err
	}

	origin := model.BendPoint{}
	destination := model.BendPoint{Offset: model.BendPointMaxOffset}

	if v, ok, err := get("OriginValue"); err != nil {
		return nil, err
	} else if ok {
		origin.Value = bendValue(v)
	}
	if v, ok, err := get("OriginOffset"); err != nil {
		return nil, err
	} else if ok {
		origin.Offset = bendOffset(v)
	}
	if v, ok, err := get("DestinationValue"); err != nil {
		return nil, err
	} else if ok {
		destination.Value = bendValue(v)
	}
	if v, ok, err := get("DestinationOffset"); err != nil {
		return nil, err
	} else if ok {
		destination.Offset = bendOffset(v)
	}

	points := []model.BendPoint{origin}

	middle, hasMiddle, err := get("MiddleValue")
	if err != nil {
		return nil, err
	}
	if hasMiddle {
		value := bendValue(middle)
		offset1, has1, err := get("MiddleOffset1")
		if err != nil {
			return nil, err
		}
		offset2, has2, err := get("MiddleOffset2")
		if err != nil {
			return nil, err
		}
		if has1 && bendOffset(offset1) < destination.Offset {
			points = append(points, model.BendPoint{Offset: bendOffset(offset1), Value: value})
		}
		if has2 && bendOffset(offset2) < destination.Offset {
			points = append(points, model.BendPoint{Offset: bendOffset(offset2), Value: value})
		}
		if !has1 && !has2 {
			points = append(points, model.BendPoint{Offset: model.BendPointMaxOffset / 2, Value: value})
		}
	}

	return append(points, destination), nil
}

func enabled(props []gpif.Property, name string) bool {
	p, ok := gpif.FindProperty(props, name)
	return ok && p.Enable != nil
}
