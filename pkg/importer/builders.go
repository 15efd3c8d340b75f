package importer

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Garik-/gpscore/pkg/gpif"
	"github.com/Garik-/gpscore/pkg/model"
)

const emptySlot = "-1"

// builder turns one decoded GPIF document into a model tree. Every id
// reference creates a fresh entity, GPIF shares records between identical beats.
type builder struct {
	doc *gpif.Document
	log *zap.Logger

	score  *model.Score
	staves []*model.Staff
}

func newBuilder(doc *gpif.Document, log *zap.Logger) *builder {
	return &builder{doc: doc, log: log}
}

func (b *builder) build() (*model.Score, error) {
	if b.doc.Score == nil {
		return nil, malformed("score", "GPIF/Score", errors.New("missing element"))
	}
	if b.doc.MasterBars == nil {
		return nil, malformed("score", "GPIF/MasterBars", errors.New("missing element"))
	}

	b.score = model.NewScore()
	b.buildScoreInfo(b.doc.Score)
	if err := b.buildTempo(b.doc.MasterTrack); err != nil {
		return nil, err
	}

	for i := range b.doc.Tracks {
		if err := b.buildTrack(&b.doc.Tracks[i]); err != nil {
			return nil, err
		}
	}

	for i := range b.doc.MasterBars.Items {
		if err := b.buildMasterBar(i, &b.doc.MasterBars.Items[i]); err != nil {
			return nil, err
		}
	}
	return b.score, nil
}

func (b *builder) buildScoreInfo(info *gpif.ScoreInfo) {
	s := b.score
	s.Title = info.Title
	s.SubTitle = info.SubTitle
	s.Artist = info.Artist
	s.Album = info.Album
	s.Words = info.Words
	s.Music = info.Music
	s.Copyright = info.Copyright
	s.Tab = info.Tabber
	s.Instructions = info.Instructions
	s.Notices = info.Notices

	if info.WordsAndMusic != "" {
		if s.Words == "" {
			s.Words = info.WordsAndMusic
		}
		if s.Music == "" {
			s.Music = info.WordsAndMusic
		}
	}
}

// buildTempo applies the tempo automation of the first bar.
func (b *builder) buildTempo(mt *gpif.MasterTrack) error {
	if mt == nil {
		return nil
	}
	log := b.log.Named("tempo")
	for i, a := range mt.Automations {
		if a.Type != "Tempo" {
			continue
		}
		path := fmt.Sprintf("automation %d", i)
		bar := 0
		if a.Bar != "" {
			var err error
			if bar, err = parseInt("automation", path, "Bar", a.Bar); err != nil {
				return err
			}
		}
		if bar != 0 {
			log.Debug("tempo change", zap.Int("bar", bar), zap.String("value", a.Value))
			continue
		}
		fields := strings.Fields(a.Value)
		if len(fields) == 0 {
			return malformed("automation", path, errors.New("empty tempo value"))
		}
		tempo, err := parseFloat("automation", path, "Value", fields[0])
		if err != nil {
			return err
		}
		b.score.Tempo = int(tempo)
		b.score.TempoLabel = a.Text
		return nil
	}
	return nil
}

func (b *builder) buildTrack(rec *gpif.Track) error {
	track := model.NewTrack()
	track.Name = rec.Name
	track.ShortName = rec.ShortName
	b.score.AddTrack(track)

	staves := rec.Staves
	if len(staves) == 0 {
		// single staff files keep the staff properties on the track
		staves = []gpif.Staff{{Properties: rec.Properties}}
	}

	for i := range staves {
		path := fmt.Sprintf("track %s/staff %d", rec.ID, i)
		staff, err := b.buildStaff(path, staves[i].Properties)
		if err != nil {
			return err
		}
		track.AddStaff(staff)
		b.staves = append(b.staves, staff)
	}
	return nil
}

func (b *builder) buildStaff(path string, props []gpif.Property) (*model.Staff, error) {
	staff := model.NewStaff()
	if p, ok := gpif.FindProperty(props, "Tuning"); ok {
		tuning, err := parseInts("staff", path, "Tuning", p.Pitches)
		if err != nil {
			return nil, err
		}
		staff.Tuning = tuning
	}
	if p, ok := gpif.FindProperty(props, "CapoFret"); ok && strings.TrimSpace(p.Fret) != "" {
		capo, err := parseInt("staff", path, "CapoFret", p.Fret)
		if err != nil {
			return nil, err
		}
		staff.Capo = capo
	}
	return staff, nil
}

func (b *builder) buildMasterBar(index int, rec *gpif.MasterBar) error {
	log := b.log.Named("masterbar")
	path := fmt.Sprintf("masterbar %d", index)
	mb := model.NewMasterBar()

	if rec.Time != "" {
		num, den, err := parseFraction("masterbar", path, "Time", rec.Time)
		if err != nil {
			return err
		}
		if num <= 0 {
			return malformed("masterbar", path, errors.Errorf("Time: bad numerator in %q", rec.Time))
		}
		mb.TimeSignatureNumerator = num
		mb.TimeSignatureDenominator = den
	}

	if rec.Key.AccidentalCount != "" {
		count, err := parseInt("masterbar", path, "AccidentalCount", rec.Key.AccidentalCount)
		if err != nil {
			return err
		}
		mb.KeySignature = count
	}
	mb.KeySignatureType = enumValue(log, path, "Mode", rec.Key.Mode, keyModes, model.KeyMajor)

	if rec.Repeat != nil {
		mb.IsRepeatStart = rec.Repeat.Start
		if rec.Repeat.End {
			mb.RepeatCount = rec.Repeat.Count
		}
	}

	endings, err := parseInts("masterbar", path, "AlternateEndings", rec.AlternateEndings)
	if err != nil {
		return err
	}
	for _, e := range endings {
		if e < 1 || e > 8 {
			log.Warn("alternate ending out of range", zap.String("path", path), zap.Int("ending", e))
			continue
		}
		mb.AlternateEndings |= 1 << uint(e-1)
	}

	if rec.Section != nil {
		mb.Section = &model.Section{Marker: rec.Section.Letter, Text: rec.Section.Text}
	}

	for i, f := range rec.Fermatas {
		fpath := fmt.Sprintf("%s/fermata %d", path, i)
		fermata := &model.Fermata{
			Type: enumValue(log, fpath, "Type", f.Type, fermataTypes, model.FermataMedium),
		}
		if f.Length != "" {
			length, err := parseFloat("fermata", fpath, "Length", f.Length)
			if err != nil {
				return err
			}
			fermata.Length = float32(length)
		}
		offset := 0
		if f.Offset != "" {
			n, d, err := parseFraction("fermata", fpath, "Offset", f.Offset)
			if err != nil {
				return err
			}
			// offsets are fractions of a quarter note
			offset = model.QuarterTime * n / d
		}
		mb.AddFermata(offset, fermata)
	}

	b.score.AddMasterBar(mb)

	// one bar per staff, in track and staff order
	ids := gpif.IDs(rec.Bars)
	if len(ids) != len(b.staves) {
		return malformed("masterbar", path, errors.Errorf("%d bars for %d staves", len(ids), len(b.staves)))
	}
	for i, id := range ids {
		bar, err := b.buildBar(id)
		if err != nil {
			return err
		}
		b.staves[i].AddBar(bar)
	}
	return nil
}

func (b *builder) buildBar(id string) (*model.Bar, error) {
	rec, ok := b.doc.Bar(id)
	if !ok {
		return nil, danglingRef("bar", id)
	}
	log := b.log.Named("bar")
	path := "bar " + id

	bar := model.NewBar()
	bar.Clef = enumValue(log, path, "Clef", rec.Clef, clefs, model.ClefG2)
	bar.ClefOttava = enumValue(log, path, "Ottavia", rec.Ottavia, ottavias, model.OttaviaRegular)
	bar.SimileMark = enumValue(log, path, "SimileMark", rec.SimileMark, simileMarks, model.SimileNone)

	// slots are positional, an unused slot keeps its place as an empty voice
	for _, vid := range gpif.IDs(rec.Voices) {
		if vid == emptySlot {
			bar.AddVoice(model.NewVoice())
			continue
		}
		voice, err := b.buildVoice(vid)
		if err != nil {
			return nil, err
		}
		bar.AddVoice(voice)
	}
	if len(bar.Voices) == 0 {
		bar.AddVoice(model.NewVoice())
	}
	return bar, nil
}

func (b *builder) buildVoice(id string) (*model.Voice, error) {
	rec, ok := b.doc.Voice(id)
	if !ok {
		return nil, danglingRef("voice", id)
	}
	voice := model.NewVoice()
	for _, bid := range gpif.IDs(rec.Beats) {
		beat, err := b.buildBeat(bid)
		if err != nil {
			return nil, err
		}
		voice.AddBeat(beat)
	}
	return voice, nil
}

func (b *builder) buildBeat(id string) (*model.Beat, error) {
	rec, ok := b.doc.Beat(id)
	if !ok {
		return nil, danglingRef("beat", id)
	}
	log := b.log.Named("beat")
	path := "beat " + id

	beat := model.NewBeat()
	if err := b.applyRhythm(beat, rec.Rhythm.Ref); err != nil {
		return nil, err
	}

	beat.GraceType = enumValue(log, path, "GraceNotes", rec.GraceNotes, graceTypes, model.GraceNone)
	beat.Ottava = enumValue(log, path, "Ottavia", rec.Ottavia, ottavias, model.OttaviaRegular)
	beat.Dynamics = enumValue(log, path, "Dynamic", rec.Dynamic, dynamics, model.DynamicF)
	beat.TremoloSpeed = enumValue(log, path, "Tremolo", rec.Tremolo, tremoloSpeeds, 0)
	beat.BrushType = enumValue(log, path, "Arpeggio", rec.Arpeggio, arpeggios, model.BrushNone)
	if p, ok := gpif.FindProperty(rec.Properties, "Brush"); ok {
		beat.BrushType = enumValue(log, path, "Brush", p.Direction, brushes, model.BrushDown)
	}

	if p, ok := gpif.FindProperty(rec.Properties, "VibratoWTremBar"); ok {
		beat.Vibrato = enumValue(log, path, "VibratoWTremBar", p.Strength, vibratos, model.VibratoNone)
	}

	if enabled(rec.Properties, "WhammyBar") {
		points, err := readPoints("beat", path, rec.Properties, "WhammyBar")
		if err != nil {
			return nil, err
		}
		for _, p := range points {
			beat.AddWhammyBarPoint(p)
		}
	}

	for _, nid := range gpif.IDs(rec.Notes) {
		note, err := b.buildNote(nid)
		if err != nil {
			return nil, err
		}
		beat.AddNote(note)
	}
	return beat, nil
}

func (b *builder) applyRhythm(beat *model.Beat, ref string) error {
	rec, ok := b.doc.Rhythm(ref)
	if !ok {
		return danglingRef("rhythm", ref)
	}
	path := "rhythm " + ref
	beat.Duration = enumValue(b.log.Named("rhythm"), path, "NoteValue", rec.NoteValue, noteValues, model.DurationQuarter)
	if rec.AugmentationDot != nil {
		beat.Dots = rec.AugmentationDot.Count
	}
	if t := rec.PrimaryTuplet; t != nil {
		if t.Num <= 0 || t.Den <= 0 {
			return malformed("rhythm", path, errors.Errorf("bad tuplet %d:%d", t.Num, t.Den))
		}
		beat.TupletNumerator = t.Num
		beat.TupletDenominator = t.Den
	}
	return nil
}

// slide flags of the Slide note property, later flags win
var slideFlags = []struct {
	mask  int
	slide model.SlideType
	in    model.SlideInType
}{
	{1, model.SlideShift, model.SlideInNone},
	{2, model.SlideLegato, model.SlideInNone},
	{4, model.SlideOutDown, model.SlideInNone},
	{8, model.SlideOutUp, model.SlideInNone},
	{16, model.SlideNone, model.SlideInFromBelow},
	{32, model.SlideNone, model.SlideInFromAbove},
	{64, model.SlidePickSlideDown, model.SlideInNone},
	{128, model.SlidePickSlideUp, model.SlideInNone},
}

const (
	accentStaccato = 0x01
	accentHeavy    = 0x04
	accentNormal   = 0x08
)

func (b *builder) buildNote(id string) (*model.Note, error) {
	rec, ok := b.doc.Note(id)
	if !ok {
		return nil, danglingRef("note", id)
	}
	log := b.log.Named("note")
	path := "note " + id

	note := model.NewNote()
	if rec.Tie != nil {
		note.IsTieOrigin = rec.Tie.Origin
		note.IsTieDestination = rec.Tie.Destination
	}
	note.Vibrato = enumValue(log, path, "Vibrato", rec.Vibrato, vibratos, model.VibratoNone)
	note.IsLetRing = rec.LetRing != nil
	note.IsGhost = strings.TrimSpace(rec.AntiAccent) != ""

	if rec.Accent != "" {
		flags, err := parseInt("note", path, "Accent", rec.Accent)
		if err != nil {
			return nil, err
		}
		note.IsStaccato = flags&accentStaccato != 0
		if flags&accentHeavy != 0 {
			note.Accentuated = model.AccentHeavy
		}
		if flags&accentNormal != 0 {
			note.Accentuated = model.AccentNormal
		}
	}

	if t := strings.TrimSpace(rec.Trill); t != "" {
		value, err := parseInt("note", path, "Trill", t)
		if err != nil {
			return nil, err
		}
		note.TrillValue = value
	}
	note.LeftHandFinger = enumValue(log, path, "LeftFingering", rec.LeftFingering, fingers, model.FingerUnknown)
	note.RightHandFinger = enumValue(log, path, "RightFingering", rec.RightFingering, fingers, model.FingerUnknown)

	for _, p := range rec.Properties {
		var err error
		switch p.Name {
		case "HarmonicType":
			note.HarmonicType = enumValue(log, path, "HarmonicType", p.HType, harmonicTypes, model.HarmonicNone)
		case "HarmonicFret":
			note.HarmonicValue, err = parseFloat("note", path, "HarmonicFret", p.HFret)
		case "Fret":
			note.Fret, err = parseInt("note", path, "Fret", p.Fret)
		case "String":
			var str int
			str, err = parseInt("note", path, "String", p.String)
			note.String = str + 1
		case "Slide":
			var flags int
			flags, err = parseInt("note", path, "Slide", p.Flags)
			for _, f := range slideFlags {
				if flags&f.mask == 0 {
					continue
				}
				if f.in != model.SlideInNone {
					note.SlideInType = f.in
				} else {
					note.SlideType = f.slide
				}
			}
		case "Muted":
			note.IsDead = p.Enable != nil
		case "PalmMuted":
			note.IsPalmMute = p.Enable != nil
		case "HopoOrigin":
			note.IsHammerPullOrigin = p.Enable != nil
		case "Bended":
			if p.Enable != nil {
				note.BendPoints, err = readPoints("note", path, rec.Properties, "Bend")
			}
		}
		if err != nil {
			return nil, err
		}
	}
	return note, nil
}
