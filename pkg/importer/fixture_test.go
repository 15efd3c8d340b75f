package importer

import (
	"archive/zip"
	"bytes"
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Garik-/gpscore/pkg/gpif"
)

const standardTuning = `<Property name="Tuning"><Pitches>40 45 50 55 59 64</Pitches></Property>`

// fixture assembles a GPIF document. Ids are handed out in insertion order.
type fixture struct {
	score       string
	masterTrack string
	tracks      []string
	masterBars  []string
	bars        []string
	voices      []string
	beats       []string
	notes       []string
	rhythms     []string

	quarter string
}

func newFixture() *fixture {
	f := &fixture{score: "<Title>Untitled</Title>"}
	f.quarter = f.rhythm("<NoteValue>Quarter</NoteValue>")
	return f
}

func add(list *[]string, format string, inner string) string {
	id := strconv.Itoa(len(*list))
	*list = append(*list, fmt.Sprintf(format, id, inner))
	return id
}

func (f *fixture) track(name, staffProps string) {
	f.tracks = append(f.tracks, fmt.Sprintf(
		`<Track id="%d"><Name>%s</Name><Staves><Staff><Properties>%s</Properties></Staff></Staves></Track>`,
		len(f.tracks), name, staffProps))
}

func (f *fixture) rhythm(inner string) string {
	return add(&f.rhythms, `<Rhythm id="%s">%s</Rhythm>`, inner)
}

func (f *fixture) note(str, fret int, inner string, props ...string) string {
	body := fmt.Sprintf(`%s<Properties><Property name="String"><String>%d</String></Property><Property name="Fret"><Fret>%d</Fret></Property>%s</Properties>`,
		inner, str, fret, strings.Join(props, ""))
	return add(&f.notes, `<Note id="%s">%s</Note>`, body)
}

func (f *fixture) beat(rhythm, inner string, notes ...string) string {
	body := fmt.Sprintf(`<Rhythm ref="%s"/><Notes>%s</Notes>%s`, rhythm, strings.Join(notes, " "), inner)
	return add(&f.beats, `<Beat id="%s">%s</Beat>`, body)
}

func (f *fixture) voice(beats ...string) string {
	return add(&f.voices, `<Voice id="%s"><Beats>%s</Beats></Voice>`, strings.Join(beats, " "))
}

func (f *fixture) bar(inner string, voices ...string) string {
	slots := append(append([]string{}, voices...), "-1", "-1", "-1")[:4]
	body := fmt.Sprintf(`<Voices>%s</Voices>%s`, strings.Join(slots, " "), inner)
	return add(&f.bars, `<Bar id="%s">%s</Bar>`, body)
}

func (f *fixture) masterBar(inner string, bars ...string) {
	f.masterBars = append(f.masterBars, fmt.Sprintf(`<MasterBar><Time>4/4</Time>%s<Bars>%s</Bars></MasterBar>`,
		inner, strings.Join(bars, " ")))
}

// simpleBar adds a master bar with one staff bar holding the given beats.
func (f *fixture) simpleBar(inner string, beats ...string) {
	f.masterBar(inner, f.bar("", f.voice(beats...)))
}

func (f *fixture) xml() string {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="utf-8"?><GPIF><GPVersion>7</GPVersion>`)
	fmt.Fprintf(&sb, "<Score>%s</Score>", f.score)
	if f.masterTrack != "" {
		fmt.Fprintf(&sb, "<MasterTrack>%s</MasterTrack>", f.masterTrack)
	}
	section := func(name string, items []string) {
		fmt.Fprintf(&sb, "<%s>%s</%s>", name, strings.Join(items, ""), name)
	}
	section("Tracks", f.tracks)
	section("MasterBars", f.masterBars)
	section("Bars", f.bars)
	section("Voices", f.voices)
	section("Beats", f.beats)
	section("Notes", f.notes)
	section("Rhythms", f.rhythms)
	sb.WriteString("</GPIF>")
	return sb.String()
}

func zipEntries(t *testing.T, entries map[string][]byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range entries {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func (f *fixture) container(t *testing.T) []byte {
	return zipEntries(t, map[string][]byte{gpif.ScoreEntry: []byte(f.xml())})
}

func hideDynamicsSheet(hide bool) []byte {
	var buf bytes.Buffer
	_ = binary.Write(&buf, binary.BigEndian, int32(1))
	buf.WriteByte(byte(len(gpif.HideDynamicsKey)))
	buf.WriteString(gpif.HideDynamicsKey)
	buf.WriteByte(byte(gpif.DataBoolean))
	if hide {
		buf.WriteByte(1)
	} else {
		buf.WriteByte(0)
	}
	return buf.Bytes()
}

func prop(name, child, value string) string {
	return fmt.Sprintf(`<Property name="%s"><%s>%s</%s></Property>`, name, child, value, child)
}

func enable(name string) string {
	return fmt.Sprintf(`<Property name="%s"><Enable/></Property>`, name)
}

// gestureProps renders a bend or whammy property set. Values are GPIF
// units: percent of a tone and percent of the beat.
func gestureProps(prefix string, points ...float64) []string {
	out := []string{enable(map[string]string{"Bend": "Bended", "WhammyBar": "WhammyBar"}[prefix])}
	f := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
	switch len(points) {
	case 4:
		out = append(out,
			prop(prefix+"OriginOffset", "Float", f(points[0])),
			prop(prefix+"OriginValue", "Float", f(points[1])),
			prop(prefix+"DestinationOffset", "Float", f(points[2])),
			prop(prefix+"DestinationValue", "Float", f(points[3])))
	case 7:
		out = append(out,
			prop(prefix+"OriginOffset", "Float", f(points[0])),
			prop(prefix+"OriginValue", "Float", f(points[1])),
			prop(prefix+"MiddleOffset1", "Float", f(points[2])),
			prop(prefix+"MiddleOffset2", "Float", f(points[3])),
			prop(prefix+"MiddleValue", "Float", f(points[4])),
			prop(prefix+"DestinationOffset", "Float", f(points[5])),
			prop(prefix+"DestinationValue", "Float", f(points[6])))
	default:
		panic("gestureProps takes 4 or 7 values")
	}
	return out
}
