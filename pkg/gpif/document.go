package gpif

import (
	"encoding/xml"
	"strings"
)

// Document is the root GPIF element of a score.gpif entry. Entities reference
// each other by id lists stored as space separated text.
type Document struct {
	XMLName     xml.Name       `xml:"GPIF"`
	Version     string         `xml:"GPVersion"`
	Score       *ScoreInfo     `xml:"Score"`
	MasterTrack *MasterTrack   `xml:"MasterTrack"`
	Tracks      []Track        `xml:"Tracks>Track"`
	MasterBars  *MasterBarList `xml:"MasterBars"`
	Bars        []Bar          `xml:"Bars>Bar"`
	Voices      []Voice        `xml:"Voices>Voice"`
	Beats       []Beat         `xml:"Beats>Beat"`
	Notes       []Note         `xml:"Notes>Note"`
	Rhythms     []Rhythm       `xml:"Rhythms>Rhythm"`

	bars    map[string]*Bar
	voices  map[string]*Voice
	beats   map[string]*Beat
	notes   map[string]*Note
	rhythms map[string]*Rhythm
}

type ScoreInfo struct {
	Title         string `xml:"Title"`
	SubTitle      string `xml:"SubTitle"`
	Artist        string `xml:"Artist"`
	Album         string `xml:"Album"`
	Words         string `xml:"Words"`
	Music         string `xml:"Music"`
	WordsAndMusic string `xml:"WordsAndMusic"`
	Copyright     string `xml:"Copyright"`
	Tabber        string `xml:"Tabber"`
	Instructions  string `xml:"Instructions"`
	Notices       string `xml:"Notices"`
}

type MasterTrack struct {
	Tracks      string       `xml:"Tracks"`
	Automations []Automation `xml:"Automations>Automation"`
}

type Automation struct {
	Type     string `xml:"Type"`
	Linear   string `xml:"Linear"`
	Bar      string `xml:"Bar"`
	Position string `xml:"Position"`
	Value    string `xml:"Value"`
	Text     string `xml:"Text"`
}

type Track struct {
	ID         string     `xml:"id,attr"`
	Name       string     `xml:"Name"`
	ShortName  string     `xml:"ShortName"`
	Properties []Property `xml:"Properties>Property"`
	Staves     []Staff    `xml:"Staves>Staff"`
}

type Staff struct {
	Properties []Property `xml:"Properties>Property"`
}

// Property is a named GPIF property. Only the child matching the property kind is set.
type Property struct {
	Name      string    `xml:"name,attr"`
	Enable    *struct{} `xml:"Enable"`
	Float     string    `xml:"Float"`
	Fret      string    `xml:"Fret"`
	String    string    `xml:"String"`
	Number    string    `xml:"Number"`
	Flags     string    `xml:"Flags"`
	Pitches   string    `xml:"Pitches"`
	Strength  string    `xml:"Strength"`
	HType     string    `xml:"HType"`
	HFret     string    `xml:"HFret"`
	Direction string    `xml:"Direction"`
}

type MasterBarList struct {
	Items []MasterBar `xml:"MasterBar"`
}

type MasterBar struct {
	Key              Key       `xml:"Key"`
	Time             string    `xml:"Time"`
	Repeat           *Repeat   `xml:"Repeat"`
	AlternateEndings string    `xml:"AlternateEndings"`
	Bars             string    `xml:"Bars"`
	Section          *Section  `xml:"Section"`
	Fermatas         []Fermata `xml:"Fermatas>Fermata"`
}

type Key struct {
	AccidentalCount string `xml:"AccidentalCount"`
	Mode            string `xml:"Mode"`
}

type Repeat struct {
	Start bool `xml:"start,attr"`
	End   bool `xml:"end,attr"`
	Count int  `xml:"count,attr"`
}

type Section struct {
	Letter string `xml:"Letter"`
	Text   string `xml:"Text"`
}

type Fermata struct {
	Type   string `xml:"Type"`
	Offset string `xml:"Offset"`
	Length string `xml:"Length"`
}

type Bar struct {
	ID         string `xml:"id,attr"`
	Clef       string `xml:"Clef"`
	Ottavia    string `xml:"Ottavia"`
	SimileMark string `xml:"SimileMark"`
	Voices     string `xml:"Voices"`
}

type Voice struct {
	ID    string `xml:"id,attr"`
	Beats string `xml:"Beats"`
}

type Beat struct {
	ID         string     `xml:"id,attr"`
	Rhythm     RhythmRef  `xml:"Rhythm"`
	Notes      string     `xml:"Notes"`
	GraceNotes string     `xml:"GraceNotes"`
	Ottavia    string     `xml:"Ottavia"`
	Dynamic    string     `xml:"Dynamic"`
	Tremolo    string     `xml:"Tremolo"`
	Arpeggio   string     `xml:"Arpeggio"`
	Properties []Property `xml:"Properties>Property"`
}

type RhythmRef struct {
	Ref string `xml:"ref,attr"`
}

type Note struct {
	ID             string     `xml:"id,attr"`
	Tie            *Tie       `xml:"Tie"`
	Vibrato        string     `xml:"Vibrato"`
	LetRing        *struct{}  `xml:"LetRing"`
	AntiAccent     string     `xml:"AntiAccent"`
	Accent         string     `xml:"Accent"`
	Trill          string     `xml:"Trill"`
	LeftFingering  string     `xml:"LeftFingering"`
	RightFingering string     `xml:"RightFingering"`
	Properties     []Property `xml:"Properties>Property"`
}

type Tie struct {
	Origin      bool `xml:"origin,attr"`
	Destination bool `xml:"destination,attr"`
}

type Rhythm struct {
	ID              string         `xml:"id,attr"`
	NoteValue       string         `xml:"NoteValue"`
	AugmentationDot *Augmentation  `xml:"AugmentationDot"`
	PrimaryTuplet   *PrimaryTuplet `xml:"PrimaryTuplet"`
}

type Augmentation struct {
	Count int `xml:"count,attr"`
}

type PrimaryTuplet struct {
	Num int `xml:"num,attr"`
	Den int `xml:"den,attr"`
}

func (d *Document) index() {
	d.bars = make(map[string]*Bar, len(d.Bars))
	for i := range d.Bars {
		d.bars[d.Bars[i].ID] = &d.Bars[i]
	}
	d.voices = make(map[string]*Voice, len(d.Voices))
	for i := range d.Voices {
		d.voices[d.Voices[i].ID] = &d.Voices[i]
	}
	d.beats = make(map[string]*Beat, len(d.Beats))
	for i := range d.Beats {
		d.beats[d.Beats[i].ID] = &d.Beats[i]
	}
	d.notes = make(map[string]*Note, len(d.Notes))
	for i := range d.Notes {
		d.notes[d.Notes[i].ID] = &d.Notes[i]
	}
	d.rhythms = make(map[string]*Rhythm, len(d.Rhythms))
	for i := range d.Rhythms {
		d.rhythms[d.Rhythms[i].ID] = &d.Rhythms[i]
	}
}

func (d *Document) Bar(id string) (*Bar, bool) {
	b, ok := d.bars[id]
	return b, ok
}

func (d *Document) Voice(id string) (*Voice, bool) {
	v, ok := d.voices[id]
	return v, ok
}

func (d *Document) Beat(id string) (*Beat, bool) {
	b, ok := d.beats[id]
	return b, ok
}

func (d *Document) Note(id string) (*Note, bool) {
	n, ok := d.notes[id]
	return n, ok
}

func (d *Document) Rhythm(id string) (*Rhythm, bool) {
	r, ok := d.rhythms[id]
	return r, ok
}

// Property returns the property called name.
func FindProperty(props []Property, name string) (*Property, bool) {
	for i := range props {
		if props[i].Name == name {
			return &props[i], true
		}
	}
	return nil, false
}

// IDs splits a space separated id list. "-1" marks an empty slot and is kept.
func IDs(list string) []string {
	return strings.Fields(list)
}
