// Package importer decodes Guitar Pro files into a linked model.Score.
package importer

import (
	"encoding/xml"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Garik-/gpscore/pkg/gesture"
	"github.com/Garik-/gpscore/pkg/gpif"
	"github.com/Garik-/gpscore/pkg/model"
)

type Option func(*Gp7Importer)

// WithLogger sets the logger decoding warnings are written to.
func WithLogger(l *zap.Logger) Option {
	return func(i *Gp7Importer) {
		if l != nil {
			i.log = l
		}
	}
}

// WithLimits overrides the accepted bend and whammy point counts.
func WithLimits(l gesture.Limits) Option {
	return func(i *Gp7Importer) {
		i.limits = l
	}
}

// Gp7Importer reads one GP7 container. It holds no state shared with other
// importers, separate instances can run concurrently.
type Gp7Importer struct {
	log      *zap.Logger
	limits   gesture.Limits
	settings *model.Settings

	container *gpif.Container
}

func NewGp7Importer(opts ...Option) *Gp7Importer {
	i := &Gp7Importer{
		log:    zap.NewNop(),
		limits: gesture.GP7Limits,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Init opens the container. A nil settings value selects model.DefaultSettings.
func (i *Gp7Importer) Init(data []byte, settings *model.Settings) error {
	c, err := gpif.OpenContainer(data)
	if err != nil {
		return malformed("container", "", err)
	}
	i.container = c
	i.settings = settings
	return nil
}

// ReadScore decodes the score document and runs the derived passes. No score
// is returned when any step fails.
func (i *Gp7Importer) ReadScore() (*model.Score, error) {
	if i.container == nil {
		return nil, errors.New("importer: ReadScore called before Init")
	}
	log := i.log.Named("gp7")

	doc, err := i.container.Document()
	if err != nil {
		de := malformed("score", gpif.ScoreEntry, err)
		var syntax *xml.SyntaxError
		if errors.As(err, &syntax) {
			de.Offset = int64(syntax.Line)
		}
		return nil, de
	}
	log.Debug("document decoded",
		zap.String("version", doc.Version),
		zap.Int("bars", len(doc.Bars)),
		zap.Int("tracks", len(doc.Tracks)))

	score, err := newBuilder(doc, i.log).build()
	if err != nil {
		return nil, err
	}

	if err := i.readStylesheet(score); err != nil {
		return nil, err
	}

	if err := gesture.Interpret(score, i.limits); err != nil {
		de := &DecodeError{Kind: ErrInvalidGesture, Entity: "gesture", Err: err}
		var gerr *gesture.Error
		if errors.As(err, &gerr) {
			de.Path = gerr.Path
		}
		return nil, de
	}

	score.LinkTimeline()
	score.RebuildRepeatGroups()
	score.Finish(i.settings)

	log.Debug("score ready",
		zap.String("title", score.Title),
		zap.Int("repeatGroups", len(score.RepeatGroups)))
	return score, nil
}

func (i *Gp7Importer) readStylesheet(score *model.Score) error {
	if !i.container.Has(gpif.StylesheetEntry) {
		return nil
	}
	data, err := i.container.Entry(gpif.StylesheetEntry)
	if err != nil {
		return malformed("stylesheet", gpif.StylesheetEntry, err)
	}
	sheet, err := gpif.ReadStylesheet(data)
	if err != nil {
		return malformed("stylesheet", gpif.StylesheetEntry, err)
	}
	if hide, ok := sheet.Bool(gpif.HideDynamicsKey); ok {
		score.Stylesheet.HideDynamics = hide
	}
	return nil
}

// Import decodes data into a score. FormatUnknown detects the format from the
// data; only GP7 containers are decoded.
func Import(data []byte, format Format, settings *model.Settings, opts ...Option) (*model.Score, error) {
	if format == FormatUnknown {
		format = DetectFormat(data)
	}
	if format != FormatGP7 {
		return nil, &DecodeError{Kind: ErrUnsupportedFormat, Entity: "container", Err: errors.Errorf("format %s", format)}
	}

	imp := NewGp7Importer(opts...)
	if err := imp.Init(data, settings); err != nil {
		return nil, err
	}
	return imp.ReadScore()
}
