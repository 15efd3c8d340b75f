package main

import (
	"context"

	"go.uber.org/zap"

	"github.com/Garik-/gpscore/pkg/model"
)

type positionMap map[int]int
type typeMap map[string]positionMap

// kind -> type -> quarter position in bar -> count
type gestureMap map[string]typeMap

func (m gestureMap) add(kind, typ string, position int) {
	types, ok := m[kind]
	if !ok {
		types = make(typeMap)
		m[kind] = types
	}
	positions, ok := types[typ]
	if !ok {
		positions = make(positionMap)
		types[typ] = positions
	}
	positions[position]++
}

// quarterPosition returns the quarter note slot of beat within its master bar.
func quarterPosition(beat *model.Beat) int {
	mb := beat.Voice.Bar.MasterBar()
	if mb == nil {
		return 0
	}
	return (beat.PlaybackStart - mb.Start) / model.QuarterTime
}

func (m gestureMap) addScore(score *model.Score) {
	for _, track := range score.Tracks {
		for _, staff := range track.Staves {
			for _, bar := range staff.Bars {
				for _, voice := range bar.Voices {
					for _, beat := range voice.Beats {
						position := quarterPosition(beat)
						if beat.HasWhammyBar() {
							m.add("whammy", beat.WhammyBarType.String(), position)
						}
						for _, note := range beat.Notes {
							if note.HasBend {
								m.add("bend", note.BendType.String(), position)
							}
						}
					}
				}
			}
		}
	}
}

type reporter func(*result)

// newGestureMap imports every path and counts gestures of the decoded scores.
// Failed files are passed to report and skipped.
func newGestureMap(parent context.Context, paths <-chan string, cntRoutines int, report reporter) (gestureMap, int) {
	log := gestureMapLog.Named("newGestureMap")
	ctx, cancel := context.WithCancel(parent)
	results, done := decodeWorker(ctx, paths, cntRoutines)

	defer func() {
		log.Debug("cancel")
		cancel()
		<-done // wait decodeWorker closed
	}()

	m := make(gestureMap)
	failed := 0

	for result := range results {
		if result.err != nil {
			failed++
			log.Warn("import failed", zap.String("name", result.name), zap.Error(result.err))
			if report != nil {
				report(result)
			}
			continue
		}

		log.Debug("result", zap.String("name", result.name), zap.Int("tracks", len(result.score.Tracks)))
		m.addScore(result.score)
	}

	return m, failed
}
