package gesture

import (
	"fmt"

	"github.com/Garik-/gpscore/pkg/model"
)

// Error locates an invalid gesture in the score tree.
type Error struct {
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Interpret resolves tie origins, validates every point list against l and
// classifies all bends and whammy gestures of s. Beats are visited in document
// order so the predecessor of a gesture is always classified first.
func Interpret(s *model.Score, l Limits) error {
	for _, track := range s.Tracks {
		for _, staff := range track.Staves {
			for _, bar := range staff.Bars {
				for _, voice := range bar.Voices {
					for _, beat := range voice.Beats {
						if err := interpretBeat(beat, l); err != nil {
							return err
						}
					}
				}
			}
		}
	}
	return nil
}

func beatPath(b *model.Beat) string {
	v := b.Voice
	bar := v.Bar
	staff := bar.Staff
	return fmt.Sprintf("track %d/staff %d/bar %d/voice %d/beat %d", staff.Track.Index, staff.Index, bar.Index, v.Index, b.Index)
}

func interpretBeat(b *model.Beat, l Limits) error {
	if err := Validate(b.WhammyBarPoints, l); err != nil {
		return &Error{Path: beatPath(b) + "/whammy", Err: err}
	}

	prev := b.PreviousBeat()
	b.IsContinuedWhammy = prev != nil && prev.HasWhammyBar() && IsContinued(prev.WhammyBarPoints, b.WhammyBarPoints)
	b.WhammyBarType, b.WhammyBarPoints = ClassifyWhammy(b.WhammyBarPoints, b.IsContinuedWhammy)

	for _, n := range b.Notes {
		if err := Validate(n.BendPoints, l); err != nil {
			return &Error{Path: fmt.Sprintf("%s/note %d/bend", beatPath(b), n.Index), Err: err}
		}

		n.TieOrigin = nil
		if n.IsTieDestination && prev != nil {
			n.TieOrigin = prev.NoteOnString(n.String)
		}

		origin := n.TieOrigin
		n.IsContinuedBend = origin != nil && origin.HasBend && IsContinued(origin.BendPoints, n.BendPoints)
		n.BendType, n.BendPoints = ClassifyBend(n.BendPoints, n.IsContinuedBend)
		n.HasBend = n.BendType != model.BendNone
	}
	return nil
}
