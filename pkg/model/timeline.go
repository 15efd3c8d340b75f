package model

// LinkTimeline links the master bars in document order, computes their absolute
// start ticks and the playback start of every beat, and resolves beat fermatas by
// tick offset within the master bar. The pass only writes derived fields and can
// be repeated.
func (s *Score) LinkTimeline() {
	var prev *MasterBar
	for _, bar := range s.MasterBars {
		bar.PreviousMasterBar = prev
		bar.NextMasterBar = nil
		if prev == nil {
			bar.Start = 0
		} else {
			prev.NextMasterBar = bar
			bar.Start = prev.Start + prev.CalculateDuration()
		}
		prev = bar
	}

	for _, track := range s.Tracks {
		for _, staff := range track.Staves {
			for _, bar := range staff.Bars {
				masterBar := bar.MasterBar()
				if masterBar == nil {
					continue
				}
				for _, voice := range bar.Voices {
					linkVoice(masterBar, voice)
				}
			}
		}
	}
}

func linkVoice(masterBar *MasterBar, voice *Voice) {
	tick := masterBar.Start
	for _, beat := range voice.Beats {
		beat.PlaybackStart = tick
		beat.Fermata = masterBar.Fermata[beat.PlaybackStart-masterBar.Start]
		tick += beat.PlaybackDuration()
	}
}
