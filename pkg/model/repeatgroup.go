package model

// RepeatGroup is a run of master bars sharing one repeat and its alternate endings.
type RepeatGroup struct {
	MasterBars []*MasterBar
	// Openings lists the bars where playback re-enters the group, the first bar
	// and every bar reopening the group after a repeat end.
	Openings []*MasterBar
	// Closings lists the repeat end bars of the group.
	Closings []*MasterBar
	IsClosed bool
}

func (g *RepeatGroup) AddMasterBar(bar *MasterBar) {
	if len(g.Openings) == 0 {
		g.Openings = append(g.Openings, bar)
	}
	g.MasterBars = append(g.MasterBars, bar)
	bar.RepeatGroup = g

	if bar.IsRepeatEnd() {
		g.Closings = append(g.Closings, bar)
		g.IsClosed = true
	} else if g.IsClosed {
		// an alternate ending after the repeat end reopens the group
		g.IsClosed = false
		g.Openings = append(g.Openings, bar)
	}
}

// startsRepeatGroup reports whether bar opens a new group given the running one.
// A bar with alternate endings after a closed group stays in that group and
// reopens it, so the endings of one repeat share a single group.
func startsRepeatGroup(current *RepeatGroup, bar *MasterBar) bool {
	return current == nil || bar.IsRepeatStart || (current.IsClosed && bar.AlternateEndings == 0)
}

// RebuildRepeatGroups partitions the master bars into repeat groups in document
// order, assigns every bar its group and stores the result in s.RepeatGroups.
// Running it again yields the same partition.
func (s *Score) RebuildRepeatGroups() []*RepeatGroup {
	var groups []*RepeatGroup
	var current *RepeatGroup
	for _, bar := range s.MasterBars {
		if startsRepeatGroup(current, bar) {
			current = &RepeatGroup{}
			groups = append(groups, current)
		}
		current.AddMasterBar(bar)
	}
	s.RepeatGroups = groups
	return groups
}
