package harmony

import (
	"sort"

	"github.com/jsphweid/guitarnotes/model"
	"github.com/jsphweid/guitarnotes/note"
	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2/smf"
)

type Pressed = map[uint8]int64

// Events flattens every track into note ons and offs with absolute times.
func Events(s *smf.SMF) []model.ReducedEvent {
	var reducedEvents []model.ReducedEvent

	for _, events := range s.Tracks {
		var absTicks int64
		for _, event := range events {
			absTicks += int64(event.Delta)
			var channel, key, velocity uint8
			switch {
			case event.Message.GetNoteOn(&channel, &key, &velocity):
				reducedEvents = append(reducedEvents, model.ReducedEvent{
					Offset:    s.TimeAt(absTicks),
					IsNoteOff: velocity == 0,
					Note:      key,
				})
			case event.Message.GetNoteOff(&channel, &key, &velocity):
				reducedEvents = append(reducedEvents, model.ReducedEvent{
					Offset:    s.TimeAt(absTicks),
					IsNoteOff: true,
					Note:      key,
				})
			}
		}
	}
	return reducedEvents
}

func snapshot(pressed Pressed, offset int64, byNoteOn bool) model.Sonority {
	notes := make(model.Notes, 0, len(pressed))
	for key := range pressed {
		notes = append(notes, key)
	}
	sort.Slice(notes, func(i, j int) bool {
		return notes[i] < notes[j]
	})
	return model.Sonority{
		Offset:         uint32(offset / 1000),
		Notes:          notes,
		FormedByNoteOn: byNoteOn,
	}
}

// Sonorities replays events and returns what is held after each distinct
// instant, in time order. Silence is skipped.
func Sonorities(events []model.ReducedEvent) []model.Sonority {
	sorted := append([]model.ReducedEvent{}, events...)

	// earlier first, then note off before note on
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Offset != sorted[j].Offset {
			return sorted[i].Offset < sorted[j].Offset
		}
		return sorted[i].IsNoteOff && !sorted[j].IsNoteOff
	})

	var res []model.Sonority
	pressed := make(Pressed)
	for i, evt := range sorted {
		if evt.IsNoteOff {
			delete(pressed, evt.Note)
		} else {
			pressed[evt.Note] = evt.Offset
		}

		last := i == len(sorted)-1 || sorted[i+1].Offset != evt.Offset
		if last && len(pressed) > 0 {
			res = append(res, snapshot(pressed, evt.Offset, !evt.IsNoteOff))
		}
	}
	return res
}

func Extract(s *smf.SMF) (res []model.Sonority, err error) {
	defer func() {
		if r := recover(); r != nil {
			res = nil
			err = errors.Errorf("could not extract sonorities: %v", r)
		}
	}()
	return Sonorities(Events(s)), nil
}

// ToNotes maps midi keys onto the pitch model, keeping pitch classes.
func ToNotes(keys model.Notes) []note.Note {
	res := make([]note.Note, len(keys))
	for i, k := range keys {
		res[i] = note.Note(k)
	}
	return res
}
