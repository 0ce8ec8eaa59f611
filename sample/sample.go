package sample

import (
	"github.com/jsphweid/guitarnotes/util"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// Create cuts a passage out of mf: per track, the first maxNotes note ons and
// offs at or after ticksOffset. Other events before the passage are kept one
// tick apart so tempo and program changes still apply. maxNotes 0 keeps every
// note.
func Create(mf *smf.SMF, ticksOffset uint64, maxNotes int) *smf.SMF {
	var res smf.SMF
	res.TimeFormat = mf.TimeFormat

	for _, track := range mf.Tracks {
		var newTrack smf.Track
		var absTicks uint64
		var numNoteOnOff int
	TrackEventLoop:
		for _, evt := range track {
			absTicks += uint64(evt.Delta)
			switch {
			case evt.Message.Is(midi.NoteOnMsg),
				evt.Message.Is(midi.NoteOffMsg):
				if absTicks >= ticksOffset {
					newTrack = append(newTrack, evt)
					numNoteOnOff += 1
					if maxNotes > 0 && numNoteOnOff >= maxNotes {
						newTrack.Close(0)
						break TrackEventLoop
					}
				}
			default:
				if numNoteOnOff == 0 {
					evt.Delta = util.Min(evt.Delta, 1)
				}
				newTrack = append(newTrack, evt)
			}
		}

		res.Tracks = append(res.Tracks, newTrack)
	}

	return &res
}
