package model

// Notes are MIDI key numbers.
type Notes = []uint8

type FileNum = uint32
type FileNumToMidiPath = map[FileNum]string

// ReducedEvent is a note on or off stripped of channel and velocity, with its
// absolute time in microseconds.
type ReducedEvent struct {
	Offset    int64
	IsNoteOff bool
	Note      uint8
}

// Sonority is the set of keys held at one instant of a MIDI file.
type Sonority struct {
	// millis is plenty, 32 bits of it is over a thousand hours
	Offset uint32
	Notes  Notes

	FormedByNoteOn bool
}

type MidiMetadata struct {
	Artist  string `json:"artist"`
	Title   string `json:"title"`
	Release string `json:"release"`
	Year    uint   `json:"year"`
}
