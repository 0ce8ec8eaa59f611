package chord

import (
	"sort"

	"github.com/jsphweid/guitarnotes/note"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var ErrNoNotes = errors.New("chord: no notes given")

// Voicings returns the base voicing (octave duplicates dropped, sorted) followed
// by its inversions.
func Voicings(notes []note.Note) [][]note.Note {
	base := note.Uniq(notes)
	sort.SliceStable(base, func(i, j int) bool {
		return base[i] < base[j]
	})
	return append([][]note.Note{base}, BuildInversions(base)...)
}

// FindChord classifies the base voicing of notes and each of its inversions.
// A nil entry means that inversion matched no known chord shape.
func FindChord(notes []note.Note) ([]*Chord, error) {
	if len(notes) == 0 {
		return nil, ErrNoNotes
	}

	voicings := Voicings(notes)
	res := make([]*Chord, len(voicings))
	for i, v := range voicings {
		res[i] = Classify(v)
		if logrus.IsLevelEnabled(logrus.DebugLevel) {
			name := "none"
			if res[i] != nil {
				name = res[i].String()
			}
			logrus.WithFields(logrus.Fields{
				"inversion": i,
				"voicing":   v,
				"chord":     name,
			}).Debug("classified voicing")
		}
	}
	return res, nil
}

// Names renders FindChord's result, leaving unmatched inversions empty.
func Names(chords []*Chord) []string {
	res := make([]string, len(chords))
	for i, c := range chords {
		if c != nil {
			res[i] = c.String()
		}
	}
	return res
}

// First returns the first matched inversion, if any.
func First(chords []*Chord) *Chord {
	for _, c := range chords {
		if c != nil {
			return c
		}
	}
	return nil
}
