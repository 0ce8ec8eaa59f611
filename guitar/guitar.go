package guitar

import (
	"strings"

	"github.com/jsphweid/guitarnotes/chord"
	"github.com/jsphweid/guitarnotes/fretboard"
	"github.com/jsphweid/guitarnotes/note"
	"github.com/jsphweid/guitarnotes/scale"
	"github.com/jsphweid/guitarnotes/tuning"
	"github.com/pkg/errors"
)

var (
	ErrUnparsableNotes = errors.New("could not parse notes, are they in tab notation (e.g. E0, A13)")
	ErrNoChord         = errors.New("not a chord I know")
)

// ChordResult holds what a set of tab tokens sounds like.
type ChordResult struct {
	Notes []note.Note
	// Chords has one entry per inversion, nil where nothing matched.
	Chords    []*chord.Chord
	Fretboard string
}

// Names are the chord names per inversion, empty where nothing matched.
func (r ChordResult) Names() []string {
	return chord.Names(r.Chords)
}

type ScaleResult struct {
	Scale     *scale.Scale
	Degrees   []string
	Chords    []string
	Fretboard string
}

// Summary is the chord row for diatonic scales and the note row otherwise.
func (r ScaleResult) Summary() []string {
	if r.Scale.Type.Diatonic() {
		return r.Chords
	}
	return r.Scale.NoteNames()
}

func FromTabNotation(tokens []string, t *tuning.Tuning) (string, error) {
	notes := tuning.Notes(t.ParseTab(tokens))
	if len(notes) == 0 {
		return "", ErrUnparsableNotes
	}
	return strings.ToUpper(note.Join(notes, " ")), nil
}

// ChordFromTabNotation identifies the chord played by tab tokens and lays out
// its notes on the fretboard around the first matching inversion's root.
func ChordFromTabNotation(tokens []string, t *tuning.Tuning, relative bool) (ChordResult, error) {
	notes := tuning.Notes(t.ParseTab(tokens))
	if len(notes) == 0 {
		return ChordResult{}, ErrUnparsableNotes
	}
	return Identify(notes, t, relative)
}

// Identify names a set of notes and renders them on t.
func Identify(notes []note.Note, t *tuning.Tuning, relative bool) (ChordResult, error) {
	chords, err := chord.FindChord(notes)
	if err != nil {
		return ChordResult{}, err
	}
	res := ChordResult{Notes: notes, Chords: chords}

	first := chord.First(chords)
	if first == nil {
		return res, ErrNoChord
	}
	res.Fretboard = fretboard.Render(notes, t.BaseNotes(), fretboard.Options{
		Root:     first.Root(),
		Relative: relative,
	})
	return res, nil
}

func ScaleOnFretboard(scaleName, rootName string, t *tuning.Tuning, relative bool) (ScaleResult, error) {
	root, ok := note.FromName(rootName)
	if !ok {
		return ScaleResult{}, errors.Errorf("unknown root note %q", rootName)
	}
	typ, err := scale.ParseType(scaleName)
	if err != nil {
		return ScaleResult{}, err
	}
	s, err := scale.New(root, typ)
	if err != nil {
		return ScaleResult{}, err
	}

	return ScaleResult{
		Scale:   s,
		Degrees: s.Degrees(),
		Chords:  s.Chords(),
		Fretboard: fretboard.Render(s.Notes(), t.BaseNotes(), fretboard.Options{
			Root:     s.Root(),
			Relative: relative,
		}),
	}, nil
}

// ScaleOnFretboardEitherOrder also accepts the root before the scale name.
func ScaleOnFretboardEitherOrder(a, b string, t *tuning.Tuning, relative bool) (ScaleResult, error) {
	res, err := ScaleOnFretboard(a, b, t, relative)
	if err == nil {
		return res, nil
	}
	if swapped, swappedErr := ScaleOnFretboard(b, a, t, relative); swappedErr == nil {
		return swapped, nil
	}
	return ScaleResult{}, err
}

// AllNotesOnFretboard shows every position of the named notes, the first one
// capitalised.
func AllNotesOnFretboard(names []string, t *tuning.Tuning) (string, error) {
	var notes []note.Note
	for _, name := range names {
		if n, ok := note.FromName(name); ok {
			notes = append(notes, n)
		}
	}
	if len(notes) == 0 {
		return "", errors.Wrapf(ErrUnparsableNotes, "%v", names)
	}
	return fretboard.Render(notes, t.BaseNotes(), fretboard.Options{Root: notes[0]}), nil
}
