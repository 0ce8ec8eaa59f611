package scale

import (
	"sort"
	"strings"

	"github.com/jsphweid/guitarnotes/chord"
	"github.com/jsphweid/guitarnotes/note"
	"github.com/pkg/errors"
)

var ErrUnknownScale = errors.New("unknown scale")

type Type string

const (
	Minor           Type = "minor"
	Major           Type = "major"
	MinorBlues      Type = "minor_blues"
	MajorBlues      Type = "major_blues"
	MinorPentatonic Type = "minor_pentatonic"
	MajorPentatonic Type = "major_pentatonic"
	Dorian          Type = "dorian"
	Phrygian        Type = "phrygian"
	Lydian          Type = "lydian"
	Mixolydian      Type = "mixolydian"
	Locrian         Type = "locrian"
)

// steps between consecutive notes, starting at the root and ending on its octave
var steps = map[Type][]note.Note{
	Major:           {0, 2, 2, 1, 2, 2, 2, 1},
	Minor:           {0, 2, 1, 2, 2, 1, 2, 2},
	MinorPentatonic: {0, 3, 2, 2, 3, 2},
	MajorPentatonic: {0, 2, 2, 3, 2, 3},
	MinorBlues:      {0, 3, 2, 1, 1, 3, 2},
	MajorBlues:      {0, 2, 1, 1, 3, 2, 3},
	Dorian:          {0, 2, 1, 2, 2, 2, 1, 2},
	Phrygian:        {0, 1, 2, 2, 2, 1, 2, 2},
	Lydian:          {0, 2, 2, 2, 1, 2, 2, 1},
	Mixolydian:      {0, 2, 2, 1, 2, 2, 1, 2},
	Locrian:         {0, 1, 2, 2, 1, 2, 2, 2},
}

var degrees = [13]string{"1", "2b", "2", "3b", "3", "4", "5b", "5", "6b", "6", "7b", "7", "8"}

func ParseType(name string) (Type, error) {
	t := Type(strings.ToLower(name))
	if _, ok := steps[t]; !ok {
		return "", errors.Wrap(ErrUnknownScale, name)
	}
	return t, nil
}

func Types() []Type {
	res := make([]Type, 0, len(steps))
	for t := range steps {
		res = append(res, t)
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i] < res[j]
	})
	return res
}

// Diatonic scales list a chord per degree; the others list their notes.
func (t Type) Diatonic() bool {
	switch t {
	case MinorBlues, MajorBlues, MinorPentatonic, MajorPentatonic:
		return false
	}
	return true
}

type Scale struct {
	Type  Type
	notes []note.Note
}

func New(root note.Note, t Type) (*Scale, error) {
	s, ok := steps[t]
	if !ok {
		return nil, errors.Wrap(ErrUnknownScale, string(t))
	}
	sc := &Scale{Type: t}
	current := root
	for _, step := range s {
		current = current.Add(step)
		sc.notes = append(sc.notes, current)
	}
	return sc, nil
}

func (s *Scale) Root() note.Note {
	return s.notes[0]
}

// Notes includes the root's octave as the last note.
func (s *Scale) Notes() []note.Note {
	return append([]note.Note{}, s.notes...)
}

func (s *Scale) NoteNames() []string {
	res := make([]string, len(s.notes))
	for i, n := range s.notes {
		res[i] = n.Name()
	}
	return res
}

// Degree names n relative to root, ignoring octaves.
func Degree(root, n note.Note) string {
	return degrees[n.Sub(root).PitchClass()]
}

func (s *Scale) Degrees() []string {
	res := make([]string, len(s.notes))
	for i, n := range s.notes {
		res[i] = degrees[int(n.Sub(s.Root()))%len(degrees)]
	}
	return res
}

// Chords stacks thirds on every degree and names the resulting triad, "x"
// where nothing is recognised.
func (s *Scale) Chords() []string {
	octave := append([]note.Note{}, s.notes[:len(s.notes)-1]...)
	for _, n := range s.notes {
		octave = append(octave, n.Add(note.Octave))
	}

	var res []string
	for i := range s.notes {
		if i+4 >= len(octave) {
			break
		}
		chords, err := chord.FindChord([]note.Note{octave[i], octave[i+2], octave[i+4]})
		if err != nil || chords[0] == nil {
			res = append(res, "x")
			continue
		}
		res = append(res, chords[0].String())
	}
	return res
}
