package chord

import (
	"strings"

	"github.com/jsphweid/guitarnotes/interval"
	"github.com/jsphweid/guitarnotes/note"
)

type Kind int

const (
	TwoTone Kind = iota
	TriadChord
	AddChord
	SevenChord
	NineChord
	ElevenChord
)

var kindNames = map[Kind]string{
	TwoTone:     "two-tone",
	TriadChord:  "triad",
	AddChord:    "add",
	SevenChord:  "seven",
	NineChord:   "nine",
	ElevenChord: "eleven",
}

func (k Kind) String() string {
	return kindNames[k]
}

// Triad is the quality of the chord's base. The NoFifth variants are shapes
// with the fifth left out, recognised only alongside a higher extension.
type Triad int

const (
	NoTriad Triad = iota
	Minor
	Major
	Sus2
	Sus4
	MinorDiminished
	MajorDiminished
	Augmented
	MinorNoFifth
	MajorNoFifth
	Sus2NoFifth
	Sus4NoFifth
)

var triadNames = map[Triad]string{
	NoTriad:         "",
	Minor:           "minor",
	Major:           "major",
	Sus2:            "sus2",
	Sus4:            "sus4",
	MinorDiminished: "minor diminished",
	MajorDiminished: "major diminished",
	Augmented:       "augmented",
	MinorNoFifth:    "minor, no 5th",
	MajorNoFifth:    "major, no 5th",
	Sus2NoFifth:     "sus2, no 5th",
	Sus4NoFifth:     "sus4, no 5th",
}

var triadSymbols = map[Triad]string{
	Minor:           "m",
	Major:           "",
	Sus2:            "sus2",
	Sus4:            "sus4",
	MinorDiminished: "mdim",
	MajorDiminished: "dim",
	Augmented:       "+",
	MinorNoFifth:    "m",
	MajorNoFifth:    "",
	Sus2NoFifth:     "sus2",
	Sus4NoFifth:     "sus4",
}

func (t Triad) String() string {
	return triadNames[t]
}

func (t Triad) Symbol() string {
	return triadSymbols[t]
}

func (t Triad) OmitsFifth() bool {
	return t >= MinorNoFifth
}

func (t Triad) suspended() bool {
	switch t {
	case Sus2, Sus4, Sus2NoFifth, Sus4NoFifth:
		return true
	}
	return false
}

// Type tags a recognised chord. Unused extension slots hold interval.None.
type Type struct {
	Kind       Kind
	Triad      Triad
	Extensions [3]interval.Interval
}

// Suffix renders everything after the root name.
func (t Type) Suffix() string {
	var res string
	switch t.Kind {
	case TwoTone:
		return t.Extensions[0].Symbol()
	case TriadChord:
		res = t.Triad.Symbol()
	case AddChord:
		res = t.Triad.Symbol() + "add" + t.Extensions[0].Symbol()
	case SevenChord:
		res = t.withTriad(t.Extensions[0].Symbol())
	case NineChord:
		res = t.withTriad(t.seventhPrefix() + t.Extensions[1].Symbol())
	case ElevenChord:
		res = t.withTriad(t.seventhPrefix() + t.Extensions[2].Symbol())
	}
	if t.Triad.OmitsFifth() {
		res += "(no5)"
	}
	return res
}

// suspended chords read "C7sus4" rather than "Csus47"
func (t Type) withTriad(body string) string {
	if t.Triad.suspended() {
		return body + t.Triad.Symbol()
	}
	return t.Triad.Symbol() + body
}

func (t Type) seventhPrefix() string {
	if t.Extensions[0] == interval.Major7 {
		return "maj"
	}
	return ""
}

// Chord is one recognised inversion. It is built once and never changed.
type Chord struct {
	root  note.Note
	notes []note.Note
	typ   Type
}

func newChord(root note.Note, steps []note.Note, typ Type) *Chord {
	notes := make([]note.Note, 0, len(steps)+1)
	notes = append(notes, root)
	for _, s := range steps {
		notes = append(notes, root.Add(s))
	}
	return &Chord{root: root, notes: notes, typ: typ}
}

func (c *Chord) Root() note.Note {
	return c.root
}

// Notes returns the chord's pitches, root first.
func (c *Chord) Notes() []note.Note {
	res := make([]note.Note, len(c.notes))
	copy(res, c.notes)
	return res
}

func (c *Chord) Type() Type {
	return c.typ
}

func (c *Chord) String() string {
	return strings.ToUpper(c.root.Name()) + c.typ.Suffix()
}
