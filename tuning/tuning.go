package tuning

import (
	"sort"
	"strings"

	"github.com/jsphweid/guitarnotes/note"
	"github.com/pkg/errors"
)

var ErrUnknownTuning = errors.New("unknown tuning")

// semitones above the lowest C, lowest string first
var catalogue = map[string][]note.Note{
	"eadgbe": {4, 9, 14, 19, 23, 28},
	"dropd":  {2, 9, 14, 19, 23, 28},
	"dadgad": {2, 9, 14, 19, 21, 26},
	"openg":  {2, 7, 14, 19, 23, 26},
	"opend":  {2, 9, 14, 18, 21, 26},
	"bass":   {-8, -3, 2, 7},
}

type Tuning struct {
	Name    string
	strings []string
	base    []note.Note
}

// Position is one tab token resolved against a tuning. OK is false when the
// token's string does not exist above the previously used string.
type Position struct {
	String string
	Fret   int
	Note   note.Note
	OK     bool
}

func FromName(name string) (*Tuning, bool) {
	name = strings.ToLower(name)
	base, ok := catalogue[name]
	if !ok {
		return nil, false
	}
	t := &Tuning{Name: name, base: base}
	for _, n := range base {
		t.strings = append(t.strings, n.Name())
	}
	return t, true
}

// MustFromName is FromName for names known to be in the catalogue.
func MustFromName(name string) *Tuning {
	t, ok := FromName(name)
	if !ok {
		panic(errors.Wrap(ErrUnknownTuning, name))
	}
	return t
}

func Names() []string {
	names := make([]string, 0, len(catalogue))
	for name := range catalogue {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// BaseNotes are the open strings, lowest first.
func (t *Tuning) BaseNotes() []note.Note {
	return append([]note.Note{}, t.base...)
}

func (t *Tuning) StringNames() []string {
	return append([]string{}, t.strings...)
}

// Tune maps string names and fret offsets to pitches. Strings are consumed
// low to high, so a second "e" resolves to the next e string up.
func (t *Tuning) Tune(stringNames []string, frets []int) []Position {
	var res []Position
	lower := 0
	for i, s := range stringNames {
		if i >= len(frets) {
			break
		}
		p := Position{String: s, Fret: frets[i]}
		for idx := lower; idx < len(t.strings); idx++ {
			if t.strings[idx] == s {
				p.Note = t.base[idx].Add(note.Note(frets[i]))
				p.OK = true
				lower = idx + 1
				break
			}
		}
		res = append(res, p)
	}
	return res
}

// ParseTab resolves tab tokens such as "e0" or "a#13". Tokens that cannot be
// split into a string and a fret are dropped before tuning.
func (t *Tuning) ParseTab(tokens []string) []Position {
	var names []string
	var frets []int
	for _, token := range tokens {
		name, fret, ok := note.ParseTab(token)
		if !ok {
			continue
		}
		names = append(names, name)
		frets = append(frets, fret)
	}
	return t.Tune(names, frets)
}

// Notes keeps the resolved pitches of positions.
func Notes(positions []Position) []note.Note {
	var res []note.Note
	for _, p := range positions {
		if p.OK {
			res = append(res, p.Note)
		}
	}
	return res
}
