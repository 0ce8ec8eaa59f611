package note

import (
	"strconv"
	"strings"
	"unicode"
)

// Note counts semitones from a fixed C. It is unbounded in both directions so
// octave information survives arithmetic.
type Note int

const Octave Note = 12

var Names = [12]string{"c", "c#", "d", "d#", "e", "f", "f#", "g", "g#", "a", "a#", "b"}

var flats = map[string]string{
	"db": "c#",
	"eb": "d#",
	"gb": "f#",
	"ab": "g#",
	"bb": "a#",
}

func (n Note) Add(o Note) Note {
	return n + o
}

func (n Note) Sub(o Note) Note {
	return n - o
}

// PitchClass folds the note into [0,12), also for negative counts.
func (n Note) PitchClass() Note {
	pc := n % Octave
	if pc < 0 {
		pc += Octave
	}
	return pc
}

// Name is the lowercase pitch class name, e.g. "c#".
func (n Note) Name() string {
	return Names[n.PitchClass()]
}

func (n Note) String() string {
	return n.Name()
}

// FromName resolves a pitch class name. Flats are accepted and mapped to
// their sharp spelling.
func FromName(name string) (Note, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if sharp, ok := flats[name]; ok {
		name = sharp
	}
	for i, n := range Names {
		if n == name {
			return Note(i), true
		}
	}
	return 0, false
}

// LongestName returns the longest note name contained in token, so that
// "a#3" yields "a#" rather than "a".
func LongestName(token string) (string, bool) {
	var best string
	for _, name := range Names {
		if len(name) > len(best) && strings.Contains(token, name) {
			best = name
		}
	}
	return best, best != ""
}

// ParseTab splits a tab token like "a#13" into its string name and fret.
func ParseTab(token string) (string, int, bool) {
	token = strings.ToLower(token)
	name, ok := LongestName(token)
	if !ok {
		return "", 0, false
	}

	var digits strings.Builder
	for _, r := range token {
		if unicode.IsDigit(r) {
			digits.WriteRune(r)
		}
	}
	fret, err := strconv.Atoi(digits.String())
	if err != nil {
		return "", 0, false
	}
	return name, fret, true
}

// Uniq drops notes whose pitch class already occurred, keeping the first.
func Uniq(notes []Note) []Note {
	seen := make(map[Note]bool)
	var res []Note
	for _, n := range notes {
		pc := n.PitchClass()
		if seen[pc] {
			continue
		}
		seen[pc] = true
		res = append(res, n)
	}
	return res
}

func Join(notes []Note, sep string) string {
	names := make([]string, len(notes))
	for i, n := range notes {
		names[i] = n.Name()
	}
	return strings.Join(names, sep)
}
