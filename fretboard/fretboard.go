package fretboard

import (
	"strconv"
	"strings"

	"github.com/jsphweid/guitarnotes/note"
	"github.com/jsphweid/guitarnotes/scale"
)

const Frets = 24

var markers = []string{
	"   ", "  ", "  ", "* ", "  ", "* ", "  ", "* ", "  ", "* ", "  ", "  ", ": ",
	"  ", "  ", "* ", "  ", "* ", "  ", "* ", "  ", "* ", "  ", "* ", "  ",
}

// Options controls how a note on the board is labelled.
type Options struct {
	Root note.Note
	// Relative labels notes by scale degree instead of name.
	Relative bool
}

func pad(s string) string {
	if len(s) < 2 {
		return s + " "
	}
	return s
}

// Locate returns, for every fret of a string tuned to base, the fret offset
// at which one of notes sounds there.
func Locate(notes []note.Note, base note.Note) [Frets]*note.Note {
	var frets [Frets]*note.Note
	for _, n := range notes {
		low := n.PitchClass().Sub(base).PitchClass()
		high := low.Add(note.Octave)
		frets[low] = &low
		frets[high] = &high
	}
	return frets
}

func (o Options) label(n note.Note) string {
	if o.Relative {
		return scale.Degree(o.Root, n)
	}
	if n.PitchClass() == o.Root.PitchClass() {
		return strings.ToUpper(n.Name())
	}
	return n.Name()
}

// Strings renders one line per string, lowest string first.
func Strings(notes []note.Note, base []note.Note, opts Options) []string {
	var res []string
	for _, b := range base {
		frets := Locate(notes, b)

		nut := "   |"
		if frets[0] != nil {
			nut = " " + pad(opts.label(b.Add(*frets[0]))) + "|"
		}
		parts := []string{nut}
		for _, f := range frets[1:] {
			if f == nil {
				parts = append(parts, "- ")
				continue
			}
			parts = append(parts, pad(opts.label(b.Add(*f))))
		}
		res = append(res, strings.Join(parts, "  "))
	}
	return res
}

// Render draws the board with the highest string on top.
func Render(notes []note.Note, base []note.Note, opts Options) string {
	lines := Strings(notes, base, opts)
	for i, j := 0, len(lines)-1; i < j; i, j = i+1, j-1 {
		lines[i], lines[j] = lines[j], lines[i]
	}
	return strings.Join(lines, "\n")
}

func FretNumbers() string {
	var numbers []string
	for i := 1; i < Frets; i++ {
		numbers = append(numbers, pad(strconv.Itoa(i)))
	}
	return "      " + strings.Join(numbers, "  ")
}

func FretMarkers() string {
	return " " + strings.Join(markers, "  ")
}
