package chord

import (
	"github.com/jsphweid/guitarnotes/interval"
	"github.com/jsphweid/guitarnotes/note"
)

type stage int

const (
	stageRoot stage = iota
	stageNoFifth
	stageTwoTone
	stageTriad
	stageAdd
	stageSeven
	stageNine
	stageEleven
)

var stageKinds = map[stage]Kind{
	stageTwoTone: TwoTone,
	stageTriad:   TriadChord,
	stageAdd:     AddChord,
	stageSeven:   SevenChord,
	stageNine:    NineChord,
	stageEleven:  ElevenChord,
}

func (s stage) accepting() bool {
	_, ok := stageKinds[s]
	return ok
}

type matchMode int

const (
	byOctave matchMode = iota
	byPitchClass
)

// which passes a transition takes part in
type octaves int

const (
	pitchClassOnly octaves = iota
	octaveFirst
	octaveOnly
)

func (o octaves) allows(m matchMode) bool {
	switch o {
	case pitchClassOnly:
		return m == byPitchClass
	case octaveOnly:
		return m == byOctave
	}
	return true
}

type transition struct {
	requires []interval.Interval
	octaves  octaves
	to       stage
	triad    Triad
}

// state is a partially recognised chord: the tones consumed so far, relative
// to the root, and the intervals they were matched as.
type state struct {
	stage      stage
	triad      Triad
	extensions []interval.Interval
	steps      []note.Note
}

func (s state) next(tr transition, consumed []note.Note) state {
	n := state{stage: tr.to, triad: s.triad}
	if tr.triad != NoTriad {
		n.triad = tr.triad
	}
	n.extensions = append([]interval.Interval{}, s.extensions...)
	if tr.to != stageTriad && tr.to != stageNoFifth {
		n.extensions = append(n.extensions, tr.requires...)
	}
	n.steps = append(append([]note.Note{}, s.steps...), consumed...)
	return n
}

func (s state) typ() Type {
	t := Type{Kind: stageKinds[s.stage], Triad: s.triad}
	copy(t.Extensions[:], s.extensions)
	return t
}

func shape(to stage, triad Triad, requires ...interval.Interval) transition {
	return transition{requires: requires, octaves: pitchClassOnly, to: to, triad: triad}
}

func ext(to stage, o octaves, requires ...interval.Interval) transition {
	return transition{requires: requires, octaves: o, to: to}
}

// Shapes with a literal fifth come before the omitted-fifth fallbacks, which
// come before bare intervals.
var rootTransitions = []transition{
	shape(stageTriad, Minor, interval.Minor3, interval.Perfect5),
	shape(stageTriad, Major, interval.Major3, interval.Perfect5),
	shape(stageTriad, Sus2, interval.Major2, interval.Perfect5),
	shape(stageTriad, Sus4, interval.Perfect4, interval.Perfect5),
	shape(stageTriad, MinorDiminished, interval.Minor3, interval.Flat5),
	shape(stageTriad, MajorDiminished, interval.Major3, interval.Flat5),
	shape(stageTriad, Augmented, interval.Major3, interval.Augmented5),

	shape(stageNoFifth, MinorNoFifth, interval.Minor3),
	shape(stageNoFifth, MajorNoFifth, interval.Major3),
	shape(stageNoFifth, Sus4NoFifth, interval.Perfect4),
	shape(stageNoFifth, Sus2NoFifth, interval.Major2),

	shape(stageTwoTone, NoTriad, interval.Perfect5),
	shape(stageTwoTone, NoTriad, interval.Major2),
	shape(stageTwoTone, NoTriad, interval.Minor2),
	shape(stageTwoTone, NoTriad, interval.Minor3),
	shape(stageTwoTone, NoTriad, interval.Major3),
	shape(stageTwoTone, NoTriad, interval.Perfect4),
	shape(stageTwoTone, NoTriad, interval.Minor6),
	shape(stageTwoTone, NoTriad, interval.Major6),
	shape(stageTwoTone, NoTriad, interval.Minor7),
	shape(stageTwoTone, NoTriad, interval.Major7),
}

var triadTransitions = []transition{
	ext(stageAdd, octaveFirst, interval.Minor2),
	ext(stageAdd, octaveFirst, interval.Major2),
	ext(stageAdd, octaveFirst, interval.Minor6),
	ext(stageAdd, octaveFirst, interval.Major6),
	ext(stageSeven, octaveFirst, interval.Major7),
	ext(stageSeven, octaveFirst, interval.Minor7),
	ext(stageAdd, octaveFirst, interval.Minor9),
	ext(stageAdd, octaveFirst, interval.Major9),
	ext(stageAdd, octaveFirst, interval.Perfect11),
	ext(stageAdd, octaveFirst, interval.Augmented11),
}

var sevenths = []transition{
	ext(stageSeven, octaveFirst, interval.Major7),
	ext(stageSeven, octaveFirst, interval.Minor7),
}

// a suspended chord without its fifth needs both a 7th and a 9th
var suspendedNinths = []transition{
	ext(stageNine, octaveFirst, interval.Minor7, interval.Major9),
	ext(stageNine, octaveFirst, interval.Minor7, interval.Minor9),
	ext(stageNine, octaveFirst, interval.Minor7, interval.Augmented9),
	ext(stageNine, octaveFirst, interval.Major7, interval.Major9),
	ext(stageNine, octaveFirst, interval.Major7, interval.Minor9),
}

var ninthsOverMinor7 = []transition{
	ext(stageNine, octaveFirst, interval.Major9),
	ext(stageNine, octaveFirst, interval.Minor9),
	ext(stageNine, octaveFirst, interval.Augmented9),
}

var ninthsOverMajor7 = []transition{
	ext(stageNine, octaveFirst, interval.Major9),
	ext(stageNine, octaveFirst, interval.Minor9),
}

var elevenths = []transition{
	ext(stageEleven, octaveFirst, interval.Perfect11),
	ext(stageEleven, octaveFirst, interval.Augmented11),
}

func (s state) transitions() []transition {
	switch s.stage {
	case stageRoot:
		return rootTransitions
	case stageTriad:
		return triadTransitions
	case stageNoFifth:
		if s.triad.suspended() {
			return suspendedNinths
		}
		return sevenths
	case stageSeven:
		if s.extensions[len(s.extensions)-1] == interval.Major7 {
			return ninthsOverMajor7
		}
		return ninthsOverMinor7
	case stageNine:
		return elevenths
	}
	return nil
}

func matches(step note.Note, iv interval.Interval, mode matchMode) bool {
	if mode == byPitchClass {
		return int(step.PitchClass()) == iv.Folded()
	}
	return int(step) == iv.Semitones()
}

// consume removes one step per required interval, returning the consumed
// steps in the order they were required.
func consume(steps []note.Note, requires []interval.Interval, mode matchMode) ([]note.Note, []note.Note, bool) {
	rest := append([]note.Note{}, steps...)
	var consumed []note.Note
	for _, iv := range requires {
		found := -1
		for i, s := range rest {
			if matches(s, iv, mode) {
				found = i
				break
			}
		}
		if found < 0 {
			return nil, nil, false
		}
		consumed = append(consumed, rest[found])
		rest = append(rest[:found], rest[found+1:]...)
	}
	return consumed, rest, true
}

// walk tries every transition in priority order, octave-preserving matches
// before folded ones, and accepts the first path that uses up every step.
func walk(s state, steps []note.Note) (state, bool) {
	if len(steps) == 0 {
		return s, s.stage.accepting()
	}
	for _, mode := range []matchMode{byOctave, byPitchClass} {
		for _, tr := range s.transitions() {
			if !tr.octaves.allows(mode) {
				continue
			}
			consumed, rest, ok := consume(steps, tr.requires, mode)
			if !ok {
				continue
			}
			if final, ok := walk(s.next(tr, consumed), rest); ok {
				return final, true
			}
		}
	}
	return state{}, false
}

// Classify names a single voicing, taking its lowest note as the root.
// Voicings of fewer than 2 or more than 5 pitch classes are never matched.
func Classify(voicing []note.Note) *Chord {
	if len(voicing) < 2 || len(voicing) > 5 {
		return nil
	}

	root := voicing[0]
	for _, n := range voicing {
		if n < root {
			root = n
		}
	}

	var steps []note.Note
	rootSeen := false
	for _, n := range voicing {
		if n == root && !rootSeen {
			rootSeen = true
			continue
		}
		steps = append(steps, n.Sub(root))
	}

	final, ok := walk(state{stage: stageRoot}, steps)
	if !ok {
		return nil
	}
	return newChord(root, final.steps, final.typ())
}
