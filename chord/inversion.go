package chord

import "github.com/jsphweid/guitarnotes/note"

// octavesSpanned is how many octaves the voicing covers, at least one.
func octavesSpanned(notes []note.Note) note.Note {
	if len(notes) == 0 {
		return 1
	}
	lo, hi := notes[0], notes[0]
	for _, n := range notes {
		if n < lo {
			lo = n
		}
		if n > hi {
			hi = n
		}
	}
	octaves := (hi - lo + note.Octave - 1) / note.Octave
	if octaves < 1 {
		octaves = 1
	}
	return octaves
}

// BuildInversions returns the N-1 inversions of a sorted voicing of distinct
// pitch classes. Inversion i moves the lowest i notes up by enough octaves to
// clear the rest of the voicing and puts them last.
func BuildInversions(base []note.Note) [][]note.Note {
	shift := octavesSpanned(base) * note.Octave

	var res [][]note.Note
	for i := 1; i < len(base); i++ {
		inversion := make([]note.Note, 0, len(base))
		inversion = append(inversion, base[i:]...)
		for _, n := range base[:i] {
			inversion = append(inversion, n.Add(shift))
		}
		res = append(res, note.Uniq(inversion))
	}
	return res
}
