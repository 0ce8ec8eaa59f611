package chord

import (
	"fmt"
	"testing"

	"github.com/jsphweid/guitarnotes/interval"
	"github.com/jsphweid/guitarnotes/note"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func notes(semitones ...int) []note.Note {
	res := make([]note.Note, len(semitones))
	for i, s := range semitones {
		res[i] = note.Note(s)
	}
	return res
}

func transposed(by int, semitones ...int) []note.Note {
	res := notes(semitones...)
	for i := range res {
		res[i] += note.Note(by)
	}
	return res
}

func triad(t Triad) Type {
	return Type{Kind: TriadChord, Triad: t}
}

func withExt(kind Kind, t Triad, exts ...interval.Interval) Type {
	typ := Type{Kind: kind, Triad: t}
	copy(typ.Extensions[:], exts)
	return typ
}

func TestFirstInversion(t *testing.T) {
	assert := assert.New(t)

	inversions := BuildInversions(notes(0, 3, 7))
	assert.Len(inversions, 2)
	assert.Equal(notes(3, 7, 12), inversions[0])
	assert.Equal(notes(7, 12, 15), inversions[1])
}

func TestInversionsClearWideVoicings(t *testing.T) {
	assert := assert.New(t)

	// spans 16 semitones, so the moved notes go up two octaves
	inversions := BuildInversions(notes(0, 7, 16))
	assert.Equal(notes(7, 16, 24), inversions[0])
	assert.Equal(notes(16, 24, 31), inversions[1])
}

func TestInversionLowestNoteRotates(t *testing.T) {
	base := notes(0, 4, 7, 10, 14)
	for i, inversion := range BuildInversions(base) {
		lowest := inversion[0]
		for _, n := range inversion {
			assert.GreaterOrEqual(t, n, lowest)
		}
		assert.Equal(t, base[i+1], lowest)
	}
}

func TestFindChord(t *testing.T) {
	cases := []struct {
		notes []note.Note
		typ   Type
		name  string
	}{
		{transposed(3, 0, 3, 7), triad(Minor), "D#m"},
		{transposed(3, 0, 2, 7), triad(Sus2), "D#sus2"},
		{notes(0, 3, 7), triad(Minor), "Cm"},
		{notes(0, 2, 7), triad(Sus2), "Csus2"},
		{notes(0, 5, 7), triad(Sus4), "Csus4"},
		{notes(0, 4, 7), triad(Major), "C"},
		{notes(0, 3, 6), triad(MinorDiminished), "Cmdim"},
		{notes(0, 4, 6), triad(MajorDiminished), "Cdim"},
		{notes(0, 4, 8), triad(Augmented), "C+"},
		{notes(0, 7), withExt(TwoTone, NoTriad, interval.Perfect5), "C5"},
		{notes(0, 3), withExt(TwoTone, NoTriad, interval.Minor3), "C3m"},
		{notes(0, 11), withExt(TwoTone, NoTriad, interval.Major7), "Cmaj7"},
		{transposed(12, 0, 4, 7, 10), withExt(SevenChord, Major, interval.Minor7), "C7"},
		{notes(0, 4, 7, 11), withExt(SevenChord, Major, interval.Major7), "Cmaj7"},
		{notes(0, 3, 7, 10), withExt(SevenChord, Minor, interval.Minor7), "Cm7"},
		{notes(0, 3, 7, 14), withExt(AddChord, Minor, interval.Major9), "Cmadd9"},
		{notes(0, 2, 3, 7), withExt(AddChord, Minor, interval.Major2), "Cmadd2"},
		{notes(0, 4, 7, 9), withExt(AddChord, Major, interval.Major6), "Cadd6"},
		{notes(0, 4, 7, 17), withExt(AddChord, Major, interval.Perfect11), "Cadd11"},
		{notes(0, 4, 10), withExt(SevenChord, MajorNoFifth, interval.Minor7), "C7(no5)"},
		{notes(0, 4, 10, 14), withExt(NineChord, MajorNoFifth, interval.Minor7, interval.Major9), "C9(no5)"},
		{notes(0, 2, 4, 10), withExt(NineChord, MajorNoFifth, interval.Minor7, interval.Major9), "C9(no5)"},
		{notes(0, 5, 10, 14), withExt(NineChord, Sus4NoFifth, interval.Minor7, interval.Major9), "C9sus4(no5)"},
		{notes(0, 4, 7, 10, 14), withExt(NineChord, Major, interval.Minor7, interval.Major9), "C9"},
		{notes(0, 3, 7, 10, 14), withExt(NineChord, Minor, interval.Minor7, interval.Major9), "Cm9"},
		{notes(0, 4, 7, 11, 14), withExt(NineChord, Major, interval.Major7, interval.Major9), "Cmaj9"},
		{notes(0, 4, 7, 11, 13), withExt(NineChord, Major, interval.Major7, interval.Minor9), "Cmaj9m"},
		{notes(0, 4, 7, 10, 15), withExt(NineChord, Major, interval.Minor7, interval.Augmented9), "C9+"},
		{notes(0, 4, 10, 14, 17), withExt(ElevenChord, MajorNoFifth, interval.Minor7, interval.Major9, interval.Perfect11), "C11(no5)"},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("%v as %s", c.notes, c.name), func(t *testing.T) {
			chords, err := FindChord(c.notes)
			require.NoError(t, err)
			require.NotNil(t, chords[0])

			assert := assert.New(t)
			assert.Equal(c.typ, chords[0].Type())
			assert.Equal(c.name, chords[0].String())
		})
	}
}

func TestFindChordNoMatch(t *testing.T) {
	assert := assert.New(t)

	chords, err := FindChord(notes(0, 1, 2))
	assert.NoError(err)
	assert.Equal([]*Chord{nil, nil, nil}, chords)

	chords, err = FindChord(notes(0, 6))
	assert.NoError(err)
	assert.Nil(chords[0])

	// six pitch classes are never matched
	chords, err = FindChord(notes(0, 2, 4, 6, 8, 10))
	assert.NoError(err)
	assert.Len(chords, 6)
	assert.Nil(First(chords))
}

func TestFindChordEmpty(t *testing.T) {
	_, err := FindChord(nil)
	assert.ErrorIs(t, err, ErrNoNotes)
}

func TestFindChordReturnsOneResultPerPitchClass(t *testing.T) {
	for n := 1; n <= 12; n++ {
		var input []note.Note
		for i := 0; i < n; i++ {
			// double every note an octave up, those must be dropped
			input = append(input, note.Note(i*7), note.Note(i*7+12))
		}
		chords, err := FindChord(input)
		assert.NoError(t, err)
		assert.Len(t, chords, n)
	}
}

func TestFindChordInversions(t *testing.T) {
	assert := assert.New(t)

	// open E major: E B E G# B E
	chords, err := FindChord(notes(40, 47, 52, 56, 59, 64))
	assert.NoError(err)
	assert.Len(chords, 3)
	assert.Equal([]string{"E", "", ""}, Names(chords))
	assert.Equal(notes(40, 56, 47), chords[0].Notes())

	chords, err = FindChord(notes(0, 4, 9))
	assert.NoError(err)
	assert.Equal([]string{"", "", "Am"}, Names(chords))
	assert.Equal("Am", First(chords).String())

	chords, err = FindChord(notes(0, 2, 7))
	assert.NoError(err)
	assert.Equal([]string{"Csus2", "", "Gsus4"}, Names(chords))
}

func TestBaseVoicingIsSortedAfterDedup(t *testing.T) {
	voicings := Voicings(notes(19, 12, 16, 0))
	assert.Equal(t, notes(12, 16, 19), voicings[0])
}

func TestUniformOctaveShiftKeepsTags(t *testing.T) {
	shapes := [][]int{
		{0, 3, 7},
		{0, 4, 7, 10},
		{0, 3, 7, 14},
		{0, 4, 7, 10, 14},
		{0, 7},
	}
	for _, shape := range shapes {
		base, err := FindChord(notes(shape...))
		require.NoError(t, err)
		for _, octaves := range []int{-2, -1, 1, 3} {
			shifted, err := FindChord(transposed(12*octaves, shape...))
			require.NoError(t, err)
			assert.Equal(t, typesOf(base), typesOf(shifted))
		}
	}
}

func TestArbitraryOctaveShiftsKeepTriadTags(t *testing.T) {
	shapes := [][]int{{0, 3, 7}, {0, 4, 8}, {0, 2, 7}, {0, 4, 10}, {2, 9}}
	shifts := [][]int{{0, 1, 0}, {2, 0, -1}, {-1, 3, 1}}
	for _, shape := range shapes {
		base, err := FindChord(notes(shape...))
		require.NoError(t, err)
		for _, shift := range shifts {
			var moved []note.Note
			for i, s := range shape {
				moved = append(moved, note.Note(s+12*shift[i]))
			}
			shifted, err := FindChord(moved)
			require.NoError(t, err)
			assert.ElementsMatch(t, typesOf(base), typesOf(shifted), "%v shifted to %v", shape, moved)
		}
	}
}

func typesOf(chords []*Chord) []*Type {
	res := make([]*Type, len(chords))
	for i, c := range chords {
		if c != nil {
			typ := c.Type()
			res[i] = &typ
		}
	}
	return res
}

func TestFormattingIsDeterministic(t *testing.T) {
	chords, err := FindChord(notes(0, 3, 7, 14))
	require.NoError(t, err)
	assert.Equal(t, chords[0].String(), chords[0].String())
}

func TestNotesIsACopy(t *testing.T) {
	chords, err := FindChord(notes(0, 4, 7))
	require.NoError(t, err)
	ns := chords[0].Notes()
	ns[0] = 99
	assert.Equal(t, note.Note(0), chords[0].Root())
	assert.Equal(t, notes(0, 4, 7), chords[0].Notes())
}

func TestKey(t *testing.T) {
	assert := assert.New(t)

	input := notes(67, 60, 64)
	assert.Equal("60-64-67", Key(input))
	assert.Equal(notes(67, 60, 64), input)
	assert.Equal("", Key(nil))
}
