package interval

import "fmt"

// Interval is a named distance above a chord root. Some intervals share a
// semitone count (an augmented fifth and a minor sixth are both 8) and are
// told apart by the shape they appear in.
type Interval int

const (
	None Interval = iota
	Minor2
	Major2
	Minor3
	Major3
	Perfect4
	Flat5
	Perfect5
	Augmented5
	Minor6
	Major6
	Minor7
	Major7
	Minor9
	Major9
	Augmented9
	Perfect11
	Augmented11
)

type entry struct {
	name      string
	semitones int
	symbol    string
}

var catalogue = map[Interval]entry{
	Minor2:      {"minor 2nd", 1, "2m"},
	Major2:      {"major 2nd", 2, "2"},
	Minor3:      {"minor 3rd", 3, "3m"},
	Major3:      {"major 3rd", 4, "3"},
	Perfect4:    {"perfect 4th", 5, "4"},
	Flat5:       {"flattened 5th", 6, "5-"},
	Perfect5:    {"perfect 5th", 7, "5"},
	Augmented5:  {"augmented 5th", 8, "5+"},
	Minor6:      {"minor 6th", 8, "6m"},
	Major6:      {"major 6th", 9, "6"},
	Minor7:      {"minor 7th", 10, "7"},
	Major7:      {"major 7th", 11, "maj7"},
	Minor9:      {"minor 9th", 13, "9m"},
	Major9:      {"major 9th", 14, "9"},
	Augmented9:  {"augmented 9th", 15, "9+"},
	Perfect11:   {"perfect 11th", 17, "11"},
	Augmented11: {"augmented 11th", 18, "11+"},
}

// Semitones is the raw distance, 9ths and 11ths included above the octave.
func (i Interval) Semitones() int {
	return catalogue[i].semitones
}

// Folded is the distance within one octave.
func (i Interval) Folded() int {
	return i.Semitones() % 12
}

// Symbol is the display string used in chord names.
func (i Interval) Symbol() string {
	return catalogue[i].symbol
}

func (i Interval) Valid() bool {
	_, ok := catalogue[i]
	return ok
}

func (i Interval) String() string {
	if e, ok := catalogue[i]; ok {
		return e.name
	}
	return fmt.Sprintf("interval(%d)", int(i))
}

func IsSeventh(i Interval) bool {
	return i == Minor7 || i == Major7
}
