package model

type ChordsRequestBody struct {
	Tab      []string `json:"tab"`
	Tuning   string   `json:"tuning,omitempty"`
	Relative bool     `json:"relative,omitempty"`
}

// IdentifyRequestBody takes note names or MIDI keys, names win when both are
// set.
type IdentifyRequestBody struct {
	Names  []string `json:"names,omitempty"`
	Keys   Notes    `json:"keys,omitempty"`
	Tuning string   `json:"tuning,omitempty"`
}

type ChordView struct {
	Root  string   `json:"root"`
	Name  string   `json:"name"`
	Kind  string   `json:"kind"`
	Notes []string `json:"notes"`
}

type ChordsResponse struct {
	Notes []string `json:"notes"`
	// Inversions has one entry per inversion, null where nothing matched.
	Inversions []*ChordView `json:"inversions"`
	Names      []string     `json:"names"`
	Fretboard  string       `json:"fretboard,omitempty"`
}

type ScaleResponse struct {
	Scale     string   `json:"scale"`
	Root      string   `json:"root"`
	Notes     []string `json:"notes"`
	Degrees   []string `json:"degrees"`
	Chords    []string `json:"chords,omitempty"`
	Fretboard string   `json:"fretboard"`
}

type TuningView struct {
	Name    string   `json:"name"`
	Strings []string `json:"strings"`
}

type ErrorResponse struct {
	Error     string `json:"detail"`
	RequestId string `json:"request_id,omitempty"`
}
