package model

type ChordCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type FileReport struct {
	FileNum  FileNum       `json:"file_num"`
	Path     string        `json:"path"`
	Metadata *MidiMetadata `json:"metadata,omitempty"`

	Sonorities int `json:"sonorities"`
	Recognized int `json:"recognized"`

	// Timeline names each sonority in order, "" where nothing matched.
	Timeline []TimedChord `json:"timeline"`
}

type TimedChord struct {
	Offset uint32 `json:"offset_ms"`
	Keys   string `json:"keys"`
	Size   int    `json:"size"`
	Name   string `json:"name"`
}

type Report struct {
	Id      string       `json:"id"`
	Files   []FileReport `json:"files"`
	Skipped []string     `json:"skipped,omitempty"`

	Sonorities     int          `json:"sonorities"`
	Recognized     int          `json:"recognized"`
	RecognizedRate float64      `json:"recognized_rate"`
	MeanSize       float64      `json:"mean_size"`
	SizeStdDev     float64      `json:"size_std_dev"`
	Histogram      []ChordCount `json:"histogram"`
}
