package analysis

import (
	"sort"

	"github.com/google/uuid"
	"github.com/jsphweid/guitarnotes/chord"
	"github.com/jsphweid/guitarnotes/constants"
	"github.com/jsphweid/guitarnotes/db"
	"github.com/jsphweid/guitarnotes/file"
	"github.com/jsphweid/guitarnotes/harmony"
	"github.com/jsphweid/guitarnotes/midi"
	"github.com/jsphweid/guitarnotes/model"
	"github.com/jsphweid/guitarnotes/sample"
	"github.com/jsphweid/guitarnotes/util"
	"github.com/sirupsen/logrus"
	"gitlab.com/gomidi/midi/v2/smf"
	"gonum.org/v1/gonum/stat"
)

type Options struct {
	// Metadata is optional.
	Metadata db.MetadataStore

	// Only analyze the passage starting at TicksOffset, at most MaxNotes note
	// events long per track. Zero values mean the whole file.
	TicksOffset uint64
	MaxNotes    int
}

func (o Options) passage() bool {
	return o.TicksOffset > 0 || o.MaxNotes > 0
}

// Analyzer names sonorities, remembering every key it has classified.
type Analyzer struct {
	opts  Options
	names map[string]string
}

func New(opts Options) *Analyzer {
	return &Analyzer{opts: opts, names: make(map[string]string)}
}

// Name is the chord name of the first matching inversion, "" if none match
// or the sonority has too few or too many keys.
func (a *Analyzer) Name(keys model.Notes) string {
	if len(keys) < constants.MinSonoritySize || len(keys) > constants.MaxSonoritySize {
		return ""
	}
	notes := harmony.ToNotes(keys)
	key := chord.Key(notes)
	if name, ok := a.names[key]; ok {
		return name
	}

	var name string
	chords, err := chord.FindChord(notes)
	if err == nil {
		if first := chord.First(chords); first != nil {
			name = first.String()
		}
	}
	a.names[key] = name
	return name
}

func (a *Analyzer) Cached() int {
	return len(a.names)
}

func keyString(keys model.Notes) string {
	return chord.Key(harmony.ToNotes(keys))
}

func (a *Analyzer) AnalyzeSonorities(num model.FileNum, path string, sonorities []model.Sonority) model.FileReport {
	report := model.FileReport{
		FileNum:    num,
		Path:       path,
		Sonorities: len(sonorities),
		Timeline:   make([]model.TimedChord, 0, len(sonorities)),
	}
	for _, s := range sonorities {
		name := a.Name(s.Notes)
		if name != "" {
			report.Recognized++
		}
		report.Timeline = append(report.Timeline, model.TimedChord{
			Offset: s.Offset,
			Keys:   keyString(s.Notes),
			Size:   len(s.Notes),
			Name:   name,
		})
	}
	return report
}

func (a *Analyzer) AnalyzeSMF(num model.FileNum, path string, s *smf.SMF) (model.FileReport, error) {
	if a.opts.passage() {
		s = sample.Create(s, a.opts.TicksOffset, a.opts.MaxNotes)
	}
	sonorities, err := harmony.Extract(s)
	if err != nil {
		return model.FileReport{}, err
	}
	return a.AnalyzeSonorities(num, path, sonorities), nil
}

func (a *Analyzer) AnalyzeFile(num model.FileNum, path string) (model.FileReport, error) {
	parsed, err := midi.ReadMidiFile(path)
	if err != nil {
		return model.FileReport{}, err
	}
	return a.AnalyzeSMF(num, path, parsed)
}

// AnalyzeAll analyzes every file in m. Unreadable files are skipped and listed
// in the report.
func (a *Analyzer) AnalyzeAll(m model.FileNumToMidiPath) *model.Report {
	var files []model.FileReport
	var skipped []string

	keys := util.SortedKeys(m)
	for i, num := range keys {
		path := m[num]
		logrus.WithField("file", path).Infof("Processing %v of %v midi files", i+1, len(keys))
		report, err := a.AnalyzeFile(num, path)
		if err != nil {
			logrus.WithField("file", path).WithError(err).Warn("Skipping")
			skipped = append(skipped, path)
			continue
		}
		files = append(files, report)
	}

	a.attachMetadata(files)
	return Summarize(files, skipped)
}

func (a *Analyzer) attachMetadata(files []model.FileReport) {
	if a.opts.Metadata == nil || len(files) == 0 {
		return
	}
	names := make([]string, len(files))
	for i, f := range files {
		names[i] = file.MetadataKey(f.Path)
	}
	metadatas, err := a.opts.Metadata.GetMidiMetadatas(names)
	if err != nil {
		logrus.WithError(err).Warn("Could not fetch midi metadata")
		return
	}
	for i := range files {
		if md, ok := metadatas[names[i]]; ok {
			md := md
			files[i].Metadata = &md
		}
	}
}

// Summarize totals file reports into one report with a fresh id.
func Summarize(files []model.FileReport, skipped []string) *model.Report {
	report := &model.Report{
		Id:        uuid.New().String(),
		Files:     files,
		Skipped:   skipped,
		Histogram: []model.ChordCount{},
	}
	if report.Files == nil {
		report.Files = []model.FileReport{}
	}

	counts := make(map[string]int)
	var sizes []int
	for _, f := range files {
		report.Sonorities += f.Sonorities
		report.Recognized += f.Recognized
		for _, c := range f.Timeline {
			sizes = append(sizes, c.Size)
			if c.Name != "" {
				counts[c.Name]++
			}
		}
	}

	if report.Sonorities > 0 {
		report.RecognizedRate = float64(report.Recognized) / float64(report.Sonorities)
	}
	if len(sizes) > 0 {
		report.MeanSize = stat.Mean(util.ToFloats(sizes), nil)
	}
	if len(sizes) > 1 {
		report.SizeStdDev = stat.StdDev(util.ToFloats(sizes), nil)
	}

	for _, name := range util.SortedKeys(counts) {
		report.Histogram = append(report.Histogram, model.ChordCount{Name: name, Count: counts[name]})
	}
	sort.SliceStable(report.Histogram, func(i, j int) bool {
		return report.Histogram[i].Count > report.Histogram[j].Count
	})
	return report
}
