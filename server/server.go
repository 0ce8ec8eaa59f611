package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/jsphweid/guitarnotes/chord"
	"github.com/jsphweid/guitarnotes/guitar"
	"github.com/jsphweid/guitarnotes/harmony"
	"github.com/jsphweid/guitarnotes/model"
	"github.com/jsphweid/guitarnotes/note"
	"github.com/jsphweid/guitarnotes/tuning"
	"github.com/pkg/errors"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

type Server struct {
	tuning *tuning.Tuning
	router *mux.Router
}

// New serves the chord API, falling back to t when a request names no
// tuning.
func New(t *tuning.Tuning) *Server {
	s := &Server{tuning: t}

	router := mux.NewRouter().StrictSlash(true)
	router.Use(withRequestId, accessLog)
	router.HandleFunc("/chords", s.HandleChords).Methods("POST")
	router.HandleFunc("/identify", s.HandleIdentify).Methods("POST")
	router.HandleFunc("/scales/{scale}/{root}", s.HandleScale).Methods("GET")
	router.HandleFunc("/tunings", s.HandleTunings).Methods("GET")
	s.router = router
	return s
}

func (s *Server) Handler() http.Handler {
	return cors.New(cors.Options{
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type", RequestIdHeader},
		ExposedHeaders: []string{RequestIdHeader},
	}).Handler(s.router)
}

func ListenAndServe(addr string, t *tuning.Tuning) error {
	logrus.WithField("addr", addr).Info("Serving")
	return http.ListenAndServe(addr, New(t).Handler())
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Warn("Could not write response")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	writeJSON(w, status, model.ErrorResponse{Error: err.Error(), RequestId: RequestId(r.Context())})
}

func (s *Server) resolveTuning(name string) (*tuning.Tuning, error) {
	if name == "" {
		return s.tuning, nil
	}
	t, ok := tuning.FromName(name)
	if !ok {
		return nil, errors.Wrap(tuning.ErrUnknownTuning, name)
	}
	return t, nil
}

func noteNames(notes []note.Note) []string {
	res := make([]string, len(notes))
	for i, n := range notes {
		res[i] = n.Name()
	}
	return res
}

func chordView(c *chord.Chord) *model.ChordView {
	if c == nil {
		return nil
	}
	return &model.ChordView{
		Root:  strings.ToUpper(c.Root().Name()),
		Name:  c.String(),
		Kind:  c.Type().Kind.String(),
		Notes: noteNames(c.Notes()),
	}
}

func chordsResponse(res guitar.ChordResult) model.ChordsResponse {
	body := model.ChordsResponse{
		Notes:      noteNames(res.Notes),
		Inversions: make([]*model.ChordView, len(res.Chords)),
		Names:      res.Names(),
		Fretboard:  res.Fretboard,
	}
	for i, c := range res.Chords {
		body.Inversions[i] = chordView(c)
	}
	return body
}

// identified reports a result whether or not any inversion matched.
func (s *Server) identified(w http.ResponseWriter, r *http.Request, res guitar.ChordResult, err error) {
	switch {
	case err == nil, errors.Is(err, guitar.ErrNoChord):
		writeJSON(w, http.StatusOK, chordsResponse(res))
	default:
		writeError(w, r, http.StatusBadRequest, err)
	}
}

func (s *Server) HandleChords(w http.ResponseWriter, r *http.Request) {
	var input model.ChordsRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, r, http.StatusBadRequest, errors.Wrap(err, "could not unmarshal request body"))
		return
	}
	t, err := s.resolveTuning(input.Tuning)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}

	res, err := guitar.ChordFromTabNotation(input.Tab, t, input.Relative)
	s.identified(w, r, res, err)
}

func (s *Server) HandleIdentify(w http.ResponseWriter, r *http.Request) {
	var input model.IdentifyRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, r, http.StatusBadRequest, errors.Wrap(err, "could not unmarshal request body"))
		return
	}
	t, err := s.resolveTuning(input.Tuning)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}

	var notes []note.Note
	if len(input.Names) > 0 {
		for _, name := range input.Names {
			n, ok := note.FromName(name)
			if !ok {
				writeError(w, r, http.StatusBadRequest, errors.Errorf("unknown note %q", name))
				return
			}
			notes = append(notes, n)
		}
	} else {
		notes = harmony.ToNotes(input.Keys)
	}
	if len(notes) == 0 {
		writeError(w, r, http.StatusBadRequest, chord.ErrNoNotes)
		return
	}

	res, err := guitar.Identify(notes, t, false)
	s.identified(w, r, res, err)
}

func (s *Server) HandleScale(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	t, err := s.resolveTuning(r.URL.Query().Get("tuning"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}
	relative := r.URL.Query().Get("relative") == "true"

	res, err := guitar.ScaleOnFretboardEitherOrder(vars["scale"], vars["root"], t, relative)
	if err != nil {
		writeError(w, r, http.StatusNotFound, err)
		return
	}

	body := model.ScaleResponse{
		Scale:     string(res.Scale.Type),
		Root:      strings.ToUpper(res.Scale.Root().Name()),
		Notes:     res.Scale.NoteNames(),
		Degrees:   res.Degrees,
		Fretboard: res.Fretboard,
	}
	if res.Scale.Type.Diatonic() {
		body.Chords = res.Chords
	}
	writeJSON(w, http.StatusOK, body)
}

func (s *Server) HandleTunings(w http.ResponseWriter, r *http.Request) {
	var res []model.TuningView
	for _, name := range tuning.Names() {
		t := tuning.MustFromName(name)
		res = append(res, model.TuningView{Name: name, Strings: t.StringNames()})
	}
	writeJSON(w, http.StatusOK, res)
}
