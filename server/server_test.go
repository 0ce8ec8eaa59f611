package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jsphweid/guitarnotes/model"
	"github.com/jsphweid/guitarnotes/tuning"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	w := httptest.NewRecorder()
	New(tuning.MustFromName("eadgbe")).Handler().ServeHTTP(w, req)
	return w
}

func decode[A any](t *testing.T, w *httptest.ResponseRecorder) A {
	var res A
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	return res
}

func TestHandleChords(t *testing.T) {
	w := do(t, http.MethodPost, "/chords", model.ChordsRequestBody{
		Tab: []string{"e0", "a2", "d2", "g1", "b0", "e0"},
	})

	assert := assert.New(t)
	assert.Equal(http.StatusOK, w.Code)
	assert.NotEmpty(w.Header().Get(RequestIdHeader))

	res := decode[model.ChordsResponse](t, w)
	assert.Equal([]string{"e", "b", "e", "g#", "b", "e"}, res.Notes)
	assert.Equal([]string{"E", "", ""}, res.Names)
	require.Len(t, res.Inversions, 3)
	assert.Equal(&model.ChordView{Root: "E", Name: "E", Kind: "triad", Notes: []string{"e", "g#", "b"}}, res.Inversions[0])
	assert.Nil(res.Inversions[1])
	assert.Len(strings.Split(res.Fretboard, "\n"), 6)
}

func TestHandleChordsOtherTuning(t *testing.T) {
	w := do(t, http.MethodPost, "/chords", model.ChordsRequestBody{
		Tab:    []string{"d0", "a0", "d0"},
		Tuning: "dropd",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "D5", decode[model.ChordsResponse](t, w).Names[0])
}

func TestHandleChordsErrors(t *testing.T) {
	assert := assert.New(t)

	w := do(t, http.MethodPost, "/chords", model.ChordsRequestBody{Tab: []string{"zz"}})
	assert.Equal(http.StatusBadRequest, w.Code)
	assert.NotEmpty(decode[model.ErrorResponse](t, w).RequestId)

	w = do(t, http.MethodPost, "/chords", model.ChordsRequestBody{Tab: []string{"e0"}, Tuning: "banjo"})
	assert.Equal(http.StatusBadRequest, w.Code)

	req := httptest.NewRequest(http.MethodPost, "/chords", strings.NewReader("{"))
	rec := httptest.NewRecorder()
	New(tuning.MustFromName("eadgbe")).Handler().ServeHTTP(rec, req)
	assert.Equal(http.StatusBadRequest, rec.Code)
}

func TestHandleChordsNoMatch(t *testing.T) {
	w := do(t, http.MethodPost, "/chords", model.ChordsRequestBody{Tab: []string{"a0", "d1"}})

	assert := assert.New(t)
	assert.Equal(http.StatusOK, w.Code)
	res := decode[model.ChordsResponse](t, w)
	assert.Equal([]string{"", ""}, res.Names)
	assert.Empty(res.Fretboard)
}

func TestHandleIdentify(t *testing.T) {
	assert := assert.New(t)

	w := do(t, http.MethodPost, "/identify", model.IdentifyRequestBody{Keys: model.Notes{57, 60, 64}})
	assert.Equal(http.StatusOK, w.Code)
	assert.Equal("Am", decode[model.ChordsResponse](t, w).Names[0])

	w = do(t, http.MethodPost, "/identify", model.IdentifyRequestBody{Names: []string{"c", "e", "g", "bb"}})
	assert.Equal(http.StatusOK, w.Code)
	assert.Equal("C7", decode[model.ChordsResponse](t, w).Names[0])

	w = do(t, http.MethodPost, "/identify", model.IdentifyRequestBody{Names: []string{"c", "x"}})
	assert.Equal(http.StatusBadRequest, w.Code)

	w = do(t, http.MethodPost, "/identify", model.IdentifyRequestBody{})
	assert.Equal(http.StatusBadRequest, w.Code)
}

func TestHandleScale(t *testing.T) {
	assert := assert.New(t)

	w := do(t, http.MethodGet, "/scales/major/c", nil)
	assert.Equal(http.StatusOK, w.Code)
	res := decode[model.ScaleResponse](t, w)
	assert.Equal("major", res.Scale)
	assert.Equal("C", res.Root)
	assert.Equal([]string{"C", "Dm", "Em", "F", "G", "Am", "Bmdim", "C"}, res.Chords)

	w = do(t, http.MethodGet, "/scales/a/minor_pentatonic", nil)
	assert.Equal(http.StatusOK, w.Code)
	res = decode[model.ScaleResponse](t, w)
	assert.Equal("A", res.Root)
	assert.Empty(res.Chords)
	assert.Equal([]string{"a", "c", "d", "e", "g", "a"}, res.Notes)

	w = do(t, http.MethodGet, "/scales/klingon/c", nil)
	assert.Equal(http.StatusNotFound, w.Code)
}

func TestHandleTunings(t *testing.T) {
	w := do(t, http.MethodGet, "/tunings", nil)
	require.Equal(t, http.StatusOK, w.Code)

	res := decode[[]model.TuningView](t, w)
	assert.Len(t, res, len(tuning.Names()))
	for _, v := range res {
		if v.Name == "eadgbe" {
			assert.Equal(t, []string{"e", "a", "d", "g", "b", "e"}, v.Strings)
		}
	}
}

func TestRequestIdIsKept(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/tunings", nil)
	req.Header.Set(RequestIdHeader, "abc")
	w := httptest.NewRecorder()
	New(tuning.MustFromName("eadgbe")).Handler().ServeHTTP(w, req)

	assert.Equal(t, "abc", w.Header().Get(RequestIdHeader))
}
