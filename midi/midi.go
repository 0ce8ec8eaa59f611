package midi

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2/smf"
)

// Read parses a standard midi file. smf can panic on malformed input
// (https://github.com/gomidi/midi/issues/20), which comes back as an error.
func Read(r io.Reader) (s *smf.SMF, e error) {
	defer func() {
		if r := recover(); r != nil {
			s = nil
			e = errors.Errorf("midi parser panicked: %v", r)
		}
	}()

	res, err := smf.ReadFrom(r)
	if err != nil {
		return nil, errors.Wrap(err, "error parsing midi file")
	}
	return res, nil
}

func ReadMidiFile(filepath string) (*smf.SMF, error) {
	dat, err := os.ReadFile(filepath)
	if err != nil {
		return nil, errors.Wrap(err, "error reading midi file")
	}
	return Read(bytes.NewReader(dat))
}

// KeyName spells a midi key like "c#4", middle C being c4.
func KeyName(key uint8) string {
	names := [12]string{"c", "c#", "d", "d#", "e", "f", "f#", "g", "g#", "a", "a#", "b"}
	return fmt.Sprintf("%v%v", names[key%12], int(key)/12-1)
}
