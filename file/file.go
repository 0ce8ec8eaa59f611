package file

import (
	"path/filepath"

	"github.com/jsphweid/guitarnotes/model"
)

func CreateFileNumMap(paths []string) model.FileNumToMidiPath {
	res := make(model.FileNumToMidiPath)
	for i, v := range paths {
		res[uint32(i)] = v
	}
	return res
}

// MetadataKey is how a file is known to the metadata table: its base name.
func MetadataKey(path string) string {
	return filepath.Base(path)
}
