package file

import (
	"testing"

	"github.com/jsphweid/guitarnotes/model"
	"github.com/stretchr/testify/assert"
)

func TestCreateFileNumMap(t *testing.T) {
	m := CreateFileNumMap([]string{"a.mid", "b/c.mid"})
	assert.Equal(t, model.FileNumToMidiPath{0: "a.mid", 1: "b/c.mid"}, m)
	assert.Equal(t, "c.mid", MetadataKey(m[1]))
}
