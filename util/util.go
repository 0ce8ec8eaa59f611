package util

import (
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

func IsMidiPath(path string) bool {
	lower := strings.ToLower(path)
	return strings.HasSuffix(lower, ".mid") || strings.HasSuffix(lower, ".midi")
}

// GatherAllMidiPaths walks root for midi files in lexical order. maxNum 0
// means no limit.
func GatherAllMidiPaths(root string, maxNum int) ([]string, error) {
	var res []string
	walk := func(s string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !IsMidiPath(s) {
			return nil
		}
		if maxNum > 0 && len(res) >= maxNum {
			return filepath.SkipAll
		}
		res = append(res, s)
		return nil
	}
	if err := filepath.WalkDir(root, walk); err != nil {
		return nil, errors.Wrapf(err, "could not walk %v", root)
	}
	return res, nil
}

func GetKeys[A comparable, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

func SortedKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := GetKeys(m)
	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})
	return keys
}

func Min[A constraints.Integer](num1 A, num2 A) A {
	if num1 > num2 {
		return num2
	}
	return num1
}

func Sum[A constraints.Integer](nums []A) uint64 {
	var total uint64
	for _, v := range nums {
		total += uint64(v)
	}
	return total
}

func ToFloats[A constraints.Integer](nums []A) []float64 {
	res := make([]float64, len(nums))
	for i, v := range nums {
		res[i] = float64(v)
	}
	return res
}

// WriteJSON writes data indented to dir/filename, creating dir if needed.
func WriteJSON(dir, filename string, data any) (string, error) {
	if err := os.MkdirAll(dir, 0777); err != nil {
		return "", errors.Wrap(err, "could not create output dir")
	}
	path := filepath.Join(dir, filename)
	f, err := os.Create(path)
	if err != nil {
		return "", errors.Wrapf(err, "could not create %v", path)
	}
	defer f.Close()

	encoder := json.NewEncoder(f)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return "", errors.Wrapf(err, "could not write %v", path)
	}
	return path, nil
}
