package chord

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jsphweid/guitarnotes/note"
)

// Key identifies a sonority independent of the order its notes arrived in,
// e.g. "60-64-67".
func Key(notes []note.Note) string {
	sorted := append([]note.Note{}, notes...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i] < sorted[j]
	})
	parts := make([]string, len(sorted))
	for i, n := range sorted {
		parts[i] = fmt.Sprintf("%v", int(n))
	}
	return strings.Join(parts, "-")
}
