package harmony

import (
	"sort"
	"sync"

	"github.com/jsphweid/guitarnotes/model"
)

// Held tracks keys currently pressed on a live input. It is safe for
// concurrent use.
type Held struct {
	mu   sync.Mutex
	keys map[uint8]bool
}

func NewHeld() *Held {
	return &Held{keys: make(map[uint8]bool)}
}

func (h *Held) Press(key uint8) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.keys[key] = true
}

func (h *Held) Release(key uint8) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.keys, key)
}

// Keys returns the held keys, lowest first.
func (h *Held) Keys() model.Notes {
	h.mu.Lock()
	defer h.mu.Unlock()
	res := make(model.Notes, 0, len(h.keys))
	for k := range h.keys {
		res = append(res, k)
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i] < res[j]
	})
	return res
}
