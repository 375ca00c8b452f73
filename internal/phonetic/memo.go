package phonetic

import "sync"

// Memo caches the description of the most recent input. A call with the same
// text as the previous one returns the stored result; any other text replaces it.
type Memo struct {
	mu     sync.Mutex
	valid  bool
	input  string
	output string
	hits   int
	misses int
}

// NewMemo creates an empty memo
func NewMemo() *Memo {
	return &Memo{}
}

// Transcode returns Transcode(text), recomputing only when text changed
func (m *Memo) Transcode(text string) string {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.valid && m.input == text {
		m.hits++
		return m.output
	}

	m.input = text
	m.output = Transcode(text)
	m.valid = true
	m.misses++
	return m.output
}

// Hits returns how many calls were served from the cache
func (m *Memo) Hits() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.hits
}

// Misses returns how many calls had to recompute
func (m *Memo) Misses() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.misses
}
