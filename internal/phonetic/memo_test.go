package phonetic

import (
	"sync"
	"testing"
)

func TestMemoTranscode(t *testing.T) {
	m := NewMemo()

	if got := m.Transcode("Hi"); got != "uppercase H, lowercase i" {
		t.Errorf("Transcode(\"Hi\") = %q", got)
	}
	if m.Misses() != 1 || m.Hits() != 0 {
		t.Errorf("after first call: hits=%d misses=%d, want 0/1", m.Hits(), m.Misses())
	}

	// Same input is served from the cache
	if got := m.Transcode("Hi"); got != "uppercase H, lowercase i" {
		t.Errorf("cached Transcode(\"Hi\") = %q", got)
	}
	if m.Hits() != 1 {
		t.Errorf("hits = %d, want 1", m.Hits())
	}

	// A different input invalidates the entry
	if got := m.Transcode("Hi!"); got != "uppercase H, lowercase i, exclamation point" {
		t.Errorf("Transcode(\"Hi!\") = %q", got)
	}
	if got := m.Transcode("Hi"); got != "uppercase H, lowercase i" {
		t.Errorf("Transcode(\"Hi\") after change = %q", got)
	}
	if m.Misses() != 3 {
		t.Errorf("misses = %d, want 3", m.Misses())
	}
}

func TestMemoEmptyInput(t *testing.T) {
	m := NewMemo()

	if got := m.Transcode(""); got != "" {
		t.Errorf("Transcode(\"\") = %q, want empty", got)
	}
	if got := m.Transcode(""); got != "" {
		t.Errorf("cached Transcode(\"\") = %q, want empty", got)
	}
	if m.Hits() != 1 || m.Misses() != 1 {
		t.Errorf("hits=%d misses=%d, want 1/1", m.Hits(), m.Misses())
	}
}

func TestMemoConcurrent(t *testing.T) {
	m := NewMemo()
	inputs := []string{"a", "b", "3.14", "a"}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			in := inputs[i%len(inputs)]
			if got, want := m.Transcode(in), Transcode(in); got != want {
				t.Errorf("Transcode(%q) = %q, want %q", in, got, want)
			}
		}(i)
	}
	wg.Wait()

	if total := m.Hits() + m.Misses(); total != 50 {
		t.Errorf("hits+misses = %d, want 50", total)
	}
}
