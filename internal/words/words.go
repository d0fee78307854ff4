// internal/words/words.go
//
// Provides the dictionary of legal Boggle words.
//
// Responsibilities:
//   - Load the word list from an environment-provided file or fall back to the embedded default.
//   - Hold the list as an immutable lookup set shared by every validation call.
//
// Initialization behavior (Init):
//   1. If WORDS_FILE is set, load one word per line from that file.
//   2. Otherwise use the embedded assets/words.txt.
//
// Constraints:
//   • Lists are normalized to lowercase.
//   • Blank lines, '#' comments, and entries with non a–z characters are dropped.
//   • The process-wide dictionary is built once (sync.Once) and never mutated.

package words

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/robalobadob/boggle/assets"
)

// ErrEmpty is returned when a word source yields no usable words.
var ErrEmpty = errors.New("words: dictionary is empty")

// Dictionary is an immutable set of lowercase words.
type Dictionary struct {
	set map[string]struct{}
}

// New builds a Dictionary from list, normalizing and filtering each entry.
func New(list []string) *Dictionary {
	d := &Dictionary{set: make(map[string]struct{}, len(list))}
	for _, w := range list {
		if w = normalize(w); w != "" {
			d.set[w] = struct{}{}
		}
	}
	return d
}

// Contains reports whether w is a dictionary word. Lookup is case-insensitive.
func (d *Dictionary) Contains(w string) bool {
	if d == nil {
		return false
	}
	_, ok := d.set[strings.ToLower(w)]
	return ok
}

// Len returns the number of distinct words.
func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}
	return len(d.set)
}

// Read builds a Dictionary from one word per line.
func Read(r io.Reader) (*Dictionary, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		out = append(out, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	d := New(out)
	if d.Len() == 0 {
		return nil, ErrEmpty
	}
	return d, nil
}

// Load reads the dictionary at path, or the embedded list when path is empty.
func Load(path string) (*Dictionary, error) {
	if path == "" {
		list, err := assets.WordList()
		if err != nil {
			return nil, fmt.Errorf("words: embedded list: %w", err)
		}
		d := New(list)
		if d.Len() == 0 {
			return nil, ErrEmpty
		}
		return d, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("words: %w", err)
	}
	defer f.Close()
	d, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("words: %s: %w", path, err)
	}
	return d, nil
}

var (
	initOnce   sync.Once
	shared     *Dictionary
	initialErr error
)

// Init loads the process-wide dictionary exactly once.
// Later calls return the first result regardless of path.
func Init(path string) error {
	initOnce.Do(func() {
		shared, initialErr = Load(path)
	})
	return initialErr
}

// Default returns the process-wide dictionary, or nil before a successful Init.
func Default() *Dictionary {
	return shared
}

// normalize lowercases and trims w, returning "" if it is not all a–z.
func normalize(w string) string {
	w = strings.ToLower(strings.TrimSpace(w))
	if w == "" || strings.HasPrefix(w, "#") || !isAlpha(w) {
		return ""
	}
	return w
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
