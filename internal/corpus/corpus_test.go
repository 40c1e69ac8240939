package corpus

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/verte-zerg/typings/internal/engine"
)

func TestParseTrimsAndSkipsEmpty(t *testing.T) {
	words, err := Parse(strings.NewReader("alpha\r\n\r\n  beta \n\ngamma"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := []string{"alpha", "beta", "gamma"}
	if strings.Join(words, ",") != strings.Join(want, ",") {
		t.Fatalf("expected %v, got %v", want, words)
	}
}

func TestParseEmpty(t *testing.T) {
	_, err := Parse(strings.NewReader("\n \r\n"))
	if !errors.Is(err, ErrEmptyCorpus) {
		t.Fatalf("expected ErrEmptyCorpus, got %v", err)
	}
}

func TestDefaultHasEnoughWords(t *testing.T) {
	words := Default()
	if len(words) < engine.DefaultSampleSize {
		t.Fatalf("bundled list has %d words, need at least %d", len(words), engine.DefaultSampleSize)
	}
	seen := map[string]struct{}{}
	for _, w := range words {
		if strings.ContainsAny(w, " \t\r") {
			t.Fatalf("bundled word %q contains whitespace", w)
		}
		if _, ok := seen[w]; ok {
			t.Fatalf("bundled word %q repeated", w)
		}
		seen[w] = struct{}{}
	}
}

func TestResolve(t *testing.T) {
	src, err := Resolve("")
	if err != nil {
		t.Fatalf("resolve bundled: %v", err)
	}
	if src.Name != BundledName || len(src.Words) == 0 {
		t.Fatalf("unexpected bundled source: %s with %d words", src.Name, len(src.Words))
	}

	path := filepath.Join(t.TempDir(), "mine.txt")
	if err := os.WriteFile(path, []byte("one\ntwo\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	src, err = Resolve(path)
	if err != nil {
		t.Fatalf("resolve file: %v", err)
	}
	if src.Name != path || len(src.Words) != 2 {
		t.Fatalf("unexpected file source: %+v", src)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.txt")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
	path := filepath.Join(t.TempDir(), "blank.txt")
	if err := os.WriteFile(path, []byte("\n\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); !errors.Is(err, ErrEmptyCorpus) {
		t.Fatalf("expected ErrEmptyCorpus, got %v", err)
	}
}
