// Package corpus loads the word lists practice runs are sampled from.
package corpus

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

//go:embed words.txt
var bundledWords string

// BundledName labels the word list compiled into the binary.
const BundledName = "bundled"

// ErrEmptyCorpus is returned when a word list has no usable lines.
var ErrEmptyCorpus = errors.New("word list is empty")

// Source is a parsed word list and where it came from.
type Source struct {
	Name  string
	Words []string
}

// Default returns the bundled word list.
func Default() []string {
	words, err := Parse(strings.NewReader(bundledWords))
	if err != nil {
		// The bundled list is checked by tests.
		panic(fmt.Sprintf("bundled word list: %v", err))
	}
	return words
}

// Parse reads one word per line. Surrounding whitespace, including a trailing
// carriage return, is trimmed and empty lines are skipped.
func Parse(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, ErrEmptyCorpus
	}
	return words, nil
}

// Load reads a word list file.
func Load(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only word list.
			_ = cerr
		}
	}()

	words, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return words, nil
}

// Resolve returns the word list at path, or the bundled list when path is empty.
func Resolve(path string) (Source, error) {
	if path == "" {
		return Source{Name: BundledName, Words: Default()}, nil
	}
	words, err := Load(path)
	if err != nil {
		return Source{}, err
	}
	return Source{Name: path, Words: words}, nil
}
