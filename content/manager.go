package content

import (
	"bufio"
	_ "embed"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

const (
	// DefaultDataDir is scanned for additional word lists
	DefaultDataDir = "./assets"

	// MaxWordLength drops words that could not fit any phrase on the widest board
	MaxWordLength = 16
)

var (
	// CommentPrefixes defines the prefixes that identify comment lines
	CommentPrefixes = []string{"//", "#"}

	//go:embed words.txt
	defaultWords string
)

// Manager discovers word list files and builds the word bank
type Manager struct {
	dataDir      string
	contentFiles []string
}

// NewManager creates a manager scanning dataDir; empty uses DefaultDataDir
func NewManager(dataDir string) *Manager {
	if dataDir == "" {
		dataDir = DefaultDataDir
	}
	return &Manager{
		dataDir:      dataDir,
		contentFiles: []string{},
	}
}

// DiscoverContentFiles scans the data directory for .txt files, skipping
// hidden files. A missing directory is not an error
func (m *Manager) DiscoverContentFiles() error {
	if _, err := os.Stat(m.dataDir); os.IsNotExist(err) {
		log.Printf("Word list directory '%s' does not exist, using embedded words only", m.dataDir)
		return nil
	}

	entries, err := os.ReadDir(m.dataDir)
	if err != nil {
		return fmt.Errorf("failed to read word list directory: %w", err)
	}

	m.contentFiles = []string{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		if strings.HasSuffix(name, ".txt") {
			m.contentFiles = append(m.contentFiles, filepath.Join(m.dataDir, name))
		}
	}

	log.Printf("Discovered %d word list file(s) in %s", len(m.contentFiles), m.dataDir)
	return nil
}

// ContentFiles returns the discovered word list paths
func (m *Manager) ContentFiles() []string {
	return m.contentFiles
}

// LoadWords reads whitespace-separated words from a file, skipping comment lines
func (m *Manager) LoadWords(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list %s: %w", path, err)
	}
	defer f.Close()

	words := parseWords(bufio.NewScanner(f))
	if words == nil {
		return nil, fmt.Errorf("error reading word list %s", path)
	}
	return words, nil
}

// LoadBank builds a bank from the embedded list plus every discovered file
// Unreadable files are logged and skipped
func (m *Manager) LoadBank() *WordBank {
	words := DefaultWords()
	for _, path := range m.contentFiles {
		extra, err := m.LoadWords(path)
		if err != nil {
			log.Printf("Skipping word list: %v", err)
			continue
		}
		words = append(words, extra...)
	}

	bank := NewWordBank(filterLong(words))
	log.Printf("Word bank ready: %d words, lengths %v", bank.Len(), bank.Lengths())
	return bank
}

// DefaultWords returns the embedded word list
func DefaultWords() []string {
	return parseWords(bufio.NewScanner(strings.NewReader(defaultWords)))
}

// DefaultBank returns a bank built from the embedded list only
func DefaultBank() *WordBank {
	return NewWordBank(filterLong(DefaultWords()))
}

func parseWords(sc *bufio.Scanner) []string {
	words := []string{}
	for sc.Scan() {
		line := sc.Text()
		if isCommentLine(line) {
			continue
		}
		words = append(words, strings.Fields(line)...)
	}
	if sc.Err() != nil {
		return nil
	}
	return words
}

func filterLong(words []string) []string {
	out := words[:0]
	for _, w := range words {
		if len(w) <= MaxWordLength {
			out = append(out, w)
		}
	}
	return out
}

// isCommentLine checks if a line starts with any comment prefix
func isCommentLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	for _, prefix := range CommentPrefixes {
		if strings.HasPrefix(trimmed, prefix) {
			return true
		}
	}
	return false
}
