package console

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
)

// DefaultHistoryLimit caps the persisted history
const DefaultHistoryLimit = 1000

// History persists accepted console lines at a storage URL
type History struct {
	URL   string
	Limit int
	fs    afs.Service
	lines []string
	mu    sync.Mutex
}

// Load reads the persisted history. A missing history is empty.
func (h *History) Load(ctx context.Context) ([]string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	exists, err := h.fs.Exists(ctx, h.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to check history %v: %w", h.URL, err)
	}
	if !exists {
		return nil, nil
	}
	data, err := h.fs.DownloadWithURL(ctx, h.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read history %v: %w", h.URL, err)
	}
	h.lines = nil
	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) != "" {
			h.lines = append(h.lines, line)
		}
	}
	h.lines = h.trim(h.lines)
	return append([]string{}, h.lines...), nil
}

// Append records a block; multi line blocks are stored one line per entry
func (h *History) Append(block string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, line := range strings.Split(block, "\n") {
		if strings.TrimSpace(line) != "" {
			h.lines = append(h.lines, line)
		}
	}
	h.lines = h.trim(h.lines)
}

// Lines returns the current history
func (h *History) Lines() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string{}, h.lines...)
}

// Save writes the history, keeping the most recent Limit lines
func (h *History) Save(ctx context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	buffer := bytes.Buffer{}
	for _, line := range h.lines {
		buffer.WriteString(line)
		buffer.WriteByte('\n')
	}
	if err := h.fs.Upload(ctx, h.URL, file.DefaultFileOsMode, &buffer); err != nil {
		return fmt.Errorf("failed to save history %v: %w", h.URL, err)
	}
	return nil
}

func (h *History) trim(lines []string) []string {
	if h.Limit > 0 && len(lines) > h.Limit {
		return lines[len(lines)-h.Limit:]
	}
	return lines
}

// NewHistory creates a history stored at URL
func NewHistory(URL string, limit int) *History {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &History{URL: URL, Limit: limit, fs: afs.New()}
}
