// ABOUTME: JSONL log of profile check outcomes
// ABOUTME: Appends one entry per recorded check and queries them newest first
package history

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"
)

// Entry is one recorded check outcome
type Entry struct {
	Timestamp time.Time `json:"timestamp"`
	Tool      string    `json:"tool"`
	Profile   string    `json:"profile"`
	Outcome   string    `json:"outcome"`
	Message   string    `json:"message,omitempty"`
}

// Filters narrows a Query
type Filters struct {
	Profile string
	Outcome string
	Since   time.Time
	Limit   int
}

// Log appends entries to a JSONL (JSON Lines) file
type Log struct {
	path string
	mu   sync.Mutex
}

// Open creates a log at path, ensuring the parent directory exists
func Open(path string) (*Log, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	return &Log{path: path}, nil
}

// Path returns the log file location
func (l *Log) Path() string {
	return l.path
}

// Append writes entry as a single line. A zero timestamp is set to now.
func (l *Log) Append(entry *Entry) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return err
	}
	defer f.Close()

	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	_, err = f.Write(append(data, '\n'))
	return err
}

// Query reads entries matching filters, most recent first
func (l *Log) Query(filters Filters) ([]*Entry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.Open(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []*Entry{}, nil
		}
		return nil, err
	}
	defer f.Close()

	// Lines are read whole so an oversized entry is skipped rather than ending the scan
	entries := []*Entry{}
	reader := bufio.NewReader(f)
	for {
		line, readErr := reader.ReadBytes('\n')
		if len(bytes.TrimSpace(line)) > 0 {
			var entry Entry
			if err := json.Unmarshal(line, &entry); err == nil && matches(&entry, filters) {
				entries = append(entries, &entry)
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return nil, readErr
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp.After(entries[j].Timestamp)
	})

	if filters.Limit > 0 && len(entries) > filters.Limit {
		entries = entries[:filters.Limit]
	}

	return entries, nil
}

func matches(entry *Entry, filters Filters) bool {
	if filters.Profile != "" && entry.Profile != filters.Profile {
		return false
	}
	if filters.Outcome != "" && entry.Outcome != filters.Outcome {
		return false
	}
	if !filters.Since.IsZero() && entry.Timestamp.Before(filters.Since) {
		return false
	}
	return true
}
