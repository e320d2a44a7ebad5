package source

import (
	"bufio"
	"context"
	"fmt"
	"os"
)

// maxLineSize is the longest line Lines can read.
const maxLineSize = 4 << 20

// Lines pages over the lines of a text file. The file is reopened on every
// fetch so that appends made while the list is open show up.
type Lines struct {
	path string
}

// NewLines returns a source reading from the file at path.
func NewLines(path string) (*Lines, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open lines source: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("lines source %s is a directory", path)
	}
	return &Lines{path: path}, nil
}

// Fetch implements Source.
func (l *Lines) Fetch(ctx context.Context, start, limit int) (Page, error) {
	if err := checkRange(start, limit); err != nil {
		return Page{}, err
	}

	f, err := os.Open(l.path)
	if err != nil {
		return Page{}, fmt.Errorf("failed to open %s: %w", l.path, err)
	}
	defer f.Close()

	rows := make([]string, 0, limit)
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)
	for i := 0; scanner.Scan(); i++ {
		if i < start {
			continue
		}
		if len(rows) == limit {
			break
		}
		if err := ctx.Err(); err != nil {
			return Page{}, err
		}
		rows = append(rows, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return Page{}, fmt.Errorf("failed to read %s: %w", l.path, err)
	}
	return shortPage(rows, limit), nil
}
