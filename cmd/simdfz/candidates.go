package main

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"sync"

	"github.com/charlievieth/fastwalk"
)

// readStdinCandidates reads newline-delimited candidates from r, matching
// fzf's default input mode.
func readStdinCandidates(r io.Reader) ([]string, error) {
	var candidates []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		candidates = append(candidates, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read candidates from stdin: %w", err)
	}
	return candidates, nil
}

// walkCandidates enumerates files under root concurrently with fastwalk,
// the same library fzf's own file-listing mode uses, and returns them as
// slash-separated relative paths.
func walkCandidates(root string) ([]string, error) {
	var (
		mu         sync.Mutex
		candidates []string
	)
	conf := &fastwalk.Config{
		Follow: false,
	}
	err := fastwalk.Walk(conf, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// One unreadable entry shouldn't abort the whole walk (spec §7).
			stderrLog.Warnf("skip %s: %v", path, err)
			return nil
		}
		if d.IsDir() {
			return nil
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			rel = path
		}
		// fastwalk invokes this callback from several goroutines at once.
		mu.Lock()
		candidates = append(candidates, filepath.ToSlash(rel))
		mu.Unlock()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}
	return candidates, nil
}
