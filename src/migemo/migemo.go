// Package migemo expands an ASCII (typically romaji) query into the set of
// literal Japanese spellings a user might have meant, using
// github.com/koron/gomigemo — the dictionary-driven migemo engine this
// repository's teacher (the "fzf-migemo" fork) carries as a dependency for
// exactly this purpose, backed in turn by github.com/koron/gelatin (the
// compiled dictionary reader) and github.com/koron/go-skkdict (the SKK
// source dictionary format gelatin compiles from).
//
// The core scorer (src/simdscore) is ASCII-only, so expansion happens here,
// at the candidate-pipeline layer: each expansion becomes a separate needle
// scored independently, and the best score per candidate wins (spec §4.6).
package migemo

import (
	"fmt"

	gomigemo "github.com/koron/gomigemo/migemo"
)

// Expander turns a romaji query into literal match candidates.
type Expander struct {
	engine *gomigemo.Migemo
}

// NewExpander loads the compiled migemo dictionary at dictPath. A typical
// install places this under /usr/share/migemo/utf-8/migemo-dict.
func NewExpander(dictPath string) (*Expander, error) {
	engine, err := gomigemo.NewMigemo(dictPath)
	if err != nil {
		return nil, fmt.Errorf("migemo: load dictionary %q: %w", dictPath, err)
	}
	return &Expander{engine: engine}, nil
}

// Expand returns the literal spellings query could refer to, in addition to
// query itself. The result always contains at least query.
func (e *Expander) Expand(query string) []string {
	if e == nil || e.engine == nil || query == "" {
		return []string{query}
	}
	words, err := e.engine.Query(query)
	if err != nil || len(words) == 0 {
		return []string{query}
	}
	out := make([]string, 0, len(words)+1)
	out = append(out, query)
	seen := map[string]bool{query: true}
	for _, w := range words {
		if !seen[w] {
			seen[w] = true
			out = append(out, w)
		}
	}
	return out
}
