package scan

import (
	"bufio"
	"context"
	"os"
	"strings"
	"sync"
)

// snippetLimit bounds the text reported for a document-mode match.
const snippetLimit = 200

// deduper tracks which matches have been seen, across all workers, so
// unique mode can suppress repeats. Keys are the file path in document
// mode and file + trimmed line content in line mode.
type deduper struct {
	mu   sync.Mutex
	seen map[string]bool
}

func newDeduper() *deduper {
	return &deduper{seen: make(map[string]bool)}
}

// firstSighting records the key and reports whether this was its first
// occurrence.
func (d *deduper) firstSighting(key string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.seen[key] {
		return false
	}
	d.seen[key] = true
	return true
}

// scanFile evaluates the formula against one file and returns its
// matches. Read failures are returned to the caller; they are reported
// on the result stream, never masked as "no match".
func (s *Scanner) scanFile(ctx context.Context, path string, params Params, dedup *deduper) ([]Match, error) {
	if params.Mode == ModeDocument {
		return s.scanDocument(path, params, dedup)
	}
	return s.scanLines(ctx, path, params, dedup)
}

// scanDocument evaluates the whole file as one piece of content.
func (s *Scanner) scanDocument(path string, params Params, dedup *deduper) ([]Match, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	content := string(data)
	if !params.Formula.Evaluate(params.Bindings, content) {
		return nil, nil
	}

	unique := dedup.firstSighting(path)
	if params.Unique && !unique {
		return nil, nil
	}
	return []Match{{
		File:   path,
		Text:   snippet(content),
		Unique: unique,
	}}, nil
}

// scanLines evaluates the formula once per line, honoring cancellation
// between lines so a huge file cannot stall shutdown.
func (s *Scanner) scanLines(ctx context.Context, path string, params Params, dedup *deduper) ([]Match, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var matches []Match
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		if lineNum%1024 == 0 {
			select {
			case <-ctx.Done():
				return matches, ctx.Err()
			default:
			}
		}

		line := scanner.Text()
		if !params.Formula.Evaluate(params.Bindings, line) {
			continue
		}

		trimmed := strings.TrimSpace(line)
		unique := dedup.firstSighting(path + ":" + trimmed)
		if params.Unique && !unique {
			continue
		}
		matches = append(matches, Match{
			File:   path,
			Line:   lineNum,
			Text:   trimmed,
			Unique: unique,
		})
	}
	if err := scanner.Err(); err != nil {
		return matches, err
	}
	return matches, nil
}

// snippet truncates document-mode match text to a displayable prefix.
func snippet(content string) string {
	if len(content) <= snippetLimit {
		return content
	}
	return content[:snippetLimit] + "..."
}
