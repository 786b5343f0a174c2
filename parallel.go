package kofi

import (
	"context"
	"iter"
	"strings"
	"sync"
)

// splitLines yields (lineText, lineNumber) pairs in file order. A
// trailing newline yields one final empty line, matching the "document
// size == 1 + number of LF" invariant.
func splitLines(text string) iter.Seq2[string, int] {
	return func(yield func(string, int) bool) {
		lineNo := 1
		start := 0
		for i := 0; i < len(text); i++ {
			if text[i] == '\n' {
				if !yield(text[start:i], lineNo) {
					return
				}
				lineNo++
				start = i + 1
			}
		}
		yield(text[start:], lineNo)
	}
}

// lineTask is one unit of work submitted to the worker pool: a line's
// text and its 1-based line number.
type lineTask struct {
	text string
	line int
}

type lineResult struct {
	element Element
	err     error
}

// ParseDocument parses text sequentially into a new Document, returning
// the first parse error encountered (by line number).
func ParseDocument(text string) (*Document, error) {
	doc := NewDocument()
	for line, lineNo := range splitLines(text) {
		elem, err := parseLine(line, lineNo)
		if err != nil {
			return nil, err
		}
		doc.elements = append(doc.elements, elem)
	}
	return doc, nil
}

// ParseDocumentConcurrent parses text using a bounded worker pool, one
// worker per line task, preserving file order in the result. Parsing of
// a single line never consults shared state, so this is observably
// identical to ParseDocument; workers may run in any order. On the first
// worker error, outstanding tasks are cancelled via ctx and the function
// returns that error. If multiple lines fail, the error reported is
// deterministic: the lowest line number among the failures.
func ParseDocumentConcurrent(ctx context.Context, text string, workers int) (*Document, error) {
	if workers < 1 {
		workers = 1
	}

	lineCount := strings.Count(text, "\n") + 1
	results := make([]lineResult, lineCount)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	tasks := make(chan lineTask)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for t := range tasks {
				elem, err := parseLine(t.text, t.line)
				results[t.line-1] = lineResult{element: elem, err: err}
				if err != nil {
					cancel()
				}
			}
		}()
	}

	go func() {
		defer close(tasks)
		for line, lineNo := range splitLines(text) {
			select {
			case tasks <- lineTask{text: line, line: lineNo}:
			case <-ctx.Done():
				return
			}
		}
	}()

	wg.Wait()

	for _, r := range results {
		if r.err != nil {
			return nil, r.err
		}
	}

	doc := NewDocument()
	doc.elements = make([]Element, lineCount)
	for i, r := range results {
		doc.elements[i] = r.element
	}
	return doc, nil
}
