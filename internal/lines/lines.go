package lines

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/vyskocilm/extally/internal/model"
)

// paths can get long, but a line above this limit is garbage, not a path
const maxLineSize = 1024 * 1024

// Lines reads r line by line and yields every non-blank line with the
// surrounding whitespace trimmed. Blank and whitespace only lines are counted
// and skipped. A line which is not valid UTF-8 or a failed read yields an
// error and ends the iteration, so a caller never sees input past the first
// failure. Canceling the context ends the iteration without an error.
func Lines(ctx context.Context, counter model.Stats, r io.Reader) iter.Seq2[string, error] {
	if r == nil {
		slog.WarnContext(ctx, "reader is nil: not iterating")
		return nil
	}

	return func(yield func(string, error) bool) {
		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)
		var lineno int
		for scanner.Scan() {
			if ctx.Err() != nil {
				return
			}
			lineno++
			counter.IncLines()
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				counter.IncBlankLines()
				continue
			}
			if !utf8.ValidString(line) {
				counter.IncErrLines()
				yield("", fmt.Errorf("line %d: not a valid UTF-8", lineno))
				return
			}
			if !yield(line, nil) {
				return
			}
		}
		if err := scanner.Err(); err != nil {
			counter.IncErrLines()
			yield("", fmt.Errorf("reading line %d: %w", lineno+1, err))
		}
	}
}
