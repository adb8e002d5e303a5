package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"tjs/internal/source"
	"tjs/internal/token"
)

// CheckTokenSpans runs a minimal set of span invariants on a token stream:
// 1) every span lies within the file content
// 2) spans are ordered and do not overlap
// 3) every token except EOF is non-empty and its Text is the covered source
// 4) a stream ending in EOF ends at the end of the file
func CheckTokenSpans(sf *source.File, toks []token.Token) error {
	if sf == nil {
		return fmt.Errorf("nil file")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}

	var prevEnd uint32
	for i, tok := range toks {
		sp := tok.Span
		if sp.End < sp.Start || sp.End > lenContent {
			return fmt.Errorf("token %d (%s): span %v outside content of %d bytes", i, tok.Describe(), sp, lenContent)
		}
		if sp.Start < prevEnd {
			return fmt.Errorf("token %d (%s): span %v overlaps previous end %d", i, tok.Describe(), sp, prevEnd)
		}
		prevEnd = sp.End

		if tok.Kind == token.EOF {
			if i != len(toks)-1 {
				return fmt.Errorf("token %d: EOF is not last", i)
			}
			if sp.Start != lenContent {
				return fmt.Errorf("EOF at %d, want %d", sp.Start, lenContent)
			}
			continue
		}
		if sp.Empty() {
			return fmt.Errorf("token %d (%s): empty span %v", i, tok.Describe(), sp)
		}
		// текст токена должен совпадать с исходником
		if got := string(sf.Content[sp.Start:sp.End]); tok.Text != got {
			return fmt.Errorf("token %d: text %q, source has %q", i, tok.Text, got)
		}
	}
	return nil
}
