package token_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/avdan-os/json5/internal/corpora"
	"github.com/avdan-os/json5/lex"
	"github.com/avdan-os/json5/source"
	"github.com/avdan-os/json5/token"
)

// TestDispatchCorpus lexes every .json5 file under testdata/ and compares
// the resulting element dump against a golden .tokens file. Refresh with
// JSON5_REFRESH=<glob>.
func TestDispatchCorpus(t *testing.T) {
	(corpora.Corpus{
		Root:      "testdata",
		Refresh:   "JSON5_REFRESH",
		Extension: "json5",
		Outputs: []corpora.Output{
			{Extension: "tokens"},
		},
		Test: func(t *testing.T, path, text string) []string {
			file := source.NewFile(path, text)
			elements, err := token.Lex(lex.NewStream(file))
			if err != nil {
				return []string{fmt.Sprintf("error: %s", err)}
			}
			return []string{dumpElements(elements)}
		},
	}).Run(t)
}

func dumpElements(elements []token.Element) string {
	var b strings.Builder
	for _, e := range elements {
		fmt.Fprintf(&b, "%s %q\n", e.Kind(), e.Span().Text())
	}
	return b.String()
}
