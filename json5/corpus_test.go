package json5_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/avdan-os/json5/internal/corpora"
	"github.com/avdan-os/json5/json5"
	"github.com/avdan-os/json5/source"
)

// testCase is the shape of each YAML file under testdata/cases: the
// JSON5 source to parse, plus either the expected decoded value or a
// flag that parsing should fail.
//
// Grounded on the "source text plus expectations in one YAML fixture"
// pattern used for table-style corpus tests across the example pack
// (e.g. an ast printer's edit-script fixtures), adapted here to JSON5
// parsing outcomes.
type testCase struct {
	Input   string `yaml:"input"`
	WantErr bool   `yaml:"wantErr"`
	Expect  any    `yaml:"expect"`
}

// TestParseCorpus parses every fixture under testdata/cases and checks
// the result against its expectation.
func TestParseCorpus(t *testing.T) {
	(corpora.Corpus{
		Root:      "testdata/cases",
		Refresh:   "JSON5_REFRESH",
		Extension: "yaml",
		Test: func(t *testing.T, path, text string) []string {
			var tc testCase
			require.NoError(t, yaml.Unmarshal([]byte(text), &tc), "invalid fixture YAML")

			file := source.NewFile(path, tc.Input)
			v, err := json5.Parse(file)

			if tc.WantErr {
				require.Error(t, err, "expected a parse error")
				return nil
			}
			require.NoError(t, err)

			got := json5.Native(v)
			want := normalizeYAML(tc.Expect)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("decoded value mismatch (-want +got):\n%s", diff)
			}
			return nil
		},
	}).Run(t)
}

// normalizeYAML reshapes a value decoded by gopkg.in/yaml.v3 into an
// interface{} so that it compares equal to [json5.Native]'s output:
// YAML decodes integral scalars to int, but every JSON5 number decodes
// to float64.
func normalizeYAML(v any) any {
	switch v := v.(type) {
	case int:
		return float64(v)
	case map[string]any:
		m := make(map[string]any, len(v))
		for k, val := range v {
			m[k] = normalizeYAML(val)
		}
		return m
	case []any:
		a := make([]any, len(v))
		for i, val := range v {
			a[i] = normalizeYAML(val)
		}
		return a
	default:
		return v
	}
}
