// Package corpora provides a mechanism for managing test corpora: a
// directory of input files paired with golden output files, driven as a
// table where the "table" is the file system.
package corpora

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pmezard/go-difflib/difflib"
)

// Corpus describes a test data corpus.
type Corpus struct {
	// The root of the test data directory, relative to the file that calls
	// [Corpus.Run].
	Root string

	// An environment variable to check for refresh-mode.
	Refresh string

	// The file extension (without a dot) of files defining a test case,
	// e.g. "json5".
	Extension string

	// Possible outputs of the test, found at Outputs[i].Extension appended
	// to the input path. A missing output file is treated as an expected
	// empty string.
	Outputs []Output

	// Test runs one test case, returning a slice of strings aligned with
	// Outputs.
	Test func(t *testing.T, path, text string) []string
}

// Run executes every test case found under c.Root.
func (c Corpus) Run(t *testing.T) {
	testDir := callerDir(0)
	root := filepath.Join(testDir, c.Root)
	t.Logf("corpora: searching for files in %q", root)

	var tests []string
	err := filepath.Walk(root, func(p string, fi fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !fi.IsDir() && strings.TrimPrefix(path.Ext(p), ".") == c.Extension {
			tests = append(tests, p)
		}
		return nil
	})
	if err != nil {
		t.Fatal("corpora: error while stating testdata FS:", err)
	}

	var refresh string
	if c.Refresh != "" {
		refresh = os.Getenv(c.Refresh)
		if refresh != "" && !doublestar.ValidatePattern(refresh) {
			t.Fatalf("corpora: invalid glob in %s: %q", c.Refresh, refresh)
		}
	}
	if refresh != "" {
		t.Logf("corpora: refreshing test data because %s=%s", c.Refresh, refresh)
	}

	for _, testPath := range tests {
		name, _ := filepath.Rel(testDir, testPath)
		t.Run(name, func(t *testing.T) {
			bytes, err := os.ReadFile(testPath)
			if err != nil {
				t.Fatalf("corpora: error while loading input file %q: %v", testPath, err)
			}

			results := c.Test(t, name, string(bytes))

			doRefresh, _ := doublestar.Match(refresh, name)
			for i, output := range c.Outputs {
				outPath := fmt.Sprint(testPath, ".", output.Extension)

				if !doRefresh {
					want, err := os.ReadFile(outPath)
					if err != nil && !errors.Is(err, os.ErrNotExist) {
						t.Logf("corpora: error while loading output file %q: %v", outPath, err)
						t.Fail()
						continue
					}

					cmp := output.Compare
					if cmp == nil {
						cmp = defaultCompare
					}
					if diff := cmp(results[i], string(want)); diff != "" {
						t.Logf("output mismatch for %q:\n%s", outPath, diff)
						t.Fail()
					}
					continue
				}

				if results[i] == "" {
					if err := os.Remove(outPath); err != nil && !errors.Is(err, os.ErrNotExist) {
						t.Logf("corpora: error while deleting output file %q: %v", outPath, err)
						t.Fail()
					}
				} else if err := os.WriteFile(outPath, []byte(results[i]), 0o644); err != nil {
					t.Logf("corpora: error while writing output file %q: %v", outPath, err)
					t.Fail()
				}
			}
		})
	}
}

// Output represents one output of a test case.
type Output struct {
	// The extension appended (after a dot) to the input file's path, e.g.
	// "tokens" pairs object.json5 with object.json5.tokens.
	Extension string

	// The comparison function for this output. nil compares byte-for-byte.
	Compare Compare
}

// Compare compares got against want, returning "" on a match or a
// human-readable diff otherwise.
type Compare func(got, want string) string

func defaultCompare(got, want string) string {
	if got == want {
		return ""
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	if err != nil {
		return err.Error()
	}
	return diff
}

func callerDir(skip int) string {
	_, file, _, ok := runtime.Caller(skip + 2)
	if !ok {
		panic("corpora: could not determine test file's directory")
	}
	return filepath.Dir(file)
}
