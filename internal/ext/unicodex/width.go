// Package unicodex provides small Unicode-adjacent helpers used by package
// source for rendering locations, grounded on
// bufbuild-protocompile/internal/ext/unicodex and
// bufbuild-protocompile/experimental/report/width.go.
package unicodex

import "github.com/rivo/uniseg"

// Width returns the rendered terminal column width of s, accounting for
// wide runes (CJK, emoji) and combining marks via grapheme segmentation.
//
// Tabs are counted as a single column; callers that need tabstop-aware
// rendering should expand tabs before calling Width.
func Width(s string) int {
	width := 0
	state := -1
	for len(s) > 0 {
		var cluster string
		var w int
		cluster, s, w, state = uniseg.FirstGraphemeClusterInString(s, state)
		if cluster == "\t" {
			w = 1
		}
		width += w
	}
	return width
}
