package diff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Lines renders a unified line diff of two strings, prefixing kept
// lines with two spaces, removed lines with "- ", and added lines
// with "+ ".
func Lines(from, to string) string {
	dmp := diffpatch.New()
	f, t, arr := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(f, t, false), arr)
	var b strings.Builder
	for _, df := range diffs {
		var prefix string
		switch df.Type {
		case diffpatch.DiffDelete:
			prefix = "- "
		case diffpatch.DiffInsert:
			prefix = "+ "
		default:
			prefix = "  "
		}
		for _, ln := range splitLines(df.Text) {
			b.WriteString(prefix)
			b.WriteString(ln)
			b.WriteByte('\n')
		}
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	return strings.Split(s, "\n")
}
