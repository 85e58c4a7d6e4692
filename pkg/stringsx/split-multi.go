package stringsx

import "strings"

// SplitMulti slices s into all substrings separated by any of seps.  When two
// separators match at the same position the one listed first wins.
func SplitMulti(s string, seps []string) []string {
	out := make([]string, 0, 8)

	var i int
	for j := 0; j < len(s); j++ {
		for _, sep := range seps {
			if !strings.HasPrefix(s[j:], sep) {
				continue
			}
			out = append(out, s[i:j])
			j += len(sep) - 1
			i = j + 1
			break
		}
	}
	if i < len(s) {
		out = append(out, s[i:])
	}

	return out
}

// FieldsMulti is SplitMulti with the empty substrings left out, so runs of
// separators count as one.
func FieldsMulti(s string, seps []string) []string {
	xs := SplitMulti(s, seps)
	out := xs[:0]
	for _, x := range xs {
		if x != "" {
			out = append(out, x)
		}
	}
	return out
}
