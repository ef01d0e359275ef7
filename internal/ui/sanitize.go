package ui

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	oscRe = regexp.MustCompile(`\x1b\][^\x07\x1b]*(\x07|\x1b\\)`)
	csiRe = regexp.MustCompile(`\x1b\[[0-9;?]*[A-Za-z]`)
)

// CleanOutput prepares captured child output for a one-off message. Terminal
// control sequences are removed, including colors, since the message is
// styled as a whole. Cursor-forward sequences become spaces so column layouts
// stay readable. Line endings are normalized and blank lines dropped.
func CleanOutput(in string) string {
	out := strings.ReplaceAll(in, "\r\n", "\n")
	out = strings.ReplaceAll(out, "\r", "\n")
	out = oscRe.ReplaceAllString(out, "")
	out = csiRe.ReplaceAllStringFunc(out, func(s string) string {
		if s[len(s)-1] == 'C' {
			return strings.Repeat(" ", csiParam(s, 1))
		}
		return ""
	})

	lines := strings.Split(out, "\n")
	kept := lines[:0]
	for _, l := range lines {
		l = strings.TrimRight(l, " \t")
		if l != "" {
			kept = append(kept, l)
		}
	}
	return strings.Join(kept, "\n")
}

// csiParam extracts the first numeric parameter of a CSI sequence, or def.
func csiParam(s string, def int) int {
	body := strings.TrimLeft(s[2:len(s)-1], "?")
	if idx := strings.IndexByte(body, ';'); idx >= 0 {
		body = body[:idx]
	}
	if n, err := strconv.Atoi(body); err == nil && n > 0 {
		return n
	}
	return def
}
