package layout

import "strings"

// Wrap breaks text into lines no wider than maxWidth, breaking only at single
// spaces. A line that holds one word is never split, even when that word alone
// is wider than maxWidth. The empty string yields a single empty line.
//
// strings.Join(Wrap(s, ...), " ") == s for every s.
func Wrap(text string, maxWidth float64, measure func(string) float64) []string {
	words := strings.Split(text, " ")

	var lines []string
	var line strings.Builder
	n := 0 // words on the current line
	for _, w := range words {
		if n == 0 {
			line.WriteString(w)
			n = 1
			continue
		}
		candidate := line.String() + " " + w
		if measure(candidate) > maxWidth {
			lines = append(lines, line.String())
			line.Reset()
			line.WriteString(w)
			n = 1
			continue
		}
		line.Reset()
		line.WriteString(candidate)
		n++
	}
	return append(lines, line.String())
}
