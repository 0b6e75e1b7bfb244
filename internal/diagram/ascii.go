// Package diagram renders evaluated fields as terminal graphs and images.
package diagram

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/guptarohit/asciigraph"
)

// DrawFieldProfile draws values as a line graph for the terminal. Non-finite
// values leave gaps.
func DrawFieldProfile(values []float64, caption string, width, height int) string {
	series := make([]float64, len(values))
	finite := 0
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			series[i] = math.NaN()
			continue
		}
		series[i] = v
		finite++
	}
	if finite == 0 {
		return fmt.Sprintf("%s: no finite values to plot\n", caption)
	}

	opts := []asciigraph.Option{asciigraph.Caption(caption), asciigraph.Precision(4)}
	if width > 0 {
		opts = append(opts, asciigraph.Width(width))
	}
	if height > 0 {
		opts = append(opts, asciigraph.Height(height))
	}
	return asciigraph.Plot(series, opts...) + "\n"
}

// DrawSummaryBox draws a summary box with key results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := utf8.RuneCountInString(title)
	for _, line := range lines {
		if n := utf8.RuneCountInString(line); n > maxLen {
			maxLen = n
		}
	}
	inner := maxLen + 4

	sb.WriteString("  ╔" + strings.Repeat("═", inner) + "╗\n")
	sb.WriteString("  ║  " + pad(title, maxLen) + "  ║\n")
	sb.WriteString("  ╠" + strings.Repeat("═", inner) + "╣\n")
	for _, line := range lines {
		sb.WriteString("  ║  " + pad(line, maxLen) + "  ║\n")
	}
	sb.WriteString("  ╚" + strings.Repeat("═", inner) + "╝\n")

	return sb.String()
}

// pad right-pads s with spaces to n runes
func pad(s string, n int) string {
	if k := n - utf8.RuneCountInString(s); k > 0 {
		return s + strings.Repeat(" ", k)
	}
	return s
}
