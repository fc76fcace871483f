package report

import (
	"fmt"
	"io"
	"strconv"

	"tracestat/internal/stats"
)

// Each summary line: label right-aligned to 20, colon, value right-aligned to 20.
const lineFormat = "%20s:%20s\n"

// Render writes the nine summary lines in fixed order.
func Render(w io.Writer, s stats.Summary) error {
	lines := []struct {
		label string
		value string
	}{
		{"Sample Size", strconv.Itoa(s.SampleSize)},
		{"Min CPU", strconv.Itoa(s.MinCPU)},
		{"Max CPU", strconv.Itoa(s.MaxCPU)},
		{"Average CPU", formatFloat(s.AverageCPU)},
		{"Min Duration", strconv.Itoa(s.MinDuration)},
		{"Max Duration", strconv.Itoa(s.MaxDuration)},
		{"Average Duration", formatFloat(s.AverageDuration)},
		{"Average Reads", formatFloat(s.AverageReads)},
		{"Average Writes", formatFloat(s.AverageWrites)},
	}
	for _, l := range lines {
		if _, err := fmt.Fprintf(w, lineFormat, l.label, l.value); err != nil {
			return fmt.Errorf("write summary: %w", err)
		}
	}
	return nil
}

// formatFloat uses the shortest general rendering, so whole-number
// averages print without a decimal point.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
