package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tracestat/internal/stats"
)

func TestRenderFixedWidthLines(t *testing.T) {
	s := stats.Summary{
		SampleSize:      2,
		MinCPU:          10,
		MaxCPU:          20,
		MinDuration:     100,
		MaxDuration:     300,
		AverageCPU:      15,
		AverageDuration: 200,
		AverageReads:    10,
		AverageWrites:   5,
	}

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, s))

	want := "" +
		"         Sample Size:                   2\n" +
		"             Min CPU:                  10\n" +
		"             Max CPU:                  20\n" +
		"         Average CPU:                  15\n" +
		"        Min Duration:                 100\n" +
		"        Max Duration:                 300\n" +
		"    Average Duration:                 200\n" +
		"       Average Reads:                  10\n" +
		"      Average Writes:                   5\n"
	assert.Equal(t, want, buf.String())
}

func TestRenderFractionalAverages(t *testing.T) {
	s := stats.Summary{
		SampleSize:      3,
		MinCPU:          1,
		MaxCPU:          2,
		AverageCPU:      1.5,
		AverageDuration: 0.25,
	}

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, s))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 9)
	for _, l := range lines {
		assert.Len(t, l, 41, "label(20) + colon + value(20): %q", l)
	}
	assert.Contains(t, lines[3], "1.5")
	assert.Contains(t, lines[6], "0.25")
}
