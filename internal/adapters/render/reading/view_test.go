package reading

import (
	"testing"
	"time"

	"github.com/bnema/fibdrv/internal/application"
	"github.com/bnema/fibdrv/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderSingleReading(t *testing.T) {
	output, err := Render([]application.Reading{
		{Index: 100, Digits: "354224848179261915075", Length: 21, Elapsed: 2500 * time.Nanosecond},
	}, RenderOptions{MaxIndex: 500})

	require.NoError(t, err)
	assert.Contains(t, output, "Fibonacci Engine")
	assert.Contains(t, output, "max index: 500")
	assert.Contains(t, output, "F(100)")
	assert.Contains(t, output, "354224848179261915075")
	assert.Contains(t, output, "21 digits, 2.5kns")
	assert.Contains(t, output, "[")
	assert.Contains(t, output, "]")
}

func TestRenderNoReadings(t *testing.T) {
	output, err := Render(nil, RenderOptions{MaxIndex: 500})

	require.NoError(t, err)
	assert.Contains(t, output, "No readings.")
}

func TestRenderElapsedInCompactNanoseconds(t *testing.T) {
	output, err := Render([]application.Reading{
		{Index: 0, Digits: "0", Length: 1, Elapsed: 80 * time.Nanosecond},
	}, RenderOptions{MaxIndex: 500})

	require.NoError(t, err)
	assert.Contains(t, output, "1 digits, 80ns")

	output, err = Render([]application.Reading{
		{Index: 500, Digits: "1", Length: 105, Elapsed: 3_400_000 * time.Nanosecond},
	}, RenderOptions{MaxIndex: 500})

	require.NoError(t, err)
	assert.Contains(t, output, "105 digits, 3.4Mns")
}

func TestRenderBenchSummary(t *testing.T) {
	output, err := RenderBench(domain.BenchReport{
		MaxIndex: 500,
		Samples: []domain.BenchSample{
			{Index: 10, Elapsed: 100 * time.Nanosecond},
			{Index: 11, Elapsed: 300 * time.Nanosecond},
			{Index: 12, Elapsed: 200 * time.Nanosecond},
		},
	})

	require.NoError(t, err)
	assert.Contains(t, output, "samples: 3")
	assert.Contains(t, output, "range: F(10)..F(12) of max 500")
	assert.Contains(t, output, "total: 600ns")
	assert.Contains(t, output, "mean: 200ns")
	assert.Contains(t, output, "slowest: F(11) in 300ns")
}

func TestRenderBenchEmpty(t *testing.T) {
	output, err := RenderBench(domain.BenchReport{})

	require.NoError(t, err)
	assert.Contains(t, output, "No samples.")
}

func TestRenderProgressBarBounds(t *testing.T) {
	s := newStyles()

	assert.Equal(t, "", renderProgressBar(1, 1, 0, s))
	assert.Contains(t, renderProgressBar(500, 500, 4, s), "====")
	assert.Contains(t, renderProgressBar(0, 500, 4, s), "----")
	assert.Contains(t, renderProgressBar(900, 500, 4, s), "====")
	assert.Contains(t, renderProgressBar(3, 0, 4, s), "----")
}
