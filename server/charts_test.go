package server

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"

	"github.com/lppsite/metrics"
)

func cardData(t *testing.T, slug string) (kind string, axis []string, values []float64) {
	t.Helper()
	card, ok := metrics.NewGrid().Lookup(slug)
	require.True(t, ok)

	data, err := chartData(card)
	require.NoError(t, err)
	require.Len(t, data.Series, 1)
	return data.Kind, data.XAxis, data.Series[0].Values
}

func TestChartDataMatchesCards(t *testing.T) {
	kind, axis, values := cardData(t, metrics.SlugViews)
	assert.Equal(t, "line", kind)
	assert.Equal(t, []string{"Día 1", "Día 8", "Día 15", "Día 23", "Día 30"}, axis)
	assert.Equal(t, []float64{0, 25, 70, 110, 140}, values)

	kind, axis, values = cardData(t, metrics.SlugEngagement)
	assert.Equal(t, "donut", kind)
	assert.Equal(t, []string{"Likes", "Comentarios", "Guardados"}, axis)
	assert.Equal(t, []float64{55, 25, 20}, values)

	kind, axis, values = cardData(t, metrics.SlugReplies)
	assert.Equal(t, "bar", kind)
	assert.Equal(t, []string{"Sem 1", "Sem 2", "Sem 3"}, axis)
	assert.Equal(t, []float64{500, 1200, 2800}, values)

	kind, axis, values = cardData(t, metrics.SlugRetention)
	assert.Equal(t, "area", kind)
	assert.Equal(t, []string{"0s", "3s", "10s", "30s"}, axis)
	assert.InDeltaSlice(t, []float64{100, 73.3, 46.7, 20}, values, 1e-9)
}

func TestRetentionThreshold(t *testing.T) {
	card, _ := metrics.NewGrid().Lookup(metrics.SlugRetention)
	data, err := chartData(card)
	require.NoError(t, err)

	require.NotNil(t, data.Threshold)
	assert.Equal(t, "Punto Crítico", data.Threshold.Label)
	assert.InDelta(t, 65, data.Threshold.Value, 1e-9)
}

type staticRenderer struct{}

func (staticRenderer) Render(bool) g.Node { return g.Text("") }

func TestChartDataRejectsUnknownRenderer(t *testing.T) {
	_, err := chartData(metrics.NewCard("otra", "Otra", "", staticRenderer{}))
	assert.Error(t, err)
}

func TestRenderMetricChart(t *testing.T) {
	for _, card := range metrics.NewGrid().Cards() {
		var buf bytes.Buffer
		require.NoError(t, renderMetricChart(&buf, card), card.Slug)
		assert.Contains(t, buf.String(), "<title>", card.Slug)
	}
}
