package server

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExport(t *testing.T) {
	s, logs := newTestServer(t)
	dir := t.TempDir()

	require.NoError(t, s.Export(dir))

	index, err := os.ReadFile(filepath.Join(dir, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(index), `<style id="metrics-motion">`)
	assert.Empty(t, activeCards(t, string(index)))

	for _, rel := range []string{
		"metricas/visualizaciones/index.html",
		"metricas/engagement/index.html",
		"metricas/replicas/index.html",
		"metricas/retencion/index.html",
		"static/css/site.css",
		"static/js/site.js",
	} {
		_, err := os.Stat(filepath.Join(dir, filepath.FromSlash(rel)))
		assert.NoError(t, err, rel)
	}
	assert.Equal(t, 1, logs.FilterMessage("site exported").Len())
}
