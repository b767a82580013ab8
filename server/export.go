package server

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/lppsite/components"
	"github.com/lppsite/metrics"
	"github.com/lppsite/static"
)

// Export writes the site as static files under dir: index.html, one
// metricas/<slug>/index.html per card, and the embedded assets under static/.
func (s *Server) Export(dir string) error {
	var page bytes.Buffer
	if err := components.Landing(s.site, metrics.NewGrid(), s.now().Year()).Render(&page); err != nil {
		return fmt.Errorf("render landing: %w", err)
	}
	if err := writeFile(filepath.Join(dir, "index.html"), page.Bytes()); err != nil {
		return err
	}

	for _, card := range metrics.NewGrid().Cards() {
		var buf bytes.Buffer
		if err := renderMetricChart(&buf, card); err != nil {
			return fmt.Errorf("render %s: %w", card.Slug, err)
		}
		if err := writeFile(filepath.Join(dir, "metricas", card.Slug, "index.html"), buf.Bytes()); err != nil {
			return err
		}
	}

	err := fs.WalkDir(static.FS, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := fs.ReadFile(static.FS, path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		return writeFile(filepath.Join(dir, "static", filepath.FromSlash(path)), data)
	})
	if err != nil {
		return fmt.Errorf("copy static assets: %w", err)
	}

	s.log.Info("site exported", zap.String("dir", dir))
	return nil
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
