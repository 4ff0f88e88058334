package web

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/guildandgrove/website/internal/domain"
	"github.com/guildandgrove/website/internal/web/templates"
)

// ExportResult lists the files written by Export, relative to the output dir.
type ExportResult struct {
	Files []string
}

// Export writes the landing page with default estimator values, the static
// assets, sitemap.xml and robots.txt into dir for hosting under the base path.
func (s *Server) Export(ctx context.Context, dir string) (ExportResult, error) {
	if err := os.MkdirAll(filepath.Join(dir, "static"), 0o755); err != nil {
		return ExportResult{}, fmt.Errorf("create output dir: %w", err)
	}

	staticNames, err := fs.Glob(StaticFS(), "*")
	if err != nil {
		return ExportResult{}, fmt.Errorf("list static assets: %w", err)
	}

	// Each goroutine writes its own file; names are collected after Wait.
	g, gctx := errgroup.WithContext(ctx)

	// 1. Landing page
	g.Go(func() error {
		in := domain.DefaultEstimateInput()
		view := templates.NewEstimatorView(s.opts.BasePath, in, in.Calculate(), s.money)
		var buf bytes.Buffer
		if err := templates.LandingPage(s.pageConfig(), s.site, view).Render(gctx, &buf); err != nil {
			return fmt.Errorf("render index.html: %w", err)
		}
		return writeFile(dir, "index.html", buf.Bytes())
	})

	// 2. Sitemap
	g.Go(func() error {
		body, err := s.meta.Sitemap(s.started)
		if err != nil {
			return err
		}
		return writeFile(dir, "sitemap.xml", body)
	})

	// 3. Robots
	g.Go(func() error {
		return writeFile(dir, "robots.txt", []byte(s.meta.RobotsTxt()))
	})

	// 4. Static assets
	for _, name := range staticNames {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			body, err := fs.ReadFile(StaticFS(), name)
			if err != nil {
				return fmt.Errorf("read asset %s: %w", name, err)
			}
			return writeFile(dir, filepath.Join("static", name), body)
		})
	}

	if err := g.Wait(); err != nil {
		return ExportResult{}, err
	}

	files := []string{"index.html", "sitemap.xml", "robots.txt"}
	for _, name := range staticNames {
		files = append(files, filepath.Join("static", name))
	}
	return ExportResult{Files: files}, nil
}

func writeFile(dir, name string, body []byte) error {
	if err := os.WriteFile(filepath.Join(dir, name), body, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}
