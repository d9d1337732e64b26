package main

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/llehouerou/clubview/internal/app"
	"github.com/llehouerou/clubview/internal/errmsg"
	"github.com/llehouerou/clubview/internal/gallery"
	"github.com/llehouerou/clubview/internal/icons"
	"github.com/llehouerou/clubview/internal/imagecache"
	"github.com/llehouerou/clubview/internal/imagefetch"
	"github.com/llehouerou/clubview/internal/imageref"
	"github.com/llehouerou/clubview/internal/logger"
	"github.com/llehouerou/clubview/internal/ui/galleryview"
	"github.com/llehouerou/clubview/internal/ui/imageview"
	"github.com/llehouerou/clubview/internal/ui/pages"
)

// runBrowse starts the TUI. The terminal belongs to bubbletea, so logs go
// to the log file.
func runBrowse(cmd *cobra.Command, flags *rootFlags, page string) error {
	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}

	logFile, err := logger.OpenFile(cfg.Log.File)
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpLogOpen, err))
	}
	defer logFile.Close()

	log, err := logger.New(logger.Options{Level: logLevel(cfg, flags.verbose), Writer: logFile})
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpInitialize, err))
	}

	c, err := loadContent(cfg)
	if err != nil {
		log.Error(err, "content rejected")
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	cache, err := imagecache.Open(ctx, "", cfg.CacheTTL())
	if err != nil {
		// Photos still load, only without the disk cache.
		log.Error(err, errmsg.Format(errmsg.OpCacheOpen, err))
	}
	defer cache.Close()

	fetcher, err := imagefetch.New(imagefetch.Options{
		Timeout:       cfg.FetchTimeout(),
		MemoryEntries: cfg.Images.MemoryEntries,
		Store:         cache,
		Logger:        log.With("component", "imagefetch"),
	})
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpInitialize, err))
	}

	icons.Init(cfg.UI.Icons)
	renderer := imageview.NewRenderer(imageview.Detect(cfg.Images.Protocol))
	log.WithFields(map[string]any{
		"content":  cfg.ContentPath,
		"protocol": renderer.ProtocolName(),
	}).Info("starting")

	model := app.New(app.Options{
		Site: pages.Site{
			Content: c,
			BaseURL: cfg.Site.URL,
			Lock:    gallery.NewScrollLock(),
		},
		SiteName:     cfg.Site.Name,
		PreviewCount: cfg.Gallery.PreviewCount,
		Resolver:     imageref.New(cfg.Images.Host, cfg.ImageParams()),
		Fetcher:      galleryview.Fetcher(fetcher),
		Renderer:     renderer,
		Logger:       log,
		Context:      ctx,
		Start:        page,
	})

	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
