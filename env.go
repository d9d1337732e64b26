package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/llehouerou/clubview/internal/config"
	"github.com/llehouerou/clubview/internal/content"
	"github.com/llehouerou/clubview/internal/errmsg"
	"github.com/llehouerou/clubview/internal/logger"
)

func loadConfig(flags *rootFlags) (*config.Config, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if flags.contentPath != "" {
		cfg.ContentPath = flags.contentPath
	}
	return cfg, nil
}

// loadContent reads and validates the site content document.
func loadContent(cfg *config.Config) (*content.SiteContent, error) {
	c, err := content.Load(cfg.ContentPath)
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return nil, errors.New(errmsg.FormatWith(errmsg.OpContentLoad, cfg.ContentPath, err) +
				"\n\nSet content_path in config.toml or pass --content.")
		}
		return nil, errors.New(errmsg.FormatWith(errmsg.OpContentLoad, cfg.ContentPath, err))
	}
	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}

// cliLogger logs human-readable lines to the command's stderr.
func cliLogger(cmd *cobra.Command, cfg *config.Config, verbose bool) (*logger.Logger, error) {
	return logger.New(logger.Options{
		Level:         logLevel(cfg, verbose),
		HumanReadable: true,
		Writer:        cmd.ErrOrStderr(),
	})
}

func logLevel(cfg *config.Config, verbose bool) string {
	if verbose {
		return "debug"
	}
	return cfg.Log.Level
}
