package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/llehouerou/clubview/internal/content"
)

func newValidateCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the site content document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			log, err := cliLogger(cmd, cfg, flags.verbose)
			if err != nil {
				return err
			}
			log.With("path", cfg.ContentPath).Debug("validating content")

			c, err := loadContent(cfg)
			var verr *content.ValidationError
			if errors.As(err, &verr) {
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "%s: %d problem(s)\n", cfg.ContentPath, len(verr.Fields))
				for _, f := range verr.Fields {
					fmt.Fprintf(out, "  %s: %s\n", f.Field, f.Message)
				}
				return errors.New("content is invalid")
			}
			if err != nil {
				return err
			}
			printSummary(cmd.OutOrStdout(), cfg.ContentPath, c)
			return nil
		},
	}
}

func printSummary(w io.Writer, path string, c *content.SiteContent) {
	photos := 0
	for _, g := range c.Galleries {
		photos += len(g.Images)
	}
	fmt.Fprintf(w, "%s: ok\n", path)
	fmt.Fprintf(w, "  club:        %s (est. %d)\n", c.Club.Name, c.Club.Established)
	fmt.Fprintf(w, "  executive:   %d directors, %d officers\n", len(c.Executive.Directors), len(c.Executive.Officers))
	fmt.Fprintf(w, "  newsletters: %d\n", len(c.Newsletters))
	fmt.Fprintf(w, "  sponsors:    %d gold, %d silver\n", len(c.Sponsors.Gold), len(c.Sponsors.Silver))
	fmt.Fprintf(w, "  galleries:   %d (%d photos)\n", len(c.Galleries), photos)
	fmt.Fprintf(w, "  donations:   %s\n", c.TotalContributions())
}
