package main

import (
	"errors"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/llehouerou/clubview/internal/errmsg"
	"github.com/llehouerou/clubview/internal/sitemap"
)

func newSitemapCmd(flags *rootFlags) *cobra.Command {
	var baseURL, output string

	cmd := &cobra.Command{
		Use:   "sitemap",
		Short: "Print the sitemap XML of the club site",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			if baseURL == "" {
				baseURL = cfg.Site.URL
			}

			var w io.Writer = cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return errors.New(errmsg.FormatWith(errmsg.OpSitemapWrite, output, err))
				}
				defer f.Close()
				w = f
			}

			if err := sitemap.Write(w, sitemap.Entries(baseURL, time.Now())); err != nil {
				return errors.New(errmsg.Format(errmsg.OpSitemapWrite, err))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&baseURL, "base", "", "Site URL (default: site.url from config)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to file instead of stdout")
	return cmd
}
