package main

import (
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/llehouerou/clubview/internal/errmsg"
	"github.com/llehouerou/clubview/internal/imagecache"
)

func newCacheCmd(flags *rootFlags) *cobra.Command {
	var path string

	open := func(cmd *cobra.Command) (*imagecache.Cache, error) {
		cfg, err := loadConfig(flags)
		if err != nil {
			return nil, err
		}
		c, err := imagecache.Open(cmd.Context(), path, cfg.CacheTTL())
		if err != nil {
			return nil, errors.New(errmsg.Format(errmsg.OpCacheOpen, err))
		}
		return c, nil
	}

	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect or clear the photo cache",
	}
	cmd.PersistentFlags().StringVar(&path, "path", "", "Cache database (default: XDG cache directory)")

	cmd.AddCommand(&cobra.Command{
		Use:   "stats",
		Short: "Show how many photos are cached",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := open(cmd)
			if err != nil {
				return err
			}
			defer c.Close()

			s, err := c.Stats(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s photos, %s\n",
				humanize.Comma(s.Entries), humanize.IBytes(uint64(max(s.Bytes, 0))))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Remove every cached photo",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := open(cmd)
			if err != nil {
				return err
			}
			defer c.Close()

			if err := c.Clear(cmd.Context()); err != nil {
				return errors.New(errmsg.Format(errmsg.OpCacheClear, err))
			}
			fmt.Fprintln(cmd.OutOrStdout(), "photo cache cleared")
			return nil
		},
	})

	return cmd
}
