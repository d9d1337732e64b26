package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/llehouerou/clubview/internal/content"
	"github.com/llehouerou/clubview/internal/imageref"
)

func newURLsCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "urls [gallery]",
		Short: "Print the resolved photo URLs of one or all galleries",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			c, err := loadContent(cfg)
			if err != nil {
				return err
			}
			resolver := imageref.New(cfg.Images.Host, cfg.ImageParams())
			out := cmd.OutOrStdout()

			if len(args) == 1 {
				g, ok := c.Gallery(args[0])
				if !ok {
					return fmt.Errorf("no gallery named %q", args[0])
				}
				for _, u := range resolver.ResolveAll(g.Images) {
					fmt.Fprintln(out, u)
				}
				return nil
			}

			for i, g := range c.Galleries {
				if i > 0 {
					fmt.Fprintln(out)
				}
				printGallery(cmd, resolver, g)
			}
			return nil
		},
	}
}

func printGallery(cmd *cobra.Command, resolver imageref.Resolver, g content.Gallery) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "# %s (%d photos)\n", g.Title, len(g.Images))
	for _, u := range resolver.ResolveAll(g.Images) {
		fmt.Fprintln(out, u)
	}
}
