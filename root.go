package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath  string
	contentPath string
	verbose     bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	var page string

	cmd := &cobra.Command{
		Use:           "clubview",
		Short:         "Browse the Corvettes of Durham club site in the terminal",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(cmd, flags, page)
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Config file (TOML), loaded after the default locations")
	cmd.PersistentFlags().StringVar(&flags.contentPath, "content", "", "Site content JSON (overrides content_path)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.Flags().StringVarP(&page, "page", "p", "", "Page to open first, e.g. /gallery")

	cmd.AddCommand(newValidateCmd(flags))
	cmd.AddCommand(newSitemapCmd(flags))
	cmd.AddCommand(newURLsCmd(flags))
	cmd.AddCommand(newCacheCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
