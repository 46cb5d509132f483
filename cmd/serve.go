package cmd

import (
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the QuoteSpark server",
	Long:  `Start the QuoteSpark server to serve quotes, favorites, settings and AI generation.`,
	Example: `quotespark serve --config config.yml
quotespark serve -c /path/to/config.yml --log-level debug`,
	Run: root,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
