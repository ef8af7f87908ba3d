package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape <url>",
	Short: "Scrape a single URL and print its markdown",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		scraper, _, err := buildClients()
		if err != nil {
			return err
		}

		page, err := scraper.Scrape(ctx, args[0])
		if err != nil {
			return err
		}

		zap.L().Debug("scraped page",
			zap.String("url", page.URL),
			zap.String("title", page.Title),
		)
		fmt.Fprintln(cmd.OutOrStdout(), page.Markdown)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(scrapeCmd)
}
