// cmd/storefront/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/javajoker/artwork-storefront/internal/config"
	"github.com/javajoker/artwork-storefront/internal/i18n"
	"github.com/javajoker/artwork-storefront/internal/storefront"
)

var (
	apiBaseURL string
	lang       string
	timeout    time.Duration
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "storefront",
	Short: "Browse the artwork storefront from a terminal",
	Long: `storefront talks to the storefront API and drives the same gallery,
detail panel and cart a browser session would.

Run "storefront shell" for an interactive session or "storefront snapshot"
to write the rendered page as HTML.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		} else {
			logrus.SetLevel(logrus.WarnLevel)
		}
		logrus.SetOutput(cmd.ErrOrStderr())

		if err := i18n.Initialize(); err != nil {
			return fmt.Errorf("failed to initialize i18n: %w", err)
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if !cmd.Flags().Changed("api") {
			apiBaseURL = cfg.Storefront.APIBaseURL
		}
		if !cmd.Flags().Changed("lang") {
			lang = cfg.I18n.DefaultLocale
		}
		if !cmd.Flags().Changed("timeout") && cfg.Storefront.RequestTimeout > 0 {
			timeout = time.Duration(cfg.Storefront.RequestTimeout) * time.Second
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiBaseURL, "api", "http://localhost:3001", "storefront API base URL")
	rootCmd.PersistentFlags().StringVar(&lang, "lang", i18n.DefaultLang, "display language (en, zh-TW)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "per request timeout, 0 waits indefinitely")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output")

	rootCmd.AddCommand(shellCmd)
	rootCmd.AddCommand(snapshotCmd)
}

func newSession(renderer storefront.Renderer, display storefront.Display) *storefront.Session {
	client := storefront.NewClient(apiBaseURL, timeout)
	return storefront.NewSession(storefront.SessionOptions{
		Source:     client,
		Renderer:   renderer,
		Display:    display,
		Lang:       lang,
		APIBaseURL: client.BaseURL(),
	})
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
