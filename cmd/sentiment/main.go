package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spacesedan/sentimeter/config"
	"github.com/spacesedan/sentimeter/internal/logging"
	"github.com/spacesedan/sentimeter/internal/pipeline"
	"github.com/spacesedan/sentimeter/internal/processing"
	"github.com/spf13/cobra"
)

var (
	numPosts   int
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "sentiment <term>",
	Short: "Run sentiment analysis on a search term (Twitter + Reddit)",
	Long: `Fetch recent posts matching a search term from Twitter and Reddit,
score them, and print the sentiment breakdown as JSON.

A CSV of every post and a pie chart are written on each run.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runSentiment,
}

func init() {
	rootCmd.Flags().IntVarP(&numPosts, "num", "n", config.DefaultCount, "Number of posts/tweets to fetch")
	rootCmd.Flags().StringVar(&configPath, "config", os.Getenv("SENTIMETER_CONFIG"), "Optional config file")
}

func main() {
	config.LoadEnv(config.AppEnv())

	if err := rootCmd.Execute(); err != nil {
		slog.Error("[Main] sentiment failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func runSentiment(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	// stdout carries the JSON result
	logging.InitLogger(os.Stderr, cfg.Logging.Level)

	if err := cfg.Validate(); err != nil {
		slog.Error("[Main] Invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	p := pipeline.New(cfg, pipeline.DefaultOptions(cfg))
	result, err := p.Run(ctx, processing.SanitizeTerm(args[0]), numPosts)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
