package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nahilou/caverne/internal/profile"
	"github.com/nahilou/caverne/server"
	"github.com/nahilou/caverne/store"
)

var rootCmd = &cobra.Command{
	Use:   "caverne",
	Short: "API server of La caverne de Nahilou",
	Run: func(_ *cobra.Command, _ []string) {
		instanceProfile := &profile.Profile{
			Mode:                viper.GetString("mode"),
			Addr:                viper.GetString("addr"),
			Port:                viper.GetInt("port"),
			Version:             "0.1.0",
			AIBaseURL:           viper.GetString("ai-base-url"),
			AIAPIKey:            viper.GetString("ai-api-key"),
			AIModel:             viper.GetString("ai-model"),
			AITimeout:           viper.GetDuration("ai-timeout"),
			MaxTokens:           viper.GetInt("max-tokens"),
			MaxHistoryExchanges: viper.GetInt("max-history-exchanges"),
			MaxDrawingBytes:     viper.GetInt("max-drawing-bytes"),
		}
		if err := instanceProfile.Validate(); err != nil {
			slog.Error("invalid profile", "error", err)
			os.Exit(1)
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		s, err := server.NewServer(ctx, instanceProfile, store.New())
		if err != nil {
			cancel()
			slog.Error("failed to create server", "error", err)
			os.Exit(1)
		}

		signals := make(chan os.Signal, 1)
		signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
		go func() {
			sig := <-signals
			slog.Info("received signal, shutting down", "signal", sig.String())
			s.Shutdown(ctx)
			cancel()
		}()

		if err := s.Start(ctx); err != nil {
			slog.Error("failed to start server", "error", err)
			cancel()
		}

		<-ctx.Done()
	},
}

func init() {
	viper.SetDefault("mode", "dev")
	viper.SetDefault("addr", "")
	viper.SetDefault("port", 5000)
	viper.SetDefault("ai-timeout", 30*time.Second)

	rootCmd.PersistentFlags().String("mode", "dev", `server mode: "prod", "dev" or "demo"`)
	rootCmd.PersistentFlags().String("addr", "", "binding address")
	rootCmd.PersistentFlags().Int("port", 5000, "binding port")
	rootCmd.PersistentFlags().String("ai-base-url", "", "base URL of the OpenAI-compatible generation service")
	rootCmd.PersistentFlags().String("ai-api-key", "", "API key of the generation service; empty disables generation")
	rootCmd.PersistentFlags().String("ai-model", "", "chat model used for generation and moderation")
	rootCmd.PersistentFlags().Duration("ai-timeout", 30*time.Second, "timeout of each outbound generation call")
	rootCmd.PersistentFlags().Int("max-tokens", 500, "token cap per chat completion")
	rootCmd.PersistentFlags().Int("max-history-exchanges", 10, "bound on stored conversation exchanges per user")
	rootCmd.PersistentFlags().Int("max-drawing-bytes", 5<<20, "size cap of a saved drawing payload")

	for _, flag := range []string{
		"mode", "addr", "port",
		"ai-base-url", "ai-api-key", "ai-model", "ai-timeout",
		"max-tokens", "max-history-exchanges", "max-drawing-bytes",
	} {
		if err := viper.BindPFlag(flag, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
			panic(err)
		}
	}

	viper.SetEnvPrefix("caverne")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
