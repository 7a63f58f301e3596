// Command moodtunes recommends Spotify tracks for a mood inferred from the
// listener's cycle phase or today's weather.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/justestif/moodtunes/internal/auth"
	"github.com/justestif/moodtunes/internal/cli"
	"github.com/justestif/moodtunes/internal/config"
	"github.com/justestif/moodtunes/internal/recommend"
	"github.com/justestif/moodtunes/internal/spotify"
	"github.com/justestif/moodtunes/internal/web"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// options holds the persistent flags shared by every subcommand.
type options struct {
	configPath string
	verbose    bool
	logger     *zap.Logger
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "moodtunes",
		Short: "Recommend Spotify tracks for your mood",
		Long: `moodtunes infers a mood from your menstrual cycle phase or today's
weather and searches Spotify for tracks tagged with that mood.

Credentials are read from a config file (SPOTIFY_CLIENT_ID and
SPOTIFY_CLIENT_SECRET) or the environment.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(opts.verbose)
			if err != nil {
				return fmt.Errorf("initializing logger: %w", err)
			}
			opts.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", config.DefaultPath, "path to the JSON or YAML config file")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log diagnostics to stderr")

	root.AddCommand(newCycleCmd(opts), newWeatherCmd(opts), newServeCmd(opts), newLogoutCmd())
	return root
}

// newLogger returns a stderr development logger when verbose, else a no-op.
func newLogger(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}

func newCycleCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "cycle",
		Short: "Recommend tracks for your current cycle phase",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			newRunner(cmd, opts).RunCycle(cmd.Context())
			return nil
		},
	}
}

func newWeatherCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "weather",
		Short: "Recommend tracks for today's weather",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			newRunner(cmd, opts).RunWeather(cmd.Context())
			return nil
		},
	}
}

func newRunner(cmd *cobra.Command, opts *options) *cli.Runner {
	return cli.NewRunner(cmd.InOrStdin(), cmd.OutOrStdout(),
		cli.WithConfigPath(opts.configPath),
		cli.WithLogger(opts.logger),
	)
}

func newServeCmd(opts *options) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the mood classifiers and recommendations as a JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), opts, addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", web.DefaultAddr, "listen address")
	return cmd
}

func serve(ctx context.Context, opts *options, addr string) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return recommend.ConfigurationError("loading config", err)
	}

	// One client for the server's lifetime; app tokens refresh on expiry.
	client, err := spotify.Connect(ctx, cfg, opts.logger)
	if err != nil {
		return err
	}

	server, err := web.NewServer(web.ServerConfig{
		Addr:     addr,
		Searcher: client,
		Logger:   opts.logger,
	})
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	return server.Run(ctx)
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the cached Spotify app token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cache, err := auth.DefaultTokenCache()
			if err != nil {
				return err
			}
			if err := cache.Delete(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed cached token at %s\n", cache.Path())
			return nil
		},
	}
}
