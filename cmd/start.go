package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"apk-server/core/config"
	"apk-server/core/loader"
	"apk-server/core/logger"
	"apk-server/core/router"
	"apk-server/core/server"
	"apk-server/core/storage"
	"apk-server/feature/artifact"
	"apk-server/feature/static"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the file server",
	Long:  `Binds the listen port, prints the download URLs and serves until interrupted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		srv, err := buildServer(cfg, logg)
		if err != nil {
			return err
		}

		ln, err := srv.Listen()
		if err != nil {
			return err
		}

		server.Banner(os.Stdout, cfg.Server, cfg.Artifact.Routes)

		errCh := make(chan error, 1)
		go func() {
			errCh <- srv.Serve(ln)
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(c)

		select {
		case <-c:
			// A second interrupt falls back to the default handler and kills the process.
			signal.Stop(c)
			logg.Info("Shutting down server...")
			if err := srv.Shutdown(); err != nil {
				logg.Warn("Shutdown did not complete cleanly", zap.Error(err))
			}
			fmt.Println("\nServer stopped")
			return nil
		case err := <-errCh:
			return fmt.Errorf("server stopped unexpectedly: %w", err)
		}
	},
}

// loadConfig reads configuration and applies command line overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if cmd.Flags().Changed("port") {
		cfg.Server.Port, _ = cmd.Flags().GetString("port")
	}
	if cmd.Flags().Changed("root") {
		cfg.Server.Root, _ = cmd.Flags().GetString("root")
	}
	return cfg, nil
}

// newSource resolves the root and builds the configured artifact source.
func newSource(cfg *config.Config) (artifact.Source, string, error) {
	if !cfg.Artifact.IsValidSource() {
		return nil, "", fmt.Errorf("unknown artifact source %q", cfg.Artifact.Source)
	}

	root, err := cfg.Server.ResolveRoot()
	if err != nil {
		return nil, "", err
	}

	var client storage.Client
	if cfg.Artifact.Source == artifact.SourceBucket {
		client, err = storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, "", err
		}
	}

	src, err := artifact.NewSource(cfg.Artifact, root, client, cfg.Storage.Bucket)
	if err != nil {
		return nil, "", err
	}
	return src, root, nil
}

// buildServer wires the features into a router and wraps it in a server.
func buildServer(cfg *config.Config, logg *zap.Logger) (*server.Server, error) {
	src, root, err := newSource(cfg)
	if err != nil {
		return nil, err
	}

	mgr := loader.NewManager()
	mgr.Register(artifact.NewFeature(src, cfg.Artifact, logg))
	mgr.Register(static.NewFeature(root, cfg.Static))

	r := router.New(nil)
	loaded, err := mgr.LoadAll(r)
	if err != nil {
		return nil, err
	}
	if len(loaded) == 0 {
		return nil, errors.New("no features enabled")
	}

	logg.Info("Features loaded",
		zap.Strings("features", loaded),
		zap.String("root", root),
		zap.String("artifact", src.Location()),
	)

	return server.New(cfg.Server, r.Handler, logg), nil
}

func init() {
	startCmd.Flags().String("port", "", "port to listen on (overrides SERVER_PORT)")
	startCmd.Flags().String("root", "", "directory to serve (overrides SERVER_ROOT)")
	RootCmd.AddCommand(startCmd)
}
