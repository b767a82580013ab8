package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/cli/browser"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lppsite/config"
	"github.com/lppsite/server"
)

var (
	addrFlag  string
	openFlag  bool
	exportOut string
	envFiles  []string
)

var rootCmd = &cobra.Command{
	Use:           "lppsite",
	Short:         "Serve the LPP Media landing page",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serveCommand(cmd.Context())
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	Long: `Serve the landing page, the metric data views and the static assets.

Examples:
  lppsite serve
  lppsite serve --addr 3000 --open`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serveCommand(cmd.Context())
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the site as static files",
	Long: `Render index.html, one page per metric and the static assets into a directory
ready for static hosting.

Examples:
  lppsite export --out dist`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return exportCommand(exportOut)
	},
}

func init() {
	rootCmd.PersistentFlags().StringSliceVar(&envFiles, "env-file", nil, "dotenv files to load (default .env)")

	for _, cmd := range []*cobra.Command{rootCmd, serveCmd} {
		cmd.Flags().StringVar(&addrFlag, "addr", "", "listen address, overrides LPP_ADDR")
		cmd.Flags().BoolVar(&openFlag, "open", false, "open the site in the default browser once listening")
	}
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "dist", "output directory")

	rootCmd.AddCommand(serveCmd, exportCmd)
}

func setup() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(envFiles...)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	if addrFlag != "" {
		cfg.Addr = config.NormalizeAddr(addrFlag)
	}
	logger, err := server.NewLogger(cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}

func serveCommand(ctx context.Context) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, logger)
	srv.OnReady = func(addr string) {
		url := "http://" + localURL(addr)
		logger.Info("visit the site", zap.String("url", url))
		if openFlag {
			if err := browser.OpenURL(url); err != nil {
				logger.Warn("failed to open browser", zap.Error(err))
			}
		}
	}
	return srv.Run(ctx)
}

func exportCommand(dir string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	return server.New(cfg, logger).Export(dir)
}

// localURL turns a wildcard listen address into one a browser can open.
func localURL(addr string) string {
	for _, wildcard := range []string{"[::]:", "0.0.0.0:"} {
		if strings.HasPrefix(addr, wildcard) {
			return "localhost:" + strings.TrimPrefix(addr, wildcard)
		}
	}
	return addr
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
