package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/openclaw/lanqr/config"
	"github.com/openclaw/lanqr/lan"
	"github.com/openclaw/lanqr/qr"
)

var version = "v0.1.0"

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

// options are the command-line overrides on top of the loaded config.
type options struct {
	configPath string
	output     string
	terminal   bool
}

func newRootCmd(stdout io.Writer) *cobra.Command {
	var opts options

	root := &cobra.Command{
		Use:   "lanqr [url]",
		Short: "Generate a QR code for a URL on the local network",
		Long:  "Generate a QR code image for the given URL, or for http://<lan-ip>:8080/index.html when none is given.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			log := newLogger(cfg.LogLevel)
			resolver := lan.NewResolver(cfg.ProbeAddr)
			return runGenerate(cfg, args, resolver.LocalIP, stdout, log)
		},
	}
	root.SilenceUsage = true
	root.SetOut(stdout)
	root.Flags().StringVarP(&opts.configPath, "config", "c", "lanqr.yaml", "Path to config file")
	root.Flags().StringVarP(&opts.output, "output", "o", qr.DefaultFilename, "Output image path; the extension selects the format")
	root.Flags().BoolVarP(&opts.terminal, "terminal", "t", false, "Also print the QR code to the terminal")

	// --- version command -----------------------------------------------------
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "lanqr %s\n", version)
		},
	})

	return root
}

// loadConfig reads .env, the config file and the environment, then applies
// any flags the user set explicitly.
func loadConfig(cmd *cobra.Command, opts options) (*config.Config, error) {
	if err := config.LoadDotEnv(); err != nil {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = opts.output
	}
	if cmd.Flags().Changed("terminal") {
		cfg.Terminal = opts.terminal
	}
	return cfg, nil
}

func newLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelWarn
	}
	// Stdout carries the user-facing lines only.
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
}

// DefaultURL builds the URL encoded when none is given on the command line.
// The host is interpolated as-is.
func DefaultURL(host string, port int, path string) string {
	return fmt.Sprintf("http://%s:%d%s", host, port, path)
}

// runGenerate is the single-pass entry flow: pick the URL, write the image,
// report.
func runGenerate(cfg *config.Config, args []string, localIP func() string, out io.Writer, log *slog.Logger) error {
	ip := localIP()
	if ip == lan.Fallback {
		log.Debug("LAN address lookup failed, using fallback", "host", ip)
	}
	defaultURL := DefaultURL(ip, cfg.Port, cfg.Path)

	var url string
	if len(args) > 0 {
		url = args[0]
	} else {
		url = defaultURL
		fmt.Fprintf(out, "💡 No URL given, using default: %s\n", url)
		fmt.Fprintf(out, "💡 To use a custom URL run: lanqr <your-url>\n")
	}

	log.Info("generating QR code", "url", url, "output", cfg.Output)

	gen := qr.NewGenerator(out)
	if err := gen.Generate(url, cfg.Output); err != nil {
		return fmt.Errorf("generate QR code: %w", err)
	}

	if cfg.Terminal {
		qr.Terminal(url, out)
	}
	return nil
}
