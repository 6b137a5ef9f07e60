package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/comalice/reducerx"
	"github.com/comalice/reducerx/internal/core"
	"github.com/comalice/reducerx/internal/primitives"
	"github.com/comalice/reducerx/internal/production"
	"github.com/comalice/reducerx/internal/tui"
)

const (
	envConfig  = "COUNTERS_CONFIG"
	envVerbose = "COUNTERS_VERBOSE"

	transitionBuffer = 64
)

// app carries flag values and the per-run infrastructure shared by commands.
type app struct {
	configPath string
	verbose    bool
	metrics    bool

	logger   *zap.Logger
	registry *prom.Registry
	observer *production.PrometheusObserver

	runTUI func(g *reducerx.Gallery, opts ...tui.Option) error
}

func newApp() *app {
	verbose, _ := strconv.ParseBool(os.Getenv(envVerbose))
	return &app{
		configPath: os.Getenv(envConfig),
		verbose:    verbose,
		runTUI:     tui.Run,
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "counters",
		Short: "Composable counter reducers in the terminal",
		Long: `counters renders a gallery of counter examples built from one reducer:
a single counter, two independent counters, two counters where the second steps
by the first one's value, and a counter that controls how many item counters
are shown.

Run without arguments for the interactive view.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig(a.configPath)
			if err != nil {
				return err
			}
			// The status line shows the last transition; dispatch is synchronous, so
			// the model drains the channel after each key without a goroutine.
			transitions := make(chan core.Transition, transitionBuffer)
			pub := production.NewChannelPublisher(transitions)
			defer pub.Close()

			g, err := a.mount(cfg, reducerx.WithPublisher(pub))
			if err != nil {
				return err
			}
			defer g.Unmount()
			return a.runTUI(g, tui.WithLogger(a.logger), tui.WithTransitions(transitions))
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", a.configPath, "gallery config (YAML); defaults to $"+envConfig+" or the built-in gallery")
	flags.BoolVarP(&a.verbose, "verbose", "v", a.verbose, "debug logging; defaults to $"+envVerbose)
	flags.BoolVar(&a.metrics, "metrics", false, "print Prometheus metrics to stderr on exit")

	root.AddCommand(newPlayCmd(a), newRenderCmd(a), newValidateCmd(a))
	return root
}

// execute runs root and then tears the app down, whether or not the command
// failed. Cobra skips post-run hooks after a RunE error.
func (a *app) execute(root *cobra.Command) (err error) {
	defer func() {
		if terr := a.teardown(root.ErrOrStderr()); err == nil {
			err = terr
		}
	}()
	return root.Execute()
}

func (a *app) setup() error {
	if a.logger == nil {
		config := zap.NewProductionConfig()
		if a.verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		logger, err := config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		a.logger = logger
	}
	if a.metrics {
		a.registry = prom.NewRegistry()
		a.observer = production.NewPrometheusObserver(a.registry)
	}
	return nil
}

func (a *app) teardown(stderr io.Writer) error {
	if a.metrics && a.registry != nil {
		if err := production.WriteMetrics(stderr, a.registry); err != nil {
			return err
		}
	}
	if a.logger != nil {
		_ = a.logger.Sync()
	}
	return nil
}

// loadConfig reads path, or returns the built-in gallery when path is empty.
func (a *app) loadConfig(path string) (primitives.GalleryConfig, error) {
	if path == "" {
		return primitives.DefaultGalleryConfig(), nil
	}
	cfg, err := primitives.LoadConfig(path)
	if err != nil {
		return primitives.GalleryConfig{}, err
	}
	return cfg, nil
}

func (a *app) mount(cfg primitives.GalleryConfig, extra ...reducerx.Option) (*reducerx.Gallery, error) {
	opts := []reducerx.Option{reducerx.WithLogger(a.logger)}
	if a.observer != nil {
		opts = append(opts, reducerx.WithObserver(a.observer))
	}
	opts = append(opts, extra...)

	g, err := reducerx.FromConfig(cfg, opts...)
	if err != nil {
		return nil, err
	}
	a.logger.Info("gallery mounted",
		zap.String("id", cfg.ID),
		zap.String("fingerprint", primitives.Fingerprint(&cfg)),
		zap.Int("examples", len(cfg.Examples)),
	)
	return g, nil
}
