package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/GreenMarioh/unique-paths-visualizer/render"
	"github.com/GreenMarioh/unique-paths-visualizer/reveal"
	"github.com/GreenMarioh/unique-paths-visualizer/session"
)

const clearScreen = "\x1b[H\x1b[2J"

// flags holds raw command-line values before they are merged into Config.
type flags struct {
	configPath string
	gridPath   string
	rows, cols int
	maxDim     int
	obstacles  []string
	seed       int64
	delay      time.Duration
	counts     bool
	logLevel   string
	noClear    bool
}

// app is the state shared by subcommands once PersistentPreRunE has run.
type app struct {
	cfg     Config
	logger  *slog.Logger
	session *session.Session
	render  *render.Renderer
	out     io.Writer
}

func newRootCmd() *cobra.Command {
	var (
		f flags
		a app
	)

	root := &cobra.Command{
		Use:           "uniquepaths",
		Short:         "Count and animate monotone paths through an obstacle grid",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd, &f)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&f.configPath, "config", "", "YAML config file")
	pf.StringVar(&f.gridPath, "grid", "", "grid layout file ('.' free, '#' blocked)")
	pf.IntVar(&f.rows, "rows", 0, "number of rows")
	pf.IntVar(&f.cols, "cols", 0, "number of columns")
	pf.IntVar(&f.maxDim, "max-dim", 0, "largest allowed rows/cols")
	pf.StringArrayVar(&f.obstacles, "obstacle", nil, "blocked cell as row,col (repeatable)")
	pf.Int64Var(&f.seed, "seed", 0, "sampling seed (0 = random)")
	pf.BoolVar(&f.counts, "counts", false, "overlay path counts on the grid")
	pf.StringVar(&f.logLevel, "log-level", "", "debug, info, warn or error")

	root.AddCommand(
		newCountCmd(&a),
		newSampleCmd(&a),
		newAnimateCmd(&a, &f),
	)
	return root
}

// setup merges config file and flags, then builds the session and renderer.
func (a *app) setup(cmd *cobra.Command, f *flags) error {
	cfg, err := loadConfig(f.configPath)
	if err != nil {
		return err
	}
	fs := cmd.Flags()
	if fs.Changed("rows") {
		cfg.Rows = f.rows
	}
	if fs.Changed("cols") {
		cfg.Cols = f.cols
	}
	if fs.Changed("max-dim") {
		cfg.MaxDim = f.maxDim
	}
	if fs.Changed("seed") {
		cfg.Seed = f.seed
	}
	if fs.Changed("counts") {
		cfg.ShowCounts = f.counts
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if fs.Changed("delay") {
		cfg.Delay = f.delay
	}
	for _, s := range f.obstacles {
		rc, err := parseObstacle(s)
		if err != nil {
			return err
		}
		cfg.Obstacles = append(cfg.Obstacles, rc)
	}
	if f.gridPath != "" {
		if cfg.Grid, err = readGridFile(f.gridPath); err != nil {
			return err
		}
	}
	if len(cfg.Grid) > 0 {
		var given []string
		for _, name := range []string{"rows", "cols", "obstacle"} {
			if fs.Changed(name) {
				given = append(given, "--"+name)
			}
		}
		if len(given) > 0 {
			return fmt.Errorf("%w: %s", errGridConflict, strings.Join(given, ", "))
		}
	}

	lvl, err := parseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: lvl}))

	g, err := cfg.buildGrid()
	if err != nil {
		return err
	}
	s, err := session.New(cfg.sessionConfig(g), session.WithLogger(a.logger))
	if err != nil {
		return err
	}
	if err := s.Load(g); err != nil {
		return err
	}

	a.cfg = cfg
	a.session = s
	a.out = cmd.OutOrStdout()
	a.render = render.New(lipgloss.NewRenderer(a.out), render.Options{ShowCounts: cfg.ShowCounts})
	a.logger.Debug("configured",
		"rows", g.Rows(), "cols", g.Cols(), "obstacles", g.BlockedCount(),
		"seed", cfg.Seed, "delay", cfg.Delay)
	return nil
}

func newCountCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "count",
		Short: "Print the path-count table and total",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			s := a.session
			a.render.SetShowCounts(true)
			fmt.Fprintln(a.out, a.render.Grid(s.Grid(), s.Table(), nil))
			fmt.Fprintln(a.out)
			fmt.Fprintln(a.out, a.render.Table(s.Table()))
			fmt.Fprintln(a.out)
			fmt.Fprintln(a.out, a.render.Summary(s.Table(), nil, false))
			return nil
		},
	}
}

func newSampleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sample",
		Short: "Draw one path uniformly at random",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			s := a.session
			p, err := s.RandomPath()
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, a.render.Path(p))
			fmt.Fprintln(a.out)
			fmt.Fprintln(a.out, a.render.Grid(s.Grid(), s.Table(), p))
			fmt.Fprintln(a.out)
			fmt.Fprintln(a.out, a.render.Summary(s.Table(), p, false))
			return nil
		},
	}
}

func newAnimateCmd(a *app, f *flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "animate",
		Short: "Reveal a random path one cell at a time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return a.animate(ctx, !f.noClear && isTerminal(a.out))
		},
	}
	cmd.Flags().DurationVar(&f.delay, "delay", reveal.DefaultDelay, "pause between revealed cells")
	cmd.Flags().BoolVar(&f.noClear, "no-clear", false, "append frames instead of redrawing in place (implied when output is not a terminal)")
	return cmd
}

func (a *app) animate(ctx context.Context, redraw bool) error {
	s := a.session
	err := s.Animate(ctx, func(fr reveal.Frame) {
		if redraw {
			fmt.Fprint(a.out, clearScreen)
		} else if fr.Index > 0 {
			fmt.Fprintln(a.out)
		}
		fmt.Fprintln(a.out, a.render.Grid(s.Grid(), s.Table(), fr.Revealed))
		fmt.Fprintln(a.out, a.render.Summary(s.Table(), fr.Revealed, !fr.Done))
	})
	switch {
	case err == nil:
		return nil
	case ctx.Err() != nil:
		a.logger.Info("animation interrupted", "step", s.Step())
		return nil
	default:
		return err
	}
}

// isTerminal reports whether w is a terminal, so frames can be redrawn in
// place. Pipes, files and buffers get plain appended frames.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
