package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"

	"lattice-viewer/internal/env"
	"lattice-viewer/internal/export"
	"lattice-viewer/internal/lattice"
	"lattice-viewer/internal/viewconfig"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LaunchFunc opens the viewer window with prefs and blocks until it closes.
// configPath is where "cmd save" writes and where live reloads are watched.
type LaunchFunc func(ctx context.Context, prefs viewconfig.Prefs, configPath string, log *zap.Logger) error

// root holds the flag values shared by all subcommands.
type root struct {
	configPath string
	envPath    string
	verbose    bool

	// viewer overrides, applied only when the flag is set
	structure   string
	scene       string
	lab         bool
	dark        bool
	interactive bool
	animate     bool

	log    *zap.Logger
	launch LaunchFunc
}

// NewRootCommand builds the "lattice" command tree. Running it without a subcommand calls launch.
func NewRootCommand(launch LaunchFunc) *cobra.Command {
	r := &root{launch: launch, log: zap.NewNop()}

	cmd := &cobra.Command{
		Use:   "lattice",
		Short: "Crystal lattice viewer",
		Long: `Renders cubic, hexagonal and monoclinic crystal lattices as nodes and bonds.

Run without arguments to open the viewer window. Press ESC inside the window for
the command bar ("cmd help" lists commands).`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: r.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = r.log.Sync()
		},
		RunE: r.runViewer,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&r.configPath, "config", viewconfig.DefaultPath, "viewer preferences file (YAML)")
	pf.StringVar(&r.envPath, "env", ".env", "dotenv file loaded before LATTICE_* overrides")
	pf.BoolVarP(&r.verbose, "verbose", "v", false, "debug logging to stderr")

	f := cmd.Flags()
	f.StringVarP(&r.structure, "structure", "s", "", "lattice to show: "+typeList())
	f.StringVar(&r.scene, "scene", "", "scene kind: lattice, atomic or empty")
	f.BoolVar(&r.lab, "lab", false, "lab mode (green on black, implies dark mode)")
	f.BoolVar(&r.dark, "dark", true, "dark mode")
	f.BoolVar(&r.interactive, "interactive", false, "orbit the camera and show a denser atom field")
	f.BoolVar(&r.animate, "animate", true, "rotate and pulse the lattice")

	cmd.AddCommand(newDumpCommand(r), newStatsCommand(r))
	return cmd
}

// Execute runs the command tree with os.Args and exits non-zero on error.
func Execute(launch LaunchFunc) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := NewRootCommand(launch).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func (r *root) setup(cmd *cobra.Command, args []string) error {
	config := zap.NewProductionConfig()
	config.Encoding = "console"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.DisableStacktrace = true
	if r.verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	log, err := config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	r.log = log

	keys, err := env.Load(r.envPath)
	if err != nil {
		r.log.Warn("dotenv not loaded", zap.String("path", r.envPath), zap.Error(err))
	} else if len(keys) > 0 {
		r.log.Debug("dotenv loaded", zap.String("path", r.envPath), zap.Strings("keys", keys))
	}
	return nil
}

// prefs resolves file, environment and flag settings, in that order of increasing precedence.
func (r *root) prefs(cmd *cobra.Command) (viewconfig.Prefs, error) {
	p, err := viewconfig.Load(r.configPath)
	if err != nil {
		r.log.Warn("using default preferences", zap.String("path", r.configPath), zap.Error(err))
	}
	p = viewconfig.ApplyEnv(p)

	f := cmd.Flags()
	if f.Changed("structure") {
		p.Structure = r.structure
	}
	if f.Changed("scene") {
		p.Scene = r.scene
	}
	if f.Changed("dark") {
		p.DarkMode = r.dark
		if !r.dark {
			p.LabMode = false
		}
	}
	if f.Changed("lab") {
		p = p.WithTheme(p.Theme().WithLab(r.lab))
	}
	if f.Changed("interactive") {
		p.Interactive = r.interactive
	}
	if f.Changed("animate") {
		p.Animate = r.animate
	}
	return p, p.Validate()
}

func (r *root) runViewer(cmd *cobra.Command, args []string) error {
	p, err := r.prefs(cmd)
	if err != nil {
		return err
	}
	if !p.StructureType().Known() {
		r.log.Warn("unknown structure, showing an empty lattice", zap.String("structure", p.Structure))
	}
	if r.launch == nil {
		return fmt.Errorf("no viewer available")
	}
	r.log.Info("starting viewer",
		zap.String("structure", p.Structure),
		zap.String("scene", p.Scene),
		zap.Bool("lab_mode", p.LabMode),
	)
	return r.launch(cmd.Context(), p, r.configPath, r.log)
}

func newDumpCommand(r *root) *cobra.Command {
	var (
		structure string
		format    string
	)
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Write a generated lattice as JSON or YAML",
		Long: `Generates a lattice and writes its nodes (positions and connections) and the
deduplicated edge list to stdout.

Example:
  lattice dump --structure hexagonal --format yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}
			s := r.generate(structure)
			return export.Write(cmd.OutOrStdout(), s, f)
		},
	}
	cmd.Flags().StringVarP(&structure, "structure", "s", string(lattice.Cubic), "lattice type: "+typeList())
	cmd.Flags().StringVarP(&format, "format", "f", string(export.JSON), "output format: json or yaml")
	return cmd
}

func newStatsCommand(r *root) *cobra.Command {
	var structure string
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print node and edge counts and the degree histogram of a lattice",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeStats(cmd.OutOrStdout(), export.Summarize(r.generate(structure)))
		},
	}
	cmd.Flags().StringVarP(&structure, "structure", "s", string(lattice.Cubic), "lattice type: "+typeList())
	return cmd
}

// generate parses name and generates the lattice. Unknown names produce an empty structure and a warning.
func (r *root) generate(name string) *lattice.Structure {
	t := lattice.ParseType(name)
	if !t.Known() {
		r.log.Warn("unknown structure, output is empty", zap.String("structure", name))
	}
	s := lattice.Generate(t)
	r.log.Debug("generated", zap.String("structure", name), zap.Int("nodes", len(s.Nodes)))
	return s
}

func writeStats(w io.Writer, st export.Stats) error {
	name := string(st.Type)
	if name == "" {
		name = "none"
	}
	if _, err := fmt.Fprintf(w, "type: %s\nnodes: %d\nedges: %d\nsymmetric: %t\n", name, st.Nodes, st.Edges, st.Symmetric); err != nil {
		return err
	}
	degrees := make([]int, 0, len(st.Degrees))
	for d := range st.Degrees {
		degrees = append(degrees, d)
	}
	sort.Ints(degrees)
	for _, d := range degrees {
		if _, err := fmt.Fprintf(w, "degree %d: %d\n", d, st.Degrees[d]); err != nil {
			return err
		}
	}
	return nil
}

func typeList() string {
	names := make([]string, 0, len(lattice.Types()))
	for _, t := range lattice.Types() {
		names = append(names, string(t))
	}
	return strings.Join(names, ", ")
}
