package main

import (
	"fmt"
	"io"
	"net/http"
	_ "net/http/pprof"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/filetug/ftexplorer/pkg/explorer"
	"github.com/filetug/ftexplorer/pkg/fsutils"
	"github.com/filetug/ftexplorer/pkg/ftapp"
	"github.com/filetug/ftexplorer/pkg/profiling"
	"github.com/filetug/ftexplorer/pkg/rawterm"
	"github.com/filetug/ftexplorer/pkg/teaexplorer"
	"github.com/filetug/ftexplorer/pkg/themecfg"
	"github.com/rivo/tview"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type flags struct {
	dir        string
	hidden     bool
	theme      string
	preset     string
	ui         string
	watch      bool
	preview    bool
	debug      bool
	cpuProfile string
	memProfile string
	pprofAddr  string
}

var (
	osExit             = os.Exit
	osOpenFile         = os.OpenFile
	httpListenAndServe = http.ListenAndServe
	debugLogPath       = "debug.log"
)

func main() {
	osExit(execute(os.Args[1:], os.Stderr))
}

func execute(args []string, stderr io.Writer) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetErr(stderr)
	if err := cmd.Execute(); err != nil {
		_, _ = fmt.Fprintf(stderr, "%v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:   "ftexplorer [dir]",
		Short: "Browse directories in the terminal",
		Long: `ftexplorer lists a directory and lets you walk the tree with the
arrow keys, vi keys, Enter and Backspace. Ctrl-H toggles hidden files.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				f.dir = args[0]
			}
			return run(f)
		},
	}
	fl := cmd.Flags()
	fl.StringVarP(&f.dir, "dir", "d", "", "directory to start in (default is the working directory)")
	fl.BoolVarP(&f.hidden, "hidden", "a", false, "show hidden files")
	fl.StringVar(&f.theme, "theme", "", "YAML theme `file`")
	fl.StringVar(&f.preset, "preset", "", fmt.Sprintf("theme preset %v", themecfg.PresetNames()))
	fl.StringVar(&f.ui, "ui", "tview", "front-end: tview, tea or raw")
	fl.BoolVar(&f.watch, "watch", false, "refresh when the directory changes on disk (tview only)")
	fl.BoolVar(&f.preview, "preview", false, "show a preview pane (tview only)")
	fl.BoolVar(&f.debug, "debug", false, "write debug logs to "+debugLogPath)
	fl.StringVar(&f.cpuProfile, "cpuprofile", "", "write cpu profile to `file`")
	fl.StringVar(&f.memProfile, "memprofile", "", "write memory profile to `file`")
	fl.StringVar(&f.pprofAddr, "pprof", "", "start pprof http server on `address` (e.g. localhost:6060)")
	return cmd
}

func run(f flags) error {
	log, closeLog, err := newLogger(f.debug)
	if err != nil {
		return err
	}
	defer closeLog()

	if f.pprofAddr != "" {
		go func() {
			if err := httpListenAndServe(f.pprofAddr, nil); err != nil {
				log.WithError(err).Warn("pprof server stopped")
			}
		}()
	}
	if f.cpuProfile != "" {
		stop, err := profiling.StartCPU(f.cpuProfile, log)
		if err != nil {
			return err
		}
		defer stop()
	}
	if f.memProfile != "" {
		defer profiling.StartMem(f.memProfile, profiling.DefaultMemInterval, log)()
	}

	theme, err := loadTheme(f.theme, f.preset)
	if err != nil {
		return err
	}
	dir := fsutils.ExpandHome(f.dir)
	if dir != "" {
		if ok, err := fsutils.DirExists(dir); err != nil || !ok {
			return fmt.Errorf("%s is not a directory", dir)
		}
	}
	fe, err := explorer.New(
		explorer.WithDir(dir),
		explorer.WithShowHidden(f.hidden),
		explorer.WithTheme(theme),
		explorer.WithLogger(log),
	)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{"dir": fe.Cwd(), "ui": f.ui}).Debug("starting")

	switch f.ui {
	case "tview":
		return runTview(fe, theme, f, log)
	case "tea":
		return runTea(teaexplorer.New(fe))
	case "raw":
		return runRaw(fe, os.Stdin, os.Stdout)
	default:
		return fmt.Errorf("unknown --ui %q: want tview, tea or raw", f.ui)
	}
}

// loadTheme applies the theme file, then the preset flag on top of it.
func loadTheme(path, preset string) (explorer.Theme, error) {
	cfg := themecfg.DefaultConfig()
	if path != "" {
		var err error
		if cfg, err = themecfg.Load(fsutils.ExpandHome(path)); err != nil {
			return explorer.Theme{}, err
		}
	}
	if preset != "" {
		cfg.Preset = preset
	}
	return cfg.Theme()
}

func newLogger(debug bool) (log *logrus.Logger, closeLog func(), err error) {
	log = logrus.New()
	if !debug {
		log.SetOutput(io.Discard)
		return log, func() {}, nil
	}
	file, err := osOpenFile(debugLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %s: %w", debugLogPath, err)
	}
	log.SetOutput(file)
	log.SetLevel(logrus.DebugLevel)
	return log, func() { _ = file.Close() }, nil
}

var newApp = func() ftapp.App {
	return ftapp.NewApp(tview.NewApplication())
}

func runTview(fe *explorer.FileExplorer, theme explorer.Theme, f flags, log logrus.FieldLogger) error {
	app := newApp()
	themes := append([]ftapp.NamedTheme{{Name: "startup", Theme: theme}}, ftapp.DefaultThemes()...)
	b, err := ftapp.Setup(app, fe,
		ftapp.WithThemes(themes...),
		ftapp.WithPreview(f.preview),
		ftapp.WithWatch(f.watch),
		ftapp.WithLogger(log),
	)
	if err != nil {
		return err
	}
	defer func() {
		_ = b.Close()
	}()
	return app.Run()
}

var runTea = func(m tea.Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

var runRaw = rawterm.Run
