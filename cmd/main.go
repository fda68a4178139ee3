package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/caffeine-storm/buildinged/base"
	"github.com/caffeine-storm/buildinged/house"
	"github.com/caffeine-storm/buildinged/logging"
	"github.com/caffeine-storm/buildinged/registry"
	"github.com/caffeine-storm/buildinged/tiles"
	"github.com/caffeine-storm/buildinged/viewer"
	"github.com/gdamore/tcell/v2"
)

type options struct {
	datadir string
	plan    string
	logfile string
	level   int
	layer   string
	view    bool
	watch   bool
	verbose bool
}

func parseFlags(name string, args []string, stderr io.Writer) (*options, error) {
	var opts options
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.datadir, "data", "data", "data directory holding tiles/ and furniture/")
	fs.StringVar(&opts.plan, "plan", "", "building plan to resolve; relative paths are tried under <data>/plans too")
	fs.StringVar(&opts.logfile, "log", "", "write logs here instead of stderr")
	fs.IntVar(&opts.level, "level", -1, "only this floor; -1 means every floor")
	fs.StringVar(&opts.layer, "layer", "", "only this output layer, e.g. Walls")
	fs.BoolVar(&opts.view, "view", false, "browse the result in the terminal instead of dumping it")
	fs.BoolVar(&opts.watch, "watch", false, "with -view, reload tile properties when they change")
	fs.BoolVar(&opts.verbose, "v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if opts.plan == "" {
		return nil, errors.New("-plan is required")
	}
	if opts.watch && !opts.view {
		return nil, errors.New("-watch only makes sense with -view")
	}
	return &opts, nil
}

func ensureDirectory(filePath string) error {
	return os.MkdirAll(filepath.Dir(filePath), 0o755)
}

func openLogFile(logFileName string) (*os.File, error) {
	err := ensureDirectory(logFileName)
	if err != nil {
		return nil, fmt.Errorf("couldn't create dir for %q: %w", logFileName, err)
	}

	f, err := os.Create(logFileName)
	if err != nil {
		return nil, fmt.Errorf("couldn't os.Create %q: %w", logFileName, err)
	}
	return f, nil
}

func onPanic(recoveredValue interface{}) {
	stack := debug.Stack()
	logging.Error("PANIC", "val", recoveredValue, "stack", stack)
	fmt.Fprintf(os.Stderr, "PANIC: %v\n", recoveredValue)
	fmt.Fprintf(os.Stderr, "PANIC: %s\n", string(stack))
}

// Sets up logging and the datadir. The returned func undoes the logging
// redirect.
func initializeDependencies(opts *options, stderr io.Writer) (func(), error) {
	if opts.verbose {
		logging.SetLogLevel(slog.LevelDebug)
	} else {
		logging.SetLogLevel(slog.LevelInfo)
	}

	var logOut io.Writer = stderr
	closeLog := func() {}
	if opts.logfile != "" {
		f, err := openLogFile(opts.logfile)
		if err != nil {
			return nil, err
		}
		logOut = f
		closeLog = func() { f.Close() }
	}
	undo := logging.Redirect(logOut)

	datadir, err := filepath.Abs(opts.datadir)
	if err != nil {
		undo()
		closeLog()
		return nil, err
	}
	base.SetDatadir(datadir)
	logging.Info("setting datadir", "datadir", base.GetDataDir())

	return func() {
		undo()
		closeLog()
	}, nil
}

func propertiesPath() string {
	return filepath.Join(base.GetDataDir(), "tiles", "properties.json")
}

func loadProperties() (*tiles.PropertyTable, error) {
	path := propertiesPath()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		logging.Info("no tile properties, using an empty table", "path", path)
		return tiles.NewPropertyTable(), nil
	}
	return tiles.LoadPropertyTable(path)
}

func resolvePlanPath(plan string) string {
	if filepath.IsAbs(plan) {
		return plan
	}
	if _, err := os.Stat(plan); err == nil {
		return plan
	}
	return filepath.Join(base.GetDataDir(), "plans", plan)
}

// Loads everything a run needs and resolves every floor of the plan.
func loadBuilding(opts *options) (*house.Building, *tiles.RegistryCatalog, *tiles.PropertyTable, error) {
	if err := registry.LoadAllRegistries(); err != nil {
		return nil, nil, nil, err
	}
	props, err := loadProperties()
	if err != nil {
		return nil, nil, nil, err
	}
	catalog := tiles.NewRegistryCatalog(props)

	plan, err := house.LoadPlan(resolvePlanPath(opts.plan))
	if err != nil {
		return nil, nil, nil, err
	}
	b, err := plan.Build(catalog)
	if err != nil {
		return nil, nil, nil, err
	}
	if len(b.Floors) == 0 {
		return nil, nil, nil, fmt.Errorf("plan %q has no floors", plan.Name)
	}
	b.LayoutToSquares(catalog)
	return b, catalog, props, nil
}

func selectLayers(name string) ([]house.Layer, error) {
	if name == "" {
		var all []house.Layer
		for l := house.Layer(0); l < house.NumLayers; l++ {
			all = append(all, l)
		}
		return all, nil
	}
	l, ok := house.ParseLayer(name)
	if !ok {
		return nil, fmt.Errorf("unknown layer %q", name)
	}
	return []house.Layer{l}, nil
}

func selectFloors(b *house.Building, level int) ([]*house.Floor, error) {
	if level < 0 {
		return b.Floors, nil
	}
	f := b.Floor(level)
	if f == nil {
		return nil, fmt.Errorf("building %q has no floor %d", b.Name, level)
	}
	return []*house.Floor{f}, nil
}

func view(b *house.Building, catalog *tiles.RegistryCatalog, props *tiles.PropertyTable, opts *options, layer house.Layer) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	level := max(opts.level, 0)
	fv := viewer.MakeFloorViewer(screen, b, level, layer)
	if opts.watch {
		fv.Relayout = func() {
			b.LayoutToSquares(catalog)
		}
		stop, err := tiles.WatchProperties(propertiesPath(), props, func() {
			if err := fv.Interrupt(); err != nil {
				logging.Warn("dropped relayout request", "err", err)
			}
		})
		if err != nil {
			return err
		}
		defer stop()
	}
	fv.Run()
	return nil
}

func run(argv []string, stdout, stderr io.Writer) error {
	opts, err := parseFlags(argv[0], argv[1:], stderr)
	if err != nil {
		return err
	}
	cleanup, err := initializeDependencies(opts, stderr)
	if err != nil {
		return err
	}
	defer cleanup()

	layers, err := selectLayers(opts.layer)
	if err != nil {
		return err
	}
	b, catalog, props, err := loadBuilding(opts)
	if err != nil {
		return err
	}

	if opts.view {
		return view(b, catalog, props, opts, layers[0])
	}
	floors, err := selectFloors(b, opts.level)
	if err != nil {
		return err
	}
	return dump(stdout, b, floors, layers)
}

func Main(argv []string) {
	defer func() {
		if r := recover(); r != nil {
			onPanic(r)
			panic(r)
		}
	}()

	if err := run(argv, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "%s: %v\n", filepath.Base(argv[0]), err)
		os.Exit(1)
	}
}
