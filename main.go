package main

import (
	"errors"
	"exitmenu/logging"
	"exitmenu/session"
	"exitmenu/storage"
	"exitmenu/ui"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"fyne.io/fyne/v2/app"
)

const appID = "io.github.exitmenu"

// cliOptions holds the parsed command line
type cliOptions struct {
	horizontal bool
	vertical   bool
	debug      bool
	configDir  string
}

func main() {
	log.SetFlags(0)

	opts, err := parseArgs(os.Args[1:], os.Stdout)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if opts.debug {
		logging.EnableDebug()
	}

	store := storage.NewManager()
	if opts.configDir != "" {
		store = storage.NewManagerAt(opts.configDir)
	}

	runner := session.NewExecRunner()
	env := session.NewSystemEnvironment(runner)
	dispatcher := session.NewDispatcher(env, runner, session.NewLogindLocker(env.Getenv("XDG_SESSION_ID")))

	log.Println("Starting exit menu...")
	window := ui.NewMainWindow(app.NewWithID(appID), ui.Options{
		Horizontal: opts.horizontal,
		Vertical:   opts.vertical,
		Storage:    store,
		Env:        env,
		Dispatcher: dispatcher,
	})
	window.ShowAndRun()
}

// parseArgs processes command-line arguments
func parseArgs(args []string, out io.Writer) (cliOptions, error) {
	var opts cliOptions

	fs := flag.NewFlagSet("exitmenu", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.BoolVar(&opts.horizontal, "horizontal", false, "lay the buttons out in a row")
	fs.BoolVar(&opts.vertical, "vertical", false, "lay the buttons out in a column (wins over --horizontal)")
	fs.BoolVar(&opts.debug, "debug", false, "enable verbose logging")
	fs.StringVar(&opts.configDir, "config", "", "directory holding settings.json")
	fs.Usage = func() { showUsage(fs, out) }

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() > 0 {
		return opts, fmt.Errorf("unexpected argument: %s", fs.Arg(0))
	}
	return opts, nil
}

// showUsage displays command-line usage information
func showUsage(fs *flag.FlagSet, out io.Writer) {
	fmt.Fprintln(out, "Exit Menu - lock, log out, suspend, reboot or shut down")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Usage:")
	fmt.Fprintln(out, "  exitmenu [--horizontal | --vertical] [--debug] [--config <dir>]")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Options:")
	fs.PrintDefaults()
}
