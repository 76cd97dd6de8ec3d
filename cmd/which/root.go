// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jongio/azd-which/cliout"
	"github.com/jongio/azd-which/config"
	"github.com/jongio/azd-which/logutil"
	"github.com/jongio/azd-which/mcptool"
	"github.com/jongio/azd-which/metrics"
	"github.com/jongio/azd-which/pathutil"
	"github.com/jongio/azd-which/procutil"
	"github.com/jongio/azd-which/version"
	"github.com/jongio/azd-which/which"
)

const extensionID = "jongio.azd.which"

// errNotFound is returned after not-found messages have been reported.
var errNotFound = errors.New("one or more commands not found")

type rootFlags struct {
	all         bool
	silent      bool
	path        string
	pathExt     string
	delimiter   string
	pid         int
	configFile  string
	output      string
	debug       bool
	stats       bool
	refreshPath bool
}

// commandResult is the JSON form of one lookup.
type commandResult struct {
	Command string   `json:"command"`
	Paths   []string `json:"paths"`
	Found   bool     `json:"found"`
}

type report struct {
	Results []commandResult  `json:"results"`
	Stats   *metrics.Summary `json:"stats,omitempty"`
}

func newRootCommand() *cobra.Command {
	f := &rootFlags{}
	info := version.New(extensionID, "azd which")

	cmd := &cobra.Command{
		Use:   "which [flags] <command>...",
		Short: "Locate the executables a shell would run for each command",
		Long: `which searches the directories in PATH for each command and prints the first
executable match. On Windows the current directory is searched first and every
extension in PATHEXT is tried.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logutil.SetupLogger(f.debug, false)
			return cliout.SetFormat(f.output)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWhich(cmd, f, args)
		},
	}

	flags := cmd.Flags()
	flags.BoolVarP(&f.all, "all", "a", false, "Print every match instead of the first")
	flags.BoolVarP(&f.silent, "silent", "s", false, "Print nothing; report through the exit status only")
	flags.StringVar(&f.path, "path", "", "Directories to search instead of PATH")
	flags.StringVar(&f.pathExt, "path-ext", "", "Extensions to try on Windows instead of PATHEXT")
	flags.StringVar(&f.delimiter, "delimiter", "", "Separator for --path and --path-ext (default: platform list separator)")
	flags.IntVar(&f.pid, "pid", 0, "Resolve using the environment and working directory of another process")
	flags.BoolVar(&f.stats, "stats", false, "Print probe and lookup totals")
	flags.BoolVar(&f.refreshPath, "refresh-path", false, "Search the persisted system PATH instead of the inherited one")

	persistent := cmd.PersistentFlags()
	persistent.StringVar(&f.configFile, "config", "", "Config file (default: .azd/which.yaml in the current directory)")
	persistent.StringVarP(&f.output, "output", "o", "default", "Output format: default or json")
	persistent.BoolVar(&f.debug, "debug", false, "Enable debug logging")

	cmd.AddCommand(version.NewCommand(info), newMCPCommand(f, info))
	return cmd
}

func newMCPCommand(f *rootFlags, info *version.Info) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the which tool over the Model Context Protocol on stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(f.configFile)
			if err != nil {
				return err
			}
			logutil.NewLogger("mcp").Info("serving on stdio", "version", info.Version)
			return mcptool.ServeStdio(info.Version, cfg.Options(nil)...)
		},
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	return config.LoadFromDir(wd)
}

// lookupOptions layers options: config file, then process environment, then flags.
func lookupOptions(cmd *cobra.Command, f *rootFlags, collector *metrics.Collector) ([]which.Option, error) {
	cfg, err := loadConfig(f.configFile)
	if err != nil {
		return nil, err
	}

	getenv := os.Getenv
	var opts []which.Option
	if f.pid != 0 {
		env, err := procutil.Environment(cmd.Context(), f.pid)
		if err != nil {
			return nil, err
		}
		getenv = env.Getenv
		opts = append(opts, env.Options()...)
	}
	opts = append(opts, cfg.Options(getenv)...)

	if f.refreshPath {
		path, err := pathutil.RefreshPATH()
		if err != nil {
			return nil, fmt.Errorf("failed to refresh PATH: %w", err)
		}
		opts = append(opts, which.WithPath(path))
	}

	flags := cmd.Flags()
	if f.all {
		opts = append(opts, which.WithAll())
	}
	if flags.Changed("path") {
		opts = append(opts, which.WithPath(f.path))
	}
	if flags.Changed("path-ext") {
		opts = append(opts, which.WithPathExt(f.pathExt))
	}
	if flags.Changed("delimiter") {
		opts = append(opts, which.WithDelimiter(f.delimiter))
	}
	return append(opts, which.WithObserver(collector)), nil
}

func runWhich(cmd *cobra.Command, f *rootFlags, commands []string) error {
	collector := metrics.NewCollector(nil)
	opts, err := lookupOptions(cmd, f, collector)
	if err != nil {
		return err
	}

	log := logutil.NewLogger("cli")
	rep := report{Results: make([]commandResult, 0, len(commands))}
	missing := 0
	for _, name := range commands {
		res, err := which.Lookup(name, opts...)
		if err != nil && !which.IsNotFound(err) {
			return err
		}
		// A config file may enable nothrow, so a miss is an empty result too.
		if !res.Found() {
			missing++
			log.Debug("command not found", "command", name)
			if err == nil {
				err = &which.NotFoundError{Command: name, Op: "Lookup"}
			}
			if !f.silent && !cliout.IsJSON() {
				reportMissing(err, name)
			}
		}
		rep.Results = append(rep.Results, commandResult{Command: name, Paths: nonNil(res.Paths), Found: res.Found()})
	}

	if f.stats {
		s := collector.Summary()
		rep.Stats = &s
	}

	if !f.silent {
		err := cliout.Print(rep, func() {
			for _, r := range rep.Results {
				for _, p := range r.Paths {
					cliout.Plain("%s", p)
				}
			}
			if rep.Stats != nil {
				printStats(*rep.Stats)
			}
		})
		if err != nil {
			return err
		}
	}

	if missing > 0 {
		return errNotFound
	}
	return nil
}

// reportMissing prints err and a hint: the location of the tool outside the
// search path if there is one, otherwise how to install it.
func reportMissing(err error, name string) {
	cliout.Error("%v", err)
	if p := pathutil.SearchToolInSystemPath(name); p != "" {
		cliout.Suggestion("%s exists but its directory is not on the search path", p)
		return
	}
	cliout.Suggestion("%s", pathutil.GetInstallSuggestion(name))
}

func printStats(s metrics.Summary) {
	cliout.Header("Lookup statistics")
	cliout.Table([]string{"Metric", "Value"}, []cliout.TableRow{
		{"Metric": "candidates probed", "Value": strconv.Itoa(s.Probes)},
		{"Metric": "executable", "Value": strconv.Itoa(s.Executable)},
		{"Metric": "found", "Value": strconv.Itoa(s.Found)},
		{"Metric": "not found", "Value": strconv.Itoa(s.NotFound)},
	})
}

func nonNil(paths []string) []string {
	if paths == nil {
		return []string{}
	}
	return paths
}
