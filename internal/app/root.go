package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/evanrichards/tsorder/internal/cache"
	"github.com/evanrichards/tsorder/internal/config"
	"github.com/evanrichards/tsorder/internal/fileutil"
	"github.com/evanrichards/tsorder/internal/logging"
	"github.com/evanrichards/tsorder/internal/processor"
	"github.com/evanrichards/tsorder/internal/report"
	"github.com/evanrichards/tsorder/internal/sorting/interfaces"
	"github.com/evanrichards/tsorder/internal/version"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// globalFlags are the flags that are not part of the project configuration.
type globalFlags struct {
	configPath string
	verbosity  int
	quiet      bool
}

// NewRootCommand builds the tsorder command tree writing to stdout and stderr.
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	var flags globalFlags

	cmd := &cobra.Command{
		Use:   "tsorder [flags] <path>...",
		Short: "Keep TypeScript members sorted",
		Long: `tsorder checks and sorts the members of TypeScript objects, arrays, interfaces,
classes and enums marked with a magic comment:

  const config = {
    /** tsorder: keep-sorted type=natural deprecated-at-end */
    beta: 2,
    alpha: 1,
  };

Without --write files are left untouched and the needed changes are reported.`,
		Version:       version.Info(),
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			project, err := loadProject(cmd, flags)
			if err != nil {
				return err
			}
			logger := logging.NewLogger(stderr, logging.LevelFromVerbosity(flags.verbosity, flags.quiet))
			return run(cmd.Context(), project, args, runOptions{
				stdout:  stdout,
				logger:  logger,
				verbose: flags.verbosity > 0,
				quiet:   flags.quiet,
			})
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetVersionTemplate("tsorder version {{.Version}}\n")

	f := cmd.Flags()
	f.Bool("check", false, "Check if files are sorted (exit 1 if not)")
	f.Bool("write", false, "Write changes to files (default: dry-run)")
	f.Bool("recursive", true, "Process directories recursively")
	f.StringSlice("extensions", []string{".ts", ".tsx"}, "File extensions to process")
	f.StringSlice("exclude", nil, "Glob patterns of paths to skip (doublestar syntax)")
	f.Int("workers", 0, "Number of parallel workers (0 = number of CPUs)")
	f.String("format", "text", "Output format (text, json, yaml)")
	f.String("cache-file", "", "Remember sorted files in this SQLite database and skip them while unchanged")
	f.StringSlice("kinds", nil, "Constructs sorted without a magic comment (object, array, interface, class, enum, parameters, all)")

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "Path to the project configuration file")
	pf.CountVarP(&flags.verbosity, "verbose", "v", "Show detailed output (repeat for debug logs)")
	pf.BoolVarP(&flags.quiet, "quiet", "q", false, "Only report errors")

	cmd.AddCommand(newVersionCommand(), newConfigCommand(&flags))
	return cmd
}

func loadProject(cmd *cobra.Command, flags globalFlags) (config.Project, error) {
	project, used, err := config.Load(flags.configPath, []string{"."}, cmd.Flags())
	if err != nil {
		return config.Project{}, err
	}
	if used != "" && flags.verbosity > 1 {
		fmt.Fprintf(cmd.ErrOrStderr(), "Using config %s\n", used)
	}
	return project, nil
}

type runOptions struct {
	stdout  io.Writer
	logger  *slog.Logger
	verbose bool
	quiet   bool
}

func run(ctx context.Context, project config.Project, paths []string, opts runOptions) error {
	defaults, err := project.SortDefaults()
	if err != nil {
		return fmt.Errorf("project sort options: %w", err)
	}
	kinds, err := interfaces.ParseKinds(project.Kinds)
	if err != nil {
		return err
	}

	finder := fileutil.Finder{
		Extensions: project.Extensions,
		Exclude:    project.Exclude,
		Recursive:  project.Recursive,
	}
	if err := finder.Validate(); err != nil {
		return err
	}

	files, err := collectFiles(ctx, finder, paths)
	if err != nil {
		return err
	}

	if len(files) == 0 {
		if opts.verbose {
			fmt.Fprintln(opts.stdout, report.MsgNoFiles)
		}
		return nil
	}
	runID := uuid.NewString()
	logger := opts.logger.With("run", runID)
	logger.Info("found files", "count", len(files))

	procOpts := processor.Options{
		Defaults: defaults,
		Kinds:    kinds,
		Logger:   logger,
	}
	if project.CacheFile != "" {
		c, err := openCache(ctx, project.CacheFile, defaults, kinds)
		if err != nil {
			return err
		}
		defer c.Close()
		procOpts.Cache = c
	}
	proc := processor.NewProcessor(procOpts)

	mode := report.ModeDryRun
	switch {
	case project.Write:
		mode = report.ModeWrite
	case project.Check:
		mode = report.ModeCheck
	}

	results := processFiles(ctx, proc, files, pool{
		workers: project.Workers,
		write:   project.Write,
		logger:  logger,
	})
	if err := ctx.Err(); err != nil {
		return err
	}

	r := report.New(mode, results)
	r.RunID = runID
	if err := report.Write(opts.stdout, project.Format, r, report.Options{
		Verbose: opts.verbose,
		Quiet:   opts.quiet,
	}); err != nil {
		return err
	}

	if r.Summary.ErrorFiles > 0 {
		return fmt.Errorf("%d file(s) could not be processed", r.Summary.ErrorFiles)
	}
	if project.Check && r.NeedsSorting() {
		return ErrFilesNeedSort
	}
	return nil
}

// openCache opens the file cache. Entries are tied to the tool version and
// the resolved sort options.
func openCache(ctx context.Context, path string, defaults config.SortConfig, kinds []interfaces.Kind) (*cache.Cache, error) {
	settings, err := json.Marshal(struct {
		Version string            `json:"version"`
		Sort    map[string]any    `json:"sort"`
		Kinds   []interfaces.Kind `json:"kinds"`
	}{version.Version, defaults.Document(), kinds})
	if err != nil {
		return nil, fmt.Errorf("cache settings: %w", err)
	}
	return cache.Open(ctx, path, settings)
}

// collectFiles expands directories and checks explicit files. A file named on
// the command line is processed even when it matches an exclude pattern.
func collectFiles(ctx context.Context, finder fileutil.Finder, paths []string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string
	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("cannot access path %s: %w", path, err)
		}

		if !info.IsDir() {
			if !fileutil.HasValidExtension(path, finder.Extensions) {
				return nil, fmt.Errorf("file %s does not have a valid extension", path)
			}
			add(path)
			continue
		}

		found, err := finder.FindFiles(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("error finding files: %w", err)
		}
		for _, f := range found {
			add(f)
		}
	}
	return files, nil
}
