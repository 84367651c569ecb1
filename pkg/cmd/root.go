package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/siyuan-infoblox/swift-import-lint/pkg/config"
	"github.com/siyuan-infoblox/swift-import-lint/pkg/errors"
	"github.com/siyuan-infoblox/swift-import-lint/pkg/linter"
	"github.com/siyuan-infoblox/swift-import-lint/pkg/reporter"
	"github.com/siyuan-infoblox/swift-import-lint/pkg/utils"
)

const (
	UseDescription   = "sil [flags] PATH"
	ShortDescription = "Swift import lint - checks import declaration style"
	LongDescription  = `sil is a command-line tool that checks Swift import declarations.

It reports three kinds of violations:
1. Imports declared after the first non-import code line
2. Imports out of alphabetical order (@testable imports must be grouped last)
3. Exact duplicate imports

PATH can be either a single Swift file or a directory. When a directory is
specified, all Swift source files in the directory and subdirectories will
be checked recursively.

Configuration is read from a ` + config.ConfigFileName + ` file found in the
target's directory or any parent, and can be overridden per flag.`
)

// exitCodeLintFailure is the exit code when error-severity violations were found.
const exitCodeLintFailure = 2

var (
	configPath       string
	ignoreCase       bool
	ignoreDuplicated bool
	ignoreOrder      bool
	ignorePosition   bool
	severity         string
	noColor          bool
	showVersion      bool
	versionStr       string
)

var rootCmd = &cobra.Command{
	Use:          UseDescription,
	Short:        ShortDescription,
	Long:         LongDescription,
	Args:         validateArgs,
	RunE:         run,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Explicit config file path (default: discovered "+config.ConfigFileName+")")
	rootCmd.PersistentFlags().BoolVar(&ignoreCase, "ignore-case", false, "Compare imports case-insensitively")
	rootCmd.PersistentFlags().BoolVar(&ignoreDuplicated, "ignore-duplicated", false, "Disable the duplicate-import check")
	rootCmd.PersistentFlags().BoolVar(&ignoreOrder, "ignore-order", false, "Disable the import-ordering check")
	rootCmd.PersistentFlags().BoolVar(&ignorePosition, "ignore-position", false, "Disable the import-position check")
	rootCmd.PersistentFlags().StringVar(&severity, "severity", "", "Violation severity: warning or error")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&showVersion, "version", "v", false, "Show version information")
}

func validateArgs(cmd *cobra.Command, args []string) error {
	// If version flag is set, we don't need file arguments
	if showVersion {
		return nil
	}
	return cobra.ExactArgs(1)(cmd, args)
}

// loadValidation merges the discovered configuration with flag overrides.
// Flags only override when explicitly set on the command line.
func loadValidation(cmd *cobra.Command, path string) (*config.Validation, error) {
	startDir := path
	if isDir, err := utils.IsDirectory(path); err == nil && !isDir {
		startDir = filepath.Dir(path)
	}

	cfg, err := config.Load(configPath, startDir)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errors.ErrMsgFailedToLoadConfig, err)
	}

	flags := cmd.Flags()
	if flags.Changed("ignore-case") {
		cfg.IgnoreCase = ignoreCase
	}
	if flags.Changed("ignore-duplicated") {
		cfg.IgnoreDuplicatedImports = ignoreDuplicated
	}
	if flags.Changed("ignore-order") {
		cfg.IgnoreImportsOrder = ignoreOrder
	}
	if flags.Changed("ignore-position") {
		cfg.IgnoreImportsPosition = ignorePosition
	}
	if flags.Changed("severity") {
		cfg.Severity = severity
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", errors.ErrMsgFailedToLoadConfig, err)
		}
	}

	return cfg, nil
}

func run(cmd *cobra.Command, args []string) error {
	// Handle version flag
	if showVersion {
		fmt.Printf("Swift Import Lint (sil) version %s\n", versionStr)
		return nil
	}

	if noColor {
		color.NoColor = true //nolint:reassign // intentional override of library global
	}

	path := args[0]

	cfg, err := loadValidation(cmd, path)
	if err != nil {
		return err
	}

	isDir, err := utils.IsDirectory(path)
	if err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToCheckPath, err)
	}

	files := []string{path}
	if isDir {
		files, err = utils.FindSwiftFiles(path)
		if err != nil {
			return fmt.Errorf("%s: %w", errors.ErrMsgFailedToFindSwiftFiles, err)
		}
		if len(files) == 0 {
			fmt.Printf(errors.InfoMsgNoSwiftFilesFound+"\n", path)
			return nil
		}
		fmt.Printf(errors.InfoMsgFoundSwiftFiles+"\n", len(files), path)
	}

	runner := linter.NewRunner(*cfg)
	rep := reporter.New(os.Stdout)

	failed := 0
	for _, file := range files {
		violations, err := runner.RunPath(file)
		if err != nil {
			fmt.Fprintf(os.Stderr, errors.InfoMsgErrorProcessing+"\n", file, err)
			failed++
			continue
		}
		rep.Report(violations)
	}

	rep.Summary(len(files) - failed)

	if failed > 0 {
		return fmt.Errorf(errors.ErrMsgFilesFailedToProcess, failed)
	}
	if rep.HasErrors() {
		os.Exit(exitCodeLintFailure)
	}
	return nil
}

func Execute(version string) error {
	versionStr = version
	return rootCmd.Execute()
}
