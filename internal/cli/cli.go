// Package cli provides the command line interface.
package cli

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/temirov/boundtree/internal/config"
	"github.com/temirov/boundtree/internal/crawler"
	"github.com/temirov/boundtree/internal/output"
	"github.com/temirov/boundtree/internal/services/clipboard"
	"github.com/temirov/boundtree/internal/types"
	"github.com/temirov/boundtree/internal/utils"
)

const (
	rootFolderFlagName   = "root-folder"
	rootFolderShorthand  = "f"
	maxDepthFlagName     = "max-depth"
	maxDepthShorthand    = "d"
	maxTimeFlagName      = "max-time"
	maxTimeShorthand     = "t"
	printTreeFlagName    = "print-tree"
	printTreeShorthand   = "p"
	formatFlagName       = "format"
	copyFlagName         = "copy"
	configFlagName       = "config"
	verboseFlagName      = "verbose"
	versionFlagName      = "version"
	defaultMaxDepth      = 3
	defaultMaxTime       = 1e9
	versionTemplate      = "boundtree version: %s\n"
	rootUse              = "boundtree [path]"
	rootShortDescription = "bounded directory tree crawler"
	rootLongDescription  = `boundtree walks a directory depth-first and builds its tree of folders and files.
The walk stops descending at --max-depth levels below the root or once --max-time seconds have passed,
and reports whether the tree is complete, depth-limited or time-limited.
Use --print-tree to render the tree and --format to select raw, json, xml, or yaml output.`
	rootUsageExample = `  # Crawl the home directory three levels deep
  boundtree

  # Print the tree of /var/log, two levels deep, giving up after half a second
  boundtree /var/log -d 2 -t 0.5 -p

  # Emit a YAML document including the tree
  boundtree --format yaml --print-tree ./project`

	rootFolderFlagDescription = "folder to use as the root of the search (default: user home directory)"
	maxDepthFlagDescription   = "maximum folder depth to search to"
	maxTimeFlagDescription    = "maximum time in seconds to spend searching"
	printTreeFlagDescription  = "print the tree"
	formatFlagDescription     = "output format: raw, json, xml, or yaml"
	copyFlagDescription       = "copy the rendered output to the clipboard"
	configFlagDescription     = "path to a configuration file"
	verboseFlagDescription    = "enable debug logging"
	versionFlagDescription    = "display application version"

	invalidFormatMessage          = "invalid format value '%s'"
	invalidMaxDepthMessage        = "max depth must be zero or greater, got %d"
	invalidMaxTimeMessage         = "max time must be zero or greater, got %v"
	errorHomeDirectoryFormat      = "unable to determine home directory: %w"
	errorLoadConfigurationFormat  = "loading configuration: %w"
	errorRenderDocumentFormat     = "rendering %s output: %w"
	errorCopyOutputFormat         = "copying output: %w"
	logMessageCrawlStarted        = "crawl started"
	logMessageCrawlFinished       = "crawl finished"
	logMessageConfigurationLoaded = "configuration resolved"
)

// applicationDependencies carries the collaborators the commands need so
// tests can substitute them.
type applicationDependencies struct {
	logger           *zap.Logger
	level            zap.AtomicLevel
	copier           clipboard.Copier
	fileSystem       afero.Fs
	clock            func() time.Time
	workingDirectory string
}

// crawlOptions stores the raw flag values of the crawl command.
type crawlOptions struct {
	rootFolder  string
	maxDepth    int
	maxTime     float64
	printTree   bool
	format      string
	copyOutput  bool
	configPath  string
	verbose     bool
	showVersion bool
}

// crawlSettings are the effective values after merging flags and configuration.
type crawlSettings struct {
	rootFolder string
	maxDepth   int
	maxTime    float64
	printTree  bool
	format     string
	copyOutput bool
}

func isSupportedFormat(format string) bool {
	switch format {
	case types.FormatRaw, types.FormatJSON, types.FormatXML, types.FormatYAML:
		return true
	default:
		return false
	}
}

// Execute runs the boundtree application.
func Execute(logger *zap.Logger, level zap.AtomicLevel) error {
	rootCommand := createRootCommand(applicationDependencies{
		logger:     logger,
		level:      level,
		copier:     clipboard.NewService(),
		fileSystem: afero.NewOsFs(),
		clock:      time.Now,
	})
	rootCommand.SetArgs(normalizeBooleanFlagArguments(rootCommand.Flags(), os.Args[1:]))
	return rootCommand.Execute()
}

// createRootCommand builds the root Cobra command, which performs the crawl.
func createRootCommand(dependencies applicationDependencies) *cobra.Command {
	var options crawlOptions

	rootCommand := &cobra.Command{
		Use:           rootUse,
		Short:         rootShortDescription,
		Long:          rootLongDescription,
		Example:       rootUsageExample,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			if options.showVersion {
				fmt.Fprintf(command.OutOrStdout(), versionTemplate, utils.GetApplicationVersion())
				return nil
			}
			if options.verbose {
				dependencies.level.SetLevel(zapcore.DebugLevel)
			}
			settings, settingsError := resolveCrawlSettings(command, options, arguments, dependencies)
			if settingsError != nil {
				return settingsError
			}
			return runCrawl(command, settings, dependencies)
		},
	}

	flags := rootCommand.Flags()
	flags.StringVarP(&options.rootFolder, rootFolderFlagName, rootFolderShorthand, "", rootFolderFlagDescription)
	flags.IntVarP(&options.maxDepth, maxDepthFlagName, maxDepthShorthand, defaultMaxDepth, maxDepthFlagDescription)
	flags.Float64VarP(&options.maxTime, maxTimeFlagName, maxTimeShorthand, defaultMaxTime, maxTimeFlagDescription)
	registerBooleanFlag(flags, &options.printTree, printTreeFlagName, printTreeShorthand, false, printTreeFlagDescription)
	flags.StringVar(&options.format, formatFlagName, types.FormatRaw, formatFlagDescription)
	registerBooleanFlag(flags, &options.copyOutput, copyFlagName, "", false, copyFlagDescription)
	flags.StringVar(&options.configPath, configFlagName, "", configFlagDescription)
	registerBooleanFlag(flags, &options.verbose, verboseFlagName, "", false, verboseFlagDescription)
	flags.BoolVar(&options.showVersion, versionFlagName, false, versionFlagDescription)

	rootCommand.AddCommand(createInitCommand(dependencies))
	rootCommand.InitDefaultHelpCmd()
	rootCommand.InitDefaultCompletionCmd()
	return rootCommand
}

// resolveCrawlSettings merges explicit flags, configuration files and defaults,
// in that order of precedence. A positional path overrides --root-folder.
func resolveCrawlSettings(command *cobra.Command, options crawlOptions, arguments []string, dependencies applicationDependencies) (crawlSettings, error) {
	loaded, loadError := config.LoadApplicationConfiguration(config.LoadOptions{
		WorkingDirectory: dependencies.workingDirectory,
		ExplicitFilePath: options.configPath,
	})
	if loadError != nil {
		return crawlSettings{}, fmt.Errorf(errorLoadConfigurationFormat, loadError)
	}
	configured := loaded.Crawl
	flags := command.Flags()

	settings := crawlSettings{
		rootFolder: options.rootFolder,
		maxDepth:   options.maxDepth,
		maxTime:    options.maxTime,
		printTree:  options.printTree,
		format:     options.format,
		copyOutput: options.copyOutput,
	}
	if !flags.Changed(rootFolderFlagName) && configured.RootFolder != "" {
		settings.rootFolder = configured.RootFolder
	}
	if !flags.Changed(maxDepthFlagName) && configured.MaxDepth != nil {
		settings.maxDepth = *configured.MaxDepth
	}
	if !flags.Changed(maxTimeFlagName) && configured.MaxTime != nil {
		settings.maxTime = *configured.MaxTime
	}
	if !flags.Changed(printTreeFlagName) && configured.PrintTree != nil {
		settings.printTree = *configured.PrintTree
	}
	if !flags.Changed(formatFlagName) && configured.Format != "" {
		settings.format = configured.Format
	}
	if !flags.Changed(copyFlagName) && configured.Copy != nil {
		settings.copyOutput = *configured.Copy
	}
	if len(arguments) == 1 {
		settings.rootFolder = arguments[0]
	}
	if settings.rootFolder == "" {
		homeDirectory, homeError := os.UserHomeDir()
		if homeError != nil {
			return crawlSettings{}, fmt.Errorf(errorHomeDirectoryFormat, homeError)
		}
		settings.rootFolder = homeDirectory
	}

	settings.format = strings.ToLower(settings.format)
	if !isSupportedFormat(settings.format) {
		return crawlSettings{}, fmt.Errorf(invalidFormatMessage, settings.format)
	}
	if settings.maxDepth < 0 {
		return crawlSettings{}, fmt.Errorf(invalidMaxDepthMessage, settings.maxDepth)
	}
	if settings.maxTime < 0 {
		return crawlSettings{}, fmt.Errorf(invalidMaxTimeMessage, settings.maxTime)
	}

	dependencies.logger.Debug(logMessageConfigurationLoaded,
		zap.String("root", settings.rootFolder),
		zap.Int("max_depth", settings.maxDepth),
		zap.Float64("max_time", settings.maxTime),
		zap.String("format", settings.format),
	)
	return settings, nil
}

// runCrawl validates the root, runs the crawler and renders the result.
func runCrawl(command *cobra.Command, settings crawlSettings, dependencies applicationDependencies) error {
	if validationError := crawler.ValidateRoot(dependencies.fileSystem, settings.rootFolder); validationError != nil {
		return validationError
	}

	stdout := command.OutOrStdout()
	if settings.format == types.FormatRaw {
		output.WriteCrawlHeader(stdout, settings.rootFolder, settings.maxDepth)
	}

	dependencies.logger.Debug(logMessageCrawlStarted, zap.String("root", settings.rootFolder))
	result := crawler.New(crawler.Options{
		MaxDepth:    settings.maxDepth,
		MaxDuration: utils.SecondsToDuration(settings.maxTime),
		Lister:      crawler.NewFilesystemLister(dependencies.fileSystem),
		Clock:       dependencies.clock,
		Logger:      dependencies.logger,
	}).Run(settings.rootFolder)
	dependencies.logger.Debug(logMessageCrawlFinished,
		zap.String("run_id", result.RunID.String()),
		zap.Stringer("status", result.Status),
		zap.Int("edges", result.Root.DescendantCount()),
		zap.Int("list_errors", result.ListErrors),
		zap.Duration("elapsed", result.Elapsed),
	)

	rendered, renderError := renderResult(settings, result)
	if renderError != nil {
		return renderError
	}
	if _, writeError := fmt.Fprint(stdout, rendered); writeError != nil {
		return writeError
	}
	if settings.copyOutput {
		if copyError := dependencies.copier.Copy(rendered); copyError != nil {
			return fmt.Errorf(errorCopyOutputFormat, copyError)
		}
	}
	return nil
}

func renderResult(settings crawlSettings, result crawler.Result) (string, error) {
	if settings.format == types.FormatRaw {
		var buffer bytes.Buffer
		if settings.printTree {
			output.WriteTreeRaw(&buffer, result.Root)
		}
		output.WriteReport(&buffer, result)
		return buffer.String(), nil
	}
	document := output.BuildDocument(result, settings.printTree)
	rendered, renderError := output.RenderDocument(settings.format, document)
	if renderError != nil {
		return "", fmt.Errorf(errorRenderDocumentFormat, settings.format, renderError)
	}
	return rendered + "\n", nil
}
