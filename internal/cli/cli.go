// Package cli provides the command line interface.
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/temirov/structree/internal/annotate"
	"github.com/temirov/structree/internal/config"
	"github.com/temirov/structree/internal/ignore"
	"github.com/temirov/structree/internal/output"
	"github.com/temirov/structree/internal/services/clipboard"
	"github.com/temirov/structree/internal/tree"
	"github.com/temirov/structree/internal/types"
	"github.com/temirov/structree/internal/utils"
)

const (
	exclusionFlagName       = "e"
	configFlagName          = "config"
	outputDirectoryFlagName = "output-dir"
	noFileFlagName          = "no-file"
	copyFlagName            = "copy"
	columnFlagName          = "column"
	noIgnoreFileFlagName    = "no-ignore-file"
	verboseFlagName         = "verbose"
	versionFlagName         = "version"
	globalFlagName          = "global"
	forceFlagName           = "force"

	versionTemplate      = "structree version: %s\n"
	rootUse              = "structree [path]"
	rootShortDescription = "render an annotated project file structure"
	rootLongDescription  = `structree walks a directory, skips dependency, build, and editor artifacts,
and renders the remaining entries as a tree where every line carries an emoji and,
when the name is recognized, a short description.
The tree is printed and saved to file-structure-<timestamp>.md in the output directory.`
	rootUsageExample = `  # Document the current directory
  structree

  # Document ./service without writing a file and copy the result
  structree --no-file --copy ./service

  # Exclude generated code and align comments at column 50
  structree -e generated -e "*.pb.go" --column 50 .`

	initUse              = "init"
	initShortDescription = "write a starter configuration file"
	initLongDescription  = `Write the default configuration to ./` + utils.ConfigFileName + `, or with --global to
~/` + utils.GlobalConfigDirectoryName + `/` + utils.GlobalConfigFileName + `. Existing files are kept unless --force is given.`

	exclusionFlagDescription       = "exclude entries by name, glob, or root-relative path (repeatable)"
	configFlagDescription          = "configuration file to use instead of ./" + utils.ConfigFileName
	outputDirectoryFlagDescription = "directory receiving the Markdown file (default: working directory)"
	noFileFlagDescription          = "print the tree without writing the Markdown file"
	copyFlagDescription            = "copy the Markdown document to the clipboard"
	columnFlagDescription          = "column at which comments are aligned"
	noIgnoreFileFlagDescription    = "do not read " + utils.IgnoreFileName + " from the root directory"
	verboseFlagDescription         = "log ignored entries"
	versionFlagDescription         = "display application version"
	globalFlagDescription          = "write the global configuration file"
	forceFlagDescription           = "overwrite an existing configuration file"

	initCompletedFormat = "Configuration written to %s\n"

	// warningClipboardMessage is logged when the document cannot be copied.
	warningClipboardMessage = "failed to copy document to clipboard"

	// errorLoadConfigurationFormat reports an unusable configuration.
	errorLoadConfigurationFormat = "loading configuration: %w"
	// errorInvalidColumnFormat reports a non-positive --column value.
	errorInvalidColumnFormat = "--%s must be positive, got %d"
	// errorAbsolutePathFormat reports failure to resolve an absolute path.
	errorAbsolutePathFormat = "abs failed for '%s': %w"
	// errorPathMissingFormat reports a missing path.
	errorPathMissingFormat = "path '%s' does not exist"
	// errorStatFormat reports failure to retrieve file statistics.
	errorStatFormat = "stat failed for '%s': %w"
	// errorNotDirectoryFormat reports a root that is not a directory.
	errorNotDirectoryFormat = "path '%s' is not a directory"
	// errorExclusionsFormat reports exclusion patterns that cannot be compiled.
	errorExclusionsFormat = "applying exclusions: %w"
)

// Dependencies holds the collaborators a run uses besides its flags. Empty
// directories fall back to the process working directory and user home.
// LogLevel, when set, is the level Logger filters through; --verbose lowers it
// to debug.
type Dependencies struct {
	Logger           *zap.Logger
	LogLevel         *zap.AtomicLevel
	Copier           clipboard.Copier
	Now              func() time.Time
	WorkingDirectory string
	HomeDirectory    string
}

// rootOptions stores the values of the root command flags.
type rootOptions struct {
	configurationPath string
	exclusionPatterns []string
	outputDirectory   string
	skipFile          bool
	copyDocument      bool
	commentColumn     int
	skipIgnoreFile    bool
	verbose           bool
	showVersion       bool
}

// runSettings is the effective configuration of one run after flags are
// applied over configuration files.
type runSettings struct {
	outputDirectory   string
	writeFile         bool
	copyDocument      bool
	useIgnoreFile     bool
	commentColumn     int
	exclusionPatterns []string
}

// Execute runs the structree application with the process arguments.
// logLevel is the level logger was built with; it may be nil.
func Execute(logger *zap.Logger, logLevel *zap.AtomicLevel) error {
	dependencies := Dependencies{
		Logger:   logger,
		LogLevel: logLevel,
		Copier:   clipboard.NewService(),
		Now:      time.Now,
	}
	return executeWithArguments(dependencies, os.Args[1:])
}

func executeWithArguments(dependencies Dependencies, arguments []string) error {
	toggles := toggleSet{}
	rootCommand := createRootCommand(dependencies, toggles)
	rootCommand.SetArgs(toggles.attachLiterals(arguments))
	return rootCommand.Execute()
}

// createRootCommand builds the root Cobra command.
// Toggle flags of the whole command tree are recorded in toggles.
func createRootCommand(dependencies Dependencies, toggles toggleSet) *cobra.Command {
	var options rootOptions

	rootCommand := &cobra.Command{
		Use:          rootUse,
		Short:        rootShortDescription,
		Long:         rootLongDescription,
		Example:      rootUsageExample,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			if options.showVersion {
				fmt.Fprintf(command.OutOrStdout(), versionTemplate, utils.GetApplicationVersion())
				return nil
			}
			rootPath := types.DefaultRootPath
			if len(arguments) == 1 {
				rootPath = arguments[0]
			}
			return runStructure(command, dependencies, options, rootPath)
		},
	}

	flagSet := rootCommand.Flags()
	flagSet.StringArrayVarP(&options.exclusionPatterns, exclusionFlagName, exclusionFlagName, nil, exclusionFlagDescription)
	flagSet.StringVar(&options.configurationPath, configFlagName, "", configFlagDescription)
	flagSet.StringVar(&options.outputDirectory, outputDirectoryFlagName, "", outputDirectoryFlagDescription)
	flagSet.IntVar(&options.commentColumn, columnFlagName, types.DefaultCommentColumn, columnFlagDescription)
	toggles.register(flagSet, &options.skipFile, noFileFlagName, noFileFlagDescription)
	toggles.register(flagSet, &options.copyDocument, copyFlagName, copyFlagDescription)
	toggles.register(flagSet, &options.skipIgnoreFile, noIgnoreFileFlagName, noIgnoreFileFlagDescription)
	toggles.register(flagSet, &options.verbose, verboseFlagName, verboseFlagDescription)
	flagSet.BoolVar(&options.showVersion, versionFlagName, false, versionFlagDescription)

	rootCommand.AddCommand(createInitCommand(dependencies, toggles))
	rootCommand.InitDefaultHelpCmd()
	rootCommand.InitDefaultCompletionCmd()
	return rootCommand
}

// createInitCommand returns the init subcommand.
func createInitCommand(dependencies Dependencies, toggles toggleSet) *cobra.Command {
	var writeGlobal bool
	var overwrite bool

	initCommand := &cobra.Command{
		Use:   initUse,
		Short: initShortDescription,
		Long:  initLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			target := config.InitTargetLocal
			if writeGlobal {
				target = config.InitTargetGlobal
			}
			writtenPath, initError := config.InitializeConfiguration(config.InitOptions{
				Target:           target,
				Force:            overwrite,
				WorkingDirectory: dependencies.WorkingDirectory,
				HomeDirectory:    dependencies.HomeDirectory,
			})
			if initError != nil {
				return initError
			}
			fmt.Fprintf(command.OutOrStdout(), initCompletedFormat, writtenPath)
			return nil
		},
	}
	toggles.register(initCommand.Flags(), &writeGlobal, globalFlagName, globalFlagDescription)
	toggles.register(initCommand.Flags(), &overwrite, forceFlagName, forceFlagDescription)
	return initCommand
}

// runStructure renders rootPath, echoes it, and persists or copies the document.
func runStructure(command *cobra.Command, dependencies Dependencies, options rootOptions, rootPath string) error {
	logger := dependencies.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if options.verbose && dependencies.LogLevel != nil {
		dependencies.LogLevel.SetLevel(zapcore.DebugLevel)
	}

	configuration, configurationError := config.LoadApplicationConfiguration(config.LoadOptions{
		WorkingDirectory: dependencies.WorkingDirectory,
		ExplicitFilePath: options.configurationPath,
		HomeDirectory:    dependencies.HomeDirectory,
	})
	if configurationError != nil {
		return fmt.Errorf(errorLoadConfigurationFormat, configurationError)
	}
	settings, settingsError := resolveRunSettings(command.Flags(), options, configuration)
	if settingsError != nil {
		return settingsError
	}

	validatedRoot, validationError := resolveAndValidateRoot(rootPath)
	if validationError != nil {
		return validationError
	}
	exclusionPatterns, exclusionError := config.LoadCombinedExclusionPatterns(validatedRoot.AbsolutePath, settings.exclusionPatterns, settings.useIgnoreFile)
	if exclusionError != nil {
		return exclusionError
	}
	filter, filterError := ignore.Default().WithExclusions(exclusionPatterns...)
	if filterError != nil {
		return fmt.Errorf(errorExclusionsFormat, filterError)
	}

	annotator := annotate.Default()
	builder := tree.NewBuilder(filter, annotator, logger, settings.commentColumn)
	markdownTree, generateError := output.GenerateMarkdownTree(builder, annotator, validatedRoot.AbsolutePath)
	if generateError != nil {
		return generateError
	}

	now := dependencies.Now
	if now == nil {
		now = time.Now
	}
	generatedAt := now()
	standardOutput := command.OutOrStdout()
	output.PrintTree(standardOutput, markdownTree)

	document := output.RenderDocument(markdownTree, generatedAt)
	savedPath := ""
	if settings.writeFile {
		outputDirectory := settings.outputDirectory
		if outputDirectory == "" {
			outputDirectory = dependencies.WorkingDirectory
		}
		writtenPath, writeError := output.WriteDocument(outputDirectory, document, generatedAt)
		if writeError != nil {
			return writeError
		}
		savedPath = writtenPath
	}
	if settings.copyDocument && dependencies.Copier != nil {
		if copyError := dependencies.Copier.Copy(document); copyError != nil {
			logger.Warn(warningClipboardMessage, zap.Error(copyError))
		}
	}
	output.PrintSummary(standardOutput, savedPath, annotator.KnownAnnotationCount())
	return nil
}

// resolveRunSettings applies explicitly set flags over the loaded configuration.
func resolveRunSettings(flagSet *pflag.FlagSet, options rootOptions, configuration config.ApplicationConfiguration) (runSettings, error) {
	settings := runSettings{
		outputDirectory: configuration.OutputDirectory,
		writeFile:       configuration.ShouldWriteFile(),
		copyDocument:    configuration.ShouldCopy(),
		useIgnoreFile:   configuration.ShouldUseIgnoreFile(),
		commentColumn:   types.DefaultCommentColumn,
	}
	if configuration.CommentColumn != nil {
		settings.commentColumn = *configuration.CommentColumn
	}
	if flagSet.Changed(outputDirectoryFlagName) {
		settings.outputDirectory = options.outputDirectory
	}
	if flagSet.Changed(noFileFlagName) {
		settings.writeFile = !options.skipFile
	}
	if flagSet.Changed(copyFlagName) {
		settings.copyDocument = options.copyDocument
	}
	if flagSet.Changed(noIgnoreFileFlagName) {
		settings.useIgnoreFile = !options.skipIgnoreFile
	}
	if flagSet.Changed(columnFlagName) {
		if options.commentColumn <= 0 {
			return runSettings{}, fmt.Errorf(errorInvalidColumnFormat, columnFlagName, options.commentColumn)
		}
		settings.commentColumn = options.commentColumn
	}
	combinedExclusions := append([]string{}, configuration.Exclude...)
	combinedExclusions = append(combinedExclusions, options.exclusionPatterns...)
	settings.exclusionPatterns = utils.DeduplicatePatterns(combinedExclusions)
	return settings, nil
}

// resolveAndValidateRoot converts the input path to absolute form and checks
// that it names an existing directory.
func resolveAndValidateRoot(inputPath string) (types.ValidatedPath, error) {
	absolutePath, absolutePathError := filepath.Abs(inputPath)
	if absolutePathError != nil {
		return types.ValidatedPath{}, fmt.Errorf(errorAbsolutePathFormat, inputPath, absolutePathError)
	}
	cleanPath := filepath.Clean(absolutePath)
	info, fileStatusError := os.Stat(cleanPath)
	if fileStatusError != nil {
		if os.IsNotExist(fileStatusError) {
			return types.ValidatedPath{}, fmt.Errorf(errorPathMissingFormat, inputPath)
		}
		return types.ValidatedPath{}, fmt.Errorf(errorStatFormat, inputPath, fileStatusError)
	}
	if !info.IsDir() {
		return types.ValidatedPath{}, fmt.Errorf(errorNotDirectoryFormat, inputPath)
	}
	return types.ValidatedPath{AbsolutePath: cleanPath, IsDir: true}, nil
}
