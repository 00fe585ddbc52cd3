// Package tree renders an annotated directory tree as text.
package tree

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/temirov/structree/internal/annotate"
	"github.com/temirov/structree/internal/ignore"
	"github.com/temirov/structree/internal/types"
	"github.com/temirov/structree/internal/utils"
)

const (
	treeBranchConnector = "├── "
	treeLastConnector   = "└── "
	treeBranchPadding   = "│   "
	treeLastPadding     = "    "

	directorySuffix = "/"
	commentMarker   = " # "

	// warningSkipSubdirMessage is logged when a nested directory cannot be listed.
	warningSkipSubdirMessage = "skipping unreadable directory"
	// warningStatPathMessage is logged when an entry cannot be classified.
	warningStatPathMessage = "skipping entry that cannot be inspected"
	// warningCycleMessage is logged when a directory resolves to one of its ancestors.
	warningCycleMessage = "not descending into directory cycle"
	// debugIgnoredMessage is logged for every filtered entry.
	debugIgnoredMessage = "ignored entry"

	// errorAbsolutePathFormat is used when the absolute path cannot be determined.
	errorAbsolutePathFormat = "getting absolute path for %s: %w"
	// errorReadDirectoryFormat is used when a directory cannot be read.
	errorReadDirectoryFormat = "reading directory %s: %w"
)

// Sibling sort priorities, lowest first.
const (
	priorityImportantFolder = iota
	priorityFolder
	priorityImportantDoc
	priorityMainConfig
	priorityOther
)

var (
	importantFolders = map[string]struct{}{".github": {}, ".githooks": {}, "src": {}, "lib": {}, "public": {}, "docs": {}}
	importantDocs    = map[string]struct{}{"README.md": {}, "LICENSE": {}, "CHANGELOG.md": {}}
	mainConfigs      = map[string]struct{}{"package.json": {}, "tsconfig.json": {}, "Dockerfile": {}}
)

// Builder renders directory trees. It is not safe for concurrent use.
type Builder struct {
	Filter        *ignore.Filter
	Annotator     *annotate.Annotator
	Logger        *zap.Logger
	CommentColumn int

	collator      *collate.Collator
	readDirectory func(string) ([]os.DirEntry, error)
}

// NewBuilder constructs a Builder. A nil logger discards diagnostics and a
// non-positive column falls back to types.DefaultCommentColumn.
func NewBuilder(filter *ignore.Filter, annotator *annotate.Annotator, logger *zap.Logger, commentColumn int) *Builder {
	if logger == nil {
		logger = zap.NewNop()
	}
	if annotator == nil {
		annotator = annotate.Default()
	}
	if commentColumn <= 0 {
		commentColumn = types.DefaultCommentColumn
	}
	return &Builder{
		Filter:        filter,
		Annotator:     annotator,
		Logger:        logger,
		CommentColumn: commentColumn,
		collator:      collate.New(language.Und),
		readDirectory: os.ReadDir,
	}
}

// BuildTree renders every descendant of directoryPath, one line per entry,
// each line starting with prefix. Listing failures, including one on
// directoryPath itself, are logged and yield no lines for that subtree.
// isLast is accepted for callers that track sibling position; the prefix
// already encodes it.
func (builder *Builder) BuildTree(directoryPath string, prefix string, isLast bool) string {
	absoluteDirectoryPath, absolutePathError := filepath.Abs(directoryPath)
	if absolutePathError != nil {
		builder.logger().Warn(warningSkipSubdirMessage, zap.String("path", directoryPath), zap.Error(absolutePathError))
		return ""
	}
	var output strings.Builder
	ancestors := map[string]struct{}{}
	builder.enter(absoluteDirectoryPath, ancestors)
	builder.renderDirectory(&output, absoluteDirectoryPath, absoluteDirectoryPath, prefix, ancestors)
	return output.String()
}

// BuildRootTree renders the tree below rootPath. Unlike BuildTree, failing to
// list rootPath itself is returned as an error; nested failures are still
// logged and skipped.
func (builder *Builder) BuildRootTree(rootPath string) (string, error) {
	absoluteRootPath, absolutePathError := filepath.Abs(rootPath)
	if absolutePathError != nil {
		return "", fmt.Errorf(errorAbsolutePathFormat, rootPath, absolutePathError)
	}
	entries, readError := builder.readEntries(absoluteRootPath, absoluteRootPath)
	if readError != nil {
		return "", readError
	}
	var output strings.Builder
	ancestors := map[string]struct{}{}
	builder.enter(absoluteRootPath, ancestors)
	builder.renderEntries(&output, entries, absoluteRootPath, "", ancestors)
	return output.String(), nil
}

// FormatLine renders "<glyph> <name>[/]" followed, when comment is not empty,
// by padding up to column and " # <comment>". Padding is at least one space
// and is measured in runes of the visible name, trailing slash included.
func FormatLine(glyph string, name string, isDirectory bool, comment string, column int) string {
	var line strings.Builder
	line.WriteString(glyph)
	line.WriteString(" ")
	line.WriteString(name)
	visibleLength := utf8.RuneCountInString(name)
	if isDirectory {
		line.WriteString(directorySuffix)
		visibleLength++
	}
	if comment != "" {
		line.WriteString(strings.Repeat(" ", max(1, column-visibleLength)))
		line.WriteString(commentMarker)
		line.WriteString(comment)
	}
	return line.String()
}

func (builder *Builder) renderDirectory(output *strings.Builder, directoryPath string, rootPath string, prefix string, ancestors map[string]struct{}) {
	entries, readError := builder.readEntries(directoryPath, rootPath)
	if readError != nil {
		builder.logger().Warn(warningSkipSubdirMessage, zap.String("path", directoryPath), zap.Error(readError))
		return
	}
	builder.renderEntries(output, entries, rootPath, prefix, ancestors)
}

func (builder *Builder) renderEntries(output *strings.Builder, entries []types.Entry, rootPath string, prefix string, ancestors map[string]struct{}) {
	for index, entry := range entries {
		isLastEntry := index == len(entries)-1
		connector := treeBranchConnector
		childPrefix := prefix + treeBranchPadding
		if isLastEntry {
			connector = treeLastConnector
			childPrefix = prefix + treeLastPadding
		}

		output.WriteString(prefix)
		output.WriteString(connector)
		output.WriteString(FormatLine(
			builder.annotator().Glyph(entry.Path, entry.IsDirectory),
			entry.Name,
			entry.IsDirectory,
			builder.annotator().Comment(entry.Path, entry.IsDirectory),
			builder.CommentColumn,
		))
		output.WriteString("\n")

		if !entry.IsDirectory {
			continue
		}
		realPath, entered := builder.enter(entry.Path, ancestors)
		if !entered {
			builder.logger().Warn(warningCycleMessage, zap.String("path", entry.Path), zap.String("target", realPath))
			continue
		}
		builder.renderDirectory(output, entry.Path, rootPath, childPrefix, ancestors)
		delete(ancestors, realPath)
	}
}

// readEntries lists directoryPath, drops ignored children, classifies the rest
// through os.Stat (following symlinks), and returns them in display order.
// Type-independent rules are checked before the stat so ignored entries are
// never inspected; directory-only rules are checked after it.
func (builder *Builder) readEntries(directoryPath string, rootPath string) ([]types.Entry, error) {
	readDirectory := builder.readDirectory
	if readDirectory == nil {
		readDirectory = os.ReadDir
	}
	directoryEntries, readDirectoryError := readDirectory(directoryPath)
	if readDirectoryError != nil {
		return nil, fmt.Errorf(errorReadDirectoryFormat, directoryPath, readDirectoryError)
	}

	entries := make([]types.Entry, 0, len(directoryEntries))
	for _, directoryEntry := range directoryEntries {
		childPath := filepath.Join(directoryPath, directoryEntry.Name())
		relativeChildPath := utils.RelativePathOrSelf(childPath, rootPath)
		if builder.Filter.ShouldIgnorePath(relativeChildPath) {
			builder.logger().Debug(debugIgnoredMessage, zap.String("path", relativeChildPath))
			continue
		}
		childInfo, statError := os.Stat(childPath)
		if statError != nil {
			builder.logger().Warn(warningStatPathMessage, zap.String("path", childPath), zap.Error(statError))
			continue
		}
		if builder.Filter.ShouldIgnoreEntry(relativeChildPath, childInfo.IsDir()) {
			builder.logger().Debug(debugIgnoredMessage, zap.String("path", relativeChildPath))
			continue
		}
		entries = append(entries, types.Entry{
			Name:        directoryEntry.Name(),
			Path:        childPath,
			IsDirectory: childInfo.IsDir(),
		})
	}
	builder.sortEntries(entries)
	return entries, nil
}

func (builder *Builder) sortEntries(entries []types.Entry) {
	if builder.collator == nil {
		builder.collator = collate.New(language.Und)
	}
	sort.SliceStable(entries, func(leftIndex, rightIndex int) bool {
		left, right := entries[leftIndex], entries[rightIndex]
		leftPriority, rightPriority := sortPriority(left), sortPriority(right)
		if leftPriority != rightPriority {
			return leftPriority < rightPriority
		}
		if left.IsDirectory != right.IsDirectory {
			return left.IsDirectory
		}
		return builder.collator.CompareString(left.Name, right.Name) < 0
	})
}

func sortPriority(entry types.Entry) int {
	if entry.IsDirectory {
		if _, important := importantFolders[entry.Name]; important {
			return priorityImportantFolder
		}
		return priorityFolder
	}
	if _, important := importantDocs[entry.Name]; important {
		return priorityImportantDoc
	}
	if _, isMainConfig := mainConfigs[entry.Name]; isMainConfig {
		return priorityMainConfig
	}
	return priorityOther
}

// enter records the real path of directoryPath among the ancestors of the
// current walk. It reports false when that real path is already an ancestor.
func (builder *Builder) enter(directoryPath string, ancestors map[string]struct{}) (string, bool) {
	realPath, resolveError := filepath.EvalSymlinks(directoryPath)
	if resolveError != nil {
		realPath = filepath.Clean(directoryPath)
	}
	if _, seen := ancestors[realPath]; seen {
		return realPath, false
	}
	ancestors[realPath] = struct{}{}
	return realPath, true
}

func (builder *Builder) annotator() *annotate.Annotator {
	if builder.Annotator == nil {
		return annotate.Default()
	}
	return builder.Annotator
}

func (builder *Builder) logger() *zap.Logger {
	if builder.Logger == nil {
		return zap.NewNop()
	}
	return builder.Logger
}
