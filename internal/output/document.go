// Package output assembles the rendered tree into a Markdown document, writes
// it to disk, and echoes it to the terminal.
package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/temirov/structree/internal/annotate"
	"github.com/temirov/structree/internal/tree"
	"github.com/temirov/structree/internal/utils"
)

const (
	documentHeading   = "# 📂 Project File Structure"
	generatedOnFormat = "> Generated automatically on %s"
	documentFooter    = "*Structure generated by structree*"
	horizontalRule    = "---"
	codeFence         = "```"

	outputFilePrefix    = "file-structure-"
	outputFileExtension = ".md"
	outputFileMode      = 0o644

	generationBanner    = "🚀 Generating project file structure..."
	savedPathFormat     = "\n✅ Structure saved to: %s\n"
	annotationCountLine = "📊 Total annotated names: %d\n"

	// errorAbsoluteRootFormat is used when the root path cannot be resolved.
	errorAbsoluteRootFormat = "resolving root path %s: %w"
	// errorBuildTreeFormat is used when the root directory cannot be listed.
	errorBuildTreeFormat = "building tree for %s: %w"
	// errorWriteDocumentFormat is used when the document cannot be written.
	errorWriteDocumentFormat = "writing document %s: %w"
)

// GenerateMarkdownTree renders the root header line followed by the tree below
// rootPath. A nil annotator falls back to the builder's annotator.
func GenerateMarkdownTree(builder *tree.Builder, annotator *annotate.Annotator, rootPath string) (string, error) {
	absoluteRootPath, absolutePathError := filepath.Abs(rootPath)
	if absolutePathError != nil {
		return "", fmt.Errorf(errorAbsoluteRootFormat, rootPath, absolutePathError)
	}
	if annotator == nil {
		annotator = builder.Annotator
	}
	if annotator == nil {
		annotator = annotate.Default()
	}

	treeText, buildError := builder.BuildRootTree(absoluteRootPath)
	if buildError != nil {
		return "", fmt.Errorf(errorBuildTreeFormat, rootPath, buildError)
	}

	var markdown strings.Builder
	markdown.WriteString(tree.FormatLine(
		annotator.Glyph(absoluteRootPath, true),
		filepath.Base(absoluteRootPath),
		true,
		annotator.Comment(absoluteRootPath, true),
		builder.CommentColumn,
	))
	markdown.WriteString("\n")
	markdown.WriteString(treeText)
	return markdown.String(), nil
}

// RenderDocument wraps treeText in the Markdown template stamped with the local
// generation time.
func RenderDocument(treeText string, generatedAt time.Time) string {
	var document strings.Builder
	document.WriteString(documentHeading + "\n\n")
	document.WriteString(fmt.Sprintf(generatedOnFormat, utils.FormatTimestamp(generatedAt)) + "\n\n")
	document.WriteString(codeFence + "\n")
	document.WriteString(treeText + "\n")
	document.WriteString(codeFence + "\n\n")
	document.WriteString(horizontalRule + "\n")
	document.WriteString(documentFooter + "\n")
	return document.String()
}

// OutputFileName returns the file name for a document generated at generatedAt.
func OutputFileName(generatedAt time.Time) string {
	return outputFilePrefix + utils.FormatFileTimestamp(generatedAt) + outputFileExtension
}

// WriteDocument writes content into directory under OutputFileName and returns
// the written path. An existing file with the same name is replaced.
func WriteDocument(directory string, content string, generatedAt time.Time) (string, error) {
	if directory == "" {
		directory = "."
	}
	outputPath := filepath.Join(directory, OutputFileName(generatedAt))
	if writeError := os.WriteFile(outputPath, []byte(content), outputFileMode); writeError != nil {
		return "", fmt.Errorf(errorWriteDocumentFormat, outputPath, writeError)
	}
	return outputPath, nil
}

// PrintTree echoes the banner, a blank line, and the fenced tree.
func PrintTree(writer io.Writer, treeText string) {
	fmt.Fprintln(writer, generationBanner)
	fmt.Fprintln(writer)
	fmt.Fprintln(writer, codeFence)
	fmt.Fprintln(writer, treeText)
	fmt.Fprintln(writer, codeFence)
}

// PrintSummary reports where the document was saved and how many names the
// annotator knows. An empty savedPath omits the saved line.
func PrintSummary(writer io.Writer, savedPath string, knownAnnotations int) {
	if savedPath != "" {
		fmt.Fprintf(writer, savedPathFormat, savedPath)
	}
	fmt.Fprintf(writer, annotationCountLine, knownAnnotations)
}
