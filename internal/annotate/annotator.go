// Package annotate maps directory entries to a display glyph and a short
// descriptive comment using static lookup tables.
package annotate

import (
	"path/filepath"
	"strings"
)

// Tables groups the lookup data an Annotator reads from. Folder and extension
// keys are lower case; file name keys are exact.
type Tables struct {
	FolderGlyphs      map[string]string
	FileNameGlyphs    map[string]string
	ExtensionGlyphs   map[string]string
	NameComments      map[string]string
	ExtensionComments map[string]string
}

// DefaultTables returns a copy of the built-in lookup tables.
func DefaultTables() Tables {
	return Tables{
		FolderGlyphs:      copyTable(folderGlyphs),
		FileNameGlyphs:    copyTable(fileNameGlyphs),
		ExtensionGlyphs:   copyTable(extensionGlyphs),
		NameComments:      copyTable(nameComments),
		ExtensionComments: copyTable(extensionComments),
	}
}

// Annotator resolves glyphs and comments. It never mutates its tables.
type Annotator struct {
	tables Tables
}

// New constructs an Annotator over the provided tables.
func New(tables Tables) *Annotator {
	return &Annotator{tables: tables}
}

// Default constructs an Annotator over the built-in tables.
func Default() *Annotator {
	return New(Tables{
		FolderGlyphs:      folderGlyphs,
		FileNameGlyphs:    fileNameGlyphs,
		ExtensionGlyphs:   extensionGlyphs,
		NameComments:      nameComments,
		ExtensionComments: extensionComments,
	})
}

// Glyph returns the display glyph for the entry at path. Directories are looked
// up by lower-cased base name; files by exact base name, then by lower-cased
// extension. The result is never empty.
func (annotator *Annotator) Glyph(path string, isDirectory bool) string {
	entryName := filepath.Base(path)
	if isDirectory {
		if glyph, found := annotator.tables.FolderGlyphs[strings.ToLower(entryName)]; found {
			return glyph
		}
		return DefaultFolderGlyph
	}
	if glyph, found := annotator.tables.FileNameGlyphs[entryName]; found {
		return glyph
	}
	if glyph, found := annotator.tables.ExtensionGlyphs[strings.ToLower(Extension(entryName))]; found {
		return glyph
	}
	return DefaultFileGlyph
}

// Comment returns the description for the entry at path, or "" when none is
// known. Exact names win for files and directories alike; only files fall back
// to the extension table, so a directory can carry a custom glyph and still
// have no comment.
func (annotator *Annotator) Comment(path string, isDirectory bool) string {
	entryName := filepath.Base(path)
	if comment, found := annotator.tables.NameComments[entryName]; found {
		return comment
	}
	if isDirectory {
		return ""
	}
	return annotator.tables.ExtensionComments[strings.ToLower(Extension(entryName))]
}

// KnownAnnotationCount is the number of file name and folder glyph entries.
func (annotator *Annotator) KnownAnnotationCount() int {
	return len(annotator.tables.FileNameGlyphs) + len(annotator.tables.FolderGlyphs)
}

// Extension returns the extension of name including its dot. Leading dots do
// not start an extension, so ".env" has none while ".env.local" has ".local".
func Extension(name string) string {
	trimmedName := strings.TrimLeft(name, ".")
	dotIndex := strings.LastIndex(trimmedName, ".")
	if dotIndex < 0 {
		return ""
	}
	return trimmedName[dotIndex:]
}

func copyTable(source map[string]string) map[string]string {
	copied := make(map[string]string, len(source))
	for key, value := range source {
		copied[key] = value
	}
	return copied
}
