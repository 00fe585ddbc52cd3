package tree

import "os"

// SetReadDirectory replaces the directory listing function used by builder.
func SetReadDirectory(builder *Builder, readDirectory func(string) ([]os.DirEntry, error)) {
	builder.readDirectory = readDirectory
}
