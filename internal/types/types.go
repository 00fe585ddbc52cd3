// Package types defines every cross‑package data structure used by the structree CLI.
package types

const (
	// DefaultRootPath is the directory rendered when no path argument is given.
	DefaultRootPath = "."

	// DefaultCommentColumn is the column comments are right-aligned to.
	DefaultCommentColumn = 35
)

// Entry is one child of a directory listing. It lives for a single render pass.
type Entry struct {
	Name        string
	Path        string
	IsDirectory bool
}

// ValidatedPath is an absolute input path that already passed existence checks.
type ValidatedPath struct {
	AbsolutePath string
	IsDir        bool
}
