// Package clipboard copies rendered documents to the system clipboard.
package clipboard

import (
	"errors"

	"github.com/atotto/clipboard"
)

// ErrUnavailable is returned when no clipboard utility exists on this system.
var ErrUnavailable = errors.New("system clipboard is unavailable")

// Copier copies textual data to the system clipboard.
type Copier interface {
	Copy(text string) error
}

// Service implements Copier using github.com/atotto/clipboard.
type Service struct {
	unsupported bool
	writeAll    func(string) error
}

// NewService constructs a Service bound to the system clipboard.
func NewService() *Service {
	return &Service{
		unsupported: clipboard.Unsupported,
		writeAll:    clipboard.WriteAll,
	}
}

// Copy writes text to the system clipboard.
func (service *Service) Copy(text string) error {
	if service.unsupported {
		return ErrUnavailable
	}
	return service.writeAll(text)
}

var _ Copier = (*Service)(nil)
