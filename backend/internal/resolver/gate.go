package resolver

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"vincit.fi/imageli/api"
	"vincit.fi/imageli/api/apitype"
)

// RootGate allows reading files under the configured roots. Without roots
// every path is allowed as long as the process may read it.
type RootGate struct {
	roots []string

	api.PermissionGate
}

func NewRootGate(roots []string) *RootGate {
	cleaned := make([]string, 0, len(roots))
	for _, root := range roots {
		if absolute, err := filepath.Abs(root); err == nil {
			cleaned = append(cleaned, absolute)
		}
	}
	return &RootGate{roots: cleaned}
}

// Check fails with ErrPermissionDenied for paths outside the roots or files
// that can't be opened for reading. Missing files pass so that decoding
// reports them.
func (s *RootGate) Check(path string) error {
	absolute, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("%w: %s", apitype.ErrPermissionDenied, err)
	}

	if !s.isUnderRoot(absolute) {
		return fmt.Errorf("%w: '%s' is outside of allowed directories", apitype.ErrPermissionDenied, absolute)
	}

	file, err := os.Open(absolute)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return fmt.Errorf("%w: %s", apitype.ErrPermissionDenied, err)
		}
		return nil
	}
	return file.Close()
}

func (s *RootGate) isUnderRoot(path string) bool {
	if len(s.roots) == 0 {
		return true
	}
	for _, root := range s.roots {
		if relative, err := filepath.Rel(root, path); err == nil &&
			relative != ".." && !strings.HasPrefix(relative, ".."+string(filepath.Separator)) {
			return true
		}
	}
	return false
}
