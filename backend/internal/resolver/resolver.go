package resolver

import (
	"fmt"
	"net/url"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"vincit.fi/imageli/api"
	"vincit.fi/imageli/api/apitype"
	"vincit.fi/imageli/common/logger"
)

const (
	schemeFile    = "file"
	schemeContent = "content"
)

type MediaLookup interface {
	GetPathById(id int64) (string, error)
}

// Resolver turns plain paths, file:// and content:// references into
// local paths. Unresolvable references are always errors.
type Resolver struct {
	media MediaLookup
	gate  api.PermissionGate

	api.PathResolver
}

// NewResolver accepts a nil media lookup, in which case content references
// can't be resolved.
func NewResolver(media MediaLookup, gate api.PermissionGate) *Resolver {
	return &Resolver{
		media: media,
		gate:  gate,
	}
}

func (s *Resolver) Resolve(reference string) (string, error) {
	resolved, err := s.resolve(strings.TrimSpace(reference))
	if err != nil {
		logger.Warn.Printf("Could not resolve '%s': %s", reference, err)
		return "", err
	}

	if s.gate != nil {
		if err := s.gate.Check(resolved); err != nil {
			return "", err
		}
	}
	logger.Debug.Printf("Resolved '%s' to '%s'", reference, resolved)
	return resolved, nil
}

func (s *Resolver) resolve(reference string) (string, error) {
	if reference == "" {
		return "", fmt.Errorf("%w: empty reference", apitype.ErrUnresolvedReference)
	}

	scheme, rest, hasScheme := strings.Cut(reference, "://")
	if !hasScheme {
		return filepath.Abs(filepath.Clean(reference))
	}

	parsed, err := url.Parse(reference)
	if err != nil {
		return "", fmt.Errorf("%w: %s", apitype.ErrUnresolvedReference, err)
	}

	switch strings.ToLower(scheme) {
	case schemeFile:
		if parsed.Path == "" {
			return "", fmt.Errorf("%w: no path in '%s'", apitype.ErrUnresolvedReference, reference)
		}
		return filepath.Clean(filepath.FromSlash(parsed.Path)), nil
	case schemeContent:
		return s.resolveContent(parsed, rest)
	default:
		return "", fmt.Errorf("%w: unsupported scheme '%s'", apitype.ErrUnresolvedReference, scheme)
	}
}

// content://<authority>/.../<id>, the last segment is the media id
func (s *Resolver) resolveContent(parsed *url.URL, rest string) (string, error) {
	if s.media == nil {
		return "", fmt.Errorf("%w: no media index for '%s'", apitype.ErrUnresolvedReference, rest)
	}

	id, err := strconv.ParseInt(path.Base(parsed.Path), 10, 64)
	if err != nil {
		return "", fmt.Errorf("%w: no media id in '%s'", apitype.ErrUnresolvedReference, rest)
	}

	resolved, err := s.media.GetPathById(id)
	if err != nil {
		return "", fmt.Errorf("%w: %w", apitype.ErrUnresolvedReference, err)
	}
	return resolved, nil
}

// ContentReference builds the reference that resolves to the media id
func ContentReference(id int64) string {
	return fmt.Sprintf("content://media/external/images/media/%d", id)
}
