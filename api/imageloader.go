package api

import (
	"vincit.fi/imageli/api/apitype"
)

type Normalizer interface {
	Normalize(path string) (*apitype.OrientedImage, error)
}

// PathResolver turns an opaque image reference (plain path, file:// or
// content:// URI) into a local path.
type PathResolver interface {
	Resolve(reference string) (string, error)
}

type PermissionGate interface {
	Check(path string) error
}
