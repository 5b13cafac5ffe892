package util

import (
	"fmt"
	"github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/tiff"
	"sort"
	"strings"
)

// ExifTagCollector gathers printable EXIF tags, mostly for tracing what a
// camera wrote into a file.
type ExifTagCollector struct {
	values map[string]string

	exif.Walker
}

func NewExifTagCollector() *ExifTagCollector {
	return &ExifTagCollector{
		values: map[string]string{},
	}
}

func (s *ExifTagCollector) Walk(name exif.FieldName, tag *tiff.Tag) error {
	if tag == nil {
		return nil
	}
	if tagValue := strings.Trim(tag.String(), " \t\""); tagValue != "" {
		s.values[string(name)] = tagValue
	}
	return nil
}

func (s *ExifTagCollector) Get(name exif.FieldName) (string, bool) {
	value, ok := s.values[string(name)]
	return value, ok
}

func (s *ExifTagCollector) Len() int {
	return len(s.values)
}

// String lists the tags as name=value sorted by name
func (s *ExifTagCollector) String() string {
	names := make([]string, 0, len(s.values))
	for name := range s.values {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s=%s", name, s.values[name])
	}
	return strings.Join(parts, ", ")
}
