package common

import (
	"flag"
	"strings"
	"time"
)

type Mode string

const (
	ModeNormalize Mode = "normalize"
	ModeText      Mode = "text"
	ModeLabels    Mode = "labels"
	ModeIndex     Mode = "index"
)

type stringList []string

func (s *stringList) String() string {
	return strings.Join(*s, ",")
}

func (s *stringList) Set(value string) error {
	*s = append(*s, value)
	return nil
}

type Params struct {
	mode                Mode
	logLevel            string
	mediaDb             string
	roots               []string
	pixelFormat         string
	credentials         string
	confidenceThreshold float64
	maxLabels           int
	maxUploadDimension  int
	timeout             time.Duration
	out                 string
	eventQueueSize      int
	references          []string
}

func NewEmptyParams() *Params {
	return &Params{
		mode:                ModeNormalize,
		logLevel:            "INFO",
		mediaDb:             "",
		roots:               []string{},
		pixelFormat:         "rgb565",
		credentials:         "",
		confidenceThreshold: 0.0,
		maxLabels:           10,
		maxUploadDimension:  2048,
		timeout:             30 * time.Second,
		out:                 "",
		eventQueueSize:      100,
		references:          []string{},
	}
}

func ParseParams() *Params {
	return ParseParamsFrom(flag.CommandLine, nil)
}

// ParseParamsFrom parses the given arguments, or os.Args when arguments is nil
func ParseParamsFrom(flagSet *flag.FlagSet, arguments []string) *Params {
	defaults := NewEmptyParams()
	roots := stringList{}

	mode := flagSet.String("mode", string(defaults.mode), "What to do with the images: normalize, text, labels, index")
	logLevel := flagSet.String("logLevel", defaults.logLevel, "Log level: ERROR, WARN, INFO, DEBUG, Trace")
	mediaDb := flagSet.String("mediaDb", defaults.mediaDb, "SQLite media index used to resolve content:// references")
	flagSet.Var(&roots, "root", "Directory images may be read from. Can be repeated. Empty allows any readable path")
	pixelFormat := flagSet.String("pixelFormat", defaults.pixelFormat, "Pixel format of decoded images: rgb565, rgba8888")
	credentials := flagSet.String("credentials", defaults.credentials, "Google Cloud credentials file for Cloud Vision")
	confidenceThreshold := flagSet.Float64("confidenceThreshold", defaults.confidenceThreshold, "Minimum label confidence between 0 and 1")
	maxLabels := flagSet.Int("maxLabels", defaults.maxLabels, "Maximum number of labels returned")
	maxUploadDimension := flagSet.Int("maxUploadDimension", defaults.maxUploadDimension, "Images are scaled down to fit this size before upload")
	timeout := flagSet.Duration("timeout", defaults.timeout, "Timeout for a single recognition")
	out := flagSet.String("out", defaults.out, "Output file or directory for normalized images")
	eventQueueSize := flagSet.Int("eventQueueSize", defaults.eventQueueSize, "Event bus queue size")

	if arguments == nil {
		flag.Parse()
	} else {
		_ = flagSet.Parse(arguments)
	}

	return &Params{
		mode:                Mode(strings.ToLower(*mode)),
		logLevel:            *logLevel,
		mediaDb:             *mediaDb,
		roots:               roots,
		pixelFormat:         *pixelFormat,
		credentials:         *credentials,
		confidenceThreshold: *confidenceThreshold,
		maxLabels:           *maxLabels,
		maxUploadDimension:  *maxUploadDimension,
		timeout:             *timeout,
		out:                 *out,
		eventQueueSize:      *eventQueueSize,
		references:          flagSet.Args(),
	}
}

func (s *Params) Mode() Mode {
	return s.mode
}

func (s *Params) LogLevel() string {
	return s.logLevel
}

func (s *Params) MediaDb() string {
	return s.mediaDb
}

func (s *Params) Roots() []string {
	return s.roots
}

func (s *Params) PixelFormat() string {
	return s.pixelFormat
}

func (s *Params) Credentials() string {
	return s.credentials
}

func (s *Params) ConfidenceThreshold() float32 {
	return float32(s.confidenceThreshold)
}

func (s *Params) MaxLabels() int {
	return s.maxLabels
}

func (s *Params) MaxUploadDimension() int {
	return s.maxUploadDimension
}

func (s *Params) Timeout() time.Duration {
	return s.timeout
}

func (s *Params) Out() string {
	return s.out
}

func (s *Params) EventQueueSize() int {
	return s.eventQueueSize
}

func (s *Params) References() []string {
	return s.references
}
