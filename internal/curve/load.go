package curve

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/monorail/internal/logger"
	"github.com/Faultbox/monorail/pkg/formats"
)

// ErrorKind classifies a LoadError.
type ErrorKind int

// Load error kinds.
const (
	// ResourceError means the control point file could not be opened or read.
	ResourceError ErrorKind = iota
	// FormatError means the file contents violate the control point format.
	FormatError
)

// String returns the kind name.
func (k ErrorKind) String() string {
	switch k {
	case ResourceError:
		return "resource"
	case FormatError:
		return "format"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// LoadError reports why a curve set could not be loaded from a file.
type LoadError struct {
	Path string
	Kind ErrorKind
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading curve %s: %s error: %v", e.Path, e.Kind, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// LoadCurveSet reads a control point file and builds a curve set from it.
// Failures are returned as *LoadError.
func LoadCurveSet(path string) (*CurveSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Kind: ResourceError, Err: err}
	}

	cs, err := ParseCurveSet(data)
	if err != nil {
		return nil, &LoadError{Path: path, Kind: FormatError, Err: err}
	}

	logger.Named("curve").Info("loaded control points",
		zap.String("path", path),
		zap.Int("points", cs.Len()),
		zap.Int("segments", cs.Segments()))

	return cs, nil
}

// ParseCurveSet builds a curve set from control point file contents.
func ParseCurveSet(data []byte) (*CurveSet, error) {
	cp, err := formats.ParseControlPoints(data)
	if err != nil {
		return nil, err
	}
	return NewCurveSet(cp.Points)
}
