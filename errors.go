package xfacade

import (
	stderrors "errors"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidLevel is returned for level values outside TRACE..ERROR.
	ErrInvalidLevel = errors.New("xfacade: invalid level")

	// ErrUnsupported is returned by operations an implementation permanently
	// does not provide. It also matches errors.ErrUnsupported.
	ErrUnsupported = unsupported{}

	// ErrNoBackend is returned by Builder.Build without a backend factory.
	ErrNoBackend = errors.New("xfacade: no backend factory configured")
)

type unsupported struct{}

func (unsupported) Error() string { return "xfacade: operation not supported" }

func (unsupported) Is(target error) bool { return target == stderrors.ErrUnsupported }
