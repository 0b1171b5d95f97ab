package catalog

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrOutOfRange         = errors.New("cursor exhausted")
	ErrListenerFailed     = errors.New("listener failed")
	ErrUnknownSortField   = errors.New("unknown sort field")
	ErrUnsupportedVersion = errors.New("unsupported book list version")
)

// ListenerFailure describes one listener that failed while being notified.
type ListenerFailure struct {
	Index int
	Err   error
}

// NotifyError is returned by Add when the item was added but one or more
// listeners failed. Every other listener was still notified.
type NotifyError struct {
	Item     *Item
	Failures []ListenerFailure
}

func (e *NotifyError) Error() string {
	msgs := make([]string, len(e.Failures))
	for i, f := range e.Failures {
		msgs[i] = fmt.Sprintf("listener %d: %v", f.Index, f.Err)
	}
	return fmt.Sprintf("%d listener(s) failed for %q: %s",
		len(e.Failures), e.Item.Name(), strings.Join(msgs, "; "))
}

func (e *NotifyError) Is(target error) bool {
	return target == ErrListenerFailed
}

func (e *NotifyError) Unwrap() []error {
	errs := make([]error, len(e.Failures))
	for i, f := range e.Failures {
		errs[i] = f.Err
	}
	return errs
}
