package diag

import "github.com/cockroachdb/errors"

// Kinds of failure. Errors returned by the containers are marked with one of
// these, test them with errors.Is.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotFound        = errors.New("not found")
	ErrAllocation      = errors.New("allocation failed")
	ErrCorrupted       = errors.New("structure corrupted")
	ErrEmpty           = errors.New("container empty")
	ErrFull            = errors.New("container full")
	ErrVisit           = errors.New("visit function failed")
)

var kinds = []struct {
	err  error
	name string
}{
	{ErrInvalidArgument, "invalid_argument"},
	{ErrNotFound, "not_found"},
	{ErrAllocation, "allocation"},
	{ErrCorrupted, "corrupted"},
	{ErrEmpty, "empty"},
	{ErrFull, "full"},
	{ErrVisit, "visit"},
}

// Kind names the sentinel err is marked with, or "unknown".
func Kind(err error) string {
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.name
		}
	}
	return "unknown"
}

// Record stores err's message in the slot, logs it and returns err unchanged.
func Record(err error) error {
	if err == nil {
		return nil
	}
	SetError(err.Error())
	Logger().WithField("kind", Kind(err)).Debug(err.Error())
	return err
}

func newf(kind error, format string, args ...interface{}) error {
	return Record(errors.Mark(errors.NewWithDepthf(2, format, args...), kind))
}

func InvalidArgf(format string, args ...interface{}) error {
	return newf(ErrInvalidArgument, format, args...)
}

func NotFoundf(format string, args ...interface{}) error {
	return newf(ErrNotFound, format, args...)
}

func Allocationf(format string, args ...interface{}) error {
	return newf(ErrAllocation, format, args...)
}

func Corruptedf(format string, args ...interface{}) error {
	return newf(ErrCorrupted, format, args...)
}

func Emptyf(format string, args ...interface{}) error {
	return newf(ErrEmpty, format, args...)
}

func Fullf(format string, args ...interface{}) error {
	return newf(ErrFull, format, args...)
}

// Wrap annotates err, keeps its marks and records the new message.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return Record(errors.WrapWithDepth(1, err, msg))
}

// Visit marks an error returned by a caller-supplied visit function.
func Visit(err error) error {
	if err == nil {
		return nil
	}
	return Record(errors.Mark(errors.WrapWithDepth(1, err, "provided function error"), ErrVisit))
}
