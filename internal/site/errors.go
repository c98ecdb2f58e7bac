package site

import (
	"errors"
	"fmt"

	ferrors "github.com/vyckey/notesite/internal/foundation/errors"
)

// Sentinel errors identifying the violated invariant. Match with errors.Is.
var (
	ErrDuplicateCollectionID = errors.New("duplicate collection id")
	ErrRouteCollision        = errors.New("route collision")
	ErrDanglingNavReference  = errors.New("dangling navigation reference")
	ErrInvalidLocale         = errors.New("invalid locale")
	ErrInvalidHeadingRange   = errors.New("invalid heading range")
	ErrInvalidDeclaration    = errors.New("invalid declaration")
)

// ValidationError is the single error returned by Build. Path locates the
// offending declaration (for example "navbar.items[2].to").
type ValidationError struct {
	Err    error
	Path   string
	Value  string
	Detail string
}

func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("%s: %v", e.Path, e.Err)
	if e.Value != "" {
		msg += fmt.Sprintf(" %q", e.Value)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Classified converts the error for CLI presentation.
func (e *ValidationError) Classified() *ferrors.ClassifiedError {
	b := ferrors.WrapError(e, ferrors.CategoryValidation, e.Err.Error()).
		Fatal().
		WithContext("path", e.Path)
	if e.Value != "" {
		b.WithContext("value", e.Value)
	}
	if e.Detail != "" {
		b.WithContext("detail", e.Detail)
	}
	return b.Build()
}

// Classify returns err as a ClassifiedError when it is a ValidationError and
// unchanged otherwise.
func Classify(err error) error {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Classified()
	}
	return err
}

func violation(err error, path, value, detail string, args ...any) *ValidationError {
	if len(args) > 0 {
		detail = fmt.Sprintf(detail, args...)
	}
	return &ValidationError{Err: err, Path: path, Value: value, Detail: detail}
}
