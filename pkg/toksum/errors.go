package toksum

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingArgument is returned when neither a model, an encoding name, nor
// an encoder was supplied where one is required.
var ErrMissingArgument = errors.New("either a model or an encoding must be provided")

// InvalidModelError reports a model name outside the supported set.
type InvalidModelError struct {
	Model string
}

func (e *InvalidModelError) Error() string {
	return fmt.Sprintf("invalid model %q (valid models: %s)", e.Model, strings.Join(validModels, ", "))
}

// InvalidEncodingError reports an encoding name outside the supported set.
type InvalidEncodingError struct {
	Encoding string
}

func (e *InvalidEncodingError) Error() string {
	return fmt.Sprintf("invalid encoding %q (valid encodings: %s)", e.Encoding, strings.Join(validEncodings, ", "))
}

// ConflictingArgumentsError reports a model and encoding name that were both
// supplied but do not belong together.
type ConflictingArgumentsError struct {
	Model    string
	Encoding string
	// Want is the encoding the model actually uses.
	Want string
}

func (e *ConflictingArgumentsError) Error() string {
	return fmt.Sprintf("model %q does not use encoding %q (expected %q)", e.Model, e.Encoding, e.Want)
}

// NotAFileError reports a path that exists but is not a regular file.
type NotAFileError struct {
	Path string
}

func (e *NotAFileError) Error() string {
	return fmt.Sprintf("%s: not a file", e.Path)
}

// NotADirectoryError reports a path that exists but is not a directory.
type NotADirectoryError struct {
	Path string
}

func (e *NotADirectoryError) Error() string {
	return fmt.Sprintf("%s: not a directory", e.Path)
}

// UnsupportedEncodingError reports file contents whose byte encoding could
// not be detected or decoded to text.
type UnsupportedEncodingError struct {
	Path    string
	Charset string
	Err     error
}

func (e *UnsupportedEncodingError) Error() string {
	if e.Charset != "" {
		return fmt.Sprintf("%s: unsupported text encoding %q", e.Path, e.Charset)
	}
	return fmt.Sprintf("%s: unsupported text encoding", e.Path)
}

func (e *UnsupportedEncodingError) Unwrap() error {
	return e.Err
}
