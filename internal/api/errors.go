package api

import (
	"errors"

	"github.com/samcharles93/toksum/pkg/toksum"
)

// errBadJSON marks request bodies that could not be decoded.
var errBadJSON = errors.New("malformed request body")

// isRequestError reports whether err was caused by the caller's arguments
// rather than a server-side failure.
func isRequestError(err error) bool {
	var (
		invalidModel    *toksum.InvalidModelError
		invalidEncoding *toksum.InvalidEncodingError
		conflict        *toksum.ConflictingArgumentsError
	)
	return errors.Is(err, errBadJSON) ||
		errors.Is(err, toksum.ErrMissingArgument) ||
		errors.As(err, &invalidModel) ||
		errors.As(err, &invalidEncoding) ||
		errors.As(err, &conflict)
}
