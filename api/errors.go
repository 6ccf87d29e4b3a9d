package api

import "errors"

// Error kinds returned by the client, matchable with errors.Is. Each
// failure wraps the underlying cause alongside its kind. Record-level
// mapping defects are *models.MappingError instead.
var (
	ErrURLConstruction = errors.New("could not build request URL")
	ErrTransport       = errors.New("request failed")
	ErrDecode          = errors.New("could not decode response")
	ErrCredentialParse = errors.New("could not parse credential query string")
)
