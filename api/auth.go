package api

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	userIDMarker = "&user_id="
	// length of the "&api_key=" prefix in the credential blob
	apiKeyOffset = 9
)

// AuthDetails identifies an authenticated API user. Authenticated requests
// get more generous rate limits from the service.
type AuthDetails struct {
	UserID int
	Key    string
}

// ParseAuth extracts credentials from the query-string blob shown on the
// account's "API access" page, of the form "&api_key=<key>&user_id=<digits>".
func ParseAuth(blob string) (*AuthDetails, error) {
	marker := strings.Index(blob, userIDMarker)
	if marker < apiKeyOffset {
		return nil, fmt.Errorf("%w: missing %q segment", ErrCredentialParse, userIDMarker)
	}

	userID, err := strconv.Atoi(blob[marker+len(userIDMarker):])
	if err != nil {
		return nil, fmt.Errorf("%w: user id: %w", ErrCredentialParse, err)
	}

	return &AuthDetails{
		UserID: userID,
		Key:    blob[apiKeyOffset:marker],
	}, nil
}
