package session

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// ErrMissingToken is returned when a server response carries no access token.
var ErrMissingToken = errors.New("response has no access token")

// ID is a user identifier. The backend sends it either as a JSON string or
// as a number; both decode into the same textual form.
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("user id: %w", err)
	}
	if _, err := strconv.ParseFloat(n.String(), 64); err != nil {
		return fmt.Errorf("user id: %w", err)
	}
	*id = ID(n.String())
	return nil
}

// AuthPayload is the body of a successful login or registration response.
type AuthPayload struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	// ExpiresIn is the token lifetime in seconds; 0 means not supplied.
	ExpiresIn int64 `json:"expires_in,omitempty"`

	UserID         ID     `json:"user_id"`
	Username       string `json:"username"`
	Email          string `json:"email"`
	FullName       string `json:"full_name,omitempty"`
	ProfilePicture string `json:"profile_picture,omitempty"`

	IsAdmin     bool `json:"is_master"`
	IsModerator bool `json:"is_vice_admin"`
	IsMentor    bool `json:"is_guide"`
}

// TokenPair is the body of a successful token refresh. RefreshToken is
// empty when the server does not rotate refresh tokens.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	ExpiresIn    int64  `json:"expires_in,omitempty"`
}
