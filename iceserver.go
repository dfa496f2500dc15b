// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package rtcmodels

import (
	"fmt"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"github.com/pion/rtcmodels/pkg/rtcerr"
	"github.com/pion/stun/v3"
)

// ICEServer describes a single STUN and TURN server that can be used by
// the ICEAgent to establish a connection with a peer.
//
// See https://www.w3.org/TR/webrtc/#rtciceserver-dictionary
type ICEServer struct {
	URLs       ICEServerURLs
	Username   *string
	Credential *string
}

func (s *ICEServer) fields() []field {
	return []field{
		{wire: "urls", value: &s.URLs, required: true},
		{wire: "username", value: &s.Username},
		{wire: "credential", value: &s.Credential},
	}
}

// MarshalJSON returns the ICEServer dictionary. Username and Credential are
// left out when unset.
func (s ICEServer) MarshalJSON() ([]byte, error) {
	return encodeFields(omitDefault, s.fields())
}

// UnmarshalJSON parses an ICEServer dictionary. s is left untouched on error.
func (s *ICEServer) UnmarshalJSON(b []byte) error {
	var decoded ICEServer
	if err := decodeFields(b, decoded.fields()); err != nil {
		return err
	}

	*s = decoded

	return nil
}

// URIs parses every URL of the server. TURN and TURNS URLs require both a
// username and a credential, which are copied into the returned URI.
func (s ICEServer) URIs() ([]*stun.URI, error) {
	uris := []*stun.URI{}

	for _, rawURL := range s.URLs.Values() {
		uri, err := stun.ParseURI(rawURL)
		if err != nil {
			return nil, &rtcerr.InvalidAccessError{Err: err}
		}

		if uri.Scheme == stun.SchemeTypeTURN || uri.Scheme == stun.SchemeTypeTURNS {
			// https://www.w3.org/TR/webrtc/#set-the-configuration (step #11.3.2)
			if s.Username == nil || *s.Username == "" || s.Credential == nil {
				return nil, &rtcerr.InvalidAccessError{Err: ErrNoTurnCredentials}
			}
			uri.Username = *s.Username
			uri.Password = *s.Credential
		}

		uris = append(uris, uri)
	}

	return uris, nil
}

// ICEServerURLs holds the urls member of an ICEServer, which is either a
// single string or a list of strings. The form it was built or decoded
// with is kept, so a single URL is never re-encoded as a list.
type ICEServerURLs struct {
	single string
	list   []string
	isList bool
}

// NewICEServerURL returns urls in its single string form.
func NewICEServerURL(url string) ICEServerURLs {
	return ICEServerURLs{single: url}
}

// NewICEServerURLs returns urls in its list form, keeping the order.
func NewICEServerURLs(urls ...string) ICEServerURLs {
	return ICEServerURLs{list: append([]string{}, urls...), isList: true}
}

// IsList reports whether urls is in its list form.
func (u ICEServerURLs) IsList() bool {
	return u.isList
}

// Values returns the URLs in order. A single URL yields a one element slice.
func (u ICEServerURLs) Values() []string {
	if !u.isList {
		return []string{u.single}
	}

	return append([]string{}, u.list...)
}

// MarshalJSON returns a JSON string or array depending on the form.
func (u ICEServerURLs) MarshalJSON() ([]byte, error) {
	if u.isList {
		return json.Marshal(u.list)
	}

	return json.Marshal(u.single)
}

// UnmarshalJSON accepts a JSON string or an array of strings.
func (u *ICEServerURLs) UnmarshalJSON(b []byte) error {
	switch jsontext.Value(b).Kind() {
	case '"':
		var single string
		if err := json.Unmarshal(b, &single); err != nil {
			return &rtcerr.TypeError{Err: fmt.Errorf("%w: %w", ErrInvalidURLsType, err)}
		}
		*u = NewICEServerURL(single)
	case '[':
		var list []string
		if err := json.Unmarshal(b, &list); err != nil {
			return &rtcerr.TypeError{Err: fmt.Errorf("%w: %w", ErrInvalidURLsType, err)}
		}
		*u = NewICEServerURLs(list...)
	default:
		return &rtcerr.TypeError{Err: ErrInvalidURLsType}
	}

	return nil
}
