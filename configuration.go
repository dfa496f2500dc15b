// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package rtcmodels

import (
	"strings"

	"github.com/pion/stun/v3"
)

// Configuration defines a set of parameters to configure how the
// peer-to-peer communication via PeerConnection is established or
// re-established.
//
// See https://www.w3.org/TR/webrtc/#rtcconfiguration-dictionary
type Configuration struct {
	// ICEServers defines a slice describing servers available to be used by
	// ICE, such as STUN and TURN servers. Order is significant.
	ICEServers []ICEServer
}

func (c *Configuration) fields() []field {
	return []field{
		{wire: "iceServers", value: &c.ICEServers},
	}
}

// MarshalJSON returns the Configuration dictionary. An empty server list is
// left out.
func (c Configuration) MarshalJSON() ([]byte, error) {
	return encodeFields(omitDefault, c.fields())
}

// UnmarshalJSON parses a Configuration dictionary. c is left untouched on error.
func (c *Configuration) UnmarshalJSON(b []byte) error {
	var decoded Configuration
	if err := decodeFields(b, decoded.fields()); err != nil {
		return err
	}

	*c = decoded

	return nil
}

// ICEURIs returns the parsed URIs of every server in order. Queries on
// "stun(s):" URLs are stripped before parsing, side-stepping the strict
// parsing mode of RFC 7064.
func (c Configuration) ICEURIs() ([]*stun.URI, error) {
	uris := []*stun.URI{}

	for _, server := range c.ICEServers {
		values := server.URLs.Values()
		for i, rawURL := range values {
			if strings.HasPrefix(rawURL, "stun") {
				values[i], _, _ = strings.Cut(rawURL, "?")
			}
		}

		stripped := server
		if server.URLs.IsList() {
			stripped.URLs = NewICEServerURLs(values...)
		} else {
			stripped.URLs = NewICEServerURL(values[0])
		}

		serverURIs, err := stripped.URIs()
		if err != nil {
			return nil, err
		}
		uris = append(uris, serverURIs...)
	}

	return uris, nil
}
