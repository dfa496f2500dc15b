// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package rtcmodels

import (
	"strings"

	"github.com/pion/ice/v4"
	"github.com/pion/rtcmodels/internal/util"
)

// ICECandidate represents a ice candidate. It is a read-only view over the
// ICECandidateInit it was constructed from, plus informational attributes
// that are never serialized.
//
// See https://www.w3.org/TR/webrtc/#rtcicecandidate-interface
type ICECandidate struct {
	candidateInit *ICECandidateInit

	candidate        string
	sdpMid           *string
	sdpMLineIndex    *uint16
	usernameFragment *string

	attributes ICECandidateAttributes
}

// ICECandidateAttributes are the informational attributes of an
// ICECandidate. Unset attributes are nil. They are kept for local
// bookkeeping only and never appear on the wire.
type ICECandidateAttributes struct {
	Foundation     *string
	Component      *ICEComponent
	Priority       *uint32
	Address        *string
	Protocol       *ICEProtocol
	Port           *uint16
	Typ            *ICECandidateType
	TCPType        *string
	RelatedAddress *string
	RelatedPort    *uint16
	RelayProtocol  *string
	URL            *string
}

// ICECandidateOption configures an ICECandidate at construction.
type ICECandidateOption func(*ICECandidate)

// WithAttributes overrides the informational attributes parsed from the
// candidate line. Only the non-nil attributes of attrs are applied.
func WithAttributes(attrs ICECandidateAttributes) ICECandidateOption {
	return func(c *ICECandidate) {
		c.attributes = c.attributes.merge(attrs)
	}
}

// NewICECandidate creates an ICECandidate from candidateInit using the
// default API. A nil candidateInit creates the end-of-candidates indication.
func NewICECandidate(candidateInit *ICECandidateInit, opts ...ICECandidateOption) (ICECandidate, error) {
	return defaultAPI.NewICECandidate(candidateInit, opts...)
}

// NewICECandidate creates an ICECandidate from candidateInit. A nil
// candidateInit creates the end-of-candidates indication. The informational
// attributes are parsed from the candidate line when it is well formed.
func (api *API) NewICECandidate(candidateInit *ICECandidateInit, opts ...ICECandidateOption) (ICECandidate, error) {
	if candidateInit == nil {
		candidateInit = &ICECandidateInit{}
	}

	if err := validateMediaReference(candidateInit.candidate, candidateInit.sdpMid, candidateInit.sdpMLineIndex != nil); err != nil {
		return ICECandidate{}, err
	}

	embedded := *candidateInit
	c := ICECandidate{
		candidateInit:    &embedded,
		candidate:        embedded.candidate,
		sdpMid:           util.Clone(embedded.sdpMid),
		sdpMLineIndex:    util.Clone(embedded.sdpMLineIndex),
		usernameFragment: util.Clone(embedded.usernameFragment),
	}

	if c.candidate != "" {
		attrs, err := parseICECandidateAttributes(c.candidate)
		if err != nil {
			api.log.Debugf("Keeping informational attributes unset for %q: %v", c.candidate, err)
		} else {
			c.attributes = attrs
		}
	}

	for _, o := range opts {
		o(&c)
	}

	return c, nil
}

// Candidate returns the candidate-attribute, or "" for end-of-candidates.
func (c ICECandidate) Candidate() string {
	return c.candidate
}

// SDPMid returns the media stream identification tag, if set.
func (c ICECandidate) SDPMid() (string, bool) {
	return util.Deref(c.sdpMid)
}

// SDPMLineIndex returns the index of the media description, if set.
func (c ICECandidate) SDPMLineIndex() (uint16, bool) {
	return util.Deref(c.sdpMLineIndex)
}

// UsernameFragment returns the ICE username fragment, if set.
func (c ICECandidate) UsernameFragment() (string, bool) {
	return util.Deref(c.usernameFragment)
}

// IsEndOfCandidates reports whether this is the end-of-candidates indication.
func (c ICECandidate) IsEndOfCandidates() bool {
	return c.candidate == ""
}

// Attributes returns a copy of the informational attributes.
func (c ICECandidate) Attributes() ICECandidateAttributes {
	return ICECandidateAttributes{}.merge(c.attributes)
}

// ToJSON returns an ICECandidateInit
// as defined in https://w3c.github.io/webrtc-pc/#dom-rtcicecandidate-tojson
func (c ICECandidate) ToJSON() ICECandidateInit {
	return ICECandidateInit{
		candidate:        c.candidate,
		sdpMid:           util.Clone(c.sdpMid),
		sdpMLineIndex:    util.Clone(c.sdpMLineIndex),
		usernameFragment: util.Clone(c.usernameFragment),
	}
}

func (c *ICECandidate) fields() []field {
	raw := newCandidateFields(c.candidate, c.sdpMid, c.sdpMLineIndex, c.usernameFragment)
	a := &c.attributes

	return append(raw.fields(),
		field{wire: "rtcIceCandidateInit", value: &c.candidateInit, excluded: true},
		field{wire: "foundation", value: &a.Foundation, excluded: true},
		field{wire: "component", value: &a.Component, excluded: true},
		field{wire: "priority", value: &a.Priority, excluded: true},
		field{wire: "address", value: &a.Address, excluded: true},
		field{wire: "protocol", value: &a.Protocol, excluded: true},
		field{wire: "port", value: &a.Port, excluded: true},
		field{wire: "type", value: &a.Typ, excluded: true},
		field{wire: "tcpType", value: &a.TCPType, excluded: true},
		field{wire: "relatedAddress", value: &a.RelatedAddress, excluded: true},
		field{wire: "relatedPort", value: &a.RelatedPort, excluded: true},
		field{wire: "relayProtocol", value: &a.RelayProtocol, excluded: true},
		field{wire: "url", value: &a.URL, excluded: true},
	)
}

// MarshalJSON returns the candidate, sdpMid, sdpMLineIndex and userFragment
// members, nulls included.
func (c ICECandidate) MarshalJSON() ([]byte, error) {
	return encodeFields(neverOmit, c.fields())
}

// UnmarshalJSON reads an ICECandidateInit dictionary and constructs the
// candidate from it with the default API. c is left untouched on error.
func (c *ICECandidate) UnmarshalJSON(b []byte) error {
	decoded, err := defaultAPI.UnmarshalICECandidate(b)
	if err != nil {
		return err
	}

	*c = decoded

	return nil
}

// UnmarshalICECandidate reads an ICECandidateInit dictionary and constructs
// the candidate from it.
func (api *API) UnmarshalICECandidate(b []byte) (ICECandidate, error) {
	candidateInit, err := unmarshalICECandidateInit(b)
	if err != nil {
		return ICECandidate{}, err
	}

	return api.NewICECandidate(&candidateInit)
}

// https://www.w3.org/TR/webrtc/#dom-rtcicecandidate-constructor (step #3)
func parseICECandidateAttributes(candidate string) (ICECandidateAttributes, error) {
	parsed, err := ice.UnmarshalCandidate(strings.TrimPrefix(candidate, candidatePrefix))
	if err != nil {
		return ICECandidateAttributes{}, err
	}

	attrs := ICECandidateAttributes{
		Foundation: util.Ref(parsed.Foundation()),
		Priority:   util.Ref(parsed.Priority()),
		Address:    util.Ref(parsed.Address()),
		Port:       util.Ref(uint16(parsed.Port())), //nolint:gosec // G115
	}

	if component, err := newICEComponentFromID(parsed.Component()); err == nil {
		attrs.Component = &component
	}
	if protocol, err := NewICEProtocol(parsed.NetworkType().NetworkShort()); err == nil {
		attrs.Protocol = &protocol
	}
	if typ, err := convertTypeFromICE(parsed.Type()); err == nil {
		attrs.Typ = &typ
	}
	if tcpType := parsed.TCPType().String(); tcpType != "" {
		attrs.TCPType = &tcpType
	}
	if related := parsed.RelatedAddress(); related != nil {
		attrs.RelatedAddress = util.Ref(related.Address)
		attrs.RelatedPort = util.Ref(uint16(related.Port)) //nolint:gosec // G115
	}

	return attrs, nil
}

// merge returns a copy of a with every non-nil attribute of o applied.
func (a ICECandidateAttributes) merge(o ICECandidateAttributes) ICECandidateAttributes {
	return ICECandidateAttributes{
		Foundation:     util.Clone(firstSet(o.Foundation, a.Foundation)),
		Component:      util.Clone(firstSet(o.Component, a.Component)),
		Priority:       util.Clone(firstSet(o.Priority, a.Priority)),
		Address:        util.Clone(firstSet(o.Address, a.Address)),
		Protocol:       util.Clone(firstSet(o.Protocol, a.Protocol)),
		Port:           util.Clone(firstSet(o.Port, a.Port)),
		Typ:            util.Clone(firstSet(o.Typ, a.Typ)),
		TCPType:        util.Clone(firstSet(o.TCPType, a.TCPType)),
		RelatedAddress: util.Clone(firstSet(o.RelatedAddress, a.RelatedAddress)),
		RelatedPort:    util.Clone(firstSet(o.RelatedPort, a.RelatedPort)),
		RelayProtocol:  util.Clone(firstSet(o.RelayProtocol, a.RelayProtocol)),
		URL:            util.Clone(firstSet(o.URL, a.URL)),
	}
}

func firstSet[T any](values ...*T) *T {
	for _, v := range values {
		if v != nil {
			return v
		}
	}

	return nil
}
