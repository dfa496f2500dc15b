// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package rtcmodels

import (
	"github.com/pion/rtcmodels/internal/util"
)

// LegacyICECandidateBase is the candidate-only base of the LegacyICECandidate
// hierarchy.
//
// Deprecated: construct an ICECandidate from an ICECandidateInit instead.
type LegacyICECandidateBase struct {
	candidate string
}

// NewLegacyICECandidateBase creates a LegacyICECandidateBase using the
// default API.
//
// Deprecated: use NewICECandidate instead.
func NewLegacyICECandidateBase(candidate string) LegacyICECandidateBase {
	return defaultAPI.NewLegacyICECandidateBase(candidate)
}

// NewLegacyICECandidateBase creates a LegacyICECandidateBase and raises one
// deprecation notice.
//
// Deprecated: use API.NewICECandidate instead.
func (api *API) NewLegacyICECandidateBase(candidate string) LegacyICECandidateBase {
	api.notifyDeprecated(legacyICECandidateBaseNotice)

	return LegacyICECandidateBase{candidate: candidate}
}

// Candidate returns the candidate-attribute, or "" for end-of-candidates.
func (b LegacyICECandidateBase) Candidate() string {
	return b.candidate
}

func (b *LegacyICECandidateBase) fields() []field {
	return []field{
		{wire: "candidate", value: &b.candidate, required: true},
	}
}

// MarshalJSON returns the candidate member.
func (b LegacyICECandidateBase) MarshalJSON() ([]byte, error) {
	return encodeFields(omitDefault, b.fields())
}

// UnmarshalJSON decodes with the default API. b is left untouched on error.
//
// Deprecated: decode into an ICECandidate instead.
func (b *LegacyICECandidateBase) UnmarshalJSON(data []byte) error {
	decoded, err := defaultAPI.UnmarshalLegacyICECandidateBase(data)
	if err != nil {
		return err
	}

	*b = decoded

	return nil
}

// UnmarshalLegacyICECandidateBase decodes a LegacyICECandidateBase and
// raises one deprecation notice.
//
// Deprecated: use API.UnmarshalICECandidate instead.
func (api *API) UnmarshalLegacyICECandidateBase(data []byte) (LegacyICECandidateBase, error) {
	var raw LegacyICECandidateBase
	if err := decodeFields(data, raw.fields()); err != nil {
		return LegacyICECandidateBase{}, err
	}

	return api.NewLegacyICECandidateBase(raw.candidate), nil
}

// LegacyICECandidate is the previous shape of ICECandidate, which extends
// LegacyICECandidateBase with flat sdpMid, sdpMLineIndex and
// usernameFragment members instead of embedding an ICECandidateInit.
//
// Deprecated: construct an ICECandidate from an ICECandidateInit instead.
type LegacyICECandidate struct {
	LegacyICECandidateBase

	sdpMid           *string
	sdpMLineIndex    *uint16
	usernameFragment *string
}

// NewLegacyICECandidate creates a LegacyICECandidate using the default API.
//
// Deprecated: use NewICECandidate instead.
func NewLegacyICECandidate(candidate string, opts ...ICECandidateInitOption) (LegacyICECandidate, error) {
	return defaultAPI.NewLegacyICECandidate(candidate, opts...)
}

// NewLegacyICECandidate validates and creates a LegacyICECandidate. It raises
// one deprecation notice, also when validation fails.
//
// Deprecated: use API.NewICECandidate instead.
func (api *API) NewLegacyICECandidate(candidate string, opts ...ICECandidateInitOption) (LegacyICECandidate, error) {
	raw := candidateFields{Candidate: candidate}
	for _, o := range opts {
		o(&raw)
	}

	return api.newLegacyICECandidate(raw)
}

func (api *API) newLegacyICECandidate(raw candidateFields) (LegacyICECandidate, error) {
	api.notifyDeprecated(legacyICECandidateNotice)

	if err := raw.validate(); err != nil {
		return LegacyICECandidate{}, err
	}

	return LegacyICECandidate{
		LegacyICECandidateBase: LegacyICECandidateBase{candidate: raw.Candidate},
		sdpMid:                 util.Clone(raw.SDPMid),
		sdpMLineIndex:          raw.index(),
		usernameFragment:       util.Clone(raw.UsernameFragment),
	}, nil
}

// SDPMid returns the media stream identification tag, if set.
func (c LegacyICECandidate) SDPMid() (string, bool) {
	return util.Deref(c.sdpMid)
}

// SDPMLineIndex returns the index of the media description, if set.
func (c LegacyICECandidate) SDPMLineIndex() (uint16, bool) {
	return util.Deref(c.sdpMLineIndex)
}

// UsernameFragment returns the ICE username fragment, if set.
func (c LegacyICECandidate) UsernameFragment() (string, bool) {
	return util.Deref(c.usernameFragment)
}

// MarshalJSON returns every member, nulls included.
func (c LegacyICECandidate) MarshalJSON() ([]byte, error) {
	raw := newCandidateFields(c.candidate, c.sdpMid, c.sdpMLineIndex, c.usernameFragment)

	return encodeFields(neverOmit, raw.fields())
}

// UnmarshalJSON decodes with the default API. c is left untouched on error.
//
// Deprecated: decode into an ICECandidate instead.
func (c *LegacyICECandidate) UnmarshalJSON(data []byte) error {
	decoded, err := defaultAPI.UnmarshalLegacyICECandidate(data)
	if err != nil {
		return err
	}

	*c = decoded

	return nil
}

// UnmarshalLegacyICECandidate decodes and validates a LegacyICECandidate. It
// raises one deprecation notice once the payload is well formed.
//
// Deprecated: use API.UnmarshalICECandidate instead.
func (api *API) UnmarshalLegacyICECandidate(data []byte) (LegacyICECandidate, error) {
	var raw candidateFields
	if err := decodeFields(data, raw.fields()); err != nil {
		return LegacyICECandidate{}, err
	}

	return api.newLegacyICECandidate(raw)
}
