// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package rtcmodels

import (
	"github.com/pion/rtcmodels/internal/util"
	"github.com/pion/rtcmodels/pkg/rtcerr"
)

// ICECandidateInit is used to serialize ice candidates. An empty candidate
// is the end-of-candidates indication.
//
// See https://www.w3.org/TR/webrtc/#dom-rtcicecandidateinit
type ICECandidateInit struct {
	candidate        string
	sdpMid           *string
	sdpMLineIndex    *uint16
	usernameFragment *string
}

// ICECandidateInitOption sets one of the optional members of an
// ICECandidateInit, or of a LegacyICECandidate.
type ICECandidateInitOption func(*candidateFields)

// WithSDPMid sets the media stream identification tag.
func WithSDPMid(mid string) ICECandidateInitOption {
	return func(f *candidateFields) {
		f.SDPMid = &mid
	}
}

// WithSDPMLineIndex sets the index of the media description. It must fit
// an unsigned short.
func WithSDPMLineIndex(index int) ICECandidateInitOption {
	return func(f *candidateFields) {
		f.SDPMLineIndex = &index
	}
}

// WithUsernameFragment sets the ICE username fragment.
func WithUsernameFragment(ufrag string) ICECandidateInitOption {
	return func(f *candidateFields) {
		f.UsernameFragment = &ufrag
	}
}

// NewICECandidateInit validates and returns an ICECandidateInit. A
// non-empty candidate must come with sdpMid, sdpMLineIndex or both.
func NewICECandidateInit(candidate string, opts ...ICECandidateInitOption) (ICECandidateInit, error) {
	raw := candidateFields{Candidate: candidate}
	for _, o := range opts {
		o(&raw)
	}

	return raw.toInit()
}

// Candidate returns the candidate-attribute, or "" for end-of-candidates.
func (i ICECandidateInit) Candidate() string {
	return i.candidate
}

// SDPMid returns the media stream identification tag, if set.
func (i ICECandidateInit) SDPMid() (string, bool) {
	return util.Deref(i.sdpMid)
}

// SDPMLineIndex returns the index of the media description, if set.
func (i ICECandidateInit) SDPMLineIndex() (uint16, bool) {
	return util.Deref(i.sdpMLineIndex)
}

// UsernameFragment returns the ICE username fragment, if set.
func (i ICECandidateInit) UsernameFragment() (string, bool) {
	return util.Deref(i.usernameFragment)
}

// IsEndOfCandidates reports whether this is the end-of-candidates indication.
func (i ICECandidateInit) IsEndOfCandidates() bool {
	return i.candidate == ""
}

// MarshalJSON returns the ICECandidateInit dictionary. Unset members are
// left out.
func (i ICECandidateInit) MarshalJSON() ([]byte, error) {
	raw := newCandidateFields(i.candidate, i.sdpMid, i.sdpMLineIndex, i.usernameFragment)

	return encodeFields(omitDefault, raw.fields())
}

// UnmarshalJSON parses and validates an ICECandidateInit dictionary. i is
// left untouched on error.
func (i *ICECandidateInit) UnmarshalJSON(b []byte) error {
	decoded, err := unmarshalICECandidateInit(b)
	if err != nil {
		return err
	}

	*i = decoded

	return nil
}

func unmarshalICECandidateInit(b []byte) (ICECandidateInit, error) {
	var raw candidateFields
	if err := decodeFields(b, raw.fields()); err != nil {
		return ICECandidateInit{}, err
	}

	return raw.toInit()
}

// candidateFields is the flat candidate/sdpMid/sdpMLineIndex/userFragment
// dictionary shared by every candidate shape, before validation.
type candidateFields struct {
	Candidate        string
	SDPMid           *string
	SDPMLineIndex    *int
	UsernameFragment *string
}

func newCandidateFields(candidate string, mid *string, index *uint16, ufrag *string) candidateFields {
	raw := candidateFields{
		Candidate:        candidate,
		SDPMid:           mid,
		UsernameFragment: ufrag,
	}
	if index != nil {
		i := int(*index)
		raw.SDPMLineIndex = &i
	}

	return raw
}

func (f *candidateFields) fields() []field {
	return []field{
		{wire: "candidate", value: &f.Candidate, required: true},
		{wire: "sdpMid", value: &f.SDPMid},
		{wire: "sdpMLineIndex", value: &f.SDPMLineIndex},
		{wire: "userFragment", value: &f.UsernameFragment},
	}
}

// validate checks the index range and that a non-empty candidate references
// its media description.
func (f candidateFields) validate() error {
	if f.SDPMLineIndex != nil {
		switch {
		case *f.SDPMLineIndex < 0:
			return &rtcerr.RangeError{Err: ErrSDPMLineIndexNegative}
		case *f.SDPMLineIndex > maxSDPMLineIndex:
			return &rtcerr.RangeError{Err: ErrSDPMLineIndexTooLarge}
		}
	}

	return validateMediaReference(f.Candidate, f.SDPMid, f.SDPMLineIndex != nil)
}

func (f candidateFields) toInit() (ICECandidateInit, error) {
	if err := f.validate(); err != nil {
		return ICECandidateInit{}, err
	}

	return ICECandidateInit{
		candidate:        f.Candidate,
		sdpMid:           util.Clone(f.SDPMid),
		sdpMLineIndex:    f.index(),
		usernameFragment: util.Clone(f.UsernameFragment),
	}, nil
}

// index converts an already validated sdpMLineIndex.
func (f candidateFields) index() *uint16 {
	if f.SDPMLineIndex == nil {
		return nil
	}
	index := uint16(*f.SDPMLineIndex) //nolint:gosec // G115, range checked in validate

	return &index
}

// https://www.w3.org/TR/webrtc/#dom-rtcicecandidate-constructor (step #1)
func validateMediaReference(candidate string, mid *string, hasIndex bool) error {
	if candidate != "" && mid == nil && !hasIndex {
		return &rtcerr.TypeError{Err: ErrSDPMidAndMLineIndexNull}
	}

	return nil
}
