// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package rtcmodels

import (
	"fmt"
	"strings"

	"github.com/pion/sdp/v3"
)

// SDPAttribute returns the media-level attribute carrying this candidate:
// "a=candidate:..." or, for end-of-candidates, "a=end-of-candidates".
func (i ICECandidateInit) SDPAttribute() sdp.Attribute {
	if i.IsEndOfCandidates() {
		return sdp.NewPropertyAttribute(sdpAttributeEndOfCands)
	}

	return sdp.NewAttribute(sdpAttributeCandidate, strings.TrimPrefix(i.candidate, candidatePrefix))
}

// NewICECandidateInitFromSDPAttribute builds the ICECandidateInit for a
// candidate or end-of-candidates attribute found in the media description
// identified by mid and index.
func NewICECandidateInitFromSDPAttribute(attr sdp.Attribute, mid string, index int) (ICECandidateInit, error) {
	switch {
	case attr.IsICECandidate():
		return NewICECandidateInit(candidatePrefix+attr.Value, WithSDPMid(mid), WithSDPMLineIndex(index))
	case attr.Key == sdpAttributeEndOfCands:
		return NewICECandidateInit("", WithSDPMid(mid), WithSDPMLineIndex(index))
	default:
		return ICECandidateInit{}, fmt.Errorf("%w: %s", ErrNotCandidateAttribute, attr.Key)
	}
}
