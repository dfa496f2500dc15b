// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package rtcmodels

const (
	// Unknown defines default public constant to use for "enum" like struct
	// comparisons when no value was defined.
	Unknown    = iota
	unknownStr = "unknown"

	// maxSDPMLineIndex is the largest value of a WebIDL unsigned short.
	maxSDPMLineIndex = 65535

	candidatePrefix        = "candidate:"
	sdpAttributeCandidate  = "candidate"
	sdpAttributeEndOfCands = "end-of-candidates"
	loggerScope            = "rtcmodels"
)
