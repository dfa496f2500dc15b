// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package rtcmodels

import (
	"errors"
)

var (
	// ErrUnknownType indicates an error with Unknown info.
	ErrUnknownType = errors.New("unknown")

	// ErrSDPMidAndMLineIndexNull indicates a non-empty candidate was given
	// without either sdpMid or sdpMLineIndex.
	ErrSDPMidAndMLineIndexNull = errors.New("sdpMid and sdpMLineIndex cannot both be null")

	// ErrSDPMLineIndexNegative indicates a negative sdpMLineIndex.
	ErrSDPMLineIndexNegative = errors.New("sdpMLineIndex must be greater than or equal to 0")

	// ErrSDPMLineIndexTooLarge indicates an sdpMLineIndex that does not fit
	// an unsigned short.
	ErrSDPMLineIndexTooLarge = errors.New("sdpMLineIndex must be less than or equal to 65535")

	// ErrNotAnObject indicates the JSON payload of a dictionary is not an object.
	ErrNotAnObject = errors.New("dictionary must be a JSON object")

	// ErrMissingField indicates a required dictionary member is absent.
	ErrMissingField = errors.New("required member is missing")

	// ErrFieldType indicates a dictionary member has the wrong JSON kind.
	ErrFieldType = errors.New("member has an unexpected type")

	// ErrInvalidURLsType indicates urls is neither a string nor a list of strings.
	ErrInvalidURLsType = errors.New("urls must be a string or a list of strings")

	// ErrNoTurnCredentials indicates that a TURN server URL was provided
	// without required credentials.
	ErrNoTurnCredentials = errors.New("turn server credentials required")

	// ErrNotCandidateAttribute indicates an SDP attribute is neither a
	// candidate nor an end-of-candidates attribute.
	ErrNotCandidateAttribute = errors.New("attribute is not an ICE candidate attribute")

	errICEProtocolUnknown      = errors.New("unknown protocol")
	errICECandidateTypeUnknown = errors.New("unknown candidate type")
	errICEComponentUnknown     = errors.New("unknown component")
)
