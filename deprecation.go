// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package rtcmodels

import "fmt"

// DeprecationNotice is the informational signal raised when a deprecated
// API is used. It is not an error.
type DeprecationNotice struct {
	// API names the deprecated type or function.
	API string

	// Replacement names what should be used instead.
	Replacement string
}

func (n DeprecationNotice) String() string {
	return fmt.Sprintf("%s is deprecated, use %s instead", n.API, n.Replacement)
}

//nolint:gochecknoglobals
var (
	legacyICECandidateBaseNotice = DeprecationNotice{
		API:         "LegacyICECandidateBase",
		Replacement: "ICECandidate constructed from an ICECandidateInit",
	}
	legacyICECandidateNotice = DeprecationNotice{
		API:         "LegacyICECandidate",
		Replacement: "ICECandidate constructed from an ICECandidateInit",
	}
)
