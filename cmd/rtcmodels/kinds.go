// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/pion/rtcmodels"
)

// normalizer decodes one dictionary kind and re-encodes it canonically.
type normalizer func(api *rtcmodels.API, data []byte) ([]byte, error)

type dictionary interface {
	MarshalJSON() ([]byte, error)
	UnmarshalJSON(data []byte) error
}

//nolint:gochecknoglobals
var kinds = map[string]normalizer{
	"ice-server": func(_ *rtcmodels.API, data []byte) ([]byte, error) {
		return roundTrip(&rtcmodels.ICEServer{}, data)
	},
	"configuration": func(_ *rtcmodels.API, data []byte) ([]byte, error) {
		return roundTrip(&rtcmodels.Configuration{}, data)
	},
	"ice-candidate-init": func(_ *rtcmodels.API, data []byte) ([]byte, error) {
		return roundTrip(&rtcmodels.ICECandidateInit{}, data)
	},
	"ice-candidate": func(api *rtcmodels.API, data []byte) ([]byte, error) {
		candidate, err := api.UnmarshalICECandidate(data)
		if err != nil {
			return nil, err
		}

		return candidate.MarshalJSON()
	},
	"legacy-ice-candidate": func(api *rtcmodels.API, data []byte) ([]byte, error) {
		candidate, err := api.UnmarshalLegacyICECandidate(data) //nolint:staticcheck
		if err != nil {
			return nil, err
		}

		return candidate.MarshalJSON()
	},
	"legacy-ice-candidate-base": func(api *rtcmodels.API, data []byte) ([]byte, error) {
		base, err := api.UnmarshalLegacyICECandidateBase(data) //nolint:staticcheck
		if err != nil {
			return nil, err
		}

		return base.MarshalJSON()
	},
}

func roundTrip(d dictionary, data []byte) ([]byte, error) {
	if err := d.UnmarshalJSON(data); err != nil {
		return nil, err
	}

	return d.MarshalJSON()
}
