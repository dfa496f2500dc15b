// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package rtcmodels

import "fmt"

// ICEComponent describes if the ice transport is used for RTP
// (or RTCP multiplexing).
type ICEComponent int

const (
	// ICEComponentRTP indicates that the ICE Transport is used for RTP (or
	// RTCP multiplexing), as defined in
	// https://tools.ietf.org/html/rfc5245#section-4.1.1.1. This represents
	// the component-id value 1 when encoded in candidate-attribute.
	ICEComponentRTP ICEComponent = iota + 1

	// ICEComponentRTCP indicates that the ICE Transport is used for RTCP as
	// defined by https://tools.ietf.org/html/rfc5245#section-4.1.1.1. This
	// represents the component-id value 2 when encoded in candidate-attribute.
	ICEComponentRTCP
)

// This is done this way because of a linter.
const (
	iceComponentRTPStr  = "rtp"
	iceComponentRTCPStr = "rtcp"
)

// NewICEComponent takes a string and converts it to ICEComponent.
func NewICEComponent(raw string) (ICEComponent, error) {
	switch raw {
	case iceComponentRTPStr:
		return ICEComponentRTP, nil
	case iceComponentRTCPStr:
		return ICEComponentRTCP, nil
	default:
		return ICEComponent(Unknown), fmt.Errorf("%w: %s", errICEComponentUnknown, raw)
	}
}

// newICEComponentFromID maps a candidate-attribute component-id.
func newICEComponentFromID(id uint16) (ICEComponent, error) {
	switch id {
	case 1:
		return ICEComponentRTP, nil
	case 2:
		return ICEComponentRTCP, nil
	default:
		return ICEComponent(Unknown), fmt.Errorf("%w: %d", errICEComponentUnknown, id)
	}
}

func (t ICEComponent) String() string {
	switch t {
	case ICEComponentRTP:
		return iceComponentRTPStr
	case ICEComponentRTCP:
		return iceComponentRTCPStr
	default:
		return ErrUnknownType.Error()
	}
}
