// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package rtcmodels_test

import (
	"errors"
	"fmt"

	"github.com/pion/rtcmodels"
)

func ExampleConfiguration_MarshalJSON() {
	configuration := rtcmodels.Configuration{
		ICEServers: []rtcmodels.ICEServer{
			{URLs: rtcmodels.NewICEServerURL("stun:stun.l.google.com:19302")},
		},
	}

	data, err := configuration.MarshalJSON()
	if err != nil {
		panic(err)
	}
	fmt.Println(string(data))
	// Output: {"iceServers":[{"urls":"stun:stun.l.google.com:19302"}]}
}

func ExampleNewICECandidate() {
	candidateInit, err := rtcmodels.NewICECandidateInit(
		"candidate:4234997325 1 udp 2043278322 192.168.0.56 44323 typ host",
		rtcmodels.WithSDPMLineIndex(0),
	)
	if err != nil {
		panic(err)
	}

	candidate, err := rtcmodels.NewICECandidate(&candidateInit)
	if err != nil {
		panic(err)
	}

	port := candidate.Attributes().Port
	data, err := candidate.MarshalJSON()
	if err != nil {
		panic(err)
	}
	fmt.Println(*port)
	fmt.Println(string(data))
	// Output:
	// 44323
	// {"candidate":"candidate:4234997325 1 udp 2043278322 192.168.0.56 44323 typ host","sdpMid":null,"sdpMLineIndex":0,"userFragment":null}
}

func ExampleNewICECandidateInit_missingMediaReference() {
	_, err := rtcmodels.NewICECandidateInit("candidate:4234997325 1 udp 2043278322 192.168.0.56 44323 typ host")
	fmt.Println(errors.Is(err, rtcmodels.ErrSDPMidAndMLineIndexNull))
	// Output: true
}
