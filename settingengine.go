// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package rtcmodels

import (
	"github.com/pion/logging"
)

// SettingEngine allows influencing behavior in ways that are not
// supported by the WebRTC API. This allows us to support additional
// use-cases without deviating from the WebRTC API elsewhere.
type SettingEngine struct {
	deprecationHandler func(DeprecationNotice)
	LoggerFactory      logging.LoggerFactory
}

// SetDeprecationHandler sets the function called each time a deprecated
// dictionary shape is constructed or decoded. The handler runs synchronously
// on the constructing goroutine and cannot fail the construction. Without a
// handler the notice is logged at warn level.
func (e *SettingEngine) SetDeprecationHandler(handler func(DeprecationNotice)) {
	e.deprecationHandler = handler
}
