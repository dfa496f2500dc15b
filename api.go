// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package rtcmodels

import (
	"github.com/pion/logging"
)

// API bundles the constructors that depend on semi-global settings, such as
// where deprecation notices and debug logs are delivered. The package-level
// constructors use a default API built with an empty SettingEngine.
type API struct {
	settingEngine *SettingEngine
	log           logging.LeveledLogger
}

// NewAPI Creates a new API object for keeping semi-global settings to model objects.
func NewAPI(options ...func(*API)) *API {
	api := &API{}

	for _, o := range options {
		o(api)
	}

	if api.settingEngine == nil {
		api.settingEngine = &SettingEngine{}
	}

	if api.settingEngine.LoggerFactory == nil {
		api.settingEngine.LoggerFactory = logging.NewDefaultLoggerFactory()
	}

	api.log = api.settingEngine.LoggerFactory.NewLogger(loggerScope)

	return api
}

// WithSettingEngine allows providing a SettingEngine to the API.
// Settings should not be changed after passing the engine to an API.
func WithSettingEngine(s SettingEngine) func(a *API) {
	return func(a *API) {
		a.settingEngine = &s
	}
}

var defaultAPI = NewAPI() //nolint:gochecknoglobals

// notifyDeprecated delivers exactly one notice, either to the configured
// handler or as a warning on the API logger.
func (api *API) notifyDeprecated(notice DeprecationNotice) {
	if handler := api.settingEngine.deprecationHandler; handler != nil {
		handler(notice)

		return
	}

	api.log.Warn(notice.String())
}
