// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pion/logging"
	"github.com/pion/rtcmodels"
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"
)

var (
	errUnknownKind     = errors.New("unknown dictionary kind")
	errUnknownLogLevel = errors.New("unknown log level")
)

type options struct {
	logLevel string
	yaml     bool
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "rtcmodels",
		Short:         "Validate and normalize WebRTC dictionaries",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn",
		"log level: disabled, error, warn, info, debug or trace")
	root.PersistentFlags().BoolVar(&opts.yaml, "yaml", false,
		"read the input as YAML, implied by a .yaml or .yml file extension")

	root.AddCommand(
		&cobra.Command{
			Use:   "normalize <kind> [file]",
			Short: "Decode a dictionary and print its canonical JSON form",
			Long:  "Decode a dictionary and print its canonical JSON form.\n\nKinds: " + strings.Join(kindNames(), ", "),
			Args:  cobra.RangeArgs(1, 2),
			RunE: func(cmd *cobra.Command, args []string) error {
				out, err := run(cmd, opts, args)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))

				return err
			},
		},
		&cobra.Command{
			Use:   "validate <kind> [file]",
			Short: "Decode a dictionary and report whether it is valid",
			Long:  "Decode a dictionary and report whether it is valid.\n\nKinds: " + strings.Join(kindNames(), ", "),
			Args:  cobra.RangeArgs(1, 2),
			RunE: func(cmd *cobra.Command, args []string) error {
				if _, err := run(cmd, opts, args); err != nil {
					return err
				}
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "valid")

				return err
			},
		},
	)

	return root
}

// run reads the input named by args and normalizes it as the requested kind.
func run(cmd *cobra.Command, opts *options, args []string) ([]byte, error) {
	normalize, ok := kinds[args[0]]
	if !ok {
		return nil, fmt.Errorf("%w: %s", errUnknownKind, args[0])
	}

	level, err := parseLogLevel(opts.logLevel)
	if err != nil {
		return nil, err
	}

	data, isYAML, err := readInput(cmd, args[1:])
	if err != nil {
		return nil, err
	}
	if isYAML || opts.yaml {
		if data, err = yaml.YAMLToJSON(data); err != nil {
			return nil, err
		}
	}

	api := rtcmodels.NewAPI(rtcmodels.WithSettingEngine(rtcmodels.SettingEngine{
		LoggerFactory: &logging.DefaultLoggerFactory{
			Writer:          cmd.ErrOrStderr(),
			DefaultLogLevel: level,
			ScopeLevels:     map[string]logging.LogLevel{},
		},
	}))

	return normalize(api, data)
}

func readInput(cmd *cobra.Command, args []string) ([]byte, bool, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())

		return data, false, err
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, false, err
	}

	switch strings.ToLower(filepath.Ext(args[0])) {
	case ".yaml", ".yml":
		return data, true, nil
	default:
		return data, false, nil
	}
}

func parseLogLevel(raw string) (logging.LogLevel, error) {
	switch strings.ToLower(raw) {
	case "disabled":
		return logging.LogLevelDisabled, nil
	case "error":
		return logging.LogLevelError, nil
	case "warn":
		return logging.LogLevelWarn, nil
	case "info":
		return logging.LogLevelInfo, nil
	case "debug":
		return logging.LogLevelDebug, nil
	case "trace":
		return logging.LogLevelTrace, nil
	default:
		return logging.LogLevelDisabled, fmt.Errorf("%w: %s", errUnknownLogLevel, raw)
	}
}

func kindNames() []string {
	names := make([]string, 0, len(kinds))
	for name := range kinds {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
