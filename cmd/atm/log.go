package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/conn-castle/topic-manager/internal/messages"
)

const (
	flagLogLevel  = "loglevel"
	flagLogFormat = "logformat"
)

func registerLoggingFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String(flagLogLevel, "warn", messages.RootFlagLogLevel)
	cmd.PersistentFlags().String(flagLogFormat, "text", messages.RootFlagLogFormat)
}

// baseLogger builds the logger selected by the persistent logging flags. Logs go to
// stderr so that machine-readable output on stdout stays clean.
func baseLogger(cmd *cobra.Command) (*slog.Logger, error) {
	level, err := loggerLevel(cmd)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}
	format, _ := cmd.Flags().GetString(flagLogFormat)
	var handler slog.Handler
	switch format {
	case "json":
		handler = slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
	case "text":
		handler = slog.NewTextHandler(cmd.ErrOrStderr(), opts)
	default:
		return nil, fmt.Errorf(messages.RootInvalidLogFormatFmt, format)
	}
	return slog.New(handler), nil
}

func loggerLevel(cmd *cobra.Command) (slog.Level, error) {
	value, _ := cmd.Flags().GetString(flagLogLevel)
	switch value {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelWarn, fmt.Errorf(messages.RootInvalidLogLevelFmt, value)
	}
}
