package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/TudorHulban/findmeeting"
	"github.com/TudorHulban/findmeeting/internal/config"
	"github.com/TudorHulban/findmeeting/internal/input"
	"github.com/TudorHulban/findmeeting/internal/logging"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type response struct {
	Windows []findmeeting.TimeRange `json:"windows"`
	Busy    []findmeeting.TimeRange `json:"busy"`
}

func main() {
	if errRun := run(os.Args[1:], os.Stdin, os.Stdout); errRun != nil {
		fmt.Fprintln(os.Stderr, errRun)

		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	cfg, errConfig := config.Load(args)
	if errConfig != nil {
		return errConfig
	}

	logger, errLogger := logging.New(
		&logging.ParamsNewLogger{
			Level:      cfg.LogLevel,
			Production: cfg.IsProduction(),
		},
	)
	if errLogger != nil {
		return errLogger
	}
	defer func() {
		_ = logger.Sync()
	}()

	logger = logger.With(zap.String("run", uuid.NewString()))

	document, errInput := loadDocument(cfg, stdin)
	if errInput != nil {
		logger.Error("load input", zap.String("input", cfg.InputPath), zap.Error(errInput))

		return errInput
	}

	events, errEvents := document.ToEvents()
	if errEvents != nil {
		logger.Error("invalid event", zap.Error(errEvents))

		return errEvents
	}

	request, errRequest := document.ToMeetingRequest()
	if errRequest != nil {
		logger.Error("invalid meeting request", zap.Error(errRequest))

		return errRequest
	}

	for ix, event := range events {
		logger.Debug(
			"event loaded",
			zap.String("id", document.Events[ix].ID),
			zap.Stringer("event", event),
		)
	}

	query := findmeeting.NewFindMeetingQuery(
		&findmeeting.ParamsNewFindMeetingQuery{
			Logger: logger,
		},
	)

	windows := query.Query(events, request)

	logger.Info(
		"meeting windows found",
		zap.Int("events", len(events)),
		zap.Int("windows", len(windows)),
	)

	encoder := json.NewEncoder(stdout)
	encoder.SetIndent("", "  ")

	return encoder.Encode(
		response{
			Windows: windows,
			Busy:    findmeeting.BusyBlocks(events, request),
		},
	)
}

func loadDocument(cfg *config.Config, stdin io.Reader) (*input.Document, error) {
	if cfg.InputPath == config.InputStdin {
		return input.Load(stdin, cfg.InputFormat)
	}

	return input.LoadFile(cfg.InputPath)
}
