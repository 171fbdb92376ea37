package input

import (
	"errors"
	"fmt"
	"io"
	"math"
	"reflect"

	"github.com/TudorHulban/findmeeting"
	goerrors "github.com/TudorHulban/go-errors"
	"github.com/google/uuid"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type EventRecord struct {
	ID        string   `mapstructure:"id"`
	Title     string   `mapstructure:"title"`
	Attendees []string `mapstructure:"attendees"`

	// bounds are checked by findmeeting.FromStartEnd
	Start     int  `mapstructure:"start"`
	End       int  `mapstructure:"end"`
	Inclusive bool `mapstructure:"inclusive"`
}

type RequestRecord struct {
	Attendees []string `mapstructure:"attendees"`

	Duration int `mapstructure:"duration"`
}

// Document is the command input: the day's events and one meeting request.
type Document struct {
	Events  []EventRecord `mapstructure:"events"`
	Request RequestRecord `mapstructure:"request"`
}

// LoadFile reads a YAML or JSON document, the format given by the file extension.
func LoadFile(path string) (*Document, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if errRead := v.ReadInConfig(); errRead != nil {
		return nil,
			fmt.Errorf("read input %s: %w", path, errRead)
	}

	return decode(v)
}

// Load reads a document of the passed format (yaml, yml or json).
func Load(r io.Reader, format string) (*Document, error) {
	v := viper.New()
	v.SetConfigType(format)

	if errRead := v.ReadConfig(r); errRead != nil {
		return nil,
			fmt.Errorf("read input: %w", errRead)
	}

	return decode(v)
}

// wholeMinutes rejects fractional numbers decoded into integer fields.
// Without it 540.5 would be truncated to 540.
func wholeMinutes(from, to reflect.Kind, data any) (any, error) {
	if to != reflect.Int || (from != reflect.Float64 && from != reflect.Float32) {
		return data, nil
	}

	value := reflect.ValueOf(data).Float()

	if value != math.Trunc(value) {
		return nil,
			fmt.Errorf(
				"minutes %v: %w",
				value,
				goerrors.ErrInvalidInput{
					Caller:     "decode",
					InputName:  "minutes",
					InputValue: value,
					Issue: errors.New(
						"not a whole number of minutes",
					),
				},
			)
	}

	return data, nil
}

func decode(v *viper.Viper) (*Document, error) {
	var result Document

	errUnmarshal := v.Unmarshal(
		&result,
		viper.DecodeHook(
			mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
				wholeMinutes,
			),
		),
	)
	if errUnmarshal != nil {
		return nil,
			fmt.Errorf("decode input: %w", errUnmarshal)
	}

	for ix := range result.Events {
		if len(result.Events[ix].ID) == 0 {
			result.Events[ix].ID = uuid.NewString()
		}
	}

	return &result,
		nil
}

// ToEvents converts the records into domain events, in document order.
func (d *Document) ToEvents() ([]*findmeeting.Event, error) {
	result := make([]*findmeeting.Event, 0, len(d.Events))

	for ix, record := range d.Events {
		when, errRange := findmeeting.FromStartEnd(record.Start, record.End, record.Inclusive)
		if errRange != nil {
			return nil,
				fmt.Errorf("event %d (%s): %w", ix, record.ID, errRange)
		}

		event, errCr := findmeeting.NewEvent(
			&findmeeting.ParamsNewEvent{
				Title:     record.Title,
				When:      when,
				Attendees: record.Attendees,
			},
		)
		if errCr != nil {
			return nil,
				fmt.Errorf("event %d (%s): %w", ix, record.ID, errCr)
		}

		result = append(result, event)
	}

	return result,
		nil
}

func (d *Document) ToMeetingRequest() (*findmeeting.MeetingRequest, error) {
	request, errCr := findmeeting.NewMeetingRequest(
		&findmeeting.ParamsNewMeetingRequest{
			Duration:  d.Request.Duration,
			Attendees: d.Request.Attendees,
		},
	)
	if errCr != nil {
		return nil,
			fmt.Errorf("request: %w", errCr)
	}

	return request,
		nil
}
