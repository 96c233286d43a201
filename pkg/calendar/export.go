package calendar

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/emersion/go-ical"
	"github.com/google/uuid"
)

const productID = "-//Lifetimer//Countdown//EN"

// DefaultSummary is the event title used when none is given
const DefaultSummary = "Lifetimer countdown ends"

// ErrNoTarget is returned when exporting without an active countdown
var ErrNoTarget = errors.New("no active countdown to export")

// ExportOptions controls the exported event
type ExportOptions struct {
	Summary     string
	Description string
	UID         string    // generated when empty
	Stamp       time.Time // DTSTAMP, defaults to now
}

// BuildEvent creates a calendar holding a single zero-length event at target
func BuildEvent(target time.Time, opts ExportOptions) (*ical.Calendar, error) {
	if target.IsZero() {
		return nil, ErrNoTarget
	}

	if opts.Summary == "" {
		opts.Summary = DefaultSummary
	}
	if opts.UID == "" {
		opts.UID = uuid.New().String()
	}
	if opts.Stamp.IsZero() {
		opts.Stamp = time.Now()
	}

	event := ical.NewEvent()
	event.Props.SetText(ical.PropUID, opts.UID)
	event.Props.SetDateTime(ical.PropDateTimeStamp, opts.Stamp.UTC())
	event.Props.SetDateTime(ical.PropDateTimeStart, target.UTC())
	event.Props.SetDateTime(ical.PropDateTimeEnd, target.UTC())
	event.Props.SetText(ical.PropSummary, opts.Summary)
	if opts.Description != "" {
		event.Props.SetText(ical.PropDescription, opts.Description)
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, productID)
	cal.Children = append(cal.Children, event.Component)

	return cal, nil
}

// WriteEvent encodes the target as an .ics document to w
func WriteEvent(w io.Writer, target time.Time, opts ExportOptions) error {
	cal, err := BuildEvent(target, opts)
	if err != nil {
		return err
	}

	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		return fmt.Errorf("failed to encode calendar: %w", err)
	}
	return nil
}
