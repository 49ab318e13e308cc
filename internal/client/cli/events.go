package cli

import (
	"context"
	"errors"

	"github.com/ecellnce/campushub/internal/client/models"
	"github.com/ecellnce/campushub/internal/common"
)

// Events prints the events list, optionally filtered by category.
func (a *App) Events(ctx context.Context, category string) error {
	st, err := a.feed.Events(ctx)
	if err != nil {
		printlnFn("error:", err.Error())
		return err
	}
	events := models.FilterByCategory(st.Events, category)
	if len(events) == 0 {
		printlnFn("No events in this category.")
		return nil
	}
	for _, e := range events {
		printlnFn(FormatEvent(e, st.RSVP[e.ID]))
	}
	return nil
}

// RSVP toggles attendance on an event.
func (a *App) RSVP(ctx context.Context, eventID string) error {
	attending, err := a.feed.ToggleRSVP(ctx, eventID)
	if err != nil {
		if errors.Is(err, common.ErrCapacity) {
			printlnFn("Event is full.")
		} else {
			printlnFn("error:", err.Error())
		}
		return err
	}
	if attending {
		printlnFn("You're in!")
	} else {
		printlnFn("RSVP canceled.")
	}
	return nil
}
