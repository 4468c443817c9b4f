package genai

import (
	"fmt"
	"strings"
	"time"
)

// PromptInput contains the event fields the description is drafted from.
type PromptInput struct {
	EventTitle     string
	EventVenue     string
	EventStartTime string
	EventEndTime   string
	EventStartDate string
	EventEndDate   string
	EventCost      string
}

// BuildEventPrompt formats the event fields into the description prompt.
// Dates are reformatted to day-month-year; a date that does not parse is
// rendered as "Not specified" rather than failing the request, since only
// description quality is at stake.
func BuildEventPrompt(input PromptInput) string {
	var sb strings.Builder
	sb.WriteString("Generate an event description based on the following details:\n")
	sb.WriteString(fmt.Sprintf("- Event Title: %s\n", input.EventTitle))
	sb.WriteString(fmt.Sprintf("- Event Venue: %s\n", input.EventVenue))
	sb.WriteString(fmt.Sprintf("- Start Time: %s\n", input.EventStartTime))
	sb.WriteString(fmt.Sprintf("- End Time: %s\n", input.EventEndTime))
	sb.WriteString(fmt.Sprintf("- Start Date: %s\n", FormatDate(input.EventStartDate)))
	sb.WriteString(fmt.Sprintf("- End Date: %s\n", FormatDate(input.EventEndDate)))
	sb.WriteString(fmt.Sprintf("- Event Cost: $%s\n", input.EventCost))
	sb.WriteString("Join us for an exciting event!\n")
	sb.WriteString("Just return the description without any additional text. ")
	sb.WriteString("Avoid using any markdown or code formatting and symbols.")
	return sb.String()
}

// FormatDate converts YYYY-MM-DD to DD-MM-YYYY. Empty input stays empty;
// anything unparseable becomes "Not specified".
func FormatDate(date string) string {
	if date == "" {
		return ""
	}
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return "Not specified"
	}
	return t.Format("02-01-2006")
}
