// Package card builds the adaptive cards rendered in the agent's smart assist
// pane.
package card

import (
	"strconv"

	"smartassist-bot/internal/domain"
)

// ContentType is the attachment content type for adaptive cards.
const ContentType = "application/vnd.microsoft.card.adaptive"

const (
	schemaVersion = "1.0"

	// CreateAppointmentAction must already be registered with the smart assist
	// control that renders the card.
	CreateAppointmentAction = "CreateAppointment"
)

// AdaptiveCard is the root card document.
type AdaptiveCard struct {
	Type    string    `json:"type"`
	Version string    `json:"version"`
	Body    []Element `json:"body"`
	Actions []Action  `json:"actions,omitempty"`
}

// Element is any body element. Only the fields relevant to the element's Type
// are populated.
type Element struct {
	Type    string    `json:"type"`
	Items   []Element `json:"items,omitempty"`
	Columns []Element `json:"columns,omitempty"`
	Width   string    `json:"width,omitempty"`
	Height  string    `json:"height,omitempty"`
	URL     string    `json:"url,omitempty"`
	AltText string    `json:"altText,omitempty"`
	Text    string    `json:"text,omitempty"`
	Weight  string    `json:"weight,omitempty"`
	Wrap    bool      `json:"wrap,omitempty"`
}

// Action is a card action button.
type Action struct {
	Type    string     `json:"type"`
	Title   string     `json:"title"`
	IconURL string     `json:"iconUrl,omitempty"`
	Data    ActionData `json:"data"`
}

// ActionData is the payload posted back to the smart assist control.
// CustomParameters is never omitted: the control rejects actions without it.
type ActionData struct {
	CustomAction     string            `json:"customAction"`
	CustomParameters map[string]string `json:"customParameters"`
}

func container(items ...Element) Element {
	return Element{Type: "Container", Items: items}
}

func columnSet(columns ...Element) Element {
	return Element{Type: "ColumnSet", Columns: columns}
}

func column(width string, items ...Element) Element {
	return Element{Type: "Column", Width: width, Items: items}
}

func image(url, altText string, px int) Element {
	size := pixels(px)
	return Element{Type: "Image", URL: url, AltText: altText, Width: size, Height: size}
}

func textBlock(text string) Element {
	return Element{Type: "TextBlock", Text: text}
}

func pixels(n int) string {
	return strconv.Itoa(n) + "px"
}

// Appointment builds the "Phone call with customer" appointment suggestion.
func Appointment() AdaptiveCard {
	title := textBlock("Phone call with customer")
	title.Weight = "bolder"

	description := textBlock("Setup a phone call with the customer. The appointment fields will be auto populated based on context")
	description.Wrap = true

	return AdaptiveCard{
		Type:    "AdaptiveCard",
		Version: schemaVersion,
		Body: []Element{
			container(
				columnSet(
					column("auto", image(appointmentIcon, "Appointment", 16)),
					column("stretch", textBlock("Appointment")),
				),
			),
			container(title),
			description,
		},
		Actions: []Action{
			{
				Type:    "Action.Submit",
				Title:   "Create appointment",
				IconURL: createIcon,
				Data: ActionData{
					CustomAction:     CreateAppointmentAction,
					CustomParameters: map[string]string{},
				},
			},
		},
	}
}

// Attachment wraps an adaptive card for a message activity.
func Attachment(c AdaptiveCard) domain.Attachment {
	return domain.Attachment{ContentType: ContentType, Content: c}
}
