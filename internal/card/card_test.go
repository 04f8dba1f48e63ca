package card

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func marshalMap(t *testing.T, v any) map[string]any {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func TestAppointment_Layout(t *testing.T) {
	c := Appointment()
	require.Equal(t, "AdaptiveCard", c.Type)
	require.Equal(t, "1.0", c.Version)
	require.Len(t, c.Body, 3)

	header := c.Body[0].Items[0]
	require.Equal(t, "ColumnSet", header.Type)
	require.Len(t, header.Columns, 2)

	icon := header.Columns[0].Items[0]
	require.Equal(t, "auto", header.Columns[0].Width)
	require.Equal(t, "Image", icon.Type)
	require.Equal(t, "16px", icon.Width)
	require.Equal(t, "16px", icon.Height)
	require.Equal(t, "Appointment", icon.AltText)
	require.True(t, strings.HasPrefix(icon.URL, "data:image/png;base64,"))

	require.Equal(t, "stretch", header.Columns[1].Width)
	require.Equal(t, "Appointment", header.Columns[1].Items[0].Text)
	require.Empty(t, header.Columns[1].Items[0].Weight)

	subtitle := c.Body[1].Items[0]
	require.Equal(t, "Phone call with customer", subtitle.Text)
	require.Equal(t, "bolder", subtitle.Weight)

	require.Equal(t, "TextBlock", c.Body[2].Type)
	require.True(t, c.Body[2].Wrap)
}

func TestAppointment_SubmitAction(t *testing.T) {
	c := Appointment()
	require.Len(t, c.Actions, 1)

	action := c.Actions[0]
	require.Equal(t, "Action.Submit", action.Type)
	require.Equal(t, "Create appointment", action.Title)
	require.Equal(t, createIcon, action.IconURL)
	require.Equal(t, CreateAppointmentAction, action.Data.CustomAction)
	require.NotNil(t, action.Data.CustomParameters)
	require.Empty(t, action.Data.CustomParameters)
}

func TestAppointment_JSONKeepsEmptyCustomParameters(t *testing.T) {
	out := marshalMap(t, Appointment())

	actions := out["actions"].([]any)
	data := actions[0].(map[string]any)["data"].(map[string]any)
	require.Equal(t, "CreateAppointment", data["customAction"])

	params, ok := data["customParameters"]
	require.True(t, ok, "customParameters must be serialised")
	require.Equal(t, map[string]any{}, params)
}

func TestAppointment_ReturnsFreshParameters(t *testing.T) {
	first := Appointment()
	first.Actions[0].Data.CustomParameters["leak"] = "x"

	require.Empty(t, Appointment().Actions[0].Data.CustomParameters)
}

func TestAttachment_ContentType(t *testing.T) {
	att := Attachment(Appointment())
	require.Equal(t, "application/vnd.microsoft.card.adaptive", att.ContentType)

	out := marshalMap(t, att)
	content := out["content"].(map[string]any)
	require.Equal(t, "1.0", content["version"])
}
