package slot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCreatePayloadBareArray(t *testing.T) {
	body := `[
		{"title":"Morning","date":"2026-03-10","startTime":"09:00","endTime":"10:00","maxParticipants":3},
		{"title":"Afternoon","date":"2026-03-10","startTime":"14:00","endTime":"15:00","maxParticipants":3}
	]`
	inputs, err := ParseCreatePayload([]byte(body))
	require.NoError(t, err)
	require.Len(t, inputs, 2)
	assert.Equal(t, "Morning", inputs[0].Title)
	assert.Equal(t, "Afternoon", inputs[1].Title)
}

func TestParseCreatePayloadSlotsEnvelope(t *testing.T) {
	body := `{"slots":[{"title":"Morning","date":"2026-03-10","startTime":"09:00","endTime":"10:00","maxParticipants":3}]}`
	inputs, err := ParseCreatePayload([]byte(body))
	require.NoError(t, err)
	require.Len(t, inputs, 1)
	assert.Equal(t, "Morning", inputs[0].Title)
}

func TestParseCreatePayloadDateExplosion(t *testing.T) {
	body := `{"date":"2026-03-10","timeSlots":[
		{"title":"Morning","startTime":"09:00","endTime":"10:00","maxParticipants":3},
		{"title":"Afternoon","startTime":"14:00","endTime":"15:00","maxParticipants":3}
	]}`
	inputs, err := ParseCreatePayload([]byte(body))
	require.NoError(t, err)
	require.Len(t, inputs, 2)
	want := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, want, inputs[0].Date.Time)
	assert.Equal(t, want, inputs[1].Date.Time)
}

func TestParseCreatePayloadSingleFlatSlot(t *testing.T) {
	body := `{"title":"Morning","date":"2026-03-10","startTime":"09:00","endTime":"10:00","maxParticipants":3}`
	inputs, err := ParseCreatePayload([]byte(body))
	require.NoError(t, err)
	require.Len(t, inputs, 1)
	assert.Equal(t, "Morning", inputs[0].Title)
}

func TestParseCreatePayloadRejectsUnknownShape(t *testing.T) {
	cases := map[string]string{
		"empty object":  `{}`,
		"empty body":    ``,
		"untitled":      `{"date":"2026-03-10"}`,
		"invalid json":  `{"slots":`,
		"empty array":   `[]`,
		"empty slots":   `{"slots":[]}`,
		"empty explode": `{"date":"2026-03-10","timeSlots":[]}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseCreatePayload([]byte(body))
			assert.Error(t, err)
		})
	}
}

func TestParseCreatePayloadAcceptsRFC3339Dates(t *testing.T) {
	body := `{"title":"Morning","date":"2026-03-10T00:00:00Z","startTime":"09:00","endTime":"10:00","maxParticipants":3}`
	inputs, err := ParseCreatePayload([]byte(body))
	require.NoError(t, err)
	assert.Equal(t, 2026, inputs[0].Date.Year())
}

func TestFlexDateNormalizesToUTCMidnight(t *testing.T) {
	want := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)

	var bare FlexDate
	require.NoError(t, bare.UnmarshalJSON([]byte(`"2026-03-10"`)))
	assert.Equal(t, want, bare.Time)

	// An offset timestamp keeps the sender's calendar day.
	var offset FlexDate
	require.NoError(t, offset.UnmarshalJSON([]byte(`"2026-03-10T22:00:00-05:00"`)))
	assert.Equal(t, want, offset.Time)
}

func TestSlotInputValidate(t *testing.T) {
	valid := func() SlotInput {
		return SlotInput{
			Title:           "Morning",
			Date:            FlexDate{time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)},
			StartTime:       "09:00",
			EndTime:         "10:00",
			MaxParticipants: 3,
		}
	}

	in := valid()
	require.NoError(t, in.Validate())

	in = valid()
	in.Title = "  "
	assert.ErrorIs(t, in.Validate(), ErrValidation)

	in = valid()
	in.StartTime = "10:00"
	in.EndTime = "09:00"
	assert.ErrorIs(t, in.Validate(), ErrValidation)

	in = valid()
	in.StartTime = in.EndTime
	assert.ErrorIs(t, in.Validate(), ErrValidation)

	in = valid()
	in.MaxParticipants = 0
	assert.ErrorIs(t, in.Validate(), ErrValidation)

	in = valid()
	in.CurrentParticipants = -1
	assert.ErrorIs(t, in.Validate(), ErrValidation)
}

func TestSlotInputToModelDefaultsActive(t *testing.T) {
	in := SlotInput{Title: "Morning"}
	assert.True(t, in.ToModel().IsActive)

	inactive := false
	in.IsActive = &inactive
	assert.False(t, in.ToModel().IsActive)
}
