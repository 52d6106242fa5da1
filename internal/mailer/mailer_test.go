package mailer

import (
	"bytes"
	"testing"
	"text/template"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplatesRender(t *testing.T) {
	data := struct {
		BookingID string
		Details   string
	}{
		BookingID: "BK-TMPL0001",
		Details:   "Movie: The Batman, Seats: 2, Amount: $20.00",
	}

	files := []string{
		"booking_created.tmpl",
		"booking_confirmed.tmpl",
		"booking_cancelled.tmpl",
		"payment_completed.tmpl",
		"payment_failed.tmpl",
	}

	for _, file := range files {
		t.Run(file, func(t *testing.T) {
			tmpl, err := template.New("email").ParseFS(templateFS, "templates/"+file)
			require.NoError(t, err)

			subject := new(bytes.Buffer)
			require.NoError(t, tmpl.ExecuteTemplate(subject, "subject", data))
			assert.Contains(t, subject.String(), "BK-TMPL0001")

			body := new(bytes.Buffer)
			require.NoError(t, tmpl.ExecuteTemplate(body, "plainBody", data))
			assert.Contains(t, body.String(), data.Details)
		})
	}
}

func TestMockMailerRecordsMessages(t *testing.T) {
	mock := NewMockMailer()

	require.NoError(t, mock.Send("alice@example.com", "booking_created.tmpl", "payload"))
	require.NoError(t, mock.Send("bob@example.com", "payment_failed.tmpl", nil))

	sent := mock.Sent()
	require.Len(t, sent, 2)
	assert.Equal(t, "alice@example.com", sent[0].Recipient)
	assert.Equal(t, "booking_created.tmpl", sent[0].TemplateFile)
	assert.Equal(t, "payload", sent[0].Data)

	mock.Reset()
	assert.Empty(t, mock.Sent())
}
