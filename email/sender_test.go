package email

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Courier/Models"
)

func TestDryRunSenderNeverFailsAndPrintsPreview(t *testing.T) {
	var out bytes.Buffer
	sender := DryRunSender{From: "me@example.com", Out: &out}

	status, err := sender.Send(Models.EmailMessage{
		To:      []string{"jane@x.com"},
		CC:      []string{"boss@x.com"},
		BCC:     []string{"secret@x.com"},
		Subject: "Hello Jane",
		Body:    "<p>Hi</p>",
		IsHTML:  true,
		Attachments: []Models.Attachment{
			{Filename: "report.pdf", Path: "/tmp/report.pdf"},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, DryRunStatus, status)

	preview := out.String()
	assert.Contains(t, preview, "TEST MODE - Email Preview")
	assert.Contains(t, preview, "From: me@example.com")
	assert.Contains(t, preview, "To: jane@x.com")
	assert.Contains(t, preview, "CC: boss@x.com")
	assert.Contains(t, preview, "BCC: secret@x.com")
	assert.Contains(t, preview, "Subject: Hello Jane")
	assert.Contains(t, preview, "Attachments: report.pdf")
	assert.Contains(t, preview, "<p>Hi</p>")
}

func TestDryRunSenderTruncatesLongBody(t *testing.T) {
	var out bytes.Buffer
	sender := DryRunSender{Out: &out}

	long := strings.Repeat("x", 600)
	_, err := sender.Send(Models.EmailMessage{To: []string{"a@x.com"}, Body: long})
	require.NoError(t, err)

	preview := out.String()
	assert.Contains(t, preview, strings.Repeat("x", 500)+"...")
	assert.NotContains(t, preview, strings.Repeat("x", 501))
}

func TestDryRunSenderNoAttachments(t *testing.T) {
	var out bytes.Buffer
	sender := DryRunSender{Out: &out}

	status, err := sender.Send(Models.EmailMessage{To: []string{"a@x.com"}})
	require.NoError(t, err)
	assert.Equal(t, DryRunStatus, status)
	assert.Contains(t, out.String(), "Attachments: None")
}

func TestSMTPSenderFailsOnUnreadableAttachment(t *testing.T) {
	sender := SMTPSender{Config: Models.EmailConfig{
		SMTPServer: "smtp.example.com",
		SMTPPort:   587,
		Username:   "me@example.com",
		Password:   "secret",
		FromEmail:  "me@example.com",
	}}

	_, err := sender.Send(Models.EmailMessage{
		To:          []string{"jane@x.com"},
		Attachments: []Models.Attachment{{Filename: "gone.pdf", Path: "/nonexistent/gone.pdf"}},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open attachment")
}
