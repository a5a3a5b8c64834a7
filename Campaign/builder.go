package Campaign

import (
	"errors"
	"log"
	"strings"
	"time"

	"Courier/Models"
	"Courier/Templates"
	"Courier/email"
)

// NoRecipientStatus is written into the status column when a row has no
// usable TO address, making the failure terminal across runs.
const NoRecipientStatus = "No valid TO email addresses"

// ErrNoValidRecipient marks a row whose TO list is empty after validation.
var ErrNoValidRecipient = errors.New("no valid TO email addresses")

// BuildMessage turns one table row into a transmittable message: parsed
// address lists, chosen and rendered subject, rendered body and resolved
// attachments. It performs no sends and no table mutation.
func BuildMessage(row map[string]string, config Models.CampaignConfig, template string, now time.Time) (Models.EmailMessage, error) {
	columns := config.Columns

	to := parseAddresses(columns.To, row[columns.To])
	cc := parseAddresses(columns.CC, row[columns.CC])
	bcc := parseAddresses(columns.BCC, row[columns.BCC])

	if len(to) == 0 {
		return Models.EmailMessage{}, ErrNoValidRecipient
	}

	subject := Templates.Subject(row, columns, config.EmailSubject)

	return Models.EmailMessage{
		To:          to,
		CC:          cc,
		BCC:         bcc,
		Subject:     Templates.Render(subject, row, columns, now),
		Body:        Templates.Render(template, row, columns, now),
		IsHTML:      true,
		Attachments: ResolveAttachments(config.AttachmentsFolder, row[columns.Attachments]),
	}, nil
}

func parseAddresses(column, value string) []string {
	valid, invalid := email.ParseAddressList(value)
	if len(invalid) > 0 {
		log.Printf("Warning: invalid email addresses skipped in %s: %s", column, strings.Join(invalid, ", "))
	}
	return valid
}
