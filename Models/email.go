package Models

// EmailConfig holds the SMTP connection settings and credentials for a run.
// Loaded once at startup from the environment and treated as read-only.
type EmailConfig struct {
	SMTPServer   string `validate:"required"`
	SMTPPort     int    `validate:"required,min=1,max=65535"`
	Username     string `validate:"required"`
	Password     string `validate:"required"`
	FromEmail    string `validate:"required,email"`
	FromName     string
	TLSEnabled   bool
	SkipTLSCheck bool
}

// EmailMessage represents one fully assembled outgoing email. It is built
// fresh per recipient row and never persisted.
type EmailMessage struct {
	To          []string
	CC          []string
	BCC         []string
	Subject     string
	Body        string
	IsHTML      bool
	Attachments []Attachment
}

// Attachment points at a file on disk. The sender reads the file at
// submission time so message construction stays free of side effects.
type Attachment struct {
	Filename string
	Path     string
}

// AllRecipients returns the full envelope recipient list (to, cc, bcc).
// BCC addresses go into the envelope only, never into a visible header.
func (m EmailMessage) AllRecipients() []string {
	recipients := make([]string, 0, len(m.To)+len(m.CC)+len(m.BCC))
	recipients = append(recipients, m.To...)
	recipients = append(recipients, m.CC...)
	recipients = append(recipients, m.BCC...)
	return recipients
}
