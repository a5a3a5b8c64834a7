package Models

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/yosuke-furukawa/json5/encoding/json5"
)

var validate = validator.New()

// Columns maps the logical fields the tool needs onto spreadsheet headers,
// so a renamed header only requires a config change.
type Columns struct {
	Name          string `json:"name"`
	To            string `json:"to"`
	CC            string `json:"cc"`
	BCC           string `json:"bcc"`
	Status        string `json:"status"`
	Timestamp     string `json:"timestamp"`
	Attachments   string `json:"attachments"`
	CustomSubject string `json:"custom_subject"`
}

// DefaultColumns returns the header names the tool expects out of the box.
func DefaultColumns() Columns {
	return Columns{
		Name:          "First Name",
		To:            "To",
		CC:            "CC",
		BCC:           "BCC",
		Status:        "Email Status",
		Timestamp:     "Sent Timestamp",
		Attachments:   "Attachments",
		CustomSubject: "Custom Subject",
	}
}

// Required lists the headers that must exist in the input table.
func (c Columns) Required() []string {
	return []string{c.Name, c.To, c.CC, c.Status}
}

// Optional lists the headers that are created with empty values when absent.
func (c Columns) Optional() []string {
	return []string{c.BCC, c.Attachments, c.CustomSubject, c.Timestamp}
}

// CampaignConfig holds the settings for one campaign run. It is built once
// at startup and passed by value; nothing mutates it afterwards.
type CampaignConfig struct {
	ExcelFile          string  `json:"EXCEL_FILE" validate:"required"`
	EmailSubject       string  `json:"EMAIL_SUBJECT"`
	TemplateFile       string  `json:"TEMPLATE_FILE" validate:"required"`
	AttachmentsFolder  string  `json:"ATTACHMENTS_FOLDER"`
	DelayBetweenEmails float64 `json:"DELAY_BETWEEN_EMAILS" validate:"min=0"`
	MaxEmailsPerRun    int     `json:"MAX_EMAILS_PER_RUN" validate:"min=1"`
	TestMode           bool    `json:"TEST_MODE"`
	SaveEveryRow       bool    `json:"SAVE_EVERY_ROW"`
	Columns            Columns `json:"COLUMNS"`
}

// DefaultCampaignConfig returns the documented defaults.
func DefaultCampaignConfig() CampaignConfig {
	return CampaignConfig{
		ExcelFile:          "email_list.xlsx",
		EmailSubject:       "Your Email Subject Here - Can use {{NAME}} placeholders",
		TemplateFile:       "email_template.html",
		AttachmentsFolder:  "attachments",
		DelayBetweenEmails: 2,
		MaxEmailsPerRun:    100,
		TestMode:           false,
		SaveEveryRow:       false,
		Columns:            DefaultColumns(),
	}
}

// LoadCampaignConfig overlays the defaults with the settings from the given
// config file. A missing file is fine, the defaults apply as-is. The file is
// parsed as JSON5 so comments and trailing commas in hand-edited configs
// don't break the run.
func LoadCampaignConfig(path string) (CampaignConfig, error) {
	config := DefaultCampaignConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return config, fmt.Errorf("failed to read config file %s: %v", path, err)
	}

	if err := json5.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("failed to parse config file %s: %v", path, err)
	}

	// A partial COLUMNS override keeps the defaults for unnamed fields,
	// but an explicit empty string would break column lookups.
	defaults := DefaultColumns()
	if config.Columns.Name == "" {
		config.Columns.Name = defaults.Name
	}
	if config.Columns.To == "" {
		config.Columns.To = defaults.To
	}
	if config.Columns.CC == "" {
		config.Columns.CC = defaults.CC
	}
	if config.Columns.BCC == "" {
		config.Columns.BCC = defaults.BCC
	}
	if config.Columns.Status == "" {
		config.Columns.Status = defaults.Status
	}
	if config.Columns.Timestamp == "" {
		config.Columns.Timestamp = defaults.Timestamp
	}
	if config.Columns.Attachments == "" {
		config.Columns.Attachments = defaults.Attachments
	}
	if config.Columns.CustomSubject == "" {
		config.Columns.CustomSubject = defaults.CustomSubject
	}

	if err := validate.Struct(config); err != nil {
		return config, fmt.Errorf("invalid configuration in %s: %v", path, err)
	}

	return config, nil
}

// LoadEmailConfig builds the SMTP configuration from the environment,
// loading .env first if present. Missing sender address or password is a
// fatal startup condition reported as an error.
func LoadEmailConfig() (EmailConfig, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, using process environment")
	}

	port := 587
	if raw := os.Getenv("SMTP_PORT"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return EmailConfig{}, fmt.Errorf("invalid SMTP_PORT %q: %v", raw, err)
		}
		port = parsed
	}

	config := EmailConfig{
		SMTPServer:   getEnv("SMTP_SERVER", "smtp.gmail.com"),
		SMTPPort:     port,
		Username:     os.Getenv("EMAIL_USERNAME"),
		Password:     os.Getenv("EMAIL_PASSWORD"),
		FromEmail:    os.Getenv("EMAIL_SENDER"),
		FromName:     os.Getenv("EMAIL_SENDER_NAME"),
		TLSEnabled:   port == 465 || os.Getenv("SMTP_TLS") == "true",
		SkipTLSCheck: os.Getenv("SMTP_SKIP_TLS_VERIFY") == "true",
	}
	if config.Username == "" {
		config.Username = config.FromEmail
	}

	if config.FromEmail == "" || config.Password == "" {
		return config, fmt.Errorf("email credentials not found, please set EMAIL_SENDER and EMAIL_PASSWORD in .env file")
	}
	if err := validate.Struct(config); err != nil {
		return config, fmt.Errorf("invalid email configuration: %v", err)
	}

	return config, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
