package main

import (
	"fmt"
	"os"
	"path/filepath"
)

const sampleEnv = `# Email Configuration
EMAIL_SENDER=your_email@gmail.com
EMAIL_PASSWORD=your_app_password
SMTP_SERVER=smtp.gmail.com
SMTP_PORT=587

# For Gmail, use an App Password instead of your regular password
# Go to: https://myaccount.google.com/apppasswords
`

const sampleConfig = `{
    "EXCEL_FILE": "email_list.xlsx",
    "EMAIL_SUBJECT": "Your Email Subject Here - Can use {{NAME}} placeholders",
    "TEMPLATE_FILE": "email_template.html",
    "ATTACHMENTS_FOLDER": "attachments",
    "DELAY_BETWEEN_EMAILS": 2,
    "MAX_EMAILS_PER_RUN": 100,
    "TEST_MODE": true,
    "_comment": "Set TEST_MODE to false when ready to send real emails"
}
`

const attachmentsReadme = `Place any files here that you want to attach to ALL emails.
For specific attachments per recipient, use the 'Attachments' column in your spreadsheet.
`

// createSampleFiles writes the starter .env, config file and attachments
// folder on first run. Existing files are left alone.
func createSampleFiles() {
	writeIfAbsent(".env", sampleEnv, ".env file - please update with your email credentials")
	writeIfAbsent("email_config.json", sampleConfig, "email_config.json - easy configuration file")

	if _, err := os.Stat("attachments"); os.IsNotExist(err) {
		if err := os.MkdirAll("attachments", 0755); err != nil {
			fmt.Printf("Warning: could not create attachments folder: %v\n", err)
			return
		}
		readme := filepath.Join("attachments", "README.txt")
		if err := os.WriteFile(readme, []byte(attachmentsReadme), 0644); err != nil {
			fmt.Printf("Warning: could not write %s: %v\n", readme, err)
		}
		fmt.Println("Created attachments folder - place files here to attach to every email")
	}
}

func writeIfAbsent(path, content, description string) {
	if _, err := os.Stat(path); err == nil {
		return
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		fmt.Printf("Warning: could not create %s: %v\n", path, err)
		return
	}
	fmt.Printf("Created %s\n", description)
}
