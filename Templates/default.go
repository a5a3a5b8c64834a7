package Templates

import (
	"fmt"
	"log"
	"os"
)

// DefaultTemplate is written to disk when no template file exists yet, so
// a first run always has something to send and the user has a file to edit.
const DefaultTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <style>
        body {
            font-family: Arial, sans-serif;
            line-height: 1.6;
            color: #333;
        }
        .container {
            max-width: 600px;
            margin: 0 auto;
            padding: 20px;
        }
        .header {
            background-color: #f8f9fa;
            padding: 20px;
            text-align: center;
            border-radius: 5px;
        }
        .content {
            padding: 20px 0;
        }
        .footer {
            margin-top: 30px;
            padding-top: 20px;
            border-top: 1px solid #eee;
            font-size: 14px;
            color: #666;
        }
        .button {
            display: inline-block;
            padding: 10px 20px;
            background-color: #007bff;
            color: white;
            text-decoration: none;
            border-radius: 5px;
            margin: 10px 0;
        }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h2>Welcome {{NAME}}!</h2>
        </div>

        <div class="content">
            <p>Dear {{NAME}},</p>

            <p>This is your email template. You can edit this HTML file to change the email content.</p>

            <p><strong>Available placeholders you can use:</strong></p>
            <ul>
                <li><code>{{NAME}}</code> - Recipient's first name</li>
                <li><code>{{DATE}}</code> - Current date</li>
                <li><code>{{EMAIL}}</code> - Recipient's email</li>
                <li><code>{{COMPANY}}</code> - Company name (if column exists)</li>
                <li><code>{{ANY_COLUMN_NAME}}</code> - Any column from your spreadsheet (in UPPERCASE)</li>
            </ul>

            <p>You can add images, links, buttons, and any HTML content:</p>

            <a href="https://example.com" class="button">Click Here</a>

            <p>Edit this file with any text editor or HTML editor!</p>
        </div>

        <div class="footer">
            <p>Best regards,<br>
            Your Name</p>

            <p><small>This email was sent to {{EMAIL}} on {{DATE}}</small></p>
        </div>
    </div>
</body>
</html>`

// LoadOrCreate reads the HTML template at path. When the file does not
// exist it writes DefaultTemplate there and returns that, so the run can
// proceed and the user ends up with an editable starting point.
func LoadOrCreate(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err == nil {
		log.Printf("Loaded email template from %s", path)
		return string(data), nil
	}
	if !os.IsNotExist(err) {
		return "", fmt.Errorf("failed to read template file %s: %v", path, err)
	}

	log.Printf("Template file %s not found, creating a default one", path)
	if err := os.WriteFile(path, []byte(DefaultTemplate), 0644); err != nil {
		return "", fmt.Errorf("failed to write default template %s: %v", path, err)
	}
	return DefaultTemplate, nil
}
