package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"Courier/Campaign"
	"Courier/Excel"
	"Courier/Models"
	"Courier/Templates"
	"Courier/email"
)

const configFile = "email_config.json"

func main() {
	setupLogging()
	fmt.Println("=== Email Campaign Sender ===")
	fmt.Println()

	createSampleFiles()

	config, err := Models.LoadCampaignConfig(configFile)
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	emailConfig, err := Models.LoadEmailConfig()
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	template, err := Templates.LoadOrCreate(config.TemplateFile)
	if err != nil {
		log.Fatalf("Error loading template: %v", err)
	}

	printConfig(config)

	if _, err := os.Stat(config.ExcelFile); os.IsNotExist(err) {
		fmt.Printf("Error: file %q not found!\n", config.ExcelFile)
		if confirm("Would you like to create a sample file? (yes/no): ") {
			if err := Excel.WriteSample(config.ExcelFile); err != nil {
				log.Fatalf("Error creating sample file: %v", err)
			}
			fmt.Printf("Created %s - fill it in and run again.\n", config.ExcelFile)
		}
		return
	}

	table, err := Excel.Load(config.ExcelFile)
	if err != nil {
		log.Fatalf("Error reading %s: %v", config.ExcelFile, err)
	}

	columns := config.Columns
	if missing := table.MissingColumns(columns.Required()...); len(missing) > 0 {
		log.Fatalf("Error: missing required columns: %s\nAvailable columns: %s",
			strings.Join(missing, ", "), strings.Join(table.Headers, ", "))
	}
	table.EnsureColumns(columns.Optional()...)

	pending := table.PendingCount(columns.Status)
	fmt.Printf("Total recipients: %d\n", len(table.Rows))
	fmt.Printf("Pending emails: %d\n", pending)
	fmt.Printf("Already sent: %d\n\n", len(table.Rows)-pending)

	if pending == 0 {
		fmt.Println("No pending emails to send.")
		return
	}

	var sender email.Sender
	if config.TestMode {
		fmt.Println("*** RUNNING IN TEST MODE - NO EMAILS WILL BE SENT ***")
		fmt.Println("Set TEST_MODE to false in config to send actual emails")
		fmt.Println()
		sender = email.DryRunSender{From: emailConfig.FromEmail}
	} else {
		batch := pending
		if batch > config.MaxEmailsPerRun {
			batch = config.MaxEmailsPerRun
		}
		fmt.Printf("Ready to send %d emails.\n", batch)
		if !confirm("Continue? (yes/no): ") {
			fmt.Println("Cancelled.")
			return
		}
		sender = email.SMTPSender{Config: emailConfig}
	}

	fmt.Println("\nStarting email campaign...")
	fmt.Println()

	driver := Campaign.NewDriver(config, template, sender)
	summary := driver.Run(table)

	if err := table.Save(); err != nil {
		log.Fatalf("Error saving %s: %v", config.ExcelFile, err)
	}
	fmt.Printf("\nUpdated status information saved to %s\n", config.ExcelFile)

	printSummary(summary, config.TestMode)
}

func printConfig(config Models.CampaignConfig) {
	fmt.Println("Email Configuration:")
	fmt.Printf("   Template: %s\n", config.TemplateFile)
	fmt.Printf("   Recipient file: %s\n", config.ExcelFile)
	fmt.Printf("   Attachments folder: %s\n", config.AttachmentsFolder)
	subject := config.EmailSubject
	if len(subject) > 50 {
		subject = subject[:50] + "..."
	}
	fmt.Printf("   Subject: %s\n", subject)
	fmt.Println()
}

func printSummary(summary Campaign.Summary, testMode bool) {
	divider := strings.Repeat("=", 50)
	fmt.Println()
	fmt.Println(divider)
	fmt.Println("EMAIL CAMPAIGN SUMMARY")
	fmt.Println(divider)
	fmt.Printf("Total recipients in file: %d\n", summary.Total)
	fmt.Printf("Emails processed this run: %d\n", summary.Processed)
	fmt.Printf("Successful: %d\n", summary.Sent)
	fmt.Printf("Failed: %d\n", summary.Failed)
	fmt.Printf("Remaining: %d\n", summary.Remaining)

	if testMode {
		fmt.Println("\n*** This was a TEST RUN - no actual emails were sent ***")
		fmt.Println("Set TEST_MODE to false in config to send real emails")
	}
}

func confirm(prompt string) bool {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(answer)), "y")
}

func setupLogging() {
	// Create logs directory if it doesn't exist
	if err := os.MkdirAll("logs", 0755); err != nil {
		log.Printf("Error creating logs directory: %v\n", err)
		return
	}

	logFile, err := os.OpenFile("logs/application.log",
		os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Error opening log file: %v\n", err)
		return
	}

	// Everything logged goes to the console and the log file
	log.SetOutput(io.MultiWriter(os.Stdout, logFile))
	log.SetFlags(log.Ldate | log.Ltime)
}
