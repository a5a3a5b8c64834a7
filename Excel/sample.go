package Excel

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gocarina/gocsv"
)

// sampleRecipient mirrors the columns the tool expects out of the box.
type sampleRecipient struct {
	FirstName     string `csv:"First Name"`
	To            string `csv:"To"`
	CC            string `csv:"CC"`
	BCC           string `csv:"BCC"`
	Company       string `csv:"Company"`
	CustomSubject string `csv:"Custom Subject"`
	Attachments   string `csv:"Attachments"`
	Status        string `csv:"Email Status"`
	Timestamp     string `csv:"Sent Timestamp"`
}

func sampleRecipients() []sampleRecipient {
	return []sampleRecipient{
		{
			FirstName: "John",
			To:        "john@example.com",
			CC:        "manager@example.com",
			Company:   "ABC Corp",
		},
		{
			FirstName:     "Jane",
			To:            "jane@example.com,jane2@example.com",
			CC:            "boss@example.com,hr@example.com",
			BCC:           "secret@example.com",
			Company:       "XYZ Inc",
			CustomSubject: "Special invitation for {{NAME}}",
			Attachments:   "report.pdf,presentation.pptx",
		},
		{
			FirstName:   "Bob",
			To:          "bob@example.com",
			Company:     "Demo Ltd",
			Attachments: "invoice.pdf",
		},
	}
}

var sampleHeaders = []string{
	"First Name", "To", "CC", "BCC", "Company",
	"Custom Subject", "Attachments", "Email Status", "Sent Timestamp",
}

// WriteSample creates a three-row sample recipient file at the given path,
// in the format matching its extension.
func WriteSample(path string) error {
	if strings.ToLower(filepath.Ext(path)) == ".csv" {
		return writeSampleCSV(path)
	}
	return writeSampleExcel(path)
}

func writeSampleCSV(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create sample csv %s: %v", path, err)
	}
	defer f.Close()

	rows := sampleRecipients()
	if err := gocsv.MarshalFile(&rows, f); err != nil {
		return fmt.Errorf("failed to write sample csv %s: %v", path, err)
	}
	return nil
}

func writeSampleExcel(path string) error {
	table := &Table{Path: path, Sheet: "Sheet1", Headers: sampleHeaders}
	for _, r := range sampleRecipients() {
		table.Rows = append(table.Rows, Row{
			"First Name":     r.FirstName,
			"To":             r.To,
			"CC":             r.CC,
			"BCC":            r.BCC,
			"Company":        r.Company,
			"Custom Subject": r.CustomSubject,
			"Attachments":    r.Attachments,
			"Email Status":   r.Status,
			"Sent Timestamp": r.Timestamp,
		})
	}
	return table.Save()
}
