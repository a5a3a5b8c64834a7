package Campaign

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"Courier/Excel"
	"Courier/Models"
	"Courier/email"
)

// Summary aggregates the outcome of one campaign run. Remaining is always
// PendingAtStart minus Processed, so it matches reality even after the
// per-run cap halts the iteration early.
type Summary struct {
	Total          int
	PendingAtStart int
	Processed      int
	Sent           int
	Failed         int
	Remaining      int
}

// Driver walks the recipient table in order and applies the per-row
// send/skip rules. It owns the table for the duration of the run and is
// the only thing that mutates it.
type Driver struct {
	Config   Models.CampaignConfig
	Template string
	Sender   email.Sender

	// Sleep and Now are swappable in tests.
	Sleep func(time.Duration)
	Now   func() time.Time
}

// NewDriver wires a driver with the real clock.
func NewDriver(config Models.CampaignConfig, template string, sender email.Sender) *Driver {
	return &Driver{
		Config:   config,
		Template: template,
		Sender:   sender,
		Sleep:    time.Sleep,
		Now:      time.Now,
	}
}

// Run processes pending rows in table order up to the per-run cap and
// writes each outcome back onto the table. Rows with an existing status
// are never touched and never consume the cap; the cap counts processed
// rows, whether they sent or failed. One row failing never aborts the run.
func (d *Driver) Run(table *Excel.Table) Summary {
	columns := d.Config.Columns
	summary := Summary{
		Total:          len(table.Rows),
		PendingAtStart: table.PendingCount(columns.Status),
	}

	for i, row := range table.Rows {
		if strings.TrimSpace(row[columns.Status]) != "" {
			continue // already has history, never re-send
		}
		if summary.Processed >= d.Config.MaxEmailsPerRun {
			log.Printf("Reached maximum emails per run (%d), stopping", d.Config.MaxEmailsPerRun)
			break
		}

		status, timestamp, sent := d.processRow(row)
		row[columns.Status] = status
		if timestamp != "" {
			row[columns.Timestamp] = timestamp
		}
		summary.Processed++
		if sent {
			summary.Sent++
		} else {
			summary.Failed++
		}

		if d.Config.SaveEveryRow {
			if err := table.Save(); err != nil {
				log.Printf("Warning: could not save progress to %s: %v", table.Path, err)
			}
		}

		// No trailing delay after the last row or once the cap is hit.
		if summary.Processed < d.Config.MaxEmailsPerRun && i < len(table.Rows)-1 {
			d.Sleep(time.Duration(d.Config.DelayBetweenEmails * float64(time.Second)))
		}
	}

	summary.Remaining = summary.PendingAtStart - summary.Processed
	return summary
}

// processRow builds and sends one message. A panic anywhere below is
// converted into the row's failure status so the campaign continues and
// the table still gets saved with everything recorded so far.
func (d *Driver) processRow(row Excel.Row) (status, timestamp string, sent bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Unexpected error processing row for %s: %v", row[d.Config.Columns.Name], r)
			status = fmt.Sprintf("Failed: %v", r)
			timestamp = ""
			sent = false
		}
	}()

	message, err := BuildMessage(row, d.Config, d.Template, d.Now())
	if err != nil {
		log.Printf("Skipping %s: %v", row[d.Config.Columns.Name], err)
		if errors.Is(err, ErrNoValidRecipient) {
			return NoRecipientStatus, "", false
		}
		return fmt.Sprintf("Failed: %v", err), "", false
	}

	sentStatus, err := d.Sender.Send(message)
	if err != nil {
		log.Printf("Failed to send email to %s: %v", strings.Join(message.To, ", "), err)
		return fmt.Sprintf("Failed: %v", err), "", false
	}

	log.Printf("Email sent to %s (%s)", row[d.Config.Columns.Name], strings.Join(message.To, ", "))
	return sentStatus, d.Now().Format("2006-01-02 15:04:05"), true
}
