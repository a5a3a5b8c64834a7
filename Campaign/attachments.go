package Campaign

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"Courier/Models"
)

// ResolveAttachments collects the files for one message: every regular
// file directly inside globalFolder (non-recursive) first, then the
// trimmed comma separated row specific list. Missing files and a missing
// folder are warnings, never fatal. Duplicates are kept, they may point
// at different source paths.
func ResolveAttachments(globalFolder, rowList string) []Models.Attachment {
	var attachments []Models.Attachment

	if globalFolder != "" {
		entries, err := os.ReadDir(globalFolder)
		if err != nil {
			if !os.IsNotExist(err) {
				log.Printf("Warning: could not read attachments folder %s: %v", globalFolder, err)
			}
		} else {
			for _, entry := range entries {
				if entry.IsDir() {
					continue
				}
				attachments = append(attachments, Models.Attachment{
					Filename: entry.Name(),
					Path:     filepath.Join(globalFolder, entry.Name()),
				})
			}
		}
	}

	for _, part := range strings.Split(rowList, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if _, err := os.Stat(part); err != nil {
			log.Printf("Warning: attachment file not found: %s", part)
			continue
		}
		attachments = append(attachments, Models.Attachment{
			Filename: filepath.Base(part),
			Path:     part,
		})
	}

	return attachments
}
