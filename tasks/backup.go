package tasks

import (
	"log"
	"os"

	"github.com/groupguard/groupguard/store"
)

// BackupDataFile - copies the moderation data file to a .bak alongside it. The data file
// is rewritten wholesale after every message, so a periodic copy is the recovery point if
// a write is interrupted.
func BackupDataFile(path string) {
	log.Println("Running data file backup task...")

	raw, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Non-fatal error reading data file for backup: %v", err)
		return
	}
	if err := os.WriteFile(path+".bak", raw, 0644); err != nil {
		log.Printf("Non-fatal error writing backup: %v", err)
		return
	}

	log.Println("Finished data file backup task")
}

// ReportStats - logs a one-line moderation summary for the operator.
func ReportStats(data *store.DataStore) {
	stats := data.Stats()
	log.Printf("Moderation stats: checked=%d violations=%d deleted=%d banned=%d",
		stats.MessagesChecked, stats.ViolationsFound, stats.DeletedMessages, stats.BannedUsers)
}
