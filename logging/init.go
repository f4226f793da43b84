package logging

import (
	"io"
	"log"
	"os"

	"github.com/groupguard/groupguard/version"
)

func init() {
	writers := []io.Writer{os.Stdout}
	if f, err := os.OpenFile("groupguard.log", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644); err == nil {
		writers = append(writers, f)
	} else {
		log.Println("Unable to open log file:", err)
	}
	log.SetOutput(io.MultiWriter(writers...))
	log.SetPrefix("[groupguard] ")
	log.SetFlags(log.LstdFlags | log.Lshortfile | log.Lmicroseconds)

	log.Println("Version:", version.Revision)
}
