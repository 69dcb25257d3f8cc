// Package artifact provides the storage collaborators of the assembler:
// whole-file text input and whole-file byte output.
package artifact

import (
	"io/fs"
	"log"
	"os"

	"github.com/ezrec/asm2ms/assembler"
)

var (
	_ assembler.Source = (*Disk)(nil)
	_ assembler.Sink   = (*Disk)(nil)
	_ assembler.Source = FS{}
)

// Disk reads and writes artifacts on the host file system.
type Disk struct {
	Verbose bool // If set, logs byte counts and syncs.
	Sync    bool // If set, flushes written data to stable storage.
}

// ReadText returns the whole content of the file at path.
func (disk *Disk) ReadText(path string) (text string, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}

	if disk.Verbose {
		log.Print(f("read %d bytes", len(data)))
	}

	text = string(data)
	return
}

// WriteBytes replaces the file at path with data.
func (disk *Disk) WriteBytes(path string, data []byte) (err error) {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return
	}
	defer func() {
		cerr := file.Close()
		if err == nil {
			err = cerr
		}
	}()

	n, err := file.Write(data)
	if err != nil {
		return
	}

	if disk.Verbose {
		log.Print(f("saved %d bytes", n))
	}

	if !disk.Sync {
		return
	}

	err = file.Sync()
	if err != nil {
		return
	}

	if disk.Verbose {
		log.Print(f("data synced"))
	}

	return
}

// FS reads artifacts from a read-only file system.
type FS struct {
	fs.FS
}

// ReadText returns the whole content of the named file.
func (fsys FS) ReadText(name string) (text string, err error) {
	data, err := fs.ReadFile(fsys.FS, name)
	if err != nil {
		return
	}

	text = string(data)
	return
}
