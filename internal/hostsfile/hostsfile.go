package hostsfile

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	atomicfile "github.com/natefinch/atomic"
	"github.com/rs/zerolog/log"
)

// File is a hosts file on disk.
type File struct {
	Path string
}

// Read returns the full current content. A missing file reads as an
// empty document so a first run can create it.
func (f File) Read() (string, error) {
	data, err := os.ReadFile(f.Path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Debug().Str("path", f.Path).Msg("hosts file not found, starting empty")
		return "", nil
	}
	if err != nil {
		return "", err
	}
	log.Debug().Str("path", f.Path).Int("bytes", len(data)).Msg("read hosts file")
	return string(data), nil
}

// Write replaces the file content atomically, so an interrupted or
// denied write never leaves a half-updated block behind. Permissions of
// an existing file are preserved; a newly created file gets 0644.
func (f File) Write(content string) error {
	_, statErr := os.Stat(f.Path)
	if err := atomicfile.WriteFile(f.Path, strings.NewReader(content)); err != nil {
		return err
	}
	if errors.Is(statErr, fs.ErrNotExist) {
		return os.Chmod(f.Path, 0o644)
	}
	return nil
}
