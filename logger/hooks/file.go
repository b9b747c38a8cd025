// Appends formatted log entries to a file. The file is opened lazily
// on the first entry so a bad path only costs the file output.

package hooks

import (
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

type File struct {
	path string
	mu   sync.Mutex
	file *os.File
}

func (hook *File) Fire(entry *logrus.Entry) error {
	serialized, err := entry.Logger.Formatter.Format(entry)
	if err != nil {
		return err
	}
	hook.mu.Lock()
	defer hook.mu.Unlock()
	if hook.file == nil {
		f, err := os.OpenFile(hook.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return err
		}
		hook.file = f
	}
	_, err = hook.file.Write(serialized)
	return err
}

// Returns the log levels supported by this hook
func (hook *File) Levels() []logrus.Level {
	return logrus.AllLevels
}

func NewFileHook(path string) *File {
	return &File{path: path}
}
