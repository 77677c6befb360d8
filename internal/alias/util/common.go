package util

import (
	"io"
	"os"

	"go.uber.org/zap"
)

// CloseFileFunc closes f and logs, rather than returns, a close failure.
// Meant for deferred closes of read-only files.
func CloseFileFunc(f *os.File) {
	if err := f.Close(); err != nil {
		zap.L().Warn("close file", zap.String("path", f.Name()), zap.Error(err))
	}
}

// ReadFile reads a whole file, closing it through CloseFileFunc.
func ReadFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer CloseFileFunc(f)
	return io.ReadAll(f)
}
