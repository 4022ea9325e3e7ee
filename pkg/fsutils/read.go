// Package fsutils has small filesystem helpers shared by the explorer
// front-ends.
package fsutils

import (
	"errors"
	"io"
	"os"
)

type Decoder interface {
	Decode(o any) error
}

// ReadFile decodes the file at filePath into o. A missing file is not an
// error unless required is set.
func ReadFile(filePath string, required bool, o any, newDecoder func(r io.Reader) Decoder) (err error) {
	file, err := os.Open(filePath)
	if err != nil {
		if !required && errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	defer func() {
		err = errors.Join(err, file.Close())
	}()
	return newDecoder(file).Decode(o)
}

// ReadFileData reads a whole file when limit is 0, its first limit bytes
// when limit > 0 and its last -limit bytes when limit < 0.
func ReadFileData(filePath string, limit int) (data []byte, err error) {
	if limit == 0 {
		return os.ReadFile(filePath)
	}
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer func() {
		err = errors.Join(err, file.Close())
	}()
	n := int64(limit)
	if n < 0 {
		n = -n
		info, err := file.Stat()
		if err != nil {
			return nil, err
		}
		if offset := info.Size() - n; offset > 0 {
			if _, err = file.Seek(offset, io.SeekStart); err != nil {
				return nil, err
			}
		}
	}
	return io.ReadAll(io.LimitReader(file, n))
}
