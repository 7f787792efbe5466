package codec

import (
	"bufio"
	"io"
	"os"

	"github.com/arloliu/numser/errs"
	"github.com/arloliu/numser/format"
)

// SerializeFile writes values to the file at path as a flat stream,
// creating or truncating it.
//
// Failing to create, write, flush or close the file is a WriteError. A
// partially written file is left in place.
func SerializeFile[T format.Number](path string, values []T, opts ...Option) error {
	cfg, err := newConfig(opts)
	if err != nil {
		return err
	}

	return writeFile(path, cfg, func(w io.Writer) error {
		return serialize(w, values, cfg)
	})
}

// DeserializeFile reads a flat stream of T from the file at path.
//
// Failing to open the file is a ReadError.
func DeserializeFile[T format.Number](path string, opts ...Option) ([]T, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	var values []T
	err = readFile(path, cfg, func(r io.Reader) error {
		values, err = deserialize[T](r, cfg)
		return err
	})

	return values, err
}

// SerializeNestedFile writes values to the file at path as a nested stream.
func SerializeNestedFile[T format.Number](path string, values [][]T, opts ...Option) error {
	cfg, err := newConfig(opts)
	if err != nil {
		return err
	}

	return writeFile(path, cfg, func(w io.Writer) error {
		return serializeNested(w, values, cfg)
	})
}

// DeserializeNestedFile reads a nested stream of T from the file at path.
func DeserializeNestedFile[T format.Number](path string, opts ...Option) ([][]T, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	var values [][]T
	err = readFile(path, cfg, func(r io.Reader) error {
		values, err = deserializeNested[T](r, cfg)
		return err
	})

	return values, err
}

func writeFile(path string, cfg *Config, fn func(io.Writer) error) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return errs.New(errs.WriteError, "create file", err)
	}

	bw := bufio.NewWriterSize(f, cfg.BufferSize)
	if err := fn(bw); err != nil {
		_ = f.Close()
		return err
	}

	if err := bw.Flush(); err != nil {
		_ = f.Close()
		return errs.New(errs.WriteError, "flush file", err)
	}

	if err := f.Close(); err != nil {
		return errs.New(errs.WriteError, "close file", err)
	}

	return nil
}

func readFile(path string, cfg *Config, fn func(io.Reader) error) error {
	f, err := os.Open(path)
	if err != nil {
		return errs.New(errs.ReadError, "open file", err)
	}
	defer f.Close()

	return fn(bufio.NewReaderSize(f, cfg.BufferSize))
}
