// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package capture

import (
	"bufio"
	"io"
	"os"
	"time"

	"github.com/golang/snappy"
	"github.com/lunixbochs/struc"
	"github.com/pkg/errors"
)

const writerBufferSize = 64 * 1024

// Writer records bus writes into a capture stream.
//
// Writer implements the lpd8806.Bus interface. It is not safe for concurrent
// use.
type Writer struct {
	cfg Config

	closer  io.Closer
	bw      *bufio.Writer
	snappyW *snappy.Writer
	w       io.Writer

	start   time.Time
	records int
}

// Create creates a capture file at path, and returns a Writer that records to
// it.
func Create(path string, cfg Config) (*Writer, error) {
	fd, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrap(err, "creating capture file")
	}

	w, err := NewWriter(fd, cfg)
	if err != nil {
		_ = fd.Close()
		return nil, err
	}
	w.closer = fd
	return w, nil
}

// NewWriter writes a capture file header to base and returns a Writer that
// records to it. The Writer does not close base.
func NewWriter(base io.Writer, cfg Config) (*Writer, error) {
	w := Writer{
		cfg: cfg,
		bw:  bufio.NewWriterSize(base, writerBufferSize),
	}

	hdr := fileHeader{
		Magic:       fileMagic,
		Version:     fileVersion,
		Compression: uint8(cfg.Compression),
	}
	if err := struc.Pack(w.bw, &hdr); err != nil {
		return nil, errors.Wrap(err, "writing file header")
	}

	switch cfg.Compression {
	case CompressionSnappy:
		w.snappyW = snappy.NewBufferedWriter(w.bw)
		w.w = w.snappyW
	case CompressionNone:
		w.w = w.bw
	default:
		return nil, errors.Errorf("unknown compression: %s", cfg.Compression)
	}

	w.start = cfg.now()
	return &w, nil
}

// Records returns the number of records written so far.
func (w *Writer) Records() int { return w.records }

// WriteBytes records a single bus write of b.
func (w *Writer) WriteBytes(b []byte) error {
	hdr := recordHeader{
		Offset: int64(w.cfg.now().Sub(w.start)),
		Size:   uint32(len(b)),
	}
	if err := struc.Pack(w.w, &hdr); err != nil {
		return errors.Wrapf(err, "writing header for record #%d", w.records)
	}
	if _, err := w.w.Write(b); err != nil {
		return errors.Wrapf(err, "writing data for record #%d", w.records)
	}
	w.records++
	return nil
}

// Close flushes any buffered records. If the Writer was created by Create,
// the capture file is closed as well.
func (w *Writer) Close() (err error) {
	if w.closer != nil {
		defer func() {
			closeErr := w.closer.Close()
			if err == nil {
				err = closeErr
			}
		}()
	}

	if w.snappyW != nil {
		if err = w.snappyW.Close(); err != nil {
			return
		}
	}
	err = w.bw.Flush()
	return
}
