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

// maxRecordSize bounds the size of a single record, guarding against corrupt
// headers.
const maxRecordSize = 16 * 1024 * 1024

// Reader reads records from a capture stream.
type Reader struct {
	closer io.Closer
	br     *bufio.Reader

	compression Compression
	records     int
}

// Open opens the capture file at path.
func Open(path string) (*Reader, error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening capture file")
	}

	r, err := NewReader(fd)
	if err != nil {
		_ = fd.Close()
		return nil, err
	}
	r.closer = fd
	return r, nil
}

// NewReader reads a capture file header from base and returns a Reader for
// the records that follow. The Reader does not close base.
func NewReader(base io.Reader) (*Reader, error) {
	br := bufio.NewReader(base)

	var hdr fileHeader
	if err := struc.Unpack(br, &hdr); err != nil {
		return nil, errors.Wrap(err, "reading file header")
	}
	switch {
	case hdr.Magic != fileMagic:
		return nil, errors.Errorf("not a capture file (magic 0x%08X)", hdr.Magic)
	case hdr.Version != fileVersion:
		return nil, errors.Errorf("unsupported capture file version %d", hdr.Version)
	}

	r := Reader{
		compression: Compression(hdr.Compression),
	}
	switch r.compression {
	case CompressionSnappy:
		r.br = bufio.NewReader(snappy.NewReader(br))
	case CompressionNone:
		r.br = br
	default:
		return nil, errors.Errorf("unknown compression: %s", r.compression)
	}
	return &r, nil
}

// Compression returns the compression used by the record stream.
func (r *Reader) Compression() Compression { return r.compression }

// Next reads the next record. At the end of the stream, Next returns io.EOF.
func (r *Reader) Next() (*Record, error) {
	if _, err := r.br.Peek(1); err != nil {
		if err == io.EOF {
			return nil, io.EOF
		}
		return nil, errors.Wrapf(err, "reading record #%d", r.records)
	}

	var hdr recordHeader
	if err := struc.Unpack(r.br, &hdr); err != nil {
		return nil, errors.Wrapf(err, "reading header for record #%d", r.records)
	}
	if hdr.Size > maxRecordSize {
		return nil, errors.Errorf("record #%d is too large (%d byte(s))", r.records, hdr.Size)
	}

	rec := Record{
		Offset: time.Duration(hdr.Offset),
		Data:   make([]byte, hdr.Size),
	}
	if _, err := io.ReadFull(r.br, rec.Data); err != nil {
		return nil, errors.Wrapf(err, "reading data for record #%d", r.records)
	}
	r.records++
	return &rec, nil
}

// ReadAll reads every remaining record.
func (r *Reader) ReadAll() ([]*Record, error) {
	var recs []*Record
	for {
		rec, err := r.Next()
		switch {
		case err == io.EOF:
			return recs, nil
		case err != nil:
			return recs, err
		}
		recs = append(recs, rec)
	}
}

// Close closes the capture file, if the Reader was created by Open.
func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}
