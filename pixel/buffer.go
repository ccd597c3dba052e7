// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package pixel

// Buffer holds the wire format for a strip of consecutive pixels: a series of
// contiguous (G, R, B) byte triples.
//
// Every mutator clamps channel values into [Off, Full]. A freshly Reset buffer
// is all zero bytes, which is below the valid channel floor; the first mutation
// of a pixel brings it into range.
type Buffer struct {
	buf []byte
}

// Len returns the number of pixels allocated in pb.
func (pb *Buffer) Len() int { return len(pb.buf) / Size }

// Reset clears the buffer and allocates room for size pixels. Every byte is
// set to zero.
//
// If the underlying buffer is already >= this size, it will be reused;
// otherwise, a new buffer will be allocated.
func (pb *Buffer) Reset(size int) {
	if size < 0 {
		size = 0
	}
	bytesNeeded := size * Size
	if cap(pb.buf) < bytesNeeded {
		pb.buf = make([]byte, bytesNeeded)
		return
	}

	pb.buf = pb.buf[:bytesNeeded]
	for i := range pb.buf {
		pb.buf[i] = 0
	}
}

// UseBytes loads buf directly into this Buffer. This creates a
// functional Buffer with no copying. Any trailing partial pixel in buf is
// ignored.
//
// Note that buf may be retained and used by pb indefinitely, and should not be
// reused while pb is active.
func (pb *Buffer) UseBytes(buf []byte) { pb.buf = buf[:len(buf)-(len(buf)%Size)] }

// Bytes returns the raw bytes for this buffer.
func (pb *Buffer) Bytes() []byte { return pb.buf }

// Encode appends the wire encoding of pb to dst and returns the result.
//
// Every byte is clamped into [Off, Full], so pixels that have not been set
// since Reset encode as Off.
func (pb *Buffer) Encode(dst []byte) []byte {
	for _, b := range pb.buf {
		dst = append(dst, Clamp(int(b)))
	}
	return dst
}

// PixelBytes returns the raw wire bytes for the pixel at index i.
//
// If i is out of bounds, PixelBytes will return nil.
func (pb *Buffer) PixelBytes(i int) []byte {
	if i < 0 || i >= pb.Len() {
		return nil
	}
	offset := i * Size
	return pb.buf[offset : offset+Size]
}

// Pixel returns the pixel data for the Pixel at index i.
//
// If i is out of bounds, Pixel will return a zero value.
func (pb *Buffer) Pixel(i int) (p P) {
	if b := pb.PixelBytes(i); b != nil {
		p.Green, p.Red, p.Blue = b[0], b[1], b[2]
	}
	return
}

// SetPixel sets the pixel value at index i. Each channel of p is clamped into
// [Off, Full].
//
// If i is out of bounds, SetPixel will do nothing.
func (pb *Buffer) SetPixel(i int, p P) {
	if b := pb.PixelBytes(i); b != nil {
		p = p.Clamped()
		b[0], b[1], b[2] = p.Green, p.Red, p.Blue
	}
}

// SetPixelColor sets the pixel at index i to the supplied channel values,
// each independently clamped into [Off, Full].
//
// If i is out of bounds, SetPixelColor will do nothing.
func (pb *Buffer) SetPixelColor(i, green, red, blue int) {
	pb.SetPixel(i, Color(green, red, blue))
}

// Fill sets every pixel in the buffer to p.
func (pb *Buffer) Fill(p P) {
	for i := 0; i < pb.Len(); i++ {
		pb.SetPixel(i, p)
	}
}

// Adjust adds amount to the selected channels of every pixel in the buffer,
// saturating at Off and Full.
func (pb *Buffer) Adjust(ch Channels, amount int) {
	for i := 0; i < pb.Len(); i++ {
		pb.SetPixel(i, pb.Pixel(i).Adjust(ch, amount))
	}
}
