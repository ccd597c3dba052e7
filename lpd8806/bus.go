// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package lpd8806

// Bus is the serial bus that a Strip writes to.
type Bus interface {
	// WriteBytes writes b to the bus, blocking until it has been clocked out.
	//
	// WriteBytes must not retain b after it returns.
	WriteBytes(b []byte) error
}

// BusFunc is a Bus implemented by a function.
type BusFunc func(b []byte) error

// WriteBytes implements Bus.
func (fn BusFunc) WriteBytes(b []byte) error { return fn(b) }
