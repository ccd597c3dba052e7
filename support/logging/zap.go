// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package logging

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var _ L = (*zap.SugaredLogger)(nil)

// NewZap builds a zap-backed L for a command-line tool.
//
// If verbose is true, a development logger that emits debug-level logs is
// returned; otherwise, a production logger at info level is used.
//
// The returned function flushes buffered log entries, and should be called
// before the process exits.
func NewZap(verbose bool) (L, func(), error) {
	var (
		base *zap.Logger
		err  error
	)
	if verbose {
		base, err = zap.NewDevelopment()
	} else {
		base, err = zap.NewProduction()
	}
	if err != nil {
		return nil, nil, errors.Wrap(err, "creating zap logger")
	}
	return base.Sugar(), func() { _ = base.Sync() }, nil
}
