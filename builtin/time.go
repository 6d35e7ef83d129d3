// Copyright (c) 2025 The Curly Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package builtin

import (
	"fmt"
	"strings"
	"time"

	"github.com/curlyfmt/curly"
)

// Time wraps a time.Time so that it renders as RFC 3339. The precision is
// the number of fractional second digits, at most nine:
//
//	t := time.Date(2009, 11, 10, 23, 0, 0, 123456789, time.UTC)
//	curly.MustFormat("{}", builtin.NewTime(t))    // "2009-11-10T23:00:00Z"
//	curly.MustFormat("{:.3}", builtin.NewTime(t)) // "2009-11-10T23:00:00.123Z"
type Time struct {
	time.Time
}

// NewTime returns a Time that renders the instant t.
func NewTime(t time.Time) Time {
	return Time{t}
}

// FormatCurly implements curly.Formatter.
func (t Time) FormatCurly(spec curly.Spec) (curly.Piece, error) {
	if typ, ok := spec.Type(); ok && typ != 's' {
		return curly.Piece{}, fmt.Errorf("invalid type specifier %q for time argument", typ)
	}
	layout := time.RFC3339
	if p, ok := spec.Precision(); ok && p > 0 {
		if p > 9 {
			p = 9
		}
		layout = "2006-01-02T15:04:05." + strings.Repeat("0", p) + "Z07:00"
	}
	return curly.Piece{Body: t.Format(layout)}, nil
}
