// Copyright 2013 Sonia Keys.
// Licensed under MIT license.  See "license" file in this source tree.

package gumwall

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"go.uber.org/multierr"
)

// Errors reported by Validate, wrapped with the offending entry.
var (
	ErrNoID          = errors.New("entry has no id")
	ErrDuplicateID   = errors.New("duplicate entry id")
	ErrNegativePrice = errors.New("negative price")
)

// ReadPalette decodes a JSON array of entries.  Entries are returned as
// listed; no filtering is done here.
func ReadPalette(r io.Reader) ([]Entry, error) {
	var entries []Entry
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return nil, fmt.Errorf("decode palette: %w", err)
	}
	return entries, nil
}

// Validate reports every problem found in entries, combined into a single
// error.  A nil result means every entry is well formed.
//
// Validate is advisory.  NewPalette drops entries with bad colors on its
// own, so callers typically log the individual errors and carry on.
func Validate(entries []Entry) error {
	var err error
	seen := make(map[string]int, len(entries))
	for i, e := range entries {
		if e.ID == "" {
			err = multierr.Append(err, fmt.Errorf("entry %d: %w", i, ErrNoID))
		} else if j, ok := seen[e.ID]; ok {
			err = multierr.Append(err, fmt.Errorf("entry %d %q (first at %d): %w", i, e.ID, j, ErrDuplicateID))
		} else {
			seen[e.ID] = i
		}
		if _, cerr := ParseHex(e.Color); cerr != nil {
			err = multierr.Append(err, fmt.Errorf("entry %d %q: %w", i, e.ID, cerr))
		}
		if e.Price < 0 {
			err = multierr.Append(err, fmt.Errorf("entry %d %q: %w", i, e.ID, ErrNegativePrice))
		}
	}
	return err
}
