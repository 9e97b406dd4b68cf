package kvstore

import (
	"context"
	"strconv"
)

// Flag is a boolean stored under a single key, such as a "saved" marker.
// A missing or unparsable value reads as false.
type Flag struct {
	Store Store
	Key   string
}

// Enabled reports the current value of the flag.
func (f Flag) Enabled(ctx context.Context) (bool, error) {
	v, ok, err := f.Store.Get(ctx, f.Key)
	if err != nil || !ok {
		return false, err
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, nil
	}
	return b, nil
}

// Set writes the flag value. Disabling removes the key.
func (f Flag) Set(ctx context.Context, enabled bool) error {
	if !enabled {
		return f.Store.Delete(ctx, f.Key)
	}
	return f.Store.Set(ctx, f.Key, strconv.FormatBool(enabled))
}

// Toggle flips the flag and returns the new value.
func (f Flag) Toggle(ctx context.Context) (bool, error) {
	cur, err := f.Enabled(ctx)
	if err != nil {
		return false, err
	}
	next := !cur
	if err := f.Set(ctx, next); err != nil {
		return cur, err
	}
	return next, nil
}
