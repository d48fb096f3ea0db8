package app

import "errors"

// ErrNoStickerAvailable means the chosen owned sticker is missing or
// already spent on a completion.
var ErrNoStickerAvailable = errors.New("no unused sticker available")

// PersistenceError wraps a storage failure. The engine never retries;
// the in-memory state is left exactly as it was before the operation,
// so the caller can retry or surface the failure.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return "failed to persist state: " + e.Err.Error()
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
