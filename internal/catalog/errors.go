package catalog

import "errors"

// Sentinel errors for catalog loading.
var (
	ErrMissingColumns = errors.New("catalog source is missing required columns")
	ErrUnknownSource  = errors.New("unknown catalog source kind")
	ErrEmptyCatalog   = errors.New("catalog source contains no rows")
)
