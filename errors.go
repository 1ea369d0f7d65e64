package goturlogs

import "errors"

// Builder precondition sentinels. EntryBuilder.Build panics with these when a
// required field was never set; TryBuild returns them instead.
var (
	ErrSeverityNotSet = errors.New("goturlogs: severity must be set")
	ErrTextNotSet     = errors.New("goturlogs: text must be set")
)
