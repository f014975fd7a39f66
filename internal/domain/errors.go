package domain

import "errors"

var (
	ErrRecordNotFound    = errors.New("record not found")
	ErrAmbiguousRecordID = errors.New("record id prefix is ambiguous")
	ErrKeyNotFound       = errors.New("key not found")
	ErrUnknownAction     = errors.New("unknown action")
	ErrUnknownEmotion    = errors.New("unknown emotion")
	ErrUnknownCategory   = errors.New("unknown category")
	ErrUnknownDomain     = errors.New("unknown action domain")
	ErrUnknownTimeRange  = errors.New("unknown time range")
	ErrRecordIDRequired  = errors.New("record id is required")
	ErrTimestampRequired = errors.New("record timestamp is required")
)
