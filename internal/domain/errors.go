package domain

import "errors"

// Error message string constants - single source of truth for error messages.
// Use these in assert.Contains() checks when testing error messages.
const (
	ErrMsgPlayerNotFound    = "player not found on hiscores"
	ErrMsgHiscoresFailed    = "hiscores request failed"
	ErrMsgInvalidHiscores   = "invalid hiscores response"
	ErrMsgItemDBUnavailable = "item database unavailable"
	ErrMsgInvalidItemDB     = "invalid item database"
	ErrMsgUsernameRequired  = "username is required"
	ErrMsgUnknownEventKind  = "unknown event kind"
)

// Common domain errors.
// Wrap these with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Baseline errors
	ErrPlayerNotFound  = errors.New(ErrMsgPlayerNotFound)
	ErrHiscoresFailed  = errors.New(ErrMsgHiscoresFailed)
	ErrInvalidHiscores = errors.New(ErrMsgInvalidHiscores)

	// Reference table errors
	ErrItemDBUnavailable = errors.New(ErrMsgItemDBUnavailable)
	ErrInvalidItemDB     = errors.New(ErrMsgInvalidItemDB)

	// Input errors
	ErrUsernameRequired = errors.New(ErrMsgUsernameRequired)
	ErrUnknownEventKind = errors.New(ErrMsgUnknownEventKind)
)
