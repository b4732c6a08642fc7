package logic

import (
	"errors"
	"fmt"
)

var ErrNoActiveAccount = errors.New("no active account")
var ErrStatusNotCached = errors.New("status is not in the cache")

// AccountSwitchError is a failed attempt to make an account active. The previous active account stays.
type AccountSwitchError struct {
	AccountId int64
	Err       error
}

func (e *AccountSwitchError) Error() string {
	return fmt.Sprintf("failed to switch to account %d: %v", e.AccountId, e.Err)
}

func (e *AccountSwitchError) Unwrap() error {
	return e.Err
}

// LogoutError is returned when the server could not be told about the logout.
// The account is logged out locally regardless.
type LogoutError struct {
	AccountId int64
	Err       error
}

func (e *LogoutError) Error() string {
	return fmt.Sprintf("account %d logged out locally, but the server call failed: %v", e.AccountId, e.Err)
}

func (e *LogoutError) Unwrap() error {
	return e.Err
}

type TranslateError struct {
	StatusId string
	Err      error
}

func (e *TranslateError) Error() string {
	return fmt.Sprintf("failed to translate status %s: %v", e.StatusId, e.Err)
}

func (e *TranslateError) Unwrap() error {
	return e.Err
}
