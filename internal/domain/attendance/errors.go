package attendance

import "errors"

var (
	ErrNotCheckedIn = errors.New("you have not checked in today")
)
