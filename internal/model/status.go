package model

import (
	"errors"
	"strings"
)

// Status is the triage state of a quote request or consultation booking.
type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCompleted Status = "completed"
)

// ErrInvalidStatus is returned by ParseStatus for values outside the known set.
var ErrInvalidStatus = errors.New("invalid status")

var validStatuses = map[Status]bool{
	StatusPending:   true,
	StatusApproved:  true,
	StatusRejected:  true,
	StatusCompleted: true,
}

// ParseStatus は入力文字列を Status に変換する（大文字小文字・前後空白は無視）
func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToLower(strings.TrimSpace(s)))
	if !validStatuses[st] {
		return "", ErrInvalidStatus
	}
	return st, nil
}

func (s Status) Valid() bool {
	return validStatuses[s]
}

func (s Status) String() string {
	return string(s)
}
