package game

import (
	"errors"
	"fmt"
	"strings"
)

type Status string

const (
	Wishlist  Status = "Wishlist"
	Playing   Status = "Playing"
	Paused    Status = "Paused"
	Completed Status = "Completed"
)

var ErrUnknownStatus = errors.New("unknown game status")

// Statuses lists every status in lifecycle order.
var Statuses = []Status{Wishlist, Playing, Paused, Completed}

// ParseStatus matches a status name case-insensitively.
func ParseStatus(value string) (Status, error) {
	trimmed := strings.TrimSpace(value)
	for _, status := range Statuses {
		if strings.EqualFold(trimmed, string(status)) {
			return status, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStatus, value)
}

func (s Status) String() string { return string(s) }
