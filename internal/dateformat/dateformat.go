// Package dateformat renders stored join dates for display.
package dateformat

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidDate indicates the stored value is not a YYYY-MM-DD date.
var ErrInvalidDate = errors.New("invalid date format")

var months = [12]string{
	"Jan", "Feb", "March", "April", "May", "June",
	"July", "Aug", "Sept", "Oct", "Nov", "Dec",
}

// JoinDate formats a stored YYYY-MM-DD value as "Month Day, Year",
// e.g. "2021-03-05" becomes "March 5, 2021".
func JoinDate(value string) (string, error) {
	parts := strings.Split(strings.TrimSpace(value), "-")
	if len(parts) != 3 {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil || year <= 0 {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}
	day, err := strconv.Atoi(parts[2])
	if err != nil || day < 1 || day > 31 {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}

	return fmt.Sprintf("%s %d, %d", months[month-1], day, year), nil
}
