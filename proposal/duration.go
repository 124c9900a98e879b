package proposal

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the layout of dates printed in proposals.
const DateLayout = "2006-01-02"

var errInvalidDates = errors.New("end date before start date")

// Duration is the period over which the work is carried out.
type Duration struct {
	Length string // for example "4 weeks" or "6 months"
	Start  time.Time
	End    time.Time
}

// Text returns the duration paragraph, for example:
//
//	The duration of the work is 4 weeks, commencing on 2024-03-04 and concluding on 2024-03-29. The project will be billed periodically with the payment application being supported by an up-to-date delivery programme.
func (d Duration) Text() (string, error) {
	length := strings.TrimSpace(d.Length)
	if length == "" {
		return "", fmt.Errorf("describing duration: length: %w", errMissingDescription)
	}
	if d.End.Before(d.Start) {
		return "", fmt.Errorf("describing duration: %w: %v < %v",
			errInvalidDates, d.End.Format(DateLayout), d.Start.Format(DateLayout))
	}
	return fmt.Sprintf("The duration of the work is %v, commencing on %v and concluding on %v. "+
		"The project will be billed periodically with the payment application being supported by an up-to-date delivery programme.",
		length, d.Start.Format(DateLayout), d.End.Format(DateLayout)), nil
}
