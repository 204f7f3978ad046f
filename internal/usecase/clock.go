package usecase

import (
	"time"

	"dayflow-backend/internal/model"
)

// Clock returns the current instant. Usecases take one so tests can pin time.
type Clock func() time.Time

func (c Clock) orDefault() Clock {
	if c == nil {
		return time.Now
	}
	return c
}

// today is the local calendar day of now.
func today(now Clock) string {
	return now().Format(model.DateLayout)
}
