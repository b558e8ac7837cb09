package tracker

import (
	"fmt"
	"time"
)

// Kind names one of the household logbooks. All kinds share the same entry
// shape and storage; the kind only partitions them.
type Kind string

const (
	KindSports Kind = "sports"
	KindSchool Kind = "school"
	KindHouse  Kind = "house"
	KindCar    Kind = "car"
	KindHealth Kind = "health"
)

var allKinds = []Kind{KindSports, KindSchool, KindHouse, KindCar, KindHealth}

// ParseKind validates a kind coming from a URL path.
func ParseKind(s string) (Kind, error) {
	for _, kind := range allKinds {
		if Kind(s) == kind {
			return kind, nil
		}
	}
	return "", fmt.Errorf("unknown tracker kind %q", s)
}

// Entry is one dated record in a logbook, like a workout, a school meeting
// or a car service.
type Entry struct {
	UID     string
	Kind    Kind
	Title   string
	Date    time.Time
	Details string
}
