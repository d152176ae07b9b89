package date

import (
	"fmt"
	"strings"
	"time"
)

// Period is a calendar bucketing granularity for pivot summaries.
type Period int

const (
	Monthly Period = iota
	Yearly
)

func (p Period) String() string {
	switch p {
	case Monthly:
		return "monthly"
	case Yearly:
		return "yearly"
	default:
		return "periodic"
	}
}

// Name returns the singular noun for the period (e.g., "month").
func (p Period) Name() string {
	switch p {
	case Monthly:
		return "month"
	case Yearly:
		return "year"
	default:
		return "period"
	}
}

func ParsePeriod(s string) (Period, error) {
	switch strings.ToLower(s) {
	case "monthly", "month":
		return Monthly, nil
	case "yearly", "year":
		return Yearly, nil
	default:
		return Monthly, fmt.Errorf("unknown period %q (want month or year)", s)
	}
}

// StartOf returns the first day of the period containing d.
func (d Date) StartOf(p Period) Date {
	switch p {
	case Monthly:
		return New(d.y, d.m, 1)
	case Yearly:
		return New(d.y, time.January, 1)
	default:
		panic("unknown period")
	}
}

// Label returns the human name of the period bucket starting at d
// (e.g. "Nov 2001" or "2001").
func (d Date) Label(p Period) string {
	switch p {
	case Monthly:
		return d.Format("Jan 2006")
	case Yearly:
		return d.Format("2006")
	default:
		panic("unknown period")
	}
}
