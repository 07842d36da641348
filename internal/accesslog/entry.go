package accesslog

import "time"

// Entry is one parsed access-log record in combined log format.
type Entry struct {
	RemoteAddr string
	Time       time.Time
	Method     string
	Path       string
	Protocol   string
	Status     int
	Bytes      int64
	Referrer   string
	UserAgent  string
}

// HasReferrer reports whether the entry carries a real referrer value.
// nginx writes "-" for requests without one.
func (e Entry) HasReferrer() bool {
	return e.Referrer != "" && e.Referrer != "-"
}
