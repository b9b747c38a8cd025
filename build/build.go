// Build information, set at link time:
//
//	go build -ldflags "-X noise/build.version=$(git rev-parse --short HEAD) \
//	  -X noise/build.timestamp=$(date +%s) \
//	  -X noise/build.goos=linux -X noise/build.goarch=amd64"

package build

import (
	"errors"
	"strconv"
	"time"
)

// Placeholder returned for any value not set at link time
const NotSet = "n/a"

var (
	version   string
	timestamp string // unix epoch seconds
	goos      string
	goarch    string
)

var (
	ErrBlankTimestamp   = errors.New("build timestamp not set")
	ErrInvalidTimestamp = errors.New("invalid build timestamp")
)

func orNotSet(s string) string {
	if s == "" {
		return NotSet
	}
	return s
}

// Returns the build version
func Version() string { return orNotSet(version) }

// Returns the target operating system
func OS() string { return orNotSet(goos) }

// Returns the target architecture
func Architecture() string { return orNotSet(goarch) }

// Returns the build time, errors if the timestamp was not set or is not
// a unix epoch
func Time() (time.Time, error) {
	if timestamp == "" {
		return time.Time{}, ErrBlankTimestamp
	}
	i, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return time.Time{}, ErrInvalidTimestamp
	}
	return time.Unix(i, 0).UTC(), nil
}

// Returns the build time formatted for humans, n/a when unknown
func TimeStr() string {
	t, err := Time()
	if err != nil {
		return NotSet
	}
	return t.Format("Monday January 2 2006 at 15:04:05 MST")
}
