package build

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTime(t *testing.T) {
	tt := []struct {
		name      string
		timestamp string
		expected  time.Time
		err       error
	}{
		{"blank", "", time.Time{}, ErrBlankTimestamp},
		{"invalid", "yesterday", time.Time{}, ErrInvalidTimestamp},
		{"epoch", "1482510310", time.Unix(1482510310, 0).UTC(), nil},
	}
	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			defer func(ts string) { timestamp = ts }(timestamp)
			timestamp = tc.timestamp
			v, err := Time()
			assert.Equal(t, tc.err, err)
			assert.Equal(t, tc.expected, v)
		})
	}
}

func TestTimeStr(t *testing.T) {
	defer func(ts string) { timestamp = ts }(timestamp)
	timestamp = ""
	assert.Equal(t, NotSet, TimeStr())
	timestamp = "0"
	assert.Equal(t, "Thursday January 1 1970 at 00:00:00 UTC", TimeStr())
}

func TestNotSet(t *testing.T) {
	defer func(v, o, a string) { version, goos, goarch = v, o, a }(version, goos, goarch)
	version, goos, goarch = "", "", ""
	assert.Equal(t, NotSet, Version())
	assert.Equal(t, NotSet, OS())
	assert.Equal(t, NotSet, Architecture())
	version, goos, goarch = "abc123", "linux", "arm64"
	assert.Equal(t, "abc123", Version())
	assert.Equal(t, "linux", OS())
	assert.Equal(t, "arm64", Architecture())
}
