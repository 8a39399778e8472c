package fatsecret

import (
	"net/url"
	"strconv"
	"time"
)

const secondsPerDay = 86400

// epochDays converts t to whole days since the Unix epoch, truncating any
// time-of-day component. This is the only date representation the API
// accepts.
func epochDays(t time.Time) int64 {
	return t.Unix() / secondsPerDay
}

// newParams starts a parameter set for the named remote operation.
func newParams(method string) url.Values {
	return url.Values{"method": {method}}
}

// setDate inserts the day count for t under key, skipping zero dates.
func setDate(params url.Values, key string, t time.Time) {
	if t.IsZero() {
		return
	}
	params.Set(key, strconv.FormatInt(epochDays(t), 10))
}

// setInt inserts v under key, skipping zero values.
func setInt(params url.Values, key string, v int) {
	if v == 0 {
		return
	}
	params.Set(key, strconv.Itoa(v))
}

// setFloat inserts v under key, skipping zero values.
func setFloat(params url.Values, key string, v float64) {
	if v == 0 {
		return
	}
	params.Set(key, strconv.FormatFloat(v, 'f', -1, 64))
}

// setString inserts v under key, skipping empty values.
func setString(params url.Values, key, v string) {
	if v == "" {
		return
	}
	params.Set(key, v)
}
