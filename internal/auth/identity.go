package auth

import (
	"encoding/json"
	"strconv"
)

// UserID is the canonical string form of a verified user id.
//
// Identity services and transport payloads disagree on whether ids are JSON
// strings or numbers. Every id crossing a trust boundary is normalized to
// this type exactly once; comparisons elsewhere are plain equality.
type UserID string

func (u UserID) String() string {
	return string(u)
}

// NormalizeUserID converts a decoded JSON value into a UserID. It accepts the
// representations produced by encoding/json (string, json.Number, float64)
// plus native integer types. It reports false for anything else, including
// empty strings.
func NormalizeUserID(v any) (UserID, bool) {
	switch id := v.(type) {
	case string:
		if id == "" {
			return "", false
		}
		return UserID(id), true
	case json.Number:
		if id.String() == "" {
			return "", false
		}
		return UserID(id.String()), true
	case float64:
		// encoding/json decodes untyped numbers as float64. Integral values
		// must round-trip to the same string a numeric id would have ("42",
		// not "42.000000").
		return UserID(strconv.FormatFloat(id, 'f', -1, 64)), true
	case int:
		return UserID(strconv.Itoa(id)), true
	case int64:
		return UserID(strconv.FormatInt(id, 10)), true
	case uint64:
		return UserID(strconv.FormatUint(id, 10)), true
	default:
		return "", false
	}
}
