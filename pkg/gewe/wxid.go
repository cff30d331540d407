package gewe

import "regexp"

// wxidPattern accepts the gateway's assigned contact identifiers: the
// fixed "wxid_" prefix followed by an alphanumeric suffix.
var wxidPattern = regexp.MustCompile(`^wxid_[A-Za-z0-9]+$`)

// Wxid is a validated contact identifier. It is opaque: the library only
// embeds it in payloads or compares it for equality, never decomposes it.
// Construct one with ParseWxid; the zero value is not valid.
type Wxid string

// ParseWxid validates s and returns it as a Wxid. Malformed input yields
// a *ValidationError and no network activity.
func ParseWxid(s string) (Wxid, error) {
	if !wxidPattern.MatchString(s) {
		return "", &ValidationError{Value: s, Reason: "want wxid_ prefix followed by letters and digits"}
	}
	return Wxid(s), nil
}

// MustWxid is ParseWxid for fixtures and tests; it panics on bad input.
func MustWxid(s string) Wxid {
	w, err := ParseWxid(s)
	if err != nil {
		panic(err)
	}
	return w
}

func (w Wxid) String() string { return string(w) }
