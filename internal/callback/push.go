package callback

import (
	"bytes"
	"crypto/sha1" //nolint:gosec // non-cryptographic dedup key
	"encoding/hex"
	"encoding/json"
	"strconv"
)

// Push is the envelope the gateway POSTs to the callback URL. Data is
// kept untyped; its schema varies per TypeName and belongs to consumers.
type Push struct {
	TypeName string         `json:"TypeName"`
	Appid    string         `json:"Appid"`
	Wxid     string         `json:"Wxid"`
	Data     map[string]any `json:"Data"`

	// TestMsg is set on the probe request the gateway sends when a
	// callback URL is registered.
	TestMsg string `json:"testMsg"`
	Token   string `json:"token"`
}

// decodePush parses a callback body. Numbers stay json.Number: the
// gateway's NewMsgId values are 19-digit int64s that lose their low bits
// in a float64, which would collapse distinct messages to one dedup key.
func decodePush(raw []byte) (Push, error) {
	var push Push
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&push); err != nil {
		return Push{}, err
	}
	return push, nil
}

// IsProbe reports whether this is the registration probe rather than a
// real callback.
func (p Push) IsProbe() bool {
	return p.TypeName == "" && p.TestMsg != ""
}

// DedupID derives a stable identifier for redelivery detection: the
// gateway's NewMsgId when present, otherwise a hash of the raw body.
func (p Push) DedupID(raw []byte) string {
	if v, ok := p.Data["NewMsgId"]; ok {
		switch id := v.(type) {
		case json.Number:
			if id.String() != "" {
				return id.String()
			}
		case float64:
			return strconv.FormatInt(int64(id), 10)
		case string:
			if id != "" {
				return id
			}
		}
	}
	return hashBody(raw)
}

// intValue reads a numeric Data field regardless of whether the payload
// was decoded with UseNumber.
func intValue(v any) (int64, bool) {
	switch n := v.(type) {
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	case float64:
		return int64(n), true
	}
	return 0, false
}

func hashBody(raw []byte) string {
	sum := sha1.Sum(raw)
	return hex.EncodeToString(sum[:])
}
