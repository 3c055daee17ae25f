package findopt

import (
	"fmt"
	"strings"
)

// Tag is an object tag as given to -tags.
type Tag struct {
	Key   string
	Value string
}

// ParseTag parses "key:value", where key and value are both made of word
// characters ([0-9A-Za-z_]).
func ParseTag(s string) (Tag, error) {
	key, value, found := strings.Cut(s, ":")
	if !found {
		return Tag{}, fmt.Errorf("%w %q: expected key:value", ErrTagParse, s)
	}
	if !isWord(key) {
		return Tag{}, fmt.Errorf("%w %q: key must be one or more word characters", ErrTagKeyParse, s)
	}
	if !isWord(value) {
		return Tag{}, fmt.Errorf("%w %q: value must be one or more word characters", ErrTagValueParse, s)
	}
	return Tag{Key: key, Value: value}, nil
}

func (t Tag) String() string {
	return t.Key + ":" + t.Value
}

func isWord(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '_':
		default:
			return false
		}
	}
	return true
}
