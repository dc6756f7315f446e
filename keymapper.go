package envspec

import "strings"

// KeyMapper allows customizing how field names are mapped to lookup keys.
// The loaded value is always stored under the field name.
type KeyMapper interface {
	Key(field string) string
}

type identityMapper struct{}

func (identityMapper) Key(field string) string {
	return field
}

type prefixMapper struct {
	prefix string
}

func (m prefixMapper) Key(field string) string {
	return m.prefix + "_" + field
}

func newPrefixMapper(prefix string) KeyMapper {
	return prefixMapper{prefix: strings.ToUpper(strings.TrimSuffix(prefix, "_"))}
}

var defaultMapper identityMapper
