package catalog

import "strings"

// Historical keys that older callers still send, mapped to their current key.
var aliases = map[string]string{
	"ER_PRIORITY_NOT_PARSABLE": ErrKeyValueShouldBeNumber,
}

var registryIndex = func() map[string]int {
	idx := make(map[string]int, len(registry))
	for i, k := range registry {
		idx[k] = i
	}
	return idx
}()

// Keys returns every registered message key in registry order.
func Keys() []string {
	out := make([]string, len(registry))
	copy(out, registry)
	return out
}

// KeysWithPrefix returns the registered keys starting with prefix, in registry order.
func KeysWithPrefix(prefix string) []string {
	if prefix == "" {
		return Keys()
	}
	var out []string
	for _, k := range registry {
		if strings.HasPrefix(k, prefix) {
			out = append(out, k)
		}
	}
	return out
}

// IsRegistered reports whether key is part of the registry. Aliases are not.
func IsRegistered(key string) bool {
	_, ok := registryIndex[key]
	return ok
}

// Canonical maps a deprecated alias to its current key. The second result
// is true when key was an alias; otherwise key is returned unchanged.
func Canonical(key string) (string, bool) {
	if target, ok := aliases[key]; ok {
		return target, true
	}
	return key, false
}

// Aliases returns a copy of the alias table.
func Aliases() map[string]string {
	out := make(map[string]string, len(aliases))
	for k, v := range aliases {
		out[k] = v
	}
	return out
}
