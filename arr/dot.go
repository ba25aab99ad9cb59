package arr

import "strings"

// ─────────────────────────────────────────────────────────────────────────────
// Dot-notation helpers for map[string]any
//
// Example map:
//
//	m := map[string]any{
//	    "user": map[string]any{
//	        "name": "Alice",
//	        "address": map[string]any{"city": "London"},
//	    },
//	}
//
//	Get(m, "user.address.city")  → "London"
//	Set(m, "user.age", 30)
//	Has(m, "user.name")          → true
// ─────────────────────────────────────────────────────────────────────────────

// Get retrieves a value from m using a dot-notation key.
// Returns def[0] (or nil) when the key does not exist.
//
//	Get(m, "user.address.city")        // "London"
//	Get(m, "user.missing", "default")  // "default"
func Get(m map[string]any, key string, def ...any) any {
	current := m
	for {
		seg, rest, nested := strings.Cut(key, ".")
		val, ok := current[seg]
		if !ok {
			break
		}
		if !nested {
			return val
		}
		next, ok := val.(map[string]any)
		if !ok {
			break
		}
		current, key = next, rest
	}
	if len(def) > 0 {
		return def[0]
	}
	return nil
}

// Set writes value into m at the dot-notation key, creating intermediate
// maps as needed. A non-map value sitting on the path is replaced.
//
//	Set(m, "user.address.postcode", "EC1")
func Set(m map[string]any, key string, value any) {
	seg, rest, nested := strings.Cut(key, ".")
	if !nested {
		m[key] = value
		return
	}
	next, ok := m[seg].(map[string]any)
	if !ok {
		next = make(map[string]any)
		m[seg] = next
	}
	Set(next, rest, value)
}

// Has reports whether the dot-notation key exists in m. A key holding a
// nil value exists.
func Has(m map[string]any, key string) bool {
	seg, rest, nested := strings.Cut(key, ".")
	val, ok := m[seg]
	if !ok {
		return false
	}
	if !nested {
		return true
	}
	next, ok := val.(map[string]any)
	if !ok {
		return false
	}
	return Has(next, rest)
}
