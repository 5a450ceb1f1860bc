package atom

// safeGet extracts a typed value from loosely typed JSON input.
// Returns the zero value and false if the key is missing or has another type.
func safeGet[T any](m map[string]interface{}, key string) (T, bool) {
	var zero T
	if m == nil {
		return zero, false
	}
	val, ok := m[key]
	if !ok {
		return zero, false
	}
	typed, ok := val.(T)
	return typed, ok
}

// SafeFloat64 extracts a number. JSON numbers decode as float64; ints are accepted too.
func SafeFloat64(m map[string]interface{}, key string) (float64, bool) {
	if f, ok := safeGet[float64](m, key); ok {
		return f, true
	}
	if i, ok := safeGet[int](m, key); ok {
		return float64(i), true
	}
	return 0, false
}

// SafeString extracts a string value
func SafeString(m map[string]interface{}, key string) (string, bool) {
	return safeGet[string](m, key)
}

// SafeMap extracts a nested object
func SafeMap(m map[string]interface{}, key string) (map[string]interface{}, bool) {
	return safeGet[map[string]interface{}](m, key)
}

// SafeBool extracts a boolean value
func SafeBool(m map[string]interface{}, key string) (bool, bool) {
	return safeGet[bool](m, key)
}
