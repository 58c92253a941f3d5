// Package coalesce implements the ordered-fallback selection used when
// mapping loosely shaped records onto email fields.
package coalesce

// String returns the first non-empty value, or "".
func String(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// Value returns the first entry that is neither nil nor an empty string.
// Payload maps decode as any, so only strings get the emptiness check;
// numeric zero is a present value.
func Value(vals ...any) any {
	for _, v := range vals {
		if v == nil {
			continue
		}
		if s, ok := v.(string); ok && s == "" {
			continue
		}
		return v
	}
	return nil
}
