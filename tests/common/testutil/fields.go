//go:build unit || e2e

package testutil

// a helper function for dynamically modifying map fields in tests
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
		} else {
			m[key] = value
		}
	}
}

// ItemField applies Field to the index-th element of the "items" array.
func ItemField(index int, key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		items, ok := m["items"].([]any)
		if !ok || index >= len(items) {
			return
		}
		if item, ok := items[index].(map[string]any); ok {
			Field(key, value)(item)
		}
	}
}

// CostField sets a key of the index-th item's totalCost object.
func CostField(index int, key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		items, ok := m["items"].([]any)
		if !ok || index >= len(items) {
			return
		}
		item, ok := items[index].(map[string]any)
		if !ok {
			return
		}
		if cost, ok := item["totalCost"].(map[string]any); ok {
			Field(key, value)(cost)
		}
	}
}
