package utils

import (
	"clinidash-core/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

// DecodeEntity unwraps a single-entity response. The upstream wraps mutation
// results under the resource name ({"patient": {...}}) but has also shipped
// bare objects; the wrapper keys are probed in order before falling back to
// the bare shape.
func DecodeEntity(raw json.RawMessage, wrapperKeys []string, out interface{}) error {
	if len(raw) == 0 {
		return nil
	}

	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal(raw, &wrapper); err == nil {
		for _, key := range wrapperKeys {
			inner, ok := wrapper[key]
			if !ok {
				continue
			}
			if err := json.Unmarshal(inner, out); err == nil {
				return nil
			}
		}
	}

	err := json.Unmarshal(raw, out)
	if err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}
	return nil
}
