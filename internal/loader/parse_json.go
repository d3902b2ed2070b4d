package loader

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/nao1215/draftsaver/internal/model"
)

// charCount is the char_count field. JSON writers that store every number
// as a float emit 30.0 for 30, so integral floats are accepted.
type charCount int

// UnmarshalJSON implements json.Unmarshaler.
func (c *charCount) UnmarshalJSON(data []byte) error {
	text := string(data)
	if n, err := strconv.ParseInt(text, 10, 0); err == nil {
		*c = charCount(n)
		return nil
	}

	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return fmt.Errorf("char_count must be an integer, got %s", text)
	}
	if f != math.Trunc(f) || f > math.MaxInt32 || f < math.MinInt32 {
		return fmt.Errorf("char_count must be an integer, got %s", text)
	}
	*c = charCount(f)
	return nil
}

// ParseJSON decodes a JSON document into a RecordSet with the same rules
// as Parse. Duplicate keys keep the last value.
// All failures wrap ErrMalformed.
func ParseJSON(data []byte) (*model.RecordSet, error) {
	var root map[string]json.RawMessage
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if root == nil {
		return nil, fmt.Errorf("%w: top level must be an object of group keys, got null", ErrMalformed)
	}

	var opts []model.RecordSetOption
	for _, key := range model.GroupKeys() {
		value, ok := root[key.String()]
		if !ok {
			continue
		}

		if key == model.GroupSatireImages {
			images, err := parseJSONSatireImages(value)
			if err != nil {
				return nil, err
			}
			opts = append(opts, model.WithSatireImages(images...))
			continue
		}

		posts, err := parseJSONPosts(key, value)
		if err != nil {
			return nil, err
		}
		opts = append(opts, model.WithPosts(platformOf(key), posts...))
	}

	return model.NewRecordSet(opts...), nil
}

// parseJSONPosts decodes the array stored under a post group key.
func parseJSONPosts(key model.GroupKey, value json.RawMessage) ([]model.PostRecord, error) {
	items, err := jsonArray(key, value)
	if err != nil {
		return nil, err
	}

	posts := make([]model.PostRecord, 0, len(items))
	for i, item := range items {
		var raw rawPost
		if err := decodeJSONObject(key, i+1, item, &raw); err != nil {
			return nil, err
		}
		if err := incomplete(key, i+1, raw.missing()); err != nil {
			return nil, err
		}
		posts = append(posts, raw.record())
	}
	return posts, nil
}

// parseJSONSatireImages decodes the satire_images array.
func parseJSONSatireImages(value json.RawMessage) ([]model.SatireImageRecord, error) {
	key := model.GroupSatireImages
	items, err := jsonArray(key, value)
	if err != nil {
		return nil, err
	}

	images := make([]model.SatireImageRecord, 0, len(items))
	for i, item := range items {
		var raw rawSatire
		if err := decodeJSONObject(key, i+1, item, &raw); err != nil {
			return nil, err
		}
		if err := incomplete(key, i+1, raw.missing()); err != nil {
			return nil, err
		}
		images = append(images, raw.record())
	}
	return images, nil
}

// jsonArray splits a group value into its elements. Anything but an array,
// including null, is malformed.
func jsonArray(key model.GroupKey, value json.RawMessage) ([]json.RawMessage, error) {
	if kind := jsonKind(value); kind != "array" {
		return nil, fmt.Errorf("%w: %s must be an array, got %s", ErrMalformed, key, kind)
	}
	var items []json.RawMessage
	if err := json.Unmarshal(value, &items); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMalformed, key, err)
	}
	return items, nil
}

// decodeJSONObject decodes the index-th record of key into v.
func decodeJSONObject(key model.GroupKey, index int, item json.RawMessage, v any) error {
	if kind := jsonKind(item); kind != "object" {
		return fmt.Errorf("%w: %s[%d] must be an object, got %s", ErrMalformed, key, index, kind)
	}
	if err := json.Unmarshal(item, v); err != nil {
		return fmt.Errorf("%w: %s[%d]: %w", ErrMalformed, key, index, err)
	}
	return nil
}

// jsonKind describes a JSON value for error messages.
func jsonKind(value json.RawMessage) string {
	trimmed := bytes.TrimSpace(value)
	if len(trimmed) == 0 {
		return "nothing"
	}
	switch trimmed[0] {
	case '{':
		return "object"
	case '[':
		return "array"
	case '"':
		return "string"
	case 'n':
		return "null"
	case 't', 'f':
		return "boolean"
	default:
		return "number"
	}
}
