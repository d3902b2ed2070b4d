package loader

import (
	"fmt"
	"strings"

	"github.com/nao1215/draftsaver/internal/model"
	"gopkg.in/yaml.v3"
)

// rawPost mirrors model.PostRecord with pointer fields so that missing
// fields can be told apart from zero values.
type rawPost struct {
	Content        *string    `json:"content" yaml:"content"`
	CharCount      *charCount `json:"char_count" yaml:"char_count"`
	BuzzRule       *string    `json:"buzz_rule" yaml:"buzz_rule"`
	EmotionTrigger *string    `json:"emotion_trigger" yaml:"emotion_trigger"`
}

// missing returns the names of absent required fields.
func (r rawPost) missing() []string {
	var fields []string
	if r.Content == nil {
		fields = append(fields, "content")
	}
	if r.CharCount == nil {
		fields = append(fields, "char_count")
	}
	if r.BuzzRule == nil {
		fields = append(fields, "buzz_rule")
	}
	if r.EmotionTrigger == nil {
		fields = append(fields, "emotion_trigger")
	}
	return fields
}

func (r rawPost) record() model.PostRecord {
	return model.PostRecord{
		Content:        *r.Content,
		CharCount:      int(*r.CharCount),
		BuzzRule:       *r.BuzzRule,
		EmotionTrigger: *r.EmotionTrigger,
	}
}

// rawSatire mirrors model.SatireImageRecord with pointer fields.
type rawSatire struct {
	Title       *string `json:"title" yaml:"title"`
	Prompt      *string `json:"prompt" yaml:"prompt"`
	Composition *string `json:"composition" yaml:"composition"`
}

func (r rawSatire) missing() []string {
	var fields []string
	if r.Title == nil {
		fields = append(fields, "title")
	}
	if r.Prompt == nil {
		fields = append(fields, "prompt")
	}
	if r.Composition == nil {
		fields = append(fields, "composition")
	}
	return fields
}

func (r rawSatire) record() model.SatireImageRecord {
	return model.SatireImageRecord{
		Title:       *r.Title,
		Prompt:      *r.Prompt,
		Composition: *r.Composition,
	}
}

// Parse decodes a YAML document into a RecordSet. JSON input should go
// through ParseJSON, since YAML rejects some valid JSON escapes.
// Unknown top-level keys and unknown record fields are ignored.
// All failures wrap ErrMalformed.
func Parse(data []byte) (*model.RecordSet, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrMalformed)
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: top level must be a mapping of group keys, got %s",
			ErrMalformed, nodeKind(root))
	}

	var opts []model.RecordSetOption
	for i := 0; i+1 < len(root.Content); i += 2 {
		key := model.GroupKey(root.Content[i].Value)
		if !key.IsValid() {
			continue
		}
		value := resolveAlias(root.Content[i+1])

		if key == model.GroupSatireImages {
			images, err := parseSatireImages(value)
			if err != nil {
				return nil, err
			}
			opts = append(opts, model.WithSatireImages(images...))
			continue
		}

		posts, err := parsePosts(key, value)
		if err != nil {
			return nil, err
		}
		opts = append(opts, model.WithPosts(platformOf(key), posts...))
	}

	return model.NewRecordSet(opts...), nil
}

// parsePosts decodes the sequence stored under a post group key.
func parsePosts(key model.GroupKey, node *yaml.Node) ([]model.PostRecord, error) {
	if err := expectSequence(key, node); err != nil {
		return nil, err
	}

	posts := make([]model.PostRecord, 0, len(node.Content))
	for i, item := range node.Content {
		item = resolveAlias(item)
		if item.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("%w: %s[%d] must be a mapping, got %s",
				ErrMalformed, key, i+1, nodeKind(item))
		}

		var raw rawPost
		if err := item.Decode(&raw); err != nil {
			return nil, fmt.Errorf("%w: %s[%d]: %w", ErrMalformed, key, i+1, err)
		}
		if err := incomplete(key, i+1, raw.missing()); err != nil {
			return nil, err
		}
		posts = append(posts, raw.record())
	}
	return posts, nil
}

// parseSatireImages decodes the satire_images sequence.
func parseSatireImages(node *yaml.Node) ([]model.SatireImageRecord, error) {
	key := model.GroupSatireImages
	if err := expectSequence(key, node); err != nil {
		return nil, err
	}

	images := make([]model.SatireImageRecord, 0, len(node.Content))
	for i, item := range node.Content {
		item = resolveAlias(item)
		if item.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("%w: %s[%d] must be a mapping, got %s",
				ErrMalformed, key, i+1, nodeKind(item))
		}

		var raw rawSatire
		if err := item.Decode(&raw); err != nil {
			return nil, fmt.Errorf("%w: %s[%d]: %w", ErrMalformed, key, i+1, err)
		}
		if err := incomplete(key, i+1, raw.missing()); err != nil {
			return nil, err
		}
		images = append(images, raw.record())
	}
	return images, nil
}

// platformOf returns the platform whose posts are stored under key.
func platformOf(key model.GroupKey) model.Platform {
	for _, platform := range model.Platforms() {
		if platform.GroupKey() == key {
			return platform
		}
	}
	return ""
}

// incomplete returns ErrMalformed naming the missing fields of the
// index-th record of key, or nil when none are missing.
func incomplete(key model.GroupKey, index int, missing []string) error {
	if len(missing) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s[%d] is missing %s",
		ErrMalformed, key, index, strings.Join(missing, ", "))
}

// expectSequence returns ErrMalformed unless node is a sequence.
func expectSequence(key model.GroupKey, node *yaml.Node) error {
	if node.Kind == yaml.SequenceNode {
		return nil
	}
	return fmt.Errorf("%w: %s must be a sequence, got %s", ErrMalformed, key, nodeKind(node))
}

// resolveAlias follows YAML anchors so that aliased groups and records are
// treated like their targets.
func resolveAlias(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}

// nodeKind describes a node for error messages.
func nodeKind(node *yaml.Node) string {
	switch node.Kind {
	case yaml.MappingNode:
		return "mapping"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.AliasNode:
		return "alias"
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			return "null"
		}
		return "scalar " + node.Tag
	default:
		return "unknown node"
	}
}
