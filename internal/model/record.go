package model

import "slices"

// PostRecord is a single post draft for one platform.
type PostRecord struct {
	// Content is the post body. It may contain newlines.
	Content string `json:"content" yaml:"content"`

	// CharCount is the author-supplied length of Content.
	// It is an annotation, never recomputed from Content.
	CharCount int `json:"char_count" yaml:"char_count"`

	// BuzzRule names the persuasion or virality technique the post uses.
	BuzzRule string `json:"buzz_rule" yaml:"buzz_rule"`

	// EmotionTrigger names the emotional response the post targets.
	EmotionTrigger string `json:"emotion_trigger" yaml:"emotion_trigger"`
}

// SatireImageRecord is a single image-generation prompt draft.
type SatireImageRecord struct {
	// Title is a short label for the image.
	Title string `json:"title" yaml:"title"`

	// Prompt is the generation prompt. It may be long.
	Prompt string `json:"prompt" yaml:"prompt"`

	// Composition describes the intended visual layout.
	Composition string `json:"composition" yaml:"composition"`
}

// RecordSet is the full collection of drafts for one run.
//
// Each group is either absent or present. A present group may hold zero
// records; renderers still emit its section heading in that case, while an
// absent group produces no output at all.
//
// A RecordSet is immutable once built: accessors return copies.
type RecordSet struct {
	xPosts       []PostRecord
	threadsPosts []PostRecord
	satireImages []SatireImageRecord
	present      map[GroupKey]bool
}

// RecordSetOption adds a group to a RecordSet under construction.
type RecordSetOption func(*RecordSet)

// WithXPosts marks the x_posts group as present with the given records.
func WithXPosts(posts ...PostRecord) RecordSetOption {
	return func(s *RecordSet) {
		s.xPosts = slices.Clone(posts)
		s.present[GroupXPosts] = true
	}
}

// WithThreadsPosts marks the threads_posts group as present with the given records.
func WithThreadsPosts(posts ...PostRecord) RecordSetOption {
	return func(s *RecordSet) {
		s.threadsPosts = slices.Clone(posts)
		s.present[GroupThreadsPosts] = true
	}
}

// WithPosts marks the group for the given platform as present.
// Unknown platforms are ignored.
func WithPosts(platform Platform, posts ...PostRecord) RecordSetOption {
	switch platform {
	case PlatformX:
		return WithXPosts(posts...)
	case PlatformThreads:
		return WithThreadsPosts(posts...)
	default:
		return func(*RecordSet) {}
	}
}

// WithSatireImages marks the satire_images group as present with the given records.
func WithSatireImages(images ...SatireImageRecord) RecordSetOption {
	return func(s *RecordSet) {
		s.satireImages = slices.Clone(images)
		s.present[GroupSatireImages] = true
	}
}

// NewRecordSet creates a RecordSet containing the groups added by opts.
// With no options the set is empty and every group is absent.
func NewRecordSet(opts ...RecordSetOption) *RecordSet {
	s := &RecordSet{
		present: make(map[GroupKey]bool, len(GroupKeys())),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Has reports whether the group is present.
func (s *RecordSet) Has(key GroupKey) bool {
	if s == nil {
		return false
	}
	return s.present[key]
}

// Groups returns the present group keys in rendering order.
func (s *RecordSet) Groups() []GroupKey {
	groups := make([]GroupKey, 0, len(GroupKeys()))
	for _, key := range GroupKeys() {
		if s.Has(key) {
			groups = append(groups, key)
		}
	}
	return groups
}

// Posts returns a copy of the posts for the platform and whether the
// platform's group is present.
func (s *RecordSet) Posts(platform Platform) ([]PostRecord, bool) {
	if !s.Has(platform.GroupKey()) {
		return nil, false
	}
	switch platform {
	case PlatformX:
		return slices.Clone(s.xPosts), true
	case PlatformThreads:
		return slices.Clone(s.threadsPosts), true
	default:
		return nil, false
	}
}

// SatireImages returns a copy of the satire-image records and whether the
// group is present.
func (s *RecordSet) SatireImages() ([]SatireImageRecord, bool) {
	if !s.Has(GroupSatireImages) {
		return nil, false
	}
	return slices.Clone(s.satireImages), true
}

// Len returns the number of records in the group, or zero when absent.
func (s *RecordSet) Len(key GroupKey) int {
	if !s.Has(key) {
		return 0
	}
	switch key {
	case GroupXPosts:
		return len(s.xPosts)
	case GroupThreadsPosts:
		return len(s.threadsPosts)
	case GroupSatireImages:
		return len(s.satireImages)
	default:
		return 0
	}
}

// IsEmpty returns true when no group is present.
func (s *RecordSet) IsEmpty() bool {
	return len(s.Groups()) == 0
}
