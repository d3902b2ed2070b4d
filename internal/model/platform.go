package model

// GroupKey identifies one homogeneous collection of records in a RecordSet.
// The string values are the keys used in input files.
type GroupKey string

// Group key constants.
const (
	// GroupXPosts holds short-form posts for X (formerly Twitter).
	GroupXPosts GroupKey = "x_posts"
	// GroupThreadsPosts holds longer-form posts for Threads.
	GroupThreadsPosts GroupKey = "threads_posts"
	// GroupSatireImages holds satire-image prompts.
	GroupSatireImages GroupKey = "satire_images"
)

// GroupKeys returns every group key in rendering order.
// Renderers iterate this slice so that section order never depends on
// input order.
func GroupKeys() []GroupKey {
	return []GroupKey{GroupXPosts, GroupThreadsPosts, GroupSatireImages}
}

// String returns the input-file key for the group.
func (k GroupKey) String() string {
	return string(k)
}

// IsValid returns true if this is a known group key.
func (k GroupKey) IsValid() bool {
	switch k {
	case GroupXPosts, GroupThreadsPosts, GroupSatireImages:
		return true
	default:
		return false
	}
}

// Platform is a posting destination for PostRecords.
type Platform string

// Platform constants.
const (
	// PlatformX is X (formerly Twitter), the short-form platform.
	PlatformX Platform = "x"
	// PlatformThreads is Threads, the longer-form platform.
	PlatformThreads Platform = "threads"
)

// Platforms returns every post platform in rendering order.
func Platforms() []Platform {
	return []Platform{PlatformX, PlatformThreads}
}

// String returns the string representation of the Platform.
func (p Platform) String() string {
	return string(p)
}

// GroupKey returns the group that stores posts for this platform.
// Unknown platforms map to the empty key.
func (p Platform) GroupKey() GroupKey {
	switch p {
	case PlatformX:
		return GroupXPosts
	case PlatformThreads:
		return GroupThreadsPosts
	default:
		return ""
	}
}
