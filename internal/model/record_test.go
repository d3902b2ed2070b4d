package model

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestNewRecordSet(t *testing.T) {
	t.Parallel()

	t.Run("empty set has no groups", func(t *testing.T) {
		t.Parallel()
		set := NewRecordSet()
		if !set.IsEmpty() {
			t.Error("expected empty set")
		}
		for _, key := range GroupKeys() {
			if set.Has(key) {
				t.Errorf("expected %s to be absent", key)
			}
		}
		if _, ok := set.Posts(PlatformX); ok {
			t.Error("expected x posts to be absent")
		}
		if _, ok := set.SatireImages(); ok {
			t.Error("expected satire images to be absent")
		}
	})

	t.Run("present group with zero records", func(t *testing.T) {
		t.Parallel()
		set := NewRecordSet(WithThreadsPosts())
		if !set.Has(GroupThreadsPosts) {
			t.Error("expected threads_posts to be present")
		}
		posts, ok := set.Posts(PlatformThreads)
		if !ok {
			t.Fatal("expected threads posts to be present")
		}
		if len(posts) != 0 {
			t.Errorf("expected 0 posts, got %d", len(posts))
		}
	})

	t.Run("Groups follows rendering order", func(t *testing.T) {
		t.Parallel()
		set := NewRecordSet(
			WithSatireImages(SatireImageRecord{Title: "t"}),
			WithXPosts(PostRecord{Content: "a"}),
		)
		want := []GroupKey{GroupXPosts, GroupSatireImages}
		if diff := cmp.Diff(want, set.Groups()); diff != "" {
			t.Errorf("groups mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("WithPosts routes by platform", func(t *testing.T) {
		t.Parallel()
		post := PostRecord{Content: "hello", CharCount: 5, BuzzRule: "r", EmotionTrigger: "e"}
		set := NewRecordSet(WithPosts(PlatformThreads, post), WithPosts(Platform("unknown"), post))
		if set.Has(GroupXPosts) {
			t.Error("expected x_posts to be absent")
		}
		posts, ok := set.Posts(PlatformThreads)
		if !ok {
			t.Fatal("expected threads posts")
		}
		if diff := cmp.Diff([]PostRecord{post}, posts); diff != "" {
			t.Errorf("posts mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("accessors return copies", func(t *testing.T) {
		t.Parallel()
		input := []PostRecord{{Content: "original"}}
		set := NewRecordSet(WithXPosts(input...))
		input[0].Content = "changed by caller"

		posts, _ := set.Posts(PlatformX)
		if posts[0].Content != "original" {
			t.Errorf("expected set to be unaffected by input mutation, got %q", posts[0].Content)
		}

		posts[0].Content = "changed by reader"
		again, _ := set.Posts(PlatformX)
		if again[0].Content != "original" {
			t.Errorf("expected set to be unaffected by output mutation, got %q", again[0].Content)
		}
	})

	t.Run("Len counts records per group", func(t *testing.T) {
		t.Parallel()
		set := NewRecordSet(
			WithXPosts(PostRecord{}, PostRecord{}, PostRecord{}),
			WithSatireImages(SatireImageRecord{}),
		)
		if got := set.Len(GroupXPosts); got != 3 {
			t.Errorf("expected 3, got %d", got)
		}
		if got := set.Len(GroupThreadsPosts); got != 0 {
			t.Errorf("expected 0, got %d", got)
		}
		if got := set.Len(GroupSatireImages); got != 1 {
			t.Errorf("expected 1, got %d", got)
		}
	})

	t.Run("nil set reports nothing present", func(t *testing.T) {
		t.Parallel()
		var set *RecordSet
		if set.Has(GroupXPosts) {
			t.Error("expected nil set to have no groups")
		}
		if !set.IsEmpty() {
			t.Error("expected nil set to be empty")
		}
	})
}

func TestSampleRecordSet(t *testing.T) {
	t.Parallel()

	t.Run("has one record per group", func(t *testing.T) {
		t.Parallel()
		set := SampleRecordSet()
		for _, key := range GroupKeys() {
			if got := set.Len(key); got != 1 {
				t.Errorf("expected 1 record in %s, got %d", key, got)
			}
		}
	})

	t.Run("is deterministic", func(t *testing.T) {
		t.Parallel()
		first, _ := SampleRecordSet().SatireImages()
		second, _ := SampleRecordSet().SatireImages()
		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("sample changed between calls (-first +second):\n%s", diff)
		}
	})

	t.Run("sample prompt is longer than the table preview", func(t *testing.T) {
		t.Parallel()
		images, _ := SampleRecordSet().SatireImages()
		if len([]rune(images[0].Prompt)) <= 100 {
			t.Error("expected sample prompt to exceed 100 characters")
		}
	})

	t.Run("label is fixed", func(t *testing.T) {
		t.Parallel()
		if SampleLabel != "sample post draft" {
			t.Errorf("unexpected sample label %q", SampleLabel)
		}
	})
}

func TestSaveJob(t *testing.T) {
	t.Parallel()

	t.Run("nil records become an empty set", func(t *testing.T) {
		t.Parallel()
		job := NewSaveJob(nil, "label", "out", time.Time{})
		if job.Records == nil {
			t.Fatal("expected non-nil records")
		}
		if !job.Records.IsEmpty() {
			t.Error("expected empty records")
		}
	})

	t.Run("DocumentWritten tracks the document step", func(t *testing.T) {
		t.Parallel()
		job := NewSaveJob(SampleRecordSet(), "label", "out", time.Time{})
		if job.DocumentWritten() {
			t.Error("expected document not written")
		}
		job.CompletedSteps = append(job.CompletedSteps, StepEnsureOutputDir, StepWriteDocument)
		if !job.DocumentWritten() {
			t.Error("expected document written")
		}
	})
}
