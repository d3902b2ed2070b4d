package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/nao1215/draftsaver/internal/loader"
	"github.com/nao1215/draftsaver/internal/model"
)

// TestJSONWriter tests the input document export.
func TestJSONWriter(t *testing.T) {
	t.Parallel()

	t.Run("sample loads back unchanged", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf, WithPrettyPrint()).Write(model.SampleRecordSet()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got, err := loader.ParseJSON(buf.Bytes())
		if err != nil {
			t.Fatalf("exported document does not load: %v\n%s", err, buf.String())
		}

		want := model.SampleRecordSet()
		for _, platform := range model.Platforms() {
			wantPosts, _ := want.Posts(platform)
			gotPosts, ok := got.Posts(platform)
			if !ok {
				t.Fatalf("%s group missing", platform)
			}
			if diff := cmp.Diff(wantPosts, gotPosts); diff != "" {
				t.Errorf("%s posts mismatch (-want +got):\n%s", platform, diff)
			}
		}
		wantImages, _ := want.SatireImages()
		gotImages, _ := got.SatireImages()
		if diff := cmp.Diff(wantImages, gotImages); diff != "" {
			t.Errorf("satire images mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("absent groups are omitted and empty groups kept", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf).Write(model.NewRecordSet(model.WithThreadsPosts())); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if got := buf.String(); got != "{\"threads_posts\":[]}\n" {
			t.Errorf("unexpected output %q", got)
		}
	})

	t.Run("indent option", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		records := model.NewRecordSet(model.WithXPosts(model.PostRecord{Content: "<hi>", CharCount: 4}))
		if _, err := NewJSONWriter(&buf, WithIndent("", "\t")).Write(records); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		out := buf.String()
		if !strings.Contains(out, "\n\t\"x_posts\": [") {
			t.Errorf("expected tab indentation, got %q", out)
		}
		if !strings.Contains(out, `"content": "<hi>"`) {
			t.Errorf("expected unescaped content, got %q", out)
		}
	})

	t.Run("factory", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		n, err := NewJSONWriterFactory()(&buf).Write(model.NewRecordSet())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != buf.Len() || buf.String() != "{}\n" {
			t.Errorf("unexpected output %q (n=%d)", buf.String(), n)
		}
	})
}
