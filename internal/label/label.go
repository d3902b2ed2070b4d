package label

import (
	"errors"
	"fmt"
	"slices"

	"github.com/nao1215/draftsaver/internal/model"
	"golang.org/x/text/language"
)

// ErrUnsupportedLanguage is returned when a tag cannot be parsed or does
// not match any label set.
var ErrUnsupportedLanguage = errors.New("unsupported language")

// Set is the collection of fixed strings for one output language.
type Set struct {
	// Tag is the language of this set.
	Tag language.Tag

	// Document labels.
	Title           string
	GeneratedAt     string
	TimestampLayout string
	XSection        string
	ThreadsSection  string
	SatireSection   string
	PostHeading     string
	SatireHeading   string
	Content         string
	CharCount       string
	CharCountUnit   string
	BuzzRule        string
	EmotionTrigger  string
	SatireTitle     string
	SatirePrompt    string
	Composition     string

	// Table labels.
	XPlatform          string
	ThreadsPlatform    string
	PostColumns        []string
	SatireTableHeading string
	SatireColumns      []string
	SatireType         string

	// Console status lines. Format verbs are documented per field.
	Banner           string
	SampleNotice     string
	DocumentSaved    string // %s: path
	TableSaved       string // %s: path
	Completed        string
	DocumentPathLine string // %s: path
	TablePathLine    string // %s: path
	NotFound         string // %s: path
	Failure          string // %v: error
	PartialDocument  string // %s: path
}

// japanese is the default label set.
var japanese = Set{
	Tag:             language.Japanese,
	Title:           "SNS投稿案",
	GeneratedAt:     "生成日時:",
	TimestampLayout: "2006年01月02日 15:04:05",
	XSection:        "𝕏（旧Twitter）用投稿案",
	ThreadsSection:  "Threads用投稿案",
	SatireSection:   "風刺画プロンプト（Nano Banana Pro用）",
	PostHeading:     "投稿案",
	SatireHeading:   "風刺画",
	Content:         "投稿内容:",
	CharCount:       "文字数:",
	CharCountUnit:   "文字",
	BuzzRule:        "バズの法則:",
	EmotionTrigger:  "感情トリガー:",
	SatireTitle:     "タイトル:",
	SatirePrompt:    "風刺画プロンプト:",
	Composition:     "構成説明:",

	XPlatform:          "𝕏",
	ThreadsPlatform:    "Threads",
	PostColumns:        []string{"No.", "Platform", "投稿内容", "文字数", "バズの法則", "感情トリガー"},
	SatireTableHeading: "風刺画",
	SatireColumns:      []string{"No.", "Type", "Title", "Prompt (First 100 chars)"},
	SatireType:         "風刺画",

	Banner:           "SNS投稿案保存スクリプト",
	SampleNotice:     "⚠️  引数が指定されていないため、サンプルデータを使用します。",
	DocumentSaved:    "✅ MDファイルを保存しました: %s",
	TableSaved:       "✅ TSVファイルを保存しました: %s",
	Completed:        "✅ 保存が完了しました！",
	DocumentPathLine: "📄 MDファイル: %s",
	TablePathLine:    "📊 TSVファイル: %s",
	NotFound:         "❌ ファイルが見つかりません: %s",
	Failure:          "❌ エラーが発生しました: %v",
	PartialDocument:  "⚠️  MDファイルは保存済みです: %s",
}

// english is the alternative label set.
var english = Set{
	Tag:             language.English,
	Title:           "Social Media Post Drafts",
	GeneratedAt:     "Generated at:",
	TimestampLayout: "2006-01-02 15:04:05",
	XSection:        "Post Drafts for 𝕏 (formerly Twitter)",
	ThreadsSection:  "Post Drafts for Threads",
	SatireSection:   "Satire Image Prompts (for Nano Banana Pro)",
	PostHeading:     "Draft",
	SatireHeading:   "Satire Image",
	Content:         "Content:",
	CharCount:       "Characters:",
	CharCountUnit:   "",
	BuzzRule:        "Buzz rule:",
	EmotionTrigger:  "Emotion trigger:",
	SatireTitle:     "Title:",
	SatirePrompt:    "Image prompt:",
	Composition:     "Composition:",

	XPlatform:          "𝕏",
	ThreadsPlatform:    "Threads",
	PostColumns:        []string{"No.", "Platform", "Content", "Characters", "Buzz Rule", "Emotion Trigger"},
	SatireTableHeading: "Satire Images",
	SatireColumns:      []string{"No.", "Type", "Title", "Prompt (First 100 chars)"},
	SatireType:         "Satire",

	Banner:           "Social media post draft saver",
	SampleNotice:     "⚠️  No input file given; using sample data.",
	DocumentSaved:    "✅ Saved Markdown file: %s",
	TableSaved:       "✅ Saved TSV file: %s",
	Completed:        "✅ Save completed!",
	DocumentPathLine: "📄 Markdown file: %s",
	TablePathLine:    "📊 TSV file: %s",
	NotFound:         "❌ File not found: %s",
	Failure:          "❌ An error occurred: %v",
	PartialDocument:  "⚠️  The Markdown file was already saved: %s",
}

// sets lists the supported label sets. The first entry is the fallback
// used by the matcher.
var sets = []*Set{&japanese, &english}

var matcher = language.NewMatcher([]language.Tag{japanese.Tag, english.Tag})

// Default returns a copy of the default label set.
func Default() *Set {
	return sets[0].clone()
}

// ForLanguage returns a copy of the label set that best matches the
// BCP 47 tag. An empty tag returns the default set. Only high confidence
// matches are accepted; anything weaker returns ErrUnsupportedLanguage
// instead of falling back to another language.
func ForLanguage(tag string) (*Set, error) {
	if tag == "" {
		return Default(), nil
	}

	parsed, err := language.Parse(tag)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrUnsupportedLanguage, tag, err)
	}

	_, index, confidence := matcher.Match(parsed)
	if confidence < language.High {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, tag)
	}
	return sets[index].clone(), nil
}

func (s *Set) clone() *Set {
	c := *s
	c.PostColumns = slices.Clone(s.PostColumns)
	c.SatireColumns = slices.Clone(s.SatireColumns)
	return &c
}

// PlatformName returns the name used for the platform in table rows.
func (s *Set) PlatformName(platform model.Platform) string {
	switch platform {
	case model.PlatformX:
		return s.XPlatform
	case model.PlatformThreads:
		return s.ThreadsPlatform
	default:
		return platform.String()
	}
}

// PlatformSection returns the document section heading for the platform.
func (s *Set) PlatformSection(platform model.Platform) string {
	switch platform {
	case model.PlatformX:
		return s.XSection
	case model.PlatformThreads:
		return s.ThreadsSection
	default:
		return platform.String()
	}
}
