package model

// SampleLabel is the content label used when the sample RecordSet is saved.
const SampleLabel = "sample post draft"

// SampleRecordSet returns the built-in sample drafts.
// It holds exactly one record per group and is identical on every call,
// which makes it useful for trying the tool and for tests.
func SampleRecordSet() *RecordSet {
	return NewRecordSet(
		WithXPosts(PostRecord{
			Content:        "これはサンプル投稿です。実際の投稿案に置き換えてください。",
			CharCount:      30,
			BuzzRule:       "稀有性",
			EmotionTrigger: "共感",
		}),
		WithThreadsPosts(PostRecord{
			Content:        "これはThreads用のサンプル投稿です。𝕏より長めの文章でストーリー性を重視します。",
			CharCount:      45,
			BuzzRule:       "プロセスエコノミー",
			EmotionTrigger: "感動",
		}),
		WithSatireImages(SatireImageRecord{
			Title: "弊社のAI活用会議",
			Prompt: "Simple illustration of three office workers sitting at meeting table. " +
				"Left: middle-aged manager with confused expression, labeled \"AI使ったことない\" in Japanese text bubble. " +
				"Center: senior manager with stern face, labeled \"AI反対派\" in Japanese text bubble. " +
				"Right: young employee with secretive smile, labeled \"こっそりAI使ってる\" in Japanese text bubble. " +
				"Minimalist style, clean lines, soft colors, satirical tone, manga-inspired character design, white background.",
			Composition: "- 左: 部長（中年、困惑した表情）- ラベル「AI使ったことない」\n" +
				"- 中央: 課長（厳しい顔）- ラベル「AI反対派」\n" +
				"- 右: 新入社員（秘密の笑顔）- ラベル「こっそりAI使ってる」\n" +
				"- 背景: 会議室、ミニマルスタイル\n" +
				"- スタイル: 風刺画、シンプルな線画、マンガ風",
		}),
	)
}
