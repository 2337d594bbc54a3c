package domain

// MaxChapters は1冊の絵本として扱うチャプター数の上限です。
// 連続するシーンでのキャラクター一貫性が経験的に保てる範囲なのだ。
const MaxChapters = 8

// StoryResponse は物語生成コラボレーターから返される物語全体の構造です。
type StoryResponse struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Chapters    []Chapter `json:"chapters"`
}

// Chapter は物語の1章分の本文と通し番号を保持します。
type Chapter struct {
	ChapterNumber int    `json:"chapter_number"`
	ChapterText   string `json:"chapter_text"`
	// FullChapterText は要約前の完全な本文。空でなければこちらを優先します。
	FullChapterText string `json:"full_chapter_text,omitempty"`
}

// EffectiveText は特徴抽出に使うべきテキストを返します。
// 完全版の本文があればそちらの方が抽出材料として豊かなのだ。
func (c Chapter) EffectiveText() string {
	if c.FullChapterText != "" {
		return c.FullChapterText
	}
	return c.ChapterText
}

// ChapterPrompt は1チャプター分の合成結果です。
type ChapterPrompt struct {
	ChapterNumber int      `json:"chapter_number"`
	Prompt        string   `json:"prompt"`
	Warnings      []string `json:"warnings,omitempty"`
}

// Chapters はチャプターのスライスに対する補助操作を提供します。
type Chapters []Chapter

// Limit は先頭から最大 n 章（n <= 0 なら MaxChapters）に切り詰めたコピーを返すのだ。
func (cs Chapters) Limit(n int) Chapters {
	if n <= 0 {
		n = MaxChapters
	}
	if len(cs) > n {
		cs = cs[:n]
	}
	limited := make(Chapters, len(cs))
	copy(limited, cs)
	return limited
}
