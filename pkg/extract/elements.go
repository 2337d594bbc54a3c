// Package extract は、チャプター本文から視覚プロンプトの材料となる特徴を
// 取り出す純粋関数群を提供します。すべての抽出器は決定論的で、どんな入力に対しても
// 失敗せず、マッチしない場合は文書化されたデフォルトへ退避するのだ。
package extract

import "github.com/shouni/go-storybook-kit/pkg/lexicon"

// Elements は1チャプター分のカテゴリ別タグ集合です。
// 生成後は不変であり、そのチャプターの合成呼び出しの間だけ呼び出し元が所有します。
type Elements struct {
	Settings []string `json:"settings,omitempty"`
	Objects  []string `json:"objects,omitempty"`
	Actions  []string `json:"actions,omitempty"`
	Moods    []string `json:"moods,omitempty"`
	// ChapterText は下流での再抽出のために元の本文を保持します。
	ChapterText string `json:"-"`
}

// AnalyzeChapter は本文を4カテゴリの語彙表と突き合わせ、マッチした全ラベルを返します。
// カテゴリごとに0個以上のグループがマッチし得ます（相互排他なし）。
// マッチなしは空集合であって失敗ではないのだ。
func AnalyzeChapter(text string) Elements {
	return Elements{
		Settings:    lexicon.MatchGroups(text, lexicon.Settings),
		Objects:     lexicon.MatchGroups(text, lexicon.Objects),
		Actions:     lexicon.MatchGroups(text, lexicon.Actions),
		Moods:       lexicon.MatchGroups(text, lexicon.Moods),
		ChapterText: text,
	}
}
