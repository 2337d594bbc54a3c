package domain

import (
	"encoding/json"
	"testing"
)

func TestStoryResponse_JSON(t *testing.T) {
	t.Run("物語生成側のレスポンス形式をシミュレートするのだ", func(t *testing.T) {
		inputJSON := `{
			"title": "Anya and the Rainbow Pebble",
			"chapters": [
				{
					"chapter_number": 1,
					"chapter_text": "Anya found a pebble.",
					"full_chapter_text": "Anya found a glowing pebble under the oak tree."
				}
			]
		}`

		var story StoryResponse
		if err := json.Unmarshal([]byte(inputJSON), &story); err != nil {
			t.Fatalf("パース失敗なのだ: %v", err)
		}

		if story.Title != "Anya and the Rainbow Pebble" {
			t.Errorf("タイトルが違うのだ: %s", story.Title)
		}
		if len(story.Chapters) != 1 || story.Chapters[0].ChapterNumber != 1 {
			t.Error("章の内容が正しくパースされていないのだ")
		}
	})
}

func TestChapter_EffectiveText(t *testing.T) {
	t.Run("完全版の本文があれば優先されること", func(t *testing.T) {
		c := Chapter{ChapterText: "short", FullChapterText: "long and rich"}
		if c.EffectiveText() != "long and rich" {
			t.Errorf("完全版が選ばれませんでした: %s", c.EffectiveText())
		}
	})

	t.Run("完全版が空なら要約版が使われること", func(t *testing.T) {
		c := Chapter{ChapterText: "short"}
		if c.EffectiveText() != "short" {
			t.Errorf("要約版が選ばれませんでした: %s", c.EffectiveText())
		}
	})
}

func TestChapters_Limit(t *testing.T) {
	chapters := make(Chapters, 10)
	for i := range chapters {
		chapters[i] = Chapter{ChapterNumber: i + 1}
	}

	t.Run("上限を超える章は切り詰められること", func(t *testing.T) {
		limited := chapters.Limit(0)
		if len(limited) != MaxChapters {
			t.Errorf("期待値 %d章, 実際の値 %d章", MaxChapters, len(limited))
		}
	})

	t.Run("元のスライスが変更されないこと", func(t *testing.T) {
		limited := chapters.Limit(3)
		limited[0] = Chapter{ChapterNumber: 99}
		if chapters[0].ChapterNumber != 1 {
			t.Error("Limitの結果への書き込みが元スライスへ波及しました")
		}
	})
}
