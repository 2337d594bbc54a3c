package workflow

import (
	"strings"
	"testing"

	"github.com/shouni/go-storybook-kit/pkg/domain"
)

func testIdentity() domain.CharacterIdentity {
	return domain.CharacterIdentity{
		Name:   "Anya",
		Age:    6,
		Gender: domain.GenderGirl,
	}
}

func TestSynthesizeChapter(t *testing.T) {
	engine := NewPromptEngine(Config{UseSceneComposition: true})

	t.Run("章本文から最終プロンプトまで一気通貫で合成されること", func(t *testing.T) {
		ch := domain.Chapter{
			ChapterNumber: 1,
			ChapterText:   "Anya kneels near the old oak tree, gently holding a glowing, rainbow-colored pebble with awe.",
		}
		prompt, warnings := engine.SynthesizeChapter(ch, testIdentity())

		if len(warnings) != 0 {
			t.Errorf("予期しない警告: %v", warnings)
		}
		if !strings.Contains(prompt, "kneeling down and gently cradling a glowing rainbow pebble in both hands") {
			t.Errorf("最特定のポーズ規則が反映されていません:\n%s", prompt)
		}
		// 第1章は discovery テーマになり、そのカメラプリセットが使われる
		if !strings.Contains(prompt, "low-angle shot looking up") {
			t.Errorf("discovery のカメラプリセットが使われていません:\n%s", prompt)
		}
		if !strings.Contains(prompt, "A children's storybook illustration of Anya, a 6-year-old girl.") {
			t.Errorf("紹介行がありません:\n%s", prompt)
		}
	})

	t.Run("空の本文でも失敗せずデフォルトへ退避すること", func(t *testing.T) {
		prompt, _ := engine.SynthesizeChapter(domain.Chapter{ChapterNumber: 3}, testIdentity())
		if prompt == "" {
			t.Fatal("空の本文でプロンプトが空になりました")
		}
		if !strings.Contains(prompt, "standing with a warm, friendly expression") {
			t.Errorf("デフォルトのポーズに退避していません:\n%s", prompt)
		}
	})

	t.Run("FullChapterText が ChapterText より優先されること", func(t *testing.T) {
		ch := domain.Chapter{
			ChapterNumber:   2,
			ChapterText:     "short summary",
			FullChapterText: "She was holding a lantern to light the way.",
		}
		prompt, _ := engine.SynthesizeChapter(ch, testIdentity())
		if !strings.Contains(prompt, "holding up a softly glowing lantern") {
			t.Errorf("完全版の本文が使われていません:\n%s", prompt)
		}
	})

	t.Run("同じ入力からは常に同一のプロンプトが得られること", func(t *testing.T) {
		ch := domain.Chapter{ChapterNumber: 2, ChapterText: "Anya walked into the garden."}
		p1, _ := engine.SynthesizeChapter(ch, testIdentity())
		p2, _ := engine.SynthesizeChapter(ch, testIdentity())
		if p1 != p2 {
			t.Error("合成結果が決定論的ではありません")
		}
	})
}

func TestSynthesizeStory(t *testing.T) {
	engine := NewPromptEngine(Config{})

	t.Run("8章を超える物語は上限で切り詰められること", func(t *testing.T) {
		var chapters domain.Chapters
		for i := 1; i <= 10; i++ {
			chapters = append(chapters, domain.Chapter{ChapterNumber: i, ChapterText: "They walked on."})
		}

		results := engine.SynthesizeStory(chapters, testIdentity())
		if len(results) != domain.MaxChapters {
			t.Errorf("期待値 %d章, 実際の値 %d章", domain.MaxChapters, len(results))
		}
		for i, r := range results {
			if r.ChapterNumber != i+1 {
				t.Errorf("章番号の順序が乱れています: %d番目が第%d章", i, r.ChapterNumber)
			}
		}
	})

	t.Run("検証警告が結果に載って返ること", func(t *testing.T) {
		id := testIdentity()
		id.Age = 99
		results := engine.SynthesizeStory(domain.Chapters{{ChapterNumber: 1, ChapterText: "hello"}}, id)

		if len(results) != 1 {
			t.Fatalf("期待値 1章, 実際の値 %d章", len(results))
		}
		if len(results[0].Warnings) == 0 {
			t.Error("範囲外の年齢で警告が載っていません")
		}
		if results[0].Prompt == "" {
			t.Error("警告があってもプロンプトは生成されるべきです")
		}
	})
}
