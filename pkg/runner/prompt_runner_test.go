package runner

import (
	"strings"
	"testing"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/shouni/go-storybook-kit/pkg/domain"
	"github.com/shouni/go-storybook-kit/pkg/workflow"
)

func testRunner(memo *cache.Cache) *StorybookPromptRunner {
	return &StorybookPromptRunner{
		engine: workflow.NewPromptEngine(workflow.Config{UseSceneComposition: true}),
		identity: domain.CharacterIdentity{
			Name:   "Anya",
			Age:    6,
			Gender: domain.GenderGirl,
		},
		memo: memo,
	}
}

func TestStoryFromRawText(t *testing.T) {
	t.Run("空行区切りで章へ分割されること", func(t *testing.T) {
		text := "First paragraph.\n\nSecond paragraph.\n\nThird paragraph."
		story := storyFromRawText(text)

		if len(story.Chapters) != 3 {
			t.Fatalf("期待値 3章, 実際の値 %d章", len(story.Chapters))
		}
		for i, ch := range story.Chapters {
			if ch.ChapterNumber != i+1 {
				t.Errorf("章番号の採番が乱れています: %d番目が第%d章", i, ch.ChapterNumber)
			}
		}
		if story.Chapters[1].ChapterText != "Second paragraph." {
			t.Errorf("段落の割り当てが不正です: %q", story.Chapters[1].ChapterText)
		}
	})

	t.Run("区切りなしの本文は1章構成になること", func(t *testing.T) {
		story := storyFromRawText("Just one block of text.\nWith a single newline inside.")
		if len(story.Chapters) != 1 {
			t.Errorf("期待値 1章, 実際の値 %d章", len(story.Chapters))
		}
	})

	t.Run("空白だけの段落は読み飛ばされること", func(t *testing.T) {
		story := storyFromRawText("First.\n\n   \n\nSecond.")
		if len(story.Chapters) != 2 {
			t.Errorf("期待値 2章, 実際の値 %d章", len(story.Chapters))
		}
	})

	t.Run("章数は上限で打ち切られること", func(t *testing.T) {
		var sb strings.Builder
		for i := 0; i < domain.MaxChapters+3; i++ {
			sb.WriteString("Paragraph.\n\n")
		}
		story := storyFromRawText(sb.String())
		if len(story.Chapters) != domain.MaxChapters {
			t.Errorf("期待値 %d章, 実際の値 %d章", domain.MaxChapters, len(story.Chapters))
		}
	})

	t.Run("空文字列でも第1章を持つ物語が返ること", func(t *testing.T) {
		story := storyFromRawText("")
		if len(story.Chapters) != 1 || story.Chapters[0].ChapterNumber != 1 {
			t.Errorf("空入力のフォールバックが不正です: %+v", story.Chapters)
		}
	})
}

func TestSynthesizeWithMemo(t *testing.T) {
	ch := domain.Chapter{
		ChapterNumber: 1,
		ChapterText:   "Anya kneels by the stream, holding a glowing pebble.",
	}

	t.Run("同じ章の2回目はキャッシュから返ること", func(t *testing.T) {
		pr := testRunner(cache.New(time.Minute, 0))

		first := pr.synthesizeWithMemo(ch)
		if _, ok := pr.memo.Get(pr.memoKey(ch)); !ok {
			t.Fatal("1回目の合成結果がキャッシュに載っていません")
		}

		second := pr.synthesizeWithMemo(ch)
		if first.Prompt != second.Prompt || first.ChapterNumber != second.ChapterNumber {
			t.Error("キャッシュヒット時の結果が初回と一致しません")
		}
	})

	t.Run("memo が nil でも合成できること", func(t *testing.T) {
		pr := testRunner(nil)
		result := pr.synthesizeWithMemo(ch)
		if result.Prompt == "" {
			t.Error("memo なしでプロンプトが空になりました")
		}
	})
}

func TestMemoKey(t *testing.T) {
	pr := testRunner(nil)
	ch1 := domain.Chapter{ChapterNumber: 1, ChapterText: "hello"}
	ch2 := domain.Chapter{ChapterNumber: 2, ChapterText: "hello"}

	t.Run("同じ章からは常に同じキーが導かれること", func(t *testing.T) {
		if pr.memoKey(ch1) != pr.memoKey(ch1) {
			t.Error("キーが決定論的ではありません")
		}
	})

	t.Run("章番号が違えばキーも異なること", func(t *testing.T) {
		if pr.memoKey(ch1) == pr.memoKey(ch2) {
			t.Error("本文が同じでも章番号の違いはキーに反映されるべきです")
		}
	})
}
