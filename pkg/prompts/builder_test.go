package prompts

import (
	"strings"
	"testing"

	"github.com/shouni/go-storybook-kit/pkg/domain"
)

func baseParams() PromptParams {
	return PromptParams{
		ChildName:     "Anya",
		Age:           6,
		Gender:        domain.GenderGirl,
		VisualPose:    "kneeling down and gently cradling a glowing rainbow pebble in both hands",
		Emotion:       "open-mouthed wonder",
		SceneContext:  "a curious squirrel named Pip watching closely",
		Environment:   "a friendly sunlit forest with forest, oak tree",
		ChapterNumber: 1,
		ChapterText:   "Anya kneels near the old oak tree, gently holding a glowing, rainbow-colored pebble with awe.",
	}
}

func TestBuild(t *testing.T) {
	b := NewStorybookPromptBuilder("")

	t.Run("レガシーモードの基本形", func(t *testing.T) {
		p := baseParams()
		got := b.Build(p)

		if !strings.HasPrefix(got, "A children's storybook illustration of Anya, a 6-year-old girl.") {
			t.Errorf("紹介行が先頭にありません:\n%s", got)
		}
		if !strings.Contains(got, "She is kneeling down") {
			t.Errorf("代名詞の文頭大文字化がされていません:\n%s", got)
		}
		if !strings.Contains(got, "Nearby, a curious squirrel named Pip watching closely.") {
			t.Errorf("文脈行がありません:\n%s", got)
		}
		if !strings.Contains(got, "The scene is set in a friendly sunlit forest") {
			t.Errorf("環境行がありません:\n%s", got)
		}
	})

	t.Run("レガシーモード: 空の特徴は行ごと省略されること", func(t *testing.T) {
		p := baseParams()
		p.SceneContext = ""
		p.Environment = ""
		got := b.Build(p)

		if strings.Contains(got, "Nearby,") {
			t.Errorf("空の文脈で Nearby 行が出力されました:\n%s", got)
		}
		if !strings.Contains(got, DefaultBackgroundSentence) {
			t.Errorf("空の環境で固定の背景文に退避していません:\n%s", got)
		}
	})

	t.Run("シーン構成モードはレイヤーブロックを含むこと", func(t *testing.T) {
		p := baseParams()
		p.UseSceneComposition = true
		got := b.Build(p)

		for _, required := range []string{"Foreground:", "Camera:", "Lighting:", "Scene: the child is"} {
			if !strings.Contains(got, required) {
				t.Errorf("%s がありません:\n%s", required, got)
			}
		}
		// 第1章は無条件で discovery テーマのカメラプリセットになる
		if !strings.Contains(got, "low-angle shot looking up") {
			t.Errorf("discovery のカメラプリセットが使われていません:\n%s", got)
		}
	})

	t.Run("モード切替で末尾3行（画風・一致指示・キーワード）は不変であること", func(t *testing.T) {
		p := baseParams()
		legacy := strings.Split(b.Build(p), "\n")
		p.UseSceneComposition = true
		composed := strings.Split(b.Build(p), "\n")

		for i := 1; i <= 3; i++ {
			l := legacy[len(legacy)-i]
			c := composed[len(composed)-i]
			if l != c {
				t.Errorf("末尾から%d行目が一致しません:\nlegacy:   %s\ncomposed: %s", i, l, c)
			}
		}
	})

	t.Run("キーワード行に抽出済みの感情が織り込まれること", func(t *testing.T) {
		got := b.Build(baseParams())
		if !strings.Contains(got, "Keywords: children's storybook, open-mouthed wonder,") {
			t.Errorf("感情がキーワード行に含まれていません:\n%s", got)
		}
	})

	t.Run("画風サフィックスが末尾へ結合されること", func(t *testing.T) {
		bs := NewStorybookPromptBuilder("dreamy soft edges")
		got := bs.Build(baseParams())
		if !strings.Contains(got, "storybook charm, dreamy soft edges.") {
			t.Errorf("サフィックスが結合されていません:\n%s", got)
		}
	})

	t.Run("同じ入力からは常にバイト単位で同一の出力が得られること", func(t *testing.T) {
		p := baseParams()
		p.UseSceneComposition = true
		if b.Build(p) != b.Build(p) {
			t.Error("出力が決定論的ではありません")
		}
	})
}
