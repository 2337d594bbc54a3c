package scene

import (
	"strings"
	"testing"
)

func TestBuildSceneDescription(t *testing.T) {
	t.Run("空の名詞集合は固定デフォルトを返すこと", func(t *testing.T) {
		if got := BuildSceneDescription(nil); got != DefaultSceneDescription {
			t.Errorf("デフォルトではなく %q が返りました", got)
		}
	})

	t.Run("magical-forest が最優先ファミリーであること", func(t *testing.T) {
		got := BuildSceneDescription([]string{"stream", "magical forest", "garden"})
		if !strings.HasPrefix(got, "an enchanted magical forest") {
			t.Errorf("magical-forest が支配的になっていません: %s", got)
		}
	})

	t.Run("stream が garden と forest より優先されること", func(t *testing.T) {
		got := BuildSceneDescription([]string{"garden", "stream", "forest"})
		if !strings.HasPrefix(got, "a sparkling woodland stream") {
			t.Errorf("stream が支配的になっていません: %s", got)
		}
	})

	t.Run("ファミリー関連の名詞は最大3つまでであること", func(t *testing.T) {
		got := BuildSceneDescription([]string{"forest", "woods", "oak tree", "tree"})
		if strings.Count(got, ",") > 2 {
			t.Errorf("関連名詞が3つを超えています: %s", got)
		}
	})

	t.Run("生き物の名詞が1つ添えられること", func(t *testing.T) {
		got := BuildSceneDescription([]string{"forest", "squirrel"})
		if !strings.Contains(got, "a friendly squirrel") {
			t.Errorf("生き物が添えられていません: %s", got)
		}
	})

	t.Run("ファミリー外の名詞だけなら先頭3つの生名詞へ退避すること", func(t *testing.T) {
		got := BuildSceneDescription([]string{"lantern", "book", "kite", "swing"})
		if !strings.Contains(got, "lantern, book, kite") {
			t.Errorf("生名詞の連結になっていません: %s", got)
		}
		if strings.Contains(got, "swing") {
			t.Errorf("4つ目の名詞が含まれています: %s", got)
		}
	})

	t.Run("同じ入力からは常に同じ出力が得られること", func(t *testing.T) {
		nouns := []string{"stream", "pebble", "squirrel"}
		if BuildSceneDescription(nouns) != BuildSceneDescription(nouns) {
			t.Error("出力が決定論的ではありません")
		}
	})
}
