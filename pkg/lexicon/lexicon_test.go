package lexicon

import (
	"reflect"
	"testing"
)

func TestMatchGroups(t *testing.T) {
	groups := []Group{
		{Label: "forest", Keywords: []string{"forest", "woods"}},
		{Label: "water", Keywords: []string{"lake", "stream"}},
		{Label: "home", Keywords: []string{"bedroom", "house"}},
	}

	t.Run("複数カテゴリが同時にマッチできること（相互排他なし）", func(t *testing.T) {
		got := MatchGroups("Deep in the WOODS, beside a quiet stream.", groups)
		want := []string{"forest", "water"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("期待値 %v, 実際の値 %v", want, got)
		}
	})

	t.Run("結果はテーブル定義順で並ぶこと", func(t *testing.T) {
		got := MatchGroups("a house near the lake in the forest", groups)
		want := []string{"forest", "water", "home"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("定義順になっていません: %v", got)
		}
	})

	t.Run("マッチなしは空であってエラーではないこと", func(t *testing.T) {
		if got := MatchGroups("nothing recognizable here", groups); len(got) != 0 {
			t.Errorf("空のはずが %v が返りました", got)
		}
	})

	t.Run("空文字列でも安全に空を返すこと", func(t *testing.T) {
		if got := MatchGroups("", groups); len(got) != 0 {
			t.Errorf("空のはずが %v が返りました", got)
		}
	})
}

func TestContainsAll(t *testing.T) {
	if !ContainsAll("kneeling and holding a glowing pebble", []string{"kneel", "holding", "pebble", "glowing"}) {
		t.Error("全キーワードが含まれるのに false が返りました")
	}
	if ContainsAll("holding a pebble", []string{"holding", "pebble", "glowing"}) {
		t.Error("欠けたキーワードがあるのに true が返りました")
	}
}

func TestContainsAny(t *testing.T) {
	if !ContainsAny("suddenly it happened", []string{"just then", "suddenly"}) {
		t.Error("含まれるキーワードがあるのに false が返りました")
	}
	if ContainsAny("a calm afternoon", []string{"storm", "danger"}) {
		t.Error("どのキーワードも含まれないのに true が返りました")
	}
}
