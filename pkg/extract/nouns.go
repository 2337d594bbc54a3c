package extract

import "strings"

// シーン名詞の語彙。環境→自然→生き物→オブジェクトの順で走査され、
// この並びがそのまま結果の挿入順になります。所属判定だけなので優先順位は不要なのだ。
var (
	environmentNouns = []string{
		"magical forest", "enchanted forest", "forest", "woods", "meadow",
		"garden", "stream", "brook", "river", "lake", "pond", "waterfall",
		"hill", "mountain", "cave", "village", "cottage", "beach",
	}
	natureNouns = []string{
		"oak tree", "tree", "flowers", "flower", "mushroom", "moss",
		"rainbow", "clouds", "stars", "moon", "sun", "grass", "leaves",
		"pebble", "stones", "vines", "ferns",
	}
	creatureNouns = []string{
		"squirrel", "owl", "rabbit", "fox", "deer", "butterfly",
		"bird", "frog", "hedgehog", "dragonfly",
	}
	objectNouns = []string{
		"lantern", "basket", "book", "key", "door", "bridge",
		"swing", "boat", "kite", "treasure",
	}
)

// SceneNouns は本文に現れる語彙名詞をすべて集めて返します。
// 結果は語彙表の定義順で並んだ集合（重複なし）です。
// "oak tree" のような複合語が先に並ぶため、部分語 "tree" より先に採用されます。
func SceneNouns(text string) []string {
	lowered := strings.ToLower(text)
	var nouns []string
	seen := make(map[string]bool)

	for _, vocab := range [][]string{environmentNouns, natureNouns, creatureNouns, objectNouns} {
		for _, noun := range vocab {
			if !seen[noun] && strings.Contains(lowered, noun) {
				nouns = append(nouns, noun)
				seen[noun] = true
			}
		}
	}
	return nouns
}

// IsCreatureNoun は名詞が生き物の語彙に属するかを返します。
func IsCreatureNoun(noun string) bool {
	for _, c := range creatureNouns {
		if c == noun {
			return true
		}
	}
	return false
}
