package extract

import (
	"strings"

	"github.com/shouni/go-storybook-kit/pkg/lexicon"
)

// DefaultVisualPose はどのルールにもマッチしない場合の固定デフォルトです。
const DefaultVisualPose = "standing with a warm, friendly expression"

// poseRule は「全キーワードが揃ったときだけ発火する」ポーズ規則です。
type poseRule struct {
	keywords []string
	phrase   string
}

// poseRules は最も具体的（キーワード数が多い）ものから順に評価されるルール表です。
// この並び順そのものがタイブレーク方針であり、決定論のために変更してはいけないのだ。
// 4キーワード規則は、その部分集合にあたる2キーワード規則より必ず先に判定されます。
var poseRules = []poseRule{
	// 4キーワード規則
	{[]string{"kneel", "holding", "pebble", "glowing"}, "kneeling down and gently cradling a glowing rainbow pebble in both hands"},
	{[]string{"climb", "tree", "branch", "reaching"}, "climbing up a tree and reaching out toward a high branch"},

	// 3キーワード規則
	{[]string{"kneel", "holding", "pebble"}, "kneeling down while holding a small pebble carefully"},
	{[]string{"running", "path", "forest"}, "running along a winding forest path with arms swinging"},
	{[]string{"jumping", "stream", "stone"}, "jumping across stepping stones over a sparkling stream"},
	{[]string{"sitting", "reading", "book"}, "sitting cross-legged and reading an open storybook"},
	{[]string{"dancing", "flowers", "garden"}, "dancing happily among the flowers of a bright garden"},

	// 2キーワード規則
	{[]string{"holding", "pebble"}, "holding a glowing pebble"},
	{[]string{"holding", "lantern"}, "holding up a softly glowing lantern"},
	{[]string{"holding", "flower"}, "holding a freshly picked flower"},
	{[]string{"reaching", "up"}, "standing on tiptoes and reaching upward"},
	{[]string{"hugging", "friend"}, "hugging a dear friend warmly"},
	{[]string{"looking", "sky"}, "looking up at the sky with head tilted back"},
	{[]string{"whisper", "ear"}, "leaning in close to whisper a secret"},

	// 1キーワード規則
	{[]string{"kneel"}, "kneeling down on the soft ground"},
	{[]string{"running"}, "running forward with joyful energy"},
	{[]string{"jumping"}, "jumping with both feet off the ground"},
	{[]string{"climbing"}, "climbing carefully, one step at a time"},
	{[]string{"dancing"}, "twirling in a happy little dance"},
	{[]string{"sitting"}, "sitting comfortably with relaxed shoulders"},
	{[]string{"sleeping"}, "curled up and sleeping peacefully"},
	{[]string{"waving"}, "waving cheerfully with one raised hand"},
	{[]string{"walking"}, "walking along at an easy, curious pace"},
}

// VisualPose は本文にマッチする最初のポーズ規則の定型句を返します。
// 規則はリスト順に短絡評価され、最初に全キーワードが揃ったものが勝ちます。
func VisualPose(text string) string {
	lowered := strings.ToLower(text)
	for _, rule := range poseRules {
		if lexicon.ContainsAll(lowered, rule.keywords) {
			return rule.phrase
		}
	}
	return DefaultVisualPose
}
