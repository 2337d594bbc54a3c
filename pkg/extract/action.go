package extract

import (
	"strings"

	"github.com/shouni/go-storybook-kit/pkg/lexicon"
)

// DefaultPhysicalAction はどの規則にもマッチしない場合の固定デフォルトです。
const DefaultPhysicalAction = "exploring with gentle curiosity"

// actionRules は身体動作の優先順位付きルール表です。具体的な動作が先なのだ。
var actionRules = []struct {
	keywords []string
	phrase   string
}{
	{[]string{"tiptoe"}, "tiptoeing quietly forward"},
	{[]string{"splash"}, "splashing playfully at the water's edge"},
	{[]string{"dig"}, "digging carefully in the soft earth"},
	{[]string{"ran", "raced", "dashed"}, "running at full speed"},
	{[]string{"jumped", "hopped", "leaped"}, "leaping lightly through the air"},
	{[]string{"climbed", "climbing"}, "climbing steadily upward"},
	{[]string{"knelt", "kneel", "kneeling"}, "kneeling close to the ground"},
	{[]string{"reached", "stretched"}, "reaching out with an open hand"},
	{[]string{"danced", "twirled", "spun"}, "spinning in a happy dance"},
	{[]string{"hugged", "embraced"}, "wrapping someone in a big hug"},
	{[]string{"waved"}, "waving with delight"},
	{[]string{"walked", "strolled", "wandered"}, "walking along at an unhurried pace"},
}

// PhysicalAction は本文にマッチする最初の動作句を返します。
// 単独キーワードの規則は部分語の誤爆を避けるため先頭に置いています。
func PhysicalAction(text string) string {
	lowered := strings.ToLower(text)
	for _, rule := range actionRules {
		if lexicon.ContainsAny(lowered, rule.keywords) {
			return rule.phrase
		}
	}
	return DefaultPhysicalAction
}
