package extract

import (
	"strings"

	"github.com/shouni/go-storybook-kit/pkg/lexicon"
)

// contextRule は全キーワードが揃ったときにだけ採用される文脈句です。
type contextRule struct {
	keywords []string
	clause   string
}

// characterContextRules は同伴キャラクターの登場を捉える優先順位付きルール表です。
// 複数の生き物が同じシーンに居られるよう、最大2句まで採用されます。
// 固有名（Pip等）はサンプル物語由来の差し替え可能な語彙であり、仕組みの方が本体なのだ。
var characterContextRules = []contextRule{
	{[]string{"pip", "squirrel"}, "with Pip the little squirrel perched nearby"},
	{[]string{"pip"}, "with a small friendly squirrel companion close by"},
	{[]string{"owl"}, "while a wise old owl watches from a branch"},
	{[]string{"rabbit"}, "with a fluffy white rabbit hopping alongside"},
	{[]string{"fox"}, "with a gentle orange fox peeking out curiously"},
	{[]string{"butterfly"}, "surrounded by colorful fluttering butterflies"},
	{[]string{"bird"}, "with small songbirds circling overhead"},
	{[]string{"deer"}, "while a soft-eyed deer stands quietly nearby"},
}

// objectContextRules は目立つオブジェクトや通り道の存在を捉えるルール表です。
// こちらは最大1句だけ採用されます。
var objectContextRules = []contextRule{
	{[]string{"glowing", "door"}, "near a mysterious glowing doorway"},
	{[]string{"rainbow", "bridge"}, "beside a shimmering rainbow bridge"},
	{[]string{"treasure", "chest"}, "next to an old wooden treasure chest"},
	{[]string{"magic", "portal"}, "in front of a swirling magic portal"},
	{[]string{"tiny", "door"}, "beside a tiny hidden door in a tree trunk"},
}

// SceneContext は同伴キャラクター（最大2句）と目立つオブジェクト（最大1句）を
// 独立に走査し、採用された句を ", and " で連結して返します。
// 何もマッチしなければ空文字列を返し、呼び出し側は行ごと省略するのが契約なのだ。
func SceneContext(text string) string {
	lowered := strings.ToLower(text)

	// 同じキーワードを複数の規則が取り合わないように、採用済みの語を記録するのだ。
	// これで {pip, squirrel} が採れた後に部分集合の {pip} が重ねて発火しません。
	consumed := make(map[string]bool)

	var clauses []string
	for _, rule := range characterContextRules {
		if overlapsConsumed(consumed, rule.keywords) {
			continue
		}
		if lexicon.ContainsAll(lowered, rule.keywords) {
			clauses = append(clauses, rule.clause)
			for _, kw := range rule.keywords {
				consumed[kw] = true
			}
			if len(clauses) == 2 {
				break
			}
		}
	}

	for _, rule := range objectContextRules {
		if lexicon.ContainsAll(lowered, rule.keywords) {
			clauses = append(clauses, rule.clause)
			break
		}
	}

	return strings.Join(clauses, ", and ")
}

// overlapsConsumed は規則のキーワードが採用済みの語と重なるかを返します。
func overlapsConsumed(consumed map[string]bool, keywords []string) bool {
	for _, kw := range keywords {
		if consumed[kw] {
			return true
		}
	}
	return false
}
