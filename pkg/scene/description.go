// Package scene は、抽出済みの特徴から背景描写・レイヤー構成・カメラ設定を
// 組み立てる純粋なビルダー群を提供します。出力の行順と文型は下流の画像生成モデルが
// 経験的にチューニングされている契約であり、みだりに変えてはいけないのだ。
package scene

import (
	"strings"

	"github.com/shouni/go-storybook-kit/pkg/extract"
)

// DefaultSceneDescription は名詞が1つも拾えなかった場合の固定デフォルトです。
const DefaultSceneDescription = "a colorful magical storybook setting"

// environmentFamily は環境ファミリーの分類1件分です。
// ラベルと、そのファミリーへの所属を判定するメンバー名詞を持ちます。
type environmentFamily struct {
	label   string
	members []string
}

// environmentFamilies は支配的ファミリーの判定順です。
// magical-forest > stream > garden > forest > water の固定優先順なのだ。
var environmentFamilies = []environmentFamily{
	{"an enchanted magical forest", []string{"magical forest", "enchanted forest"}},
	{"a sparkling woodland stream", []string{"stream", "brook", "waterfall"}},
	{"a blooming storybook garden", []string{"garden", "flowers", "flower"}},
	{"a friendly sunlit forest", []string{"forest", "woods", "oak tree", "tree"}},
	{"a calm shimmering waterside", []string{"river", "lake", "pond"}},
}

// BuildSceneDescription は名詞集合を1つの支配的環境ファミリーに分類し、
// "<ファミリーのラベル> with <関連名詞 最大3つ>" の形の背景描写を合成します。
// ファミリー関連の名詞が拾えない場合は先頭3つの生名詞の連結へ退避し、
// 生き物の名詞が1つあれば（未出の場合に限り）末尾へ添えます。
func BuildSceneDescription(nouns []string) string {
	if len(nouns) == 0 {
		return DefaultSceneDescription
	}

	family := classifyFamily(nouns)

	var detail []string
	if family != nil {
		detail = relevantNouns(nouns, family.members, 3)
	}
	if len(detail) == 0 {
		detail = firstN(nouns, 3)
	}

	label := DefaultSceneDescription
	if family != nil {
		label = family.label
	}

	desc := label + " with " + strings.Join(detail, ", ")

	if creature := firstCreature(nouns); creature != "" && !contains(detail, creature) {
		desc += ", and a friendly " + creature
	}
	return desc
}

// classifyFamily はファミリー表を優先順に走査し、最初に所属名詞を持つものを返します。
func classifyFamily(nouns []string) *environmentFamily {
	for i := range environmentFamilies {
		for _, noun := range nouns {
			if contains(environmentFamilies[i].members, noun) {
				return &environmentFamilies[i]
			}
		}
	}
	return nil
}

// relevantNouns はファミリーに関係する名詞を入力順のまま最大 limit 個集めます。
func relevantNouns(nouns, members []string, limit int) []string {
	var out []string
	for _, noun := range nouns {
		if contains(members, noun) {
			out = append(out, noun)
			if len(out) == limit {
				break
			}
		}
	}
	return out
}

func firstCreature(nouns []string) string {
	for _, noun := range nouns {
		if extract.IsCreatureNoun(noun) {
			return noun
		}
	}
	return ""
}

func firstN(s []string, n int) []string {
	if len(s) > n {
		s = s[:n]
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}

func contains(s []string, v string) bool {
	for _, e := range s {
		if e == v {
			return true
		}
	}
	return false
}
