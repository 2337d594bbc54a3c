// Package lexicon は、チャプター本文のタグ付けに使う読み取り専用の
// カテゴリ別キーワード表を提供します。プロセス全体で共有する不変のドメインデータであり、
// 同期は不要です。各テーブルの並び順は抽出結果の挿入順を決める契約の一部なのだ。
package lexicon

import "strings"

// Group は1つのラベルと、それを成立させるキーワード群の組です。
// グループはいずれか1つのキーワードが本文に含まれればマッチします。
type Group struct {
	Label    string
	Keywords []string
}

// Settings は背景・舞台のカテゴリ表です。
var Settings = []Group{
	{Label: "magical forest", Keywords: []string{"magical forest", "enchanted forest", "glowing trees"}},
	{Label: "forest", Keywords: []string{"forest", "woods", "oak tree", "trees"}},
	{Label: "stream", Keywords: []string{"stream", "brook", "creek"}},
	{Label: "garden", Keywords: []string{"garden", "flower bed", "flowers"}},
	{Label: "meadow", Keywords: []string{"meadow", "field", "grassy"}},
	{Label: "home", Keywords: []string{"bedroom", "home", "house", "window"}},
	{Label: "village", Keywords: []string{"village", "town", "cottage"}},
	{Label: "sky", Keywords: []string{"sky", "clouds", "rainbow", "stars"}},
	{Label: "water", Keywords: []string{"lake", "pond", "river", "waterfall"}},
	{Label: "cave", Keywords: []string{"cave", "tunnel", "hollow"}},
}

// Objects は持ち物・小道具のカテゴリ表です。
var Objects = []Group{
	{Label: "glowing pebble", Keywords: []string{"pebble", "glowing stone", "shiny stone"}},
	{Label: "magic key", Keywords: []string{"key", "golden key"}},
	{Label: "lantern", Keywords: []string{"lantern", "lamp"}},
	{Label: "map", Keywords: []string{"map", "treasure map"}},
	{Label: "book", Keywords: []string{"book", "storybook", "pages"}},
	{Label: "basket", Keywords: []string{"basket", "picnic"}},
	{Label: "flower", Keywords: []string{"flower", "rose", "daisy", "tulip"}},
	{Label: "door", Keywords: []string{"door", "doorway", "gate"}},
	{Label: "bridge", Keywords: []string{"bridge", "rainbow bridge"}},
	{Label: "crown", Keywords: []string{"crown", "tiara"}},
}

// Actions は身体動作のカテゴリ表です。
var Actions = []Group{
	{Label: "running", Keywords: []string{"ran", "running", "dashed", "raced"}},
	{Label: "jumping", Keywords: []string{"jumped", "jumping", "hopped", "leaped"}},
	{Label: "climbing", Keywords: []string{"climbed", "climbing"}},
	{Label: "kneeling", Keywords: []string{"kneel", "kneels", "knelt", "kneeling"}},
	{Label: "holding", Keywords: []string{"holding", "held", "carrying", "clutching"}},
	{Label: "reaching", Keywords: []string{"reached", "reaching", "stretched"}},
	{Label: "walking", Keywords: []string{"walked", "walking", "strolled", "wandered"}},
	{Label: "looking", Keywords: []string{"looked", "gazed", "peered", "watched"}},
	{Label: "listening", Keywords: []string{"listened", "listening", "heard"}},
	{Label: "dancing", Keywords: []string{"danced", "dancing", "twirled", "spun"}},
	{Label: "hugging", Keywords: []string{"hugged", "hugging", "embraced"}},
	{Label: "whispering", Keywords: []string{"whispered", "whispering"}},
}

// Moods は感情・雰囲気のカテゴリ表です。
var Moods = []Group{
	{Label: "joyful", Keywords: []string{"happy", "joy", "laughed", "giggled", "smiled"}},
	{Label: "wonder", Keywords: []string{"awe", "wonder", "amazed", "marveled"}},
	{Label: "curious", Keywords: []string{"curious", "wondered", "puzzled"}},
	{Label: "excited", Keywords: []string{"excited", "thrilled", "eager"}},
	{Label: "brave", Keywords: []string{"brave", "courage", "bold"}},
	{Label: "worried", Keywords: []string{"worried", "anxious", "nervous", "afraid", "scared"}},
	{Label: "calm", Keywords: []string{"calm", "peaceful", "quiet", "gentle"}},
	{Label: "surprised", Keywords: []string{"surprised", "gasped", "startled"}},
	{Label: "sleepy", Keywords: []string{"sleepy", "yawned", "tired", "drowsy"}},
}

// MatchGroups は本文に対してテーブルを順に走査し、マッチした全ラベルを
// テーブル定義順で返します。各グループは1回だけ判定されるため重複はあり得ません。
// マッチなしは空スライスであり、エラーではないのだ。
func MatchGroups(text string, groups []Group) []string {
	lowered := strings.ToLower(text)
	var labels []string
	for _, g := range groups {
		for _, kw := range g.Keywords {
			if strings.Contains(lowered, kw) {
				labels = append(labels, g.Label)
				break
			}
		}
	}
	return labels
}

// ContainsAll は全キーワードが本文に含まれる場合のみ true を返します。
// 優先順位付きルールリスト（全一致型）の判定に使います。
func ContainsAll(loweredText string, keywords []string) bool {
	for _, kw := range keywords {
		if !strings.Contains(loweredText, kw) {
			return false
		}
	}
	return true
}

// ContainsAny はいずれかのキーワードが本文に含まれる場合に true を返します。
func ContainsAny(loweredText string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(loweredText, kw) {
			return true
		}
	}
	return false
}
