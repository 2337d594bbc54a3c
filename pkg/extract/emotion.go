package extract

import (
	"regexp"
	"strings"

	"github.com/shouni/go-storybook-kit/pkg/lexicon"
)

// DefaultEmotion はどの段階でも感情が特定できなかった場合の固定デフォルトです。
const DefaultEmotion = "wonder and excitement"

// transitionPattern は「ある感情から別の感情へ移り変わる」文型を捉える正規表現規則です。
type transitionPattern struct {
	re     *regexp.Regexp
	phrase string
}

// transitionPatterns は第1層。最初にマッチしたパターンが固定の複合句を返します。
var transitionPatterns = []transitionPattern{
	{regexp.MustCompile(`(?is)\bexcit\w*\b.*\b(surpris\w*|gasp\w*|startl\w*)\b`), "excitement turning into wide-eyed surprise"},
	{regexp.MustCompile(`(?is)\b(worri\w*|afraid|scared|nervous)\b.*\b(relie\w*|calm\w*|smil\w*)\b`), "worry melting into relieved calm"},
	{regexp.MustCompile(`(?is)\b(curious|wonder\w*)\b.*\b(delight\w*|joy\w*|laugh\w*)\b`), "curiosity blossoming into pure delight"},
	{regexp.MustCompile(`(?is)\b(sad\w*|tear\w*|cried)\b.*\b(smil\w*|happ\w*|laugh\w*)\b`), "sadness giving way to a bright smile"},
	{regexp.MustCompile(`(?is)\b(shy\w*|timid\w*)\b.*\b(brave\w*|courag\w*|bold\w*)\b`), "shyness growing into quiet courage"},
}

// suddenMarkers は第2層のトリガーとなる「急変」マーカーです。
var suddenMarkers = []string{"suddenly", "just then", "all at once", "out of nowhere", "without warning"}

// suddenEmotions は急変マーカー検出後に固定順で走査される離散感情語です。
var suddenEmotions = []string{"joy", "delight", "fear", "curiosity", "relief", "awe"}

// emotionGroups は第3層の優先順位付きキーワードグループです。
// 複合感情のグループを先に、単独感情を後に置くのが契約なのだ。
var emotionGroups = []struct {
	keywords []string
	phrase   string
}{
	// 複合グループ
	{[]string{"awe", "joy"}, "joyful awe"},
	{[]string{"curious", "excited"}, "eager curiosity"},
	{[]string{"happy", "proud"}, "proud, beaming happiness"},
	{[]string{"calm", "happy"}, "peaceful contentment"},

	// 単独グループ
	{[]string{"awe", "amazed", "marveled"}, "open-mouthed wonder"},
	{[]string{"laughed", "giggled", "grinned"}, "bubbling laughter"},
	{[]string{"happy", "joy", "smiled"}, "smiling warmly"},
	{[]string{"excited", "thrilled", "eager"}, "sparkling excitement"},
	{[]string{"curious", "wondered", "puzzled"}, "gentle curiosity"},
	{[]string{"brave", "courage", "determined"}, "quiet determination"},
	{[]string{"worried", "afraid", "scared", "nervous"}, "cautious concern"},
	{[]string{"sleepy", "yawned", "drowsy"}, "cozy sleepiness"},
	{[]string{"calm", "peaceful", "gentle"}, "soft serenity"},
}

// EmotionalTransition は3層の方針で本文から感情表現を1つ決定します。
//  1. 感情遷移の正規表現パターン（最初のマッチが勝ち）
//  2. 急変マーカーがあれば "surprise and <感情>"（見つからなければ "surprise and wonder"）
//  3. 優先順位付きキーワードグループ（複合が先）
//
// どの層にも掛からなければ固定デフォルトを返します。入力に依らず必ず非空なのだ。
func EmotionalTransition(text string) string {
	lowered := strings.ToLower(text)

	// 第1層: 遷移パターン
	for _, p := range transitionPatterns {
		if p.re.MatchString(lowered) {
			return p.phrase
		}
	}

	// 第2層: 急変マーカー
	if lexicon.ContainsAny(lowered, suddenMarkers) {
		for _, emo := range suddenEmotions {
			if strings.Contains(lowered, emo) {
				return "surprise and " + emo
			}
		}
		return "surprise and wonder"
	}

	// 第3層: 優先順位付きグループ
	for _, g := range emotionGroups {
		if matchesEmotionGroup(lowered, g.keywords) {
			return g.phrase
		}
	}

	return DefaultEmotion
}

// matchesEmotionGroup は複合グループ（2語）は全一致、単独グループはいずれか一致で判定します。
func matchesEmotionGroup(lowered string, keywords []string) bool {
	if len(keywords) == 2 {
		return lexicon.ContainsAll(lowered, keywords)
	}
	return lexicon.ContainsAny(lowered, keywords)
}
