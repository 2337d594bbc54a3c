package extract

import (
	"strings"

	"github.com/shouni/go-storybook-kit/pkg/lexicon"
)

// Theme はチャプターの物語上の拍（ナラティブ・ビート）の粗い分類です。
type Theme string

const (
	ThemeDiscovery      Theme = "discovery"
	ThemeProblemSolving Theme = "problem-solving"
	ThemeJoyfulEnding   Theme = "joyful-ending"
	ThemeConflict       Theme = "conflict"
	ThemeResolution     Theme = "resolution"
	ThemeAdventure      Theme = "adventure"
)

// テーマ判定用のキーワード表。判定順そのものが契約なのだ。
var (
	discoveryKeywords      = []string{"discovered", "found", "noticed", "spotted", "glowing", "mysterious", "secret", "hidden"}
	problemSolvingKeywords = []string{"figured out", "solved", "idea", "plan", "tried", "clever", "puzzle"}
	joyfulEndingKeywords   = []string{"celebrated", "home at last", "happily ever", "safe and sound", "cheered", "festival"}
	conflictKeywords       = []string{"danger", "worried", "storm", "lost", "dark", "afraid", "trouble", "blocked"}
	resolutionKeywords     = []string{"relieved", "calm again", "made up", "forgave", "hugged", "together again", "thanked"}
)

// DetectChapterTheme は本文とチャプター番号からテーマを1つ決定します。
// 規則は固定順で評価され、最初にマッチしたものが勝ちます:
// discovery（第1章は本文に依らず無条件で discovery）→ problem-solving →
// joyful-ending → conflict → resolution → adventure（デフォルト）。
// 第1章の先取りは「物語は必ず発見から始まる」という演出上の決定なのだ。
func DetectChapterTheme(text string, chapterNumber int) Theme {
	lowered := strings.ToLower(text)

	switch {
	case chapterNumber == 1 || lexicon.ContainsAny(lowered, discoveryKeywords):
		return ThemeDiscovery
	case lexicon.ContainsAny(lowered, problemSolvingKeywords):
		return ThemeProblemSolving
	case lexicon.ContainsAny(lowered, joyfulEndingKeywords):
		return ThemeJoyfulEnding
	case lexicon.ContainsAny(lowered, conflictKeywords):
		return ThemeConflict
	case lexicon.ContainsAny(lowered, resolutionKeywords):
		return ThemeResolution
	default:
		return ThemeAdventure
	}
}
