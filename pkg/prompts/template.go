package prompts

import (
	"fmt"

	"github.com/shouni/go-storybook-kit/pkg/domain"
)

const (
	// StyleDirective は全チャプター共通の画風指示です。
	StyleDirective = "Art style: soft watercolor children's book illustration, warm pastel colors, gentle rounded shapes, storybook charm."

	// LikenessDirective は参照写真との一致を固定するための共通指示です。
	LikenessDirective = "Keep the child's face, hairstyle, and skin tone exactly consistent with the reference photo across every illustration."

	// DefaultBackgroundSentence はレガシーモードで環境が空の場合の固定の背景文です。
	DefaultBackgroundSentence = "The background shows a colorful magical storybook setting."
)

// BuildIntroLine は主人公紹介の定型行を生成します。両モード共通の先頭行なのだ。
func BuildIntroLine(name string, age int, gender domain.Gender) string {
	return fmt.Sprintf("A children's storybook illustration of %s, a %d-year-old %s.", name, age, gender)
}

// BuildKeywordLine は抽出済みの感情を織り込んだキーワード末尾行を生成します。
func BuildKeywordLine(emotion string) string {
	return fmt.Sprintf("Keywords: children's storybook, %s, whimsical, magical, highly detailed, consistent character design.", emotion)
}
