// Package prompts は、抽出済みの特徴と主人公の定義から画像生成モデル向けの
// 最終プロンプト文字列を合成します。出力は「紹介 → シーン/構成 → 画風 → 一致指示 →
// キーワード」という固定のセクション順を持つ複数行テキストであり、この形が
// 下流モデルとの契約です。どのビルダーも副作用のない純粋関数なのだ。
package prompts

import (
	"fmt"
	"strings"

	"github.com/shouni/go-storybook-kit/pkg/domain"
	"github.com/shouni/go-storybook-kit/pkg/extract"
	"github.com/shouni/go-storybook-kit/pkg/scene"
)

// PromptParams はテンプレートビルダーへ渡す組み立て済みの入力です。
// ChapterText は構成レイヤーの再抽出のために元の本文を保持します。
type PromptParams struct {
	ChildName           string
	Age                 int
	Gender              domain.Gender
	VisualPose          string
	Emotion             string
	SceneContext        string // 空なら該当行を省略
	Environment         string // 空ならレガシーモードは固定の背景文へ退避
	ChapterNumber       int
	ChapterText         string
	UseSceneComposition bool
}

// StorybookPromptBuilder は2つの相互排他なモードを持つプロンプトコンパイラです。
// モードはクラス階層ではなく、共通の行フォーマッタを共有する2つの独立した
// 純粋ビルダー関数へのディスパッチとして実装しています。
type StorybookPromptBuilder struct {
	styleSuffix string // 設定で差し替え可能な追加の画風サフィックス
}

// NewStorybookPromptBuilder は新しい StorybookPromptBuilder を生成します。
func NewStorybookPromptBuilder(styleSuffix string) *StorybookPromptBuilder {
	return &StorybookPromptBuilder{styleSuffix: styleSuffix}
}

// Build は UseSceneComposition に応じて2モードのどちらかでプロンプトを合成します。
// 同じ入力からは常にバイト単位で同一の出力が得られます。
func (b *StorybookPromptBuilder) Build(p PromptParams) string {
	if p.UseSceneComposition {
		return b.buildSceneCompositionPrompt(p)
	}
	return b.buildLegacyPrompt(p)
}

// buildSceneCompositionPrompt はレイヤー構成テンプレートでプロンプトを合成します。
// シーン/構成部分だけがレガシーモードと異なり、画風・一致指示・キーワードの各行は
// 両モードで同一である必要があるのだ。
func (b *StorybookPromptBuilder) buildSceneCompositionPrompt(p PromptParams) string {
	theme := extract.DetectChapterTheme(p.ChapterText, p.ChapterNumber)
	cl := scene.CameraAndLighting(theme, p.ChapterNumber)
	elements := extract.AnalyzeChapter(p.ChapterText)

	lines := []string{
		BuildIntroLine(p.ChildName, p.Age, p.Gender),
		scene.BuildSceneComposition(scene.CompositionParams{
			Pose:        p.VisualPose,
			Emotion:     p.Emotion,
			Objects:     elements.Objects,
			Settings:    elements.Settings,
			CameraAngle: cl.CameraAngle,
			Lighting:    cl.Lighting,
		}),
		b.narrativeSceneLine(p, cl),
		b.styleLine(),
		LikenessDirective,
		BuildKeywordLine(p.Emotion),
	}
	return strings.Join(lines, "\n")
}

// buildLegacyPrompt は平坦な旧テンプレートでプロンプトを合成します。
func (b *StorybookPromptBuilder) buildLegacyPrompt(p PromptParams) string {
	lines := []string{
		BuildIntroLine(p.ChildName, p.Age, p.Gender),
		fmt.Sprintf("%s is %s, %s.", titleCasePronoun(p.Gender), p.VisualPose, p.Emotion),
	}

	// 行単位のオプショナリティ: 特徴が空ならその行ごと出力しない
	if p.SceneContext != "" {
		lines = append(lines, fmt.Sprintf("Nearby, %s.", p.SceneContext))
	}

	if p.Environment != "" {
		lines = append(lines, fmt.Sprintf("The scene is set in %s.", p.Environment))
	} else {
		lines = append(lines, DefaultBackgroundSentence)
	}

	lines = append(lines,
		b.styleLine(),
		LikenessDirective,
		BuildKeywordLine(p.Emotion),
	)
	return strings.Join(lines, "\n")
}

// narrativeSceneLine はポーズ・文脈・環境・カメラを1つの叙述行にまとめます。
// 空の特徴は句ごと抜け、不完全な部分文を作らないのが契約です。
func (b *StorybookPromptBuilder) narrativeSceneLine(p PromptParams, cl scene.CameraLighting) string {
	var sb strings.Builder
	sb.WriteString("Scene: the child is ")
	sb.WriteString(p.VisualPose)
	if p.SceneContext != "" {
		sb.WriteString(", ")
		sb.WriteString(p.SceneContext)
	}
	if p.Environment != "" {
		sb.WriteString(", in ")
		sb.WriteString(p.Environment)
	}
	sb.WriteString(". ")
	sb.WriteString(cl.CameraAngle)
	sb.WriteString(", ")
	sb.WriteString(cl.Lighting)
	sb.WriteString(".")
	return sb.String()
}

// styleLine は固定の画風指示に設定由来のサフィックスを結合します。
func (b *StorybookPromptBuilder) styleLine() string {
	if b.styleSuffix == "" {
		return StyleDirective
	}
	return strings.TrimSuffix(StyleDirective, ".") + ", " + b.styleSuffix + "."
}

// titleCasePronoun は文頭用に先頭を大文字化した代名詞を返します。
func titleCasePronoun(g domain.Gender) string {
	pronoun := g.Pronoun()
	return strings.ToUpper(pronoun[:1]) + pronoun[1:]
}
