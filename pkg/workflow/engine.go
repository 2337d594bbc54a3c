// Package workflow は、抽出器とビルダー群を束ねてチャプター本文から
// 最終プロンプトまでを一気通貫で合成するエンジンのファサードです。
package workflow

import (
	"github.com/shouni/go-storybook-kit/pkg/domain"
	"github.com/shouni/go-storybook-kit/pkg/extract"
	"github.com/shouni/go-storybook-kit/pkg/prompts"
	"github.com/shouni/go-storybook-kit/pkg/scene"
)

// Config はエンジンの動作モードを決める不変の設定です。
type Config struct {
	// UseSceneComposition はレイヤー構成テンプレートを使うかどうか（既定: true）。
	UseSceneComposition bool
	// StyleSuffix は画風指示行へ追記する差し替え可能なサフィックス。
	StyleSuffix string
}

// PromptEngine はチャプター単位の視覚プロンプト合成エンジンです。
// 共有可変状態を持たない純粋な変換器なので、複数の物語を
// 調整なしで並行に処理できるのだ。
type PromptEngine struct {
	cfg     Config
	builder *prompts.StorybookPromptBuilder
}

// NewPromptEngine は新しい PromptEngine を生成します。
func NewPromptEngine(cfg Config) *PromptEngine {
	return &PromptEngine{
		cfg:     cfg,
		builder: prompts.NewStorybookPromptBuilder(cfg.StyleSuffix),
	}
}

// SynthesizeChapter は1チャプター分のプロンプトと検証警告を返します。
// どんな本文（空文字列を含む）でも失敗せず、特定できない特徴は
// 各抽出器のデフォルトへ退避します。警告は助言であり合成を妨げません。
func (e *PromptEngine) SynthesizeChapter(ch domain.Chapter, id domain.CharacterIdentity) (string, []string) {
	text := ch.EffectiveText()
	features := extract.ExtractFeatures(text, ch.ChapterNumber)

	params := prompts.PromptParams{
		ChildName:           id.Name,
		Age:                 id.Age,
		Gender:              id.Gender,
		VisualPose:          features.VisualPose,
		Emotion:             features.Emotion,
		SceneContext:        features.SceneContext,
		Environment:         environmentFor(features),
		ChapterNumber:       ch.ChapterNumber,
		ChapterText:         text,
		UseSceneComposition: e.cfg.UseSceneComposition,
	}

	warnings := prompts.Validate(params)
	return e.builder.Build(params), warnings
}

// SynthesizeStory は全チャプター（上限8章）を順に合成し、章番号順の結果を返します。
// 中間レコードはすべて呼び出しローカルで、章をまたいで共有されるのは
// 読み取り専用の CharacterIdentity だけです。
func (e *PromptEngine) SynthesizeStory(chapters domain.Chapters, id domain.CharacterIdentity) []domain.ChapterPrompt {
	limited := chapters.Limit(domain.MaxChapters)
	results := make([]domain.ChapterPrompt, 0, len(limited))
	for _, ch := range limited {
		prompt, warnings := e.SynthesizeChapter(ch, id)
		results = append(results, domain.ChapterPrompt{
			ChapterNumber: ch.ChapterNumber,
			Prompt:        prompt,
			Warnings:      warnings,
		})
	}
	return results
}

// environmentFor は名詞集合から背景描写を作ります。名詞ゼロでもデフォルトの
// 背景句が返るため、Environment が空になることはありません。
func environmentFor(f extract.Features) string {
	return scene.BuildSceneDescription(f.SceneNouns)
}
