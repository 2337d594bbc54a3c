package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/shouni/go-storybook-kit/internal/builder"
	"github.com/shouni/go-storybook-kit/internal/config"
	"github.com/shouni/go-storybook-kit/pkg/domain"
	"github.com/shouni/go-storybook-kit/pkg/extract"
	"github.com/shouni/go-storybook-kit/pkg/runner"
	"github.com/shouni/go-storybook-kit/pkg/workflow"

	"github.com/patrickmn/go-cache"
	"github.com/shouni/go-http-kit/pkg/httpkit"
	"github.com/shouni/go-remote-io/pkg/gcsfactory"
	webextract "github.com/shouni/go-web-exact/v2/pkg/extract"
	"golang.org/x/time/rate"
)

// ExecutePrompts は、物語を読み込み、章別の視覚プロンプトを合成して保存するのだ。
func ExecutePrompts(ctx context.Context, cfg *config.Config) error {
	appCtx, err := setupAppContext(ctx, cfg)
	if err != nil {
		return err
	}

	identity, err := loadIdentity(ctx, appCtx)
	if err != nil {
		return err
	}

	promptRunner, err := buildPromptRunner(appCtx, identity)
	if err != nil {
		return err
	}

	results, err := promptRunner.Run(ctx)
	if err != nil {
		return fmt.Errorf("プロンプト合成パイプラインに失敗したのだ: %w", err)
	}

	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("合成結果のエンコードに失敗しました: %w", err)
	}

	outputPath := cfg.Options.OutputFile
	if err := appCtx.Writer.Write(ctx, outputPath, bytes.NewReader(data), "application/json"); err != nil {
		return fmt.Errorf("合成結果の保存に失敗したのだ: %w", err)
	}

	slog.Info("章別プロンプトの保存が完了したのだ！", "path", outputPath, "chapters", len(results))
	return nil
}

// ExecuteAnalyze は、各章の抽出結果（特徴・要素タグ）だけをJSONで書き出すのだ。
// プロンプト文面の前段を確認したいときのデバッグ向けモードなのだよ。
func ExecuteAnalyze(ctx context.Context, cfg *config.Config) error {
	appCtx, err := setupAppContext(ctx, cfg)
	if err != nil {
		return err
	}

	story, err := readStory(ctx, appCtx)
	if err != nil {
		return err
	}

	type chapterAnalysis struct {
		ChapterNumber int              `json:"chapter_number"`
		Theme         extract.Theme    `json:"theme"`
		Features      extract.Features `json:"features"`
		Elements      extract.Elements `json:"elements"`
	}

	chapters := domain.Chapters(story.Chapters).Limit(cfg.Options.ChapterLimit)
	analyses := make([]chapterAnalysis, 0, len(chapters))
	for _, ch := range chapters {
		text := ch.EffectiveText()
		features := extract.ExtractFeatures(text, ch.ChapterNumber)
		analyses = append(analyses, chapterAnalysis{
			ChapterNumber: ch.ChapterNumber,
			Theme:         features.Theme,
			Features:      features,
			Elements:      extract.AnalyzeChapter(text),
		})
	}

	data, err := json.MarshalIndent(analyses, "", "  ")
	if err != nil {
		return fmt.Errorf("解析結果のエンコードに失敗しました: %w", err)
	}

	if err := appCtx.Writer.Write(ctx, cfg.Options.OutputFile, bytes.NewReader(data), "application/json"); err != nil {
		return fmt.Errorf("解析結果の保存に失敗したのだ: %w", err)
	}

	slog.Info("章別の特徴解析を保存したのだ", "path", cfg.Options.OutputFile, "chapters", len(analyses))
	return nil
}

// setupAppContext は、提供された設定と共有コンポーネントを使用して、
// アプリケーションコンテキストを初期化して返すのだ。
func setupAppContext(ctx context.Context, cfg *config.Config) (*builder.AppContext, error) {
	httpClient := httpkit.New(cfg.Options.HTTPTimeout)

	gcsFactory, err := gcsfactory.NewGCSClientFactory(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS client factory: %w", err)
	}

	reader, err := gcsFactory.NewInputReader()
	if err != nil {
		return nil, err
	}
	writer, err := gcsFactory.NewOutputWriter()
	if err != nil {
		return nil, err
	}

	engine := workflow.NewPromptEngine(workflow.Config{
		UseSceneComposition: cfg.Options.UseSceneComposition(),
		StyleSuffix:         cfg.StyleSuffix,
	})

	appCtx := builder.NewAppContext(cfg, httpClient, reader, writer, engine)
	return &appCtx, nil
}

// buildPromptRunner は PromptRunner を組み立てるのだ。
func buildPromptRunner(appCtx *builder.AppContext, identity domain.CharacterIdentity) (runner.PromptRunner, error) {
	extractor, err := webextract.NewExtractor(appCtx.HTTPClient())
	if err != nil {
		return nil, fmt.Errorf("本文エクストラクターの初期化に失敗しました: %w", err)
	}

	memo := cache.New(config.DefaultCacheExpiry, config.DefaultCacheCleanup)
	limiter := rate.NewLimiter(rate.Every(config.DefaultRateInterval), 2)

	return runner.NewStorybookPromptRunner(
		runner.Options{
			ScriptFile:   appCtx.Options.ScriptFile,
			ScriptURL:    appCtx.Options.ScriptURL,
			ChapterLimit: appCtx.Options.ChapterLimit,
		},
		appCtx.Engine,
		extractor,
		appCtx.Reader,
		identity,
		memo,
		limiter,
	), nil
}

// loadIdentity はキャラクター定義ファイルを読み込むのだ（ローカル or gs://）。
func loadIdentity(ctx context.Context, appCtx *builder.AppContext) (domain.CharacterIdentity, error) {
	rc, err := appCtx.Reader.Open(ctx, appCtx.Options.CharacterFile)
	if err != nil {
		return domain.CharacterIdentity{}, fmt.Errorf("キャラクターファイル '%s' のオープンに失敗したのだ: %w", appCtx.Options.CharacterFile, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return domain.CharacterIdentity{}, err
	}
	return domain.GetCharacter(data)
}

// readStory は物語JSONを読み込むのだ。
func readStory(ctx context.Context, appCtx *builder.AppContext) (*domain.StoryResponse, error) {
	rc, err := appCtx.Reader.Open(ctx, appCtx.Options.ScriptFile)
	if err != nil {
		return nil, fmt.Errorf("物語ファイル '%s' のオープンに失敗したのだ: %w", appCtx.Options.ScriptFile, err)
	}
	defer rc.Close()

	var story domain.StoryResponse
	if err := json.NewDecoder(rc).Decode(&story); err != nil {
		return nil, fmt.Errorf("物語JSONのパースに失敗しました: %w", err)
	}
	return &story, nil
}
