package runner

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/shouni/go-storybook-kit/pkg/domain"
	"github.com/shouni/go-storybook-kit/pkg/workflow"

	"github.com/patrickmn/go-cache"
	"github.com/shouni/go-remote-io/pkg/remoteio"
	webextract "github.com/shouni/go-web-exact/v2/pkg/extract"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// PromptRunner は、物語の読み込みからプロンプト列の生成までを実行する契約なのだ。
type PromptRunner interface {
	// Run は物語を読み込み、章番号順のプロンプト列を返すのだ。
	Run(ctx context.Context) ([]domain.ChapterPrompt, error)
}

// Options は実行時の入力ソースと制御パラメータです。
type Options struct {
	ScriptFile   string // ローカル or gs:// の物語JSONパス
	ScriptURL    string // Webページから本文を取得する場合のURL
	ChapterLimit int    // 0 以下なら domain.MaxChapters
}

// StorybookPromptRunner は、物語から絵本用の視覚プロンプト列を生成する核となる構造体なのだ。
type StorybookPromptRunner struct {
	opts      Options
	engine    *workflow.PromptEngine   // 純粋な合成エンジン
	extractor *webextract.Extractor    // Webサイトから本文を抽出するエクストラクター
	reader    remoteio.InputReader     // ローカルやGCSのファイルを読み込むリーダー
	identity  domain.CharacterIdentity // 物語全体で固定の主人公定義
	memo      *cache.Cache             // 章本文ハッシュをキーにした合成結果のメモ化
	limiter   *rate.Limiter            // 下流への受け渡しをならす任意のレートリミッター
}

// NewStorybookPromptRunner は StorybookPromptRunner の新しいインスタンスを生成して返すのだ。
// limiter は nil 可。その場合はペーシングなしで全チャプターを処理します。
func NewStorybookPromptRunner(
	opts Options,
	engine *workflow.PromptEngine,
	ext *webextract.Extractor,
	r remoteio.InputReader,
	id domain.CharacterIdentity,
	memo *cache.Cache,
	limiter *rate.Limiter,
) *StorybookPromptRunner {
	return &StorybookPromptRunner{
		opts:      opts,
		engine:    engine,
		extractor: ext,
		reader:    r,
		identity:  id,
		memo:      memo,
		limiter:   limiter,
	}
}

// Run は、入力ソースの読み込み、並列での章別プロンプト合成、結果の整列を一気に行うのだ。
// 合成そのものは失敗しない純粋変換なので、エラーになり得るのは読み込みと
// コンテキストのキャンセルだけなのだよ。
func (pr *StorybookPromptRunner) Run(ctx context.Context) ([]domain.ChapterPrompt, error) {
	story, err := pr.readStory(ctx)
	if err != nil {
		return nil, err
	}

	chapters := domain.Chapters(story.Chapters).Limit(pr.opts.ChapterLimit)
	slog.InfoContext(ctx, "章別プロンプトの合成を開始するのだ",
		"title", story.Title,
		"chapters", len(chapters),
		"character", pr.identity.Name)

	results := make([]domain.ChapterPrompt, len(chapters))
	eg, egCtx := errgroup.WithContext(ctx)

	for i, ch := range chapters {
		eg.Go(func() error {
			if pr.limiter != nil {
				if err := pr.limiter.Wait(egCtx); err != nil {
					return err
				}
			}
			results[i] = pr.synthesizeWithMemo(ch)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("章別プロンプトの合成が中断されたのだ: %w", err)
	}
	return results, nil
}

// synthesizeWithMemo はメモ化キャッシュ越しに1章分を合成します。
// 同じ本文・同じ主人公なら出力は決定論的に同一なので、安全に再利用できるのだ。
func (pr *StorybookPromptRunner) synthesizeWithMemo(ch domain.Chapter) domain.ChapterPrompt {
	key := pr.memoKey(ch)
	if pr.memo != nil {
		if cached, ok := pr.memo.Get(key); ok {
			if result, ok := cached.(domain.ChapterPrompt); ok {
				return result
			}
		}
	}

	prompt, warnings := pr.engine.SynthesizeChapter(ch, pr.identity)
	for _, w := range warnings {
		slog.Warn("プロンプト検証の警告なのだ", "chapter", ch.ChapterNumber, "warning", w)
	}

	result := domain.ChapterPrompt{
		ChapterNumber: ch.ChapterNumber,
		Prompt:        prompt,
		Warnings:      warnings,
	}
	if pr.memo != nil {
		pr.memo.Set(key, result, cache.DefaultExpiration)
	}
	return result
}

// memoKey は章本文・章番号・主人公名から決定論的なキャッシュキーを導きます。
func (pr *StorybookPromptRunner) memoKey(ch domain.Chapter) string {
	h := sha256.New()
	h.Write([]byte(ch.EffectiveText()))
	fmt.Fprintf(h, "|%d|%s", ch.ChapterNumber, pr.identity.Name)
	return hex.EncodeToString(h.Sum(nil))
}

// readStory は、URLまたはパスの設定に基づいて適切な方法で物語を取得するのだ。
func (pr *StorybookPromptRunner) readStory(ctx context.Context) (*domain.StoryResponse, error) {
	// URLが指定されている場合は、本文抽出を実行して1章構成の物語として扱うのだ
	if pr.opts.ScriptURL != "" {
		text, _, err := pr.extractor.FetchAndExtractText(ctx, pr.opts.ScriptURL)
		if err != nil {
			return nil, fmt.Errorf("URLからの本文抽出に失敗したのだ: %w", err)
		}
		return storyFromRawText(text), nil
	}

	// ファイルパスが指定されている場合は、リーダーを使って開くのだ（GCS等も対応！）
	rc, err := pr.reader.Open(ctx, pr.opts.ScriptFile)
	if err != nil {
		return nil, fmt.Errorf("物語ファイル '%s' のオープンに失敗したのだ: %w", pr.opts.ScriptFile, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, err
	}

	var story domain.StoryResponse
	if err := json.Unmarshal(data, &story); err != nil {
		return nil, fmt.Errorf("物語JSONのパースに失敗したのだ: %w", err)
	}
	return &story, nil
}

// storyFromRawText は生の叙述テキストを空行区切りで章に分割した物語に包みます。
// 区切りが見つからなければ全体を第1章として扱うのだ。
func storyFromRawText(text string) *domain.StoryResponse {
	paragraphs := strings.Split(strings.TrimSpace(text), "\n\n")
	story := &domain.StoryResponse{Title: "Untitled Story"}

	num := 0
	for _, p := range paragraphs {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		num++
		story.Chapters = append(story.Chapters, domain.Chapter{
			ChapterNumber: num,
			ChapterText:   p,
		})
		if num == domain.MaxChapters {
			break
		}
	}

	if len(story.Chapters) == 0 {
		story.Chapters = append(story.Chapters, domain.Chapter{ChapterNumber: 1, ChapterText: ""})
	}
	return story
}
