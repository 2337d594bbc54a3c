package cmd

import (
	"fmt"
	"log/slog"

	"github.com/shouni/go-storybook-kit/internal/config"
	"github.com/shouni/go-storybook-kit/internal/pipeline"

	"github.com/spf13/cobra"
)

// promptCmd は、物語から章別の視覚プロンプトを合成するメインコマンドなのだ。
var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "物語から章別の画像生成プロンプトを合成して保存するのだ。",
	Long: `物語JSON（またはURLから抽出した本文）を解析し、章ごとに主人公の一貫性を保った
画像生成用プロンプトを合成するのだ。出力は章番号順のJSONになるのだよ。`,
	Example: "  storybook-go prompt -f examples/story.json -c examples/character.json -o output/prompts.json",
	RunE:    promptCommand,
}

func promptCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	// 1. 必須チェック
	if opts.ScriptURL == "" && opts.ScriptFile == "" && !isStdin() {
		return fmt.Errorf("ソース（--script-url または --script-file）を指定してほしいのだ")
	}

	// 2. 環境変数等から基本設定をロードするのだ
	cfg := config.LoadConfig()
	cfg.Options = opts

	slog.Info("プロンプト合成パイプラインを起動するのだ！",
		"mode", opts.Mode,
		"script", opts.ScriptFile,
		"character", opts.CharacterFile,
		"output", opts.OutputFile)

	// 3. 更新した config を考慮しつつパイプラインを実行するのだ
	if err := pipeline.ExecutePrompts(ctx, cfg); err != nil {
		return fmt.Errorf("パイプライン実行中にエラーが発生したのだ: %w", err)
	}

	slog.Info("すべての合成工程が完了したのだ！")
	return nil
}
