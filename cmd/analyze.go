package cmd

import (
	"fmt"
	"log/slog"

	"github.com/shouni/go-storybook-kit/internal/config"
	"github.com/shouni/go-storybook-kit/internal/pipeline"

	"github.com/spf13/cobra"
)

// analyzeCmd は、プロンプト文面を作らずに章別の特徴抽出結果だけを出力するのだ。
// 語彙表のチューニングや抽出の振る舞いを確かめたいときに便利なのだよ。
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "章別の特徴抽出結果（テーマ・ポーズ・感情など）をJSONで出力するのだ。",
	Long: `物語JSONを読み込み、各章に対する抽出器の出力（視覚ポーズ、感情、シーン文脈、
名詞集合、テーマ、カテゴリタグ）をそのままJSONで書き出すのだ。プロンプト合成は行わないのだよ。`,
	RunE: analyzeCommand,
}

func analyzeCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if opts.ScriptFile == "" {
		return fmt.Errorf("読み込む物語JSON（--script-file）を指定してほしいのだ")
	}

	// analyze コマンド固有のデフォルト出力先
	if !cmd.Flags().Changed("output-file") {
		opts.OutputFile = "output/chapter_analysis.json"
	}

	cfg := config.LoadConfig()
	cfg.Options = opts

	slog.Info("特徴解析モードを起動するのだ！",
		"script", opts.ScriptFile,
		"output", opts.OutputFile)

	if err := pipeline.ExecuteAnalyze(ctx, cfg); err != nil {
		return fmt.Errorf("特徴解析中にエラーが発生したのだ: %w", err)
	}

	slog.Info("章別の特徴解析が完了したのだ！", "output_file", opts.OutputFile)
	return nil
}
