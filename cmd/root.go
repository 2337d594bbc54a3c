package cmd

import (
	"fmt"
	"os"

	"github.com/shouni/go-storybook-kit/internal/config"

	clibase "github.com/shouni/go-cli-base"
	"github.com/spf13/cobra"
)

// opts は全コマンドで共有される実行時オプションなのだ。
var opts config.GenerateOptions

// addAppFlags は、アプリケーション全般に適用されるグローバルフラグを定義するのだ。
func addAppFlags(rootCmd *cobra.Command) {
	// --- ソース入力関連 ---
	rootCmd.PersistentFlags().StringVarP(&opts.ScriptURL, "script-url", "u", "", "Webページから物語本文を取得するためのURLなのだ。")
	rootCmd.PersistentFlags().StringVarP(&opts.ScriptFile, "script-file", "f", config.DefaultStoryFile, "物語JSONのパス（ローカル or gs://...）なのだ。")
	rootCmd.PersistentFlags().StringVarP(&opts.CharacterFile, "char-config", "c", config.DefaultCharacterFile, "主人公の定義（名前・年齢・性別）を記したJSONパスなのだ。")

	// --- 生成結果の出力設定 ---
	rootCmd.PersistentFlags().StringVarP(&opts.OutputFile, "output-file", "o", config.DefaultLocalFile, "保存パス（ローカル or gs://...）なのだ。")

	// --- 合成挙動設定 ---
	rootCmd.PersistentFlags().StringVarP(&opts.Mode, "mode", "m", config.DefaultMode, "テンプレートモード（scene: レイヤー構成 / legacy: 平坦）なのだ。")
	rootCmd.PersistentFlags().IntVarP(&opts.ChapterLimit, "chapter-limit", "p", config.DefaultChapterLimit, "合成する章の最大数を指定するのだ。")
	rootCmd.PersistentFlags().DurationVar(&opts.HTTPTimeout, "http-timeout", config.DefaultHTTPTimeout, "Webリクエストのタイムアウトなのだ。")
}

// preRunAppE は、コマンド実行前にオプションの整合性チェックを行うのだ。
func preRunAppE(cmd *cobra.Command, args []string) error {
	if opts.Mode != config.ModeSceneComposition && opts.Mode != config.ModeLegacy {
		return fmt.Errorf("エラー: --mode は '%s' か '%s' を指定してほしいのだ（指定値: %s）",
			config.ModeSceneComposition, config.ModeLegacy, opts.Mode)
	}
	return nil
}

// isStdin は標準入力からのパイプ渡しがあるかを判定するのだ。
func isStdin() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}

// Execute は、アプリケーションのメインエントリポイントなのだ。
// main.go から呼び出されて、cobra のコマンドライン解析を開始するのだよ。
func Execute() {
	clibase.Execute(
		"storybook-go",
		addAppFlags,
		preRunAppE,
		promptCmd,
		analyzeCmd,
		validateCmd,
	)
}
