package cmd

import (
	"fmt"
	"log/slog"

	"github.com/shouni/go-storybook-kit/pkg/domain"
	"github.com/shouni/go-storybook-kit/pkg/prompts"

	"github.com/spf13/cobra"
)

// validateCmd は、主人公の定義ファイルを検査して警告を表示するのだ。
// 警告があっても合成は可能（degrade-and-warn）なので、終了コードは常に0なのだよ。
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "主人公の定義ファイルを検査して警告を表示するのだ。",
	Long: `キャラクター定義JSON（名前・年齢・性別）を読み込み、プロンプト合成の前提条件を
満たしているかを検査するのだ。違反は警告として報告されるだけで、合成を妨げないのだよ。`,
	Example: "  storybook-go validate -c examples/character.json",
	RunE:    validateCommand,
}

func validateCommand(cmd *cobra.Command, args []string) error {
	identity, err := domain.LoadCharacter(opts.CharacterFile)
	if err != nil {
		return fmt.Errorf("キャラクター定義の読み込みに失敗したのだ: %w", err)
	}

	// 合成時と同じ検査を、特徴はデフォルト値で埋めて実行するのだ
	warnings := prompts.Validate(prompts.PromptParams{
		ChildName:  identity.Name,
		Age:        identity.Age,
		Gender:     identity.Gender,
		VisualPose: "(default)",
		Emotion:    "(default)",
	})

	if len(warnings) == 0 {
		slog.Info("キャラクター定義は問題なしなのだ！", "character", identity.String())
		return nil
	}

	slog.Warn("キャラクター定義に注意点があるのだ（合成は続行可能なのだよ）", "count", len(warnings))
	for _, w := range warnings {
		fmt.Printf("  - %s\n", w)
	}
	return nil
}
