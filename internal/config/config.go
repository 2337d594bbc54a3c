package config

import (
	"time"

	"github.com/shouni/go-utils/envutil"
)

// デフォルト値の定義なのだ
const (
	DefaultHTTPTimeout    = 30 * time.Second
	DefaultChapterLimit   = 8                      // 1冊あたりの合成上限章数
	DefaultRateInterval   = 200 * time.Millisecond // 下流受け渡しのペーシング間隔
	DefaultCharacterFile  = "examples/character.json" // 主人公の定義（名前・年齢・性別）のJSONパス
	DefaultLocalFile      = "output/storybook_prompts.json" // 合成結果のデフォルト保存先なのだ
	DefaultStoryFile      = "examples/story.json"
	ModeSceneComposition  = "scene"
	ModeLegacy            = "legacy"
	DefaultMode           = ModeSceneComposition
	DefaultStyleSuffix    = "dreamy soft edges, subtle paper texture"
	DefaultCacheExpiry    = 30 * time.Minute
	DefaultCacheCleanup   = 1 * time.Hour
)

// Config はアプリケーション全体の環境設定を保持する構造体なのだ。
type Config struct {
	StyleSuffix string

	Options GenerateOptions
}

// LoadConfig は環境変数から設定を読み込み、構造体を返すのだ！
func LoadConfig() *Config {
	return &Config{
		StyleSuffix: envutil.GetEnv("STYLE_SUFFIX", DefaultStyleSuffix),
	}
}

// GenerateOptions は CLI フラグから渡される実行時のパラメータなのだ。
type GenerateOptions struct {
	// ソース入力関連
	ScriptURL     string // --script-url
	ScriptFile    string // --script-file
	CharacterFile string // --char-config
	OutputFile    string // --output-file

	// 合成挙動設定
	Mode         string // --mode: "scene"（レイヤー構成）または "legacy"（平坦テンプレート）
	ChapterLimit int    // --chapter-limit

	// 実行制御
	HTTPTimeout time.Duration // --http-timeout
}

// UseSceneComposition はモード指定をエンジンのフラグに変換します。
// 未知の値はデフォルト（レイヤー構成）に倒すのだ。
func (o GenerateOptions) UseSceneComposition() bool {
	return o.Mode != ModeLegacy
}
