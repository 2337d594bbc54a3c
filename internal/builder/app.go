package builder

import (
	"github.com/shouni/go-storybook-kit/internal/config"
	"github.com/shouni/go-storybook-kit/pkg/workflow"

	"github.com/shouni/go-http-kit/pkg/httpkit"
	"github.com/shouni/go-remote-io/pkg/remoteio"
)

// AppContext は、アプリケーション実行に必要な共通コンテキストを保持する
// これを各Build関数に渡すことで、依存関係の注入を簡素化します。
type AppContext struct {
	Config     *config.Config          // Configは、環境変数から読み込まれたグローバルな設定です。
	Options    config.GenerateOptions  // Optionsは、コマンドラインから渡された実行時の設定です。
	Reader     remoteio.InputReader    // Readerは、物語やキャラクター定義の読み込みに使用する入力元です。
	Writer     remoteio.OutputWriter   // Writerは、合成されたプロンプト列を保存するための出力先です。
	Engine     *workflow.PromptEngine  // Engineは、章本文からプロンプトを合成する純粋エンジンです。
	httpClient httpkit.ClientInterface // httpClient は外部コンテンツの取得に使う共通クライアント
}

// NewAppContext は AppContext の新しいインスタンスを生成する
func NewAppContext(
	cfg *config.Config,
	httpClient httpkit.ClientInterface,
	reader remoteio.InputReader,
	writer remoteio.OutputWriter,
	engine *workflow.PromptEngine,
) AppContext {
	return AppContext{
		Config:     cfg,
		Options:    cfg.Options,
		Reader:     reader,
		Writer:     writer,
		Engine:     engine,
		httpClient: httpClient,
	}
}

// HTTPClient は共有HTTPクライアントを返します。
func (a *AppContext) HTTPClient() httpkit.ClientInterface {
	return a.httpClient
}
