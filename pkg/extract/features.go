package extract

// Features は1チャプター分の抽出結果をまとめた派生レコードです。
// すべてのフィールドは非空のデフォルトが保証されており（SceneContext と
// SceneNouns だけは空が正当な値）、抽出が失敗することはありません。
type Features struct {
	VisualPose     string   `json:"visual_pose"`
	Emotion        string   `json:"emotion"`
	SceneContext   string   `json:"scene_context,omitempty"` // 空ならプロンプト側で行ごと省略する
	SceneNouns     []string `json:"scene_nouns,omitempty"`
	PhysicalAction string   `json:"physical_action"`
	Theme          Theme    `json:"theme"`
}

// ExtractFeatures は全抽出器を1つの本文に対して独立に走らせた結果を返します。
// 各抽出器は互いに依存せず、同じ本文を個別に走査するのだ。
func ExtractFeatures(text string, chapterNumber int) Features {
	return Features{
		VisualPose:     VisualPose(text),
		Emotion:        EmotionalTransition(text),
		SceneContext:   SceneContext(text),
		SceneNouns:     SceneNouns(text),
		PhysicalAction: PhysicalAction(text),
		Theme:          DetectChapterTheme(text, chapterNumber),
	}
}
