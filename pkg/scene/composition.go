package scene

import "strings"

// CompositionParams はレイヤー構成の組み立てに必要な抽出済み特徴の束です。
type CompositionParams struct {
	Pose        string
	Emotion     string
	Objects     []string
	Settings    []string
	CameraAngle string
	Lighting    string
}

// BuildSceneComposition は前景/中景/背景/カメラ/照明のレイヤーブロックを
// 固定順で組み立てます。前景・カメラ・照明の行は常に出力し、
// 中景は Objects が、背景は Settings が非空の場合だけ行ごと出力します。
// 行の順序は下流の画像生成モデルとの契約であり、変えてはいけないのだ。
func BuildSceneComposition(p CompositionParams) string {
	var sb strings.Builder

	sb.WriteString("Foreground: the child ")
	sb.WriteString(p.Pose)
	sb.WriteString(", ")
	sb.WriteString(p.Emotion)
	sb.WriteString(".\n")

	if len(p.Objects) > 0 {
		sb.WriteString("Midground: ")
		sb.WriteString(strings.Join(p.Objects, ", "))
		sb.WriteString(" placed naturally around the scene.\n")
	}

	if len(p.Settings) > 0 {
		sb.WriteString("Background: ")
		sb.WriteString(strings.Join(p.Settings, ", "))
		sb.WriteString(" painted in soft storybook detail.\n")
	}

	sb.WriteString("Camera: ")
	sb.WriteString(p.CameraAngle)
	sb.WriteString(".\n")
	sb.WriteString("Lighting: ")
	sb.WriteString(p.Lighting)
	sb.WriteString(".")

	return sb.String()
}
