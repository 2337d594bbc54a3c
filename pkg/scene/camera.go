package scene

import "github.com/shouni/go-storybook-kit/pkg/extract"

// CameraLighting はテーマから引き当てるカメラアングルと照明のペアです。
type CameraLighting struct {
	CameraAngle string
	Lighting    string
}

// themePresets はテーマ別のプリセット表です。計算は一切なく、純粋な引き当てなのだ。
var themePresets = map[extract.Theme]CameraLighting{
	extract.ThemeDiscovery: {
		CameraAngle: "low-angle shot looking up, emphasizing the sense of a big new world",
		Lighting:    "soft golden morning light with gentle sparkles",
	},
	extract.ThemeProblemSolving: {
		CameraAngle: "medium close-up at eye level, focused on the child's thoughtful face",
		Lighting:    "warm even daylight with clear soft shadows",
	},
	extract.ThemeJoyfulEnding: {
		CameraAngle: "wide celebratory shot with the child at the center",
		Lighting:    "bright cheerful sunshine with a warm golden glow",
	},
	extract.ThemeConflict: {
		CameraAngle: "slightly tilted dramatic angle from a short distance",
		Lighting:    "cool shaded light with gentle contrast, never frightening",
	},
	extract.ThemeResolution: {
		CameraAngle: "soft medium shot drawing close to the characters",
		Lighting:    "calm late-afternoon light with rosy warm tones",
	},
	extract.ThemeAdventure: {
		CameraAngle: "dynamic three-quarter view suggesting movement",
		Lighting:    "vivid clear daylight with crisp colors",
	},
}

// defaultPreset は未知のテーマ値に対するフォールバックのエントリです。
var defaultPreset = CameraLighting{
	CameraAngle: "friendly eye-level view",
	Lighting:    "soft warm storybook lighting",
}

// CameraAndLighting はテーマとチャプター番号からプリセットを引き当てます。
// チャプター番号は将来の微調整用の引数であり、現状の引き当てには使いません。
func CameraAndLighting(theme extract.Theme, chapterNumber int) CameraLighting {
	if preset, ok := themePresets[theme]; ok {
		return preset
	}
	return defaultPreset
}
