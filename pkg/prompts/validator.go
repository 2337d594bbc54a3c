package prompts

import (
	"fmt"
	"strings"

	"github.com/shouni/go-storybook-kit/pkg/domain"
)

// Validate は合成前のパラメータを検査し、人間可読な警告のリストを返します。
// 警告は助言であって障害ではなく、この関数は決して panic せず、
// 呼び出し側の合成処理をブロックしません（現方針: 常に続行してログに残す）。
func Validate(p PromptParams) []string {
	var warnings []string

	if strings.TrimSpace(p.ChildName) == "" {
		warnings = append(warnings, "child name is empty; the prompt will lack a named subject")
	}
	if p.Age < domain.MinAge || p.Age > domain.MaxAge {
		warnings = append(warnings, fmt.Sprintf("age %d is outside the supported range %d-%d", p.Age, domain.MinAge, domain.MaxAge))
	}
	if !p.Gender.Valid() {
		warnings = append(warnings, fmt.Sprintf("gender %q is not one of %q or %q", p.Gender, domain.GenderBoy, domain.GenderGirl))
	}
	if strings.TrimSpace(p.VisualPose) == "" {
		warnings = append(warnings, "visual pose is empty after defaulting; extraction defaults may be misconfigured")
	}
	if strings.TrimSpace(p.Emotion) == "" {
		warnings = append(warnings, "emotion is empty after defaulting; extraction defaults may be misconfigured")
	}

	return warnings
}
