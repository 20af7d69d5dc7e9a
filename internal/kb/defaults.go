// ABOUTME: Built-in default rule set installed when no rule store exists
// ABOUTME: Five rules covering the equality, substring, and membership operator families
package kb

import "github.com/harper/sidekick/internal/models"

// DefaultRules returns the starter rule set, in installation order.
func DefaultRules() []models.Rule {
	return []models.Rule{
		{
			Name:        "rule_1_rainy_gym",
			Description: "Nếu trời mưa và có lịch tập Gym, đề xuất mang ô/áo mưa.",
			Conditions: []models.Condition{
				{Fact: "weather_condition", Operator: models.OpContains, Value: "mưa"},
				{Fact: "schedule_activity", Operator: models.OpEqual, Value: "Gym"},
			},
			Actions: []models.Action{
				{Type: models.ActionRecommendation, Message: "Thời tiết đang mưa, hãy mang theo ô hoặc áo mưa khi đi tập Gym nhé!"},
			},
		},
		{
			Name:        "rule_2_morning_vscode",
			Description: "Nếu là buổi sáng và VSCode chưa mở, đề xuất mở VSCode.",
			Conditions: []models.Condition{
				{Fact: "time_category", Operator: models.OpEqual, Value: "morning"},
				{Fact: "vscode_status", Operator: models.OpEqual, Value: "closed"},
			},
			Actions: []models.Action{
				{Type: models.ActionRecommendation, Message: "Buổi sáng rồi, bạn có muốn mở VSCode để bắt đầu công việc không?"},
				{Type: models.ActionCommand, Command: "open_vscode"},
			},
		},
		{
			Name:        "rule_3_weekend_relax",
			Description: "Nếu là cuối tuần và không có lịch trình cụ thể, đề xuất nghỉ ngơi/giải trí.",
			Conditions: []models.Condition{
				{Fact: "day_of_week", Operator: models.OpIn, Value: []string{"Saturday", "Sunday"}},
				{Fact: "schedule_empty_or_flexible", Operator: models.OpEqual, Value: true},
			},
			Actions: []models.Action{
				{Type: models.ActionRecommendation, Message: "Cuối tuần rồi, hãy thư giãn và tận hưởng thời gian rảnh nhé!"},
			},
		},
		{
			Name:        "rule_4_afternoon_break",
			Description: "Nếu là buổi chiều và lịch trình trống, đề xuất nghỉ ngơi.",
			Conditions: []models.Condition{
				{Fact: "time_category", Operator: models.OpEqual, Value: "afternoon"},
				{Fact: "schedule_empty_or_flexible", Operator: models.OpEqual, Value: true},
			},
			Actions: []models.Action{
				{Type: models.ActionRecommendation, Message: "Buổi chiều rảnh rỗi, bạn có thể nghỉ ngơi một chút để lấy lại năng lượng!"},
			},
		},
		{
			Name:        "rule_5_evening_relax",
			Description: "Nếu là buổi tối và lịch trình trống, đề xuất thư giãn.",
			Conditions: []models.Condition{
				{Fact: "time_category", Operator: models.OpEqual, Value: "evening"},
				{Fact: "schedule_empty_or_flexible", Operator: models.OpEqual, Value: true},
			},
			Actions: []models.Action{
				{Type: models.ActionRecommendation, Message: "Buổi tối rồi, bạn có thể thư giãn và tận hưởng thời gian rảnh rỗi!"},
			},
		},
	}
}
