package gemini

// ScheduleExtractionInstruction is the fixed instruction sent alongside a
// schedule image.
const ScheduleExtractionInstruction = "Analyze this schedule image. Extract all appointments. " +
	"Group them by the section owner (e.g., Cindy, Leticia, Staff). " +
	"Return a list of appointment objects. Separate phone numbers and email addresses."

// ScheduleExtractionSchema is the JSON response schema the model must
// follow when extracting appointments from an image.
func ScheduleExtractionSchema() map[string]any {
	return map[string]any{
		"type": "ARRAY",
		"items": map[string]any{
			"type": "OBJECT",
			"properties": map[string]any{
				"owner":           map[string]any{"type": "STRING", "description": "The person whose schedule this belongs to (e.g. Cindy, Leticia)"},
				"time":            map[string]any{"type": "STRING"},
				"clientName":      map[string]any{"type": "STRING"},
				"description":     map[string]any{"type": "STRING", "description": "Details under the name, e.g., 'Nook windows'"},
				"lastAcctSummary": map[string]any{"type": "STRING", "nullable": true},
				"phone":           map[string]any{"type": "STRING", "description": "Phone number only"},
				"email":           map[string]any{"type": "STRING", "nullable": true, "description": "Email address if present"},
				"location":        map[string]any{"type": "STRING"},
				"confirmation":    map[string]any{"type": "STRING"},
				"dppsValue":       map[string]any{"type": "STRING", "nullable": true, "description": "Value in 'Available for DPPs' column"},
				"ifsValue":        map[string]any{"type": "STRING", "nullable": true, "description": "Value in 'Available for IFs' column"},
			},
			"required": []string{"owner", "time", "clientName", "description", "location"},
		},
	}
}

// NewScheduleExtractionRequest builds the generate request for a schedule
// image. A data-URL header on the payload must already be stripped.
func NewScheduleExtractionRequest(imageBase64, mimeType string) GenerateRequest {
	if mimeType == "" {
		mimeType = "image/png"
	}
	return GenerateRequest{
		Contents: []Content{
			{
				Parts: []Part{
					{InlineData: &InlineData{MimeType: mimeType, Data: imageBase64}},
					{Text: ScheduleExtractionInstruction},
				},
			},
		},
		GenerationConfig: &GenerationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   ScheduleExtractionSchema(),
		},
	}
}
