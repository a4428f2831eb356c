package gemini

// GenerateRequest is the top-level request body for Gemini API.
type GenerateRequest struct {
	Contents         []Content         `json:"contents"`
	GenerationConfig *GenerationConfig `json:"generationConfig,omitempty"`
}

// Content wraps a list of Part objects to form a message.
type Content struct {
	Role  string `json:"role,omitempty"`
	Parts []Part `json:"parts"`
}

// Part holds a text segment or inline binary data for a content message.
type Part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *InlineData `json:"inlineData,omitempty"`
}

// InlineData carries base64-encoded media, e.g. an uploaded schedule image.
type InlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

// GenerationConfig holds optional generation settings. ResponseSchema
// constrains the model to emit JSON matching the given schema.
type GenerationConfig struct {
	Temperature      float64        `json:"temperature,omitempty"`
	MaxOutputTokens  int            `json:"maxOutputTokens,omitempty"`
	ResponseMimeType string         `json:"responseMimeType,omitempty"`
	ResponseSchema   map[string]any `json:"responseSchema,omitempty"`
}

// GenerateResponse is the top-level response body from Gemini API.
type GenerateResponse struct {
	Candidates []Candidate `json:"candidates"`
}

// Candidate represents a single response candidate.
type Candidate struct {
	Content Content `json:"content"`
}

// ParsedAppointment is a partial appointment record extracted from a
// schedule image by the model.
type ParsedAppointment struct {
	Owner           string `json:"owner"`
	Time            string `json:"time"`
	ClientName      string `json:"clientName"`
	Description     string `json:"description"`
	LastAcctSummary string `json:"lastAcctSummary,omitempty"`
	Phone           string `json:"phone,omitempty"`
	Email           string `json:"email,omitempty"`
	Location        string `json:"location"`
	Confirmation    string `json:"confirmation,omitempty"`
	DPPsValue       string `json:"dppsValue,omitempty"`
	IFsValue        string `json:"ifsValue,omitempty"`
}
