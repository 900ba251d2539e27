package resumes

import "encoding/json"

// ResumeInput carries the editor's document. Section payloads stay raw:
// their shape belongs to the frontend editor and is stored verbatim.
type ResumeInput struct {
	Title        string          `json:"title"`
	Summary      string          `json:"summary"`
	ThemeColor   string          `json:"theme_color"`
	PersonalInfo json.RawMessage `json:"personal_info"`
	Experience   json.RawMessage `json:"experience"`
	Education    json.RawMessage `json:"education"`
	Projects     json.RawMessage `json:"projects"`
	Skills       json.RawMessage `json:"skills"`
}
