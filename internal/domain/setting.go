package domain

// Setting is a key/value row on the settings page.
type Setting struct {
	Meta
	Key         string `json:"key" toml:"key" validate:"required"`
	Value       string `json:"value" toml:"value"`
	Category    string `json:"category" toml:"category"`
	Description string `json:"description" toml:"description"`
}

// SettingPatch is a partial update for a setting.
type SettingPatch struct {
	Value       *string `json:"value"`
	Category    *string `json:"category"`
	Description *string `json:"description"`
}

// Apply merges the patch into s.
func (p SettingPatch) Apply(s *Setting) {
	if p.Value != nil {
		s.Value = *p.Value
	}
	if p.Category != nil {
		s.Category = *p.Category
	}
	if p.Description != nil {
		s.Description = *p.Description
	}
}
