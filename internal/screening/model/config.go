package model

// ================ Config ================

// GenerationConfig controls the screening chat model.
type GenerationConfig struct {
	Model       string  `envconfig:"SCREENING_MODEL" default:"gemini-2.5-flash"`
	MaxTokens   int     `envconfig:"SCREENING_MAX_TOKENS" default:"500"`
	Temperature float32 `envconfig:"SCREENING_TEMPERATURE" default:"0.7"`
}

// PromptConfig parameterizes the screening system prompt.
type PromptConfig struct {
	AgencyName string `envconfig:"PROMPT_AGENCY_NAME" default:"TalentScout"`
	Specialty  string `envconfig:"PROMPT_AGENCY_SPECIALTY" default:"technology placements"`
}

// StoreConfig selects where completed candidate records are written.
type StoreConfig struct {
	Backend string `envconfig:"STORE_BACKEND" default:"file"`
	Dir     string `envconfig:"STORE_DIR" default:"candidate_data"`
}
