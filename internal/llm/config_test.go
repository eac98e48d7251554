package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig_Disabled(t *testing.T) {
	cfg := DefaultConfig()
	assert.False(t, cfg.Enabled)
	assert.Equal(t, 10000, cfg.Tasks[TaskClassify].TimeoutMs)
}

func TestLoadConfig_TaskTimeoutOverrides(t *testing.T) {
	t.Setenv("ESGCOMPASS_LLM_TIMEOUT_MS", "9000")
	t.Setenv("ESGCOMPASS_LLM_CLASSIFY_TIMEOUT_MS", "4000")
	t.Setenv("ESGCOMPASS_LLM_DIALOGUE_TIMEOUT_MS", "25000")

	cfg := LoadConfig()

	assert.Equal(t, 9000, cfg.TimeoutMs)
	assert.Equal(t, 4000, cfg.TaskTimeout(TaskClassify))
	assert.Equal(t, 25000, cfg.TaskTimeout(TaskDialogue))
	assert.Equal(t, 30000, cfg.TaskTimeout(TaskReport))
}

func TestLoadConfig_InvalidTaskTimeoutOverrideIgnored(t *testing.T) {
	t.Setenv("ESGCOMPASS_LLM_CLASSIFY_TIMEOUT_MS", "not-a-number")

	cfg := LoadConfig()

	assert.Equal(t, 10000, cfg.TaskTimeout(TaskClassify))
}

func TestLoadConfig_APIKeyFallback(t *testing.T) {
	t.Setenv("ESGCOMPASS_LLM_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "from-gemini-env")
	assert.Equal(t, "from-gemini-env", LoadConfig().APIKey)

	t.Setenv("ESGCOMPASS_LLM_API_KEY", "explicit")
	assert.Equal(t, "explicit", LoadConfig().APIKey)
}

func TestLoadConfig_EnabledAndModel(t *testing.T) {
	t.Setenv("ESGCOMPASS_LLM_ENABLED", "true")
	t.Setenv("ESGCOMPASS_LLM_MODEL", "gemini-2.5-pro")

	cfg := LoadConfig()

	assert.True(t, cfg.Enabled)
	assert.Equal(t, "gemini-2.5-pro", cfg.Model)
}
