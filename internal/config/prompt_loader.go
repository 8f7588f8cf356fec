package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"rightsteps/internal/textutil"
)

// defaultPromptDir is the subdirectory within the user's home directory.
const defaultPromptDir = ".config/rightsteps/prompts"

//go:embed prompts/system_prompt.txt
var defaultSystemPrompt string

// DefaultSystemPrompt returns the built-in advisor persona.
func DefaultSystemPrompt() string {
	return strings.TrimSpace(defaultSystemPrompt)
}

// LoadPromptContent reads the system prompt from configuredPath.
// An empty path yields the built-in prompt. A relative path is tried against
// the working directory first, then ~/.config/rightsteps/prompts/.
func LoadPromptContent(configuredPath string) (string, error) {
	if configuredPath == "" {
		return DefaultSystemPrompt(), nil
	}

	candidates := []string{configuredPath}
	if !filepath.IsAbs(configuredPath) {
		if homeDir, err := os.UserHomeDir(); err == nil {
			candidates = append(candidates, filepath.Join(homeDir, defaultPromptDir, configuredPath))
		}
	}

	for _, path := range candidates {
		promptBytes, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("failed to read prompt file '%s': %w", path, err)
		}
		prompt := strings.TrimSpace(textutil.CleanFileContent(promptBytes, path))
		if prompt == "" {
			return "", fmt.Errorf("prompt file '%s' is empty", path)
		}
		return prompt, nil
	}

	return "", fmt.Errorf("prompt file not found (looked in %s): %w", strings.Join(candidates, ", "), fs.ErrNotExist)
}
