package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q", cfg.Server.Host)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d", cfg.Server.Port)
	}
	if cfg.Translation.Service != "azure" {
		t.Errorf("Translation.Service = %q, want default azure", cfg.Translation.Service)
	}
	if cfg.Azure.APIVersion == "" {
		t.Error("Azure.APIVersion default missing")
	}
	if cfg.OpenAI.BaseURL != "https://api.openai.com/v1" {
		t.Errorf("OpenAI.BaseURL = %q", cfg.OpenAI.BaseURL)
	}
	if cfg.Google.BaseURL == "" || cfg.DeepL.BaseURL == "" {
		t.Error("backend base URL defaults missing")
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("TRANSLATION_SERVICE", "deepl")
	t.Setenv("DEEPL_API_KEY", "secret")
	t.Setenv("TRANSLATION_RPS", "2.5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Translation.Service != "deepl" {
		t.Errorf("Translation.Service = %q", cfg.Translation.Service)
	}
	if cfg.DeepL.APIKey != "secret" {
		t.Errorf("DeepL.APIKey = %q", cfg.DeepL.APIKey)
	}
	if cfg.Translation.RPS != 2.5 {
		t.Errorf("Translation.RPS = %v", cfg.Translation.RPS)
	}
}
