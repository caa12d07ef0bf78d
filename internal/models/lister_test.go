package models

import (
	"context"
	"os"
	"reflect"
	"testing"
)

func TestNewLister(t *testing.T) {
	lister := NewLister("test-api-key")

	if lister == nil {
		t.Fatal("NewLister returned nil")
	}

	if lister.apiKey != "test-api-key" {
		t.Errorf("Expected API key 'test-api-key', got '%s'", lister.apiKey)
	}

	if lister.client == nil {
		t.Error("OpenAI client not initialized")
	}
}

func TestListAvailableModels_NoAPIKey(t *testing.T) {
	lister := NewLister("")

	err := lister.ListAvailableModels(context.Background())
	if err == nil {
		t.Error("Expected error for missing API key")
	}

	expectedError := "OpenAI API key not found. Set OPENAI_API_KEY environment variable or configure in .learnlanguage.yaml"
	if err.Error() != expectedError {
		t.Errorf("Expected error '%s', got: %v", expectedError, err)
	}
}

func TestCategorize(t *testing.T) {
	ids := []string{
		"gpt-4o-mini",
		"tts-1-hd",
		"gpt-4o-mini-tts",
		"dall-e-3",
		"tts-1",
		"gpt-3.5-turbo",
	}

	tts, chat := categorize(ids)

	wantTTS := []string{"gpt-4o-mini-tts", "tts-1", "tts-1-hd"}
	if !reflect.DeepEqual(tts, wantTTS) {
		t.Errorf("tts models = %v, want %v", tts, wantTTS)
	}

	wantChat := []string{"gpt-3.5-turbo", "gpt-4o-mini"}
	if !reflect.DeepEqual(chat, wantChat) {
		t.Errorf("chat models = %v, want %v", chat, wantChat)
	}
}

func TestListAvailableModels_Integration(t *testing.T) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		t.Skip("Skipping integration test: OPENAI_API_KEY not set")
	}

	lister := NewLister(apiKey)

	err := lister.ListAvailableModels(context.Background())
	if err != nil {
		t.Errorf("ListAvailableModels failed: %v", err)
	}
}
