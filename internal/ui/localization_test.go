package ui

import (
	"sync"
	"testing"
)

func TestLocalizationCompleteness(t *testing.T) {
	l := NewLocalization()
	english := l.texts["en"]

	for lang := range l.GetAvailableLanguages() {
		texts, ok := l.texts[lang]
		if !ok {
			t.Errorf("Missing texts for language %s", lang)
			continue
		}
		for key := range english {
			if _, found := texts[key]; !found {
				t.Errorf("Language %s is missing key %s", lang, key)
			}
		}
	}
}

func TestLocalizationFallbacks(t *testing.T) {
	l := NewLocalization()

	l.SetLanguage("system")
	if l.GetCurrentLanguage() != "en" {
		t.Errorf("Expected system to map to en, got %s", l.GetCurrentLanguage())
	}

	l.SetLanguage("xx")
	if l.GetCurrentLanguage() != "en" {
		t.Errorf("Expected unknown language to be ignored, got %s", l.GetCurrentLanguage())
	}

	if got := l.GetText("no_such_key"); got != "no_such_key" {
		t.Errorf("Expected key fallback, got %s", got)
	}

	l.SetLanguage("ru")
	if got := l.GetText(KeyStart); got != "Старт" {
		t.Errorf("Expected Russian text, got %s", got)
	}
}

func TestCompletionTexts(t *testing.T) {
	l := NewLocalization()
	if got := l.GetText(KeyTimerCompleted); got != "Timer Completed" {
		t.Errorf("Expected 'Timer Completed', got %q", got)
	}
	if got := l.Format(KeyTimerFinished, "Tea"); got != "Tea has finished!" {
		t.Errorf("Expected 'Tea has finished!', got %q", got)
	}
}

func TestLocalizationConcurrentReads(t *testing.T) {
	l := NewLocalization()

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if l.GetText(KeyTimerCompleted) == "" {
					t.Error("Expected completion title")
					return
				}
			}
		}()
	}
	for j := 0; j < 100; j++ {
		l.SetLanguage([]string{"en", "ru", "pt"}[j%3])
	}
	wg.Wait()
}
