package i18n

import "testing"

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	manager, err := NewManager(LangDE)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	return manager
}

func TestLocalesShareTheSameKeys(t *testing.T) {
	manager := newTestManager(t)

	german := manager.locales[LangDE]
	english := manager.locales[LangEN]

	for key := range german {
		if _, ok := english[key]; !ok {
			t.Errorf("key %q missing from en locale", key)
		}
	}
	for key := range english {
		if _, ok := german[key]; !ok {
			t.Errorf("key %q missing from de locale", key)
		}
	}
}

func TestNormalizeLanguage(t *testing.T) {
	manager := newTestManager(t)

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "exact", raw: "en", want: "en"},
		{name: "region tag", raw: "de-AT", want: "de"},
		{name: "underscore tag", raw: "en_US", want: "en"},
		{name: "unsupported falls back", raw: "fr", want: "de"},
		{name: "empty falls back", raw: "", want: "de"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			if got := manager.NormalizeLanguage(testCase.raw); got != testCase.want {
				t.Fatalf("NormalizeLanguage(%q) = %q, want %q", testCase.raw, got, testCase.want)
			}
		})
	}
}

func TestDetectFromAcceptLanguage(t *testing.T) {
	manager := newTestManager(t)

	if got := manager.DetectFromAcceptLanguage("fr-FR,fr;q=0.9,en-US;q=0.8"); got != "en" {
		t.Fatalf("expected en from header, got %q", got)
	}
	if got := manager.DetectFromAcceptLanguage("ja,ko"); got != "de" {
		t.Fatalf("expected default de, got %q", got)
	}
}

func TestTranslateFallsBackToDefaultThenKey(t *testing.T) {
	manager := newTestManager(t)

	if got := manager.Translate("en", "errors.unauthorized"); got != "Please sign in." {
		t.Fatalf("unexpected translation %q", got)
	}
	if got := manager.Translate("de", "does.not.exist"); got != "does.not.exist" {
		t.Fatalf("expected key echo, got %q", got)
	}
}

func TestTranslatefFormatsArguments(t *testing.T) {
	manager := newTestManager(t)

	if got := manager.Translatef("en", "level.changed", 3); got != "Your calorie level is now 3." {
		t.Fatalf("unexpected formatted translation %q", got)
	}
	if got := manager.Translatef("de", "level.changed", 5); got != "Dein Kalorienlevel ist jetzt 5." {
		t.Fatalf("unexpected formatted translation %q", got)
	}
}

func TestDefaultAndSupportedLanguages(t *testing.T) {
	manager, err := NewManager("en")
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	if got := manager.DefaultLanguage(); got != "en" {
		t.Fatalf("expected default en, got %q", got)
	}

	supported := manager.SupportedLanguages()
	if len(supported) != 2 || supported[0] != "de" || supported[1] != "en" {
		t.Fatalf("expected sorted [de en], got %v", supported)
	}
}
