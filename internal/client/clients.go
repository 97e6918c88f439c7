package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/DanRulev/vokabot/internal/config"
)

type Translator interface {
	TranslateEnToDe(ctx context.Context, text string) (string, error)
}

func InitTranslator(cfg config.TranslatorConfig) (Translator, error) {
	switch cfg.Provider {
	case config.ProviderDeepL:
		return NewDeepLAPI(http.DefaultClient, cfg.URL, cfg.APIKey), nil
	case config.ProviderMyMemory:
		return NewMyMemoryAPI(http.DefaultClient, cfg.URL), nil
	default:
		return nil, fmt.Errorf("unknown translator provider %q", cfg.Provider)
	}
}
