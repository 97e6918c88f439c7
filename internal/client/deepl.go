package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/DanRulev/vokabot/internal/models"
)

const deepLDefaultURL = "https://api-free.deepl.com"

type DeepLAPI struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

func NewDeepLAPI(client *http.Client, baseURL, apiKey string) *DeepLAPI {
	if baseURL == "" {
		baseURL = deepLDefaultURL
	}
	return &DeepLAPI{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
	}
}

func (d *DeepLAPI) TranslateEnToDe(ctx context.Context, text string) (string, error) {
	form := url.Values{}
	form.Set("text", text)
	form.Set("source_lang", "EN")
	form.Set("target_lang", "DE")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.baseURL+"/v2/translate", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "DeepL-Auth-Key "+d.apiKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := d.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("deepl: unexpected status %d", resp.StatusCode)
	}

	var data models.DeepLResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return "", fmt.Errorf("deepl: failed to decode response: %w", err)
	}

	if len(data.Translations) == 0 || data.Translations[0].Text == "" {
		return "", fmt.Errorf("deepl: empty translation for %q", text)
	}

	return data.Translations[0].Text, nil
}
