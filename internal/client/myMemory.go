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

const myMemoryDefaultURL = "https://api.mymemory.translated.net"

type MyMemoryAPI struct {
	client  *http.Client
	baseURL string
}

func NewMyMemoryAPI(client *http.Client, baseURL string) *MyMemoryAPI {
	if baseURL == "" {
		baseURL = myMemoryDefaultURL
	}
	return &MyMemoryAPI{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (m *MyMemoryAPI) TranslateEnToDe(ctx context.Context, text string) (string, error) {
	url := fmt.Sprintf(
		"%s/get?q=%s&langpair=%s",
		m.baseURL, url.QueryEscape(text), url.QueryEscape("en|de"),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	resp, err := m.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("mymemory: unexpected status %d", resp.StatusCode)
	}

	var data models.MyMemoryResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return "", fmt.Errorf("mymemory: failed to decode response: %w", err)
	}

	if status, ok := data.ResponseStatus.(float64); !ok || status != http.StatusOK {
		return "", fmt.Errorf("mymemory: %v %s", data.ResponseStatus, data.ResponseBody.ResponseDetails)
	}

	if data.ResponseBody.TranslatedText == "" {
		return "", fmt.Errorf("mymemory: empty translation for %q", text)
	}

	return data.ResponseBody.TranslatedText, nil
}
