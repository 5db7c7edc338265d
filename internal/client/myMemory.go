package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/seb0305/aenigma-verborum/internal/models"
)

type MyMemoryAPI struct {
	baseURL string
	client  *http.Client
}

func NewMyMemoryAPI(baseURL string, client *http.Client) *MyMemoryAPI {
	return &MyMemoryAPI{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

// TranslateLaToDe returns the main translation followed by the distinct match alternatives.
func (m *MyMemoryAPI) TranslateLaToDe(ctx context.Context, text string) ([]string, error) {
	endpoint := fmt.Sprintf("%s/get?q=%s&langpair=la|de", m.baseURL, url.QueryEscape(text))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	resp, err := m.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var data models.MyMemoryResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode translation of %q: %w", text, err)
	}

	if data.ResponseBody.ResponseStatus != http.StatusOK {
		return nil, fmt.Errorf("translation failed: %s", data.ResponseBody.ResponseDetails)
	}

	seen := make(map[string]struct{}, len(data.Matches)+1)
	var out []string
	add := func(s string) {
		s = strings.TrimSpace(s)
		key := strings.ToLower(s)
		if s == "" {
			return
		}
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		out = append(out, s)
	}

	add(data.ResponseBody.TranslatedText)
	for _, match := range data.Matches {
		add(match.Translation)
	}

	return out, nil
}

func (m *MyMemoryAPI) AlternateMeanings(ctx context.Context, headword string) ([]string, error) {
	meanings, err := m.TranslateLaToDe(ctx, headword)
	if err != nil {
		return nil, &models.LookupError{Op: "meanings", Headword: headword, Err: err}
	}
	return meanings, nil
}
