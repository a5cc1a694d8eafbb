package images

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Gateway uploads base64 data URIs to the image host and hands back the
// hosted URL. Already-hosted URLs pass through unchanged so re-submitting a
// saved record never re-uploads.
type Gateway struct {
	uploadURL  string
	apiKey     string
	httpClient *http.Client
}

func NewGateway(uploadURL, apiKey string) *Gateway {
	return &Gateway{uploadURL: uploadURL, apiKey: apiKey, httpClient: &http.Client{Timeout: 30 * time.Second}}
}

type uploadResp struct {
	Success bool `json:"success"`
	Status  int  `json:"status"`
	Data    struct {
		URL string `json:"url"`
	} `json:"data"`
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (g *Gateway) Upload(ctx context.Context, data string) (string, error) {
	s := strings.TrimSpace(data)
	if s == "" {
		return "", errors.New("empty image data")
	}
	if strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") {
		return s, nil
	}
	payload, err := stripDataURI(s)
	if err != nil {
		return "", err
	}
	if g.apiKey == "" {
		return "", errors.New("image host api key missing (IMG_API_KEY)")
	}

	form := url.Values{}
	form.Set("key", g.apiKey)
	form.Set("image", payload)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.uploadURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res, err := g.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("image host request: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
		return "", fmt.Errorf("image host status %d: %s", res.StatusCode, string(body))
	}
	var out uploadResp
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return "", err
	}
	if !out.Success || out.Data.URL == "" {
		if out.Error.Message != "" {
			return "", fmt.Errorf("image host: %s", out.Error.Message)
		}
		return "", errors.New("image host returned no url")
	}
	return out.Data.URL, nil
}

// stripDataURI pulls the base64 payload out of a data URI and checks it
// actually decodes.
func stripDataURI(s string) (string, error) {
	if !strings.HasPrefix(s, "data:") {
		return "", errors.New("image must be a data URI or hosted URL")
	}
	idx := strings.Index(s, ",")
	if idx < 0 {
		return "", errors.New("malformed data URI")
	}
	meta, payload := s[:idx], s[idx+1:]
	if !strings.Contains(meta, ";base64") {
		return "", errors.New("data URI must be base64 encoded")
	}
	if _, err := base64.StdEncoding.DecodeString(payload); err != nil {
		return "", fmt.Errorf("invalid base64 image: %w", err)
	}
	return payload, nil
}
