package avatar

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// DefaultImageAPI is the multiavatar endpoint used when none is configured.
const DefaultImageAPI = "https://api.multiavatar.com/4645646"

// maxImageBytes caps one image response body.
const maxImageBytes = 1 << 20

// ImageClient fetches images with GET {base}/{seed}.
type ImageClient struct {
	base   string
	client *http.Client
}

// NewImageClient validates base and returns a client. A nil client uses
// http.DefaultClient.
func NewImageClient(base string, client *http.Client) (*ImageClient, error) {
	base, err := normalizeBaseURL(base)
	if err != nil {
		return nil, fmt.Errorf("image api: %w", err)
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &ImageClient{base: base, client: client}, nil
}

// FetchImage returns the image body for seed.
func (c *ImageClient) FetchImage(ctx context.Context, seed int) (_ []byte, err error) {
	ctx, span := tracer.Start(ctx, "avatar.fetch_image", trace.WithAttributes(attribute.Int("avatar.seed", seed)))
	defer func() { endSpan(span, err) }()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/"+strconv.Itoa(seed), nil)
	if err != nil {
		return nil, fmt.Errorf("build image request: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("image request: %w", err)
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("image api returned %s", resp.Status)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	if len(body) > maxImageBytes {
		return nil, fmt.Errorf("image exceeds %d bytes", maxImageBytes)
	}
	return body, nil
}

// BackendClient calls POST {url}/{userID} with the chosen image.
type BackendClient struct {
	url    string
	client *http.Client
}

type setAvatarRequest struct {
	Image string `json:"image"`
}

// setAvatarResponse keeps IsSet a pointer so a missing field reads as false.
type setAvatarResponse struct {
	IsSet *bool  `json:"isSet"`
	Image string `json:"image"`
}

// NewBackendClient validates setAvatarURL and returns a client. A nil client
// uses http.DefaultClient.
func NewBackendClient(setAvatarURL string, client *http.Client) (*BackendClient, error) {
	setAvatarURL, err := normalizeBaseURL(setAvatarURL)
	if err != nil {
		return nil, fmt.Errorf("set avatar url: %w", err)
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &BackendClient{url: setAvatarURL, client: client}, nil
}

// SetAvatar posts image for userID and decodes the backend answer.
func (c *BackendClient) SetAvatar(ctx context.Context, userID, image string) (_ SetAvatarResult, err error) {
	ctx, span := tracer.Start(ctx, "avatar.set", trace.WithAttributes(attribute.String("avatar.user_id", userID)))
	defer func() { endSpan(span, err) }()

	if strings.TrimSpace(userID) == "" {
		return SetAvatarResult{}, errors.New("user id is required")
	}
	payload, err := json.Marshal(setAvatarRequest{Image: image})
	if err != nil {
		return SetAvatarResult{}, fmt.Errorf("encode set avatar request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url+"/"+url.PathEscape(userID), bytes.NewReader(payload))
	if err != nil {
		return SetAvatarResult{}, fmt.Errorf("build set avatar request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return SetAvatarResult{}, fmt.Errorf("set avatar request: %w", err)
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return SetAvatarResult{}, fmt.Errorf("set avatar returned %s", resp.Status)
	}

	var decoded setAvatarResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxImageBytes)).Decode(&decoded); err != nil {
		return SetAvatarResult{}, fmt.Errorf("decode set avatar response: %w", err)
	}
	result := SetAvatarResult{Image: decoded.Image}
	if decoded.IsSet != nil {
		result.IsSet = *decoded.IsSet
	}
	span.SetAttributes(attribute.Bool("avatar.is_set", result.IsSet))
	return result, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("url is required")
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parse url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", fmt.Errorf("url scheme must be http or https: %q", raw)
	}
	if parsed.Host == "" {
		return "", fmt.Errorf("url host is required: %q", raw)
	}
	return strings.TrimRight(raw, "/"), nil
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
