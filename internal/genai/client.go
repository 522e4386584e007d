// Package genai предоставляет клиент для внешнего генеративного AI (Gemini generateContent).
package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/hashicorp/go-cleanhttp"
)

const (
	// DefaultBaseURL задаёт адрес публичного API Gemini.
	DefaultBaseURL = "https://generativelanguage.googleapis.com"
	// DefaultModel задаёт модель, используемую по умолчанию.
	DefaultModel = "gemini-2.5-flash"
)

var (
	// ErrNotConfigured возвращается, если клиент не создан или не задан ключ API.
	ErrNotConfigured = errors.New("genai client not configured")
	// ErrEmptyResponse возвращается, если ответ не содержит ни одного кандидата с текстом.
	ErrEmptyResponse = errors.New("genai response has no candidates")
)

// Client инкапсулирует HTTP-взаимодействие с API генеративной модели.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

// Credential описывает пару email/пароль, сгенерированная моделью.
type Credential struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Message описывает реплику из истории диалога. Role принимает значения "user" или "model".
type Message struct {
	Role string
	Text string
}

// NewClient создаёт клиент для обращения к API по указанному адресу.
// Таймаут запроса не задаётся: ограничение определяет контекст вызывающего.
func NewClient(baseURL, apiKey, model string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if model == "" {
		model = DefaultModel
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		model:      model,
		httpClient: cleanhttp.DefaultPooledClient(),
	}
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type schema struct {
	Type       string             `json:"type"`
	Items      *schema            `json:"items,omitempty"`
	Properties map[string]*schema `json:"properties,omitempty"`
	Required   []string           `json:"required,omitempty"`
}

type generationConfig struct {
	ResponseMimeType string  `json:"responseMimeType,omitempty"`
	ResponseSchema   *schema `json:"responseSchema,omitempty"`
}

type generateRequest struct {
	Contents          []content         `json:"contents"`
	SystemInstruction *content          `json:"systemInstruction,omitempty"`
	GenerationConfig  *generationConfig `json:"generationConfig,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

var credentialsSchema = &schema{
	Type: "ARRAY",
	Items: &schema{
		Type: "OBJECT",
		Properties: map[string]*schema{
			"email":    {Type: "STRING"},
			"password": {Type: "STRING"},
		},
		Required: []string{"email", "password"},
	},
}

// GenerateCredentials запрашивает у модели JSON-массив учётных данных по текстовому промпту.
func (c *Client) GenerateCredentials(ctx context.Context, prompt string) ([]Credential, error) {
	text, err := c.generate(ctx, generateRequest{
		Contents: []content{{Role: "user", Parts: []part{{Text: prompt}}}},
		GenerationConfig: &generationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   credentialsSchema,
		},
	})
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	var creds []Credential
	if err := json.Unmarshal([]byte(text), &creds); err != nil {
		return nil, fmt.Errorf("decode credentials: %w", err)
	}
	return creds, nil
}

// Chat отправляет новое сообщение вместе с историей диалога и системной инструкцией
// и возвращает текст ответа модели.
func (c *Client) Chat(ctx context.Context, systemInstruction string, history []Message, message string) (string, error) {
	contents := make([]content, 0, len(history)+1)
	for _, m := range history {
		contents = append(contents, content{Role: m.Role, Parts: []part{{Text: m.Text}}})
	}
	contents = append(contents, content{Role: "user", Parts: []part{{Text: message}}})

	req := generateRequest{Contents: contents}
	if systemInstruction != "" {
		req.SystemInstruction = &content{Parts: []part{{Text: systemInstruction}}}
	}

	return c.generate(ctx, req)
}

func (c *Client) generate(ctx context.Context, payload generateRequest) (string, error) {
	if c == nil || c.baseURL == "" || c.apiKey == "" {
		return "", ErrNotConfigured
	}

	base := c.baseURL
	if !strings.HasPrefix(base, "http://") && !strings.HasPrefix(base, "https://") {
		base = "https://" + base
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", base, c.model)

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("unexpected status: %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var result generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	if len(result.Candidates) == 0 {
		return "", ErrEmptyResponse
	}

	var sb strings.Builder
	for _, p := range result.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	return sb.String(), nil
}
