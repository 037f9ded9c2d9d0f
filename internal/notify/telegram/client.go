package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/JulianoL13/guincho-scraper/internal/professional"
)

const (
	DefaultBaseURL = "https://api.telegram.org"
	defaultTimeout = 30 * time.Second
)

type Logger interface {
	Info(msg string, args ...any)
	Debug(msg string, args ...any)
}

// Client delivers run results to one chat through the Bot API.
type Client struct {
	client  *http.Client
	baseURL string
	token   string
	chatID  string
	now     func() time.Time
	logger  Logger
}

func New(token, chatID string, logger Logger) (*Client, error) {
	if strings.TrimSpace(token) == "" || strings.TrimSpace(chatID) == "" {
		return nil, ErrMissingConfig
	}
	return &Client{
		client: &http.Client{
			Timeout: defaultTimeout,
		},
		baseURL: DefaultBaseURL,
		token:   token,
		chatID:  chatID,
		now:     time.Now,
		logger:  logger,
	}, nil
}

// WithBaseURL points the client at another API host, used by tests.
func (c *Client) WithBaseURL(base string) *Client {
	c.baseURL = strings.TrimRight(base, "/")
	return c
}

func (c *Client) WithClock(now func() time.Time) *Client {
	c.now = now
	return c
}

func (c *Client) endpoint(method string) string {
	return fmt.Sprintf("%s/bot%s/%s", c.baseURL, c.token, method)
}

// DocumentName is the attachment name for records delivered at t.
func DocumentName(t time.Time) string {
	return fmt.Sprintf("guincho_%s.json", t.Format("20060102"))
}

func (c *Client) SendRecords(ctx context.Context, records []professional.Record, caption string) error {
	if len(records) == 0 {
		return ErrNothingToSend
	}

	payload, err := professional.MarshalRecords(records)
	if err != nil {
		return err
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	fields := map[string]string{
		"chat_id":    c.chatID,
		"caption":    html.EscapeString(caption),
		"parse_mode": "HTML",
	}
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			return fmt.Errorf("write field %s: %w", k, err)
		}
	}

	name := DocumentName(c.now())
	part, err := mw.CreateFormFile("document", name)
	if err != nil {
		return fmt.Errorf("create form file: %w", err)
	}
	if _, err := part.Write(payload); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("close multipart: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint("sendDocument"), &body)
	if err != nil {
		return fmt.Errorf("bad request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	c.logger.Info("sending document", "file", name, "records", len(records), "bytes", len(payload))
	return c.do(req, "sendDocument")
}

func (c *Client) SendSummary(ctx context.Context, s professional.Summary) error {
	text := fmt.Sprintf(
		"<b>Resumo da Coleta Guincho</b>\n\n"+
			"<b>Data:</b> %s\n"+
			"<b>Profissionais:</b> %d\n"+
			"<b>Cidades:</b> %d\n"+
			"<b>Média:</b> %.1f por cidade\n\n"+
			"<i>Scraping concluído com sucesso!</i>",
		s.Date.Format(professional.DateLayout), s.Total, s.Cities, s.Average,
	)
	return c.sendMessage(ctx, text)
}

func (c *Client) SendError(ctx context.Context, message string) error {
	text := fmt.Sprintf("<b>Erro no Scraper Guincho</b>\n\n%s", html.EscapeString(message))
	return c.sendMessage(ctx, text)
}

func (c *Client) sendMessage(ctx context.Context, text string) error {
	form := url.Values{}
	form.Set("chat_id", c.chatID)
	form.Set("text", text)
	form.Set("parse_mode", "HTML")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint("sendMessage"), strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("bad request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return c.do(req, "sendMessage")
}

type apiResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

func (c *Client) do(req *http.Request, method string) error {
	resp, err := c.client.Do(req)
	if err != nil {
		// the request URL carries the bot token
		if uerr, ok := err.(*url.Error); ok {
			err = uerr.Err
		}
		return fmt.Errorf("telegram %s: %w", method, err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))

	var parsed apiResponse
	_ = json.Unmarshal(raw, &parsed)

	if resp.StatusCode != http.StatusOK || !parsed.OK {
		return &APIError{
			Method:      method,
			StatusCode:  resp.StatusCode,
			Description: parsed.Description,
		}
	}

	c.logger.Debug("telegram request ok", "method", method)
	return nil
}
