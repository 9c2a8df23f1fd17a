package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Fields is one form submission as the relay receives it.
type Fields struct {
	Name   string
	Email  string
	Events []string
}

type Config struct {
	// Destination is the form's configured action URL.
	Destination string
	// PageOrigin is where the page itself was loaded from, e.g. http://localhost:8000 or file:///site/index.html.
	PageOrigin string
	HTTPClient *http.Client
	Logger     *zap.Logger
}

// DefaultTimeout bounds one relay round trip when Config.HTTPClient is unset.
const DefaultTimeout = 30 * time.Second

// Client posts submissions to an external form-relay service.
type Client struct {
	destination string
	pageOrigin  string
	httpClient  *http.Client
	logger      *zap.Logger
}

func NewClient(cfg Config) *Client {
	c := &Client{
		destination: strings.TrimSpace(cfg.Destination),
		pageOrigin:  strings.TrimSpace(cfg.PageOrigin),
		httpClient:  cfg.HTTPClient,
		logger:      cfg.Logger,
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	if c.logger == nil {
		c.logger = zap.NewNop()
	}
	return c
}

// Timeout is the longest a single Submit may wait on the relay.
func (c *Client) Timeout() time.Duration {
	if c.httpClient.Timeout > 0 {
		return c.httpClient.Timeout
	}
	return DefaultTimeout
}

type errorBody struct {
	Error  string `json:"error"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// Submit makes exactly one POST attempt.
func (c *Client) Submit(ctx context.Context, fields Fields) error {
	target, err := url.Parse(c.destination)
	if err != nil || (target.Scheme != "http" && target.Scheme != "https") {
		if err == nil {
			err = fmt.Errorf("unsupported destination scheme %q", target.Scheme)
		}
		if c.fromLocalFile() || (target != nil && target.Scheme == "file") {
			return &EnvironmentError{Origin: c.pageOrigin, Err: err}
		}
		return &NetworkError{Err: err}
	}

	body, contentType, err := encodeMultipart(fields)
	if err != nil {
		return fmt.Errorf("failed to encode form: %w", err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, target.String(), body)
	if err != nil {
		return &NetworkError{Err: err}
	}
	request.Header.Set("Content-Type", contentType)
	request.Header.Set("Accept", "application/json")

	response, err := c.httpClient.Do(request)
	if err != nil {
		c.logger.Warn("relay request failed", zap.String("destination", c.destination), zap.Error(err))
		if c.fromLocalFile() {
			return &EnvironmentError{Origin: c.pageOrigin, Err: err}
		}
		return &NetworkError{Err: err}
	}
	defer response.Body.Close()

	if response.StatusCode >= 200 && response.StatusCode < 300 {
		_, _ = io.Copy(io.Discard, response.Body)
		return nil
	}

	message := MessageGenericFailure
	var parsed errorBody
	if err := json.NewDecoder(io.LimitReader(response.Body, 1<<20)).Decode(&parsed); err == nil {
		if parsed.Error != "" {
			message = parsed.Error
		} else if joined := joinMessages(parsed); joined != "" {
			message = joined
		}
	}
	c.logger.Warn("relay rejected submission",
		zap.String("destination", c.destination),
		zap.Int("status_code", response.StatusCode),
		zap.String("message", message))
	return &ServerError{StatusCode: response.StatusCode, Message: message}
}

func (c *Client) fromLocalFile() bool {
	if c.pageOrigin == "" {
		return false
	}
	origin, err := url.Parse(c.pageOrigin)
	return err == nil && origin.Scheme == "file"
}

func encodeMultipart(fields Fields) (io.Reader, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	if err := writer.WriteField("name", fields.Name); err != nil {
		return nil, "", err
	}
	if err := writer.WriteField("email", fields.Email); err != nil {
		return nil, "", err
	}
	for _, event := range fields.Events {
		if err := writer.WriteField("events", event); err != nil {
			return nil, "", err
		}
	}
	if err := writer.Close(); err != nil {
		return nil, "", err
	}
	return &buf, writer.FormDataContentType(), nil
}

func joinMessages(body errorBody) string {
	messages := make([]string, 0, len(body.Errors))
	for _, e := range body.Errors {
		if e.Message != "" {
			messages = append(messages, e.Message)
		}
	}
	return strings.Join(messages, ", ")
}

// UserMessage picks the most specific text to show for a failed submit.
func UserMessage(err error) string {
	var (
		serverErr *ServerError
		envErr    *EnvironmentError
		netErr    *NetworkError
	)
	switch {
	case err == nil:
		return ""
	case errors.As(err, &envErr):
		return envErr.Error()
	case errors.As(err, &serverErr):
		return serverErr.Message
	case errors.As(err, &netErr):
		return netErr.Error()
	default:
		return MessageGenericFailure
	}
}
