package inference

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	jsoniter "github.com/json-iterator/go"

	"github.com/thushan/recap/internal/core/constants"
	"github.com/thushan/recap/internal/core/domain"
	"github.com/thushan/recap/internal/core/ports"
	"github.com/thushan/recap/internal/logger"
	"github.com/thushan/recap/internal/util"
	"github.com/thushan/recap/pkg/format"
)

const (
	// resty clamps RetryAfter results into [min, max] and treats 0 as "use jitter",
	// so a zero delay is floored to this
	minRetryWait = time.Millisecond

	logBodyLimit = 512
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type requestIDKey struct{}

// Client queries a hosted model over HTTP. It holds no state between calls.
type Client struct {
	http   *resty.Client
	logger *logger.StyledLogger
	config Config
}

var _ ports.InferenceClient = (*Client)(nil)

func NewClient(cfg Config, log *logger.StyledLogger) *Client {
	if log == nil {
		log = logger.NewDiscard()
	}

	c := &Client{
		config: cfg,
		logger: log,
	}

	attempts := cfg.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	c.http = resty.New().
		SetLogger(restyLogger{log: log}).
		SetJSONMarshaler(json.Marshal).
		SetJSONUnmarshaler(json.Unmarshal).
		SetTimeout(cfg.Timeout).
		SetAuthScheme(constants.AuthSchemeBearer).
		SetAuthToken(cfg.Credential.Value()).
		SetHeader(constants.ContentTypeHeader, constants.ContentTypeJSON).
		SetRetryCount(attempts - 1).
		SetRetryWaitTime(minRetryWait).
		SetRetryMaxWaitTime(constants.MaxRetryDelay).
		SetRetryAfter(c.retryDelay).
		AddRetryCondition(c.shouldRetry).
		AddRetryHook(c.logRetry)

	return c
}

// Query sends prompt to model and returns displayable text. Every HTTP outcome,
// including error statuses and unparseable bodies, comes back as the string.
// The error is only for transport failures, cancellation and unusable model ids.
func (c *Client) Query(ctx context.Context, model, prompt string) (string, error) {
	endpoint, err := util.JoinModelURL(c.config.BaseURL, model)
	if err != nil {
		return "", fmt.Errorf("invalid model %q: %w", model, err)
	}

	request := domain.InferenceRequest{Model: model, Prompt: prompt}
	requestID := util.GenerateRequestID("")
	log := c.logger.With("request_id", requestID)

	log.DebugWithModel("Querying model", model,
		"endpoint", endpoint,
		"prompt", util.TruncateForLog(prompt, logBodyLimit))

	start := time.Now()
	resp, err := c.http.R().
		SetContext(context.WithValue(ctx, requestIDKey{}, requestID)).
		SetBody(request.Payload()).
		Post(endpoint)
	if err != nil {
		return "", &domain.EndpointError{Operation: "inference", URL: endpoint, Err: err}
	}

	attempts := resp.Request.Attempt
	if resp.StatusCode() != http.StatusOK {
		failure := &domain.InferenceError{
			Model:      model,
			StatusCode: resp.StatusCode(),
			Attempts:   attempts,
			Body:       string(resp.Body()),
		}
		log.Warn("Model call failed", "error", failure, "latency", format.Latency(time.Since(start)))
		return formatStatusError(c.config.ErrorPrefix, failure.StatusCode, failure.Body), nil
	}

	text, kind := NormalizeBody(resp.Body(), c.config.ErrorPrefix)
	log.InfoWithModel("Model responded", model,
		"attempts", attempts,
		"shape", kind,
		"latency", format.Latency(time.Since(start)))

	return text, nil
}

// shouldRetry never retries transport errors, they surface to the caller as-is
func (c *Client) shouldRetry(resp *resty.Response, err error) bool {
	if err != nil || resp == nil {
		return false
	}

	switch status := resp.StatusCode(); {
	case status == http.StatusOK:
		return false
	case status == http.StatusServiceUnavailable:
		return true
	default:
		return c.config.RetryPolicy == constants.RetryPolicyAny
	}
}

// retryDelay is fixed per status, no backoff growth
func (c *Client) retryDelay(_ *resty.Client, resp *resty.Response) (time.Duration, error) {
	delay := c.config.RetryDelay
	if resp != nil && resp.StatusCode() == http.StatusServiceUnavailable {
		delay = c.config.ColdStartDelay
	}
	if delay < minRetryWait {
		delay = minRetryWait
	}
	return delay, nil
}

func (c *Client) logRetry(resp *resty.Response, err error) {
	if resp == nil || resp.Request == nil {
		return
	}

	log := c.logger
	if id, ok := resp.Request.Context().Value(requestIDKey{}).(string); ok {
		log = log.With("request_id", id)
	}

	log.WarnWithStatus("Model endpoint returned", resp.StatusCode(),
		"attempt", resp.Request.Attempt,
		"max_attempts", c.config.MaxAttempts,
		"body", util.TruncateForLog(resp.String(), logBodyLimit))
}
