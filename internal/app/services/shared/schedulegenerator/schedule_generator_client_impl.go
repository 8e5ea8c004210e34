package schedulegenerator

import (
	"bytes"
	"class-planner-service/internal/app/contracts"
	"class-planner-service/internal/pkg/constvars"
	"class-planner-service/internal/pkg/dto/requests"
	"class-planner-service/internal/pkg/dto/responses"
	"class-planner-service/internal/pkg/exceptions"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const maxResponseBytes = 4 << 20

type scheduleGeneratorClient struct {
	Endpoint   string
	HTTPClient *http.Client
	Limiter    *rate.Limiter
	Log        *zap.Logger
}

// NewScheduleGeneratorClient posts to baseURL+generatePath. A nil limiter
// disables outbound throttling.
func NewScheduleGeneratorClient(baseURL, generatePath string, timeout time.Duration, limiter *rate.Limiter, logger *zap.Logger) contracts.ScheduleGenerator {
	return &scheduleGeneratorClient{
		Endpoint:   strings.TrimRight(baseURL, "/") + generatePath,
		HTTPClient: &http.Client{Timeout: timeout},
		Limiter:    limiter,
		Log:        logger,
	}
}

func (c *scheduleGeneratorClient) Generate(ctx context.Context, payload *requests.GenerateSchedules) (*responses.GenerateSchedules, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("scheduleGeneratorClient.Generate called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingURLKey, c.Endpoint),
	)

	if c.Limiter != nil {
		err := c.Limiter.Wait(ctx)
		if err != nil {
			c.Log.Error("scheduleGeneratorClient.Generate outbound limiter refused request",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, exceptions.ErrScheduleServiceRateLimited(err)
		}
	}

	requestBody, err := json.Marshal(payload)
	if err != nil {
		c.Log.Error("scheduleGeneratorClient.Generate error marshaling payload",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.Endpoint, bytes.NewBuffer(requestBody))
	if err != nil {
		c.Log.Error("scheduleGeneratorClient.Generate error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	if requestID != "" {
		req.Header.Set(constvars.HeaderXRequestID, requestID)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("scheduleGeneratorClient.Generate error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if isTimeout(err) {
			return nil, exceptions.ErrScheduleServiceTimeout(err)
		}
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes+1))
	if err != nil {
		c.Log.Error("scheduleGeneratorClient.Generate error reading response body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if isTimeout(err) {
			return nil, exceptions.ErrScheduleServiceTimeout(err)
		}
		return nil, exceptions.ErrSendHTTPRequest(err)
	}

	if resp.StatusCode < constvars.StatusOK || resp.StatusCode >= constvars.StatusMultipleChoices {
		c.Log.Error("scheduleGeneratorClient.Generate unexpected status",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		return nil, exceptions.ErrScheduleServiceStatus(errors.New(remoteErrorMessage(bodyBytes)), resp.StatusCode)
	}

	if len(bodyBytes) > maxResponseBytes {
		c.Log.Error("scheduleGeneratorClient.Generate response too large",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int("max_bytes", maxResponseBytes),
		)
		return nil, exceptions.ErrScheduleResponseTooLarge(fmt.Errorf("body exceeds %d bytes", maxResponseBytes))
	}

	if !json.Valid(bodyBytes) {
		c.Log.Error("scheduleGeneratorClient.Generate response is not JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, exceptions.ErrDecodeScheduleResponse(fmt.Errorf("body of %d bytes is not valid JSON", len(bodyBytes)))
	}

	var result responses.GenerateSchedules
	err = json.Unmarshal(bodyBytes, &result)
	if err != nil {
		c.Log.Error("scheduleGeneratorClient.Generate response has unexpected shape",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrScheduleProtocol(err)
	}

	c.Log.Info("scheduleGeneratorClient.Generate succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingScheduleCount, len(result.Schedules)),
	)
	return &result, nil
}

// remoteErrorMessage prefers the generator's {"error": "..."} body.
func remoteErrorMessage(body []byte) string {
	var remoteErr responses.ScheduleGeneratorError
	if err := json.Unmarshal(body, &remoteErr); err == nil && remoteErr.Error != "" {
		return remoteErr.Error
	}
	text := strings.TrimSpace(string(body))
	if len(text) > 256 {
		text = text[:256]
	}
	if text == "" {
		return "empty response body"
	}
	return text
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
