package gateway

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"clinidash-core/internal/app/config"
	"clinidash-core/internal/app/contracts"
	"clinidash-core/internal/pkg/constvars"
	"clinidash-core/internal/pkg/dto/responses"
	"clinidash-core/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"
)

// listEnvelopeKeys maps a fetch key to the ordered wrapper property names
// accepted for that endpoint. Anything not listed falls back to the generic
// set.
var listEnvelopeKeys = map[string][]string{
	constvars.ResourcePatients: constvars.ListKeysPatients,
	constvars.ResourcePlans:    constvars.ListKeysPlans,
	constvars.ResourceHistoria: constvars.ListKeysHistoria,
}

var genericEnvelopeKeys = []string{"data", "items", "results"}

type apiGateway struct {
	BaseUrl        string
	HTTPClient     *http.Client
	Log            *zap.Logger
	RequestTimeout time.Duration

	limiter *rate.Limiter
	group   singleflight.Group

	onUnauthorized func()
}

// NewAPIGateway builds the single upstream doorway. The cookie jar is what
// carries the auth cookie; nothing token-shaped is ever stored here.
func NewAPIGateway(internalConfig *config.InternalConfig, logger *zap.Logger) contracts.APIGateway {
	jar, _ := cookiejar.New(nil)
	timeout := time.Duration(internalConfig.API.RequestTimeoutInSeconds) * time.Second
	return &apiGateway{
		BaseUrl: strings.TrimRight(internalConfig.API.BaseUrl, "/"),
		HTTPClient: &http.Client{
			Jar:     jar,
			Timeout: timeout,
		},
		Log:            logger,
		RequestTimeout: timeout,
		limiter:        rate.NewLimiter(rate.Limit(internalConfig.API.RequestsPerSecond), internalConfig.API.RequestBurst),
	}
}

func (g *apiGateway) SetUnauthorizedHandler(handler func()) {
	g.onUnauthorized = handler
}

func (g *apiGateway) FetchList(ctx context.Context, key string, params url.Values, opts *contracts.FetchOptions) ([]json.RawMessage, error) {
	if opts != nil && opts.Cancelable {
		// Cancelable fetches are never coalesced; the caller's context alone
		// decides their fate, and cancellation is not an error.
		list, err := g.fetchListOnce(ctx, key, params)
		if err != nil {
			if exceptions.IsKind(err, exceptions.KindAborted) {
				g.Log.Debug("apiGateway.FetchList aborted",
					zap.String(constvars.LoggingFetchKeyKey, key),
				)
				return nil, nil
			}
			return nil, err
		}
		return list, nil
	}

	// url.Values.Encode sorts parameters, so equivalent fetches share one
	// in-flight token. singleflight drops the token once the call settles,
	// whatever the outcome.
	flightKey := key + "?" + params.Encode()
	result, err, shared := g.group.Do(flightKey, func() (interface{}, error) {
		// Detached context: a shared call must not die with any one caller.
		callCtx, cancel := context.WithTimeout(context.Background(), g.RequestTimeout)
		defer cancel()
		return g.fetchListOnce(callCtx, key, params)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		g.Log.Debug("apiGateway.FetchList coalesced with in-flight call",
			zap.String(constvars.LoggingFetchKeyKey, flightKey),
		)
	}
	return result.([]json.RawMessage), nil
}

func (g *apiGateway) fetchListOnce(ctx context.Context, key string, params url.Values) ([]json.RawMessage, error) {
	body, err := g.do(ctx, constvars.MethodGet, key, params, nil)
	if err != nil {
		return nil, err
	}

	keys, ok := listEnvelopeKeys[key]
	if !ok {
		keys = genericEnvelopeKeys
	}
	return normalizeList(body, keys), nil
}

func (g *apiGateway) GetJSON(ctx context.Context, path string, params url.Values, out interface{}) error {
	body, err := g.do(ctx, constvars.MethodGet, path, params, nil)
	if err != nil {
		return err
	}
	return g.decodeInto(body, path, out)
}

func (g *apiGateway) PostJSON(ctx context.Context, path string, body, out interface{}) error {
	respBody, err := g.do(ctx, constvars.MethodPost, path, nil, body)
	if err != nil {
		return err
	}
	return g.decodeInto(respBody, path, out)
}

func (g *apiGateway) PutJSON(ctx context.Context, path string, body, out interface{}) error {
	respBody, err := g.do(ctx, constvars.MethodPut, path, nil, body)
	if err != nil {
		return err
	}
	return g.decodeInto(respBody, path, out)
}

func (g *apiGateway) PatchJSON(ctx context.Context, path string, body, out interface{}) error {
	respBody, err := g.do(ctx, constvars.MethodPatch, path, nil, body)
	if err != nil {
		return err
	}
	return g.decodeInto(respBody, path, out)
}

func (g *apiGateway) DeleteJSON(ctx context.Context, path string) error {
	_, err := g.do(ctx, constvars.MethodDelete, path, nil, nil)
	return err
}

// do issues one HTTP round-trip and applies the uniform status policy:
// 204 yields a nil body, 401 fires the process-wide unauthorized hook, any
// other non-2xx becomes a transport failure carrying the upstream message.
func (g *apiGateway) do(ctx context.Context, method, path string, params url.Values, body interface{}) ([]byte, error) {
	err := g.limiter.Wait(ctx)
	if err != nil {
		return nil, g.classifyContextError(err)
	}

	endpoint := g.BaseUrl + "/" + strings.TrimLeft(path, "/")
	if len(params) > 0 {
		endpoint = endpoint + "?" + params.Encode()
	}

	var reader io.Reader
	if body != nil {
		requestJSON, err := json.Marshal(body)
		if err != nil {
			return nil, exceptions.ErrCannotMarshalJSON(err)
		}
		reader = bytes.NewBuffer(requestJSON)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		g.Log.Error("apiGateway.do error creating HTTP request",
			zap.String("endpoint", endpoint),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	if body != nil {
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	}

	resp, err := g.HTTPClient.Do(req)
	if err != nil {
		if classified := g.classifyContextError(err); classified != nil {
			return nil, classified
		}
		g.Log.Error("apiGateway.do error sending HTTP request",
			zap.String("endpoint", endpoint),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, path)
	}

	switch {
	case resp.StatusCode == constvars.StatusNoContent:
		return nil, nil
	case resp.StatusCode == constvars.StatusUnauthorized:
		g.Log.Warn("apiGateway.do upstream returned 401",
			zap.String("endpoint", endpoint),
		)
		if g.onUnauthorized != nil {
			g.onUnauthorized()
		}
		return nil, exceptions.ErrUnauthorized(nil)
	case resp.StatusCode >= 300:
		message := extractErrorMessage(respBody)
		g.Log.Warn("apiGateway.do upstream rejected request",
			zap.String("endpoint", endpoint),
			zap.Int("status", resp.StatusCode),
			zap.String("upstream_message", message),
		)
		return nil, exceptions.ErrUpstreamRejected(message, resp.StatusCode)
	}

	return respBody, nil
}

func (g *apiGateway) decodeInto(body []byte, path string, out interface{}) error {
	if out == nil || len(body) == 0 {
		return nil
	}
	err := json.Unmarshal(body, out)
	if err != nil {
		return exceptions.ErrDecodeResponse(err, path)
	}
	return nil
}

func (g *apiGateway) classifyContextError(err error) error {
	// url.Error unwraps to the context error on client-side aborts.
	switch {
	case errors.Is(err, context.Canceled):
		return exceptions.ErrRequestAborted(err)
	case errors.Is(err, context.DeadlineExceeded):
		return exceptions.ErrServerDeadlineExceeded(err)
	}
	return nil
}

// normalizeList folds the upstream's historical list envelopes into one
// ordered sequence: a bare array, or an object exposing the array under one
// of the accepted property names. Anything else normalizes to empty.
func normalizeList(body []byte, envelopeKeys []string) []json.RawMessage {
	if len(body) == 0 {
		return []json.RawMessage{}
	}

	var bare []json.RawMessage
	if err := json.Unmarshal(body, &bare); err == nil {
		return bare
	}

	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal(body, &wrapper); err != nil {
		return []json.RawMessage{}
	}
	for _, key := range envelopeKeys {
		raw, ok := wrapper[key]
		if !ok {
			continue
		}
		var list []json.RawMessage
		if err := json.Unmarshal(raw, &list); err == nil {
			return list
		}
	}
	return []json.RawMessage{}
}

func extractErrorMessage(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	var upstreamErr responses.UpstreamError
	if err := json.Unmarshal(body, &upstreamErr); err == nil {
		if upstreamErr.Message != "" {
			return upstreamErr.Message
		}
		if upstreamErr.Error != "" {
			return upstreamErr.Error
		}
		return ""
	}
	return strings.TrimSpace(string(body))
}
