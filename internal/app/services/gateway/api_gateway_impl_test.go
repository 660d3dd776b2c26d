package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"clinidash-core/internal/app/config"
	"clinidash-core/internal/app/contracts"
	"clinidash-core/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestGateway(baseUrl string) contracts.APIGateway {
	internalConfig := &config.InternalConfig{
		API: config.API{
			BaseUrl:                 baseUrl,
			RequestTimeoutInSeconds: 5,
			RequestsPerSecond:       1000,
			RequestBurst:            1000,
		},
	}
	return NewAPIGateway(internalConfig, zap.NewNop())
}

func TestFetchListDeduplication(t *testing.T) {
	t.Run("Concurrent Identical Fetches Share One Call", func(t *testing.T) {
		var calls int64
		release := make(chan struct{})
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt64(&calls, 1)
			<-release
			w.Write([]byte(`{"patients":[{"id_paciente":1},{"id_paciente":2}]}`))
		}))
		defer server.Close()

		apiGateway := newTestGateway(server.URL)
		params := url.Values{}
		params.Set("estado", "activo")

		var wg sync.WaitGroup
		results := make([][]int, 10)
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func(slot int) {
				defer wg.Done()
				list, err := apiGateway.FetchList(context.Background(), "patients", params, nil)
				assert.NoError(t, err, "shared fetch should succeed")
				results[slot] = []int{len(list)}
			}(i)
		}

		time.Sleep(50 * time.Millisecond)
		close(release)
		wg.Wait()

		assert.Equal(t, int64(1), atomic.LoadInt64(&calls), "identical concurrent fetches should share one network call")
		for _, result := range results {
			assert.Equal(t, []int{2}, result, "every caller should receive the shared result")
		}
	})

	t.Run("Equivalent Parameter Order Shares The Flight", func(t *testing.T) {
		var calls int64
		release := make(chan struct{})
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt64(&calls, 1)
			<-release
			w.Write([]byte(`[]`))
		}))
		defer server.Close()

		apiGateway := newTestGateway(server.URL)

		first := url.Values{}
		first.Set("a", "1")
		first.Set("b", "2")
		second := url.Values{}
		second.Set("b", "2")
		second.Set("a", "1")

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			apiGateway.FetchList(context.Background(), "patients", first, nil)
		}()
		go func() {
			defer wg.Done()
			apiGateway.FetchList(context.Background(), "patients", second, nil)
		}()

		time.Sleep(50 * time.Millisecond)
		close(release)
		wg.Wait()

		assert.Equal(t, int64(1), atomic.LoadInt64(&calls), "parameter order should not defeat deduplication")
	})

	t.Run("Sequential Fetches Each Hit The Network", func(t *testing.T) {
		var calls int64
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt64(&calls, 1)
			w.Write([]byte(`[]`))
		}))
		defer server.Close()

		apiGateway := newTestGateway(server.URL)

		for i := 0; i < 3; i++ {
			_, err := apiGateway.FetchList(context.Background(), "patients", nil, nil)
			assert.NoError(t, err)
		}

		assert.Equal(t, int64(3), atomic.LoadInt64(&calls), "a settled flight should not be reused")
	})
}

func TestFetchListCancelable(t *testing.T) {
	t.Run("Abort Yields Nil Without Error", func(t *testing.T) {
		started := make(chan struct{})
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			close(started)
			<-r.Context().Done()
		}))
		defer server.Close()

		apiGateway := newTestGateway(server.URL)
		ctx, cancel := context.WithCancel(context.Background())

		type fetchResult struct {
			list []json.RawMessage
			err  error
		}
		done := make(chan fetchResult, 1)
		go func() {
			list, err := apiGateway.FetchList(ctx, "patients", nil, &contracts.FetchOptions{Cancelable: true})
			done <- fetchResult{list: list, err: err}
		}()

		<-started
		cancel()
		result := <-done

		assert.NoError(t, result.err, "cancellation is not an error")
		assert.Nil(t, result.list, "aborted fetch should yield a nil list")
	})

	t.Run("Abort Does Not Touch Concurrent Shared Fetch", func(t *testing.T) {
		var sharedStarted sync.WaitGroup
		sharedStarted.Add(1)
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Get("shared") == "true" {
				sharedStarted.Done()
				time.Sleep(100 * time.Millisecond)
				w.Write([]byte(`[{"id_plan":1}]`))
				return
			}
			<-r.Context().Done()
		}))
		defer server.Close()

		apiGateway := newTestGateway(server.URL)

		sharedParams := url.Values{}
		sharedParams.Set("shared", "true")
		sharedDone := make(chan []int, 1)
		go func() {
			list, err := apiGateway.FetchList(context.Background(), "planes", sharedParams, nil)
			assert.NoError(t, err, "shared fetch should survive a concurrent abort")
			sharedDone <- []int{len(list)}
		}()

		sharedStarted.Wait()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		list, err := apiGateway.FetchList(ctx, "planes", nil, &contracts.FetchOptions{Cancelable: true})
		assert.NoError(t, err)
		assert.Nil(t, list)

		assert.Equal(t, []int{1}, <-sharedDone, "shared fetch result should be unaffected")
	})
}

func TestFetchListNormalization(t *testing.T) {
	testCases := []struct {
		name     string
		key      string
		body     string
		expected int
	}{
		{"Bare Array", "patients", `[{"id_paciente":1},{"id_paciente":2}]`, 2},
		{"Patients Envelope", "patients", `{"patients":[{"id_paciente":1}]}`, 1},
		{"Pacientes Envelope", "patients", `{"pacientes":[{"id_paciente":1}]}`, 1},
		{"Data Envelope", "patients", `{"data":[{"id_paciente":1}]}`, 1},
		{"Plans Envelope", "planes", `{"planes":[{"id_plan":1},{"id_plan":2},{"id_plan":3}]}`, 3},
		{"Records Envelope", "historia", `{"historias":[{"id_registro":4}]}`, 1},
		{"Unrecognized Shape", "patients", `{"total":12}`, 0},
		{"Scalar Body", "patients", `42`, 0},
		{"Empty Array", "patients", `[]`, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tc.body))
			}))
			defer server.Close()

			apiGateway := newTestGateway(server.URL)
			list, err := apiGateway.FetchList(context.Background(), tc.key, nil, nil)

			assert.NoError(t, err, "normalization should never fail")
			assert.NotNil(t, list, "a completed fetch always yields a list")
			assert.Len(t, list, tc.expected)
		})
	}
}

func TestGatewayStatusPolicy(t *testing.T) {
	t.Run("Unauthorized Fires Hook Once Per Response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		apiGateway := newTestGateway(server.URL)
		var fired int
		apiGateway.SetUnauthorizedHandler(func() { fired++ })

		err := apiGateway.GetJSON(context.Background(), "profile", nil, nil)
		assert.Error(t, err)
		assert.True(t, exceptions.IsKind(err, exceptions.KindUnauthorized), "401 should map to the unauthorized kind")
		assert.Equal(t, 1, fired, "hook should fire exactly once per 401 response")
	})

	t.Run("No Content Yields Empty Result", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		apiGateway := newTestGateway(server.URL)
		out := map[string]interface{}{}
		err := apiGateway.GetJSON(context.Background(), "profile", nil, &out)

		assert.NoError(t, err, "204 is a success")
		assert.Empty(t, out, "204 should not touch the output")
	})

	t.Run("Upstream Message Is Carried", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
			w.Write([]byte(`{"message":"el paciente ya existe"}`))
		}))
		defer server.Close()

		apiGateway := newTestGateway(server.URL)
		err := apiGateway.PostJSON(context.Background(), "patients", map[string]string{"nombre": "Ana"}, nil)

		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok, "rejections should be structured errors")
		assert.Equal(t, "el paciente ya existe", customErr.ClientMessage)
		assert.Equal(t, http.StatusConflict, customErr.StatusCode)
	})

	t.Run("Plain Text Error Body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte("  upstream exploded  "))
		}))
		defer server.Close()

		apiGateway := newTestGateway(server.URL)
		err := apiGateway.DeleteJSON(context.Background(), "patients/9")

		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, "upstream exploded", customErr.ClientMessage, "raw bodies should be trimmed")
	})
}

func TestNormalizeList(t *testing.T) {
	t.Run("Empty Body", func(t *testing.T) {
		list := normalizeList(nil, genericEnvelopeKeys)
		assert.NotNil(t, list)
		assert.Empty(t, list)
	})

	t.Run("First Matching Envelope Key Wins", func(t *testing.T) {
		body := []byte(`{"data":[1,2],"items":[1]}`)
		list := normalizeList(body, genericEnvelopeKeys)
		assert.Len(t, list, 2, "keys should be probed in declared order")
	})

	t.Run("Non Array Envelope Value Is Skipped", func(t *testing.T) {
		body := []byte(`{"data":"nope","items":[1]}`)
		list := normalizeList(body, genericEnvelopeKeys)
		assert.Len(t, list, 1, "a non-array value should fall through to the next key")
	})
}

func TestExtractErrorMessage(t *testing.T) {
	t.Run("Message Field", func(t *testing.T) {
		assert.Equal(t, "boom", extractErrorMessage([]byte(`{"message":"boom"}`)))
	})
	t.Run("Error Field Fallback", func(t *testing.T) {
		assert.Equal(t, "bad", extractErrorMessage([]byte(`{"error":"bad"}`)))
	})
	t.Run("Empty Body", func(t *testing.T) {
		assert.Equal(t, "", extractErrorMessage(nil))
	})
}
