package ml

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"cardioguard/internal/survey"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClientRejectsBadEndpoint(t *testing.T) {
	_, err := NewHTTPClient("not a url")
	assert.Error(t, err)
}

func TestPredictSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var payload survey.Payload
		err := json.NewDecoder(r.Body).Decode(&payload)
		assert.NoError(t, err)
		assert.Equal(t, 50, payload.Age)

		json.NewEncoder(w).Encode(RiskResult{
			RiskLevel:   "Medium",
			Probability: 42.3,
			Factors:     []string{"BMI"},
		})
	}))
	defer server.Close()

	client, err := NewHTTPClient(server.URL)
	require.NoError(t, err)
	defer client.Close()

	payload := survey.BuildPayload(survey.Input{})
	result, err := client.Predict(context.Background(), &payload)

	require.NoError(t, err)
	assert.Equal(t, "Medium", result.RiskLevel)
	assert.Equal(t, 42.3, result.Probability)
	assert.Equal(t, []string{"BMI"}, result.Factors)
}

func TestPredictServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"model not loaded"}`))
	}))
	defer server.Close()

	client, err := NewHTTPClient(server.URL)
	require.NoError(t, err)

	payload := survey.BuildPayload(survey.Input{})
	_, err = client.Predict(context.Background(), &payload)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, `{"error":"model not loaded"}`, apiErr.Body)
	assert.Equal(t, "API request failed with status code: 500", apiErr.Error())
}

func TestPredictTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client, err := NewHTTPClient(server.URL)
	require.NoError(t, err)

	payload := survey.BuildPayload(survey.Input{})
	_, err = client.Predict(context.Background(), &payload)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "API request failed:")

	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
}

func TestPredictMalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer server.Close()

	client, err := NewHTTPClient(server.URL)
	require.NoError(t, err)

	payload := survey.BuildPayload(survey.Input{})
	_, err = client.Predict(context.Background(), &payload)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid response from prediction service")
}

func TestHealthCheck(t *testing.T) {
	t.Run("any response counts as healthy", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client, err := NewHTTPClient(server.URL + "/predict")
		require.NoError(t, err)

		assert.NoError(t, client.HealthCheck(context.Background()))
	})

	t.Run("unreachable host fails", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		client, err := NewHTTPClient(server.URL + "/predict")
		require.NoError(t, err)

		assert.Error(t, client.HealthCheck(context.Background()))
	})
}
