package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoodEnergyServicePredict(t *testing.T) {
	t.Run("should post the nutrition profile and decode predictions", func(t *testing.T) {
		var gotPath string
		var gotBody map[string]map[string]float64

		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"mood":   {"label": "happy", "score": 0.9, "confidence": 0.85},
				"energy": {"label": "high", "score": 0.8, "confidence": 0.7}
			}`))
		}))
		defer ts.Close()

		svc := NewMoodEnergyService(ts.URL, 2*time.Second, nil)
		mood, energy, err := svc.Predict(context.Background(), map[string]float64{
			"calories":  520,
			"protein_g": 32,
		})

		require.NoError(t, err)
		assert.Equal(t, "/api/ml/predict-mood-energy", gotPath)
		assert.Equal(t, map[string]float64{"calories": 520, "protein_g": 32}, gotBody["nutrition"])

		require.NotNil(t, mood)
		assert.Equal(t, "happy", mood.Label)
		assert.InDelta(t, 0.9, mood.Score, 1e-9)
		assert.InDelta(t, 0.85, mood.Confidence, 1e-9)

		require.NotNil(t, energy)
		assert.Equal(t, "high", energy.Label)
	})

	t.Run("should pass through nil predictions when the model declines", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"mood": null, "energy": null}`))
		}))
		defer ts.Close()

		svc := NewMoodEnergyService(ts.URL, 2*time.Second, nil)
		mood, energy, err := svc.Predict(context.Background(), map[string]float64{"calories": 400})

		require.NoError(t, err)
		assert.Nil(t, mood)
		assert.Nil(t, energy)
	})

	t.Run("should return an error for non-200 responses", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "model not loaded", http.StatusServiceUnavailable)
		}))
		defer ts.Close()

		svc := NewMoodEnergyService(ts.URL, 2*time.Second, nil)
		_, _, err := svc.Predict(context.Background(), map[string]float64{"calories": 400})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "503")
		assert.Contains(t, err.Error(), "model not loaded")
	})

	t.Run("should return an error when the server is unreachable", func(t *testing.T) {
		svc := NewMoodEnergyService("http://127.0.0.1:1", time.Second, nil)
		_, _, err := svc.Predict(context.Background(), map[string]float64{"calories": 400})

		assert.Error(t, err)
	})

	t.Run("should return an error for malformed responses", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not json"))
		}))
		defer ts.Close()

		svc := NewMoodEnergyService(ts.URL, 2*time.Second, nil)
		_, _, err := svc.Predict(context.Background(), map[string]float64{"calories": 400})

		assert.Error(t, err)
	})
}
