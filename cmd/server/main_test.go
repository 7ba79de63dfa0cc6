package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleShading(t *testing.T) {
	t.Run("below onset", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handleShading(rec, httptest.NewRequest(http.MethodGet, "/shading?density=0.2", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		var resp shadingResp
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, 1.0, resp.Factor)
	})

	t.Run("invalid density", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handleShading(rec, httptest.NewRequest(http.MethodGet, "/shading?density=-1", nil))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		var resp shadingResp
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.NotEmpty(t, resp.Err)
	})

	t.Run("missing param", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handleShading(rec, httptest.NewRequest(http.MethodGet, "/shading", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandleCalibrate(t *testing.T) {
	calibrate := func(t *testing.T, target string) calibrateResp {
		t.Helper()
		rec := httptest.NewRecorder()
		handleCalibrate(rec, httptest.NewRequest(http.MethodGet, target, nil))
		require.Equal(t, http.StatusOK, rec.Code)
		var resp calibrateResp
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		return resp
	}

	t.Run("productive configuration", func(t *testing.T) {
		resp := calibrate(t, "/calibrate?fraction=0.5&optimal=5")
		assert.True(t, resp.Productive)
		assert.Greater(t, resp.Productivity, 0.0)
	})

	t.Run("harvest loss lowers the yield", func(t *testing.T) {
		lossless := calibrate(t, "/calibrate?fraction=0.5&optimal=5")
		lossy := calibrate(t, "/calibrate?fraction=0.5&optimal=5&loss=20")
		require.True(t, lossy.Productive)
		assert.InEpsilon(t, lossless.Productivity*0.8, lossy.Productivity, 1e-9)
	})
}

func TestHandleSimulate(t *testing.T) {
	t.Run("unit run", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handleSimulate(rec, httptest.NewRequest(http.MethodGet,
			"/simulate?initial_seaweed=1&initial_area_built=1&initial_area_used=1"+
				"&min_density=1200&max_density=3600&max_area=1&optimal_growth_rate=5"+
				"&fraction=0.5&days=500", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		var resp simulateResp
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Len(t, resp.Records, 500)
		assert.Greater(t, resp.Stats.Harvests, 0)
	})

	t.Run("config errors surface as 400", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handleSimulate(rec, httptest.NewRequest(http.MethodGet,
			"/simulate?initial_seaweed=1&initial_area_built=1&initial_area_used=1"+
				"&min_density=1200&max_density=3600&max_area=1&optimal_growth_rate=5"+
				"&fraction=0.5&days=500&harvest_loss=150", nil))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		var resp simulateResp
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Contains(t, resp.Err, "harvest loss")
	})

	t.Run("missing required param", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handleSimulate(rec, httptest.NewRequest(http.MethodGet, "/simulate?fraction=0.5&days=10", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
