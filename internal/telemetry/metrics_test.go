package telemetry

import (
	"net/http/httptest"
	"testing"

	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uma-logic-user/uma-logic-sub000/internal/backtest"
)

func counterValue(t *testing.T, families []*dto.MetricFamily, name, labelValue string) float64 {
	t.Helper()
	for _, family := range families {
		if family.GetName() != name {
			continue
		}
		for _, metric := range family.GetMetric() {
			if labelValue == "" {
				return metric.GetCounter().GetValue()
			}
			for _, label := range metric.GetLabel() {
				if label.GetValue() == labelValue {
					return metric.GetCounter().GetValue()
				}
			}
		}
	}
	t.Fatalf("metric %s{%s} not found", name, labelValue)
	return 0
}

func TestRegistry_RecordBacktest(t *testing.T) {
	r := NewRegistry()

	r.RecordBacktest(backtest.Metrics{
		TotalRaces:   10,
		Hits:         3,
		SkippedRaces: 2,
		RecoveryRate: 0.85,
	})

	families, err := r.Gather().Gather()
	require.NoError(t, err)

	assert.Equal(t, 3.0, counterValue(t, families, "umalogic_backtest_races_total", "hit"))
	assert.Equal(t, 7.0, counterValue(t, families, "umalogic_backtest_races_total", "miss"))
	assert.Equal(t, 2.0, counterValue(t, families, "umalogic_backtest_races_total", "skipped"))
}

func TestRegistry_RecordEvaluation(t *testing.T) {
	r := NewRegistry()

	r.RecordEvaluation(0.4, true)
	r.RecordEvaluation(0.2, false)
	r.RecordEvaluation(0.9, true)

	families, err := r.Gather().Gather()
	require.NoError(t, err)

	assert.Equal(t, 3.0, counterValue(t, families, "umalogic_optimizer_evaluations_total", ""))

	for _, family := range families {
		if family.GetName() == "umalogic_optimizer_best_recovery_rate" {
			assert.Equal(t, 0.9, family.GetMetric()[0].GetGauge().GetValue())
		}
	}
}

func TestServer_Endpoints(t *testing.T) {
	r := NewRegistry()
	server := NewServer(":0", r)

	health := httptest.NewRequest("GET", "/health", nil)
	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, health)
	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)

	metrics := httptest.NewRequest("GET", "/metrics", nil)
	rec = httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, metrics)
	assert.Equal(t, 200, rec.Code)
}
