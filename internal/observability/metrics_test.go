package observability

import (
	"context"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rayScope/internal/chain/stub"
	"rayScope/internal/model"
)

func TestRecordQuery(t *testing.T) {
	m := NewMetrics("")
	m.RecordQuery(model.KindCLMM, 20*time.Millisecond, nil)
	m.RecordQuery(model.KindCLMM, 20*time.Millisecond, errors.New("boom"))
	m.RecordWarning(model.KindCLMM)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.QueriesTotal.WithLabelValues("clmm", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.QueriesTotal.WithLabelValues("clmm", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.WarningsTotal.WithLabelValues("clmm")))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	m.RecordQuery(model.KindV4, time.Second, nil)
	m.RecordWarning(model.KindV4)
	m.SetPrice("addr", model.KindV4, 1)
	m.RecordSnapshots(3)
	m.RecordRPC("account_data", time.Second, nil)
}

func TestInstrumentClientRecordsFailures(t *testing.T) {
	m := NewMetrics("test")
	client := InstrumentClient(stub.NewClient(), m)

	var missing [32]byte
	_, err := client.AccountData(context.Background(), missing)
	require.Error(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.RPCErrorsTotal.WithLabelValues("account_data", "not_found")))
}

func TestHandlerServesRegistry(t *testing.T) {
	m := NewMetrics("rayscope")
	m.SetPrice("pool1", model.KindV4, 50)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	require.Equal(t, 200, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `rayscope_pool_price{address="pool1",kind="v4"} 50`))
}
