package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordGeneration(t *testing.T) {
	before := testutil.ToFloat64(GenerationTotal.WithLabelValues(OutcomeMissingFields))
	RecordGeneration(OutcomeMissingFields)
	after := testutil.ToFloat64(GenerationTotal.WithLabelValues(OutcomeMissingFields))
	assert.Equal(t, before+1, after)
}

func TestRecordProviderCall(t *testing.T) {
	okBefore := testutil.ToFloat64(ProviderCallTotal.WithLabelValues("test", "m", OutcomeSuccess))
	errBefore := testutil.ToFloat64(ProviderCallTotal.WithLabelValues("test", "m", OutcomeProviderError))

	RecordProviderCall("test", "m", 20*time.Millisecond, nil)
	RecordProviderCall("test", "m", 30*time.Millisecond, errors.New("quota"))

	assert.Equal(t, okBefore+1, testutil.ToFloat64(ProviderCallTotal.WithLabelValues("test", "m", OutcomeSuccess)))
	assert.Equal(t, errBefore+1, testutil.ToFloat64(ProviderCallTotal.WithLabelValues("test", "m", OutcomeProviderError)))
}
