package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestIncrementSubmission(t *testing.T) {
	before := testutil.ToFloat64(SubmissionCount.WithLabelValues(ResultInvalid))

	IncrementSubmission(ResultInvalid)
	IncrementSubmission(ResultInvalid)

	assert.Equal(t, before+2, testutil.ToFloat64(SubmissionCount.WithLabelValues(ResultInvalid)))
}

func TestRecordUpstreamCall_StatusLabel(t *testing.T) {
	RecordUpstreamCall("metrics_test", nil, 10*time.Millisecond)
	RecordUpstreamCall("metrics_test", errors.New("boom"), 20*time.Millisecond)

	// one series per status label
	assert.Equal(t, 2, testutil.CollectAndCount(UpstreamCallDuration, "contact_upstream_duration_seconds"))
}
