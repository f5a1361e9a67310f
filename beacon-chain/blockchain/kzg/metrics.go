package kzg

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultValid   = "valid"
	resultInvalid = "invalid"
	resultError   = "error"
)

var (
	verificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "blob_kzg_verifications_total",
		Help: "The number of blob KZG verifications, by operation and result",
	}, []string{"op", "result"})
	verificationLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "blob_kzg_verification_milliseconds",
		Help:    "Time spent verifying blob KZG proofs, by operation",
		Buckets: []float64{1, 2, 5, 10, 20, 50, 100, 200, 500, 1000},
	}, []string{"op"})
	misalignedBatchesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "blob_kzg_misaligned_batches_total",
		Help: "The number of blob batches rejected because commitments, blobs and proofs were not aligned",
	})
	batchSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "blob_kzg_batch_size",
		Help:    "The number of triplets in verified blob batches",
		Buckets: []float64{0, 1, 2, 3, 4, 5, 6, 8, 16},
	})
)

func recordVerification(op string, ok bool, err error) {
	result := resultValid
	switch {
	case err != nil:
		result = resultError
	case !ok:
		result = resultInvalid
	}
	verificationsTotal.WithLabelValues(op, result).Inc()
}
