package prometheus

import "github.com/prometheus/client_golang/prometheus"

func (r *Reporter) Operations() *prometheus.CounterVec {
	return r.operations
}

func (r *Reporter) Messages() *prometheus.CounterVec {
	return r.messages
}
