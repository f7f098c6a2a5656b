// Package status holds the simulation's named counters
// Systems fetch their counters once at construction and bump them every tick;
// the snapshot feed and the exit log read them concurrently
package status

import "sync/atomic"

// Registry is the counter facade shared by systems, the feed and the entrypoint
type Registry struct {
	Ints *MetricMap[atomic.Int64]
}

func NewRegistry() *Registry {
	return &Registry{Ints: NewMetricMap[atomic.Int64]()}
}

// Snapshot copies every counter into a flat map
func (r *Registry) Snapshot() map[string]int64 {
	out := make(map[string]int64, r.Ints.Count())
	r.Ints.Range(func(name string, v *atomic.Int64) {
		out[name] = v.Load()
	})
	return out
}
