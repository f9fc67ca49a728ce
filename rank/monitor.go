package rank

import "github.com/poiesic/wayfind/core"

// PipelineMonitor provides hooks to observe the constraint filter pipeline.
// Implement this interface to track intermediate candidate counts as stages run.
type PipelineMonitor interface {
	Start(filters core.FilterSet, candidates int)
	AfterCityStage(remaining int)
	AfterBudgetStage(mean, std float64, remaining int)
	AfterResortStage(key core.FilterKey, candidates int)
	Finish(results []*core.Record)
}

// noopMonitor is a no-op implementation of PipelineMonitor
type noopMonitor struct{}

var _ PipelineMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ core.FilterSet, _ int)               {}
func (n *noopMonitor) AfterCityStage(_ int)                        {}
func (n *noopMonitor) AfterBudgetStage(_, _ float64, _ int)        {}
func (n *noopMonitor) AfterResortStage(_ core.FilterKey, _ int)    {}
func (n *noopMonitor) Finish(_ []*core.Record)                     {}
