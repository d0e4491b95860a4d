package almanac

// Pipeline applies its stages in order; each stage's output values are the
// next stage's input.
type Pipeline struct {
	stages []Stage
}

// Step is the value reached after one stage of a trace
type Step struct {
	Category string
	Value    int64
}

// NewPipeline builds a pipeline from stages in application order
func NewPipeline(stages ...Stage) Pipeline {
	copied := make([]Stage, len(stages))
	copy(copied, stages)
	return Pipeline{stages: copied}
}

// Stages returns the stages in application order
func (p Pipeline) Stages() []Stage {
	stages := make([]Stage, len(p.stages))
	copy(stages, p.stages)
	return stages
}

// Len returns the number of stages
func (p Pipeline) Len() int {
	return len(p.stages)
}

// MapPoint pushes n through every stage
func (p Pipeline) MapPoint(n int64) int64 {
	for _, stage := range p.stages {
		n = stage.MapPoint(n)
	}
	return n
}

// MapRanges pushes every range through every stage. Within a stage the
// fragments keep the order of the ranges they came from. Empty input ranges
// are dropped.
func (p Pipeline) MapRanges(ranges []Range) []Range {
	current := make([]Range, 0, len(ranges))
	for _, r := range ranges {
		if !r.IsEmpty() {
			current = append(current, r)
		}
	}

	for _, stage := range p.stages {
		next := make([]Range, 0, len(current))
		for _, r := range current {
			next = append(next, stage.MapRange(r)...)
		}
		current = next
	}
	return current
}

// Trace records the value of n after each stage. The first step is n itself,
// labelled with the first stage's source category.
func (p Pipeline) Trace(n int64) []Step {
	if len(p.stages) == 0 {
		return []Step{{Value: n}}
	}

	steps := make([]Step, 0, len(p.stages)+1)
	steps = append(steps, Step{Category: p.stages[0].Source, Value: n})
	for _, stage := range p.stages {
		n = stage.MapPoint(n)
		steps = append(steps, Step{Category: stage.Target, Value: n})
	}
	return steps
}
