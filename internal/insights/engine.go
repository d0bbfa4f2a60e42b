package insights

// Engine runs all registered rules against a Context and collects the
// resulting insights.
type Engine struct {
	rules []Rule
}

// NewEngine creates an engine with all built-in rules registered.
func NewEngine() *Engine {
	return &Engine{
		rules: []Rule{
			PoorComponents,
			DecliningTrend,
			MissingCoreMetrics,
			LowConsistency,
		},
	}
}

// Run executes all registered rules against the given context and returns
// the collected insights sorted by impact score (highest first).
func (e *Engine) Run(ctx *Context) []Insight {
	var all []Insight
	for _, rule := range e.rules {
		all = append(all, rule(ctx)...)
	}
	return Rank(all)
}
