package backtrack

// Collector keeps a cloned copy of every solution it receives.
type Collector struct {
	solutions [][]int
}

// Collect returns an empty Collector.
func Collect() *Collector { return &Collector{} }

// Sink is the Collector's Sink; pass c.Sink to Search.
func (c *Collector) Sink(a Assignment) {
	c.solutions = append(c.solutions, a.Clone())
}

// Solutions returns the collected solutions in discovery order.
func (c *Collector) Solutions() [][]int { return c.solutions }

// Len is the number of collected solutions.
func (c *Collector) Len() int { return len(c.solutions) }

// Count returns a Sink that increments *n per solution.
func Count(n *int) Sink {
	return func(Assignment) { *n++ }
}

// Discard ignores every solution; Result.Stats still counts them.
func Discard(Assignment) {}

// Tee fans one solution out to several sinks in order.
func Tee(sinks ...Sink) Sink {
	return func(a Assignment) {
		for _, s := range sinks {
			s(a)
		}
	}
}
