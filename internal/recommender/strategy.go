package recommender

// Strategy is the closed set of ranking algorithms. It is always passed
// explicitly; nothing in the engine reads an ambient "current strategy".
type Strategy string

const (
	// StrategyRandom uniformly samples the unknown pool.
	StrategyRandom Strategy = "random"
	// StrategyTopPopularity ranks by rating weighted with log review volume.
	StrategyTopPopularity Strategy = "top_n"
	// StrategyPairs ranks by co-rated counts, falling back to popularity
	// for users with no positive history.
	StrategyPairs Strategy = "pairs"
)

// ParseStrategy maps a configuration value to a Strategy. Unknown or empty
// names resolve to StrategyRandom; a bad preference is never an error.
func ParseStrategy(name string) Strategy {
	switch Strategy(name) {
	case StrategyTopPopularity:
		return StrategyTopPopularity
	case StrategyPairs:
		return StrategyPairs
	default:
		return StrategyRandom
	}
}

// Strategies lists every valid strategy, for presentation layers that
// enumerate the options.
func Strategies() []Strategy {
	return []Strategy{StrategyRandom, StrategyTopPopularity, StrategyPairs}
}

func (s Strategy) String() string {
	return string(s)
}
