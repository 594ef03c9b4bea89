package game

// Logger is the structured logging surface the engine needs. It is satisfied
// by *zap.SugaredLogger.
type Logger interface {
	Debugw(msg string, keysAndValues ...any)
	Infow(msg string, keysAndValues ...any)
}

// Source is the random source used for every probabilistic roll. It is
// satisfied by *rand.Rand.
type Source interface {
	Intn(n int) int
	Float64() float64
}
