package telemetry

// ComposeStart logs a Compose invocation beginning, carrying its runID so
// every sub-checker line that follows can be correlated back to it, at
// Informational level.
func ComposeStart(l *Logger, runID string, subCheckers int) {
	if l == nil {
		l = Default
	}
	l.Info().Str("run_id", runID).Int("checkers", subCheckers).Log("compose start")
}

// ComposeStop logs a Compose invocation's overall verdict, at Informational
// level.
func ComposeStop(l *Logger, runID string, valid bool) {
	if l == nil {
		l = Default
	}
	l.Info().Str("run_id", runID).Bool("valid", valid).Log("compose stop")
}

// CheckerStart logs a sub-checker beginning, at Debug level.
func CheckerStart(l *Logger, name string) {
	if l == nil {
		l = Default
	}
	l.Debug().Str("checker", name).Log("checker start")
}

// CheckerStop logs a sub-checker finishing, at Debug level.
func CheckerStop(l *Logger, name string, valid bool) {
	if l == nil {
		l = Default
	}
	l.Debug().Str("checker", name).Bool("valid", valid).Log("checker stop")
}

// CheckerTimeout logs a sub-checker that did not finish before the shared
// deadline, at Warn level.
func CheckerTimeout(l *Logger, name string) {
	if l == nil {
		l = Default
	}
	l.Warning().Str("checker", name).Log("checker timeout")
}

// CheckerError logs a sub-checker that returned an error, degrading the
// composed result to Unknown locally rather than propagating, at Warn level.
func CheckerError(l *Logger, name string, err error) {
	if l == nil {
		l = Default
	}
	l.Warning().Str("checker", name).Err(err).Log("checker error, degrading to unknown")
}
