package config

// evalConfiguration holds the EVAL_NORMAL feature weights and the debug
// pointtable opt-in. evaluator.EvalNormal reads these fields directly
// (via config.Settings.Eval) so a tuning run can override them from
// config.toml without recompiling, the way the teacher exposes eval
// weights for its own heuristic. UseDebugPointTable redirects
// evaluator.Evaluate's Normal case to EVAL_BY_POINTTABLE when set.
type evalConfiguration struct {
	StableWeight   int
	WingWeight     int
	XMoveWeight    int
	CMoveWeight    int
	MobilityWeight int
	OpennessWeight int

	// UseDebugPointTable opts into EVAL_BY_POINTTABLE. Always false in
	// production; the phase selector never sets this itself.
	UseDebugPointTable bool
}

func defaultEvalConfiguration() evalConfiguration {
	return evalConfiguration{
		StableWeight:   101,
		WingWeight:     -308,
		XMoveWeight:    -449,
		CMoveWeight:    -552,
		MobilityWeight: 134,
		OpennessWeight: -13,
	}
}
