// Package sweep memoizes expensive evaluations across a parameter sweep.
//
// A sweep over candidate configurations frequently revisits the same key
// (same motor, propeller and battery at the same operating point). Memo
// guarantees each key is evaluated at most once, even when many goroutines
// request it at the same time:
//
//	memo := sweep.New[*propulsion.Report]()
//	report, err := memo.Get(sweep.Key(motor, prop, v), func() (*propulsion.Report, error) {
//	    return model.Analyze(v, target)
//	})
package sweep
