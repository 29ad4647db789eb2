package readcost

import "errors"

// ErrOutOfDomain is returned whenever an argument falls outside the domain
// of the model: a zero forest size, a rank outside [1, n], a shift of 64
// or more, or a zero argument to the log helpers. Every failure is a
// deterministic function of the inputs, so a single sentinel is enough;
// call sites wrap it with context.
var ErrOutOfDomain = errors.New("argument out of domain")
