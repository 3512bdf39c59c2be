package forth

// Option customizes an Interpreter created by New.
type Option interface{ apply(it *Interpreter) }

// Options combines zero or more options into one.
func Options(opts ...Option) Option {
	var res options
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil:
		case options:
			res = append(res, impl...)
		default:
			res = append(res, impl)
		}
	}
	if len(res) == 1 {
		return res[0]
	}
	return res
}

type options []Option

func (opts options) apply(it *Interpreter) {
	for _, opt := range opts {
		opt.apply(it)
	}
}

// WithLogf enables trace logging of each top-level word call and definition.
func WithLogf(logfn func(mess string, args ...interface{})) Option { return withLogfn(logfn) }

// WithStack pushes values onto the initial stack.
func WithStack(values ...int) Option { return withStack(values) }

// WithWords uses ws as the dictionary instead of a fresh builtin one.
func WithWords(ws *Words) Option { return withWords{ws} }

type withLogfn func(mess string, args ...interface{})
type withStack []int
type withWords struct{ *Words }

func (logfn withLogfn) apply(it *Interpreter) { it.logfn = logfn }
func (vals withStack) apply(it *Interpreter)  { it.stack.Push(vals...) }
func (ws withWords) apply(it *Interpreter)    { it.words = ws.Words }
