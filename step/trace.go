package step

// Steppable is the contract shared by every engine: list-of-steps semantics
// with a cursor, lazy recomputation on first read, and invalidation on input
// mutation. Boundary violations are no-ops rather than panics so a UI layer
// never needs recovery logic to stay responsive.
type Steppable interface {
	ComputeSteps() []Step
	StepCount() int
	CurrentStep() *Step
	CurrentIndex() int
	SetStep(i int) bool
	NextStep() bool
	PrevStep() bool
	CanGoNext() bool
	CanGoPrev() bool
	Clear()
}

// Trace owns the materialized step list and cursor for one engine. Engines
// embed it and point rebuild at their own compute function; every input
// mutation calls Invalidate, and the next read recomputes from scratch.
//
// If the rebuild panics with an EngineError (an internal invariant tripped by
// degenerate input), the trace collapses to a single diagnostic step rather
// than propagating the panic.
type Trace struct {
	steps   []Step
	cursor  int
	built   bool
	rebuild func(*Builder)
}

// Init sets the rebuild hook. Engines call this once, in their constructor.
func (tr *Trace) Init(rebuild func(*Builder)) {
	tr.rebuild = rebuild
}

// Invalidate discards the derived steps and resets the cursor. Input
// collections are untouched.
func (tr *Trace) Invalidate() {
	tr.steps = nil
	tr.cursor = 0
	tr.built = false
}

func (tr *Trace) ensure() {
	if tr.built || tr.rebuild == nil {
		return
	}
	builder := &Builder{}
	err := func() (err error) {
		defer func() {
			err = RecoverEngineError(recover())
		}()
		tr.rebuild(builder)
		return nil
	}()
	if err != nil {
		builder = &Builder{}
		builder.Record(Diagnostic{Text: "engine error: " + err.Error()})
	}
	tr.steps = builder.Steps()
	tr.cursor = 0
	tr.built = true
}

// ComputeSteps forces a rebuild from the current input and returns the step
// list. Determinism requirement: unchanged input must yield an identical
// list on every call.
func (tr *Trace) ComputeSteps() []Step {
	tr.built = false
	tr.ensure()
	return tr.steps
}

func (tr *Trace) StepCount() int {
	tr.ensure()
	return len(tr.steps)
}

// CurrentStep returns the step under the cursor, lazily computing the trace
// on first read. It returns nil only when the input is insufficient to emit
// any step at all.
func (tr *Trace) CurrentStep() *Step {
	tr.ensure()
	if len(tr.steps) == 0 {
		return nil
	}
	return &tr.steps[tr.cursor]
}

func (tr *Trace) CurrentIndex() int {
	return tr.cursor
}

// SetStep moves the cursor to i. Out-of-range indices are ignored and
// reported as false.
func (tr *Trace) SetStep(i int) bool {
	tr.ensure()
	if i < 0 || i >= len(tr.steps) {
		return false
	}
	tr.cursor = i
	return true
}

func (tr *Trace) CanGoNext() bool {
	tr.ensure()
	return tr.cursor < len(tr.steps)-1
}

func (tr *Trace) CanGoPrev() bool {
	tr.ensure()
	return tr.cursor > 0
}

func (tr *Trace) NextStep() bool {
	if !tr.CanGoNext() {
		return false
	}
	tr.cursor++
	return true
}

func (tr *Trace) PrevStep() bool {
	if !tr.CanGoPrev() {
		return false
	}
	tr.cursor--
	return true
}

// Builder is the explicit trace accumulator threaded through engine
// recursion. Apart from it, compute functions are pure.
type Builder struct {
	steps []Step
}

// Record appends a step. A nil Builder discards it, which lets an engine
// core double as a pure function when no trace is wanted.
func (b *Builder) Record(p Payload) {
	if b == nil {
		return
	}
	b.steps = append(b.steps, Make(p))
}

// Splice appends already-built steps. The Voronoi engine uses this to embed
// the trace of its private Delaunay sub-engine.
func (b *Builder) Splice(steps []Step) {
	if b == nil {
		return
	}
	b.steps = append(b.steps, steps...)
}

func (b *Builder) Steps() []Step {
	return b.steps
}

func (b *Builder) Len() int {
	return len(b.steps)
}

// Diagnostic is the terminal single-step payload for user-correctable
// conditions: insufficient input, invalid geometry, or a recovered engine
// error. It carries no event sets.
type Diagnostic struct {
	Text string
}

func (d Diagnostic) Describe() string {
	return d.Text
}

func (d Diagnostic) Events() EventSets {
	return EventSets{}
}
