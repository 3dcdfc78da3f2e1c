package wellness

import "sync/atomic"

// Holder publishes the active Engine so weights can be swapped while
// requests are being scored.
type Holder struct {
	engine atomic.Pointer[Engine]
}

func NewHolder(e *Engine) *Holder {
	h := &Holder{}
	h.engine.Store(e)
	return h
}

func (h *Holder) Engine() *Engine {
	return h.engine.Load()
}

// SetWeights validates w and swaps in a new Engine. On error the current
// engine stays active.
func (h *Holder) SetWeights(w Weights) error {
	e, err := NewEngine(w)
	if err != nil {
		return err
	}
	h.engine.Store(e)
	return nil
}
