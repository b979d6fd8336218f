package event

// Dispatcher fans window events out to every registered handler, in
// registration order, on the goroutine that emits them.
type Dispatcher struct {
	resize []func(Resize)
	key    []func(KeyEvent)
	button []func(MouseButtonEvent)
	cursor []func(CursorEvent)
	scroll []func(ScrollEvent)
	char   []func(CharEvent)
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

func (d *Dispatcher) OnResize(h func(Resize))                { d.resize = append(d.resize, h) }
func (d *Dispatcher) OnKey(h func(KeyEvent))                 { d.key = append(d.key, h) }
func (d *Dispatcher) OnMouseButton(h func(MouseButtonEvent)) { d.button = append(d.button, h) }
func (d *Dispatcher) OnCursor(h func(CursorEvent))           { d.cursor = append(d.cursor, h) }
func (d *Dispatcher) OnScroll(h func(ScrollEvent))           { d.scroll = append(d.scroll, h) }
func (d *Dispatcher) OnChar(h func(CharEvent))               { d.char = append(d.char, h) }

func (d *Dispatcher) EmitResize(e Resize)                { emit(d.resize, e) }
func (d *Dispatcher) EmitKey(e KeyEvent)                 { emit(d.key, e) }
func (d *Dispatcher) EmitMouseButton(e MouseButtonEvent) { emit(d.button, e) }
func (d *Dispatcher) EmitCursor(e CursorEvent)           { emit(d.cursor, e) }
func (d *Dispatcher) EmitScroll(e ScrollEvent)           { emit(d.scroll, e) }
func (d *Dispatcher) EmitChar(e CharEvent)               { emit(d.char, e) }

func emit[E any](hs []func(E), e E) {
	for _, h := range hs {
		h(e)
	}
}
