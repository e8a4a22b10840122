package store

import (
	"sync"
	"time"
)

// DelayBusqueda espera estándar antes de disparar una búsqueda mientras el
// usuario sigue tecleando.
const DelayBusqueda = 500 * time.Millisecond

// Debouncer colapsa llamadas rápidas sucesivas: solo la última dentro de la
// ventana de espera se ejecuta.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
}

// NewDebouncer construye el debouncer con la espera indicada.
func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Do programa fn tras la espera, cancelando cualquier llamada pendiente.
func (d *Debouncer) Do(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Stop cancela la llamada pendiente, si la hay.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
