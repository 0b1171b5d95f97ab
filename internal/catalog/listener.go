package catalog

import "fmt"

// Listener is notified synchronously every time an item is added.
// Implementations must not mutate the catalog or the item.
type Listener interface {
	Notify(item *Item) error
}

// ListenerFunc adapts a plain function to the Listener interface.
type ListenerFunc func(item *Item) error

func (f ListenerFunc) Notify(item *Item) error {
	return f(item)
}

func safeNotify(l Listener, item *Item) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return l.Notify(item)
}
