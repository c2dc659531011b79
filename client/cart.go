package client

import (
	"encoding/json"
	"sort"
	"sync"
	"time"

	"github.com/SRAJAN1405/hotel/utils"
)

// DebounceWindow is the rate-limit window applied to every cart mutation.
// Repeated triggers of the same mutation inside the window collapse to the
// last call, so rapid double-clicks register once. This is a deliberate UX
// choice carried over from the web client, not an accident.
const DebounceWindow = 300 * time.Millisecond

const cartStorageKey = "cart-storage"

// CartItem is one cart line: the menu item fields as displayed plus the
// selected quantity. Price stays currency-prefixed display text.
type CartItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Image       string `json:"image"`
	Quantity    int    `json:"quantity"`
}

// Cart is the locally persisted shopping cart. All mutators are debounced
// per trigger (action + item id); reads see only applied mutations. The cart
// is never cleared implicitly, not even after a successful payment.
type Cart struct {
	mu      sync.Mutex
	items   map[string]*CartItem
	timers  map[string]*time.Timer
	storage Storage
	window  time.Duration

	// OnAdd, when set, fires after an add is applied. The web client uses
	// this to show the "added" toast and flip the view to the cart tab.
	OnAdd func(item CartItem)
}

// NewCart loads any persisted cart state from storage and applies the
// standard debounce window.
func NewCart(storage Storage) *Cart {
	return NewCartWithWindow(storage, DebounceWindow)
}

// NewCartWithWindow is NewCart with an explicit debounce window. A zero
// window applies mutations synchronously.
func NewCartWithWindow(storage Storage, window time.Duration) *Cart {
	c := &Cart{
		items:   make(map[string]*CartItem),
		timers:  make(map[string]*time.Timer),
		storage: storage,
		window:  window,
	}
	if raw, ok := storage.Get(cartStorageKey); ok {
		_ = json.Unmarshal(raw, &c.items)
	}
	return c
}

// Add puts the item in the cart, or bumps its quantity by one if it is
// already there.
func (c *Cart) Add(item CartItem) {
	c.schedule("add:"+item.ID, func() {
		c.mu.Lock()
		if existing, ok := c.items[item.ID]; ok {
			existing.Quantity++
		} else {
			added := item
			added.Quantity = 1
			c.items[item.ID] = &added
		}
		applied := *c.items[item.ID]
		c.persistLocked()
		c.mu.Unlock()

		if c.OnAdd != nil {
			c.OnAdd(applied)
		}
	})
}

// Remove drops the line entirely, whatever its quantity.
func (c *Cart) Remove(id string) {
	c.schedule("remove:"+id, func() {
		c.mu.Lock()
		delete(c.items, id)
		c.persistLocked()
		c.mu.Unlock()
	})
}

// UpdateQuantity sets the line's quantity, clamped at zero. A line at zero
// stays in the cart rather than being removed; only Remove deletes it.
func (c *Cart) UpdateQuantity(id string, quantity int) {
	c.schedule("update:"+id, func() {
		c.mu.Lock()
		if item, ok := c.items[id]; ok {
			if quantity < 0 {
				quantity = 0
			}
			item.Quantity = quantity
			c.persistLocked()
		}
		c.mu.Unlock()
	})
}

// Items returns a snapshot of the cart, ordered by item id.
func (c *Cart) Items() []CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]CartItem, 0, len(c.items))
	for _, item := range c.items {
		items = append(items, *item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items
}

// Total sums price x quantity across all lines, parsing the
// currency-prefixed price text.
func (c *Cart) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var sum float64
	for _, item := range c.items {
		sum += utils.ParseCurrency(item.Price) * float64(item.Quantity)
	}
	return sum
}

// Clear empties the cart immediately, cancelling any pending mutations.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key, timer := range c.timers {
		timer.Stop()
		delete(c.timers, key)
	}
	c.items = make(map[string]*CartItem)
	c.persistLocked()
}

// schedule debounces fn on the trigger key: only the last call inside the
// window fires.
func (c *Cart) schedule(key string, fn func()) {
	if c.window <= 0 {
		fn()
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if timer, ok := c.timers[key]; ok {
		timer.Stop()
	}
	c.timers[key] = time.AfterFunc(c.window, func() {
		c.mu.Lock()
		delete(c.timers, key)
		c.mu.Unlock()
		fn()
	})
}

func (c *Cart) persistLocked() {
	data, err := json.Marshal(c.items)
	if err != nil {
		return
	}
	_ = c.storage.Set(cartStorageKey, data)
}
