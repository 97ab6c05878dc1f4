package session

import "sync"

// Subscribe returns a channel carrying the latest session state. The
// current state is delivered immediately; a reader that falls behind sees
// only the newest snapshot. Call the returned func to unsubscribe; it
// closes the channel.
func (c *Controller) Subscribe() (<-chan State, func()) {
	ch := make(chan State, 1)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.subsClosed {
		close(ch)
		return ch, func() {}
	}

	id := c.nextSub
	c.nextSub++
	c.subs[id] = ch
	ch <- c.state.clone()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			c.mu.Lock()
			defer c.mu.Unlock()
			if _, ok := c.subs[id]; ok {
				delete(c.subs, id)
				close(ch)
			}
		})
	}
}

// update applies fn to the state and publishes the result.
func (c *Controller) update(fn func(*State)) {
	c.mu.Lock()
	defer c.mu.Unlock()

	fn(&c.state)
	for _, ch := range c.subs {
		offer(ch, c.state.clone())
	}
}

// offer replaces whatever ch holds with s. Only update sends, under c.mu.
func offer(ch chan State, s State) {
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- s:
	default:
	}
}
