package session

import (
	"context"
	"time"
)

// syncWatcher runs the expiry watcher exactly while a token is held.
// Callers hold c.op.
func (c *Controller) syncWatcher() {
	if c.State().Token == "" || c.closed {
		c.stopWatcherLocked()
		return
	}
	if c.stopWatch != nil {
		return
	}

	c.gen++
	ctx, cancel := context.WithCancel(context.Background())
	c.stopWatch = cancel
	c.wg.Add(1)
	go c.watch(ctx, c.gen)
}

// stopWatcherLocked cancels the watcher without waiting for it: the
// watcher may itself be queued on c.op.
func (c *Controller) stopWatcherLocked() {
	if c.stopWatch == nil {
		return
	}
	c.stopWatch()
	c.stopWatch = nil
	c.gen++
}

func (c *Controller) watch(ctx context.Context, gen uint64) {
	defer c.wg.Done()

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			token := c.currentToken()
			if token == "" || !c.gateway.IsTokenExpiring(token) {
				continue
			}
			c.expire(ctx, gen, token)
		}
	}
}

func (c *Controller) currentToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state.Token
}

// expire logs out on behalf of the watcher of generation gen. It does
// nothing if that watcher was stopped or the token changed since the check.
func (c *Controller) expire(ctx context.Context, gen uint64, token string) {
	c.op.Lock()
	defer c.op.Unlock()
	if ctx.Err() != nil || c.gen != gen || c.currentToken() != token {
		return
	}

	c.log.Info(ctx, "session token expiring, logging out")
	defer c.beginLoading()()
	c.logoutLocked(ctx)
}
