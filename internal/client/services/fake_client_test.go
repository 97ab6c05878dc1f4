package services

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/dmitrijs2005/arkania/internal/client/client"
)

// fakeClient answers every request with Resp (JSON-encoded into out) or Err.
type fakeClient struct {
	mu sync.Mutex

	Resp any
	Err  error

	Requests []client.Request
}

func (f *fakeClient) Do(ctx context.Context, req client.Request, out any) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.Requests = append(f.Requests, req)
	if f.Err != nil {
		return f.Err
	}
	if out == nil || f.Resp == nil {
		return nil
	}
	raw, err := json.Marshal(f.Resp)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

func (f *fakeClient) Last() client.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.Requests) == 0 {
		return client.Request{}
	}
	return f.Requests[len(f.Requests)-1]
}

func ok(data any) map[string]any {
	return map[string]any{"success": true, "data": data}
}

func page(data any, p, limit, total, pages int) map[string]any {
	return map[string]any{
		"success":    true,
		"data":       data,
		"pagination": map[string]int{"page": p, "limit": limit, "total": total, "totalPages": pages},
	}
}
