package public

import "github.com/freshmart-next/internal/provider"

// Handler serves the public and user-facing API.
type Handler struct {
	*provider.Container
}

// New creates the public handler.
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
