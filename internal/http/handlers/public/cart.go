package public

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/freshmart-next/internal/http/response"
	"github.com/freshmart-next/internal/service"

	"github.com/gin-gonic/gin"
)

// CartReplaceRequest is the full desired cart state. Lines stay raw here so
// a type error in one line can be reported against that line's field instead
// of failing the whole body.
type CartReplaceRequest struct {
	Products []json.RawMessage `json:"products"`
}

// decodeCartLines unmarshals each cart line, mapping a mistyped product or
// quantity (for example 1.5) to the offending products[i] field.
func decodeCartLines(raw []json.RawMessage) ([]service.CartLineInput, map[string][]string) {
	lines := make([]service.CartLineInput, 0, len(raw))
	for i, item := range raw {
		var line service.CartLineInput
		if err := json.Unmarshal(item, &line); err != nil {
			var typeErr *json.UnmarshalTypeError
			if errors.As(err, &typeErr) && typeErr.Field != "" {
				return nil, map[string][]string{
					fmt.Sprintf("products[%d].%s", i, typeErr.Field): {"a valid integer is required"},
				}
			}
			return nil, map[string][]string{
				fmt.Sprintf("products[%d]", i): {"invalid cart line"},
			}
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// GetCart handles GET /cart.
func (h *Handler) GetCart(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	snapshot, err := h.CartService.Get(uid)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, snapshot)
}

// ReplaceCart handles POST /cart. The request body replaces the stored cart
// wholesale; on success the snapshot of the new cart comes back with 201.
func (h *Handler) ReplaceCart(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	var req CartReplaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FieldErrors(c, map[string][]string{
			"products": {"invalid request body"},
		})
		return
	}
	lines, fieldErrs := decodeCartLines(req.Products)
	if fieldErrs != nil {
		response.FieldErrors(c, fieldErrs)
		return
	}
	snapshot, err := h.CartService.Replace(uid, lines)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Created(c, snapshot)
}

// ClearCart handles POST /cart/clear.
func (h *Handler) ClearCart(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	if _, err := h.CartService.Clear(uid); err != nil {
		respondServiceError(c, err)
		return
	}
	response.NoContent(c)
}
