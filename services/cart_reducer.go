package services

import "storefront/models"

// CartAction is the closed set of cart transitions. The unexported method
// keeps other packages from adding variants.
type CartAction interface {
	cartAction()
	// ChangesItems reports whether the action can touch the item list.
	ChangesItems() bool
}

type AddItem struct {
	Item     models.CartItem
	Quantity int
}

type RemoveItem struct {
	ID string
}

type UpdateQuantity struct {
	ID       string
	Quantity int
}

type ClearCart struct{}

type ToggleOpen struct{}

type SetOpen struct {
	Open bool
}

// LoadCart replaces the item list with persisted items.
type LoadCart struct {
	Items []models.CartItem
}

func (AddItem) cartAction()        {}
func (RemoveItem) cartAction()     {}
func (UpdateQuantity) cartAction() {}
func (ClearCart) cartAction()      {}
func (ToggleOpen) cartAction()     {}
func (SetOpen) cartAction()        {}
func (LoadCart) cartAction()       {}

func (AddItem) ChangesItems() bool        { return true }
func (RemoveItem) ChangesItems() bool     { return true }
func (UpdateQuantity) ChangesItems() bool { return true }
func (ClearCart) ChangesItems() bool      { return true }
func (ToggleOpen) ChangesItems() bool     { return false }
func (SetOpen) ChangesItems() bool        { return false }
func (LoadCart) ChangesItems() bool       { return true }

const defaultAddQuantity = 1

// Reduce applies action to state and returns a new snapshot. It never
// mutates state.Items. Quantities above an item's MaxQuantity are clamped
// without error.
func Reduce(state models.CartState, action CartAction) models.CartState {
	switch a := action.(type) {
	case AddItem:
		return withItems(state, addItem(state.Items, a.Item, a.Quantity))

	case RemoveItem:
		return withItems(state, removeItem(state.Items, a.ID))

	case UpdateQuantity:
		if a.Quantity <= 0 {
			return withItems(state, removeItem(state.Items, a.ID))
		}
		return withItems(state, updateQuantity(state.Items, a.ID, a.Quantity))

	case ClearCart:
		return withItems(state, nil)

	case ToggleOpen:
		next := state.Clone()
		next.IsOpen = !state.IsOpen
		return next

	case SetOpen:
		next := state.Clone()
		next.IsOpen = a.Open
		return next

	case LoadCart:
		return withItems(state, sanitize(a.Items))

	default:
		return state.Clone()
	}
}

// withItems is the only place Total and ItemCount are written.
func withItems(state models.CartState, items []models.CartItem) models.CartState {
	next := models.CartState{
		Items:  models.CloneItems(items),
		IsOpen: state.IsOpen,
	}
	for _, item := range next.Items {
		next.Total += item.LineTotal()
		next.ItemCount += item.Quantity
	}
	return next
}

func addItem(items []models.CartItem, item models.CartItem, quantity int) []models.CartItem {
	if !itemValid(item) {
		return items
	}
	if quantity <= 0 {
		quantity = defaultAddQuantity
	}

	out := models.CloneItems(items)
	for i := range out {
		if out[i].ID == item.ID {
			out[i].Quantity = clampAdd(out[i].Quantity, quantity, out[i].MaxQuantity)
			return out
		}
	}

	item.Quantity = min(quantity, item.MaxQuantity)
	return append(out, item)
}

// clampAdd returns min(current+n, max) without computing a sum that can
// overflow.
func clampAdd(current, n, max int) int {
	if n >= max-current {
		return max
	}
	return current + n
}

func removeItem(items []models.CartItem, id string) []models.CartItem {
	out := make([]models.CartItem, 0, len(items))
	for _, item := range items {
		if item.ID != id {
			out = append(out, item)
		}
	}
	return out
}

func updateQuantity(items []models.CartItem, id string, quantity int) []models.CartItem {
	out := models.CloneItems(items)
	for i := range out {
		if out[i].ID == id {
			out[i].Quantity = min(quantity, out[i].MaxQuantity)
		}
	}
	return out
}

// sanitize restores item invariants on data read back from storage.
func sanitize(items []models.CartItem) []models.CartItem {
	seen := make(map[string]struct{}, len(items))
	out := make([]models.CartItem, 0, len(items))
	for _, item := range items {
		if !itemValid(item) || item.Quantity < 1 {
			continue
		}
		if _, dup := seen[item.ID]; dup {
			continue
		}
		seen[item.ID] = struct{}{}
		item.Quantity = min(item.Quantity, item.MaxQuantity)
		out = append(out, item)
	}
	return out
}

func itemValid(item models.CartItem) bool {
	return item.ID != "" && item.MaxQuantity >= 1 && item.UnitPrice >= 0
}

// validateItem mirrors itemValid but explains what is wrong.
func validateItem(item models.CartItem) error {
	var errs ValidationErrors
	if item.ID == "" {
		errs = append(errs, &ValidationError{Field: "id", Message: ErrMsgItemIDRequired})
	}
	if item.MaxQuantity < 1 {
		errs = append(errs, &ValidationError{Field: "maxQuantity", Message: ErrMsgMaxQuantityInvalid})
	}
	if item.UnitPrice < 0 {
		errs = append(errs, &ValidationError{Field: "price", Message: ErrMsgPriceNegative})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
