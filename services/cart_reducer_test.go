package services

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/models"
)

func assertDerived(t *testing.T, s models.CartState) {
	t.Helper()
	var total int64
	var count int
	ids := map[string]bool{}
	for _, item := range s.Items {
		require.False(t, ids[item.ID], "duplicate id %s", item.ID)
		ids[item.ID] = true
		require.GreaterOrEqual(t, item.Quantity, 1)
		require.LessOrEqual(t, item.Quantity, item.MaxQuantity)
		total += item.UnitPrice * int64(item.Quantity)
		count += item.Quantity
	}
	assert.Equal(t, total, s.Total)
	assert.Equal(t, count, s.ItemCount)
}

func TestReduceAddItemClampsToMaxQuantity(t *testing.T) {
	s := Reduce(models.CartState{}, AddItem{Item: testItem("a", 50000, 5), Quantity: 3})
	s = Reduce(s, AddItem{Item: testItem("a", 50000, 5), Quantity: 4})

	require.Len(t, s.Items, 1)
	assert.Equal(t, 5, s.Items[0].Quantity)
	assert.Equal(t, int64(250000), s.Total)
	assert.Equal(t, 5, s.ItemCount)
	assertDerived(t, s)
}

func TestReduceAddItemHugeQuantityClamps(t *testing.T) {
	s := Reduce(models.CartState{}, AddItem{Item: testItem("a", 50000, 5), Quantity: 1})
	s = Reduce(s, AddItem{Item: testItem("a", 50000, 5), Quantity: math.MaxInt})

	require.Len(t, s.Items, 1)
	assert.Equal(t, 5, s.Items[0].Quantity)
	assert.Equal(t, int64(250000), s.Total)
	assertDerived(t, s)

	fresh := Reduce(models.CartState{}, AddItem{Item: testItem("b", 10, 3), Quantity: math.MaxInt})
	assert.Equal(t, 3, fresh.Items[0].Quantity)
	assertDerived(t, fresh)
}

func TestClampAdd(t *testing.T) {
	tests := []struct {
		current, n, max, want int
	}{
		{1, 2, 5, 3},
		{3, 2, 5, 5},
		{3, 4, 5, 5},
		{5, 1, 5, 5},
		{1, math.MaxInt, 5, 5},
		{4, math.MaxInt - 3, 5, 5},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, clampAdd(tt.current, tt.n, tt.max), "%d+%d max %d", tt.current, tt.n, tt.max)
	}
}

func TestReduceAddItemDefaultsToOne(t *testing.T) {
	s := Reduce(models.CartState{}, AddItem{Item: testItem("a", 1000, 3)})
	require.Len(t, s.Items, 1)
	assert.Equal(t, 1, s.Items[0].Quantity)

	s = Reduce(s, AddItem{Item: testItem("a", 1000, 3), Quantity: -2})
	assert.Equal(t, 2, s.Items[0].Quantity)
}

func TestReduceAddInvalidItemIsNoop(t *testing.T) {
	start := Reduce(models.CartState{}, AddItem{Item: testItem("a", 1000, 3), Quantity: 1})

	for name, item := range map[string]models.CartItem{
		"empty id":       testItem("", 1000, 3),
		"zero max":       testItem("b", 1000, 0),
		"negative price": testItem("c", -1, 3),
	} {
		t.Run(name, func(t *testing.T) {
			s := Reduce(start, AddItem{Item: item, Quantity: 1})
			assert.Equal(t, start, s)
		})
	}
}

func TestReduceUpdateQuantity(t *testing.T) {
	start := Reduce(models.CartState{}, AddItem{Item: testItem("a", 1000, 5), Quantity: 2})
	start = Reduce(start, AddItem{Item: testItem("b", 300, 2), Quantity: 1})

	tests := []struct {
		name     string
		quantity int
		want     int
		present  bool
	}{
		{"set", 4, 4, true},
		{"clamped", 9, 5, true},
		{"zero removes", 0, 0, false},
		{"negative removes", -1, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Reduce(start, UpdateQuantity{ID: "a", Quantity: tt.quantity})
			item, ok := s.Find("a")
			assert.Equal(t, tt.present, ok)
			assert.Equal(t, tt.want, item.Quantity)
			assertDerived(t, s)
		})
	}
}

func TestReduceUpdateUnknownItemIsNoop(t *testing.T) {
	start := Reduce(models.CartState{}, AddItem{Item: testItem("a", 1000, 5), Quantity: 2})
	s := Reduce(start, UpdateQuantity{ID: "zzz", Quantity: 3})
	assert.Equal(t, start, s)
}

func TestReduceRemoveItem(t *testing.T) {
	s := Reduce(models.CartState{}, AddItem{Item: testItem("a", 1000, 5), Quantity: 2})
	s = Reduce(s, AddItem{Item: testItem("b", 300, 2), Quantity: 2})
	s = Reduce(s, RemoveItem{ID: "a"})

	require.Len(t, s.Items, 1)
	assert.Equal(t, "b", s.Items[0].ID)
	assert.Equal(t, int64(600), s.Total)
	assert.Equal(t, 2, s.ItemCount)

	same := Reduce(s, RemoveItem{ID: "missing"})
	assert.Equal(t, s, same)
}

func TestReduceClearKeepsVisibility(t *testing.T) {
	s := Reduce(models.CartState{}, AddItem{Item: testItem("a", 1000, 5), Quantity: 2})
	s = Reduce(s, SetOpen{Open: true})
	s = Reduce(s, ClearCart{})

	assert.Empty(t, s.Items)
	assert.NotNil(t, s.Items)
	assert.Zero(t, s.Total)
	assert.Zero(t, s.ItemCount)
	assert.True(t, s.IsOpen)
}

func TestReduceToggleAndSetOpen(t *testing.T) {
	s := Reduce(models.CartState{}, AddItem{Item: testItem("a", 1000, 5), Quantity: 2})
	items := s.Items

	s = Reduce(s, ToggleOpen{})
	assert.True(t, s.IsOpen)
	s = Reduce(s, ToggleOpen{})
	assert.False(t, s.IsOpen)
	s = Reduce(s, SetOpen{Open: true})
	s = Reduce(s, SetOpen{Open: true})
	assert.True(t, s.IsOpen)
	assert.Equal(t, items, s.Items)
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	start := Reduce(models.CartState{}, AddItem{Item: testItem("a", 1000, 5), Quantity: 2})
	before := start.Clone()

	_ = Reduce(start, AddItem{Item: testItem("a", 1000, 5), Quantity: 1})
	_ = Reduce(start, UpdateQuantity{ID: "a", Quantity: 5})
	_ = Reduce(start, ClearCart{})

	assert.Equal(t, before, start)
}

func TestReduceLoadCartSanitizes(t *testing.T) {
	over := testItem("a", 100, 2)
	over.Quantity = 9
	dup := testItem("a", 999, 9)
	dup.Quantity = 1
	zero := testItem("b", 100, 2)
	zero.Quantity = 0
	bad := testItem("", 100, 2)
	bad.Quantity = 1
	ok := testItem("c", 250, 4)
	ok.Quantity = 3

	s := Reduce(models.CartState{IsOpen: true}, LoadCart{Items: []models.CartItem{over, dup, zero, bad, ok}})

	require.Len(t, s.Items, 2)
	assert.Equal(t, "a", s.Items[0].ID)
	assert.Equal(t, 2, s.Items[0].Quantity)
	assert.Equal(t, int64(100), s.Items[0].UnitPrice)
	assert.Equal(t, "c", s.Items[1].ID)
	assert.True(t, s.IsOpen)
	assertDerived(t, s)
}

func TestReduceKeepsInvariantsAcrossSequence(t *testing.T) {
	actions := []CartAction{
		AddItem{Item: testItem("a", 1500, 3), Quantity: 2},
		AddItem{Item: testItem("b", 700, 10), Quantity: 4},
		AddItem{Item: testItem("a", 1500, 3), Quantity: 5},
		ToggleOpen{},
		UpdateQuantity{ID: "b", Quantity: 11},
		RemoveItem{ID: "a"},
		AddItem{Item: testItem("c", 0, 1), Quantity: 1},
		UpdateQuantity{ID: "c", Quantity: 0},
		ClearCart{},
		AddItem{Item: testItem("d", 20, 2), Quantity: 1},
	}

	var s models.CartState
	for _, a := range actions {
		s = Reduce(s, a)
		assertDerived(t, s)
	}
	assert.Equal(t, int64(20), s.Total)
	assert.True(t, s.IsOpen)
}
