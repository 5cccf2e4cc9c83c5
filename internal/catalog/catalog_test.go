package catalog

import (
	"testing"

	"tablechef/internal/models"
)

func TestAddRejectsInvalidItems(t *testing.T) {
	s := NewStore(nil)

	tests := []struct {
		name string
		item models.MenuItem
	}{
		{"empty name", models.MenuItem{ID: "x", Name: "", Price: 10}},
		{"negative price", models.MenuItem{ID: "y", Name: "Soup", Price: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := s.Add(tt.item); err == nil {
				t.Error("Add should reject the item")
			}
			if s.Len() != 0 {
				t.Errorf("catalog size = %d, want 0 (rejected add must not mutate)", s.Len())
			}
		})
	}
}

func TestAddAndList(t *testing.T) {
	s := NewStore(nil)
	s.Add(models.MenuItem{ID: "a", Name: "Soup", Price: 8})
	s.Add(models.MenuItem{ID: "b", Name: "Bread", Price: 0}) // free items are allowed

	items := s.List()
	if len(items) != 2 {
		t.Fatalf("List = %d items, want 2", len(items))
	}
	if items[0].ID != "a" || items[1].ID != "b" {
		t.Errorf("List order = %s, %s; want insertion order a, b", items[0].ID, items[1].ID)
	}
}

func TestUpdateReplacesFullRecord(t *testing.T) {
	s := NewStore(nil)
	s.Add(models.MenuItem{ID: "a", Name: "Soup", Price: 8, Calories: 200})

	s.Update(models.MenuItem{ID: "a", Name: "Miso Soup", Price: 9})

	got, _ := s.Get("a")
	if got.Name != "Miso Soup" || got.Price != 9 {
		t.Errorf("updated item = %+v", got)
	}
	if got.Calories != 0 {
		t.Errorf("update must replace the full record, kept calories %d", got.Calories)
	}
}

func TestUpdateUnknownIDIsNoOp(t *testing.T) {
	s := NewStore(nil)
	s.Update(models.MenuItem{ID: "ghost", Name: "Phantom", Price: 1})

	if s.Len() != 0 {
		t.Error("update of unknown ID must not insert")
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	s := NewStore(nil)
	s.Add(models.MenuItem{ID: "a", Name: "Soup", Price: 8})

	s.Delete("a")
	s.Delete("a") // second delete is a no-op
	s.Delete("never-existed")

	if s.Len() != 0 {
		t.Errorf("catalog size = %d, want 0", s.Len())
	}
}

func TestSeededStore(t *testing.T) {
	s := NewStore(models.SeedMenu())

	if s.Len() != 6 {
		t.Fatalf("seeded catalog = %d items, want 6", s.Len())
	}
	item, ok := s.Get("2")
	if !ok || item.Name != "Spicy Thai Basil Chicken" {
		t.Errorf("Get(2) = %+v, %v", item, ok)
	}
	if !item.HasTag(models.TagSpicy) {
		t.Error("Thai Basil Chicken should carry the Spicy tag")
	}
}
