package catalog

import "testing"

// TestItemIDsUnique проверяет уникальность идентификаторов каталога.
func TestItemIDsUnique(t *testing.T) {
	seen := make(map[string]struct{})
	for _, item := range Items() {
		if _, ok := seen[item.ID]; ok {
			t.Fatalf("duplicate item id: %s", item.ID)
		}
		seen[item.ID] = struct{}{}
	}
}

// TestItemsReferenceKnownCategories проверяет ссылки пунктов на категории.
func TestItemsReferenceKnownCategories(t *testing.T) {
	known := make(map[CategoryID]struct{})
	for _, category := range Categories() {
		known[category.ID] = struct{}{}
	}

	for _, item := range Items() {
		if _, ok := known[item.CategoryID]; !ok {
			t.Fatalf("item %s references unknown category %s", item.ID, item.CategoryID)
		}
	}
}

// TestEveryCategoryHasItems проверяет, что ни одна категория не пуста.
func TestEveryCategoryHasItems(t *testing.T) {
	for _, category := range Categories() {
		if len(ItemsByCategory(category.ID)) == 0 {
			t.Fatalf("category %s has no items", category.ID)
		}
	}
}

// TestItemByID проверяет поиск пункта по идентификатору.
func TestItemByID(t *testing.T) {
	item, ok := ItemByID("work")
	if !ok || item.Name != "Trabalho" {
		t.Fatalf("expected Trabalho, got %v (ok=%v)", item, ok)
	}

	if _, ok := ItemByID("missing"); ok {
		t.Fatal("expected missing item to be absent")
	}
}
