package minercars

import (
	"path/filepath"
	"testing"
)

func testCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := OpenCatalog(filepath.Join(t.TempDir(), VehiclesFile))
	if err != nil {
		t.Fatalf("OpenCatalog: %v", err)
	}
	return c
}

func TestCatalogAddAssignsMonotonicIDs(t *testing.T) {
	c := testCatalog(t)

	a, err := c.Add(Vehicle{Category: Sedan, Model: "Focus", VIN: "VIN-A", Price: M(20000), Available: 1})
	if err != nil {
		t.Fatal(err)
	}
	b, err := c.Add(Vehicle{Category: SUV, Model: "RAV4", VIN: "VIN-B", Price: M(30000), Available: 1})
	if err != nil {
		t.Fatal(err)
	}

	if a.ID != 1 {
		t.Errorf("first id = %d, want 1", a.ID)
	}
	if b.ID <= a.ID {
		t.Errorf("ids not strictly increasing: %d then %d", a.ID, b.ID)
	}
}

func TestCatalogAddMergesOnVIN(t *testing.T) {
	c := testCatalog(t)

	first, err := c.Add(Vehicle{Category: Sedan, Model: "Focus", VIN: "VIN-A", Price: M(20000), Available: 2})
	if err != nil {
		t.Fatal(err)
	}
	merged, err := c.Add(Vehicle{Category: Sedan, Model: "Focus", VIN: "VIN-A", Price: M(20000), Available: 3})
	if err != nil {
		t.Fatal(err)
	}

	if len(c.Vehicles()) != 1 {
		t.Fatalf("catalog has %d rows, want 1", len(c.Vehicles()))
	}
	if merged.ID != first.ID {
		t.Errorf("merge changed id from %d to %d", first.ID, merged.ID)
	}
	if merged.Available != 5 {
		t.Errorf("availability = %d, want 5", merged.Available)
	}
}

func TestCatalogRemove(t *testing.T) {
	c := testCatalog(t)
	if _, err := c.Add(Vehicle{VIN: "VIN-A", Model: "Focus", Available: 1}); err != nil {
		t.Fatal(err)
	}

	removed, err := c.Remove("VIN-A")
	if err != nil || !removed {
		t.Fatalf("Remove = %v, %v; want true, nil", removed, err)
	}
	removed, err = c.Remove("VIN-A")
	if err != nil || removed {
		t.Fatalf("second Remove = %v, %v; want false, nil", removed, err)
	}
	if v := c.FindByVIN("VIN-A"); v != nil {
		t.Errorf("vehicle still present: %+v", v)
	}
}

func TestCatalogPersistsAcrossReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), VehiclesFile)
	c, err := OpenCatalog(path)
	if err != nil {
		t.Fatal(err)
	}
	want := Vehicle{
		Category: Pickup, Model: "Ranger", Condition: "Used", Color: "Red",
		Capacity: 4, Price: M(31999.5), Transmission: "Manual", VIN: "VIN-R",
		FuelType: "Diesel", Year: 2019, Available: 2, Turbo: true,
	}
	if _, err := c.Add(want); err != nil {
		t.Fatal(err)
	}

	reloaded, err := OpenCatalog(path)
	if err != nil {
		t.Fatal(err)
	}
	got := reloaded.FindByVIN("VIN-R")
	if got == nil {
		t.Fatal("vehicle lost on reload")
	}
	if got.Model != want.Model || got.Category != want.Category ||
		!got.Price.Equal(want.Price) || got.Available != want.Available ||
		got.Turbo != want.Turbo || got.Year != want.Year {
		t.Errorf("reloaded %+v, want %+v", got, want)
	}
}

func TestCatalogFindByID(t *testing.T) {
	c := testCatalog(t)
	if _, err := c.Add(Vehicle{VIN: "VIN-A", Available: 1}); err != nil {
		t.Fatal(err)
	}
	if v := c.FindByID(1); v == nil {
		t.Error("FindByID(1) = nil")
	}
	if v := c.FindByID(42); v != nil {
		t.Errorf("FindByID(42) = %+v, want nil", v)
	}
}
