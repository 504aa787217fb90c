package services

import (
	"errors"
	"testing"
)

func TestRegisterNormalizesName(t *testing.T) {
	setupTestDB(t)
	ds := NewDeviceDBService()

	device, err := ds.Register("  Cobas   t711 ")
	if err != nil {
		t.Fatalf("Register() failed: %v", err)
	}
	if device.Name != "Cobas t711" {
		t.Errorf("stored name = %q, want %q", device.Name, "Cobas t711")
	}
	if device.ID == 0 {
		t.Error("device was not assigned an id")
	}
}

func TestRegisterRejectsEmptyName(t *testing.T) {
	setupTestDB(t)
	ds := NewDeviceDBService()

	if _, err := ds.Register("   \t "); !errors.Is(err, ErrEmptyDeviceName) {
		t.Errorf("Register(blank) = %v, want ErrEmptyDeviceName", err)
	}

	count, err := ds.Count()
	if err != nil {
		t.Fatal(err)
	}
	if count != 0 {
		t.Errorf("registry size = %d after rejected insert, want 0", count)
	}
}

func TestRegisterRejectsCaseInsensitiveDuplicates(t *testing.T) {
	setupTestDB(t)
	ds := NewDeviceDBService()

	if _, err := ds.Register("Cobas t711"); err != nil {
		t.Fatalf("Register() failed: %v", err)
	}

	for _, variant := range []string{"Cobas t711", "cobas   t711", "COBAS T711"} {
		if _, err := ds.Register(variant); !errors.Is(err, ErrDuplicateDeviceName) {
			t.Errorf("Register(%q) = %v, want ErrDuplicateDeviceName", variant, err)
		}
	}

	count, err := ds.Count()
	if err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("registry size = %d, want 1", count)
	}
}

func TestListOrders(t *testing.T) {
	setupTestDB(t)
	ds := NewDeviceDBService()

	for _, name := range []string{"Sysmex XN-1000", "architect i2000", "Cobas t711"} {
		if _, err := ds.Register(name); err != nil {
			t.Fatalf("Register(%q) failed: %v", name, err)
		}
	}

	newest, err := ds.List(DeviceOrderNewest)
	if err != nil {
		t.Fatal(err)
	}
	if len(newest) != 3 {
		t.Fatalf("List(newest) returned %d devices, want 3", len(newest))
	}
	if newest[0].Name != "Cobas t711" || newest[2].Name != "Sysmex XN-1000" {
		t.Errorf("List(newest) order wrong: %q .. %q", newest[0].Name, newest[2].Name)
	}

	byName, err := ds.List(DeviceOrderName)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"architect i2000", "Cobas t711", "Sysmex XN-1000"}
	for i, name := range want {
		if byName[i].Name != name {
			t.Errorf("List(name)[%d] = %q, want %q", i, byName[i].Name, name)
		}
	}
}

func TestGetByIDMissingDevice(t *testing.T) {
	setupTestDB(t)
	ds := NewDeviceDBService()

	if _, err := ds.GetByID(999); !errors.Is(err, ErrDeviceNotFound) {
		t.Errorf("GetByID(999) = %v, want ErrDeviceNotFound", err)
	}
}
