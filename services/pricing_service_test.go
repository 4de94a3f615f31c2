package services

import (
	"errors"
	"testing"

	"github.com/adjeiboateng/brightkids_backend/models"
)

func TestLookupPrice_ReturnsConfiguredPrice(t *testing.T) {
	gdb := openTestDB(t)

	entries := []models.ProgramPrice{
		{ProgramName: models.ProgramChildminding, ScheduleLabel: "Half Day", PricePesewas: 5000},
		{ProgramName: models.ProgramChildminding, ScheduleLabel: "Full Day", PricePesewas: 7000},
		{ProgramName: models.ProgramCodeClub, ScheduleLabel: "Saturday Morning", PricePesewas: 15000},
	}
	for i := range entries {
		if err := gdb.Create(&entries[i]).Error; err != nil {
			t.Fatalf("seed price: %v", err)
		}
	}

	for _, entry := range entries {
		got, err := LookupPrice(gdb, entry.ProgramName, entry.ScheduleLabel)
		if err != nil {
			t.Fatalf("LookupPrice(%s, %s): %v", entry.ProgramName, entry.ScheduleLabel, err)
		}
		if got != entry.PricePesewas {
			t.Errorf("LookupPrice(%s, %s) = %d, want %d", entry.ProgramName, entry.ScheduleLabel, got, entry.PricePesewas)
		}
	}
}

// An absent (program, schedule) pair must fail with ErrPriceNotFound so the
// caller aborts instead of substituting a default price.
func TestLookupPrice_MissIsFatal(t *testing.T) {
	gdb := openTestDB(t)

	seed := models.ProgramPrice{ProgramName: models.ProgramSummerCamp, ScheduleLabel: "Week 1", PricePesewas: 20000}
	if err := gdb.Create(&seed).Error; err != nil {
		t.Fatalf("seed price: %v", err)
	}

	_, err := LookupPrice(gdb, models.ProgramSummerCamp, "Week 9")
	if !errors.Is(err, ErrPriceNotFound) {
		t.Fatalf("expected ErrPriceNotFound, got %v", err)
	}

	// Same schedule under a different program is also a miss.
	_, err = LookupPrice(gdb, models.ProgramChildminding, "Week 1")
	if !errors.Is(err, ErrPriceNotFound) {
		t.Fatalf("expected ErrPriceNotFound for wrong program, got %v", err)
	}
}
