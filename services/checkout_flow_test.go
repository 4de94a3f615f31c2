package services

import (
	"testing"

	"github.com/adjeiboateng/brightkids_backend/models"
)

// Two siblings on differently priced schedules with a 10% code: the discount
// applies to the combined total, so the initialization amount must be
// (5000+7000)*0.9 = 10800, not two per-child discounts.
func TestCombinedSiblingCheckoutAmount(t *testing.T) {
	gdb := openTestDB(t)

	prices := []models.ProgramPrice{
		{ProgramName: models.ProgramChildminding, ScheduleLabel: "Half Day", PricePesewas: 5000},
		{ProgramName: models.ProgramChildminding, ScheduleLabel: "Full Day", PricePesewas: 7000},
	}
	for i := range prices {
		if err := gdb.Create(&prices[i]).Error; err != nil {
			t.Fatalf("seed price: %v", err)
		}
	}
	code := models.DiscountCode{Code: "SAVE10", Percentage: 10, IsActive: true}
	if err := gdb.Create(&code).Error; err != nil {
		t.Fatalf("seed discount: %v", err)
	}

	var subtotal int64
	for _, schedule := range []string{"Half Day", "Full Day"} {
		price, err := LookupPrice(gdb, models.ProgramChildminding, schedule)
		if err != nil {
			t.Fatalf("LookupPrice(%s): %v", schedule, err)
		}
		subtotal += price
	}
	if subtotal != 12000 {
		t.Fatalf("subtotal = %d, want 12000", subtotal)
	}

	discount, err := FetchDiscount(gdb, "SAVE10")
	if err != nil {
		t.Fatalf("FetchDiscount: %v", err)
	}

	if amount := ApplyDiscount(subtotal, discount.Percentage); amount != 10800 {
		t.Errorf("payable amount = %d, want 10800", amount)
	}
}
