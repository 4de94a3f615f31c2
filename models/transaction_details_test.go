package models

import (
	"strings"
	"testing"
)

func TestDecodeTransactionDetails_RequiresProgramType(t *testing.T) {
	if _, err := DecodeTransactionDetails(`{"code_club":{"child_name":"Ama"}}`); err == nil {
		t.Fatal("expected error for details without program_type")
	}
	if _, err := DecodeTransactionDetails(`not json`); err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}

func TestTransactionDetails_Recipient(t *testing.T) {
	tests := []struct {
		name      string
		details   TransactionDetails
		wantName  string
		wantEmail string
	}{
		{
			name: "code club goes to the parent",
			details: TransactionDetails{
				ProgramType: ProgramCodeClub,
				CodeClub:    &CodeClubDetails{ParentName: "Kofi Mensah", ParentEmail: "kofi@example.com"},
			},
			wantName:  "Kofi Mensah",
			wantEmail: "kofi@example.com",
		},
		{
			name: "enrollment goes to the parent",
			details: TransactionDetails{
				ProgramType: ProgramSummerCamp,
				Enrollment:  &EnrollmentDetails{ParentName: "Akosua Osei", ParentEmail: "akosua@example.com"},
			},
			wantName:  "Akosua Osei",
			wantEmail: "akosua@example.com",
		},
		{
			name: "shop order goes to the customer",
			details: TransactionDetails{
				ProgramType: ProgramShopOrder,
				ShopOrder:   &ShopOrderDetails{CustomerName: "Adwoa Boateng", CustomerEmail: "adwoa@example.com"},
			},
			wantName:  "Adwoa Boateng",
			wantEmail: "adwoa@example.com",
		},
		{
			name: "fee invoice goes to the payer",
			details: TransactionDetails{
				ProgramType: ProgramFeeInvoice,
				FeeInvoice:  &FeeInvoiceDetails{PayerName: "Kwabena Asante", PayerEmail: "kwabena@example.com"},
			},
			wantName:  "Kwabena Asante",
			wantEmail: "kwabena@example.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, email := tt.details.Recipient()
			if name != tt.wantName || email != tt.wantEmail {
				t.Errorf("Recipient() = (%q, %q), want (%q, %q)", name, email, tt.wantName, tt.wantEmail)
			}
		})
	}
}

func TestTransactionDetails_EncodeCarriesTag(t *testing.T) {
	details := TransactionDetails{
		ProgramType: ProgramCodeClub,
		CodeClub:    &CodeClubDetails{ChildName: "Ama Mensah"},
	}
	encoded, err := details.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !strings.Contains(encoded, `"program_type":"Code Ninjas Club"`) {
		t.Errorf("encoded details missing program tag: %s", encoded)
	}

	decoded, err := DecodeTransactionDetails(encoded)
	if err != nil {
		t.Fatalf("DecodeTransactionDetails: %v", err)
	}
	if decoded.CodeClub == nil || decoded.CodeClub.ChildName != "Ama Mensah" {
		t.Errorf("decoded variant lost: %+v", decoded)
	}
}
