package request

import (
	"testing"

	"leaseflow/internal/domain/entities"
)

func TestContractTermsRequestToEntity(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		var terms *ContractTermsRequest
		if terms.ToEntity() != nil {
			t.Fatal("nil terms must convert to nil")
		}
	})

	t.Run("nested policies are copied", func(t *testing.T) {
		terms := &ContractTermsRequest{
			RentAmount:       1500,
			DepositAmount:    3000,
			PaymentFrequency: "monthly",
			PaymentDueDay:    5,
			LateFee:          &LateFeeRequest{Amount: 50, GraceDays: 3},
			Maintenance:      "hoster",
			Pets:             &PetPolicyRequest{Allowed: true, Deposit: 200},
			Renewal:          &RenewalTermsRequest{Automatic: true, NoticePeriodDays: 60},
		}

		e := terms.ToEntity()
		if e.PaymentFrequency != entities.PaymentFrequencyMonthly {
			t.Fatalf("unexpected frequency: %s", e.PaymentFrequency)
		}
		if e.LateFee == nil || e.LateFee.GraceDays != 3 {
			t.Fatalf("late fee not copied: %+v", e.LateFee)
		}
		if !e.Pets.Allowed || e.Pets.Deposit != 200 {
			t.Fatalf("pet policy not copied: %+v", e.Pets)
		}
		if e.Renewal == nil || e.Renewal.NoticePeriodDays != 60 {
			t.Fatalf("renewal terms not copied: %+v", e.Renewal)
		}
	})
}

func TestPartyRequestToEntity(t *testing.T) {
	p := PartyRequest{Name: "  Alice Tenant ", Email: " alice@example.com ", Phone: "555-0100"}
	e := p.ToEntity()
	if e.Name != "Alice Tenant" || e.Email != "alice@example.com" {
		t.Fatalf("expected trimmed fields, got %+v", e)
	}
}

func TestToEntityGuarantors(t *testing.T) {
	if ToEntityGuarantors(nil) != nil {
		t.Fatal("nil slice must stay nil")
	}

	out := ToEntityGuarantors([]GuarantorRequest{
		{ID: "g-1", Name: "Carol", Email: "carol@example.com"},
	})
	if len(out) != 1 || out[0].ID != "g-1" {
		t.Fatalf("unexpected guarantors: %+v", out)
	}
}
