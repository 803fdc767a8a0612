package lifecycle

import (
	"testing"
	"time"

	"leaseflow/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func draftContract(guarantors ...entities.Guarantor) entities.Contract {
	return entities.Contract{
		ID:         "ct-1",
		PropertyID: "prop-1",
		Tenant:     entities.Party{Name: "Ana", Email: "ana@example.com"},
		Hoster:     entities.Party{Name: "Bruno", Email: "bruno@example.com"},
		Guarantors: guarantors,
		StartDate:  testNow.AddDate(0, 0, 1),
		EndDate:    testNow.AddDate(1, 0, 1),
		Terms:      entities.ContractTerms{RentAmount: 1200, PaymentFrequency: entities.PaymentFrequencyMonthly, PaymentDueDay: 5},
		Status:     entities.ContractStatusDraft,
		CreatedAt:  testNow,
	}
}

func pendingContract(guarantors ...entities.Guarantor) entities.Contract {
	c := draftContract(guarantors...)
	c.Status = entities.ContractStatusPendingSignatures
	return c
}

func TestSendForSignatures(t *testing.T) {
	c, err := SendForSignatures(draftContract(), testNow)
	require.NoError(t, err)
	assert.Equal(t, entities.ContractStatusPendingSignatures, c.Status)

	for _, status := range []entities.ContractStatus{
		entities.ContractStatusPendingSignatures,
		entities.ContractStatusActive,
		entities.ContractStatusExpired,
		entities.ContractStatusTerminated,
		entities.ContractStatusCancelled,
	} {
		c := draftContract()
		c.Status = status
		_, err := SendForSignatures(c, testNow)
		assert.ErrorIs(t, err, ErrInvalidTransition, "from %s", status)
	}
}

func TestSign(t *testing.T) {
	t.Run("tenant then hoster completes signatures", func(t *testing.T) {
		c := pendingContract()

		c, err := Sign(c, SignatureTenant, "", testNow)
		require.NoError(t, err)
		assert.True(t, c.Signatures.TenantSigned)
		require.NotNil(t, c.Signatures.TenantSignedAt)
		assert.Nil(t, c.SignedAt, "not complete until hoster signs")

		c, err = Sign(c, SignatureHoster, "", testNow)
		require.NoError(t, err)
		require.NotNil(t, c.SignedAt)
		assert.Equal(t, entities.ContractStatusPendingSignatures, c.Status, "signing never auto-activates")
	})

	t.Run("double sign rejected", func(t *testing.T) {
		c := pendingContract()
		c, err := Sign(c, SignatureTenant, "", testNow)
		require.NoError(t, err)
		_, err = Sign(c, SignatureTenant, "", testNow)
		assert.ErrorIs(t, err, ErrAlreadySigned)
	})

	t.Run("guarantor must be on the contract", func(t *testing.T) {
		c := pendingContract(entities.Guarantor{ID: "g-1", Name: "Carla"})
		_, err := Sign(c, SignatureGuarantor, "g-404", testNow)
		assert.ErrorIs(t, err, ErrUnknownGuarantor)

		c, err = Sign(c, SignatureGuarantor, "g-1", testNow)
		require.NoError(t, err)
		assert.True(t, c.Signatures.Guarantors["g-1"].Signed)
		_, err = Sign(c, SignatureGuarantor, "g-1", testNow)
		assert.ErrorIs(t, err, ErrAlreadySigned)
	})

	t.Run("outside pending_signatures rejected", func(t *testing.T) {
		c := draftContract()
		_, err := Sign(c, SignatureTenant, "", testNow)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}

func TestActivate(t *testing.T) {
	t.Run("no guarantors, unsigned", func(t *testing.T) {
		// totalSignatures=2, completedSignatures=0, activate unavailable.
		c := pendingContract()
		assert.Equal(t, 2, RequiredSignatures(c))
		assert.Equal(t, 0, CompletedSignatures(c))
		assert.Equal(t, []Action{ActionCancel}, AvailableActions(c, testNow))

		_, err := Activate(c, testNow)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("both parties signed", func(t *testing.T) {
		c := pendingContract()
		c, _ = Sign(c, SignatureTenant, "", testNow)
		c, _ = Sign(c, SignatureHoster, "", testNow)
		assert.Equal(t, RequiredSignatures(c), CompletedSignatures(c))
		assert.Equal(t, []Action{ActionActivate, ActionCancel}, AvailableActions(c, testNow))

		c, err := Activate(c, testNow)
		require.NoError(t, err)
		assert.Equal(t, entities.ContractStatusActive, c.Status)
		require.NotNil(t, c.ActivatedAt)
		assert.Equal(t, testNow, *c.ActivatedAt)
	})

	t.Run("guarantor signature is required too", func(t *testing.T) {
		c := pendingContract(entities.Guarantor{ID: "g-1"})
		c, _ = Sign(c, SignatureTenant, "", testNow)
		c, _ = Sign(c, SignatureHoster, "", testNow)

		_, err := Activate(c, testNow)
		assert.ErrorIs(t, err, ErrInvalidTransition)

		c, _ = Sign(c, SignatureGuarantor, "g-1", testNow)
		c, err = Activate(c, testNow)
		require.NoError(t, err)
		assert.Equal(t, entities.ContractStatusActive, c.Status)
	})

	t.Run("activate is legal exactly when the ratio hits 1", func(t *testing.T) {
		c := pendingContract(entities.Guarantor{ID: "g-1"}, entities.Guarantor{ID: "g-2"})
		steps := []func(entities.Contract) (entities.Contract, error){
			func(c entities.Contract) (entities.Contract, error) { return Sign(c, SignatureTenant, "", testNow) },
			func(c entities.Contract) (entities.Contract, error) { return Sign(c, SignatureHoster, "", testNow) },
			func(c entities.Contract) (entities.Contract, error) { return Sign(c, SignatureGuarantor, "g-1", testNow) },
			func(c entities.Contract) (entities.Contract, error) { return Sign(c, SignatureGuarantor, "g-2", testNow) },
		}
		for i, step := range steps {
			ratio := SignatureProgress(c)
			assert.GreaterOrEqual(t, ratio, 0.0)
			assert.Less(t, ratio, 1.0)
			_, err := Activate(c, testNow)
			assert.ErrorIs(t, err, ErrInvalidTransition, "step %d", i)

			var stepErr error
			c, stepErr = step(c)
			require.NoError(t, stepErr)
		}
		assert.Equal(t, 1.0, SignatureProgress(c))
		_, err := Activate(c, testNow)
		assert.NoError(t, err)
	})
}

func TestTerminate(t *testing.T) {
	active := func() entities.Contract {
		c := pendingContract()
		c, _ = Sign(c, SignatureTenant, "", testNow)
		c, _ = Sign(c, SignatureHoster, "", testNow)
		c, _ = Activate(c, testNow)
		return c
	}

	t.Run("requires reason", func(t *testing.T) {
		_, err := Terminate(active(), "", testNow)
		assert.ErrorIs(t, err, ErrTerminationReasonRequired)
	})

	t.Run("records reason and timestamp", func(t *testing.T) {
		c, err := Terminate(active(), "property sold", testNow)
		require.NoError(t, err)
		assert.Equal(t, entities.ContractStatusTerminated, c.Status)
		assert.Equal(t, "property sold", c.TerminationReason)
		require.NotNil(t, c.TerminatedAt)
	})

	t.Run("only from active", func(t *testing.T) {
		_, err := Terminate(pendingContract(), "reason", testNow)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}

func TestRenew(t *testing.T) {
	active := func() entities.Contract {
		c := pendingContract()
		c, _ = Sign(c, SignatureTenant, "", testNow)
		c, _ = Sign(c, SignatureHoster, "", testNow)
		c, _ = Activate(c, testNow)
		return c
	}

	t.Run("active contract must extend past current end date", func(t *testing.T) {
		c := active()
		_, err := Renew(c, c.EndDate, nil, testNow)
		assert.ErrorIs(t, err, ErrRenewalEndDateNotExtending)

		newEnd := c.EndDate.AddDate(1, 0, 0)
		c, err = Renew(c, newEnd, nil, testNow)
		require.NoError(t, err)
		assert.Equal(t, newEnd, c.EndDate)
		assert.Equal(t, 1, c.RenewalCount)
		assert.Equal(t, entities.ContractStatusActive, c.Status)
	})

	t.Run("expired contract renews back to active", func(t *testing.T) {
		c := active()
		c.EndDate = testNow.Add(-time.Hour)
		c, err := Expire(c, testNow)
		require.NoError(t, err)

		_, err = Renew(c, testNow.Add(-time.Minute), nil, testNow)
		assert.ErrorIs(t, err, ErrRenewalEndDateNotExtending)

		newTerms := c.Terms
		newTerms.RentAmount = 1350
		c, err = Renew(c, testNow.AddDate(1, 0, 0), &newTerms, testNow)
		require.NoError(t, err)
		assert.Equal(t, entities.ContractStatusActive, c.Status)
		assert.Equal(t, 1350.0, c.Terms.RentAmount)
	})

	t.Run("not from draft or terminated", func(t *testing.T) {
		_, err := Renew(draftContract(), testNow.AddDate(2, 0, 0), nil, testNow)
		assert.ErrorIs(t, err, ErrInvalidTransition)

		c, _ := Terminate(active(), "reason", testNow)
		_, err = Renew(c, testNow.AddDate(2, 0, 0), nil, testNow)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}

func TestCancel(t *testing.T) {
	c, err := Cancel(draftContract(), testNow)
	require.NoError(t, err)
	assert.Equal(t, entities.ContractStatusCancelled, c.Status)

	c2, err := Cancel(pendingContract(), testNow)
	require.NoError(t, err)
	assert.Equal(t, entities.ContractStatusCancelled, c2.Status)

	active := pendingContract()
	active, _ = Sign(active, SignatureTenant, "", testNow)
	active, _ = Sign(active, SignatureHoster, "", testNow)
	active, _ = Activate(active, testNow)
	_, err = Cancel(active, testNow)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestExpire(t *testing.T) {
	c := pendingContract()
	c, _ = Sign(c, SignatureTenant, "", testNow)
	c, _ = Sign(c, SignatureHoster, "", testNow)
	c, _ = Activate(c, testNow)

	_, err := Expire(c, testNow)
	assert.ErrorIs(t, err, ErrInvalidTransition, "end date still ahead")

	c.EndDate = testNow.Add(-time.Hour)
	c, err = Expire(c, testNow)
	require.NoError(t, err)
	assert.Equal(t, entities.ContractStatusExpired, c.Status)
}

func TestAvailableActions(t *testing.T) {
	t.Run("draft", func(t *testing.T) {
		assert.Equal(t, []Action{ActionSendForSignatures, ActionCancel}, AvailableActions(draftContract(), testNow))
	})

	t.Run("active far from end date", func(t *testing.T) {
		c := pendingContract()
		c, _ = Sign(c, SignatureTenant, "", testNow)
		c, _ = Sign(c, SignatureHoster, "", testNow)
		c, _ = Activate(c, testNow)
		assert.Equal(t, []Action{ActionTerminate}, AvailableActions(c, testNow))
	})

	t.Run("active ending in 10 days offers renew", func(t *testing.T) {
		c := pendingContract()
		c, _ = Sign(c, SignatureTenant, "", testNow)
		c, _ = Sign(c, SignatureHoster, "", testNow)
		c, _ = Activate(c, testNow)
		c.EndDate = testNow.AddDate(0, 0, 10)
		assert.True(t, IsExpiringSoon(c, testNow))
		assert.Equal(t, []Action{ActionTerminate, ActionRenew}, AvailableActions(c, testNow))
	})

	t.Run("expired and terminal states", func(t *testing.T) {
		c := draftContract()
		c.Status = entities.ContractStatusExpired
		assert.Equal(t, []Action{ActionRenew}, AvailableActions(c, testNow))

		c.Status = entities.ContractStatusTerminated
		assert.Empty(t, AvailableActions(c, testNow))
		c.Status = entities.ContractStatusCancelled
		assert.Empty(t, AvailableActions(c, testNow))
	})
}

// No sequence of actions may move a contract backwards in its lifecycle.
func TestStatusMonotonic(t *testing.T) {
	rank := map[entities.ContractStatus]int{
		entities.ContractStatusDraft:             0,
		entities.ContractStatusPendingSignatures: 1,
		entities.ContractStatusActive:            2,
		entities.ContractStatusExpired:           3,
		entities.ContractStatusTerminated:        3,
		entities.ContractStatusCancelled:         3,
	}

	type step func(entities.Contract) (entities.Contract, error)
	steps := []step{
		func(c entities.Contract) (entities.Contract, error) { return SendForSignatures(c, testNow) },
		func(c entities.Contract) (entities.Contract, error) { return Sign(c, SignatureTenant, "", testNow) },
		func(c entities.Contract) (entities.Contract, error) { return Sign(c, SignatureHoster, "", testNow) },
		func(c entities.Contract) (entities.Contract, error) { return Activate(c, testNow) },
		func(c entities.Contract) (entities.Contract, error) { return Terminate(c, "r", testNow) },
		func(c entities.Contract) (entities.Contract, error) { return Expire(c, testNow) },
		func(c entities.Contract) (entities.Contract, error) {
			return Renew(c, c.EndDate.AddDate(1, 0, 0), nil, testNow)
		},
		func(c entities.Contract) (entities.Contract, error) { return Cancel(c, testNow) },
	}

	// Exhaustive depth-4 walk over every action sequence from draft. Renewal
	// legitimately moves expired back to active, which is a forward move in
	// lifecycle terms; everything else must never decrease the rank except
	// that single documented re-entry.
	var walk func(c entities.Contract, depth int)
	walk = func(c entities.Contract, depth int) {
		if depth == 0 {
			return
		}
		for _, s := range steps {
			next, err := s(c)
			if err != nil {
				continue
			}
			if next.Status != entities.ContractStatusActive || c.Status != entities.ContractStatusExpired {
				assert.GreaterOrEqual(t, rank[next.Status], rank[c.Status],
					"%s -> %s went backwards", c.Status, next.Status)
			}
			assert.NotEqual(t, entities.ContractStatusDraft, next.Status,
				"draft is never reachable from %s", c.Status)
			walk(next, depth-1)
		}
	}
	start := draftContract()
	start.EndDate = testNow.Add(-time.Hour) // makes Expire reachable in the walk
	walk(start, 4)
}
