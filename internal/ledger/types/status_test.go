package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var now = time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)

func TestEffectivePolicyStatus(t *testing.T) {
	t.Run("vigente past end date reads as vencida", func(t *testing.T) {
		p := Policy{Status: PolicyVigente, EndDate: now.AddDate(0, -1, 0)}
		assert.Equal(t, PolicyVencida, EffectivePolicyStatus(p, now))
	})

	t.Run("vigente before end date stays vigente", func(t *testing.T) {
		p := Policy{Status: PolicyVigente, EndDate: now.AddDate(0, 1, 0)}
		assert.Equal(t, PolicyVigente, EffectivePolicyStatus(p, now))
	})

	t.Run("cancelada is never reconciled", func(t *testing.T) {
		p := Policy{Status: PolicyCancelada, EndDate: now.AddDate(0, -1, 0)}
		assert.Equal(t, PolicyCancelada, EffectivePolicyStatus(p, now))
	})

	t.Run("zero end date is left alone", func(t *testing.T) {
		p := Policy{Status: PolicyVigente}
		assert.Equal(t, PolicyVigente, EffectivePolicyStatus(p, now))
	})

	t.Run("stored value is not mutated", func(t *testing.T) {
		p := Policy{Status: PolicyVigente, EndDate: now.AddDate(0, -1, 0)}
		_ = EffectivePolicyStatus(p, now)
		assert.Equal(t, PolicyVigente, p.Status)
	})
}

func TestEffectiveInstallmentStatus(t *testing.T) {
	t.Run("pendiente past due reads as vencida", func(t *testing.T) {
		in := Installment{Status: InstallmentPendiente, DueDate: now.AddDate(0, 0, -5)}
		assert.Equal(t, InstallmentVencida, EffectiveInstallmentStatus(in, now))
	})

	t.Run("pendiente before due stays pendiente", func(t *testing.T) {
		in := Installment{Status: InstallmentPendiente, DueDate: now.AddDate(0, 0, 5)}
		assert.Equal(t, InstallmentPendiente, EffectiveInstallmentStatus(in, now))
	})

	t.Run("pagada past due stays pagada", func(t *testing.T) {
		in := Installment{Status: InstallmentPagada, DueDate: now.AddDate(0, 0, -5)}
		assert.Equal(t, InstallmentPagada, EffectiveInstallmentStatus(in, now))
	})
}
