package types

import "time"

// Effective statuses are a read-time derivation: the ingested value stays
// untouched so re-ingestion remains idempotent.

func EffectivePolicyStatus(p Policy, now time.Time) PolicyStatus {
	if p.Status == PolicyVigente && !p.EndDate.IsZero() && p.EndDate.Before(now) {
		return PolicyVencida
	}
	return p.Status
}

func EffectiveInstallmentStatus(in Installment, now time.Time) InstallmentStatus {
	if in.Status == InstallmentPendiente && !in.DueDate.IsZero() && in.DueDate.Before(now) {
		return InstallmentVencida
	}
	return in.Status
}
