package service

import "time"

// RedemptionMetrics records outcomes of the redemption protocol.
type RedemptionMetrics interface {
	// ObserveRedemption records one attempt with its outcome label and duration.
	ObserveRedemption(outcome string, elapsed time.Duration)

	// IncScanIgnored counts scans suppressed by a scan session.
	IncScanIgnored(reason string)
}
