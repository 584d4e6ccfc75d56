package pricing

const (
	FullRefundAfterHours    = 24
	PartialRefundAfterHours = 12

	FullRefundPercent    = 100
	PartialRefundPercent = 50
	NoRefundPercent      = 0
)

// RefundPercentage maps the time left before the slot starts to a refund bracket:
// more than 24h refunds everything, 12h up to and including 24h refunds half,
// anything shorter refunds nothing.
func RefundPercentage(hoursUntilStart float64) int {
	switch {
	case hoursUntilStart > FullRefundAfterHours:
		return FullRefundPercent
	case hoursUntilStart >= PartialRefundAfterHours:
		return PartialRefundPercent
	default:
		return NoRefundPercent
	}
}

func RefundAmount(totalPrice float64, percentage int) float64 {
	return RoundCents(totalPrice * float64(percentage) / 100)
}
