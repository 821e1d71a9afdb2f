package model

// Fee categories accepted by the statutory fee calculator.
const (
	FeeCategoryPropertySale = "property_sale"
	FeeCategoryLease        = "lease"
	FeeCategoryMortgage     = "mortgage"
)

// FeeBand is one tier of a scale-charge schedule. The band covers the slice
// of the transaction amount between the previous band's UpTo and this one's;
// UpTo of 0 means the band is unbounded.
type FeeBand struct {
	UpTo float64
	Rate float64
}

// FeeSchedule is a statutory scale for one transaction category.
type FeeSchedule struct {
	Category   string
	MinimumFee float64
	Bands      []FeeBand
}

// FeeEstimateRequest carries the inputs to POST /api/fees/estimate.
type FeeEstimateRequest struct {
	Category string  `json:"category" binding:"required"`
	Amount   float64 `json:"amount" binding:"required,gt=0"`
}

// FeeBandBreakdown is one line of the per-band fee breakdown.
type FeeBandBreakdown struct {
	Band         string  `json:"band"`
	Rate         float64 `json:"rate"`
	AmountInBand float64 `json:"amountInBand"`
	Fee          float64 `json:"fee"`
}

// FeeEstimate is the response for POST /api/fees/estimate.
type FeeEstimate struct {
	Category       string             `json:"category"`
	Amount         float64            `json:"amount"`
	Fee            float64            `json:"fee"`
	Breakdown      []FeeBandBreakdown `json:"breakdown"`
	MinimumApplied bool               `json:"minimumApplied"`
}
