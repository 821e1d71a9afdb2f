package service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"ifind-attorney/internal/domain/model"
)

var (
	// ErrUnknownFeeCategory is returned for categories not in the schedule table.
	ErrUnknownFeeCategory = errors.New("unknown fee category")

	// ErrInvalidFeeAmount is returned for non-positive transaction amounts.
	ErrInvalidFeeAmount = errors.New("amount must be greater than zero")
)

// feeSchedules holds the statutory scale charges per transaction category,
// after the Legal Practitioners Remuneration Order scales. Each band's rate
// applies only to the slice of the amount that falls inside the band.
var feeSchedules = map[string]model.FeeSchedule{
	model.FeeCategoryPropertySale: {
		Category:   model.FeeCategoryPropertySale,
		MinimumFee: 100_000,
		Bands: []model.FeeBand{
			{UpTo: 5_000_000, Rate: 0.05},
			{UpTo: 20_000_000, Rate: 0.0375},
			{UpTo: 50_000_000, Rate: 0.025},
			{UpTo: 0, Rate: 0.0125},
		},
	},
	model.FeeCategoryLease: {
		Category:   model.FeeCategoryLease,
		MinimumFee: 50_000,
		Bands: []model.FeeBand{
			{UpTo: 1_000_000, Rate: 0.10},
			{UpTo: 5_000_000, Rate: 0.075},
			{UpTo: 0, Rate: 0.05},
		},
	},
	model.FeeCategoryMortgage: {
		Category:   model.FeeCategoryMortgage,
		MinimumFee: 75_000,
		Bands: []model.FeeBand{
			{UpTo: 10_000_000, Rate: 0.0225},
			{UpTo: 50_000_000, Rate: 0.015},
			{UpTo: 0, Rate: 0.0075},
		},
	},
}

// FeesService estimates statutory legal fees for common transactions.
type FeesService interface {
	Estimate(category string, amount float64) (*model.FeeEstimate, error)
}

type scaleFeesService struct{}

func NewFeesService() FeesService {
	return &scaleFeesService{}
}

// Estimate computes the fee as the sum over marginal bands, then applies the
// category's flat minimum when the banded total falls below it.
func (s *scaleFeesService) Estimate(category string, amount float64) (*model.FeeEstimate, error) {
	if amount <= 0 {
		return nil, ErrInvalidFeeAmount
	}

	schedule, ok := feeSchedules[strings.ToLower(strings.TrimSpace(category))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFeeCategory, category)
	}

	var total float64
	var breakdown []model.FeeBandBreakdown
	lower := 0.0
	for _, band := range schedule.Bands {
		upper := band.UpTo
		if upper == 0 || upper > amount {
			upper = amount
		}
		if upper <= lower {
			break
		}
		inBand := upper - lower
		fee := inBand * band.Rate
		total += fee
		breakdown = append(breakdown, model.FeeBandBreakdown{
			Band:         bandLabel(lower, band.UpTo),
			Rate:         band.Rate,
			AmountInBand: inBand,
			Fee:          fee,
		})
		lower = upper
		if band.UpTo == 0 {
			break
		}
	}

	estimate := &model.FeeEstimate{
		Category:  schedule.Category,
		Amount:    amount,
		Fee:       total,
		Breakdown: breakdown,
	}
	if total < schedule.MinimumFee {
		estimate.Fee = schedule.MinimumFee
		estimate.MinimumApplied = true
	}
	return estimate, nil
}

// bandLabel renders a band's bounds, e.g. "₦5,000,000 – ₦20,000,000".
func bandLabel(lower, upTo float64) string {
	if upTo == 0 {
		return fmt.Sprintf("Above ₦%s", formatNaira(lower))
	}
	return fmt.Sprintf("₦%s – ₦%s", formatNaira(lower), formatNaira(upTo))
}

// formatNaira renders a whole-naira amount with thousands separators.
func formatNaira(amount float64) string {
	digits := strconv.FormatFloat(amount, 'f', 0, 64)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	return b.String()
}
