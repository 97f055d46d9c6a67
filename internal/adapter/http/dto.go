package httpadapter

import (
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"adrecon/internal/core/domain"
	"adrecon/internal/core/fixedpoint"
)

// validate is shared by every request type.
var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterCustomTypeFunc(amountField, decimal.Decimal{})
	_ = validate.RegisterValidation("uint128", validateUint128)
}

// amountField hands the validator the digits of an amount that passed
// fixedpoint.Check. Anything else maps to nil, which fails every tag, so
// an out-of-range amount is never expanded into a string.
func amountField(v reflect.Value) any {
	d, ok := v.Interface().(decimal.Decimal)
	if !ok || fixedpoint.Check(d) != nil {
		return nil
	}
	return d.String()
}

// validateUint128 accepts whole numbers in [0, 2^128-1].
func validateUint128(fl validator.FieldLevel) bool {
	d, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	return fixedpoint.Check(d) == nil
}

type validatable interface {
	Validate() error
}

type pricingRequest struct {
	Applies bool            `json:"applies"`
	Value   decimal.Decimal `json:"value" validate:"uint128"`
}

func (p pricingRequest) toDomain() domain.Pricing {
	return domain.Pricing{Applies: p.Applies, Value: p.Value}
}

// campaignRequest is the body of PUT /campaigns/{id}. Beyond amounts
// being unsigned integers, a campaign is stored as sent.
type campaignRequest struct {
	Name                    string          `json:"name"`
	TotalBudget             decimal.Decimal `json:"total_budget" validate:"uint128"`
	Currency                string          `json:"currency"`
	StartDate               string          `json:"start_date"`
	EndDate                 string          `json:"end_date"`
	Platforms               []string        `json:"platforms"`
	Advertiser              string          `json:"advertiser"`
	Brand                   string          `json:"brand"`
	ReconciliationThreshold uint32          `json:"reconciliation_threshold"`
	Decimals                uint32          `json:"decimals"`
	Version                 uint8           `json:"version"`
	CPC                     pricingRequest  `json:"cpc"`
	CPM                     pricingRequest  `json:"cpm"`
	CPL                     pricingRequest  `json:"cpl"`
}

func (c *campaignRequest) Validate() error {
	return validate.Struct(c)
}

func (c *campaignRequest) toDomain() domain.Campaign {
	return domain.Campaign{
		Name:                    c.Name,
		TotalBudget:             c.TotalBudget,
		Currency:                c.Currency,
		StartDate:               c.StartDate,
		EndDate:                 c.EndDate,
		Platforms:               c.Platforms,
		Advertiser:              c.Advertiser,
		Brand:                   c.Brand,
		ReconciliationThreshold: c.ReconciliationThreshold,
		Decimals:                c.Decimals,
		Version:                 c.Version,
		CPC:                     c.CPC.toDomain(),
		CPM:                     c.CPM.toDomain(),
		CPL:                     c.CPL.toDomain(),
	}
}

type observationRequest struct {
	CampaignID   string          `json:"campaign_id" validate:"required"`
	Platform     string          `json:"platform" validate:"required"`
	Date         string          `json:"date" validate:"required"`
	DateReceived string          `json:"date_received"`
	Source       string          `json:"source" validate:"required"`
	Impressions  decimal.Decimal `json:"impressions" validate:"uint128"`
	Clicks       decimal.Decimal `json:"clicks" validate:"uint128"`
	Conversions  decimal.Decimal `json:"conversions" validate:"uint128"`
}

func (o *observationRequest) Validate() error {
	return validate.Struct(o)
}

func (o *observationRequest) toDomain() domain.AggregatedData {
	return domain.AggregatedData{
		CampaignID:   o.CampaignID,
		Platform:     o.Platform,
		Date:         o.Date,
		DateReceived: o.DateReceived,
		Source:       o.Source,
		Impressions:  o.Impressions,
		Clicks:       o.Clicks,
		Conversions:  o.Conversions,
	}
}

// batchRequest is the body of POST /observations/batch.
type batchRequest struct {
	Observations []observationRequest `json:"observations" validate:"required,min=1,dive"`
}

func (b *batchRequest) Validate() error {
	return validate.Struct(b)
}

type billboardRequest struct {
	ID                  string `json:"id" validate:"required"`
	SpotDuration        uint32 `json:"spot_duration"`
	SpotsPerHour        uint32 `json:"spots_per_hour"`
	TotalSpots          uint32 `json:"total_spots"`
	ImpMultiplierPerDay uint32 `json:"imp_multiplier_per_day"`
}

type orderRequest struct {
	StartDate       int64              `json:"start_date" validate:"gte=0"`
	EndDate         int64              `json:"end_date" validate:"gtefield=StartDate"`
	TotalSpots      uint32             `json:"total_spots"`
	TotalAudiences  uint32             `json:"total_audiences"`
	CreativeList    []string           `json:"creative_list" validate:"dive,required"`
	TargetInventory []billboardRequest `json:"target_inventory" validate:"unique=ID,dive"`
}

func (o *orderRequest) Validate() error {
	return validate.Struct(o)
}

func (o *orderRequest) toDomain() domain.OrderData {
	inventory := make([]domain.Billboard, 0, len(o.TargetInventory))
	for _, b := range o.TargetInventory {
		inventory = append(inventory, domain.Billboard{
			ID:                  b.ID,
			SpotDuration:        b.SpotDuration,
			SpotsPerHour:        b.SpotsPerHour,
			TotalSpots:          b.TotalSpots,
			ImpMultiplierPerDay: b.ImpMultiplierPerDay,
		})
	}
	return domain.OrderData{
		Order: domain.Order{
			StartDate:      o.StartDate,
			EndDate:        o.EndDate,
			TotalSpots:     o.TotalSpots,
			TotalAudiences: o.TotalAudiences,
			CreativeList:   o.CreativeList,
		},
		TargetInventory: inventory,
	}
}

type sessionRequest struct {
	ID          string `json:"id"`
	OrderID     string `json:"order_id" validate:"required"`
	BillboardID string `json:"billboard_id" validate:"required"`
	CreativeID  string `json:"creative_id" validate:"required"`
	Timestamp   int64  `json:"timestamp"`
	Date        string `json:"date" validate:"required"`
	Duration    uint32 `json:"duration"`
}

func (s *sessionRequest) Validate() error {
	return validate.Struct(s)
}

func (s *sessionRequest) toDomain() domain.SessionData {
	return domain.SessionData{
		ID:          s.ID,
		OrderID:     s.OrderID,
		BillboardID: s.BillboardID,
		CreativeID:  s.CreativeID,
		Timestamp:   s.Timestamp,
		Date:        s.Date,
		Duration:    s.Duration,
	}
}
