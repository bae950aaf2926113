package settings

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rotikita/rotikita-backend/pkg/config"
	"github.com/rotikita/rotikita-backend/pkg/enums"
	pkgerrors "github.com/rotikita/rotikita-backend/pkg/errors"
)

// Setting keys recognized in the settings table. Shipping fees use the
// "shipping_fee_<region>" pattern.
const (
	KeyTaxRate        = "tax_rate"
	KeyStoreName      = "store_name"
	KeyWhatsAppNumber = "whatsapp_number"
	KeyDeliveryNotes  = "delivery_notes"
	KeyPickupNotes    = "pickup_notes"

	shippingFeeKeyPrefix = "shipping_fee_"
)

// StoreSettings is the typed view of the settings table. ShippingFees never
// carries an entry for RegionOther: that fee is negotiated off-platform.
type StoreSettings struct {
	TaxRate        float64                        `json:"tax_rate"`
	ShippingFees   map[enums.ShippingRegion]int64 `json:"shipping_fees"`
	WhatsAppNumber string                         `json:"whatsapp_number"`
	StoreName      string                         `json:"store_name"`
	DeliveryNotes  string                         `json:"delivery_notes"`
	PickupNotes    string                         `json:"pickup_notes"`
}

// Service reads settings per request. Values are not cached: the latest
// committed row wins on every call.
type Service interface {
	Get(ctx context.Context) (*StoreSettings, error)
}

type service struct {
	repo     Repository
	defaults config.StoreDefaultsConfig
}

// NewService builds the settings service with the configured fallbacks.
func NewService(repo Repository, defaults config.StoreDefaultsConfig) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("settings repository required")
	}
	return &service{repo: repo, defaults: defaults}, nil
}

// Defaults returns the settings used when the table is unreachable, so
// pricing display never fails on a settings outage.
func (s *service) Defaults() *StoreSettings {
	return &StoreSettings{
		TaxRate:        s.defaults.TaxRate,
		ShippingFees:   map[enums.ShippingRegion]int64{},
		WhatsAppNumber: s.defaults.WhatsAppNumber,
		StoreName:      s.defaults.StoreName,
	}
}

func (s *service) Get(ctx context.Context) (*StoreSettings, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return s.Defaults(), pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load store settings")
	}

	out := s.Defaults()
	for _, row := range rows {
		switch row.Key {
		case KeyTaxRate:
			rate, err := strconv.ParseFloat(row.Value, 64)
			if err == nil && rate >= 0 && rate <= 1 {
				out.TaxRate = rate
			}
		case KeyStoreName:
			if row.Value != "" {
				out.StoreName = row.Value
			}
		case KeyWhatsAppNumber:
			if row.Value != "" {
				out.WhatsAppNumber = row.Value
			}
		case KeyDeliveryNotes:
			out.DeliveryNotes = row.Value
		case KeyPickupNotes:
			out.PickupNotes = row.Value
		default:
			if region, fee, ok := parseShippingFeeRow(row.Key, row.Value); ok {
				out.ShippingFees[region] = fee
			}
		}
	}
	return out, nil
}

// parseShippingFeeRow decodes "shipping_fee_<region>" keys. Malformed values
// and unknown regions are skipped so one bad row never breaks the fee table.
func parseShippingFeeRow(key, value string) (enums.ShippingRegion, int64, bool) {
	if len(key) <= len(shippingFeeKeyPrefix) || key[:len(shippingFeeKeyPrefix)] != shippingFeeKeyPrefix {
		return "", 0, false
	}
	region, err := enums.ParseShippingRegion(key[len(shippingFeeKeyPrefix):])
	if err != nil || region == enums.RegionOther {
		return "", 0, false
	}
	fee, err := strconv.ParseInt(value, 10, 64)
	if err != nil || fee < 0 {
		return "", 0, false
	}
	return region, fee, true
}
