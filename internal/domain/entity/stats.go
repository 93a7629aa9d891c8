package entity

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Channel is the submission pathway. Each channel maintains its own counter
// inside the customer's attribute bag.
type Channel string

const (
	ChannelOrder    Channel = "order"
	ChannelCatering Channel = "catering"
)

// Attribute-bag keys. These are the only keys the intake pipeline touches;
// everything else in the bag is carried through untouched.
const (
	statsKeyOrders           = "number_of_orders"
	statsKeyCateringRequests = "number_of_catering_requests"
	statsKeyTotalSpent       = "total_spent"
	statsKeyLoyaltyReward    = "loyalty_reward_available"
)

// CustomerStats is the typed view of a customer's rolling-aggregate
// attribute bag. The bag itself is schema-less at the storage boundary, so
// unknown keys are preserved verbatim across a read-modify-write cycle.
type CustomerStats struct {
	Orders                 int
	CateringRequests       int
	TotalSpent             decimal.Decimal
	LoyaltyRewardAvailable bool

	extra map[string]json.RawMessage
}

// ParseCustomerStats decodes a stored attribute bag. Callers are expected to
// treat a decode error as an empty bag: the stats are best-effort telemetry,
// not a ledger of record.
func ParseCustomerStats(data []byte) (CustomerStats, error) {
	var stats CustomerStats
	if len(data) == 0 {
		return stats, nil
	}
	if err := json.Unmarshal(data, &stats); err != nil {
		return CustomerStats{}, err
	}

	return stats, nil
}

// Record folds one submission into the aggregates: the channel-specific
// counter increments by one and the total adds the submission's amount.
func (s *CustomerStats) Record(channel Channel, total decimal.Decimal) {
	switch channel {
	case ChannelCatering:
		s.CateringRequests++
	default:
		s.Orders++
	}
	s.TotalSpent = s.TotalSpent.Add(total)
}

// UnmarshalJSON decodes the known aggregate keys and stashes every other key
// untouched so a later marshal round-trips it byte-for-byte.
func (s *CustomerStats) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	parsed := CustomerStats{}
	for key, value := range raw {
		var err error
		switch key {
		case statsKeyOrders:
			err = json.Unmarshal(value, &parsed.Orders)
		case statsKeyCateringRequests:
			err = json.Unmarshal(value, &parsed.CateringRequests)
		case statsKeyTotalSpent:
			err = json.Unmarshal(value, &parsed.TotalSpent)
		case statsKeyLoyaltyReward:
			err = json.Unmarshal(value, &parsed.LoyaltyRewardAvailable)
		default:
			if parsed.extra == nil {
				parsed.extra = make(map[string]json.RawMessage)
			}
			parsed.extra[key] = value
		}
		if err != nil {
			return err
		}
	}

	*s = parsed

	return nil
}

// MarshalJSON serializes the aggregates plus any preserved unknown keys.
func (s CustomerStats) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(s.extra)+4)
	for key, value := range s.extra {
		out[key] = value
	}

	ordersJSON, err := json.Marshal(s.Orders)
	if err != nil {
		return nil, err
	}
	cateringJSON, err := json.Marshal(s.CateringRequests)
	if err != nil {
		return nil, err
	}
	loyaltyJSON, err := json.Marshal(s.LoyaltyRewardAvailable)
	if err != nil {
		return nil, err
	}

	out[statsKeyOrders] = ordersJSON
	out[statsKeyCateringRequests] = cateringJSON
	// Emit the total as a bare JSON number, matching what earlier writers of
	// the bag produced.
	out[statsKeyTotalSpent] = json.RawMessage(s.TotalSpent.String())
	out[statsKeyLoyaltyReward] = loyaltyJSON

	return json.Marshal(out)
}
