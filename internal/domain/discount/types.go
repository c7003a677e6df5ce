package discount

type Type string

const (
	TypePercentage  Type = "percentage"
	TypeFixedAmount Type = "fixed_amount"
	TypePromoCode   Type = "promo_code"
	TypeSeasonal    Type = "seasonal"
	TypeLongStay    Type = "long_stay"
)

var AllTypes = []Type{TypePercentage, TypeFixedAmount, TypePromoCode, TypeSeasonal, TypeLongStay}

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypePercentage, TypeFixedAmount, TypePromoCode, TypeSeasonal, TypeLongStay:
		return true
	default:
		return false
	}
}

func (t Type) Label() string {
	switch t {
	case TypePercentage:
		return "Percentage"
	case TypeFixedAmount:
		return "Fixed Amount"
	case TypePromoCode:
		return "Promo Code"
	case TypeSeasonal:
		return "Seasonal"
	case TypeLongStay:
		return "Long Stay"
	default:
		return string(t)
	}
}

// AppliesTo names the price bucket a discount is meant for.
type AppliesTo string

const (
	AppliesToRoomRates AppliesTo = "room_rates"
	AppliesToAddons    AppliesTo = "addons"
	AppliesToTotalBill AppliesTo = "total_bill"
)

func (a AppliesTo) String() string {
	return string(a)
}

func (a AppliesTo) IsValid() bool {
	switch a {
	case AppliesToRoomRates, AppliesToAddons, AppliesToTotalBill:
		return true
	default:
		return false
	}
}

type Category string

const (
	CategoryStandard Category = "standard"
	CategoryCode     Category = "code"
	CategorySeasonal Category = "seasonal"
	CategoryStay     Category = "stay"
	CategoryUnknown  Category = "unknown"
)

func CategoryOf(t Type) Category {
	switch t {
	case TypePercentage, TypeFixedAmount:
		return CategoryStandard
	case TypePromoCode:
		return CategoryCode
	case TypeSeasonal:
		return CategorySeasonal
	case TypeLongStay:
		return CategoryStay
	default:
		return CategoryUnknown
	}
}
