package domain

// BookingCategory classifies an extracted booking.
type BookingCategory string

const (
	BookingCategoryFlight     BookingCategory = "flight"
	BookingCategoryHotel      BookingCategory = "hotel"
	BookingCategoryRestaurant BookingCategory = "restaurant"
	BookingCategoryActivity   BookingCategory = "activity"
	BookingCategoryOther      BookingCategory = "other"
)

// IsValid reports whether the category is one of the known values.
// The extraction pipeline does not enforce this; it exists for callers
// that want to check model output before acting on it.
func (c BookingCategory) IsValid() bool {
	switch c {
	case BookingCategoryFlight, BookingCategoryHotel, BookingCategoryRestaurant,
		BookingCategoryActivity, BookingCategoryOther:
		return true
	default:
		return false
	}
}

// MaxUploadBytes is the size ceiling for uploaded booking documents.
const MaxUploadBytes = 10 << 20 // 10 MiB

// AllowedUploadTypes maps the MIME content types accepted by document intake.
var AllowedUploadTypes = map[string]struct{}{
	"image/jpeg":      {},
	"image/png":       {},
	"image/gif":       {},
	"image/webp":      {},
	"application/pdf": {},
}
