package constants

// Fixed keys of the local record store. Records are JSON-encoded arrays
// and objects under these keys, mirroring the key layout of the original
// client-side store.
const (
	StorageKeyBookings = "eventx:bookings"
	StorageKeyTickets  = "eventx:tickets"
	StorageKeyProfile  = "eventx:profile"
	StorageKeyEvents   = "eventx:events"
)

// WipeKeys are the keys removed by the user-confirmed "clear all data"
// action. The event catalog is reseeded on demand and stays.
var WipeKeys = []string{
	StorageKeyBookings,
	StorageKeyTickets,
	StorageKeyProfile,
}
