package domain

// Time-of-day band derived from the pickup hour.
type TimeBucket string

const (
	BucketMorning   TimeBucket = "morning"
	BucketAfternoon TimeBucket = "afternoon"
	BucketEvening   TimeBucket = "evening"
)

// BucketForMinutes maps minutes-since-midnight to one of the three
// fixed time-of-day bands.
func BucketForMinutes(min int) TimeBucket {
	switch {
	case min < 12*60:
		return BucketMorning
	case min < 17*60:
		return BucketAfternoon
	default:
		return BucketEvening
	}
}

// Represents a single courier order as snapshotted for one planning day.
// Times are human-formatted clock strings ("7:00 AM") and addresses are
// free text with an embedded 5-digit postal code; both come from external
// sources and may be malformed. Orders are immutable inputs to the
// grouping engine: the engine proposes groups, it never mutates orders.
type Order struct {
	ID             string
	OrderNumber    string
	PickupTime     string
	PickupAddress  string
	DropoffTime    string
	DropoffAddress string
	Bucket         TimeBucket
	GroupID        *string
}

// Whether the order already belongs to a driver run.
func (o *Order) Grouped() bool {
	return o.GroupID != nil && *o.GroupID != ""
}
