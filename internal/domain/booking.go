package domain

import "time"

// Booking is the aggregate record for one client engagement: the event, its
// dates, the money, and the post-shoot production state.
type Booking struct {
	ID          string
	ClientName  string
	ClientPhone string
	GroomName   string
	BrideName   string
	EventTitle  string
	Venue       string
	Notes       string

	// Day granularity. EndDate is corrected to StartDate at save time when
	// it falls earlier.
	StartDate time.Time
	EndDate   time.Time

	PackageAmount int64
	AdvanceAmount int64

	CreatedAt time.Time

	// Production tracking
	ShootDoneDate   *time.Time
	EditingTasks    []EditingTask
	EditingProgress int // 0-100, always derived from EditingTasks
	DeliveryStatus  DeliveryStatus
	DeliveryLink    string
	DeliveredItems  []DeliveryRecord
	LastPaymentDate *time.Time
}

// EditingTask is one named step of the post-production checklist.
// Identity is by ID.
type EditingTask struct {
	ID          string
	Label       string
	IsCompleted bool
}

// DeliveryRecord is one timestamped hand-over appended by the deliver action.
type DeliveryRecord struct {
	DeliveredAt time.Time
	Note        string
}

// Balance returns the outstanding amount, clamped at zero. The raw difference
// may be transiently negative when a collected payment overshoots the package
// price; it is never presented as negative.
func (b *Booking) Balance() int64 {
	bal := b.PackageAmount - b.AdvanceAmount
	if bal < 0 {
		return 0
	}
	return bal
}

// IsPaid reports whether nothing is outstanding.
func (b *Booking) IsPaid() bool {
	return b.PackageAmount-b.AdvanceAmount <= 0
}

// CompletedTaskCount returns the number of checked checklist items.
func (b *Booking) CompletedTaskCount() int {
	n := 0
	for _, t := range b.EditingTasks {
		if t.IsCompleted {
			n++
		}
	}
	return n
}

// DisplayID returns a short identifier for display: the first 8 characters
// of the booking ID.
func (b *Booking) DisplayID() string {
	if len(b.ID) >= 8 {
		return b.ID[:8]
	}
	return b.ID
}

// Clone returns a deep copy. Lifecycle transitions operate on copies so a
// failed save never leaves a half-mutated record in memory.
func (b *Booking) Clone() *Booking {
	c := *b
	if b.ShootDoneDate != nil {
		t := *b.ShootDoneDate
		c.ShootDoneDate = &t
	}
	if b.LastPaymentDate != nil {
		t := *b.LastPaymentDate
		c.LastPaymentDate = &t
	}
	c.EditingTasks = make([]EditingTask, len(b.EditingTasks))
	copy(c.EditingTasks, b.EditingTasks)
	c.DeliveredItems = make([]DeliveryRecord, len(b.DeliveredItems))
	copy(c.DeliveredItems, b.DeliveredItems)
	return &c
}
