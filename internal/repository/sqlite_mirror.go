package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/khancreations/shootsync/internal/db"
	"github.com/khancreations/shootsync/internal/domain"
)

// SQLiteMirrorRepo implements MirrorRepo against the backup_snapshots table,
// which stands in for the remote store. The snapshot is one JSON payload of
// the full collection plus its timestamp, matching the cloud mirror layout:
// { timestamp, data: [...] }.
type SQLiteMirrorRepo struct {
	db db.DBTX
}

// NewSQLiteMirrorRepo creates a new SQLiteMirrorRepo.
func NewSQLiteMirrorRepo(conn db.DBTX) *SQLiteMirrorRepo {
	return &SQLiteMirrorRepo{db: conn}
}

// mirrorBooking is the wire shape of one booking inside a snapshot payload.
type mirrorBooking struct {
	ID              string                `json:"id"`
	ClientName      string                `json:"clientName"`
	ClientPhone     string                `json:"clientPhone,omitempty"`
	GroomName       string                `json:"groomName,omitempty"`
	BrideName       string                `json:"brideName,omitempty"`
	EventTitle      string                `json:"eventTitle"`
	Venue           string                `json:"venue"`
	Notes           string                `json:"notes,omitempty"`
	StartDate       string                `json:"startDate"`
	EndDate         string                `json:"endDate"`
	PackageAmount   int64                 `json:"packageAmount"`
	AdvanceAmount   int64                 `json:"advanceAmount"`
	CreatedAt       time.Time             `json:"createdAt"`
	ShootDoneDate   *time.Time            `json:"shootDoneDate,omitempty"`
	EditingTasks    []mirrorTask          `json:"editingTasks"`
	EditingProgress int                   `json:"editingProgress"`
	DeliveryStatus  domain.DeliveryStatus `json:"deliveryStatus"`
	DeliveryLink    string                `json:"deliveryLink,omitempty"`
	DeliveredItems  []mirrorDelivery      `json:"deliveredItems"`
	LastPaymentDate *time.Time            `json:"lastPaymentDate,omitempty"`
}

type mirrorTask struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	IsCompleted bool   `json:"isCompleted"`
}

type mirrorDelivery struct {
	DeliveredAt time.Time `json:"deliveredAt"`
	Note        string    `json:"note"`
}

func (r *SQLiteMirrorRepo) Put(ctx context.Context, snap Snapshot) error {
	payload, err := json.Marshal(toMirrorBookings(snap.Bookings))
	if err != nil {
		return fmt.Errorf("encoding snapshot payload: %w", err)
	}

	query := `INSERT OR REPLACE INTO backup_snapshots (id, taken_at, payload)
		VALUES ('latest', ?, ?)`
	if _, err := r.db.ExecContext(ctx, query,
		snap.TakenAt.Format(time.RFC3339), string(payload)); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return nil
}

func (r *SQLiteMirrorRepo) Latest(ctx context.Context) (*Snapshot, error) {
	query := `SELECT taken_at, payload FROM backup_snapshots WHERE id = 'latest'`
	row := r.db.QueryRowContext(ctx, query)

	var takenAtStr, payload string
	if err := row.Scan(&takenAtStr, &payload); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("backup snapshot: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning snapshot: %w", err)
	}

	takenAt, err := time.Parse(time.RFC3339, takenAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing taken_at: %w", err)
	}

	var wire []mirrorBooking
	if err := json.Unmarshal([]byte(payload), &wire); err != nil {
		return nil, fmt.Errorf("decoding snapshot payload: %w", err)
	}

	bookings, err := fromMirrorBookings(wire)
	if err != nil {
		return nil, err
	}
	return &Snapshot{TakenAt: takenAt, Bookings: bookings}, nil
}

func toMirrorBookings(bookings []*domain.Booking) []mirrorBooking {
	wire := make([]mirrorBooking, 0, len(bookings))
	for _, b := range bookings {
		m := mirrorBooking{
			ID:              b.ID,
			ClientName:      b.ClientName,
			ClientPhone:     b.ClientPhone,
			GroomName:       b.GroomName,
			BrideName:       b.BrideName,
			EventTitle:      b.EventTitle,
			Venue:           b.Venue,
			Notes:           b.Notes,
			StartDate:       b.StartDate.Format(dateLayout),
			EndDate:         b.EndDate.Format(dateLayout),
			PackageAmount:   b.PackageAmount,
			AdvanceAmount:   b.AdvanceAmount,
			CreatedAt:       b.CreatedAt,
			ShootDoneDate:   b.ShootDoneDate,
			EditingProgress: b.EditingProgress,
			DeliveryStatus:  b.DeliveryStatus,
			DeliveryLink:    b.DeliveryLink,
			LastPaymentDate: b.LastPaymentDate,
		}
		m.EditingTasks = make([]mirrorTask, 0, len(b.EditingTasks))
		for _, t := range b.EditingTasks {
			m.EditingTasks = append(m.EditingTasks, mirrorTask(t))
		}
		m.DeliveredItems = make([]mirrorDelivery, 0, len(b.DeliveredItems))
		for _, rec := range b.DeliveredItems {
			m.DeliveredItems = append(m.DeliveredItems, mirrorDelivery(rec))
		}
		wire = append(wire, m)
	}
	return wire
}

func fromMirrorBookings(wire []mirrorBooking) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0, len(wire))
	for _, m := range wire {
		start, err := time.Parse(dateLayout, m.StartDate)
		if err != nil {
			return nil, fmt.Errorf("parsing snapshot startDate: %w", err)
		}
		end, err := time.Parse(dateLayout, m.EndDate)
		if err != nil {
			return nil, fmt.Errorf("parsing snapshot endDate: %w", err)
		}

		b := &domain.Booking{
			ID:              m.ID,
			ClientName:      m.ClientName,
			ClientPhone:     m.ClientPhone,
			GroomName:       m.GroomName,
			BrideName:       m.BrideName,
			EventTitle:      m.EventTitle,
			Venue:           m.Venue,
			Notes:           m.Notes,
			StartDate:       start,
			EndDate:         end,
			PackageAmount:   m.PackageAmount,
			AdvanceAmount:   m.AdvanceAmount,
			CreatedAt:       m.CreatedAt,
			ShootDoneDate:   m.ShootDoneDate,
			EditingProgress: m.EditingProgress,
			DeliveryStatus:  m.DeliveryStatus,
			DeliveryLink:    m.DeliveryLink,
			LastPaymentDate: m.LastPaymentDate,
		}
		b.EditingTasks = make([]domain.EditingTask, 0, len(m.EditingTasks))
		for _, t := range m.EditingTasks {
			b.EditingTasks = append(b.EditingTasks, domain.EditingTask(t))
		}
		b.DeliveredItems = make([]domain.DeliveryRecord, 0, len(m.DeliveredItems))
		for _, rec := range m.DeliveredItems {
			b.DeliveredItems = append(b.DeliveredItems, domain.DeliveryRecord(rec))
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}
