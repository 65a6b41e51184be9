package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/khancreations/shootsync/internal/db"
	"github.com/khancreations/shootsync/internal/domain"
)

// bookingColumns is the canonical SELECT column list for bookings.
const bookingColumns = `id, client_name, client_phone, groom_name, bride_name,
		event_title, venue, notes, start_date, end_date,
		package_amount, advance_amount, shoot_done_date, editing_progress,
		delivery_status, delivery_link, last_payment_date, created_at`

// SQLiteBookingRepo implements BookingRepo using a SQLite database.
//
// Upsert issues several statements (booking row plus its checklist and
// delivery records); callers that need atomicity run it inside a
// db.UnitOfWork transaction, which the service layer always does.
type SQLiteBookingRepo struct {
	db db.DBTX
}

// NewSQLiteBookingRepo creates a new SQLiteBookingRepo.
func NewSQLiteBookingRepo(conn db.DBTX) *SQLiteBookingRepo {
	return &SQLiteBookingRepo{db: conn}
}

func (r *SQLiteBookingRepo) Upsert(ctx context.Context, b *domain.Booking) error {
	query := `INSERT INTO bookings (id, client_name, client_phone, groom_name, bride_name,
		event_title, venue, notes, start_date, end_date,
		package_amount, advance_amount, shoot_done_date, editing_progress,
		delivery_status, delivery_link, last_payment_date, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			client_name = excluded.client_name,
			client_phone = excluded.client_phone,
			groom_name = excluded.groom_name,
			bride_name = excluded.bride_name,
			event_title = excluded.event_title,
			venue = excluded.venue,
			notes = excluded.notes,
			start_date = excluded.start_date,
			end_date = excluded.end_date,
			package_amount = excluded.package_amount,
			advance_amount = excluded.advance_amount,
			shoot_done_date = excluded.shoot_done_date,
			editing_progress = excluded.editing_progress,
			delivery_status = excluded.delivery_status,
			delivery_link = excluded.delivery_link,
			last_payment_date = excluded.last_payment_date`
	_, err := r.db.ExecContext(ctx, query,
		b.ID,
		b.ClientName,
		b.ClientPhone,
		b.GroomName,
		b.BrideName,
		b.EventTitle,
		b.Venue,
		b.Notes,
		b.StartDate.Format(dateLayout),
		b.EndDate.Format(dateLayout),
		b.PackageAmount,
		b.AdvanceAmount,
		nullableTimeToString(b.ShootDoneDate, time.RFC3339),
		b.EditingProgress,
		string(b.DeliveryStatus),
		b.DeliveryLink,
		nullableTimeToString(b.LastPaymentDate, time.RFC3339),
		b.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upserting booking: %w", err)
	}

	if err := r.replaceTasks(ctx, b); err != nil {
		return err
	}
	return r.replaceDeliveryRecords(ctx, b)
}

func (r *SQLiteBookingRepo) replaceTasks(ctx context.Context, b *domain.Booking) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM editing_tasks WHERE booking_id = ?`, b.ID); err != nil {
		return fmt.Errorf("clearing editing tasks: %w", err)
	}
	for i, task := range b.EditingTasks {
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO editing_tasks (booking_id, task_id, label, is_completed, position)
			VALUES (?, ?, ?, ?, ?)`,
			b.ID, task.ID, task.Label, boolToInt(task.IsCompleted), i); err != nil {
			return fmt.Errorf("inserting editing task: %w", err)
		}
	}
	return nil
}

func (r *SQLiteBookingRepo) replaceDeliveryRecords(ctx context.Context, b *domain.Booking) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM delivery_records WHERE booking_id = ?`, b.ID); err != nil {
		return fmt.Errorf("clearing delivery records: %w", err)
	}
	for i, rec := range b.DeliveredItems {
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO delivery_records (booking_id, delivered_at, note, position)
			VALUES (?, ?, ?, ?)`,
			b.ID, rec.DeliveredAt.Format(time.RFC3339), rec.Note, i); err != nil {
			return fmt.Errorf("inserting delivery record: %w", err)
		}
	}
	return nil
}

func (r *SQLiteBookingRepo) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	b, err := r.scanBooking(row)
	if err != nil {
		return nil, err
	}
	if err := r.loadChildren(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// List returns every booking in insertion order.
func (r *SQLiteBookingRepo) List(ctx context.Context) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings ORDER BY rowid`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*domain.Booking
	for rows.Next() {
		b, err := r.scanBookingRow(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating bookings: %w", err)
	}

	for _, b := range bookings {
		if err := r.loadChildren(ctx, b); err != nil {
			return nil, err
		}
	}
	return bookings, nil
}

// Delete removes a booking by id; absent ids are a no-op.
func (r *SQLiteBookingRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM bookings WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting booking: %w", err)
	}
	return nil
}

func (r *SQLiteBookingRepo) loadChildren(ctx context.Context, b *domain.Booking) error {
	taskRows, err := r.db.QueryContext(ctx,
		`SELECT task_id, label, is_completed FROM editing_tasks
		WHERE booking_id = ? ORDER BY position`, b.ID)
	if err != nil {
		return fmt.Errorf("listing editing tasks: %w", err)
	}
	defer taskRows.Close()

	for taskRows.Next() {
		var task domain.EditingTask
		var completed int
		if err := taskRows.Scan(&task.ID, &task.Label, &completed); err != nil {
			return fmt.Errorf("scanning editing task: %w", err)
		}
		task.IsCompleted = intToBool(completed)
		b.EditingTasks = append(b.EditingTasks, task)
	}
	if err := taskRows.Err(); err != nil {
		return fmt.Errorf("iterating editing tasks: %w", err)
	}

	recRows, err := r.db.QueryContext(ctx,
		`SELECT delivered_at, note FROM delivery_records
		WHERE booking_id = ? ORDER BY position`, b.ID)
	if err != nil {
		return fmt.Errorf("listing delivery records: %w", err)
	}
	defer recRows.Close()

	for recRows.Next() {
		var rec domain.DeliveryRecord
		var deliveredAtStr string
		if err := recRows.Scan(&deliveredAtStr, &rec.Note); err != nil {
			return fmt.Errorf("scanning delivery record: %w", err)
		}
		rec.DeliveredAt, err = time.Parse(time.RFC3339, deliveredAtStr)
		if err != nil {
			return fmt.Errorf("parsing delivered_at: %w", err)
		}
		b.DeliveredItems = append(b.DeliveredItems, rec)
	}
	if err := recRows.Err(); err != nil {
		return fmt.Errorf("iterating delivery records: %w", err)
	}
	return nil
}

func (r *SQLiteBookingRepo) scanBooking(row *sql.Row) (*domain.Booking, error) {
	var b domain.Booking
	var statusStr, startStr, endStr, createdAtStr string
	var shootDoneStr, lastPaymentStr sql.NullString

	err := row.Scan(
		&b.ID, &b.ClientName, &b.ClientPhone, &b.GroomName, &b.BrideName,
		&b.EventTitle, &b.Venue, &b.Notes, &startStr, &endStr,
		&b.PackageAmount, &b.AdvanceAmount, &shootDoneStr, &b.EditingProgress,
		&statusStr, &b.DeliveryLink, &lastPaymentStr, &createdAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("booking: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning booking: %w", err)
	}
	return r.populateBooking(&b, statusStr, startStr, endStr, createdAtStr, shootDoneStr, lastPaymentStr)
}

func (r *SQLiteBookingRepo) scanBookingRow(rows *sql.Rows) (*domain.Booking, error) {
	var b domain.Booking
	var statusStr, startStr, endStr, createdAtStr string
	var shootDoneStr, lastPaymentStr sql.NullString

	err := rows.Scan(
		&b.ID, &b.ClientName, &b.ClientPhone, &b.GroomName, &b.BrideName,
		&b.EventTitle, &b.Venue, &b.Notes, &startStr, &endStr,
		&b.PackageAmount, &b.AdvanceAmount, &shootDoneStr, &b.EditingProgress,
		&statusStr, &b.DeliveryLink, &lastPaymentStr, &createdAtStr,
	)
	if err != nil {
		return nil, fmt.Errorf("scanning booking row: %w", err)
	}
	return r.populateBooking(&b, statusStr, startStr, endStr, createdAtStr, shootDoneStr, lastPaymentStr)
}

func (r *SQLiteBookingRepo) populateBooking(
	b *domain.Booking,
	statusStr, startStr, endStr, createdAtStr string,
	shootDoneStr, lastPaymentStr sql.NullString,
) (*domain.Booking, error) {
	b.DeliveryStatus = domain.DeliveryStatus(statusStr)
	b.ShootDoneDate = parseNullableTime(shootDoneStr, time.RFC3339)
	b.LastPaymentDate = parseNullableTime(lastPaymentStr, time.RFC3339)

	var parseErr error
	b.StartDate, parseErr = time.Parse(dateLayout, startStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing start_date: %w", parseErr)
	}
	b.EndDate, parseErr = time.Parse(dateLayout, endStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing end_date: %w", parseErr)
	}
	b.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	return b, nil
}
