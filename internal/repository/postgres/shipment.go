package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc/shipexpress/internal/domain"
	"github.com/jackc/pgx/v5"
)

const shipmentColumns = `id, user_id, tracking_id, quotation_id, origin_city, destination_city,
	billable_kg, tier, insured, amount, estimated_duration, status, created_at`

// ShipmentRepository реализует domain.ShipmentRepository
type ShipmentRepository struct {
	db DBTX
}

// NewShipmentRepository создает новый ShipmentRepository
func NewShipmentRepository(db DBTX) *ShipmentRepository {
	return &ShipmentRepository{db: db}
}

// CreateShipment сохраняет оплаченное отправление
func (r *ShipmentRepository) CreateShipment(ctx context.Context, s *domain.ShipmentRecord) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO shipments (user_id, tracking_id, quotation_id, origin_city, destination_city,
			billable_kg, tier, insured, amount, estimated_duration, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 RETURNING id`,
		s.UserID, s.TrackingID, s.QuotationID, s.OriginCity, s.DestinationCity,
		s.BillableKg, s.Tier, s.Insured, s.Amount, s.EstimatedDuration, s.Status, s.CreatedAt,
	).Scan(&s.ID)

	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrShipmentExists
		}
		return fmt.Errorf("repository: failed to create shipment %s: %w", s.TrackingID, err)
	}

	return nil
}

// GetShipmentByTrackingID получает отправление по номеру отслеживания
func (r *ShipmentRepository) GetShipmentByTrackingID(ctx context.Context, trackingID string) (*domain.ShipmentRecord, error) {
	s, err := scanShipment(r.db.QueryRow(ctx,
		`SELECT `+shipmentColumns+` FROM shipments WHERE tracking_id = $1`, trackingID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrShipmentNotFound
		}
		return nil, fmt.Errorf("repository: failed to get shipment %s: %w", trackingID, err)
	}

	return s, nil
}

// GetShipmentsByUserID возвращает отправления пользователя, новые первыми
func (r *ShipmentRepository) GetShipmentsByUserID(ctx context.Context, userID int64) ([]*domain.ShipmentRecord, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+shipmentColumns+` FROM shipments WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to get shipments for user %d: %w", userID, err)
	}

	return collectShipments(rows)
}

// GetPendingShipments возвращает отправления, которые еще могут сменить статус
func (r *ShipmentRepository) GetPendingShipments(ctx context.Context) ([]*domain.ShipmentRecord, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+shipmentColumns+` FROM shipments WHERE status NOT IN ($1, $2) ORDER BY created_at ASC`,
		domain.ShipmentStatusDelivered, domain.ShipmentStatusCancelled,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to get pending shipments: %w", err)
	}

	return collectShipments(rows)
}

// UpdateShipmentStatus обновляет статус отправления
func (r *ShipmentRepository) UpdateShipmentStatus(ctx context.Context, trackingID string, status domain.ShipmentStatus) error {
	result, err := r.db.Exec(ctx,
		`UPDATE shipments SET status = $1 WHERE tracking_id = $2`,
		status, trackingID,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to update shipment %s status: %w", trackingID, err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrShipmentNotFound
	}

	return nil
}

// AddTrackingEvents добавляет события одной транзакцией и возвращает число
// новых записей. Уже сохраненные события пропускаются.
func (r *ShipmentRepository) AddTrackingEvents(ctx context.Context, events []domain.TrackingEvent) (int, error) {
	if len(events) == 0 {
		return 0, nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // Rollback после Commit безопасен

	inserted := 0
	for _, e := range events {
		result, err := tx.Exec(ctx,
			`INSERT INTO tracking_events (tracking_id, status, location, description, occurred_at)
			 VALUES ($1, $2, $3, $4, $5)
			 ON CONFLICT (tracking_id, status, occurred_at) DO NOTHING`,
			e.TrackingID, e.Status, e.Location, e.Description, e.OccurredAt,
		)
		if err != nil {
			if isForeignKeyViolation(err) {
				return 0, domain.ErrShipmentNotFound
			}
			return 0, fmt.Errorf("repository: failed to add tracking event for %s: %w", e.TrackingID, err)
		}
		inserted += int(result.RowsAffected())
	}

	if err = tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("repository: failed to commit tracking events: %w", err)
	}

	return inserted, nil
}

// GetTrackingEvents возвращает историю отправления в хронологическом порядке
func (r *ShipmentRepository) GetTrackingEvents(ctx context.Context, trackingID string) ([]domain.TrackingEvent, error) {
	rows, err := r.db.Query(ctx,
		`SELECT tracking_id, status, location, description, occurred_at
		 FROM tracking_events
		 WHERE tracking_id = $1
		 ORDER BY occurred_at ASC, id ASC`,
		trackingID,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to get tracking events for %s: %w", trackingID, err)
	}
	defer rows.Close()

	var events []domain.TrackingEvent
	for rows.Next() {
		var e domain.TrackingEvent
		if err := rows.Scan(&e.TrackingID, &e.Status, &e.Location, &e.Description, &e.OccurredAt); err != nil {
			return nil, fmt.Errorf("repository: failed to scan tracking event: %w", err)
		}
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating tracking events: %w", err)
	}

	return events, nil
}

func scanShipment(row pgx.Row) (*domain.ShipmentRecord, error) {
	s := &domain.ShipmentRecord{}
	err := row.Scan(&s.ID, &s.UserID, &s.TrackingID, &s.QuotationID, &s.OriginCity, &s.DestinationCity,
		&s.BillableKg, &s.Tier, &s.Insured, &s.Amount, &s.EstimatedDuration, &s.Status, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func collectShipments(rows pgx.Rows) ([]*domain.ShipmentRecord, error) {
	defer rows.Close()

	var shipments []*domain.ShipmentRecord
	for rows.Next() {
		s, err := scanShipment(rows)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan shipment: %w", err)
		}
		shipments = append(shipments, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating shipments: %w", err)
	}

	return shipments, nil
}
