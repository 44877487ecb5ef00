package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/JoaFoschiatti/gestioneo-transfers/internal/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS incoming_transfers (
	id TEXT PRIMARY KEY,
	movement_id TEXT NOT NULL UNIQUE,
	amount NUMERIC(20,4) NOT NULL,
	fee NUMERIC(20,4) NOT NULL DEFAULT 0,
	net_amount NUMERIC(20,4) NOT NULL DEFAULT 0,
	payer_name TEXT NOT NULL DEFAULT '',
	payer_email TEXT NOT NULL DEFAULT '',
	payer_tax_id TEXT NOT NULL DEFAULT '',
	concept TEXT NOT NULL DEFAULT '',
	reference TEXT NOT NULL DEFAULT '',
	raw_payload JSONB,
	status TEXT NOT NULL DEFAULT 'PENDING',
	match_score DOUBLE PRECISION NOT NULL DEFAULT 0,
	match_reason TEXT NOT NULL DEFAULT '',
	candidate_order_ids BIGINT[],
	order_id BIGINT,
	payment_id TEXT,
	matched_at TIMESTAMPTZ,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS sync_watermark (
	id INT PRIMARY KEY CHECK (id = 1),
	last_sync_at TIMESTAMPTZ NOT NULL
);
`

// PostgresStore implements domain.Repository on the POS database. It owns
// the incoming_transfers and sync_watermark tables; orders, payments and
// restaurant_tables belong to the order-management side and are only read
// and updated here, never created.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Open connects and ensures the subsystem's own tables exist.
func Open(url string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	store := NewPostgresStore(db)
	if err := store.EnsureSchema(context.Background()); err != nil {
		return nil, err
	}

	return store, nil
}

func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, schema)
	return err
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}

func (s *PostgresStore) CreateTransferIfAbsent(ctx context.Context, t *domain.IncomingTransfer) (*domain.IncomingTransfer, bool, error) {
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO incoming_transfers (
			id, movement_id, amount, fee, net_amount,
			payer_name, payer_email, payer_tax_id, concept, reference,
			raw_payload, status, match_score, match_reason, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (movement_id) DO NOTHING
	`, t.ID, t.MovementID, t.Amount, t.Fee, t.NetAmount,
		t.PayerName, t.PayerEmail, t.PayerTaxID, t.Concept, t.Reference,
		[]byte(t.RawPayload), t.Status, t.MatchScore, t.MatchReason, t.CreatedAt)
	if err != nil {
		return nil, false, err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return nil, false, err
	}

	if rows == 0 {
		existing, err := s.getTransferWhere(ctx, "movement_id = $1", t.MovementID)
		if err != nil {
			return nil, false, err
		}
		return existing, false, nil
	}

	stored, err := s.getTransferWhere(ctx, "id = $1", t.ID)
	if err != nil {
		return nil, false, err
	}

	return stored, true, nil
}

func (s *PostgresStore) GetTransfer(ctx context.Context, id string) (*domain.IncomingTransfer, error) {
	return s.getTransferWhere(ctx, "id = $1", id)
}

const transferColumns = `
	id, movement_id, amount, fee, net_amount,
	payer_name, payer_email, payer_tax_id, concept, reference,
	raw_payload, status, match_score, match_reason, candidate_order_ids,
	order_id, payment_id, matched_at, created_at`

func (s *PostgresStore) getTransferWhere(ctx context.Context, where string, arg interface{}) (*domain.IncomingTransfer, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+transferColumns+`
		FROM incoming_transfers
		WHERE `+where, arg)

	transfer, err := scanTransfer(row)
	if err == sql.ErrNoRows {
		return nil, domain.ErrTransferNotFound
	}
	if err != nil {
		return nil, err
	}

	return transfer, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTransfer(row rowScanner) (*domain.IncomingTransfer, error) {
	var t domain.IncomingTransfer
	var rawPayload []byte
	var candidateIDs pq.Int64Array
	var orderID sql.NullInt64
	var paymentID sql.NullString
	var matchedAt sql.NullTime

	err := row.Scan(
		&t.ID, &t.MovementID, &t.Amount, &t.Fee, &t.NetAmount,
		&t.PayerName, &t.PayerEmail, &t.PayerTaxID, &t.Concept, &t.Reference,
		&rawPayload, &t.Status, &t.MatchScore, &t.MatchReason, &candidateIDs,
		&orderID, &paymentID, &matchedAt, &t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	t.RawPayload = rawPayload
	t.CandidateOrderIDs = []int64(candidateIDs)
	if orderID.Valid {
		t.OrderID = &orderID.Int64
	}
	if paymentID.Valid {
		t.PaymentID = &paymentID.String
	}
	if matchedAt.Valid {
		t.MatchedAt = &matchedAt.Time
	}

	return &t, nil
}

func (s *PostgresStore) UpdateTransferReview(ctx context.Context, id string, score float64, reason string, candidateIDs []int64) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE incoming_transfers
		SET match_score = $2, match_reason = $3, candidate_order_ids = $4
		WHERE id = $1
	`, id, score, reason, pq.Array(candidateIDs))
	if err != nil {
		return err
	}

	return requireRow(result, domain.ErrTransferNotFound)
}

func (s *PostgresStore) RejectTransfer(ctx context.Context, id, reason string) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE incoming_transfers
		SET status = $2, match_reason = $3
		WHERE id = $1 AND status = $4
	`, id, domain.TransferStatusRejected, reason, domain.TransferStatusPending)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 1 {
		return nil
	}

	// Distinguish a missing row from a lost race with another resolver
	if _, err := s.GetTransfer(ctx, id); err != nil {
		return err
	}
	return domain.ErrTransferAlreadyResolved
}

func (s *PostgresStore) ListTransfers(ctx context.Context, filter domain.TransferFilter) ([]*domain.IncomingTransfer, domain.StatusTotals, error) {
	if filter.Page < 1 || filter.PerPage < 1 {
		return nil, domain.StatusTotals{}, domain.ErrInvalidPageParams
	}

	where := "TRUE"
	args := []interface{}{}

	if filter.From != nil {
		args = append(args, *filter.From)
		where += fmt.Sprintf(" AND created_at >= $%d", len(args))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		where += fmt.Sprintf(" AND created_at <= $%d", len(args))
	}

	totals, err := s.statusTotals(ctx, where, args)
	if err != nil {
		return nil, domain.StatusTotals{}, err
	}

	if filter.Status != nil {
		args = append(args, *filter.Status)
		where += fmt.Sprintf(" AND status = $%d", len(args))
	}

	args = append(args, filter.PerPage, (filter.Page-1)*filter.PerPage)
	query := `
		SELECT ` + transferColumns + `
		FROM incoming_transfers
		WHERE ` + where + `
		ORDER BY created_at DESC
		LIMIT $` + fmt.Sprint(len(args)-1) + ` OFFSET $` + fmt.Sprint(len(args))

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, domain.StatusTotals{}, err
	}
	defer rows.Close()

	transfers := []*domain.IncomingTransfer{}
	for rows.Next() {
		transfer, err := scanTransfer(rows)
		if err != nil {
			return nil, domain.StatusTotals{}, err
		}
		transfers = append(transfers, transfer)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.StatusTotals{}, err
	}

	return transfers, totals, nil
}

func (s *PostgresStore) statusTotals(ctx context.Context, where string, args []interface{}) (domain.StatusTotals, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT status, COUNT(*)
		FROM incoming_transfers
		WHERE `+where+`
		GROUP BY status
	`, args...)
	if err != nil {
		return domain.StatusTotals{}, err
	}
	defer rows.Close()

	var totals domain.StatusTotals
	for rows.Next() {
		var status domain.TransferStatus
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return domain.StatusTotals{}, err
		}
		switch status {
		case domain.TransferStatusPending:
			totals.Pending = count
		case domain.TransferStatusMatched:
			totals.Matched = count
		case domain.TransferStatusRejected:
			totals.Rejected = count
		}
	}

	return totals, rows.Err()
}

func (s *PostgresStore) GetOrder(ctx context.Context, id int64) (*domain.Order, error) {
	order, err := scanOrder(s.db.QueryRowContext(ctx, `
		SELECT id, total, payment_status, status, table_id, created_at
		FROM orders
		WHERE id = $1
	`, id))
	if err == sql.ErrNoRows {
		return nil, domain.ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	return order, nil
}

func scanOrder(row rowScanner) (*domain.Order, error) {
	var o domain.Order
	var tableID sql.NullInt64

	err := row.Scan(&o.ID, &o.Total, &o.PaymentStatus, &o.Status, &tableID, &o.CreatedAt)
	if err != nil {
		return nil, err
	}

	if tableID.Valid {
		o.TableID = &tableID.Int64
	}

	return &o, nil
}

func (s *PostgresStore) ListOrderPayments(ctx context.Context, orderID int64) ([]*domain.Payment, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, order_id, amount, method, status, reference, created_at, approved_at
		FROM payments
		WHERE order_id = $1
		ORDER BY created_at
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []*domain.Payment
	for rows.Next() {
		payment, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, payment)
	}

	return payments, rows.Err()
}

func scanPayment(row rowScanner) (*domain.Payment, error) {
	var p domain.Payment
	var approvedAt sql.NullTime

	err := row.Scan(&p.ID, &p.OrderID, &p.Amount, &p.Method, &p.Status, &p.Reference, &p.CreatedAt, &approvedAt)
	if err != nil {
		return nil, err
	}

	if approvedAt.Valid {
		p.ApprovedAt = &approvedAt.Time
	}

	return &p, nil
}

func (s *PostgresStore) FindPendingTransferPayment(ctx context.Context, orderID int64, amount, tolerance decimal.Decimal, since time.Time) (*domain.Payment, error) {
	payment, err := scanPayment(s.db.QueryRowContext(ctx, `
		SELECT id, order_id, amount, method, status, reference, created_at, approved_at
		FROM payments
		WHERE order_id = $1
		  AND method = $2
		  AND status = $3
		  AND created_at >= $4
		  AND ABS(amount - $5) <= $6
		ORDER BY created_at DESC
		LIMIT 1
	`, orderID, domain.PaymentMethodTransfer, domain.PaymentStatusPending, since, amount, tolerance))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return payment, nil
}

func (s *PostgresStore) FindCandidateOrders(ctx context.Context, amount, tolerance decimal.Decimal, since time.Time) ([]*domain.Order, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT o.id, o.total, o.payment_status, o.status, o.table_id, o.created_at
		FROM orders o
		JOIN payments p ON p.order_id = o.id
		WHERE p.method = $1
		  AND p.status = $2
		  AND p.created_at >= $3
		  AND ABS(p.amount - $4) <= $5
		GROUP BY o.id, o.total, o.payment_status, o.status, o.table_id, o.created_at
		ORDER BY MAX(p.created_at) DESC
	`, domain.PaymentMethodTransfer, domain.PaymentStatusPending, since, amount, tolerance)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}

	return orders, rows.Err()
}

// SettleTransfer runs the whole settlement inside one transaction: transfer
// and order rows are re-read with FOR UPDATE so a concurrent manual match
// fails with ErrTransferAlreadyResolved instead of double-crediting.
func (s *PostgresStore) SettleTransfer(ctx context.Context, params domain.SettlementParams) (*domain.Settlement, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}

	settlement, err := s.settleInTx(ctx, tx, params)
	if err != nil {
		_ = tx.Rollback()
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return settlement, nil
}

func (s *PostgresStore) settleInTx(ctx context.Context, tx *sql.Tx, params domain.SettlementParams) (*domain.Settlement, error) {
	transfer, err := scanTransfer(tx.QueryRowContext(ctx, `
		SELECT `+transferColumns+`
		FROM incoming_transfers
		WHERE id = $1
		FOR UPDATE
	`, params.TransferID))
	if err == sql.ErrNoRows {
		return nil, domain.ErrTransferNotFound
	}
	if err != nil {
		return nil, err
	}
	if transfer.Status != domain.TransferStatusPending {
		return nil, domain.ErrTransferAlreadyResolved
	}

	order, err := scanOrder(tx.QueryRowContext(ctx, `
		SELECT id, total, payment_status, status, table_id, created_at
		FROM orders
		WHERE id = $1
		FOR UPDATE
	`, params.OrderID))
	if err == sql.ErrNoRows {
		return nil, domain.ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	rows, err := tx.QueryContext(ctx, `
		SELECT id, order_id, amount, method, status, reference, created_at, approved_at
		FROM payments
		WHERE order_id = $1 AND method = $2 AND status = $3
		FOR UPDATE
	`, order.ID, domain.PaymentMethodTransfer, domain.PaymentStatusPending)
	if err != nil {
		return nil, err
	}

	var pending []*domain.Payment
	for rows.Next() {
		payment, err := scanPayment(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		pending = append(pending, payment)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	now := time.Now()
	reference := "transfer:" + transfer.MovementID

	// One unambiguous pending row gets approved; zero or several means a
	// fresh payment, never a guess.
	var payment *domain.Payment
	if len(pending) == 1 {
		payment = pending[0]
		payment.Status = domain.PaymentStatusApproved
		payment.Reference = reference
		payment.ApprovedAt = &now

		_, err = tx.ExecContext(ctx, `
			UPDATE payments
			SET status = $2, reference = $3, approved_at = $4
			WHERE id = $1
		`, payment.ID, payment.Status, payment.Reference, now)
		if err != nil {
			return nil, err
		}
	} else {
		payment = &domain.Payment{
			ID:         uuid.New().String(),
			OrderID:    order.ID,
			Amount:     transfer.Amount,
			Method:     domain.PaymentMethodTransfer,
			Status:     domain.PaymentStatusApproved,
			Reference:  reference,
			CreatedAt:  now,
			ApprovedAt: &now,
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO payments (id, order_id, amount, method, status, reference, created_at, approved_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`, payment.ID, payment.OrderID, payment.Amount, payment.Method, payment.Status, payment.Reference, payment.CreatedAt, now)
		if err != nil {
			return nil, err
		}
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE incoming_transfers
		SET status = $2, order_id = $3, payment_id = $4, match_score = $5, match_reason = $6, matched_at = $7
		WHERE id = $1
	`, transfer.ID, domain.TransferStatusMatched, order.ID, payment.ID, params.Score, params.Reason, now)
	if err != nil {
		return nil, err
	}

	var approvedSum decimal.Decimal
	err = tx.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(amount), 0)
		FROM payments
		WHERE order_id = $1 AND status = $2
	`, order.ID, domain.PaymentStatusApproved).Scan(&approvedSum)
	if err != nil {
		return nil, err
	}

	order.PaymentStatus = domain.PaymentStatusApproved
	if domain.CoversTotal(approvedSum, order.Total, params.Tolerance) {
		order.Status = domain.OrderStatusCompleted
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE orders
		SET payment_status = $2, status = $3
		WHERE id = $1
	`, order.ID, order.PaymentStatus, order.Status)
	if err != nil {
		return nil, err
	}

	if order.Status == domain.OrderStatusCompleted && order.TableID != nil {
		_, err = tx.ExecContext(ctx, `
			UPDATE restaurant_tables
			SET status = $2
			WHERE id = $1
		`, *order.TableID, domain.TableStatusFree)
		if err != nil {
			return nil, err
		}
	}

	orderID := order.ID
	paymentID := payment.ID
	transfer.Status = domain.TransferStatusMatched
	transfer.OrderID = &orderID
	transfer.PaymentID = &paymentID
	transfer.MatchScore = params.Score
	transfer.MatchReason = params.Reason
	transfer.MatchedAt = &now

	return &domain.Settlement{
		Transfer: transfer,
		Payment:  payment,
		Order:    order,
	}, nil
}

func (s *PostgresStore) GetSyncWatermark(ctx context.Context) (*domain.SyncWatermark, error) {
	var wm domain.SyncWatermark
	err := s.db.QueryRowContext(ctx, `
		SELECT last_sync_at FROM sync_watermark WHERE id = 1
	`).Scan(&wm.LastSyncAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &wm, nil
}

func (s *PostgresStore) SaveSyncWatermark(ctx context.Context, lastSyncAt time.Time) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO sync_watermark (id, last_sync_at)
		VALUES (1, $1)
		ON CONFLICT (id) DO UPDATE
		SET last_sync_at = GREATEST(sync_watermark.last_sync_at, EXCLUDED.last_sync_at)
	`, lastSyncAt)
	return err
}

func requireRow(result sql.Result, missing error) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return missing
	}
	return nil
}
