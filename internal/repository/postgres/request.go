package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"hrassets-backend/internal/domain"
	"hrassets-backend/internal/repository"
)

type requestRepository struct {
	db *sql.DB
}

func NewRequestRepository(db *sql.DB) repository.RequestRepository {
	return &requestRepository{db: db}
}

const requestColumns = `id, reference, asset_id, asset_name, asset_type, COALESCE(asset_image, ''), company, requester, COALESCE(note, ''), status, request_date, process_date, return_date, processed_by`

func (r *requestRepository) Create(ctx context.Context, req *domain.Request) error {
	// Status and request date are set here, never taken from the draft.
	req.Status = domain.RequestStatusPending
	req.RequestDate = time.Now()
	query := `INSERT INTO requests (reference, asset_id, asset_name, asset_type, asset_image, company, requester, note, status, request_date)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	return r.db.QueryRowContext(ctx, query, req.Reference, req.AssetID, req.AssetName, req.AssetType, req.AssetImage, req.Company, req.Requester, req.Note, req.Status, req.RequestDate).Scan(&req.ID)
}

func (r *requestRepository) GetByID(ctx context.Context, id int32) (*domain.Request, error) {
	req := &domain.Request{}
	query := `SELECT ` + requestColumns + ` FROM requests WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&req.ID, &req.Reference, &req.AssetID, &req.AssetName, &req.AssetType, &req.AssetImage, &req.Company, &req.Requester, &req.Note, &req.Status, &req.RequestDate, &req.ProcessDate, &req.ReturnDate, &req.ProcessedBy)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return req, nil
}

// SetStatus only succeeds while the stored status still equals expected.
// Zero rows affected with the row present means another caller won the race.
func (r *requestRepository) SetStatus(ctx context.Context, id int32, expected, next domain.RequestStatus, upd repository.StatusUpdate) error {
	query := `UPDATE requests SET status = $1,
	              processed_by = COALESCE($2, processed_by),
	              process_date = COALESCE($3, process_date),
	              return_date  = COALESCE($4, return_date)
	          WHERE id = $5 AND status = $6`
	res, err := r.db.ExecContext(ctx, query, next, upd.ProcessedBy, upd.ProcessDate, upd.ReturnDate, id, expected)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows > 0 {
		return nil
	}

	var exists bool
	if err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM requests WHERE id = $1)`, id).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return domain.ErrNotFound
	}
	return domain.ErrConflict
}

func (r *requestRepository) ListByRequester(ctx context.Context, email string) ([]domain.Request, error) {
	query := `SELECT ` + requestColumns + ` FROM requests WHERE requester = $1 ORDER BY request_date DESC`
	return r.queryRequests(ctx, query, email)
}

func (r *requestRepository) ListByCompany(ctx context.Context, company string, status domain.RequestStatus) ([]domain.Request, error) {
	query := `SELECT ` + requestColumns + ` FROM requests WHERE company = $1`
	args := []interface{}{company}
	if status != "" {
		query += ` AND status = $2`
		args = append(args, status)
	}
	query += ` ORDER BY request_date DESC`
	return r.queryRequests(ctx, query, args...)
}

func (r *requestRepository) ListAll(ctx context.Context) ([]domain.Request, error) {
	query := `SELECT ` + requestColumns + ` FROM requests ORDER BY request_date DESC`
	return r.queryRequests(ctx, query)
}

func (r *requestRepository) DistinctRequesters(ctx context.Context, company string) ([]string, error) {
	query := `SELECT DISTINCT requester FROM requests WHERE company = $1 AND status = $2`
	rows, err := r.db.QueryContext(ctx, query, company, domain.RequestStatusApproved)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var emails []string
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, err
		}
		emails = append(emails, email)
	}
	return emails, rows.Err()
}

func (r *requestRepository) CompaniesOf(ctx context.Context, email string) ([]string, error) {
	query := `SELECT DISTINCT company FROM requests WHERE requester = $1 AND status = $2`
	rows, err := r.db.QueryContext(ctx, query, email, domain.RequestStatusApproved)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var companies []string
	for rows.Next() {
		var company string
		if err := rows.Scan(&company); err != nil {
			return nil, err
		}
		companies = append(companies, company)
	}
	return companies, rows.Err()
}

func (r *requestRepository) CountApprovedByAsset(ctx context.Context) (map[int32]int32, error) {
	query := `SELECT asset_id, count(*) FROM requests WHERE status = $1 GROUP BY asset_id`
	rows, err := r.db.QueryContext(ctx, query, domain.RequestStatusApproved)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[int32]int32)
	for rows.Next() {
		var assetID, n int32
		if err := rows.Scan(&assetID, &n); err != nil {
			return nil, err
		}
		counts[assetID] = n
	}
	return counts, rows.Err()
}

func (r *requestRepository) queryRequests(ctx context.Context, query string, args ...interface{}) ([]domain.Request, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []domain.Request
	for rows.Next() {
		var req domain.Request
		if err := rows.Scan(&req.ID, &req.Reference, &req.AssetID, &req.AssetName, &req.AssetType, &req.AssetImage, &req.Company, &req.Requester, &req.Note, &req.Status, &req.RequestDate, &req.ProcessDate, &req.ReturnDate, &req.ProcessedBy); err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}
