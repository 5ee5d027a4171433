package slot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-TrainingService/internal/domain"
	"github.com/m04kA/SMC-TrainingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-TrainingService/pkg/psqlbuilder"
)

const table = "training_slots"

var columns = []string{
	"id",
	"onboarding_id",
	"trainer_id",
	"slot_date",
	"time_bucket",
	"training_mode",
	"location",
	"required_languages",
	"status",
	"cancelled_at",
	"completed_at",
	"created_at",
	"updated_at",
}

// Repository ledger тренингов: единственный источник правды о занятости тренеров
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет забронированный слот.
// Частичный уникальный индекс (slot_date, time_bucket, trainer_id) WHERE status='booked'
// гарантирует отсутствие двойного бронирования даже при гонке; нарушение индекса
// возвращается как ErrSlotAlreadyBooked.
func (r *Repository) Create(ctx context.Context, s *domain.TrainingSlot) (*domain.TrainingSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"onboarding_id",
			"trainer_id",
			"slot_date",
			"time_bucket",
			"training_mode",
			"location",
			"required_languages",
			"status",
		).
		Values(
			s.OnboardingID,
			s.TrainerID,
			s.Date.Format(domain.DateFormat),
			s.Bucket,
			s.Mode,
			s.Location,
			pq.Array(languagesToStrings(s.RequiredLanguages)),
			s.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, execErr("Create - execute insert", err)
	}

	return s, nil
}

// GetByID получает слот по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.TrainingSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id})

	// Внутри транзакции блокируем строку под смену статуса
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	s, err := scanSlot(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan slot: %w", ErrScanRow, err)
	}

	return s, nil
}

// GetBookedByDate возвращает все активные (booked) слоты на дату, упорядоченные по времени.
// В транзакции строки блокируются (FOR UPDATE).
func (r *Repository) GetBookedByDate(ctx context.Context, date time.Time) ([]*domain.TrainingSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := bookedByDateQuery(date, dbmetrics.IsInTransaction(ctx)).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetBookedByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, execErr("GetBookedByDate - execute query", err)
	}
	defer rows.Close()

	return r.scanSlots(rows)
}

// ExistsBooked проверяет, занят ли тренер в (date, bucket)
func (r *Repository) ExistsBooked(ctx context.Context, date time.Time, bucket domain.TimeBucket, trainerID int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := existsBookedQuery(date, bucket, trainerID, dbmetrics.IsInTransaction(ctx)).ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: ExistsBooked - build select query: %v", ErrBuildQuery, err)
	}

	var id int64
	err = executor.QueryRowContext(ctx, query, args...).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, execErr("ExistsBooked - execute query", err)
	}

	return true, nil
}

// GetWithFilter получает слоты с фильтрацией по onboarding, тренеру, периоду и статусу.
// Сортировка: по дате и времени по возрастанию.
func (r *Repository) GetWithFilter(ctx context.Context, filter domain.SlotFilter) ([]*domain.TrainingSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(table)

	if filter.OnboardingID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"onboarding_id": *filter.OnboardingID})
	}
	if filter.TrainerID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"trainer_id": *filter.TrainerID})
	}
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"slot_date": filter.StartDate.Format(domain.DateFormat)})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"slot_date": filter.EndDate.Format(domain.DateFormat)})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}

	query, args, err := selectBuilder.
		OrderBy("slot_date ASC", "time_bucket ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, execErr("GetWithFilter - execute query", err)
	}
	defer rows.Close()

	return r.scanSlots(rows)
}

// TransitionStatus переводит слот из статуса from в статус to (compare-and-swap).
// Если слот существует, но его статус уже не from, возвращает ErrStatusMismatch.
func (r *Repository) TransitionStatus(ctx context.Context, id int64, from, to domain.SlotStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := transitionQuery(id, from, to).ToSql()
	if err != nil {
		return fmt.Errorf("%w: TransitionStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return execErr("TransitionStatus - execute update", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: TransitionStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return ErrStatusMismatch
	}

	return nil
}

// CountBookedByTrainers считает booked-слоты каждого тренера в периоде [from, to].
// Тренеры без бронирований в результат не попадают (значение по умолчанию 0).
func (r *Repository) CountBookedByTrainers(ctx context.Context, trainerIDs []int64, from, to time.Time) (map[int64]int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)
	counts := make(map[int64]int, len(trainerIDs))

	if len(trainerIDs) == 0 {
		return counts, nil
	}

	query, args, err := countBookedQuery(trainerIDs, from, to).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CountBookedByTrainers - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, execErr("CountBookedByTrainers - execute query", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			trainerID int64
			count     int
		)
		if err := rows.Scan(&trainerID, &count); err != nil {
			return nil, fmt.Errorf("%w: CountBookedByTrainers - scan row: %v", ErrScanRow, err)
		}
		counts[trainerID] = count
	}

	if err := rows.Err(); err != nil {
		return nil, execErr("CountBookedByTrainers - rows error", err)
	}

	return counts, nil
}

// GetAssignmentStats возвращает для каждого тренера общее число booked-слотов
// и время последнего назначения
func (r *Repository) GetAssignmentStats(ctx context.Context, trainerIDs []int64) (map[int64]domain.AssignmentStats, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)
	stats := make(map[int64]domain.AssignmentStats, len(trainerIDs))

	if len(trainerIDs) == 0 {
		return stats, nil
	}

	query, args, err := psqlbuilder.Select("trainer_id", "COUNT(*)", "MAX(created_at)").
		From(table).
		Where(squirrel.Eq{"trainer_id": trainerIDs}).
		Where(squirrel.Eq{"status": domain.SlotStatusBooked}).
		GroupBy("trainer_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetAssignmentStats - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, execErr("GetAssignmentStats - execute query", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			st   domain.AssignmentStats
			last sql.NullTime
		)
		if err := rows.Scan(&st.TrainerID, &st.BookedCount, &last); err != nil {
			return nil, fmt.Errorf("%w: GetAssignmentStats - scan row: %v", ErrScanRow, err)
		}
		if last.Valid {
			t := last.Time
			st.LastAssignedAt = &t
		}
		stats[st.TrainerID] = st
	}

	if err := rows.Err(); err != nil {
		return nil, execErr("GetAssignmentStats - rows error", err)
	}

	return stats, nil
}

func bookedByDateQuery(date time.Time, forUpdate bool) squirrel.SelectBuilder {
	b := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"slot_date": date.Format(domain.DateFormat)}).
		Where(squirrel.Eq{"status": domain.SlotStatusBooked}).
		OrderBy("time_bucket ASC", "id ASC")
	if forUpdate {
		b = b.Suffix("FOR UPDATE")
	}
	return b
}

func existsBookedQuery(date time.Time, bucket domain.TimeBucket, trainerID int64, forUpdate bool) squirrel.SelectBuilder {
	b := psqlbuilder.Select("id").
		From(table).
		Where(squirrel.Eq{
			"slot_date":   date.Format(domain.DateFormat),
			"time_bucket": bucket,
			"trainer_id":  trainerID,
			"status":      domain.SlotStatusBooked,
		}).
		Limit(1)
	if forUpdate {
		b = b.Suffix("FOR UPDATE")
	}
	return b
}

// transitionQuery обновляет статус только если он всё ещё равен from
func transitionQuery(id int64, from, to domain.SlotStatus) squirrel.UpdateBuilder {
	b := psqlbuilder.Update(table).
		Set("status", to).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": from})

	switch to {
	case domain.SlotStatusCancelled:
		b = b.Set("cancelled_at", squirrel.Expr("NOW()"))
	case domain.SlotStatusCompleted:
		b = b.Set("completed_at", squirrel.Expr("NOW()"))
	}
	return b
}

func countBookedQuery(trainerIDs []int64, from, to time.Time) squirrel.SelectBuilder {
	return psqlbuilder.Select("trainer_id", "COUNT(*)").
		From(table).
		Where(squirrel.Eq{"trainer_id": trainerIDs}).
		Where(squirrel.Eq{"status": domain.SlotStatusBooked}).
		Where(squirrel.GtOrEq{"slot_date": from.Format(domain.DateFormat)}).
		Where(squirrel.LtOrEq{"slot_date": to.Format(domain.DateFormat)}).
		GroupBy("trainer_id")
}

// scanSlots сканирует результаты запроса в слайс слотов
func (r *Repository) scanSlots(rows *sql.Rows) ([]*domain.TrainingSlot, error) {
	slots := make([]*domain.TrainingSlot, 0)

	for rows.Next() {
		s, err := scanSlot(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanSlots - scan row: %v", ErrScanRow, err)
		}
		slots = append(slots, s)
	}

	if err := rows.Err(); err != nil {
		return nil, execErr("scanSlots - rows error", err)
	}

	return slots, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSlot(row rowScanner) (*domain.TrainingSlot, error) {
	var (
		s         domain.TrainingSlot
		languages pq.StringArray
		location  sql.NullString
	)

	if err := row.Scan(
		&s.ID,
		&s.OnboardingID,
		&s.TrainerID,
		&s.Date,
		&s.Bucket,
		&s.Mode,
		&location,
		&languages,
		&s.Status,
		&s.CancelledAt,
		&s.CompletedAt,
		&s.CreatedAt,
		&s.UpdatedAt,
	); err != nil {
		return nil, err
	}

	s.Date = domain.DateOnly(s.Date)
	if location.Valid {
		loc := location.String
		s.Location = &loc
	}
	s.RequiredLanguages = make([]domain.Language, len(languages))
	for i, l := range languages {
		s.RequiredLanguages[i] = domain.Language(l)
	}

	return &s, nil
}

// execErr различает конфликт записи (гонка за слот) и прочие ошибки выполнения
func execErr(op string, err error) error {
	if IsWriteConflict(err) {
		return fmt.Errorf("%w: %s: %w", ErrSlotAlreadyBooked, op, err)
	}
	return fmt.Errorf("%w: %s: %w", ErrExecQuery, op, err)
}

func languagesToStrings(langs []domain.Language) []string {
	out := make([]string, len(langs))
	for i, l := range langs {
		out[i] = string(l)
	}
	return out
}
