package repo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/workdesk/workdesk/internal/modules/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormStore[E any, P model.RecordPtr[E]] struct {
	db  *gorm.DB
	now Clock
}

// NewGormStore returns a Store backed by a relational database. Each
// operation runs in its own transaction.
func NewGormStore[E any, P model.RecordPtr[E]](db *gorm.DB, now Clock) Store[E] {
	if now == nil {
		now = time.Now
	}
	return &gormStore[E, P]{db: db, now: now}
}

func (r *gormStore[E, P]) Create(ctx context.Context, e *E) error {
	P(e).Prepare(r.now())
	P(e).SetID(0)
	if err := P(e).Validate(); err != nil {
		return err
	}
	return translate(r.db.WithContext(ctx).Create(e).Error)
}

func (r *gormStore[E, P]) Get(ctx context.Context, id uint) (*E, error) {
	e := new(E)
	if err := r.db.WithContext(ctx).First(e, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return e, nil
}

func (r *gormStore[E, P]) List(ctx context.Context, f Filter) ([]E, error) {
	q := r.db.WithContext(ctx)
	for col, v := range f {
		q = q.Where(clause.Eq{Column: clause.Column{Name: col}, Value: v})
	}
	var items []E
	return items, q.Order("id ASC").Find(&items).Error
}

func (r *gormStore[E, P]) FindOne(ctx context.Context, column string, value any) (*E, error) {
	e := new(E)
	err := r.db.WithContext(ctx).
		Where(clause.Eq{Column: clause.Column{Name: column}, Value: value}).
		Order("id ASC").
		First(e).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return e, nil
}

func (r *gormStore[E, P]) Update(ctx context.Context, id uint, p model.Patch[E]) (*E, error) {
	var out *E
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		e := new(E)
		if err := tx.First(e, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		if err := mergePatch[E, P](e, p, r.now()); err != nil {
			return err
		}
		if err := tx.Save(e).Error; err != nil {
			return translate(err)
		}
		out = e
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *gormStore[E, P]) Delete(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Delete(new(E), id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *gormStore[E, P]) Count(ctx context.Context) (int64, error) {
	var n int64
	return n, r.db.WithContext(ctx).Model(new(E)).Count(&n).Error
}

// translate maps driver-specific unique violations onto ErrDuplicateKey.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%v: %w", err, ErrDuplicateKey)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return fmt.Errorf("%s: %w", pgErr.ConstraintName, ErrDuplicateKey)
	}
	if strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return fmt.Errorf("%v: %w", err, ErrDuplicateKey)
	}
	return err
}
