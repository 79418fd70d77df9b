package services

import (
	"context"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// scopeFunc narrows a query, typically to the rows one user owns
type scopeFunc func(tx *gorm.DB) *gorm.DB

// ownedBy scopes a query to userID. An empty userID leaves the query unscoped.
func ownedBy(userID string) scopeFunc {
	return func(tx *gorm.DB) *gorm.DB {
		if userID == "" {
			return tx
		}
		return tx.Where("userid = ?", userID)
	}
}

// upsertPlan describes how one entity kind is matched, checked and overwritten
type upsertPlan[T any] struct {
	table string
	id    uint64
	scope scopeFunc
	// natural finds a row by natural key when no id was supplied, nil if the entity has none
	natural scopeFunc
	// guard runs first inside the transaction and takes the locks the write depends on
	guard func(tx *gorm.DB) error
	// check runs before every write, current is nil for inserts
	check func(tx *gorm.DB, current *T) error
	// build returns a new row carrying id, zero lets the store assign one
	build func(id uint64) T
	// apply copies every mutable field onto row
	apply func(row *T)
}

// forUpdate locks the selected rows where the dialect supports SELECT ... FOR UPDATE
func forUpdate(tx *gorm.DB) *gorm.DB {
	switch tx.Dialector.Name() {
	case "mysql", "postgres":
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

// upsertAttempts bounds retries of transactions InnoDB picked as deadlock victims
const upsertAttempts = 3

// upsert finds a row by id (then by natural key) and overwrites it, or inserts a new one.
// A supplied id that matches nothing is used for the insert; a supplied id already
// taken outside the plan's scope is a conflict. Returns the stored row and whether it was created.
func upsert[T any](ctx context.Context, db *gorm.DB, plan upsertPlan[T]) (*T, bool, error) {
	var (
		row     *T
		created bool
		err     error
	)
	for attempt := 1; attempt <= upsertAttempts; attempt++ {
		row, created, err = upsertOnce(ctx, db, plan)
		if err == nil || !isDeadlock(err) {
			break
		}
	}
	if err != nil {
		return nil, false, err
	}
	return row, created, nil
}

func upsertOnce[T any](ctx context.Context, db *gorm.DB, plan upsertPlan[T]) (*T, bool, error) {
	var row T
	created := false

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if plan.guard != nil {
			if err := plan.guard(tx); err != nil {
				return err
			}
		}

		found := false

		if plan.id != 0 {
			err := forUpdate(tx).Scopes(plan.scope).First(&row, plan.id).Error
			switch {
			case err == nil:
				found = true
			case errors.Is(err, gorm.ErrRecordNotFound):
				var taken int64
				if err := tx.Table(plan.table).Where("id = ?", plan.id).Count(&taken).Error; err != nil {
					return err
				}
				if taken > 0 {
					return errors.Wrapf(ErrConflict, "%s id %d already in use", plan.table, plan.id)
				}
			default:
				return err
			}
		}

		if !found && plan.id == 0 && plan.natural != nil {
			err := forUpdate(tx).Scopes(plan.natural).First(&row).Error
			switch {
			case err == nil:
				found = true
			case !errors.Is(err, gorm.ErrRecordNotFound):
				return err
			}
		}

		if found {
			if plan.check != nil {
				if err := plan.check(tx, &row); err != nil {
					return err
				}
			}
			plan.apply(&row)
			return tx.Save(&row).Error
		}

		if plan.check != nil {
			if err := plan.check(tx, nil); err != nil {
				return err
			}
		}
		row = plan.build(plan.id)
		plan.apply(&row)
		if err := insertRow(tx, plan.table, plan.id, &row); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return errors.Wrapf(ErrConflict, "%s id %d already in use", plan.table, plan.id)
			}
			return err
		}
		created = true

		if plan.id != 0 {
			return syncSequence(tx, plan.table)
		}
		return nil
	})
	if err != nil {
		return nil, false, err
	}

	return &row, created, nil
}

// insertRow creates row. SQL Server only accepts a caller supplied identity
// value while IDENTITY_INSERT is on for the table.
func insertRow(tx *gorm.DB, table string, id uint64, row any) error {
	if id == 0 || tx.Dialector.Name() != "sqlserver" {
		return tx.Create(row).Error
	}

	if err := tx.Exec(identityInsert(table, true)).Error; err != nil {
		return err
	}
	createErr := tx.Create(row).Error
	if err := tx.Exec(identityInsert(table, false)).Error; err != nil && createErr == nil {
		return err
	}
	return createErr
}

func identityInsert(table string, on bool) string {
	state := "OFF"
	if on {
		state = "ON"
	}
	return fmt.Sprintf("SET IDENTITY_INSERT %s %s", table, state)
}

// lockKey serializes transactions writing under the same key until they end.
// MySQL and MariaDB get the same effect from InnoDB next-key locks on the natural
// key index, and SQLite has a single writer.
func lockKey(tx *gorm.DB, key string) error {
	switch tx.Dialector.Name() {
	case "postgres":
		return tx.Exec("SELECT pg_advisory_xact_lock(hashtext(?))", key).Error
	case "sqlserver":
		return tx.Exec("EXEC sp_getapplock @Resource = ?, @LockMode = 'Exclusive', @LockOwner = 'Transaction'", key).Error
	}
	return nil
}

// isDeadlock reports an InnoDB deadlock. Concurrent first inserts under one
// natural key end this way, and the retried transaction then finds the winner's row.
func isDeadlock(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1213
}

// syncSequence moves a PostgreSQL serial past ids inserted explicitly,
// so later store-assigned ids do not collide with them.
func syncSequence(tx *gorm.DB, table string) error {
	if tx.Dialector.Name() != "postgres" {
		return nil
	}
	return tx.Exec(fmt.Sprintf(
		"SELECT setval(pg_get_serial_sequence('%s', 'id'), (SELECT MAX(id) FROM %s))",
		table, table,
	)).Error
}

// softDelete flags the row deleted and refreshes its modified timestamp.
// Deleting an already deleted row succeeds.
func softDelete[T any](ctx context.Context, db *gorm.DB, id uint64, scope scopeFunc) (*T, error) {
	var row T

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := forUpdate(tx).Scopes(scope).First(&row, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.Wrapf(ErrNotFound, "id %d", id)
			}
			return err
		}

		if err := tx.Model(&row).Update("deleted", true).Error; err != nil {
			return err
		}

		return tx.First(&row, id).Error
	})
	if err != nil {
		return nil, err
	}

	return &row, nil
}

// findOwned loads a single row by id within scope
func findOwned[T any](ctx context.Context, db *gorm.DB, id uint64, scope scopeFunc) (*T, error) {
	var row T
	if err := db.WithContext(ctx).Scopes(scope).First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.Wrapf(ErrNotFound, "id %d", id)
		}
		return nil, err
	}
	return &row, nil
}
