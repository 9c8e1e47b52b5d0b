package database

import (
	"context"
	"fmt"

	"github.com/diegoclair/gpns-planner/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db               *DB
	templateRepo     contract.TemplateRepo
	subTaskRepo      contract.SubTaskRepo
	subscriptionRepo contract.SubscriptionRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	i := repoInstancesWithConn(db.conn)
	i.db = db
	return i
}

// repoInstancesWithConn creates repository instances with custom dbConn
func repoInstancesWithConn(db dbConn) *instance {
	return &instance{
		templateRepo:     newTemplateRepo(db),
		subTaskRepo:      newSubTaskRepo(db),
		subscriptionRepo: newSubscriptionRepo(db),
	}
}

func (i *instance) Template() contract.TemplateRepo {
	return i.templateRepo
}

func (i *instance) SubTask() contract.SubTaskRepo {
	return i.subTaskRepo
}

func (i *instance) Subscription() contract.SubscriptionRepo {
	return i.subscriptionRepo
}

// WithTransaction executes a function within a database transaction.
// Nested calls reuse the open transaction.
func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	if i.db == nil {
		return fn(i)
	}

	tx, err := i.db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txInstance := repoInstancesWithConn(tx)
	err = fn(txInstance)
	if err != nil {
		rbErr := tx.Rollback()
		if rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %v, original error: %w", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
