package memory

import (
	"context"

	"bulletin/internal/domain/repository"
)

// undoLog collects inverse operations for writes made inside a transaction.
// A nil log records nothing. Entries run with Store.mu already held by the caller.
type undoLog struct {
	steps []func()
}

func (u *undoLog) record(step func()) {
	if u == nil {
		return
	}
	u.steps = append(u.steps, step)
}

func (u *undoLog) rollback(store *Store) {
	store.mu.Lock()
	defer store.mu.Unlock()

	for i := len(u.steps) - 1; i >= 0; i-- {
		u.steps[i]()
	}
	u.steps = nil
}

type transactionManager struct {
	store *Store
}

type repositoryFactory struct {
	store *Store
	undo  *undoLog
}

func (f *repositoryFactory) UserRepo() repository.UserRepository {
	return &userRepository{store: f.store, undo: f.undo}
}

func (f *repositoryFactory) RoleRepo() repository.RoleRepository {
	return &roleRepository{store: f.store, undo: f.undo}
}

func (f *repositoryFactory) PostRepo() repository.PostRepository {
	return &postRepository{store: f.store, undo: f.undo}
}

// NewTransactionManager returns a TransactionManager over store.
func NewTransactionManager(store *Store) repository.TransactionManager {
	return &transactionManager{store: store}
}

// Execute runs fn with transaction-bound repositories. Transactions run one at
// a time; on error or panic every write made through the factory is undone.
func (tm *transactionManager) Execute(ctx context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tm.store.txMu.Lock()
	defer tm.store.txMu.Unlock()

	undo := &undoLog{}

	defer func() {
		if r := recover(); r != nil {
			undo.rollback(tm.store)
			panic(r)
		}
	}()

	if err := fn(&repositoryFactory{store: tm.store, undo: undo}); err != nil {
		undo.rollback(tm.store)

		return err
	}

	return nil
}
