package inmemdb

import (
	"context"
	"sort"

	"github.com/trezcool/stockwise/core/quiz"
)

type resultRepository struct {
	db    *resultTable
	users *userTable
}

var _ quiz.ResultRepository = (*resultRepository)(nil) // interface compliance check

func NewResultRepository(db *DB) quiz.ResultRepository {
	return &resultRepository{db: db.result, users: db.user}
}

func (repo *resultRepository) CreateResult(_ context.Context, res quiz.Result) (quiz.Result, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	res.CompletedAt = res.CompletedAt.UTC()
	repo.db.table = append(repo.db.table, res)
	return res, nil
}

func (repo *resultRepository) newestFirst() []quiz.Result {
	results := make([]quiz.Result, len(repo.db.table))
	copy(results, repo.db.table)
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].CompletedAt.After(results[j].CompletedAt)
	})
	return results
}

func (repo *resultRepository) QueryUserResults(_ context.Context, userID string) ([]quiz.Result, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	results := make([]quiz.Result, 0)
	for _, res := range repo.newestFirst() {
		if res.UserID == userID {
			results = append(results, res)
		}
	}
	return results, nil
}

func (repo *resultRepository) QueryResults(_ context.Context) ([]quiz.ResultWithProfile, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	repo.users.RLock()
	defer repo.users.RUnlock()

	results := make([]quiz.ResultWithProfile, 0, len(repo.db.table))
	for _, res := range repo.newestFirst() {
		var profile quiz.ResultProfile
		if usr, ok := repo.users.table[res.UserID]; ok {
			profile.Phone = usr.Phone
		}
		results = append(results, quiz.ResultWithProfile{Result: res, Profile: profile})
	}
	return results, nil
}
