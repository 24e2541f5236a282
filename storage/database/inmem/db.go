package inmemdb

import (
	"sync"

	"github.com/trezcool/stockwise/core/quiz"
	"github.com/trezcool/stockwise/core/user"
)

type (
	// DB is a process-local store used in development and tests.
	DB struct {
		user   *userTable
		result *resultTable
	}

	userTable struct {
		sync.RWMutex
		table map[string]*user.User
	}

	resultTable struct {
		sync.RWMutex
		table []quiz.Result
	}
)

func Open() *DB {
	return &DB{
		user:   &userTable{table: make(map[string]*user.User)},
		result: &resultTable{},
	}
}
