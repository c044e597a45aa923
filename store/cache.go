package store

import (
	"encoding/json"
	"fmt"

	"github.com/gomodule/redigo/redis"
	"github.com/sirupsen/logrus"
)

/*

solution cache

Solved puzzles are cached by the condensed 81-character form of
the starting puzzle plus the algorithm that solved it, since the
counters differ per algorithm.  Entries expire; the cache is an
accelerator, not a system of record.

*/

// solutionTTL is how long cached solutions live, in seconds (one
// week).
const solutionTTL = 7 * 24 * 60 * 60

// A CachedSolution is the cache entry for one solved puzzle.
type CachedSolution struct {
	Solution      string `json:"solution"` // condensed 81-character solved grid
	Possibilities int    `json:"possibilities"`
	Backtracks    int    `json:"backtracks"`
}

// solutionKey builds the cache key for a puzzle/algorithm pair.
func solutionKey(condensed, algorithm string) string {
	return fmt.Sprintf("sudoku:solution:%s:%s", algorithm, condensed)
}

// GetSolution looks up the cached solution for a puzzle and
// algorithm.  A miss returns (nil, nil).
func GetSolution(condensed, algorithm string) (*CachedSolution, error) {
	var cached *CachedSolution
	err := rdExecute(func(conn redis.Conn) error {
		encoded, err := redis.Bytes(conn.Do("GET", solutionKey(condensed, algorithm)))
		if err == redis.ErrNil {
			return nil
		}
		if err != nil {
			return err
		}
		cached = &CachedSolution{}
		if err := json.Unmarshal(encoded, cached); err != nil {
			// a corrupt entry is as good as a miss
			logrus.WithError(err).Warn("store: discarding corrupt cached solution")
			cached = nil
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cached, nil
}

// PutSolution stores the solution for a puzzle and algorithm.
func PutSolution(condensed, algorithm string, solution *CachedSolution) error {
	encoded, err := json.Marshal(solution)
	if err != nil {
		return err
	}
	return rdExecute(func(conn redis.Conn) error {
		_, err := conn.Do("SETEX", solutionKey(condensed, algorithm), solutionTTL, encoded)
		return err
	})
}

// DropSolutions removes every cached solution for the given
// condensed puzzle, across all algorithms.
func DropSolutions(condensed string) error {
	return rdExecute(func(conn redis.Conn) error {
		keys, err := redis.Strings(conn.Do("KEYS", solutionKey(condensed, "*")))
		if err != nil {
			return err
		}
		for _, key := range keys {
			if _, err := conn.Do("DEL", key); err != nil {
				return err
			}
		}
		return nil
	})
}
