// Package sqldb is the SQLite-backed implementation of the codenames.DB
// store, used by the server binary. Match state is stored as a JSON blob;
// the engine is the only thing that interprets it.
package sqldb

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"math/rand"

	"github.com/liusenjun/Codenames-AI-game/codenames"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS Matches (
	id TEXT PRIMARY KEY,
	created_by TEXT NOT NULL,
	status TEXT NOT NULL,
	state BLOB NOT NULL
);

CREATE TABLE IF NOT EXISTS Players (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS MatchPlayers (
	match_id TEXT NOT NULL,
	player_id TEXT NOT NULL,
	team TEXT NOT NULL DEFAULT '',
	role TEXT NOT NULL DEFAULT '',
	assigned INTEGER NOT NULL DEFAULT 0,
	PRIMARY KEY (match_id, player_id)
);
`

// DB implements the store API, backed by a SQLite database.
// NOTE: Since the database doesn't support concurrent writers, we don't
// hand the *sql.DB to callers, all access is funneled through a single
// goroutine via channels.
type DB struct {
	dbChan   chan func(*sql.DB)
	doneChan chan struct{}
	r        *rand.Rand
}

// New creates a *DB stored on disk at the given filename.
func New(fn string, src rand.Source) (*DB, error) {
	sdb, err := sql.Open("sqlite3", fn)
	if err != nil {
		return nil, err
	}
	if _, err := sdb.Exec(schema); err != nil {
		sdb.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	db := &DB{
		dbChan:   make(chan func(*sql.DB)),
		doneChan: make(chan struct{}),
		r:        rand.New(src),
	}
	go db.run(sdb)
	return db, nil
}

// run executes all database calls, ensuring only one thing is happening
// against the database at a time. The rand is only touched here, which is
// what makes it safe to use unlocked.
func (s *DB) run(sdb *sql.DB) {
	for {
		select {
		case dbFn := <-s.dbChan:
			dbFn(sdb)
		case <-s.doneChan:
			sdb.Close()
			return
		}
	}
}

func (s *DB) Close() error {
	close(s.doneChan)
	return nil
}

// do runs fn on the database goroutine and waits for it.
func (s *DB) do(fn func(*sql.DB) error) error {
	errChan := make(chan error, 1)
	s.dbChan <- func(sdb *sql.DB) {
		errChan <- fn(sdb)
	}
	return <-errChan
}

func (s *DB) NewMatch(m *codenames.Match) (codenames.MatchID, error) {
	var mID codenames.MatchID
	err := s.do(func(sdb *sql.DB) error {
		dat, err := json.Marshal(m.State)
		if err != nil {
			return fmt.Errorf("failed to marshal state: %w", err)
		}
		mID = codenames.RandomMatchID(s.r)
		_, err = sdb.Exec(
			"INSERT INTO Matches (id, created_by, status, state) VALUES (?, ?, ?, ?)",
			string(mID), string(m.CreatedBy), string(codenames.Open), dat)
		return err
	})
	return mID, err
}

func (s *DB) Match(mID codenames.MatchID) (*codenames.Match, error) {
	var m codenames.Match
	err := s.do(func(sdb *sql.DB) error {
		var status string
		var createdBy string
		var dat []byte
		row := sdb.QueryRow("SELECT created_by, status, state FROM Matches WHERE id = ?", string(mID))
		if err := row.Scan(&createdBy, &status, &dat); err == sql.ErrNoRows {
			return codenames.ErrMatchNotFound
		} else if err != nil {
			return err
		}

		var state codenames.MatchState
		if err := json.Unmarshal(dat, &state); err != nil {
			return fmt.Errorf("failed to unmarshal state: %w", err)
		}
		m = codenames.Match{
			ID:        mID,
			CreatedBy: codenames.PlayerID(createdBy),
			Status:    codenames.MatchStatus(status),
			State:     &state,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *DB) OpenMatches() ([]codenames.MatchID, error) {
	var out []codenames.MatchID
	err := s.do(func(sdb *sql.DB) error {
		rows, err := sdb.Query("SELECT id FROM Matches WHERE status = ? ORDER BY id ASC", string(codenames.Open))
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			var id string
			if err := rows.Scan(&id); err != nil {
				return err
			}
			out = append(out, codenames.MatchID(id))
		}
		return rows.Err()
	})
	return out, err
}

func (s *DB) StartMatch(mID codenames.MatchID) error {
	return s.setStatus(mID, codenames.Playing)
}

func (s *DB) setStatus(mID codenames.MatchID, status codenames.MatchStatus) error {
	return s.do(func(sdb *sql.DB) error {
		res, err := sdb.Exec("UPDATE Matches SET status = ? WHERE id = ?", string(status), string(mID))
		if err != nil {
			return err
		}
		return requireOneRow(res)
	})
}

func (s *DB) UpdateState(mID codenames.MatchID, ms *codenames.MatchState) error {
	return s.do(func(sdb *sql.DB) error {
		dat, err := json.Marshal(ms)
		if err != nil {
			return fmt.Errorf("failed to marshal state: %w", err)
		}
		status := codenames.Playing
		if ms.Result != nil {
			status = codenames.Finished
		}
		res, err := sdb.Exec("UPDATE Matches SET state = ?, status = ? WHERE id = ?", dat, string(status), string(mID))
		if err != nil {
			return err
		}
		return requireOneRow(res)
	})
}

func (s *DB) NewPlayer(p *codenames.Player) (codenames.PlayerID, error) {
	var pID codenames.PlayerID
	err := s.do(func(sdb *sql.DB) error {
		pID = codenames.RandomPlayerID(s.r)
		_, err := sdb.Exec("INSERT INTO Players (id, name) VALUES (?, ?)", string(pID), p.Name)
		return err
	})
	return pID, err
}

func (s *DB) Player(pID codenames.PlayerID) (*codenames.Player, error) {
	var p codenames.Player
	err := s.do(func(sdb *sql.DB) error {
		row := sdb.QueryRow("SELECT id, name FROM Players WHERE id = ?", string(pID))
		var id, name string
		if err := row.Scan(&id, &name); err == sql.ErrNoRows {
			return codenames.ErrPlayerNotFound
		} else if err != nil {
			return err
		}
		p = codenames.Player{ID: codenames.PlayerID(id), Name: name}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *DB) JoinMatch(mID codenames.MatchID, pID codenames.PlayerID) error {
	return s.do(func(sdb *sql.DB) error {
		// The primary key fails the insert if the player already joined.
		_, err := sdb.Exec(
			"INSERT INTO MatchPlayers (match_id, player_id) VALUES (?, ?)",
			string(mID), string(pID))
		return err
	})
}

func (s *DB) AssignSeat(mID codenames.MatchID, req *codenames.SeatAssignment) error {
	return s.do(func(sdb *sql.DB) error {
		res, err := sdb.Exec(
			"UPDATE MatchPlayers SET team = ?, role = ?, assigned = 1 WHERE match_id = ? AND player_id = ?",
			string(req.Team), string(req.Role), string(mID), string(req.PlayerID))
		if err != nil {
			return err
		}
		return requireOneRow(res)
	})
}

func (s *DB) PlayersInMatch(mID codenames.MatchID) ([]*codenames.SeatAssignment, error) {
	var out []*codenames.SeatAssignment
	err := s.do(func(sdb *sql.DB) error {
		rows, err := sdb.Query(
			"SELECT player_id, team, role, assigned FROM MatchPlayers WHERE match_id = ? ORDER BY player_id ASC",
			string(mID))
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			var pID, team, role string
			var assigned bool
			if err := rows.Scan(&pID, &team, &role, &assigned); err != nil {
				return err
			}
			out = append(out, &codenames.SeatAssignment{
				PlayerID: codenames.PlayerID(pID),
				Team:     codenames.Team(team),
				Role:     codenames.Role(role),
				Assigned: assigned,
			})
		}
		return rows.Err()
	})
	return out, err
}

func requireOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return codenames.ErrMatchNotFound
	}
	return nil
}
