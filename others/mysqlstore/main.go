package main

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"github.com/Lzww0608/tuuid"
)

// Event is a row keyed by a version 1 UUID. Because v1 identifiers are
// loosely time-ordered, inserts land near the right edge of the primary key
// index instead of splattering across it.
type Event struct {
	ID      tuuid.UUID
	Source  string
	Payload string
}

// EventStore wraps the database handle and the generator whose node
// identity tags every event written by this process.
type EventStore struct {
	db  *sql.DB
	gen *tuuid.Generator
}

// NewEventStore opens the MySQL connection with the given DSN and prepares
// the schema.
func NewEventStore(dsn string) (*EventStore, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	// DB performance and safety tuning
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS events (
		id CHAR(36) PRIMARY KEY,
		source VARCHAR(64) NOT NULL,
		payload TEXT,
		INDEX idx_source (source)
	)`); err != nil {
		db.Close()
		return nil, err
	}

	return &EventStore{
		db:  db,
		gen: tuuid.NewGenerator(),
	}, nil
}

// Append generates a fresh v1 UUID for the event and inserts it. The UUID
// is written through its driver.Valuer form (the canonical 36-char string).
func (s *EventStore) Append(source, payload string) (tuuid.UUID, error) {
	id, err := s.gen.New()
	if err != nil {
		return tuuid.UUID{}, err
	}

	_, err = s.db.Exec(
		"INSERT INTO events (id, source, payload) VALUES (?, ?, ?)",
		id, source, payload)
	if err != nil {
		return tuuid.UUID{}, err
	}
	return id, nil
}

// Get reads one event back, exercising the sql.Scanner side of the UUID.
func (s *EventStore) Get(id tuuid.UUID) (*Event, error) {
	var ev Event
	err := s.db.QueryRow(
		"SELECT id, source, payload FROM events WHERE id = ?", id).
		Scan(&ev.ID, &ev.Source, &ev.Payload)
	if err != nil {
		return nil, err
	}
	return &ev, nil
}

// Recent lists the latest events by primary key order. v1 keys from one
// node sort by generation time, so ORDER BY id DESC is newest-first.
func (s *EventStore) Recent(source string, limit int) ([]Event, error) {
	rows, err := s.db.Query(
		"SELECT id, source, payload FROM events WHERE source = ? ORDER BY id DESC LIMIT ?",
		source, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var ev Event
		if err := rows.Scan(&ev.ID, &ev.Source, &ev.Payload); err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}

func main() {
	// Please modify this DSN with your real DB credentials before use.
	dsn := "lzww:123456@tcp(127.0.0.1:3306)/test_db?parseTime=true"

	store, err := NewEventStore(dsn)
	if err != nil {
		log.Fatal(err)
	}

	log.Println("Event store ready...")

	var wg sync.WaitGroup
	start := time.Now()

	// Simulate 10 concurrent writers, each appending 500 events
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(writerID int) {
			defer wg.Done()
			for j := 0; j < 500; j++ {
				_, err := store.Append("order-service",
					fmt.Sprintf("writer=%d seq=%d", writerID, j))
				if err != nil {
					log.Printf("Error: %v", err)
				}
			}
		}(i)
	}

	wg.Wait()
	elapsed := time.Since(start)
	log.Printf("Total time: %s, appended 5000 events", elapsed)

	recent, err := store.Recent("order-service", 5)
	if err != nil {
		log.Fatal(err)
	}
	for i, ev := range recent {
		fmt.Printf("%d. %s %s\n", i+1, ev.ID, ev.Payload)
	}
}
