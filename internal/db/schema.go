package db

import (
	"context"
	"fmt"
)

// Tables lists every table the service owns, parents first.
var Tables = []string{
	"hotels",
	"activities",
	"transfers",
	"itineraries",
	"itinerary_activity",
	"itinerary_transfer",
}

// AUTOINCREMENT keeps sqlite from handing out the id of a deleted max row again.
var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS hotels (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		location TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS activities (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		location TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS transfers (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		from_location TEXT NOT NULL,
		to_location TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS itineraries (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		nights INTEGER NOT NULL,
		hotel_id INTEGER NOT NULL REFERENCES hotels(id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_itineraries_nights ON itineraries (nights)`,
	`CREATE TABLE IF NOT EXISTS itinerary_activity (
		itinerary_id INTEGER NOT NULL REFERENCES itineraries(id),
		activity_id INTEGER NOT NULL REFERENCES activities(id),
		PRIMARY KEY (itinerary_id, activity_id)
	)`,
	`CREATE TABLE IF NOT EXISTS itinerary_transfer (
		itinerary_id INTEGER NOT NULL REFERENCES itineraries(id),
		transfer_id INTEGER NOT NULL REFERENCES transfers(id),
		PRIMARY KEY (itinerary_id, transfer_id)
	)`,
}

var mysqlSchema = []string{
	`CREATE TABLE IF NOT EXISTS hotels (
		id BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		location VARCHAR(255) NOT NULL
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS activities (
		id BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		location VARCHAR(255) NOT NULL
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS transfers (
		id BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		from_location VARCHAR(255) NOT NULL,
		to_location VARCHAR(255) NOT NULL
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS itineraries (
		id BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		nights INT NOT NULL,
		hotel_id BIGINT NOT NULL,
		INDEX idx_itineraries_nights (nights),
		CONSTRAINT fk_itineraries_hotel FOREIGN KEY (hotel_id) REFERENCES hotels(id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS itinerary_activity (
		itinerary_id BIGINT NOT NULL,
		activity_id BIGINT NOT NULL,
		PRIMARY KEY (itinerary_id, activity_id),
		CONSTRAINT fk_ia_itinerary FOREIGN KEY (itinerary_id) REFERENCES itineraries(id),
		CONSTRAINT fk_ia_activity FOREIGN KEY (activity_id) REFERENCES activities(id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS itinerary_transfer (
		itinerary_id BIGINT NOT NULL,
		transfer_id BIGINT NOT NULL,
		PRIMARY KEY (itinerary_id, transfer_id),
		CONSTRAINT fk_it_itinerary FOREIGN KEY (itinerary_id) REFERENCES itineraries(id),
		CONSTRAINT fk_it_transfer FOREIGN KEY (transfer_id) REFERENCES transfers(id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS hotels (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		location TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS activities (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		location TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS transfers (
		id BIGSERIAL PRIMARY KEY,
		from_location TEXT NOT NULL,
		to_location TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS itineraries (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		nights INTEGER NOT NULL,
		hotel_id BIGINT NOT NULL REFERENCES hotels(id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_itineraries_nights ON itineraries (nights)`,
	`CREATE TABLE IF NOT EXISTS itinerary_activity (
		itinerary_id BIGINT NOT NULL REFERENCES itineraries(id),
		activity_id BIGINT NOT NULL REFERENCES activities(id),
		PRIMARY KEY (itinerary_id, activity_id)
	)`,
	`CREATE TABLE IF NOT EXISTS itinerary_transfer (
		itinerary_id BIGINT NOT NULL REFERENCES itineraries(id),
		transfer_id BIGINT NOT NULL REFERENCES transfers(id),
		PRIMARY KEY (itinerary_id, transfer_id)
	)`,
}

// CreateSchemaIfAbsent creates every table and index that does not exist yet.
// Running it against an existing schema is a no-op.
func CreateSchemaIfAbsent(ctx context.Context, q Querier, d Dialect) error {
	for _, stmt := range d.schema {
		if _, err := q.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return nil
}
