// Command inspectdb prints the tables, columns and foreign keys of the chat
// database, for verifying a setup run.
package main

import (
	"database/sql"
	"fmt"

	log "github.com/sirupsen/logrus"

	_ "github.com/go-sql-driver/mysql" // MySQL driver

	"github.com/chatapp-rt/backend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to initialize configuration: %v", err)
	}

	creds := cfg.Credentials()
	db, err := sql.Open("mysql", creds.DSN())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}

	tables, err := listTables(db, creds.Database)
	if err != nil {
		log.Fatalf("Failed to list tables: %v", err)
	}
	if len(tables) == 0 {
		fmt.Printf("No tables found in database %s\n", creds.Database)
		return
	}

	for _, table := range tables {
		fmt.Printf("Table: %s\n", table)

		columns, err := listColumns(db, creds.Database, table)
		if err != nil {
			log.Fatalf("Failed to list columns for %s: %v", table, err)
		}
		for _, col := range columns {
			fmt.Printf("  - %s\n", col)
		}

		fks, err := listForeignKeys(db, creds.Database, table)
		if err != nil {
			log.Fatalf("Failed to list foreign keys for %s: %v", table, err)
		}
		for _, fk := range fks {
			fmt.Printf("  FK %s\n", fk)
		}
		fmt.Println()
	}
}

func listTables(db *sql.DB, dbName string) ([]string, error) {
	rows, err := db.Query(
		"SELECT table_name FROM information_schema.tables WHERE table_schema = ? ORDER BY table_name",
		dbName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		tables = append(tables, name)
	}
	return tables, rows.Err()
}

func listColumns(db *sql.DB, dbName, table string) ([]string, error) {
	rows, err := db.Query(
		`SELECT CONCAT(column_name, ' ', column_type) FROM information_schema.columns
		 WHERE table_schema = ? AND table_name = ? ORDER BY ordinal_position`,
		dbName, table)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var columns []string
	for rows.Next() {
		var col string
		if err := rows.Scan(&col); err != nil {
			return nil, err
		}
		columns = append(columns, col)
	}
	return columns, rows.Err()
}

func listForeignKeys(db *sql.DB, dbName, table string) ([]string, error) {
	rows, err := db.Query(
		`SELECT CONCAT(column_name, ' -> ', referenced_table_name, '(', referenced_column_name, ')')
		 FROM information_schema.key_column_usage
		 WHERE table_schema = ? AND table_name = ? AND referenced_table_name IS NOT NULL
		 ORDER BY column_name`,
		dbName, table)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fks []string
	for rows.Next() {
		var fk string
		if err := rows.Scan(&fk); err != nil {
			return nil, err
		}
		fks = append(fks, fk)
	}
	return fks, rows.Err()
}
