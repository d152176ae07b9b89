package journal

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

type SQLiteJournal struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLiteJournal, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, err
	}
	return &SQLiteJournal{db: db}, nil
}

func (j *SQLiteJournal) RecordTrade(t TradeRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO trades
		(stock, entry_date, entry_price, entry_amount, quantity, exit_date, exit_price, exit_amount, pnl, class, tax, corpus)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.Stock, t.EntryDate, t.EntryPrice, t.EntryAmount, t.Quantity,
		t.ExitDate, t.ExitPrice, t.ExitAmount, t.PNL, t.Class, t.Tax, t.Corpus,
	)
	return err
}

func (j *SQLiteJournal) RecordCorpus(c CorpusRecord) error {
	_, err := j.db.Exec(`INSERT INTO corpus_history (date, available) VALUES (?, ?)`,
		c.Date, c.Available)
	return err
}

// ListTrades returns the persisted trades ordered by exit date.
func (j *SQLiteJournal) ListTrades() ([]TradeRecord, error) {
	rows, err := j.db.Query(`
		SELECT stock, entry_date, entry_price, entry_amount, quantity, exit_date, exit_price, exit_amount, pnl, class, tax, corpus
		FROM trades ORDER BY exit_date, rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trades []TradeRecord
	for rows.Next() {
		var t TradeRecord
		if err := rows.Scan(&t.Stock, &t.EntryDate, &t.EntryPrice, &t.EntryAmount, &t.Quantity,
			&t.ExitDate, &t.ExitPrice, &t.ExitAmount, &t.PNL, &t.Class, &t.Tax, &t.Corpus); err != nil {
			return nil, err
		}
		trades = append(trades, t)
	}
	return trades, rows.Err()
}

func (j *SQLiteJournal) Close() error {
	return j.db.Close()
}
