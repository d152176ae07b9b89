package journal

// Amount columns are TEXT: fixed-point decimal strings keep the currency
// scale exact, which REAL would not.
const Schema = `
CREATE TABLE IF NOT EXISTS trades (
	stock TEXT NOT NULL,
	entry_date TEXT NOT NULL,
	entry_price TEXT NOT NULL,
	entry_amount TEXT NOT NULL,
	quantity INTEGER NOT NULL,
	exit_date TEXT NOT NULL,
	exit_price TEXT NOT NULL,
	exit_amount TEXT NOT NULL,
	pnl TEXT NOT NULL,
	class TEXT NOT NULL,
	tax TEXT NOT NULL,
	corpus TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS corpus_history (
	date TEXT NOT NULL,
	available TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_trades_exit_date ON trades(exit_date);
CREATE INDEX IF NOT EXISTS idx_corpus_history_date ON corpus_history(date);
`
