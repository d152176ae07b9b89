package taxsim

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/tradepoint/taxsim/date"
	"golang.org/x/text/encoding/charmap"
)

// Trade ledgers arrive as spreadsheet exports of wildly varying hygiene:
// tab, comma or semicolon separated, sometimes with a UTF-8 BOM or in
// Latin-1, with thousand separators inside prices and trailing junk after
// the first blank line. The reader here is deliberately forgiving: it sniffs
// the delimiter, normalizes the encoding, reads columns by position, and
// skips (with a warning) any row it cannot make sense of.

// Fixed column positions in the source ledger.
const (
	colStock      = 1
	colEntryPrice = 2
	colExitPrice  = 3
	colEntryDate  = 6
	colExitDate   = 7
	minColumns    = 8
)

// LoadTrades reads a trade ledger file and returns the normalized records
// sorted by entry date.
func LoadTrades(path, currency string, log zerolog.Logger) ([]*Trade, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open ledger: %w", err)
	}
	defer f.Close()
	return ReadTrades(f, currency, log)
}

// ReadTrades parses a trade ledger from r. Rows that cannot be parsed are
// skipped with a warning; only I/O failures are errors.
func ReadTrades(r io.Reader, currency string, log zerolog.Logger) ([]*Trade, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read ledger: %w", err)
	}
	text := normalizeEncoding(raw)
	delim := detectDelimiter(text)
	log.Debug().Str("delimiter", fmt.Sprintf("%q", delim)).Msg("sniffed ledger delimiter")

	var trades []*Trade
	scanner := bufio.NewScanner(strings.NewReader(text))
	header := true
	row := 0
	for scanner.Scan() {
		row++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			if header {
				continue
			}
			// The ledger proper ends at the first blank line; anything after
			// is footer noise.
			log.Debug().Int("row", row).Msg("blank line, stopped reading")
			break
		}
		if header {
			header = false
			continue
		}
		t, err := parseRow(line, delim, currency)
		if err != nil {
			log.Warn().Int("row", row).Err(err).Msg("skipping unparseable row")
			continue
		}
		if t == nil {
			log.Debug().Int("row", row).Msg("skipping row with missing essential data")
			continue
		}
		trades = append(trades, t)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan ledger: %w", err)
	}

	sortByEntryDate(trades)
	log.Info().Int("trades", len(trades)).Msg("loaded trade ledger")
	return trades, nil
}

// normalizeEncoding strips a UTF-8 BOM and, when the bytes are not valid
// UTF-8 at all, re-decodes them as Latin-1 (the usual culprit for ledgers
// exported from old spreadsheets).
func normalizeEncoding(raw []byte) string {
	raw = bytes.TrimPrefix(raw, []byte("\xef\xbb\xbf"))
	if utf8.Valid(raw) {
		return string(raw)
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	if err != nil {
		// Latin-1 decoding cannot actually fail, but be safe.
		return string(raw)
	}
	return string(decoded)
}

// detectDelimiter counts candidate delimiters over the first few lines.
// Tab wins when present at all, then comma, then semicolon.
func detectDelimiter(text string) string {
	sample := text
	if idx := nthLineEnd(text, 5); idx > 0 {
		sample = text[:idx]
	}
	switch {
	case strings.Count(sample, "\t") > 0:
		return "\t"
	case strings.Count(sample, ",") > 0:
		return ","
	default:
		return ";"
	}
}

func nthLineEnd(s string, n int) int {
	idx := 0
	for i := 0; i < n; i++ {
		next := strings.IndexByte(s[idx:], '\n')
		if next < 0 {
			return len(s)
		}
		idx += next + 1
	}
	return idx
}

// parseRow extracts one trade from a delimited line. It returns (nil, nil)
// for rows that are well-formed but lack the essential fields (stock, entry
// price, entry date).
func parseRow(line, delim, currency string) (*Trade, error) {
	cells := strings.Split(line, delim)
	for i := range cells {
		cells[i] = strings.Trim(strings.TrimSpace(cells[i]), `"`)
	}
	if len(cells) < minColumns {
		return nil, fmt.Errorf("want %d columns, got %d", minColumns, len(cells))
	}

	stock := cells[colStock]
	if stock == "" || cells[colEntryPrice] == "" || cells[colEntryDate] == "" {
		return nil, nil
	}

	entryPrice, err := ParseMoney(cells[colEntryPrice], currency)
	if err != nil {
		return nil, fmt.Errorf("entry price %q: %w", cells[colEntryPrice], err)
	}
	if !entryPrice.IsPositive() {
		return nil, fmt.Errorf("entry price %q: must be positive", cells[colEntryPrice])
	}
	entryDate, err := date.Parse(cells[colEntryDate])
	if err != nil {
		return nil, fmt.Errorf("entry date: %w", err)
	}

	var exitPrice Money
	if cells[colExitPrice] != "" {
		exitPrice, err = ParseMoney(cells[colExitPrice], currency)
		if err != nil {
			return nil, fmt.Errorf("exit price %q: %w", cells[colExitPrice], err)
		}
	}
	var exitDate date.Date
	if cells[colExitDate] != "" {
		exitDate, err = date.Parse(cells[colExitDate])
		if err != nil {
			return nil, fmt.Errorf("exit date: %w", err)
		}
		if exitDate.Before(entryDate) {
			return nil, fmt.Errorf("exit date %s before entry date %s", exitDate, entryDate)
		}
	}

	return NewTrade(stock, entryPrice, exitPrice, entryDate, exitDate), nil
}

// sortByEntryDate sorts trades chronologically, undated records last,
// preserving input order within a date.
func sortByEntryDate(trades []*Trade) {
	sort.SliceStable(trades, func(i, j int) bool {
		a, b := trades[i].EntryDate, trades[j].EntryDate
		if a.IsZero() {
			return false
		}
		if b.IsZero() {
			return true
		}
		return a.Before(b)
	})
}
