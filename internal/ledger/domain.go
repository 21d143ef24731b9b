package ledger

import (
	"errors"
	"time"
)

// DateLayout is the calendar-day format sales are recorded with. There
// is no time-of-day component anywhere in the ledger.
const DateLayout = "2006-01-02"

// ErrInvalidDate is returned when a sale date is not a YYYY-MM-DD day.
var ErrInvalidDate = errors.New("invalid sale date")

// Sale is one transaction in the ledger. ProductName and Price are
// frozen copies taken when the sale was recorded, so later product edits
// never rewrite history. Only the stock adjustment is live.
type Sale struct {
	ID          string  `json:"id"`
	ProductID   int64   `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	Date        string  `json:"date"`
	Total       float64 `json:"total"`
}

// Day parses the sale date. Sales only enter the ledger through
// RecordSale, which validates the date, so a parse failure here means
// the stored collection was edited by hand; callers get the zero time.
func (s Sale) Day() time.Time {
	t, _ := time.Parse(DateLayout, s.Date)
	return t
}

// ParseDay validates a calendar-day string.
func ParseDay(date string) (string, error) {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return "", ErrInvalidDate
	}
	return t.Format(DateLayout), nil
}
