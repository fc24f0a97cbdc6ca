// Package form turns user-entered text fields into commission input and
// formats stored values for display.
package form

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/rpggio/commissions/internal/domain/commission"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DeadlineLayout is the only accepted deadline format.
const DeadlineLayout = "2006-01-02"

var (
	ErrRequired        = fmt.Errorf("%w: client and title are required", commission.ErrValidation)
	ErrInvalidPrice    = fmt.Errorf("%w: price must be a number", commission.ErrValidation)
	ErrInvalidDeadline = fmt.Errorf("%w: deadline must be in YYYY-MM-DD format", commission.ErrValidation)
)

// Fields is a commission as typed by a user: every value is text.
type Fields struct {
	Client   string
	Title    string
	Type     string
	Price    string
	Deadline string
	Status   string
	Notes    string
}

// FieldsOf prefills a form from a stored commission.
func FieldsOf(c commission.Commission) Fields {
	return Fields{
		Client:   c.Client,
		Title:    c.Title,
		Type:     string(c.Type),
		Price:    strconv.FormatFloat(c.Price, 'f', -1, 64),
		Deadline: c.Deadline,
		Status:   string(c.Status),
		Notes:    c.Notes,
	}
}

// Input checks the fields and converts them. An empty price leaves Price nil,
// which is stored as 0. An empty deadline is allowed.
func (f Fields) Input() (commission.Input, error) {
	in := commission.Input{
		Client:   strings.TrimSpace(f.Client),
		Title:    strings.TrimSpace(f.Title),
		Type:     commission.Type(strings.TrimSpace(f.Type)),
		Deadline: strings.TrimSpace(f.Deadline),
		Status:   commission.Status(strings.TrimSpace(f.Status)),
		Notes:    f.Notes,
	}
	if in.Client == "" || in.Title == "" {
		return commission.Input{}, ErrRequired
	}

	price, err := ParsePrice(f.Price)
	if err != nil {
		return commission.Input{}, err
	}
	in.Price = price

	if in.Deadline != "" {
		if _, err := time.Parse(DeadlineLayout, in.Deadline); err != nil {
			return commission.Input{}, ErrInvalidDeadline
		}
	}
	return in, nil
}

// ParsePrice parses a decimal price. Blank text yields nil.
func ParsePrice(raw string) (*float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, ErrInvalidPrice
	}
	return &v, nil
}

var printer = message.NewPrinter(language.English)

// Price renders an amount as dollars with two decimals and digit grouping.
func Price(v float64) string {
	return printer.Sprintf("$%.2f", v)
}
