package form

import (
	"testing"

	"github.com/rpggio/commissions/internal/domain/commission"
	"github.com/stretchr/testify/require"
)

func TestFieldsInput(t *testing.T) {
	in, err := Fields{
		Client:   "  Ada ",
		Title:    " Fox ",
		Type:     "Portrait",
		Price:    " 150.5 ",
		Deadline: "2026-11-01",
		Notes:    "  keep spacing ",
	}.Input()
	require.NoError(t, err)
	require.Equal(t, "Ada", in.Client)
	require.Equal(t, "Fox", in.Title)
	require.Equal(t, commission.TypePortrait, in.Type)
	require.NotNil(t, in.Price)
	require.Equal(t, 150.5, *in.Price)
	require.Equal(t, "2026-11-01", in.Deadline)
	require.Equal(t, commission.Status(""), in.Status)
	require.Equal(t, "  keep spacing ", in.Notes)
}

func TestFieldsInput_BlankOptionalFields(t *testing.T) {
	in, err := Fields{Client: "Ada", Title: "Fox"}.Input()
	require.NoError(t, err)
	require.Nil(t, in.Price)
	require.Empty(t, in.Deadline)
}

func TestFieldsInput_Errors(t *testing.T) {
	tests := []struct {
		name   string
		fields Fields
		want   error
	}{
		{"missing client", Fields{Title: "Fox"}, ErrRequired},
		{"blank title", Fields{Client: "Ada", Title: "   "}, ErrRequired},
		{"price text", Fields{Client: "Ada", Title: "Fox", Price: "fifty"}, ErrInvalidPrice},
		{"price nan", Fields{Client: "Ada", Title: "Fox", Price: "NaN"}, ErrInvalidPrice},
		{"price inf", Fields{Client: "Ada", Title: "Fox", Price: "Inf"}, ErrInvalidPrice},
		{"deadline order", Fields{Client: "Ada", Title: "Fox", Deadline: "01-11-2026"}, ErrInvalidDeadline},
		{"deadline date", Fields{Client: "Ada", Title: "Fox", Deadline: "2026-02-30"}, ErrInvalidDeadline},
		{"deadline padding", Fields{Client: "Ada", Title: "Fox", Deadline: "2026-1-5"}, ErrInvalidDeadline},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.fields.Input()
			require.ErrorIs(t, err, tt.want)
			require.ErrorIs(t, err, commission.ErrValidation)
		})
	}
}

func TestErrorMessages(t *testing.T) {
	require.Contains(t, ErrRequired.Error(), "client and title are required")
	require.Contains(t, ErrInvalidPrice.Error(), "price must be a number")
	require.Contains(t, ErrInvalidDeadline.Error(), "deadline must be in YYYY-MM-DD format")
}

func TestParsePrice_Negative(t *testing.T) {
	v, err := ParsePrice("-20")
	require.NoError(t, err)
	require.Equal(t, -20.0, *v)
}

func TestFieldsOf_RoundTrip(t *testing.T) {
	c := commission.Commission{
		ID:       4,
		Client:   "Ada",
		Title:    "Fox",
		Type:     commission.TypeChibi,
		Price:    42.25,
		Deadline: "2026-12-24",
		Status:   commission.StatusInProgress,
		Notes:    "gift",
	}

	fields := FieldsOf(c)
	require.Equal(t, "42.25", fields.Price)

	in, err := fields.Input()
	require.NoError(t, err)
	require.Equal(t, c.Client, in.Client)
	require.Equal(t, c.Type, in.Type)
	require.Equal(t, c.Price, *in.Price)
	require.Equal(t, c.Deadline, in.Deadline)
	require.Equal(t, c.Status, in.Status)
	require.Equal(t, c.Notes, in.Notes)
}

func TestPrice(t *testing.T) {
	require.Equal(t, "$0.00", Price(0))
	require.Equal(t, "$150.00", Price(150))
	require.Equal(t, "$1,234.50", Price(1234.5))
}
