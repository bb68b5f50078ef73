package export

import (
	"bytes"
	"encoding/csv"
	"errors"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"credit-tracker/internal/models"
)

func exportFixture() []models.Account {
	return []models.Account{
		{
			ID:                    "a1",
			AccountName:           "Chase Sapphire",
			AccountNumber:         "4821",
			CreditLimit:           10000,
			AmountOwed:            1250.5,
			MinimumMonthlyPayment: 35,
			InterestRate:          21.99,
			RateExpiration:        "2026-06-30",
			Rewards:               120.25,
			LastUsed:              models.Int(9),
			Position:              0,
		},
		{
			ID:          "a2",
			AccountName: `Store "Card"`,
			CreditLimit: 500,
			AmountOwed:  600,
			Position:    1,
		},
	}
}

func TestWriteCSV_Golden(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, WriteCSV(&buf, exportFixture()))

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "accounts_csv", buf.Bytes())
}

func TestWriteCSV_ParsesAsCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, exportFixture()))

	records, err := csv.NewReader(&buf).ReadAll()

	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "Amount Available", records[0][4])
	assert.Equal(t, "8749.5", records[1][4])
	assert.Equal(t, `Store "Card"`, records[2][0])
	assert.Equal(t, "", records[2][1])
	assert.Equal(t, "-100", records[2][4])
	assert.Equal(t, "", records[2][9])
}

func TestWriteCSV_Empty(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, WriteCSV(&buf, nil))

	assert.Equal(t, "Account Name,Account Number,Credit Limit,Amount Owed,Amount Available,Minimum Monthly Payment,Interest Rate,Rate Expiration,Rewards,Last Used", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed pipe") }

func TestWriteCSV_WriterError(t *testing.T) {
	err := WriteCSV(failingWriter{}, exportFixture())

	assert.Error(t, err)
}
