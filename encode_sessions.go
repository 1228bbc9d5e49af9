package bankroll

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// jsession is the persisted shape of a session, one JSON object per record.
type jsession struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	SessionType string          `json:"sessionType"`
	Location    string          `json:"location"`
	Stake       string          `json:"stake"`
	BuyIn       decimal.Decimal `json:"buyIn"`
	CashOut     decimal.Decimal `json:"cashOut"`
	Profit      decimal.Decimal `json:"profit"`
	Notes       string          `json:"notes"`
	CreatedAt   int64           `json:"createdAt"`
	UpdatedAt   int64           `json:"updatedAt"`
}

// DecodeSessions decodes the persisted blob as a list of session-shaped
// records and sanitizes every element. A blob that is not a decodable list
// yields an empty sequence: corruption must never crash the application.
func DecodeSessions(r io.Reader, currency string) []Session {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(data, &elements); err != nil {
		return nil
	}

	sessions := make([]Session, 0, len(elements))
	for _, element := range elements {
		var raw any
		dec := json.NewDecoder(bytes.NewReader(element))
		dec.UseNumber()
		// a decode failure leaves raw nil and the element sanitizes to defaults
		_ = dec.Decode(&raw)
		s := Sanitize(raw)
		s.stamp(currency)
		sessions = append(sessions, s)
	}
	return sessions
}

// EncodeSessions writes the full session list as an indented JSON array,
// human readable and diff friendly.
func EncodeSessions(w io.Writer, sessions []Session) error {
	records := make([]jsession, 0, len(sessions))
	for _, s := range sessions {
		records = append(records, jsession{
			ID:          s.ID,
			Date:        s.Date,
			SessionType: string(s.Type),
			Location:    s.Location,
			Stake:       s.Stake,
			BuyIn:       s.BuyIn.Decimal(),
			CashOut:     s.CashOut.Decimal(),
			Profit:      s.Profit.Decimal(),
			Notes:       s.Notes,
			CreatedAt:   s.CreatedAt,
			UpdatedAt:   s.UpdatedAt,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}
