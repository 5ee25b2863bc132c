package transfer

import (
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Sheet is one named tab of a workbook. The first row is the header.
type Sheet struct {
	Name string     `json:"name"`
	Rows [][]string `json:"rows"`
}

// Workbook is an ordered set of sheets, as parsed from an upload or built
// for export. Sheet order is preserved end to end.
type Workbook []Sheet

// Cell returns column i of row, or "" when the row is shorter. The xlsx
// reader drops trailing empty cells, so short rows are routine.
func Cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return row[i]
}

// StagedPrice is a parsed price held pending confirmed commit against a
// live stock record. One per product code; the whole set is replaced on
// every stage call.
type StagedPrice struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Code      string             `json:"code" bson:"code"`
	Name      string             `json:"name" bson:"name"`
	Price     string             `json:"price" bson:"price"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
}

func (s *StagedPrice) PriceDecimal() decimal.Decimal {
	d, err := decimal.NewFromString(s.Price)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// PriceChange is one staged price that differs from the live stock price,
// surfaced for confirmation before commit.
type PriceChange struct {
	Name     string `json:"name"`
	Code     string `json:"code"`
	OldPrice string `json:"old_price"`
	NewPrice string `json:"new_price"`
}

// FullImportPreview is the check-phase result of a full-product import:
// per-category sheets holding only rows with codes new to the catalogue.
// Message is set instead when no sheet contributed a single new row.
type FullImportPreview struct {
	Sheets  Workbook `json:"sheets"`
	Message string   `json:"message,omitempty"`
}

// ApplyResult reports a commit: how many products were created and which
// destination tags or parameter values were skipped along the way.
type ApplyResult struct {
	Created  int      `json:"created"`
	Warnings []string `json:"warnings"`
}

// Export is a generated workbook ready for download.
type Export struct {
	Filename    string
	ContentType string
	Content     []byte
}
