package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Categories is the canonical theme flag set. The analyzer requires all
// four booleans in the model output.
type Categories struct {
	IsSolutionRequest bool `json:"isSolutionRequest"`
	IsPainOrAnger     bool `json:"isPainOrAnger"`
	IsAdviceRequest   bool `json:"isAdviceRequest"`
	IsMoneyTalk       bool `json:"isMoneyTalk"`
}

// Reasoning holds the optional per-category justification texts.
type Reasoning struct {
	SolutionRequest *string `json:"solutionRequest,omitempty"`
	PainOrAnger     *string `json:"painOrAnger,omitempty"`
	AdviceRequest   *string `json:"adviceRequest,omitempty"`
	MoneyTalk       *string `json:"moneyTalk,omitempty"`
}

type ThemeAnalysis struct {
	ID         int64      `db:"id" json:"id"`
	PostID     int64      `db:"post_id" json:"post_id"`
	Categories Categories `db:"categories" json:"categories"`
	Reasoning  Reasoning  `db:"reasoning" json:"reasoning"`
	AnalyzedAt time.Time  `db:"analyzed_at" json:"analyzed_at"`
}

// Categories and Reasoning live in jsonb columns.

func (c Categories) Value() (driver.Value, error) {
	return json.Marshal(c)
}

func (c *Categories) Scan(src any) error {
	return scanJSON(src, c)
}

func (r Reasoning) Value() (driver.Value, error) {
	return json.Marshal(r)
}

func (r *Reasoning) Scan(src any) error {
	return scanJSON(src, r)
}

func scanJSON(src, dst any) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	case nil:
		return nil
	default:
		return fmt.Errorf("scan jsonb: unsupported type %T", src)
	}
}
