package model

import (
	"encoding/json"
	"time"
)

// DefaultUIConfigKey is the entry the admin UI persists its layout settings under.
const DefaultUIConfigKey = "ui-config-storage"

type UIConfig struct {
	Key       string          `json:"key"`
	Value     json.RawMessage `json:"value"`
	UpdatedAt time.Time       `json:"updated_at"`
}
