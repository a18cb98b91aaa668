package dbmodels

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
)

type BaseModel struct {
	ID        string    `gorm:"primaryKey;type:varchar(36);default:uuid_generate_v4()" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func jsonValue(v interface{}) (driver.Value, error) {
	valueString, err := json.Marshal(v)
	return string(valueString), err
}

func jsonScan(value interface{}, dest interface{}) error {
	switch data := value.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(data, dest)
	case string:
		return json.Unmarshal([]byte(data), dest)
	default:
		return errors.Errorf("неподдерживаемый тип json поля: %T", value)
	}
}
