package readinggorm

import (
	"fmt"
	"time"

	"github.com/oggyb/modelkit/internal/column"
	"github.com/oggyb/modelkit/internal/domain/reading"
	"github.com/oggyb/modelkit/internal/proxy"
	"gorm.io/gorm"
)

// ReadingModel is the GORM persistence model for readings.
// It maps directly to the "readings" table; one nullable column per channel.
type ReadingModel struct {
	column.NotNullAutoIncrementIntPK

	Sensor string   `gorm:"size:64;not null;index"`
	Data1  *float64 `gorm:"column:Data 1"`
	Data2  *float64 `gorm:"column:Data 2"`
	Data3  *float64 `gorm:"column:Data 3"`
	Data4  *float64 `gorm:"column:Data 4"`
	Data5  *float64 `gorm:"column:Data 5"`
	Data6  *float64 `gorm:"column:Data 6"`
	Data7  *float64 `gorm:"column:Data 7"`
	Data8  *float64 `gorm:"column:Data 8"`
	Data9  *float64 `gorm:"column:Data 9"`
	Data10 *float64 `gorm:"column:Data 10"`

	CreatedAt time.Time `gorm:"not null;index"`
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName overrides the default table name used by GORM.
func (ReadingModel) TableName() string {
	return "readings"
}

var dataAttrs = func() []string {
	names := make([]string, reading.Channels)
	for i := range names {
		names[i] = fmt.Sprintf("Data%d", i+1)
	}
	return names
}()

// Data exposes Data1..Data10 as a sequence indexed from 0.
func (m *ReadingModel) Data() (*proxy.Sequence, error) {
	return proxy.NewSequence(m, dataAttrs...)
}

// ByChannel exposes Data1..Data10 keyed by 1-based channel number.
func (m *ReadingModel) ByChannel() (*proxy.Mapping[int], error) {
	bindings := make([]proxy.Binding[int], len(dataAttrs))
	for i, attr := range dataAttrs {
		bindings[i] = proxy.Bind(i+1, attr)
	}
	return proxy.NewMapping(m, bindings...)
}
