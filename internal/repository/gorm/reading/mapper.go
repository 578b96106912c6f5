package readinggorm

import (
	"fmt"

	"github.com/oggyb/modelkit/internal/domain/reading"
	"github.com/oggyb/modelkit/internal/proxy"
)

// toDomain maps a ReadingModel to a domain Reading. Channels are read in
// order up to the first NULL.
func toDomain(m *ReadingModel) (*reading.Reading, error) {
	channels, err := m.ByChannel()
	if err != nil {
		return nil, fmt.Errorf("bind channels: %w", err)
	}

	values := make([]float64, 0, channels.Len())
	for _, v := range channels.All() {
		f, _ := v.(*float64)
		if f == nil {
			break
		}
		values = append(values, *f)
	}

	return &reading.Reading{
		ID:        m.ID,
		Sensor:    m.Sensor,
		Values:    values,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}, nil
}

// toDomainMany maps a slice of ReadingModel to domain Readings.
func toDomainMany(models []ReadingModel) ([]*reading.Reading, error) {
	out := make([]*reading.Reading, len(models))
	for i := range models {
		r, err := toDomain(&models[i])
		if err != nil {
			return nil, err
		}
		out[i] = r
	}
	return out, nil
}

// fromDomain maps a domain Reading to a ReadingModel.
func fromDomain(r *reading.Reading) (*ReadingModel, error) {
	m := &ReadingModel{
		Sensor:    r.Sensor,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
	m.ID = r.ID

	data, err := m.Data()
	if err != nil {
		return nil, fmt.Errorf("bind data columns: %w", err)
	}

	values := make([]any, len(r.Values))
	for i, v := range r.Values {
		values[i] = v
	}
	if err := data.SetSlice(proxy.Whole(), values); err != nil {
		return nil, fmt.Errorf("set data columns: %w", err)
	}

	return m, nil
}
