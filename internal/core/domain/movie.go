package domain

import "time"

const MovieResource = "Filme"

type Movie struct {
	ID            int64
	Nome          string
	Descricao     string
	Genero        string
	Duracao       int
	AnoLancamento int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type MoviePatch struct {
	Nome          *string
	Descricao     *string
	Genero        *string
	Duracao       *int
	AnoLancamento *int
}

func (m *Movie) Apply(p MoviePatch) {
	if p.Nome != nil {
		m.Nome = *p.Nome
	}

	if p.Descricao != nil {
		m.Descricao = *p.Descricao
	}

	if p.Genero != nil {
		m.Genero = *p.Genero
	}

	if p.Duracao != nil {
		m.Duracao = *p.Duracao
	}

	if p.AnoLancamento != nil {
		m.AnoLancamento = *p.AnoLancamento
	}
}

func (m *Movie) Stamp(now time.Time) {
	now = now.UTC().Truncate(TimestampPrecision)
	m.CreatedAt = now
	m.UpdatedAt = now
}

func (m *Movie) Touch(now time.Time) {
	m.UpdatedAt = NextTimestamp(m.UpdatedAt, now)
}
