package service_test

import (
	"testing"
	"time"

	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/suite"

	"cadastro/internal/adapter/database"
	"cadastro/internal/adapter/database/repository"
	"cadastro/internal/core/domain"
	"cadastro/internal/core/port"
	"cadastro/internal/core/service"

	. "cadastro/pkg/test"
	factory "cadastro/pkg/test/factory"
)

type MovieServiceSuite struct {
	suite.Suite
	DB      *database.DB
	Service port.MovieService
	clock   time.Time
}

func (s *MovieServiceSuite) SetupTest() {
	s.DB = InitTestDB()
	s.clock = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	s.Service = service.NewMovieService(
		repository.NewMovieRepository(s.DB, nil),
		service.WithClock(func() time.Time { return s.clock }),
	)
}

func (s *MovieServiceSuite) TearDownTest() {
	CloseDB(s.T(), s.DB)
}

func TestMovieServiceSuite(t *testing.T) {
	RegisterTestingT(t)
	suite.Run(t, new(MovieServiceSuite))
}

func (s *MovieServiceSuite) TestCreate() {
	movie, err := s.Service.Create(ctx, factory.NewMovie[domain.Movie](map[string]any{
		"Nome":          "Central do Brasil",
		"AnoLancamento": 1998,
	}))

	Expect(err).ToNot(HaveOccurred())
	Expect(movie.ID).To(BeNumerically(">", 0))
	Expect(movie.Nome).To(Equal("Central do Brasil"))
	Expect(movie.AnoLancamento).To(Equal(1998))
	Expect(movie.CreatedAt).To(Equal(s.clock))
	Expect(movie.UpdatedAt).To(Equal(movie.CreatedAt))
}

func (s *MovieServiceSuite) TestFindAllNewestFirst() {
	s.Service.Create(ctx, factory.NewMovie[domain.Movie](map[string]any{"Nome": "primeiro"}))
	s.clock = s.clock.Add(time.Second)
	s.Service.Create(ctx, factory.NewMovie[domain.Movie](map[string]any{"Nome": "segundo"}))

	movies, err := s.Service.FindAll(ctx)

	Expect(err).ToNot(HaveOccurred())
	Expect(movies).To(HaveLen(2))
	Expect(movies[0].Nome).To(Equal("segundo"))
	Expect(movies[1].Nome).To(Equal("primeiro"))
}

func (s *MovieServiceSuite) TestFindOneNotFound() {
	_, err := s.Service.FindOne(ctx, 7)

	Expect(domain.IsNotFound(err)).To(BeTrue())
	Expect(err.Error()).To(Equal("Filme com o ID 7 não encontrado"))
}

func (s *MovieServiceSuite) TestUpdatePartial() {
	created, _ := s.Service.Create(ctx, factory.NewMovie[domain.Movie](map[string]any{
		"Nome":    "Cidade de Deus",
		"Duracao": 130,
	}))

	duracao := 135
	updated, err := s.Service.Update(ctx, created.ID, domain.MoviePatch{Duracao: &duracao})

	Expect(err).ToNot(HaveOccurred())
	Expect(updated.Nome).To(Equal("Cidade de Deus"))
	Expect(updated.Duracao).To(Equal(135))
	Expect(updated.Genero).To(Equal(created.Genero))
	Expect(updated.UpdatedAt.After(created.UpdatedAt)).To(BeTrue())
}

func (s *MovieServiceSuite) TestRemoveTwice() {
	created, _ := s.Service.Create(ctx, factory.NewMovie[domain.Movie]())

	Expect(s.Service.Remove(ctx, created.ID)).To(Succeed())

	err := s.Service.Remove(ctx, created.ID)

	Expect(domain.IsNotFound(err)).To(BeTrue())
}
