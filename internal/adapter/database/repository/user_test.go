package repository

import (
	"context"
	"testing"
	"time"

	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/suite"

	"cadastro/internal/adapter/database"
	"cadastro/internal/core/domain"
	"cadastro/internal/core/port"

	. "cadastro/pkg/test"
	factory "cadastro/pkg/test/factory"
)

var ctx = context.Background()

type UserRepositorySuite struct {
	suite.Suite
	DB   *database.DB
	Repo port.UserRepository
}

func (s *UserRepositorySuite) SetupTest() {
	s.DB = InitTestDB()
	s.Repo = NewUserRepository(s.DB, nil)
}

func (s *UserRepositorySuite) TearDownTest() {
	CloseDB(s.T(), s.DB)
}

func TestUserRepositorySuite(t *testing.T) {
	RegisterTestingT(t)
	suite.Run(t, new(UserRepositorySuite))
}

func newUser(custom map[string]any) domain.User {
	user := factory.NewUser[domain.User](custom)
	user.Stamp(domain.Now())

	return user
}

func (s *UserRepositorySuite) TestCreate() {
	age := 30

	user, err := s.Repo.Create(ctx, newUser(map[string]any{
		"Name":  "Ana",
		"Email": "ana@example.com",
		"Age":   &age,
	}))

	Expect(err).ToNot(HaveOccurred())
	Expect(user.ID).To(BeNumerically(">", 0))
	Expect(user.Name).To(Equal("Ana"))
	Expect(user.Email).To(Equal("ana@example.com"))
	Expect(*user.Age).To(Equal(30))
	Expect(user.IsActive).To(BeTrue())
	Expect(user.CreatedAt).To(Equal(user.UpdatedAt))
	Expect(user.CreatedAt.Location()).To(Equal(time.UTC))
}

func (s *UserRepositorySuite) TestCreateWithoutAge() {
	user := newUser(nil)
	user.Age = nil

	saved, err := s.Repo.Create(ctx, user)

	Expect(err).ToNot(HaveOccurred())
	Expect(saved.Age).To(BeNil())
}

func (s *UserRepositorySuite) TestGetByIDRoundTrip() {
	created, _ := s.Repo.Create(ctx, newUser(nil))

	found, err := s.Repo.GetByID(ctx, created.ID)

	Expect(err).ToNot(HaveOccurred())
	Expect(found).To(Equal(created))
}

func (s *UserRepositorySuite) TestGetByIDNotFound() {
	_, err := s.Repo.GetByID(ctx, 999)

	Expect(domain.IsNotFound(err)).To(BeTrue())
	Expect(err.Error()).To(Equal("Usuário com o ID 999 não encontrado"))
}

func (s *UserRepositorySuite) TestGetAllEmpty() {
	users, err := s.Repo.GetAll(ctx, domain.UserFilter{})

	Expect(err).ToNot(HaveOccurred())
	Expect(users).ToNot(BeNil())
	Expect(users).To(BeEmpty())
}

func (s *UserRepositorySuite) TestGetAllOrderedByNewest() {
	base := domain.Now()

	for i, name := range []string{"first", "second", "third"} {
		user := factory.NewUser[domain.User](map[string]any{"Name": name})
		user.Stamp(base.Add(time.Duration(i) * time.Minute))
		s.Repo.Create(ctx, user)
	}

	users, err := s.Repo.GetAll(ctx, domain.UserFilter{})

	Expect(err).ToNot(HaveOccurred())
	Expect(users).To(HaveLen(3))
	Expect(users[0].Name).To(Equal("third"))
	Expect(users[2].Name).To(Equal("first"))
}

func (s *UserRepositorySuite) TestGetAllSameTimestampOrderedByID() {
	now := domain.Now()

	first := factory.NewUser[domain.User](map[string]any{"Name": "a"})
	first.Stamp(now)
	second := factory.NewUser[domain.User](map[string]any{"Name": "b"})
	second.Stamp(now)

	s.Repo.Create(ctx, first)
	s.Repo.Create(ctx, second)

	users, _ := s.Repo.GetAll(ctx, domain.UserFilter{})

	Expect(users).To(HaveLen(2))
	Expect(users[0].Name).To(Equal("b"))
}

func (s *UserRepositorySuite) TestGetAllFilterActive() {
	s.Repo.Create(ctx, newUser(map[string]any{"Name": "on", "IsActive": true}))
	s.Repo.Create(ctx, newUser(map[string]any{"Name": "off", "IsActive": false}))

	active := true
	users, err := s.Repo.GetAll(ctx, domain.UserFilter{Active: &active})

	Expect(err).ToNot(HaveOccurred())
	Expect(users).To(HaveLen(1))
	Expect(users[0].Name).To(Equal("on"))

	inactive := false
	users, _ = s.Repo.GetAll(ctx, domain.UserFilter{Active: &inactive})

	Expect(users).To(HaveLen(1))
	Expect(users[0].Name).To(Equal("off"))
}

func (s *UserRepositorySuite) TestUpdate() {
	created, _ := s.Repo.Create(ctx, newUser(map[string]any{"Name": "before"}))

	created.Name = "after"
	created.Age = nil
	created.Touch(domain.Now())

	updated, err := s.Repo.Update(ctx, created)

	Expect(err).ToNot(HaveOccurred())
	Expect(updated.ID).To(Equal(created.ID))
	Expect(updated.Name).To(Equal("after"))
	Expect(updated.Age).To(BeNil())
	Expect(updated.UpdatedAt).To(Equal(created.UpdatedAt))
	Expect(updated.CreatedAt).To(Equal(created.CreatedAt))
}

func (s *UserRepositorySuite) TestUpdateMissingRow() {
	user := newUser(nil)
	user.ID = 404

	_, err := s.Repo.Update(ctx, user)

	Expect(domain.IsNotFound(err)).To(BeTrue())
}

func (s *UserRepositorySuite) TestDeleteByID() {
	created, _ := s.Repo.Create(ctx, newUser(nil))

	Expect(s.Repo.DeleteByID(ctx, created.ID)).To(Succeed())

	_, err := s.Repo.GetByID(ctx, created.ID)
	Expect(domain.IsNotFound(err)).To(BeTrue())

	err = s.Repo.DeleteByID(ctx, created.ID)
	Expect(domain.IsNotFound(err)).To(BeTrue())
}

func (s *UserRepositorySuite) TestIDsAreNotReused() {
	first, _ := s.Repo.Create(ctx, newUser(nil))
	s.Repo.DeleteByID(ctx, first.ID)

	second, _ := s.Repo.Create(ctx, newUser(nil))

	Expect(second.ID).To(BeNumerically(">", first.ID))
}
