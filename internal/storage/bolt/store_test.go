package bolt

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	bolt "go.etcd.io/bbolt"

	"github.com/andriskumpel/combate-desinformacao/internal/domain"
)

type BoltStoreSuite struct {
	suite.Suite
	ctx   context.Context
	db    *bolt.DB
	store *VerificationStore
	tm    *TransactionManager
}

func (s *BoltStoreSuite) SetupTest() {
	s.ctx = context.Background()

	db, err := Open(filepath.Join(s.T().TempDir(), "nested", "verifications.bolt"))
	s.Require().NoError(err)
	s.db = db
	s.store = NewVerificationStore(db)
	s.tm = NewTransactionManager(db)
}

func (s *BoltStoreSuite) TearDownTest() {
	if s.db != nil {
		_ = s.db.Close()
	}
}

func TestBoltStoreSuite(t *testing.T) {
	suite.Run(t, new(BoltStoreSuite))
}

func (s *BoltStoreSuite) create(content string) *domain.Verification {
	v, err := domain.NewVerification(content, domain.ContentText, nil)
	s.Require().NoError(err)
	_, err = s.store.Create(s.ctx, v)
	s.Require().NoError(err)
	return v
}

func (s *BoltStoreSuite) completed() domain.VerificationUpdate {
	return domain.Completed(
		&domain.Analysis{ID: uuid.NewString(), Type: domain.ContentText, Text: &domain.TextAnalysis{
			Content:  "texto",
			Entities: []string{},
			Topics:   []string{},
			Metadata: domain.TextMetadata{Length: 5, Language: "pt"},
		}},
		&domain.Classification{Label: "Suspeito", Confidence: 0.8, Explanation: "x", Sources: []string{}},
	)
}

func (s *BoltStoreSuite) TestCreateAndGet() {
	v := s.create("A vacina é segura.")

	got, err := s.store.Get(s.ctx, v.ID)
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Equal(v.ID, got.ID)
	s.Equal(domain.StatusPending, got.Status)
	s.Equal("A vacina é segura.", got.Content)
	s.Nil(got.AnalysisResult)
}

func (s *BoltStoreSuite) TestCreate_DuplicateID() {
	v := s.create("texto")

	_, err := s.store.Create(s.ctx, v)
	s.True(errors.Is(err, domain.ErrStore))
}

func (s *BoltStoreSuite) TestGet_Absent() {
	got, err := s.store.Get(s.ctx, uuid.NewString())
	s.NoError(err)
	s.Nil(got)

	got, err = s.store.Get(s.ctx, "not-a-uuid")
	s.NoError(err)
	s.Nil(got)
}

func (s *BoltStoreSuite) TestUpdate() {
	v := s.create("texto")

	updated, err := s.store.Update(s.ctx, v.ID, s.completed())
	s.Require().NoError(err)
	s.Require().NotNil(updated)
	s.Equal(domain.StatusCompleted, updated.Status)
	s.NotNil(updated.AnalysisResult)
	s.Equal("Suspeito", updated.ClassificationResult.Label)
	s.False(updated.UpdatedAt.Before(v.UpdatedAt))

	got, err := s.store.Get(s.ctx, v.ID)
	s.Require().NoError(err)
	s.Equal(domain.StatusCompleted, got.Status)
	s.Equal(v.CreatedAt.UnixNano(), got.CreatedAt.UnixNano())
}

func (s *BoltStoreSuite) TestUpdate_Absent() {
	updated, err := s.store.Update(s.ctx, uuid.NewString(), domain.Failed())
	s.NoError(err)
	s.Nil(updated)
}

func (s *BoltStoreSuite) TestUpdate_ResultsRequireEachOther() {
	v := s.create("texto")

	_, err := s.store.Update(s.ctx, v.ID, domain.VerificationUpdate{
		ClassificationResult: &domain.Classification{Label: "Falso"},
	})
	s.True(errors.Is(err, domain.ErrStore))
}

func (s *BoltStoreSuite) TestList() {
	first := s.create("um")
	second := s.create("dois")
	third := s.create("três")

	all, err := s.store.List(s.ctx, 0, 10)
	s.Require().NoError(err)
	s.Require().Len(all, 3)
	s.Equal([]string{first.ID, second.ID, third.ID}, []string{all[0].ID, all[1].ID, all[2].ID})

	page, err := s.store.List(s.ctx, 1, 1)
	s.Require().NoError(err)
	s.Require().Len(page, 1)
	s.Equal(second.ID, page[0].ID)

	empty, err := s.store.List(s.ctx, 5, 10)
	s.NoError(err)
	s.NotNil(empty)
	s.Empty(empty)
}

func (s *BoltStoreSuite) TestListPending() {
	stale := s.create("antigo")
	done := s.create("concluído")
	_, err := s.store.Update(s.ctx, done.ID, domain.Failed())
	s.Require().NoError(err)

	time.Sleep(2 * time.Millisecond)
	cutoff := time.Now().UTC()
	time.Sleep(2 * time.Millisecond)
	s.create("novo")

	pending, err := s.store.ListPending(s.ctx, cutoff, 10)
	s.Require().NoError(err)
	s.Require().Len(pending, 1)
	s.Equal(stale.ID, pending[0].ID)
}

func (s *BoltStoreSuite) TestDelete() {
	v := s.create("texto")

	deleted, err := s.store.Delete(s.ctx, v.ID)
	s.NoError(err)
	s.True(deleted)

	deleted, err = s.store.Delete(s.ctx, v.ID)
	s.NoError(err)
	s.False(deleted)

	deleted, err = s.store.Delete(s.ctx, "bogus")
	s.NoError(err)
	s.False(deleted)
}

func (s *BoltStoreSuite) TestTransaction_Commit() {
	v := s.create("texto")

	err := s.tm.WithTransaction(s.ctx, func(ctx context.Context) error {
		current, err := s.store.Get(ctx, v.ID)
		if err != nil {
			return err
		}
		s.NotNil(GetTxFromContext(ctx))
		s.Equal(domain.StatusPending, current.Status)
		_, err = s.store.Update(ctx, v.ID, s.completed())
		return err
	})
	s.Require().NoError(err)

	got, err := s.store.Get(s.ctx, v.ID)
	s.Require().NoError(err)
	s.Equal(domain.StatusCompleted, got.Status)
}

func (s *BoltStoreSuite) TestTransaction_Rollback() {
	v := s.create("texto")

	err := s.tm.WithTransaction(s.ctx, func(ctx context.Context) error {
		if _, err := s.store.Update(ctx, v.ID, domain.Failed()); err != nil {
			return err
		}
		return context.Canceled
	})
	s.ErrorIs(err, context.Canceled)

	got, err := s.store.Get(s.ctx, v.ID)
	s.Require().NoError(err)
	s.Equal(domain.StatusPending, got.Status)
}
