package repositories

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"alfredoptarigan/interview-coach/internal/models"
)

var sessionColumns = []string{"user_id", "questions", "evaluations", "created_at", "updated_at"}

func newMockRepository(t *testing.T) (SessionRepository, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return NewSessionRepository(db), mock
}

func TestSessionRepositorySaveQuestionsUpsertsQuestionsOnly(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectExec(`INSERT INTO "interview_sessions" .*ON CONFLICT .*DO UPDATE SET "questions"=.*"updated_at"=`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SaveQuestions("u-1", []models.Question{{ID: "q1", Text: "Why Go?", Category: models.CategoryTechnical}})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepositorySaveEvaluationsUpsertsEvaluationsOnly(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectExec(`INSERT INTO "interview_sessions" .*ON CONFLICT .*DO UPDATE SET "evaluations"=.*"updated_at"=`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.SaveEvaluations("u-1", nil))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepositorySaveError(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectExec(`INSERT INTO "interview_sessions"`).WillReturnError(errors.New("connection reset"))

	err := repo.SaveQuestions("u-1", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to save session questions")
}

func TestSessionRepositoryFind(t *testing.T) {
	repo, mock := newMockRepository(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT \* FROM "interview_sessions" WHERE user_id = \$1`).
		WillReturnRows(sqlmock.NewRows(sessionColumns).
			AddRow("u-1", `[{"id":"q1","text":"Why Go?","category":"Technical"}]`, "", now, now))

	questions, err := repo.FindQuestions("u-1")
	require.NoError(t, err)
	assert.Equal(t, []models.Question{{ID: "q1", Text: "Why Go?", Category: models.CategoryTechnical}}, questions)

	mock.ExpectQuery(`SELECT \* FROM "interview_sessions" WHERE user_id = \$1`).
		WillReturnRows(sqlmock.NewRows(sessionColumns).
			AddRow("u-1", `[]`, "", now, now))

	_, err = repo.FindEvaluations("u-1")
	assert.ErrorIs(t, err, ErrSessionNotFound, "questions alone do not make an evaluation entry")

	mock.ExpectQuery(`SELECT \* FROM "interview_sessions" WHERE user_id = \$1`).
		WillReturnRows(sqlmock.NewRows(sessionColumns).
			AddRow("u-1", "", `[{"question_id":"q1","confidence":7,"clarity":8,"relevance":9,"feedback":"ok","expected_answer":"more"}]`, now, now))

	evaluations, err := repo.FindEvaluations("u-1")
	require.NoError(t, err)
	assert.Equal(t, []models.EvaluationResult{{
		QuestionID:     "q1",
		Confidence:     7,
		Clarity:        8,
		Relevance:      9,
		Feedback:       "ok",
		ExpectedAnswer: "more",
	}}, evaluations)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepositoryFindMissing(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(`SELECT \* FROM "interview_sessions"`).
		WillReturnRows(sqlmock.NewRows(sessionColumns))

	_, err := repo.FindQuestions("nobody")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	mock.ExpectQuery(`SELECT \* FROM "interview_sessions"`).
		WillReturnError(sql.ErrConnDone)

	_, err = repo.FindEvaluations("nobody")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrSessionNotFound)
	assert.ErrorIs(t, err, sql.ErrConnDone)
}
