package service

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return gdb, mock
}

func factorRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "code", "name", "score", "suggestion", "order", "created_at", "updated_at"})
}

func strPtr(s string) *string { return &s }

func TestSubmitSkenarioTinggi(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewScreeningService(db)

	now := time.Now()
	// E01 + 3 faktor E lain yang dijawab ya → Tinggi; satu jawaban tidak ikut
	// tersimpan tapi tak menyumbang skor. Dua faktor sengaja berbagi teks
	// saran yang sama untuk menguji dedup.
	mock.ExpectQuery(`SELECT \* FROM "risk_factors" WHERE id IN`).
		WillReturnRows(factorRows().
			AddRow(1, "E01", "Riwayat keluarga", 5, strPtr("periksa rutin"), 1, now, now).
			AddRow(5, "E05", "Jarang olahraga", 2, strPtr("olahraga teratur"), 5, now, now).
			AddRow(7, "E07", "Alkohol", 3, strPtr("olahraga teratur"), 7, now, now).
			AddRow(9, "E09", "Kurang buah sayur", 1, nil, 9, now, now).
			AddRow(2, "E02", "Merokok", 3, strPtr("berhenti merokok"), 2, now, now))

	mock.ExpectQuery(`SELECT \* FROM "risk_levels" WHERE name =`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "suggestion", "created_at", "updated_at"}).
			AddRow(3, "Tinggi", "Risiko tinggi.", strPtr("segera ke dokter"), now, now))

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "screening_histories"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))
	mock.ExpectExec(`INSERT INTO "screening_history_risk_factor"`).
		WillReturnResult(sqlmock.NewResult(0, 5))
	mock.ExpectCommit()

	result, err := svc.Submit(context.Background(), SubmitScreeningInput{
		Answers: []AnswerInput{
			{FactorID: 1, Answer: true},
			{FactorID: 5, Answer: true},
			{FactorID: 7, Answer: true},
			{FactorID: 9, Answer: true},
			{FactorID: 2, Answer: false},
		},
		Bmi: 24.0,
	})
	require.NoError(t, err)

	assert.Equal(t, "Tinggi", result.RiskLevel)
	assert.Equal(t, "Risiko tinggi.", result.RiskDescription)
	assert.Equal(t, 11, result.TotalScore) // 5+2+3+1, jawaban "tidak" tak dihitung
	assert.Equal(t, uint(42), result.ScreeningHistoryID)
	assert.Equal(t, []string{"periksa rutin", "olahraga teratur", "segera ke dokter"}, result.Suggestions)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmitSemuaJawabanTidak(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewScreeningService(db)

	now := time.Now()
	mock.ExpectQuery(`SELECT \* FROM "risk_factors" WHERE id IN`).
		WillReturnRows(factorRows().
			AddRow(1, "E01", "Riwayat keluarga", 5, strPtr("periksa rutin"), 1, now, now).
			AddRow(2, "E02", "Merokok", 3, strPtr("berhenti merokok"), 2, now, now))

	// label Rendah tidak ada di katalog → deskripsi fallback, level id null
	mock.ExpectQuery(`SELECT \* FROM "risk_levels" WHERE name =`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "suggestion", "created_at", "updated_at"}))

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "screening_histories"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectExec(`INSERT INTO "screening_history_risk_factor"`).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	result, err := svc.Submit(context.Background(), SubmitScreeningInput{
		Answers: []AnswerInput{
			{FactorID: 1, Answer: false},
			{FactorID: 2, Answer: false},
		},
		Bmi: 22.5,
	})
	require.NoError(t, err)

	assert.Equal(t, LevelRendah, result.RiskLevel)
	assert.Equal(t, DescTidakDiketahui, result.RiskDescription)
	assert.Equal(t, 0, result.TotalScore)
	assert.Empty(t, result.Suggestions)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmitFaktorTidakDikenalTidakMenulisApapun(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewScreeningService(db)

	now := time.Now()
	// id 99 tidak ada di katalog: hanya query katalog yang jalan, tanpa INSERT
	mock.ExpectQuery(`SELECT \* FROM "risk_factors" WHERE id IN`).
		WillReturnRows(factorRows().
			AddRow(1, "E01", "Riwayat keluarga", 5, nil, 1, now, now))

	_, err := svc.Submit(context.Background(), SubmitScreeningInput{
		Answers: []AnswerInput{
			{FactorID: 1, Answer: true},
			{FactorID: 99, Answer: true},
		},
		Bmi: 20.0,
	})

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "answers")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmitValidasiInput(t *testing.T) {
	db, _ := newMockDB(t)
	svc := NewScreeningService(db)

	tests := []struct {
		name  string
		input SubmitScreeningInput
		field string
	}{
		{
			name:  "jawaban kosong",
			input: SubmitScreeningInput{Bmi: 22.0},
			field: "answers",
		},
		{
			name: "bmi nol",
			input: SubmitScreeningInput{
				Answers: []AnswerInput{{FactorID: 1, Answer: true}},
			},
			field: "bmi",
		},
		{
			name: "faktor duplikat",
			input: SubmitScreeningInput{
				Answers: []AnswerInput{
					{FactorID: 1, Answer: true},
					{FactorID: 1, Answer: false},
				},
				Bmi: 22.0,
			},
			field: "answers",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Submit(context.Background(), tt.input)
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Contains(t, ve.Fields, tt.field)
		})
	}
}

func TestListQuestionsUrutKolomOrder(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewScreeningService(db)

	now := time.Now()
	mock.ExpectQuery(`SELECT \* FROM "risk_factors" ORDER BY "order" ASC`).
		WillReturnRows(factorRows().
			AddRow(1, "E01", "Riwayat keluarga", 5, nil, 1, now, now).
			AddRow(2, "E02", "Merokok", 3, nil, 2, now, now))

	factors, err := svc.ListQuestions(context.Background())
	require.NoError(t, err)
	require.Len(t, factors, 2)
	assert.Equal(t, "E01", factors[0].Code)
	assert.Equal(t, "E02", factors[1].Code)

	assert.NoError(t, mock.ExpectationsWereMet())
}
