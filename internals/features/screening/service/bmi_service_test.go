package service

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveBmiDetailsSukses(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewBmiService(db)
	userID := uuid.New()

	// dipanggil dua kali dengan nilai sama → dua UPDATE identik, tanpa error
	for i := 0; i < 2; i++ {
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "users" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()
	}

	in := SaveBmiInput{UserID: userID, Height: 170, Weight: 65, Bmi: 22.49}
	require.NoError(t, svc.SaveBmiDetails(context.Background(), in))
	require.NoError(t, svc.SaveBmiDetails(context.Background(), in))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveBmiDetailsTanpaLogin(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewBmiService(db)

	err := svc.SaveBmiDetails(context.Background(), SaveBmiInput{
		Height: 170, Weight: 65, Bmi: 22.49,
	})

	assert.ErrorIs(t, err, ErrUnauthenticated)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveBmiDetailsValidasi(t *testing.T) {
	db, _ := newMockDB(t)
	svc := NewBmiService(db)
	userID := uuid.New()

	tests := []struct {
		name   string
		input  SaveBmiInput
		fields []string
	}{
		{
			name:   "tinggi nol",
			input:  SaveBmiInput{UserID: userID, Height: 0, Weight: 65, Bmi: 22},
			fields: []string{"height"},
		},
		{
			name:   "berat nol",
			input:  SaveBmiInput{UserID: userID, Height: 170, Weight: 0, Bmi: 22},
			fields: []string{"weight"},
		},
		{
			name:   "semua nol",
			input:  SaveBmiInput{UserID: userID},
			fields: []string{"height", "weight", "bmi"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.SaveBmiDetails(context.Background(), tt.input)
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			for _, f := range tt.fields {
				assert.Contains(t, ve.Fields, f)
			}
		})
	}
}

func TestSaveBmiDetailsUserTidakDitemukan(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewBmiService(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "users" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := svc.SaveBmiDetails(context.Background(), SaveBmiInput{
		UserID: uuid.New(), Height: 170, Weight: 65, Bmi: 22.49,
	})

	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
