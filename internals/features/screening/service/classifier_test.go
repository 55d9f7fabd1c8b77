package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyRisk(t *testing.T) {
	tests := []struct {
		name      string
		trueCodes []string
		want      string
	}{
		{
			name:      "tanpa jawaban ya sama sekali",
			trueCodes: nil,
			want:      LevelRendah,
		},
		{
			name:      "E01 ya dengan tepat 3 faktor E lain",
			trueCodes: []string{"E01", "E05", "E07", "E09"},
			want:      LevelTinggi,
		},
		{
			name:      "E01 ya dengan lebih dari 3 faktor E lain",
			trueCodes: []string{"E01", "E02", "E03", "E04", "E05"},
			want:      LevelTinggi,
		},
		{
			name:      "E01 ya dengan tepat 2 faktor E lain",
			trueCodes: []string{"E01", "E02", "E03"},
			want:      LevelSedang,
		},
		{
			name:      "E01 ya tanpa faktor lain",
			trueCodes: []string{"E01"},
			want:      LevelSedang,
		},
		{
			name:      "E01 tidak dengan tepat 5 faktor gaya hidup",
			trueCodes: []string{"E02", "E04", "E06", "E08", "E10"},
			want:      LevelTinggi,
		},
		{
			name:      "E01 tidak dengan 3 faktor E lain",
			trueCodes: []string{"E03", "E05", "E07"},
			want:      LevelSedang,
		},
		{
			name:      "E01 tidak dengan 2 faktor E lain",
			trueCodes: []string{"E02", "E11"},
			want:      LevelRendah,
		},
		{
			name:      "E01 tidak dengan 1 faktor E lain",
			trueCodes: []string{"E06"},
			want:      LevelRendah,
		},
		{
			name:      "urutan kode tidak berpengaruh",
			trueCodes: []string{"E09", "E01", "E07", "E05"},
			want:      LevelTinggi,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyRisk(tt.trueCodes))
		})
	}
}

func TestClassifyRiskAturanGayaHidupTanpaE01(t *testing.T) {
	// 5 faktor gaya hidup memicu Tinggi meski E01 dijawab tidak;
	// aturan E01+≥3 tetap menang kalau keduanya terpenuhi.
	assert.Equal(t, LevelTinggi, ClassifyRisk([]string{"E02", "E03", "E04", "E05", "E06"}))
	assert.Equal(t, LevelTinggi, ClassifyRisk([]string{"E01", "E02", "E03", "E04", "E05", "E06"}))
}

func TestDedupeStrings(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "duplikat dibuang, urutan kemunculan pertama dipertahankan",
			in:   []string{"kurangi garam", "olahraga", "kurangi garam", "tidur cukup", "olahraga"},
			want: []string{"kurangi garam", "olahraga", "tidur cukup"},
		},
		{
			name: "tanpa duplikat",
			in:   []string{"a", "b"},
			want: []string{"a", "b"},
		},
		{
			name: "kosong",
			in:   nil,
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dedupeStrings(tt.in))
		})
	}
}
