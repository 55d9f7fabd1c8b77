package service

import "strings"

// Label hasil klasifikasi. Nama mengikuti isi tabel risk_levels.
const (
	LevelRendah         = "Rendah"
	LevelSedang         = "Sedang"
	LevelTinggi         = "Tinggi"
	LevelTidakDiketahui = "Tidak Diketahui"

	// Deskripsi fallback saat label tidak ada di katalog risk_levels.
	DescTidakDiketahui = "Tidak dapat menentukan tingkat risiko."
)

// FamilyHistoryCode: riwayat hipertensi keluarga, pemicu khusus pada aturan.
const FamilyHistoryCode = "E01"

// lifestyleCodes: subset faktor gaya hidup. Sengaja enumerasi eksplisit,
// bukan pola regex, supaya penomoran ulang kode tidak lolos diam-diam.
var lifestyleCodes = map[string]struct{}{
	"E02": {}, "E03": {}, "E04": {}, "E05": {}, "E06": {},
	"E07": {}, "E08": {}, "E09": {}, "E10": {}, "E11": {},
}

// ClassifyRisk memetakan kode faktor yang dijawab "ya" ke label tingkat risiko.
// Tabel keputusan berurutan tetap; aturan pertama yang cocok menang:
//  1. E01 "ya" dan ≥3 faktor "E" lain            → Tinggi
//  2. ≥5 faktor gaya hidup (E02–E11)             → Tinggi
//  3. E01 "ya" dan 0–2 faktor "E" lain           → Sedang
//  4. E01 "tidak" dan ≥3 faktor "E" lain         → Sedang
//  5. E01 "tidak" dan ≤2 faktor "E" lain         → Rendah
func ClassifyRisk(trueCodes []string) string {
	hasFamilyHistory := false
	otherFactors := 0
	lifestyleFactors := 0

	for _, code := range trueCodes {
		if code == FamilyHistoryCode {
			hasFamilyHistory = true
			continue
		}
		if strings.HasPrefix(code, "E") {
			otherFactors++
		}
		if _, ok := lifestyleCodes[code]; ok {
			lifestyleFactors++
		}
	}

	switch {
	case hasFamilyHistory && otherFactors >= 3:
		return LevelTinggi
	case lifestyleFactors >= 5:
		return LevelTinggi
	case hasFamilyHistory && otherFactors <= 2:
		return LevelSedang
	case !hasFamilyHistory && otherFactors >= 3:
		return LevelSedang
	case !hasFamilyHistory && otherFactors <= 2:
		return LevelRendah
	}
	return LevelTidakDiketahui
}

// dedupeStrings membuang duplikat dengan mempertahankan urutan kemunculan pertama.
func dedupeStrings(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
