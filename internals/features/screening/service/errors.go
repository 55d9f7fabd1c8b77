package service

import "errors"

// FieldErrors: pesan validasi per field, bentuknya sama dengan
// helper.JsonValidationError supaya controller tinggal meneruskan.
type FieldErrors map[string][]string

// ValidationError: input submit/bmi tidak valid; tidak ada state yang berubah.
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	return "validasi gagal"
}

func newValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: FieldErrors{field: {msg}}}
}

func (e *ValidationError) add(field, msg string) {
	if e.Fields == nil {
		e.Fields = FieldErrors{}
	}
	e.Fields[field] = append(e.Fields[field], msg)
}

// ErrUnauthenticated: operasi butuh identitas user (simpan BMI tanpa sesi).
var ErrUnauthenticated = errors.New("user belum terautentikasi")

// ErrUserNotFound: identitas valid tapi user tidak ada di database.
var ErrUserNotFound = errors.New("user tidak ditemukan")
