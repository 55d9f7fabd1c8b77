package dto

/* =======================================================
   REQUEST DTOs
   ======================================================= */

type CreateRoleRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Permissions []uint `json:"permissions,omitempty"`
}

type UpdateRoleRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,max=100"`
	Permissions *[]uint `json:"permissions,omitempty"`
}

type CreatePermissionRequest struct {
	Name string `json:"name" validate:"required,max=150"`
}

type UpdatePermissionRequest struct {
	Name string `json:"name" validate:"required,max=150"`
}
